// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/ahlawatsakshi6/ai-vs-human-content-analysis-dashboard/internal/insights"
	"github.com/ahlawatsakshi6/ai-vs-human-content-analysis-dashboard/pkg/types"
)

func f(v float64) *float64 { return &v }

// sampleInsights builds an insight set where the AI cohort leads unless
// humanWins is set.
func sampleInsights(humanWins bool) *insights.Insights {
	ai, human := 120.0, 80.0
	if humanWins {
		ai, human = 80.0, 120.0
	}
	return &insights.Insights{
		TotalPosts: 10,
		AI: insights.AuthorStats{
			Posts: 6, AvgEngagement: f(ai),
			AvgLikes: f(50), AvgComments: f(10), AvgShares: f(5),
		},
		Human: insights.AuthorStats{
			Posts: 4, AvgEngagement: f(human),
			AvgLikes: f(40), AvgComments: f(8), AvgShares: f(4),
		},
		TopContentTypes: []insights.ContentScore{
			{ContentType: "Video", AvgEngagement: 150},
			{ContentType: "Blog", AvgEngagement: 90},
		},
		DateMin: timeVal(2024, time.January, 1),
		DateMax: timeVal(2024, time.June, 30),
	}
}

func timeVal(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

var fixedSectionOrder = []string{
	"Executive Summary",
	"Key Findings",
	"Recommendations",
	"Methodology",
	"Conclusion",
}

func TestBuildSectionOrder(t *testing.T) {
	doc, err := Build(sampleInsights(false))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var topLevel []string
	for _, s := range doc.Sections {
		if s.Level == 1 {
			topLevel = append(topLevel, s.Heading)
		}
	}
	if len(topLevel) != len(fixedSectionOrder) {
		t.Fatalf("top-level sections = %v, want %v", topLevel, fixedSectionOrder)
	}
	for i, want := range fixedSectionOrder {
		if topLevel[i] != want {
			t.Errorf("section[%d] = %q, want %q", i, topLevel[i], want)
		}
	}
	if doc.ID == "" {
		t.Error("document ID is empty")
	}
}

func TestBuildWordingBranchesOnWinner(t *testing.T) {
	aiDoc, err := Build(sampleInsights(false))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	md := string(RenderMarkdown(aiDoc, time.Now()))
	if !strings.Contains(md, "AI-generated content outperformed human-written content by 50.0%") {
		t.Errorf("AI-wins wording missing from:\n%s", md)
	}
	if !strings.Contains(md, "Gradually incorporate AI-generated content") {
		t.Error("AI-wins recommendation missing")
	}

	humanDoc, err := Build(sampleInsights(true))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	md = string(RenderMarkdown(humanDoc, time.Now()))
	if !strings.Contains(md, "Human-written content outperformed AI-generated content by 50.0%") {
		t.Errorf("Human-wins wording missing from:\n%s", md)
	}
	if !strings.Contains(md, "Maintain focus on human-created content") {
		t.Error("Human-wins recommendation missing")
	}
}

func TestBuildRequiresBothCohorts(t *testing.T) {
	ins := sampleInsights(false)
	ins.Human.AvgEngagement = nil
	if _, err := Build(ins); err == nil {
		t.Error("expected error when a cohort has no engagement mean")
	}
}

func TestRenderMarkdownFooter(t *testing.T) {
	doc, err := Build(sampleInsights(false))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	generated := time.Date(2026, time.August, 31, 10, 0, 0, 0, time.UTC)
	md := string(RenderMarkdown(doc, generated))

	if !strings.Contains(md, "Report generated on: August 31, 2026") {
		t.Errorf("footer timestamp missing from:\n%s", md)
	}
	if !strings.Contains(md, "Report ID: "+doc.ID) {
		t.Error("footer report ID missing")
	}
}

func TestRenderMarkdownMethodology(t *testing.T) {
	doc, err := Build(sampleInsights(false))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	md := string(RenderMarkdown(doc, time.Now()))

	for _, want := range []string{
		"Dataset: 10 social media posts",
		"Time period: January 2024 to June 2024",
		"Engagement Score Formula: Likes + (2 x Comments) + (3 x Shares)",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("methodology line %q missing", want)
		}
	}
}

func TestGenerateWritesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "report.md")

	got, err := Generate(sampleInsights(false), types.ReportConfig{OutputPath: path}, time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != path {
		t.Errorf("path = %q, want %q", got, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), "# AI vs Human Content Analysis Report") {
		t.Error("rendered report missing title")
	}

	// No temp files may survive a successful generation.
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("output dir has %d entries, want 1", len(entries))
	}
}

func TestGenerateJSONAndYAML(t *testing.T) {
	for _, format := range []types.ReportFormat{types.ReportJSON, types.ReportYAML} {
		path := filepath.Join(t.TempDir(), "report."+string(format))
		if _, err := Generate(sampleInsights(false), types.ReportConfig{OutputPath: path, Format: format}, time.Now()); err != nil {
			t.Fatalf("%s: unexpected error: %v", format, err)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(string(data), "AI vs Human Content Analysis Report") {
			t.Errorf("%s output missing title", format)
		}
	}
}

func TestGenerateNoPartialOutputOnFailure(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "report.md")

	bad := sampleInsights(false)
	bad.AI.AvgEngagement = nil
	if _, err := Generate(bad, types.ReportConfig{OutputPath: path}, time.Now()); err == nil {
		t.Fatal("expected error")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("failed generation left an output file")
	}
}

func TestGenerateUnknownFormat(t *testing.T) {
	_, err := Generate(sampleInsights(false),
		types.ReportConfig{OutputPath: filepath.Join(t.TempDir(), "r"), Format: "docx"}, time.Now())
	if err == nil {
		t.Error("expected error for unknown format")
	}
}
