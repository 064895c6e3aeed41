// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report assembles the narrative analysis document from computed
// insights. The document has a fixed section list; the comparative wording
// branches on whether the AI or the Human cohort has the higher mean
// engagement.
package report

import (
	"fmt"
	"math"

	"github.com/google/uuid"

	"github.com/ahlawatsakshi6/ai-vs-human-content-analysis-dashboard/internal/insights"
)

// Section is one block of the document: a heading, its nesting level
// (1 = top-level), paragraphs, and optional bullet or numbered items.
type Section struct {
	Heading    string   `json:"heading" yaml:"heading"`
	Level      int      `json:"level" yaml:"level"`
	Paragraphs []string `json:"paragraphs,omitempty" yaml:"paragraphs,omitempty"`
	Bullets    []string `json:"bullets,omitempty" yaml:"bullets,omitempty"`
	Numbered   []string `json:"numbered,omitempty" yaml:"numbered,omitempty"`
}

// Document is the assembled report before rendering.
type Document struct {
	ID       string    `json:"id" yaml:"id"`
	Title    string    `json:"title" yaml:"title"`
	Sections []Section `json:"sections" yaml:"sections"`
	Footer   string    `json:"footer" yaml:"footer"`
}

// Build assembles the full document from ins. Both cohorts must be present
// with a mean engagement score; the comparison has no meaning otherwise.
func Build(ins *insights.Insights) (*Document, error) {
	if ins.AI.AvgEngagement == nil || ins.Human.AvgEngagement == nil {
		return nil, fmt.Errorf("report requires both Ai and Human posts with engagement scores")
	}
	aiScore := *ins.AI.AvgEngagement
	humanScore := *ins.Human.AvgEngagement
	aiWins := aiScore > humanScore

	doc := &Document{
		ID:    uuid.NewString(),
		Title: "AI vs Human Content Analysis Report",
	}

	doc.Sections = append(doc.Sections, Section{
		Heading: "Executive Summary",
		Level:   1,
		Paragraphs: []string{fmt.Sprintf(
			"This report analyzes the performance of AI-generated content versus "+
				"human-written content based on social media engagement metrics. "+
				"We examined %d posts (%d AI-generated, %d human-written) to understand "+
				"which type of content drives better audience engagement.",
			ins.TotalPosts, ins.AI.Posts, ins.Human.Posts)},
	})

	doc.Sections = append(doc.Sections, Section{Heading: "Key Findings", Level: 1})
	doc.Sections = append(doc.Sections, engagementFinding(aiScore, humanScore, aiWins))
	doc.Sections = append(doc.Sections, breakdownFinding(ins))
	if len(ins.TopContentTypes) > 0 {
		doc.Sections = append(doc.Sections, contentFinding(ins))
	}
	doc.Sections = append(doc.Sections, implicationsFinding(aiWins))
	doc.Sections = append(doc.Sections, recommendations(aiWins))
	doc.Sections = append(doc.Sections, methodology(ins))
	doc.Sections = append(doc.Sections, conclusion(aiWins))

	return doc, nil
}

func engagementFinding(aiScore, humanScore float64, aiWins bool) Section {
	var text string
	if aiWins {
		text = fmt.Sprintf(
			"AI-generated content outperformed human-written content by %.1f%% in overall "+
				"engagement. AI posts achieved an average engagement score of %.0f, while "+
				"human posts averaged %.0f.",
			diffPercent(aiScore, humanScore), aiScore, humanScore)
	} else {
		text = fmt.Sprintf(
			"Human-written content outperformed AI-generated content by %.1f%% in overall "+
				"engagement. Human posts achieved an average engagement score of %.0f, while "+
				"AI posts averaged %.0f.",
			diffPercent(humanScore, aiScore), humanScore, aiScore)
	}
	return Section{
		Heading:    "1. AI vs Human Engagement Performance",
		Level:      2,
		Paragraphs: []string{text},
	}
}

// diffPercent is the relative advantage of the winner over the loser. A
// zero losing mean would divide by zero; the advantage is unbounded there.
func diffPercent(winner, loser float64) float64 {
	if loser == 0 {
		return math.Inf(1)
	}
	return (winner - loser) / loser * 100
}

func breakdownFinding(ins *insights.Insights) Section {
	s := Section{
		Heading:    "2. Engagement Metric Breakdown",
		Level:      2,
		Paragraphs: []string{"When we break down engagement by individual metrics:"},
	}
	if ins.AI.AvgLikes != nil && ins.Human.AvgLikes != nil {
		s.Bullets = append(s.Bullets, fmt.Sprintf(
			"Likes: AI posts received %.0f average likes vs %.0f for human posts",
			*ins.AI.AvgLikes, *ins.Human.AvgLikes))
	}
	if ins.AI.AvgComments != nil && ins.Human.AvgComments != nil {
		s.Bullets = append(s.Bullets, fmt.Sprintf(
			"Comments: AI posts received %.0f average comments vs %.0f for human posts",
			*ins.AI.AvgComments, *ins.Human.AvgComments))
	}
	if ins.AI.AvgShares != nil && ins.Human.AvgShares != nil {
		s.Bullets = append(s.Bullets, fmt.Sprintf(
			"Shares: AI posts received %.0f average shares vs %.0f for human posts",
			*ins.AI.AvgShares, *ins.Human.AvgShares))
	}
	return s
}

func contentFinding(ins *insights.Insights) Section {
	s := Section{
		Heading: "3. Content Type Analysis",
		Level:   2,
		Paragraphs: []string{
			"Different content types perform differently for AI vs Human authors. " +
				"Top performing content types overall:",
		},
	}
	for _, c := range ins.TopContentTypes {
		s.Numbered = append(s.Numbered, fmt.Sprintf(
			"%s: %.0f average engagement", c.ContentType, c.AvgEngagement))
	}
	return s
}

func implicationsFinding(aiWins bool) Section {
	s := Section{
		Heading:    "4. Business Implications",
		Level:      2,
		Paragraphs: []string{"Based on our analysis, here are the key business implications:"},
	}
	if aiWins {
		s.Bullets = append(s.Bullets,
			"AI-generated content shows strong potential for driving engagement",
			"Consider incorporating AI tools into content creation workflows",
			"AI content may be more cost-effective for maintaining consistent posting schedules")
	} else {
		s.Bullets = append(s.Bullets,
			"Human-written content maintains an edge in audience connection",
			"Focus on human creativity and personal touch in content strategy",
			"Consider AI as a supplement rather than replacement for human content")
	}
	s.Bullets = append(s.Bullets,
		"Monitor engagement trends over time to adapt strategy accordingly",
		"Test different content types to optimize for your specific audience")
	return s
}

func recommendations(aiWins bool) Section {
	first := "Maintain focus on human-created content while exploring AI as a supplement"
	if aiWins {
		first = "Gradually incorporate AI-generated content into your content strategy"
	}
	return Section{
		Heading:    "Recommendations",
		Level:      1,
		Paragraphs: []string{"Based on our findings, we recommend:"},
		Numbered: []string{
			first,
			"Focus on content types that show the highest engagement for your target audience",
			"Implement A/B testing to compare AI vs Human content performance in your specific context",
			"Monitor engagement metrics regularly to track performance trends",
			"Consider hybrid approaches: use AI for initial drafts and human editors for final touches",
		},
	}
}

func methodology(ins *insights.Insights) Section {
	s := Section{
		Heading:    "Methodology",
		Level:      1,
		Paragraphs: []string{"This analysis was conducted using:"},
		Bullets: []string{
			fmt.Sprintf("Dataset: %d social media posts", ins.TotalPosts),
		},
	}
	if ins.DateMin != nil && ins.DateMax != nil {
		s.Bullets = append(s.Bullets, fmt.Sprintf(
			"Time period: %s to %s",
			ins.DateMin.Format("January 2006"), ins.DateMax.Format("January 2006")))
	}
	s.Bullets = append(s.Bullets,
		"Engagement Score Formula: Likes + (2 x Comments) + (3 x Shares)",
		"Analysis tools: the content-insights cleaning and aggregation pipeline",
		"Visualization: interactive dashboard with real-time filtering capabilities")
	return s
}

func conclusion(aiWins bool) Section {
	opening := "This analysis provides valuable insights into the performance of " +
		"AI-generated versus human-written content. "
	if aiWins {
		opening += "The data suggests that AI-generated content can effectively drive " +
			"engagement, offering opportunities for cost-effective content creation " +
			"while maintaining audience interest."
	} else {
		opening += "The data reinforces the value of human creativity in content " +
			"creation, while also highlighting opportunities for strategic use of AI tools."
	}
	return Section{
		Heading: "Conclusion",
		Level:   1,
		Paragraphs: []string{
			opening,
			"However, the most successful content strategies will likely involve a " +
				"thoughtful blend of both approaches, tailored to your specific audience " +
				"and business objectives.",
		},
	}
}
