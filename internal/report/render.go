// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/ahlawatsakshi6/ai-vs-human-content-analysis-dashboard/internal/insights"
	"github.com/ahlawatsakshi6/ai-vs-human-content-analysis-dashboard/pkg/types"
)

// RenderMarkdown renders the document as Markdown with the generation
// timestamp footer.
func RenderMarkdown(doc *Document, generatedAt time.Time) []byte {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", doc.Title)
	for _, s := range doc.Sections {
		fmt.Fprintf(&b, "%s %s\n\n", strings.Repeat("#", s.Level+1), s.Heading)
		for _, p := range s.Paragraphs {
			fmt.Fprintf(&b, "%s\n\n", p)
		}
		for _, item := range s.Bullets {
			fmt.Fprintf(&b, "- %s\n", item)
		}
		if len(s.Bullets) > 0 {
			b.WriteString("\n")
		}
		for i, item := range s.Numbered {
			fmt.Fprintf(&b, "%d. %s\n", i+1, item)
		}
		if len(s.Numbered) > 0 {
			b.WriteString("\n")
		}
	}

	fmt.Fprintf(&b, "---\n\nReport generated on: %s\n\nReport ID: %s\n",
		generatedAt.Format("January 2, 2006"), doc.ID)

	return []byte(b.String())
}

// Generate computes the document for ins and writes it to cfg.OutputPath in
// the configured format. The file is written to a temporary name and
// renamed into place, so a failed generation leaves no partial output.
// It returns the written path.
func Generate(ins *insights.Insights, cfg types.ReportConfig, generatedAt time.Time) (string, error) {
	doc, err := Build(ins)
	if err != nil {
		return "", err
	}

	if generatedAt.IsZero() {
		generatedAt = time.Now()
	}

	path := cfg.OutputPath
	if path == "" {
		path = "output/content-analysis-report.md"
	}

	var data []byte
	switch cfg.Format {
	case types.ReportJSON:
		payload := struct {
			Document *Document          `json:"document"`
			Insights *insights.Insights `json:"insights"`
		}{doc, ins}
		if data, err = json.MarshalIndent(payload, "", "  "); err != nil {
			return "", fmt.Errorf("marshaling JSON: %w", err)
		}
	case types.ReportYAML:
		payload := struct {
			Document *Document          `yaml:"document"`
			Insights *insights.Insights `yaml:"insights"`
		}{doc, ins}
		if data, err = yaml.Marshal(payload); err != nil {
			return "", fmt.Errorf("marshaling YAML: %w", err)
		}
	case types.ReportMarkdown, "":
		data = RenderMarkdown(doc, generatedAt)
	default:
		return "", fmt.Errorf("unknown report format %q", cfg.Format)
	}

	if err := writeAtomic(path, data); err != nil {
		return "", err
	}
	return path, nil
}

// writeAtomic writes data to path via a temp file in the same directory.
func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing report: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("renaming report into place: %w", err)
	}
	return nil
}
