// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/ahlawatsakshi6/ai-vs-human-content-analysis-dashboard/internal/dataset"
	"github.com/ahlawatsakshi6/ai-vs-human-content-analysis-dashboard/pkg/types"
)

var datasetCmd = &cobra.Command{
	Use:   "dataset",
	Short: "Inspect or export the content dataset",
}

// --- inspect subcommand ---

var datasetInspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Show a first look at the raw dataset",
	Long: `Inspect prints the first rows of the source CSV together with
per-column summaries: inferred kind, missing counts, unique values, and
numeric ranges. It reads the raw file directly, before cleaning.`,
	RunE: runDatasetInspect,
}

func runDatasetInspect(cmd *cobra.Command, args []string) error {
	cfg := appConfig(cmd)

	path, err := dataset.Locate(cfg.Dataset.Paths)
	if err != nil {
		return err
	}
	raw, err := dataset.ReadCSV(path)
	if err != nil {
		return err
	}

	headRows, _ := cmd.Flags().GetInt("rows")
	fmt.Printf("%s: %d rows, %d columns\n\n", path, len(raw.Rows), len(raw.Columns))

	fmt.Println(strings.Join(raw.Columns, " | "))
	fmt.Println(strings.Repeat("-", 60))
	for i, row := range raw.Rows {
		if i >= headRows {
			break
		}
		fmt.Println(strings.Join(row, " | "))
	}
	fmt.Println()

	fmt.Printf("%-20s  %-12s  %8s  %8s  %8s  %s\n",
		"Column", "Kind", "NonNull", "Missing", "Unique", "Stats")
	fmt.Println(strings.Repeat("-", 80))
	for _, s := range dataset.Summarize(raw, cfg.Dataset.DateFormat) {
		stats := ""
		switch s.Kind {
		case "numeric":
			stats = fmt.Sprintf("min %.4g, max %.4g, mean %.4g", s.Min, s.Max, s.Mean)
		default:
			var tops []string
			for _, tv := range s.TopValues {
				tops = append(tops, fmt.Sprintf("%s (%d)", tv.Value, tv.Count))
			}
			stats = strings.Join(tops, ", ")
		}
		fmt.Printf("%-20s  %-12s  %8d  %8d  %8d  %s\n",
			s.Name, s.Kind, s.NonNull, s.Missing, s.Unique, stats)
	}
	return nil
}

// --- export subcommand ---

var datasetExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the cleaned record set to JSON, YAML, or CSV",
	Long: `Export writes the cleaned, deduplicated record set with its derived
engagement score. Output goes to stdout unless --output is given.`,
	RunE: runDatasetExport,
}

func runDatasetExport(cmd *cobra.Command, args []string) error {
	rs, err := loadRecords(cmd)
	if err != nil {
		return err
	}

	out := io.Writer(os.Stdout)
	if path, _ := cmd.Flags().GetString("output"); path != "" {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	format, _ := cmd.Flags().GetString("format")
	switch format {
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(rs)
	case "yaml":
		enc := yaml.NewEncoder(out)
		defer enc.Close()
		return enc.Encode(rs)
	case "csv":
		return exportCSV(out, rs)
	}
	return fmt.Errorf("unknown export format %q: want json, yaml, or csv", format)
}

// exportCSV writes the known columns plus pass-through extras, with null
// cells left empty.
func exportCSV(out io.Writer, rs *types.RecordSet) error {
	w := csv.NewWriter(out)

	header := []string{"Date", "Author_Type", "Content_Type", "Likes", "Comments", "Shares", "Engagement_Score"}
	header = append(header, rs.ExtraColumns...)
	if err := w.Write(header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for _, r := range rs.Records {
		row := []string{
			dateCell(r.Date), r.AuthorType, r.ContentType,
			numCell(r.Likes), numCell(r.Comments), numCell(r.Shares),
			numCell(r.EngagementScore),
		}
		for _, c := range rs.ExtraColumns {
			row = append(row, r.Extra[c])
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("writing record %d: %w", r.Index, err)
		}
	}

	w.Flush()
	return w.Error()
}

func dateCell(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("02-01-2006")
}

func numCell(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'g', -1, 64)
}

func init() {
	datasetInspectCmd.Flags().Int("rows", 5, "number of head rows to print")

	datasetExportCmd.Flags().String("format", "json", "output format: json, yaml, or csv")
	datasetExportCmd.Flags().String("output", "", "output file (default: stdout)")

	datasetCmd.AddCommand(datasetInspectCmd)
	datasetCmd.AddCommand(datasetExportCmd)
	rootCmd.AddCommand(datasetCmd)
}
