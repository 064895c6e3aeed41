// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ahlawatsakshi6/ai-vs-human-content-analysis-dashboard/internal/insights"
	"github.com/ahlawatsakshi6/ai-vs-human-content-analysis-dashboard/internal/report"
	"github.com/ahlawatsakshi6/ai-vs-human-content-analysis-dashboard/pkg/types"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Generate the narrative analysis report",
	Long: `Report cleans the dataset, computes the comparison insights, and
writes the narrative analysis document with its fixed sections (Executive
Summary, Key Findings, Business Implications, Recommendations, Methodology,
Conclusion). The comparative wording follows whichever cohort has the
higher mean engagement.`,
	RunE: runReport,
}

func runReport(cmd *cobra.Command, args []string) error {
	cfg := appConfig(cmd)
	if path, _ := cmd.Flags().GetString("output"); path != "" {
		cfg.Report.OutputPath = path
	}
	if format, _ := cmd.Flags().GetString("format"); format != "" {
		cfg.Report.Format = types.ReportFormat(format)
	}

	rs, err := loadRecords(cmd)
	if err != nil {
		return err
	}

	ins, err := insights.Compute(rs)
	if err != nil {
		return err
	}

	path, err := report.Generate(ins, cfg.Report, time.Now())
	if err != nil {
		return err
	}

	fmt.Printf("Analysis report saved as: %s\n\n", path)
	fmt.Println("Key insights from the analysis:")
	fmt.Printf("- Total posts analyzed: %d\n", ins.TotalPosts)
	fmt.Printf("- AI posts: %d, Human posts: %d\n", ins.AI.Posts, ins.Human.Posts)
	if ins.AI.AvgEngagement != nil {
		fmt.Printf("- AI avg engagement: %.0f\n", *ins.AI.AvgEngagement)
	}
	if ins.Human.AvgEngagement != nil {
		fmt.Printf("- Human avg engagement: %.0f\n", *ins.Human.AvgEngagement)
	}
	return nil
}

func init() {
	reportCmd.Flags().String("output", "", "report output path (default from config)")
	reportCmd.Flags().String("format", "", "report format: markdown, json, or yaml")

	rootCmd.AddCommand(reportCmd)
}
