// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"math"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ahlawatsakshi6/ai-vs-human-content-analysis-dashboard/internal/pipeline"
	"github.com/ahlawatsakshi6/ai-vs-human-content-analysis-dashboard/pkg/types"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Print exploratory analysis tables for the cleaned dataset",
	Long: `Analyze cleans the dataset and prints the core comparison tables:
mean engagement score per author type, and total likes, comments, and
shares per author type.`,
	RunE: runAnalyze,
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	rs, err := loadRecords(cmd)
	if err != nil {
		return err
	}

	fmt.Printf("%d posts after cleaning (source: %s)\n\n", rs.Len(), rs.Source)

	if rs.Features.HasAuthorType && rs.Features.HasEngagement {
		view, err := pipeline.Aggregate(rs,
			[]string{types.ColAuthorType}, types.ColEngagement, pipeline.ReduceMean)
		if err != nil {
			return err
		}
		fmt.Println("Average engagement score by author type")
		printGroups(view, "%.2f")
		fmt.Println()
	}

	if rs.Features.HasAuthorType {
		fmt.Println("Totals by author type")
		fmt.Printf("%-12s  %12s  %12s  %12s\n", "Author", "Likes", "Comments", "Shares")
		fmt.Println(strings.Repeat("-", 54))

		totals := map[string][3]float64{}
		var order []string
		for _, metric := range []string{types.ColLikes, types.ColComments, types.ColShares} {
			col := metricSlot(metric)
			view, err := pipeline.Aggregate(rs, []string{types.ColAuthorType}, metric, pipeline.ReduceSum)
			if err != nil {
				continue // column absent, the table degrades to zeros
			}
			for _, g := range view.Groups {
				row, seen := totals[g.Key[0]]
				if !seen {
					order = append(order, g.Key[0])
				}
				if !math.IsNaN(g.Value) {
					row[col] = g.Value
				}
				totals[g.Key[0]] = row
			}
		}
		for _, author := range order {
			row := totals[author]
			fmt.Printf("%-12s  %12.0f  %12.0f  %12.0f\n", author, row[0], row[1], row[2])
		}
	}

	return nil
}

func metricSlot(metric string) int {
	switch metric {
	case types.ColComments:
		return 1
	case types.ColShares:
		return 2
	}
	return 0
}

func printGroups(view *pipeline.GroupedView, valueFormat string) {
	for _, g := range view.Groups {
		value := "n/a"
		if !math.IsNaN(g.Value) {
			value = fmt.Sprintf(valueFormat, g.Value)
		}
		fmt.Printf("%-12s  %s  (%d posts)\n", strings.Join(g.Key, "/"), value, g.Count)
	}
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
}
