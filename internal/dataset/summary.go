// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package dataset

import (
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/ahlawatsakshi6/ai-vs-human-content-analysis-dashboard/pkg/types"
)

// ColumnSummary captures inferred kind and basic statistics for one raw
// column, for the first-look inspection view.
type ColumnSummary struct {
	Name    string
	Kind    string // numeric, datetime or categorical
	NonNull int
	Missing int
	Unique  int

	// Numeric stats, valid when Kind is numeric.
	Min, Max, Mean float64

	// TopValues lists the most frequent values for categorical columns.
	TopValues []CategoryCount
}

// CategoryCount pairs a categorical value with its occurrence count.
type CategoryCount struct {
	Value string
	Count int
}

const topValueLimit = 3

// Summarize computes per-column summaries over a raw table. A column is
// numeric when every non-empty cell parses as a number, datetime when every
// non-empty cell parses with dateFormat, and categorical otherwise.
func Summarize(t *types.RawTable, dateFormat string) []ColumnSummary {
	if dateFormat == "" {
		dateFormat = "02-01-2006"
	}

	out := make([]ColumnSummary, len(t.Columns))
	for i, name := range t.Columns {
		s := ColumnSummary{Name: name, Min: math.Inf(1), Max: math.Inf(-1)}

		counts := make(map[string]int)
		numeric, datetime := true, true
		var sum float64
		var numCount int

		for _, row := range t.Rows {
			v := strings.TrimSpace(cellAt(row, i))
			if v == "" {
				s.Missing++
				continue
			}
			s.NonNull++
			counts[v]++

			if f, err := strconv.ParseFloat(v, 64); err == nil {
				numCount++
				sum += f
				if f < s.Min {
					s.Min = f
				}
				if f > s.Max {
					s.Max = f
				}
			} else {
				numeric = false
			}
			if !parsesAsDate(v, dateFormat) {
				datetime = false
			}
		}

		s.Unique = len(counts)
		switch {
		case s.NonNull == 0:
			s.Kind = "categorical"
		case numeric:
			s.Kind = "numeric"
			s.Mean = sum / float64(numCount)
		case datetime:
			s.Kind = "datetime"
		default:
			s.Kind = "categorical"
		}
		if s.Kind != "numeric" {
			s.Min, s.Max = 0, 0
			s.TopValues = topValues(counts, topValueLimit)
		}

		out[i] = s
	}
	return out
}

func cellAt(row []string, i int) string {
	if i >= len(row) {
		return ""
	}
	return row[i]
}

func parsesAsDate(v, layout string) bool {
	_, err := time.Parse(layout, v)
	return err == nil
}

// topValues returns the n most frequent values, ties broken alphabetically
// so the output is stable.
func topValues(counts map[string]int, n int) []CategoryCount {
	all := make([]CategoryCount, 0, len(counts))
	for v, c := range counts {
		all = append(all, CategoryCount{Value: v, Count: c})
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].Count != all[j].Count {
			return all[i].Count > all[j].Count
		}
		return all[i].Value < all[j].Value
	})
	if len(all) > n {
		all = all[:n]
	}
	return all
}
