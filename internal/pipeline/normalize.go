// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pipeline implements the content metrics pipeline: it turns a raw
// table of posts into a cleaned RecordSet with a derived engagement score,
// and provides filtering and grouped aggregation over the result.
//
// Every cleaning step is conditional on its input columns being present;
// a table missing optional columns degrades feature-by-feature instead of
// failing. The resulting Features descriptor tells consumers which derived
// fields exist.
package pipeline

import (
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/ahlawatsakshi6/ai-vs-human-content-analysis-dashboard/pkg/types"
)

// DefaultDateFormat is the day-month-year layout used by the source data.
const DefaultDateFormat = "02-01-2006"

// nullMark separates a genuinely empty cell from the string "" when building
// deduplication keys.
const nullMark = "\x00null"

// Normalize cleans a raw table into a RecordSet. Steps run in fixed order,
// each skipped when its input columns are absent:
//
//  1. parse the date column with dateFormat; unparseable values become null
//  2. trim and title-case the author type
//  3. derive engagement_score = likes + 2*comments + 3*shares when all
//     three component columns exist, treating missing values as zero for
//     the computation only
//  4. drop exact-duplicate rows keeping the first occurrence, then assign
//     dense 0-based indexes
//
// The input table is not mutated.
func Normalize(raw *types.RawTable, dateFormat string) *types.RecordSet {
	if dateFormat == "" {
		dateFormat = DefaultDateFormat
	}

	idxDate := raw.ColumnIndex(types.ColDate)
	idxAuthor := raw.ColumnIndex(types.ColAuthorType)
	idxContent := raw.ColumnIndex(types.ColContentType)
	idxLikes := raw.ColumnIndex(types.ColLikes)
	idxComments := raw.ColumnIndex(types.ColComments)
	idxShares := raw.ColumnIndex(types.ColShares)
	idxEngagement := raw.ColumnIndex(types.ColEngagement)

	deriveEngagement := idxLikes >= 0 && idxComments >= 0 && idxShares >= 0

	rs := &types.RecordSet{
		Source: raw.Source,
		Features: types.Features{
			HasDate:        idxDate >= 0,
			HasAuthorType:  idxAuthor >= 0,
			HasContentType: idxContent >= 0,
			HasLikes:       idxLikes >= 0,
			HasComments:    idxComments >= 0,
			HasShares:      idxShares >= 0,
			HasEngagement:  deriveEngagement || idxEngagement >= 0,
		},
	}

	known := map[int]bool{
		idxDate: true, idxAuthor: true, idxContent: true,
		idxLikes: true, idxComments: true, idxShares: true,
		idxEngagement: true,
	}
	var extraIdx []int
	for i, c := range raw.Columns {
		if !known[i] {
			extraIdx = append(extraIdx, i)
			rs.ExtraColumns = append(rs.ExtraColumns, c)
		}
	}

	seen := make(map[string]bool, len(raw.Rows))
	for _, row := range raw.Rows {
		r := types.Record{}

		if idxDate >= 0 {
			if t, err := time.Parse(dateFormat, strings.TrimSpace(cell(row, idxDate))); err == nil {
				r.Date = &t
			}
		}
		if idxAuthor >= 0 {
			r.AuthorType = titleCase(strings.TrimSpace(cell(row, idxAuthor)))
		}
		if idxContent >= 0 {
			r.ContentType = cell(row, idxContent)
		}
		r.Likes = parseNumber(cell(row, idxLikes))
		r.Comments = parseNumber(cell(row, idxComments))
		r.Shares = parseNumber(cell(row, idxShares))

		if deriveEngagement {
			score := zeroIfNil(r.Likes) + 2*zeroIfNil(r.Comments) + 3*zeroIfNil(r.Shares)
			r.EngagementScore = &score
		} else if idxEngagement >= 0 {
			r.EngagementScore = parseNumber(cell(row, idxEngagement))
		}

		if len(extraIdx) > 0 {
			r.Extra = make(map[string]string, len(extraIdx))
			for j, i := range extraIdx {
				r.Extra[rs.ExtraColumns[j]] = cell(row, i)
			}
		}

		key := dedupKey(&r, rs.ExtraColumns)
		if seen[key] {
			continue
		}
		seen[key] = true

		r.Index = len(rs.Records)
		rs.Records = append(rs.Records, r)
	}

	return rs
}

// cell returns row[i], or "" when the column is absent or the row is short.
func cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return row[i]
}

// parseNumber parses a numeric cell. Empty or malformed values become nil
// rather than an error; the caller decides whether nil means zero.
func parseNumber(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}

func zeroIfNil(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

// titleCase upper-cases the first letter of each word and lower-cases the
// rest. Any non-letter rune ends a word, so "ai" becomes "Ai" and
// "how-to guide" becomes "How-To Guide".
func titleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	inWord := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			if inWord {
				r = unicode.ToLower(r)
			} else {
				r = unicode.ToUpper(r)
			}
			inWord = true
		} else {
			inWord = false
		}
		b.WriteRune(r)
	}
	return b.String()
}

// dedupKey builds a canonical string over every field of the record. Two
// records are duplicates only when all columns, including pass-through
// extras, are equal after normalization. Null values compare equal to each
// other, so a row that repeats with the same missing cells is a duplicate.
func dedupKey(r *types.Record, extraCols []string) string {
	parts := make([]string, 0, 7+len(extraCols))
	if r.Date != nil {
		parts = append(parts, r.Date.Format("2006-01-02"))
	} else {
		parts = append(parts, nullMark)
	}
	parts = append(parts, r.AuthorType, r.ContentType,
		numKey(r.Likes), numKey(r.Comments), numKey(r.Shares), numKey(r.EngagementScore))
	for _, c := range extraCols {
		parts = append(parts, r.Extra[c])
	}
	return strings.Join(parts, "\x1f")
}

func numKey(v *float64) string {
	if v == nil {
		return nullMark
	}
	return strconv.FormatFloat(*v, 'g', -1, 64)
}
