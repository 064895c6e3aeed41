// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "strings"

// Canonical column names the pipeline recognizes.
const (
	ColDate        = "date"
	ColAuthorType  = "author_type"
	ColContentType = "content_type"
	ColLikes       = "likes"
	ColComments    = "comments"
	ColShares      = "shares"
	ColEngagement  = "engagement_score"
)

// CanonicalColumn lower-cases a column name and folds spaces into
// underscores, so "Author Type", "author_type" and "AUTHOR_TYPE" all match.
func CanonicalColumn(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	return strings.ReplaceAll(s, " ", "_")
}

// RawTable is a parsed delimited file before cleaning: a header plus rows of
// text cells. Rows are padded to the header width at read time.
type RawTable struct {
	// Source is the path the table was read from.
	Source string `json:"source" yaml:"source"`

	// Columns holds the header names in file order.
	Columns []string `json:"columns" yaml:"columns"`

	// Rows holds each record's cells, aligned with Columns.
	Rows [][]string `json:"rows" yaml:"rows"`
}

// HasColumn reports whether the table has a column with the given canonical
// name. Matching ignores case and treats spaces and underscores as equal.
func (t *RawTable) HasColumn(name string) bool {
	return t.ColumnIndex(name) >= 0
}

// ColumnIndex returns the position of the named column, or -1 if absent.
func (t *RawTable) ColumnIndex(name string) int {
	want := CanonicalColumn(name)
	for i, c := range t.Columns {
		if CanonicalColumn(c) == want {
			return i
		}
	}
	return -1
}
