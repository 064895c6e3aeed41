// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package dataset

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/ahlawatsakshi6/ai-vs-human-content-analysis-dashboard/pkg/types"
)

const sampleCSV = `Date,Author_Type,Content_Type,Likes,Comments,Shares
15-03-2024,ai ,Video,10,2,1
15-03-2024,ai ,Video,10,2,1
16-03-2024,Human,Blog,5,0,0
`

// writeCSV is a test helper that creates a CSV file and returns its path.
func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "posts.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLocate(t *testing.T) {
	path := writeCSV(t, sampleCSV)

	got, err := Locate([]string{filepath.Join(t.TempDir(), "missing.csv"), path})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != path {
		t.Errorf("Locate = %q, want %q", got, path)
	}
}

func TestLocateMissingIsFatal(t *testing.T) {
	dir := t.TempDir()
	candidates := []string{filepath.Join(dir, "a.csv"), filepath.Join(dir, "b.csv")}

	_, err := Locate(candidates)
	if err == nil {
		t.Fatal("expected error for missing dataset")
	}
	for _, c := range candidates {
		if !strings.Contains(err.Error(), c) {
			t.Errorf("error %q does not name candidate %s", err, c)
		}
	}
}

func TestReadCSV(t *testing.T) {
	path := writeCSV(t, sampleCSV)

	raw, err := ReadCSV(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(raw.Columns) != 6 {
		t.Errorf("len(Columns) = %d, want 6", len(raw.Columns))
	}
	if len(raw.Rows) != 3 {
		t.Errorf("len(Rows) = %d, want 3", len(raw.Rows))
	}
	if raw.Rows[0][1] != "ai " {
		t.Errorf("cell = %q, want %q (no trimming at read time)", raw.Rows[0][1], "ai ")
	}
}

func TestReadCSVPadsShortRows(t *testing.T) {
	path := writeCSV(t, "A,B,C\n1,2\n")

	raw, err := ReadCSV(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(raw.Rows[0]) != 3 {
		t.Fatalf("row length = %d, want 3", len(raw.Rows[0]))
	}
	if raw.Rows[0][2] != "" {
		t.Errorf("padded cell = %q, want empty", raw.Rows[0][2])
	}
}

func TestReadCSVEmptyFile(t *testing.T) {
	path := writeCSV(t, "")
	if _, err := ReadCSV(path); err == nil {
		t.Fatal("expected error for empty file")
	}
}

func TestLoadWithoutCache(t *testing.T) {
	path := writeCSV(t, sampleCSV)

	rs, err := Load(types.DatasetConfig{Paths: []string{path}}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rs.Len() != 2 {
		t.Errorf("Len() = %d, want 2 after dedup", rs.Len())
	}
	if rs.Source != path {
		t.Errorf("Source = %q, want %q", rs.Source, path)
	}
}

// memCache is a Cache stub recording calls.
type memCache struct {
	set     *types.RecordSet
	modTime time.Time
	size    int64
	lookups int
	stores  int
}

func (m *memCache) Lookup(source string, modTime time.Time, size int64) (*types.RecordSet, bool, error) {
	m.lookups++
	if m.set != nil && m.modTime.Equal(modTime) && m.size == size {
		return m.set, true, nil
	}
	return nil, false, nil
}

func (m *memCache) Store(source string, modTime time.Time, size int64, rs *types.RecordSet) error {
	m.stores++
	m.set, m.modTime, m.size = rs, modTime, size
	return nil
}

func TestLoadUsesFreshCache(t *testing.T) {
	path := writeCSV(t, sampleCSV)
	cache := &memCache{}
	cfg := types.DatasetConfig{Paths: []string{path}}

	first, err := Load(cfg, cache)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cache.stores != 1 {
		t.Fatalf("stores = %d, want 1", cache.stores)
	}

	second, err := Load(cfg, cache)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cache.stores != 1 {
		t.Errorf("stores = %d, want 1 (fresh cache hit skips reparse)", cache.stores)
	}
	if second != first {
		t.Error("cache hit returned a different set")
	}
}

func TestLoadInvalidatesOnModTimeChange(t *testing.T) {
	path := writeCSV(t, sampleCSV)
	cache := &memCache{}
	cfg := types.DatasetConfig{Paths: []string{path}}

	if _, err := Load(cfg, cache); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Same size, older mtime: identity changed, cache must miss.
	past := time.Now().Add(-time.Hour)
	if err := os.Chtimes(path, past, past); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(cfg, cache); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cache.stores != 2 {
		t.Errorf("stores = %d, want 2 (stale entry replaced)", cache.stores)
	}
}

func TestSummarize(t *testing.T) {
	raw := &types.RawTable{
		Columns: []string{"Date", "Author_Type", "Likes"},
		Rows: [][]string{
			{"01-01-2024", "Ai", "10"},
			{"02-01-2024", "Human", "20"},
			{"bad-date", "Ai", ""},
		},
	}

	sums := Summarize(raw, "")

	if sums[0].Kind != "categorical" {
		t.Errorf("Date kind = %q, want categorical (one unparseable value)", sums[0].Kind)
	}
	author := sums[1]
	if author.Kind != "categorical" || author.Unique != 2 || author.NonNull != 3 {
		t.Errorf("Author summary = %+v, want categorical/2 unique/3 non-null", author)
	}
	if len(author.TopValues) == 0 || author.TopValues[0].Value != "Ai" {
		t.Errorf("TopValues = %v, want Ai first", author.TopValues)
	}
	likes := sums[2]
	if likes.Kind != "numeric" {
		t.Fatalf("Likes kind = %q, want numeric", likes.Kind)
	}
	if likes.Missing != 1 || likes.Min != 10 || likes.Max != 20 || likes.Mean != 15 {
		t.Errorf("Likes summary = %+v, want missing 1, min 10, max 20, mean 15", likes)
	}
}

func TestSummarizeAllDatesIsDatetime(t *testing.T) {
	raw := &types.RawTable{
		Columns: []string{"Date"},
		Rows:    [][]string{{"01-01-2024"}, {"02-01-2024"}},
	}
	sums := Summarize(raw, "")
	if sums[0].Kind != "datetime" {
		t.Errorf("kind = %q, want datetime", sums[0].Kind)
	}
}
