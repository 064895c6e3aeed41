// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package dataset locates and reads the source CSV and builds the cleaned
// RecordSet, consulting an optional cache keyed by the file's identity so
// repeated invocations skip reparsing an unchanged source.
package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/ahlawatsakshi6/ai-vs-human-content-analysis-dashboard/internal/pipeline"
	"github.com/ahlawatsakshi6/ai-vs-human-content-analysis-dashboard/pkg/types"
)

// DefaultPaths is the candidate list probed when no paths are configured.
var DefaultPaths = []string{
	"ai_vs_human_content_dataset.csv",
	"data/ai_vs_human_content_dataset.csv",
}

// Cache is the lookup side of the dataset cache. A nil Cache disables
// caching. Implementations decide freshness from the source identity and
// file metadata.
type Cache interface {
	// Lookup returns the cached RecordSet for source if it is still fresh
	// for the given modification time and size.
	Lookup(source string, modTime time.Time, size int64) (*types.RecordSet, bool, error)

	// Store saves the RecordSet under the source identity, replacing any
	// stale entry.
	Store(source string, modTime time.Time, size int64, rs *types.RecordSet) error
}

// Locate probes the candidate paths in order and returns the first that
// exists. No candidate existing is a fatal, user-visible condition.
func Locate(paths []string) (string, error) {
	if len(paths) == 0 {
		paths = DefaultPaths
	}
	for _, p := range paths {
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			return p, nil
		}
	}
	return "", fmt.Errorf("dataset not found: looked for %s", strings.Join(paths, ", "))
}

// ReadCSV reads the whole file into a RawTable. Short rows are padded to
// the header width; long rows are truncated to it.
func ReadCSV(path string) (*types.RawTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening dataset: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("dataset %s is empty", path)
		}
		return nil, fmt.Errorf("reading header: %w", err)
	}

	t := &types.RawTable{Source: path, Columns: header}
	for {
		rec, err := r.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("reading row %d: %w", len(t.Rows)+2, err)
		}
		row := make([]string, len(header))
		copy(row, rec)
		t.Rows = append(t.Rows, row)
	}

	return t, nil
}

// Load returns the cleaned RecordSet for the configured dataset. When cache
// is non-nil and holds a fresh entry for the located file, the cached set is
// returned without reparsing. Cache failures fall back to a fresh parse and
// are reported on stderr, never fatal.
func Load(cfg types.DatasetConfig, cache Cache) (*types.RecordSet, error) {
	path, err := Locate(cfg.Paths)
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}

	if cache != nil {
		rs, ok, err := cache.Lookup(path, info.ModTime(), info.Size())
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: cache lookup failed: %v\n", err)
		} else if ok {
			return rs, nil
		}
	}

	raw, err := ReadCSV(path)
	if err != nil {
		return nil, err
	}
	rs := pipeline.Normalize(raw, cfg.DateFormat)

	if cache != nil {
		if err := cache.Store(path, info.ModTime(), info.Size(), rs); err != nil {
			fmt.Fprintf(os.Stderr, "warning: cache store failed: %v\n", err)
		}
	}

	return rs, nil
}
