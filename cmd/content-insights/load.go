// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ahlawatsakshi6/ai-vs-human-content-analysis-dashboard/internal/dataset"
	"github.com/ahlawatsakshi6/ai-vs-human-content-analysis-dashboard/internal/store"
	"github.com/ahlawatsakshi6/ai-vs-human-content-analysis-dashboard/pkg/types"
)

// loadRecords builds the cleaned record set for a command, going through
// the SQLite cache unless it is disabled. A cache that fails to open is
// reported and skipped rather than aborting the command.
func loadRecords(cmd *cobra.Command) (*types.RecordSet, error) {
	cfg := appConfig(cmd)

	var cache dataset.Cache
	if cfg.Cache.Enabled {
		s, err := store.Open(cfg.Cache)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: dataset cache unavailable: %v\n", err)
		} else {
			defer s.Close()
			cache = s
		}
	}

	return dataset.Load(cfg.Dataset, cache)
}
