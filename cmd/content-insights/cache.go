// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ahlawatsakshi6/ai-vs-human-content-analysis-dashboard/internal/store"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Manage the dataset cache",
	Long: `The dataset cache keeps the cleaned record set in a SQLite database
keyed by source path, so repeated invocations over an unchanged CSV skip
reparsing. Entries invalidate automatically when the file's modification
time or size changes.`,
}

var cacheStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "List cached datasets",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := store.Open(appConfig(cmd).Cache)
		if err != nil {
			return err
		}
		defer s.Close()

		entries, err := s.List()
		if err != nil {
			return err
		}
		if len(entries) == 0 {
			fmt.Println("Cache is empty.")
			return nil
		}
		for _, e := range entries {
			fmt.Printf("%s  %d rows  cached %s\n",
				e.Source, e.RowCount, e.CachedAt.Format("2006-01-02 15:04:05"))
		}
		return nil
	},
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all cached datasets",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := store.Open(appConfig(cmd).Cache)
		if err != nil {
			return err
		}
		defer s.Close()

		if err := s.Clear(); err != nil {
			return err
		}
		fmt.Println("Cache cleared.")
		return nil
	},
}

func init() {
	cacheCmd.AddCommand(cacheStatusCmd)
	cacheCmd.AddCommand(cacheClearCmd)
	rootCmd.AddCommand(cacheCmd)
}
