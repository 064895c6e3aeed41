// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/spf13/cobra"

	"github.com/ahlawatsakshi6/ai-vs-human-content-analysis-dashboard/internal/dashboard"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Serve the interactive analytics dashboard",
	Long: `Dashboard loads and cleans the dataset once, then serves summary
KPIs and chart series over HTTP. Every endpoint accepts the same filters:
start_date, end_date, author_type, and content_type query parameters.`,
	RunE: runDashboard,
}

func runDashboard(cmd *cobra.Command, args []string) error {
	cfg := appConfig(cmd)
	if listen, _ := cmd.Flags().GetString("listen"); listen != "" {
		cfg.Dashboard.ListenAddr = listen
	}

	rs, err := loadRecords(cmd)
	if err != nil {
		return err
	}

	return dashboard.New(rs, cfg.Dashboard).Run()
}

func init() {
	dashboardCmd.Flags().String("listen", "", "listen address (default from config, :8080)")

	rootCmd.AddCommand(dashboardCmd)
}
