// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the content-insights CLI: a toolkit
// that cleans a CSV of social-media posts, derives an engagement score, and
// serves analysis views over it (inspection, EDA tables, an HTTP dashboard,
// and a narrative report).
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ahlawatsakshi6/ai-vs-human-content-analysis-dashboard/internal/dataset"
	"github.com/ahlawatsakshi6/ai-vs-human-content-analysis-dashboard/internal/pipeline"
	"github.com/ahlawatsakshi6/ai-vs-human-content-analysis-dashboard/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the content-insights CLI.
var rootCmd = &cobra.Command{
	Use:   "content-insights",
	Short: "Analyze engagement of AI-generated vs human-written content",
	Long: `content-insights loads a CSV of social-media posts, cleans it
(day-month-year date parsing, author-type normalization, deduplication) and
derives an engagement score (likes + 2*comments + 3*shares).

The cleaned record set backs several views: dataset inspection and export,
EDA tables on stdout, a filterable HTTP dashboard, and a narrative Markdown
report comparing AI-generated with human-written content.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./content-insights.yaml or ~/.config/content-insights/config.yaml)")
	rootCmd.PersistentFlags().String("data", "", "dataset CSV path (overrides configured candidates)")
	rootCmd.PersistentFlags().Bool("no-cache", false, "bypass the dataset cache")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("content-insights")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "content-insights"))
		}
	}

	viper.SetDefault("dataset.paths", dataset.DefaultPaths)
	viper.SetDefault("dataset.date_format", pipeline.DefaultDateFormat)
	viper.SetDefault("cache.dir", ".cache")
	viper.SetDefault("cache.enabled", true)
	viper.SetDefault("dashboard.listen_addr", ":8080")
	viper.SetDefault("dashboard.log_level", "info")
	viper.SetDefault("report.output_path", "output/content-analysis-report.md")
	viper.SetDefault("report.format", string(types.ReportMarkdown))

	viper.SetEnvPrefix("CONTENT_INSIGHTS")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// appConfig assembles the toolkit configuration from viper and the
// persistent flag overrides.
func appConfig(cmd *cobra.Command) types.AppConfig {
	cfg := types.AppConfig{
		Dataset: types.DatasetConfig{
			Paths:      viper.GetStringSlice("dataset.paths"),
			DateFormat: viper.GetString("dataset.date_format"),
		},
		Cache: types.CacheConfig{
			Dir:     viper.GetString("cache.dir"),
			Enabled: viper.GetBool("cache.enabled"),
		},
		Dashboard: types.DashboardConfig{
			ListenAddr: viper.GetString("dashboard.listen_addr"),
			LogLevel:   viper.GetString("dashboard.log_level"),
		},
		Report: types.ReportConfig{
			OutputPath: viper.GetString("report.output_path"),
			Format:     types.ReportFormat(viper.GetString("report.format")),
		},
	}

	if data, _ := cmd.Flags().GetString("data"); data != "" {
		cfg.Dataset.Paths = []string{data}
	}
	if noCache, _ := cmd.Flags().GetBool("no-cache"); noCache {
		cfg.Cache.Enabled = false
	}
	return cfg
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
