package types

// DatasetConfig holds settings for locating and parsing the source CSV.
type DatasetConfig struct {
	// Paths is the ordered list of candidate CSV locations. The first
	// existing path wins; if none exists the invocation fails.
	Paths []string `json:"paths" yaml:"paths"`

	// DateFormat is the Go reference layout for the Date column
	// (default "02-01-2006", i.e. day-month-year).
	DateFormat string `json:"date_format" yaml:"date_format"`
}

// CacheConfig holds settings for the SQLite dataset cache.
type CacheConfig struct {
	// Dir is the directory holding the cache database (default ".cache").
	Dir string `json:"dir" yaml:"dir"`

	// Enabled controls whether normalized datasets are cached at all.
	Enabled bool `json:"enabled" yaml:"enabled"`
}

// DashboardConfig holds settings for the analytics HTTP server.
type DashboardConfig struct {
	// ListenAddr is the address the server binds to (default ":8080").
	ListenAddr string `json:"listen_addr" yaml:"listen_addr"`

	// LogLevel sets the server log verbosity (default "info").
	LogLevel string `json:"log_level" yaml:"log_level"`
}

// ReportFormat selects the narrative report output format.
type ReportFormat string

const (
	ReportMarkdown ReportFormat = "markdown"
	ReportJSON     ReportFormat = "json"
	ReportYAML     ReportFormat = "yaml"
)

// ReportConfig holds settings for report generation.
type ReportConfig struct {
	// OutputPath is where the rendered report is written
	// (default "output/content-analysis-report.md").
	OutputPath string `json:"output_path" yaml:"output_path"`

	// Format selects the output format: markdown, json, or yaml.
	Format ReportFormat `json:"format" yaml:"format"`
}

// AppConfig groups all toolkit configuration.
type AppConfig struct {
	Dataset   DatasetConfig   `json:"dataset" yaml:"dataset"`
	Cache     CacheConfig     `json:"cache" yaml:"cache"`
	Dashboard DashboardConfig `json:"dashboard" yaml:"dashboard"`
	Report    ReportConfig    `json:"report" yaml:"report"`
}
