// Package config defines process configuration structures and loading hooks.
//
// Conventions:
// - Provide New() to build a Config with defaults.
// - Load accepts context.Context as the first parameter.
// - Errors are wrapped with this package's sentinel kinds.
package config

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// LogFormat selects text or json log output.
	LogFormat string `koanf:"log_format"`

	// OutputDir is where exported documents are written.
	OutputDir string `koanf:"output_dir"`

	// MetricsFile, when set, receives Prometheus text exposition after each command.
	MetricsFile string `koanf:"metrics_file"`

	// PageSize is the exported document page size: A3, A4, A5, Letter or Legal.
	PageSize string `koanf:"page_size"`

	// ReportTitle is printed at the top of exported documents.
	ReportTitle string `koanf:"report_title"`

	// DefaultTraitScore prefills every slider in the input form.
	DefaultTraitScore float64 `koanf:"default_trait_score"`
}

// New creates a Config with defaults.
func New() *Config {
	return &Config{
		LogLevel:          "info",
		LogFormat:         "text",
		OutputDir:         ".",
		MetricsFile:       "",
		PageSize:          "A4",
		ReportTitle:       "Career Path Finder",
		DefaultTraitScore: 50,
	}
}
