// =============================================================================
// Sales Analytics System - Configuration Module
// =============================================================================
//
// This module loads the application configuration from a YAML file. The
// configuration covers:
//   - Input/output/archive paths
//   - Output file naming (with {uuid}/{timestamp} placeholders)
//   - Analysis defaults (top-N products, low-quantity threshold)
//   - Catalog API settings (endpoint, record limit, timeout)
//
// Defaults are applied after parsing, so a partial file is fine. A missing
// file at the default location is not an error; the built-in defaults are
// used instead.
//
// =============================================================================

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultPath is where the config file is looked for when --config is not
// given.
const DefaultPath = "config.yaml"

// =============================================================================
// CONFIGURATION STRUCTURES
// =============================================================================

// Config holds the full application configuration.
type Config struct {
	// DataFile is the pipe-delimited sales data file to analyze.
	DataFile string `yaml:"data_file"`

	// OutputDir is where the report, enriched data file, and workbook are
	// written.
	OutputDir string `yaml:"output_dir"`

	// InputArchiveDir is where the data file is moved after a successful run
	// when ArchiveOnSuccess is set.
	InputArchiveDir  string `yaml:"input_archive_dir"`
	ArchiveOnSuccess bool   `yaml:"archive_on_success"`

	// ReportNameFormat and friends name the output files. Supported
	// placeholders: {uuid}, {timestamp}, {date}, {time}.
	ReportNameFormat   string `yaml:"report_name_format"`
	EnrichedNameFormat string `yaml:"enriched_name_format"`
	WorkbookNameFormat string `yaml:"workbook_name_format"`

	// ExportWorkbook enables the XLSX workbook export of the run.
	ExportWorkbook bool `yaml:"export_workbook"`

	// LogLevel controls verbosity: "debug", "info", "warn", "error".
	LogLevel string `yaml:"log_level"`

	Analysis AnalysisSettings `yaml:"analysis"`
	Catalog  CatalogSettings  `yaml:"catalog"`
}

// AnalysisSettings holds the tunable aggregation parameters.
type AnalysisSettings struct {
	// TopProducts is how many products the top-selling ranking returns.
	TopProducts int `yaml:"top_products"`

	// LowQuantityThreshold marks a product low-performing when its total
	// quantity is strictly below this value.
	LowQuantityThreshold int `yaml:"low_quantity_threshold"`
}

// CatalogSettings holds the product catalog API settings.
type CatalogSettings struct {
	// URL is the products endpoint.
	URL string `yaml:"url"`

	// Limit caps the number of catalog records requested.
	Limit int `yaml:"limit"`

	// TimeoutSeconds bounds the whole catalog call.
	TimeoutSeconds int `yaml:"timeout_seconds"`
}

// =============================================================================
// LOADING
// =============================================================================

// Default returns the built-in configuration.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

// Load reads the configuration from a YAML file and applies defaults. A
// missing file at the default path yields the default configuration; a
// missing file at an explicitly requested path is an error.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && path == DefaultPath {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyDefaults(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
func applyDefaults(cfg *Config) {
	if cfg.DataFile == "" {
		cfg.DataFile = "./data/sales_data.txt"
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = "./output"
	}
	if cfg.InputArchiveDir == "" {
		cfg.InputArchiveDir = "./input_archive"
	}
	if cfg.ReportNameFormat == "" {
		cfg.ReportNameFormat = "sales_report_{timestamp}"
	}
	if cfg.EnrichedNameFormat == "" {
		cfg.EnrichedNameFormat = "enriched_sales_data"
	}
	if cfg.WorkbookNameFormat == "" {
		cfg.WorkbookNameFormat = "sales_report_{timestamp}"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.Analysis.TopProducts == 0 {
		cfg.Analysis.TopProducts = 5
	}
	if cfg.Analysis.LowQuantityThreshold == 0 {
		cfg.Analysis.LowQuantityThreshold = 10
	}
	if cfg.Catalog.URL == "" {
		cfg.Catalog.URL = "https://dummyjson.com/products"
	}
	if cfg.Catalog.Limit == 0 {
		cfg.Catalog.Limit = 100
	}
	if cfg.Catalog.TimeoutSeconds == 0 {
		cfg.Catalog.TimeoutSeconds = 10
	}
}

// validate checks the configuration and creates the output directory if it
// does not exist yet.
func validate(cfg *Config) error {
	if cfg.Analysis.TopProducts < 0 {
		return fmt.Errorf("analysis.top_products must not be negative")
	}
	if cfg.Analysis.LowQuantityThreshold < 0 {
		return fmt.Errorf("analysis.low_quantity_threshold must not be negative")
	}
	if cfg.Catalog.TimeoutSeconds < 0 {
		return fmt.Errorf("catalog.timeout_seconds must not be negative")
	}

	if _, err := os.Stat(cfg.OutputDir); os.IsNotExist(err) {
		if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", cfg.OutputDir, err)
		}
	}

	return nil
}
