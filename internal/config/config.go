// Package config loads tool configuration from defaults, DQ_* environment
// variables, and an optional YAML file, in that order of precedence
// (file wins).
package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config is the complete tool configuration.
type Config struct {
	Logging LoggingConfig `yaml:"logging" envconfig:"LOGGING"`
	Output  OutputConfig  `yaml:"output" envconfig:"OUTPUT"`
	Checks  ChecksConfig  `yaml:"checks" envconfig:"CHECKS"`
}

// LoggingConfig controls the diagnostic logger. Check results always go
// to stdout regardless of these settings.
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL" default:"info" validate:"oneof=debug info warn error"`
	Format   string `yaml:"format" envconfig:"FORMAT" default:"text" validate:"oneof=text json"`
	Output   string `yaml:"output" envconfig:"OUTPUT" default:"stderr" validate:"oneof=stderr stdout file"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH" default:"logs/checker.log"`
}

// OutputConfig controls where exported reports land.
type OutputConfig struct {
	Dir      string `yaml:"dir" envconfig:"DIR" default:"reports"`
	Workbook string `yaml:"workbook" envconfig:"WORKBOOK" default:"quality_report.xlsx"`
	ExcelBOM bool   `yaml:"excel_bom" envconfig:"EXCEL_BOM" default:"true"`
}

// ChecksConfig carries the tunable check parameters.
type ChecksConfig struct {
	PriceMin    float64  `yaml:"price_min" envconfig:"PRICE_MIN" default:"0"`
	PriceMax    float64  `yaml:"price_max" envconfig:"PRICE_MAX" default:"5000" validate:"gtefield=PriceMin"`
	DateFormats []string `yaml:"date_formats" envconfig:"DATE_FORMATS" default:"2006-01-02,2006/01/02,02-01-2006" validate:"min=1"`
}

var validate = validator.New()

// Load builds the configuration. An empty path skips the file layer.
func Load(path string) (*Config, error) {
	var cfg Config

	if err := envconfig.Process("DQ", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}
