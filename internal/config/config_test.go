package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dqcli/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
	assert.Equal(t, "stderr", cfg.Logging.Output)
	assert.Equal(t, "reports", cfg.Output.Dir)
	assert.Equal(t, "quality_report.xlsx", cfg.Output.Workbook)
	assert.True(t, cfg.Output.ExcelBOM)
	assert.Equal(t, float64(0), cfg.Checks.PriceMin)
	assert.Equal(t, float64(5000), cfg.Checks.PriceMax)
	assert.Equal(t, []string{"2006-01-02", "2006/01/02", "02-01-2006"}, cfg.Checks.DateFormats)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("DQ_LOGGING_LEVEL", "debug")
	t.Setenv("DQ_CHECKS_PRICE_MAX", "10000")

	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, float64(10000), cfg.Checks.PriceMax)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
logging:
  level: warn
  format: json
checks:
  price_min: 10
  price_max: 100
  date_formats:
    - "2006-01-02"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, float64(10), cfg.Checks.PriceMin)
	assert.Equal(t, float64(100), cfg.Checks.PriceMax)
	assert.Equal(t, []string{"2006-01-02"}, cfg.Checks.DateFormats)

	// Sections the file omits keep their defaults.
	assert.Equal(t, "reports", cfg.Output.Dir)
}

func TestLoadValidation(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name: "bad log level",
			content: `
logging:
  level: loud
`,
		},
		{
			name: "max below min",
			content: `
checks:
  price_min: 100
  price_max: 10
`,
		},
		{
			name: "no date formats",
			content: `
checks:
  date_formats: []
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0644))

			_, err := config.Load(path)
			assert.Error(t, err)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
