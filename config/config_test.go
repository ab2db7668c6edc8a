package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/highridge/payslip/payroll"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, 400, cfg.Workers)
	assert.Equal(t, "output", cfg.OutputDir)
	assert.Equal(t, "payment_slips.json", cfg.OutputFile)
	assert.Equal(t, payroll.DefaultSalaryRange, cfg.SalaryRange())
	assert.Equal(t, "info", cfg.LogLevel)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), DefaultFile))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_PartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFile)
	require.NoError(t, os.WriteFile(path, []byte("workers: 25\nlog_level: debug\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 25, cfg.Workers)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "output", cfg.OutputDir)
	assert.Equal(t, 35000.0, cfg.SalaryMax)
}

func TestLoad_InvalidFallsBackToDefaults(t *testing.T) {
	tests := map[string]string{
		"bad yaml":        "workers: [",
		"zero workers":    "workers: 0",
		"inverted salary": "salary_min: 9000\nsalary_max: 100",
		"empty dir":       "output_dir: \"\"",
		"bad level":       "log_level: loud",
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), DefaultFile)
			require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

			cfg, err := Load(path)
			assert.Error(t, err)
			assert.Equal(t, Default(), cfg)
		})
	}
}
