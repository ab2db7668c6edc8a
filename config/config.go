// Package config loads the generator settings from an optional YAML file.
//
// A missing file is not an error: every field has a default matching the
// standard run (400 workers written to output/payment_slips.json).
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/highridge/payslip/payroll"
)

// DefaultFile is looked up in the working directory by the CLI.
const DefaultFile = "payslip.yaml"

const defaultConfigYAML = `# payslip configuration
workers: 400
output_dir: output
output_file: payment_slips.json
salary_min: 5000
salary_max: 35000
log_level: info
`

// Config models payslip.yaml.
type Config struct {
	Workers    int     `yaml:"workers"`
	OutputDir  string  `yaml:"output_dir"`
	OutputFile string  `yaml:"output_file"`
	SalaryMin  float64 `yaml:"salary_min"`
	SalaryMax  float64 `yaml:"salary_max"`
	LogLevel   string  `yaml:"log_level"`
}

// Default returns the built-in configuration.
func Default() Config {
	var cfg Config
	if err := yaml.Unmarshal([]byte(defaultConfigYAML), &cfg); err != nil {
		panic(fmt.Sprintf("config: invalid built-in defaults: %v", err))
	}
	return cfg
}

// Load reads path over the defaults. Fields absent from the file keep their
// default value.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := Parse(data, &cfg); err != nil {
		return Default(), fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML into cfg and validates the result.
func Parse(data []byte, cfg *Config) error {
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse yaml: %w", err)
	}
	return cfg.Validate()
}

func (c Config) Validate() error {
	if c.Workers <= 0 {
		return fmt.Errorf("workers must be positive, got %d", c.Workers)
	}
	if c.OutputDir == "" {
		return errors.New("output_dir is required")
	}
	if c.OutputFile == "" {
		return errors.New("output_file is required")
	}
	if err := c.SalaryRange().Validate(); err != nil {
		return err
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log_level %q", c.LogLevel)
	}
	return nil
}

func (c Config) SalaryRange() payroll.SalaryRange {
	return payroll.SalaryRange{Min: c.SalaryMin, Max: c.SalaryMax}
}
