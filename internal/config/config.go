package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Source kinds.
const (
	SourceFile   = "file"
	SourceSQLite = "sqlite"
)

// Output formats.
const (
	FormatTable = "table"
	FormatJSON  = "json"
)

// Config holds all application configuration.
type Config struct {
	Amount float64 `yaml:"amount"`
	Tuning struct {
		Alpha      float64 `yaml:"alpha"`
		Iterations int     `yaml:"iterations"`
	} `yaml:"tuning"`
	Source struct {
		Kind string `yaml:"kind"`
		Path string `yaml:"path"`
	} `yaml:"source"`
	Schedule struct {
		Cron string `yaml:"cron"`
	} `yaml:"schedule"`
	Output struct {
		Format string `yaml:"format"`
	} `yaml:"output"`
	Log struct {
		Level  string `yaml:"level"`
		Pretty bool   `yaml:"pretty"`
	} `yaml:"log"`
}

// Load reads config from a YAML file, then applies .env and environment variable overrides.
// A missing file is not an error.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("ADVISOR_AMOUNT"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("parse ADVISOR_AMOUNT: %w", err)
		}
		cfg.Amount = f
	}
	if v := os.Getenv("ADVISOR_ALPHA"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("parse ADVISOR_ALPHA: %w", err)
		}
		cfg.Tuning.Alpha = f
	}
	if v := os.Getenv("ADVISOR_ITERATIONS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("parse ADVISOR_ITERATIONS: %w", err)
		}
		cfg.Tuning.Iterations = n
	}
	if v := os.Getenv("ADVISOR_SOURCE"); v != "" {
		cfg.Source.Kind = v
	}
	if v := os.Getenv("ADVISOR_SOURCE_PATH"); v != "" {
		cfg.Source.Path = v
	}
	if v := os.Getenv("ADVISOR_CRON"); v != "" {
		cfg.Schedule.Cron = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}

	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Tuning.Alpha == 0 {
		c.Tuning.Alpha = 2.0 / 3.0
	}
	if c.Tuning.Iterations == 0 {
		c.Tuning.Iterations = 10
	}
	if c.Source.Kind == "" {
		c.Source.Kind = SourceFile
	}
	if c.Source.Path == "" {
		switch c.Source.Kind {
		case SourceSQLite:
			c.Source.Path = "data/pools.db"
		default:
			c.Source.Path = "data/pools.json"
		}
	}
	if c.Schedule.Cron == "" {
		c.Schedule.Cron = "0 */15 * * * *"
	}
	if c.Output.Format == "" {
		c.Output.Format = FormatTable
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
}

// Validate checks that tuning and source settings are usable.
func (c *Config) Validate() error {
	if c.Tuning.Alpha <= 0 || c.Tuning.Alpha >= 1 {
		return fmt.Errorf("tuning.alpha must be in (0,1), got %v", c.Tuning.Alpha)
	}
	if c.Tuning.Iterations <= 0 {
		return fmt.Errorf("tuning.iterations must be positive, got %d", c.Tuning.Iterations)
	}
	switch c.Source.Kind {
	case SourceFile, SourceSQLite:
	default:
		return fmt.Errorf("source.kind must be %q or %q, got %q", SourceFile, SourceSQLite, c.Source.Kind)
	}
	if c.Source.Path == "" {
		return fmt.Errorf("source.path is required")
	}
	switch c.Output.Format {
	case FormatTable, FormatJSON:
	default:
		return fmt.Errorf("output.format must be %q or %q, got %q", FormatTable, FormatJSON, c.Output.Format)
	}
	return nil
}
