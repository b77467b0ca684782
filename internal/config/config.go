// Package config loads pagetable settings from YAML, the environment and CLI flags.
//
// Precedence, lowest to highest: built-in defaults, the config file, PAGETABLE_*
// environment variables, explicitly set CLI flags (applied by the cli package).
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/rshade/pagetable/internal/pagination"
)

// Environment variables recognized by Load.
const (
	EnvConfigPath    = "PAGETABLE_CONFIG"
	EnvPageSize      = "PAGETABLE_PAGE_SIZE"
	EnvMiddleButtons = "PAGETABLE_MIDDLE_BUTTONS"
	EnvLogLevel      = "PAGETABLE_LOG_LEVEL"
	EnvLogFormat     = "PAGETABLE_LOG_FORMAT"
)

// Demo feed defaults.
const (
	DefaultDemoTicks    = 10
	DefaultDemoInterval = time.Second
	DefaultDemoMinBatch = 65
	DefaultDemoMaxBatch = 100
	DefaultDemoColumns  = 10
	defaultHeaderWidth  = 10
	configDirName       = ".pagetable"
	configFileName      = "config.yaml"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config is the full pagetable configuration.
type Config struct {
	Table   TableConfig   `yaml:"table"   json:"table"`
	Logging LoggingConfig `yaml:"logging" json:"logging"`
	Demo    DemoConfig    `yaml:"demo"    json:"demo"`
}

// TableConfig holds the pagination settings and the column header.
type TableConfig struct {
	PageSize          int      `yaml:"page_size"           json:"page_size"`
	MiddleButtonCount int      `yaml:"middle_button_count" json:"middle_button_count"`
	Header            []string `yaml:"header,omitempty"    json:"header,omitempty"`
}

// LoggingConfig holds log level, format and optional file destination.
type LoggingConfig struct {
	Level  string `yaml:"level"          json:"level"`
	Format string `yaml:"format"         json:"format"`
	File   string `yaml:"file,omitempty" json:"file,omitempty"`
}

// DemoConfig controls the synthetic data feed of `pagetable demo`.
type DemoConfig struct {
	Ticks    int           `yaml:"ticks"     json:"ticks"`
	Interval time.Duration `yaml:"interval"  json:"interval"`
	MinBatch int           `yaml:"min_batch" json:"min_batch"`
	MaxBatch int           `yaml:"max_batch" json:"max_batch"`
	Columns  int           `yaml:"columns"   json:"columns"`
	Seed     int64         `yaml:"seed"      json:"seed"`
}

// New returns a Config populated with defaults.
func New() *Config {
	return &Config{
		Table: TableConfig{
			PageSize:          pagination.DefaultPageSize,
			MiddleButtonCount: pagination.DefaultMiddleButtonCount,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Demo: DemoConfig{
			Ticks:    DefaultDemoTicks,
			Interval: DefaultDemoInterval,
			MinBatch: DefaultDemoMinBatch,
			MaxBatch: DefaultDemoMaxBatch,
			Columns:  DefaultDemoColumns,
		},
	}
}

// Pagination returns the engine configuration for the table section.
func (t TableConfig) Pagination() pagination.Config {
	return pagination.Config{
		PageSize:          t.PageSize,
		MiddleButtonCount: t.MiddleButtonCount,
	}
}

// HeaderOrDefault returns the configured header, or "Column 1".."Column 10" when unset.
func (t TableConfig) HeaderOrDefault() []string {
	if len(t.Header) > 0 {
		return t.Header
	}
	return DefaultHeader(defaultHeaderWidth)
}

// DefaultHeader returns n generic column names.
func DefaultHeader(n int) []string {
	header := make([]string, n)
	for i := range header {
		header[i] = fmt.Sprintf("Column %d", i+1)
	}
	return header
}

// Load builds a Config from defaults, the YAML file at path and the environment.
// An empty path resolves through ResolvePath; a missing default file is not an error,
// but a missing explicit file is.
func Load(path string, lookupEnv func(string) (string, bool)) (*Config, error) {
	cfg := New()

	explicit := path != ""
	if !explicit {
		path = ResolvePath(lookupEnv)
		explicit = path != "" && isSet(lookupEnv, EnvConfigPath)
	}

	if path != "" {
		if err := cfg.mergeFile(path); err != nil {
			if explicit || !errors.Is(err, os.ErrNotExist) {
				return nil, err
			}
		}
	}

	if err := cfg.ApplyEnv(lookupEnv); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ResolvePath returns $PAGETABLE_CONFIG or ~/.pagetable/config.yaml.
// It returns "" when neither can be determined.
func ResolvePath(lookupEnv func(string) (string, bool)) string {
	if p, ok := lookupEnv(EnvConfigPath); ok && p != "" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, configDirName, configFileName)
}

func isSet(lookupEnv func(string) (string, bool), key string) bool {
	v, ok := lookupEnv(key)
	return ok && v != ""
}

// mergeFile unmarshals the YAML file onto cfg; sections absent from the file keep
// their current values.
func (c *Config) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config file %s: %w", path, err)
	}
	if err = yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return nil
}

// ApplyEnv overrides values from PAGETABLE_* environment variables.
func (c *Config) ApplyEnv(lookupEnv func(string) (string, bool)) error {
	if v, ok := lookupEnv(EnvPageSize); ok && v != "" {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%w: %s=%q is not an integer", ErrInvalidConfig, EnvPageSize, v)
		}
		c.Table.PageSize = n
	}
	if v, ok := lookupEnv(EnvMiddleButtons); ok && v != "" {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%w: %s=%q is not an integer", ErrInvalidConfig, EnvMiddleButtons, v)
		}
		c.Table.MiddleButtonCount = n
	}
	if v, ok := lookupEnv(EnvLogLevel); ok && v != "" {
		c.Logging.Level = v
	}
	if v, ok := lookupEnv(EnvLogFormat); ok && v != "" {
		c.Logging.Format = v
	}
	return nil
}

// Validate checks every section.
func (c *Config) Validate() error {
	if err := c.Table.Pagination().Validate(); err != nil {
		return fmt.Errorf("%w: table: %w", ErrInvalidConfig, err)
	}
	if err := c.Demo.Validate(); err != nil {
		return fmt.Errorf("%w: demo: %w", ErrInvalidConfig, err)
	}
	switch c.Logging.Format {
	case "", "console", "json":
	default:
		return fmt.Errorf("%w: logging: format must be 'console' or 'json', got %q", ErrInvalidConfig, c.Logging.Format)
	}
	return nil
}

// Validate checks the demo feed bounds.
func (d DemoConfig) Validate() error {
	switch {
	case d.Ticks < 0:
		return fmt.Errorf("ticks must be >= 0, got %d", d.Ticks)
	case d.Interval < 0:
		return fmt.Errorf("interval must be >= 0, got %s", d.Interval)
	case d.MinBatch < 1:
		return fmt.Errorf("min_batch must be >= 1, got %d", d.MinBatch)
	case d.MaxBatch < d.MinBatch:
		return fmt.Errorf("max_batch (%d) must be >= min_batch (%d)", d.MaxBatch, d.MinBatch)
	case d.Columns < 1:
		return fmt.Errorf("columns must be >= 1, got %d", d.Columns)
	}
	return nil
}
