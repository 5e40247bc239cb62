package server

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/jonwraymond/statushub/cluster"
	"github.com/jonwraymond/statushub/secret"
)

// FileConfig is the YAML configuration accepted by LoadFile. Values may
// reference environment variables as ${VAR}; missing variables are a load
// error.
type FileConfig struct {
	// Addr is the host:port listen address.
	Addr string `yaml:"addr"`

	// HealthPath overrides the health endpoint path.
	HealthPath string `yaml:"health_path"`

	// StatsPath overrides the stats endpoint path.
	StatsPath string `yaml:"stats_path"`

	// AccessToken protects both endpoints when non-empty.
	AccessToken string `yaml:"access_token"`

	// LogLevel is the structured log level (debug|info|warn|error).
	LogLevel string `yaml:"log_level"`

	// AggregationTimeout is the fan-out deadline as a Go duration string,
	// e.g. "5s". Empty keeps the default.
	AggregationTimeout string `yaml:"aggregation_timeout"`
}

// LoadFile reads, env-expands, parses, and validates a YAML config file.
// Any failure is a setup-time configuration error.
func LoadFile(path string) (*FileConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("server: read config: %w", err)
	}

	expanded, err := secret.ExpandEnvStrict(string(raw))
	if err != nil {
		return nil, fmt.Errorf("server: expand config: %w", err)
	}

	var cfg FileConfig
	dec := yaml.NewDecoder(strings.NewReader(expanded))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("server: parse config: %w", err)
	}

	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *FileConfig) applyDefaults() {
	if c.HealthPath == "" {
		c.HealthPath = DefaultHealthPath
	}
	if c.StatsPath == "" {
		c.StatsPath = DefaultStatsPath
	}
}

func (c *FileConfig) validate() error {
	if c.Addr != "" {
		if err := ValidateAddr(c.Addr); err != nil {
			return err
		}
	}
	if err := ValidatePath(c.HealthPath); err != nil {
		return err
	}
	if err := ValidatePath(c.StatsPath); err != nil {
		return err
	}
	if _, err := c.Timeout(); err != nil {
		return err
	}
	return nil
}

// Timeout parses the aggregation timeout; zero means the default.
func (c *FileConfig) Timeout() (time.Duration, error) {
	if c.AggregationTimeout == "" {
		return cluster.DefaultTimeout, nil
	}
	d, err := time.ParseDuration(c.AggregationTimeout)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("server: invalid aggregation_timeout %q", c.AggregationTimeout)
	}
	return d, nil
}

// Options maps the file configuration onto server Options. Callbacks,
// registries, and the coordinator are still wired by the host.
func (c *FileConfig) Options() Options {
	return Options{
		HealthPath:  c.HealthPath,
		StatsPath:   c.StatsPath,
		AccessToken: c.AccessToken,
	}
}
