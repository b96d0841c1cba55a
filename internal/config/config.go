package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	defaultFilterPattern = "JiraError"
	defaultWindowMinutes = 5
)

// Config holds optional defaults loaded from ~/.config/aws-ops/config.yaml.
type Config struct {
	DefaultProfile string `yaml:"default_profile"`
	DefaultRegion  string `yaml:"default_region"`
	OrgProfile     string `yaml:"org_profile"`
	LogGroup       string `yaml:"log_group"`
	FilterPattern  string `yaml:"filter_pattern"`
	WindowMinutes  int    `yaml:"window_minutes"`
	ReportBucket   string `yaml:"report_bucket"`
	ReportPrefix   string `yaml:"report_prefix"`
}

// Path returns the location of the config file under home.
func Path(home string) string {
	return filepath.Join(home, ".config", "aws-ops", "config.yaml")
}

// Load reads the config file. Returns zero-value Config if the file doesn't exist.
func Load() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return &Config{}, nil
	}
	return LoadFile(Path(home))
}

// LoadFile reads config from path. A missing file is not an error.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// FromEnv builds a Config from environment variables, for the Lambda
// handlers where no config file exists.
func FromEnv(getenv func(string) string) (*Config, error) {
	cfg := &Config{
		DefaultRegion: getenv("AWS_REGION"),
		LogGroup:      getenv("LOG_GROUP"),
		FilterPattern: getenv("FILTER_PATTERN"),
	}
	if v := getenv("WINDOW_MINUTES"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("WINDOW_MINUTES: %w", err)
		}
		cfg.WindowMinutes = n
	}
	return cfg, nil
}

// Merge applies CLI flag overrides. Flags take precedence over config defaults.
func (c *Config) Merge(profile, region string) (string, string) {
	p := c.DefaultProfile
	if profile != "" {
		p = profile
	}
	r := c.DefaultRegion
	if region != "" {
		r = region
	}
	return p, r
}

// Pattern returns the CloudWatch Logs filter pattern, falling back to JiraError.
func (c *Config) Pattern() string {
	if c.FilterPattern == "" {
		return defaultFilterPattern
	}
	return c.FilterPattern
}

// Window returns the half-width of the alarm search window.
func (c *Config) Window() time.Duration {
	if c.WindowMinutes <= 0 {
		return defaultWindowMinutes * time.Minute
	}
	return time.Duration(c.WindowMinutes) * time.Minute
}
