// Package config loads the CLI configuration: a YAML file under the data
// directory, with environment variables taking precedence over the file.
package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultAPIURL matches the backend's development default.
const DefaultAPIURL = "http://127.0.0.1:8002/api"

// Environment variables overriding the file.
const (
	EnvAPIURL   = "TASKZILLA_API_URL"
	EnvDataDir  = "TASKZILLA_DATA_DIR"
	EnvOutput   = "TASKZILLA_OUTPUT"
	EnvLogLevel = "TASKZILLA_LOG_LEVEL"
	EnvTimeout  = "TASKZILLA_TIMEOUT_SECONDS"
	EnvConfig   = "TASKZILLA_CONFIG"
	EnvNoNotify = "TASKZILLA_QUIET"
)

// Config is the resolved CLI configuration.
type Config struct {
	APIURL         string `yaml:"api_url,omitempty"`
	DataDir        string `yaml:"data_dir,omitempty"`
	Output         string `yaml:"output,omitempty"`
	LogLevel       string `yaml:"log_level,omitempty"`
	TimeoutSeconds int    `yaml:"timeout_seconds,omitempty"`
	Quiet          bool   `yaml:"quiet,omitempty"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		APIURL:         DefaultAPIURL,
		Output:         "text",
		LogLevel:       "warn",
		TimeoutSeconds: 30,
	}
}

// DefaultDir returns ~/.taskzilla.
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, ".taskzilla"), nil
}

// DefaultPath returns the default config file location, honoring
// TASKZILLA_CONFIG.
func DefaultPath() (string, error) {
	if path := os.Getenv(EnvConfig); path != "" {
		return path, nil
	}
	dir, err := DefaultDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Load reads the config file at path, overlays environment variables, and
// validates the result. A missing file is not an error; defaults apply.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// Defaults only.
	case err != nil:
		return nil, fmt.Errorf("read config file: %w", err)
	default:
		// Expand environment variables in the config
		expanded := os.ExpandEnv(string(data))
		if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
			return nil, fmt.Errorf("unmarshal config: %w", err)
		}
	}

	cfg.applyEnv()

	if cfg.DataDir == "" {
		dir, err := DefaultDir()
		if err != nil {
			return nil, err
		}
		cfg.DataDir = dir
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv(EnvAPIURL); v != "" {
		c.APIURL = v
	}
	if v := os.Getenv(EnvDataDir); v != "" {
		c.DataDir = v
	}
	if v := os.Getenv(EnvOutput); v != "" {
		c.Output = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv(EnvTimeout); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.TimeoutSeconds = n
		}
	}
	if v := os.Getenv(EnvNoNotify); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Quiet = b
		}
	}
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	u, err := url.Parse(c.APIURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("api_url %q is not an absolute URL", c.APIURL)
	}
	switch c.Output {
	case "text", "json", "yaml":
	default:
		return fmt.Errorf("output must be one of text, json, yaml; got %q", c.Output)
	}
	if c.TimeoutSeconds <= 0 {
		return fmt.Errorf("timeout_seconds must be positive")
	}
	return nil
}

// String renders the resolved configuration for text output.
func (c *Config) String() string {
	return fmt.Sprintf("api_url: %s\ndata_dir: %s\noutput: %s\nlog_level: %s\ntimeout_seconds: %d\nquiet: %v",
		c.APIURL, c.DataDir, c.Output, c.LogLevel, c.TimeoutSeconds, c.Quiet)
}

// Timeout returns the request timeout as a duration.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// Save writes the configuration to path, creating the directory as needed.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}
