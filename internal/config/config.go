package config

import (
	"os"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	defaultPort     = "8080"
	defaultTimeout  = 30.0
	defaultDelay    = 1.0
	defaultLogLevel = "info"
)

// Config holds the application configuration
type Config struct {
	Port string `yaml:"port"`
	// Proxy is an http(s) or socks5 URL used for outbound Startpage requests
	Proxy string `yaml:"proxy"`
	// Timeout per HTTP request, in seconds
	Timeout float64 `yaml:"timeout"`
	// Delay between consecutive Startpage requests, in seconds
	Delay    float64 `yaml:"delay"`
	LogLevel string  `yaml:"log_level"`
	LogFile  string  `yaml:"log_file"`
	// BatchToken protects the batch endpoint when set
	BatchToken string `yaml:"batch_token"`
}

// Load builds the configuration from defaults, then the YAML file named by
// CONFIG_FILE (if any), then environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		Port:     defaultPort,
		Timeout:  defaultTimeout,
		Delay:    defaultDelay,
		LogLevel: defaultLogLevel,
	}

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}

	if port := os.Getenv("PORT"); port != "" {
		cfg.Port = port
	}
	if proxy := getEnvWithFallback("STARTPAGE_PROXY", "HTTPS_PROXY"); proxy != "" {
		cfg.Proxy = proxy
	}
	if err := setSeconds(&cfg.Timeout, "STARTPAGE_TIMEOUT"); err != nil {
		return nil, err
	}
	if err := setSeconds(&cfg.Delay, "STARTPAGE_DELAY"); err != nil {
		return nil, err
	}
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		cfg.LogLevel = level
	}
	if file := os.Getenv("LOG_FILE"); file != "" {
		cfg.LogFile = file
	}
	if token := os.Getenv("BATCH_TOKEN"); token != "" {
		cfg.BatchToken = token
	}

	if cfg.Timeout <= 0 {
		return nil, errors.Errorf("timeout must be positive, got %v", cfg.Timeout)
	}
	if cfg.Delay < 0 {
		return nil, errors.Errorf("delay must not be negative, got %v", cfg.Delay)
	}
	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "read config file %s", path)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return errors.Wrapf(err, "parse config file %s", path)
	}
	return nil
}

// TimeoutDuration returns Timeout as a time.Duration.
func (c *Config) TimeoutDuration() time.Duration {
	return seconds(c.Timeout)
}

// DelayDuration returns Delay as a time.Duration. A zero delay is returned as
// a negative duration, which the client treats as "no spacing".
func (c *Config) DelayDuration() time.Duration {
	if c.Delay == 0 {
		return -1
	}
	return seconds(c.Delay)
}

func seconds(v float64) time.Duration {
	return time.Duration(v * float64(time.Second))
}

func setSeconds(dst *float64, name string) error {
	raw := os.Getenv(name)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return errors.Wrapf(err, "invalid %s", name)
	}
	*dst = v
	return nil
}

// getEnvWithFallback returns the primary variable, or the fallback when the
// primary is unset or empty.
func getEnvWithFallback(primary, fallback string) string {
	if v := os.Getenv(primary); v != "" {
		return v
	}
	return os.Getenv(fallback)
}
