package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

const (
	defaultStartURL   = "https://en.wikipedia.org/wiki/Main_Page"
	defaultUserAgent  = "webterm/0.1"
	defaultTimeout    = 15 * time.Second
	defaultConfigPath = "~/.config/webterm/config.toml"
)

// Config holds runtime settings for the browser.
type Config struct {
	StartURL  string
	UserAgent string
	Timeout   time.Duration
	LogFile   string
}

type fileConfig struct {
	StartURL       string `toml:"start_url"`
	UserAgent      string `toml:"user_agent"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
	LogFile        string `toml:"log_file"`
}

// Load builds the configuration from defaults, the optional TOML file,
// WEBTERM_* environment variables and finally a single positional start
// URL, each overriding the previous.
func Load(args []string) (Config, error) {
	cfg := Config{
		StartURL:  defaultStartURL,
		UserAgent: defaultUserAgent,
		Timeout:   defaultTimeout,
	}

	path := os.Getenv("WEBTERM_CONFIG")
	if strings.TrimSpace(path) == "" {
		path = defaultConfigPath
	}
	if err := cfg.applyFile(path); err != nil {
		return Config{}, err
	}
	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}

	if len(args) > 1 {
		return Config{}, fmt.Errorf("expected at most one start URL, got %d arguments", len(args))
	}
	if len(args) == 1 {
		cfg.StartURL = strings.TrimSpace(args[0])
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyFile(path string) error {
	resolved, err := expandPath(path)
	if err != nil {
		return err
	}
	data, err := os.ReadFile(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}

	var raw fileConfig
	if err := toml.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("parse config %s: %w", resolved, err)
	}
	if v := strings.TrimSpace(raw.StartURL); v != "" {
		c.StartURL = v
	}
	if v := strings.TrimSpace(raw.UserAgent); v != "" {
		c.UserAgent = v
	}
	if raw.TimeoutSeconds != 0 {
		c.Timeout = time.Duration(raw.TimeoutSeconds) * time.Second
	}
	if v := strings.TrimSpace(raw.LogFile); v != "" {
		c.LogFile = v
	}
	return nil
}

func (c *Config) applyEnv() error {
	if v := strings.TrimSpace(os.Getenv("WEBTERM_START_URL")); v != "" {
		c.StartURL = v
	}
	if v := strings.TrimSpace(os.Getenv("WEBTERM_USER_AGENT")); v != "" {
		c.UserAgent = v
	}
	if v := strings.TrimSpace(os.Getenv("WEBTERM_TIMEOUT_SECONDS")); v != "" {
		seconds, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("WEBTERM_TIMEOUT_SECONDS must be an integer: %q", v)
		}
		c.Timeout = time.Duration(seconds) * time.Second
	}
	if v := strings.TrimSpace(os.Getenv("WEBTERM_LOG_FILE")); v != "" {
		c.LogFile = v
	}
	if c.LogFile != "" {
		expanded, err := expandPath(c.LogFile)
		if err != nil {
			return fmt.Errorf("log file: %w", err)
		}
		c.LogFile = expanded
	}
	return nil
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.StartURL) == "" {
		return errors.New("start URL is required")
	}
	if strings.TrimSpace(c.UserAgent) == "" {
		return errors.New("user agent is required")
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive: %s", c.Timeout)
	}
	return nil
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
