package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config holds the settings internboard reads at startup.
type Config struct {
	DataSource     string
	LogDir         string
	LogLevel       string
	SearchDebounce time.Duration
	RequestTimeout time.Duration
}

const (
	defaultConfigPath     = "~/.config/internboard/config.toml"
	defaultDataSource     = "data/internships.json"
	defaultLogDir         = "~/.local/share/internboard/logs"
	defaultLogLevel       = "info"
	defaultSearchDebounce = 300 * time.Millisecond
	defaultRequestTimeout = 30 * time.Second

	logFileName = "internboard.log"
)

// Environment variables that override the file.
const (
	EnvDataSource = "INTERNBOARD_DATA_SOURCE"
	EnvLogDir     = "INTERNBOARD_LOG_DIR"
	EnvLogLevel   = "INTERNBOARD_LOG_LEVEL"
)

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		DataSource:     defaultDataSource,
		LogDir:         mustExpand(defaultLogDir),
		LogLevel:       defaultLogLevel,
		SearchDebounce: defaultSearchDebounce,
		RequestTimeout: defaultRequestTimeout,
	}
}

// Load locates and parses the config, falling back to defaults when missing.
// Environment overrides are applied last.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg.withEnv()
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		DataSource            string `toml:"data_source"`
		LogDir                string `toml:"log_dir"`
		LogLevel              string `toml:"log_level"`
		SearchDebounceMS      int    `toml:"search_debounce_ms"`
		RequestTimeoutSeconds int    `toml:"request_timeout_seconds"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if v := strings.TrimSpace(raw.DataSource); v != "" {
		cfg.DataSource = v
	}
	if v := strings.TrimSpace(raw.LogDir); v != "" {
		cfg.LogDir = mustExpand(v)
	}
	if v := strings.TrimSpace(raw.LogLevel); v != "" {
		cfg.LogLevel = strings.ToLower(v)
	}
	if raw.SearchDebounceMS > 0 {
		cfg.SearchDebounce = time.Duration(raw.SearchDebounceMS) * time.Millisecond
	}
	if raw.RequestTimeoutSeconds > 0 {
		cfg.RequestTimeout = time.Duration(raw.RequestTimeoutSeconds) * time.Second
	}

	return cfg.withEnv()
}

func (c Config) withEnv() (Config, error) {
	if v := strings.TrimSpace(os.Getenv(EnvDataSource)); v != "" {
		c.DataSource = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogDir)); v != "" {
		dir, err := expandPath(v)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvLogDir, err)
		}
		c.LogDir = dir
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		c.LogLevel = strings.ToLower(v)
	}
	return c, nil
}

// LogPath returns the path to the application log file.
func (c Config) LogPath() string {
	if strings.TrimSpace(c.LogDir) == "" {
		return mustExpand(defaultLogDir + "/" + logFileName)
	}
	return filepath.Join(c.LogDir, logFileName)
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
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
