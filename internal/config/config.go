package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. TTRACK_DATA_DIR
const EnvPrefix = "TTRACK"

// Configuration keys
const (
	KeyDataDir     = "data_dir"
	KeyReportTitle = "report_title"
	KeySeed        = "seed"
	KeyLogLevel    = "log_level"
)

// Config represents the application configuration
type Config struct {
	// Directory holding projects.json and timeEntries.json
	DataDir string `mapstructure:"data_dir" json:"data_dir"`

	// Heading of exported reports
	ReportTitle string `mapstructure:"report_title" json:"report_title"`

	// Start from sample projects and entries when the data directory is empty
	Seed bool `mapstructure:"seed" json:"seed"`

	// One of debug, info, warn, error
	LogLevel string `mapstructure:"log_level" json:"log_level"`
}

// Default returns the configuration used when no file exists
func Default(configDir string) *Config {
	return &Config{
		DataDir:     filepath.Join(configDir, "data"),
		ReportTitle: "Time Tracker Report",
		Seed:        true,
		LogLevel:    "warn",
	}
}

// GetGlobalConfigDir returns ~/.ttrack
func GetGlobalConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("error getting user home directory: %w", err)
	}
	return filepath.Join(homeDir, ".ttrack"), nil
}

// GetGlobalConfigPath returns ~/.ttrack/config.json
func GetGlobalConfigPath() (string, error) {
	dir, err := GetGlobalConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

func newViper(path string) *viper.Viper {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("json")
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	def := Default(filepath.Dir(path))
	v.SetDefault(KeyDataDir, def.DataDir)
	v.SetDefault(KeyReportTitle, def.ReportTitle)
	v.SetDefault(KeySeed, def.Seed)
	v.SetDefault(KeyLogLevel, def.LogLevel)
	return v
}

// Load loads the configuration from the given file path.
// A missing file yields the defaults; environment variables override both.
func Load(path string) (*Config, error) {
	v := newViper(path)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error decoding config: %w", err)
	}
	cfg.DataDir = expandHome(cfg.DataDir)

	return &cfg, nil
}

// LoadGlobalConfig loads ~/.ttrack/config.json
func LoadGlobalConfig() (*Config, error) {
	path, err := GetGlobalConfigPath()
	if err != nil {
		return nil, err
	}
	return Load(path)
}

// Save saves the configuration to the given file path
func (c *Config) Save(path string) error {
	// Create directory if it doesn't exist
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	v := viper.New()
	v.SetConfigType("json")
	v.Set(KeyDataDir, c.DataDir)
	v.Set(KeyReportTitle, c.ReportTitle)
	v.Set(KeySeed, c.Seed)
	v.Set(KeyLogLevel, c.LogLevel)

	return v.WriteConfigAs(path)
}

// SaveGlobalConfig saves the configuration to ~/.ttrack/config.json
func SaveGlobalConfig(c *Config) error {
	path, err := GetGlobalConfigPath()
	if err != nil {
		return err
	}
	return c.Save(path)
}

// Keys returns the configuration keys in display order
func Keys() []string {
	keys := []string{KeyDataDir, KeyReportTitle, KeySeed, KeyLogLevel}
	sort.Strings(keys)
	return keys
}

// normalizeKey accepts both data_dir and data-dir
func normalizeKey(key string) string {
	return strings.ReplaceAll(strings.ToLower(key), "-", "_")
}

// Get returns the value of a configuration key as text
func (c *Config) Get(key string) (string, error) {
	switch normalizeKey(key) {
	case KeyDataDir:
		return c.DataDir, nil
	case KeyReportTitle:
		return c.ReportTitle, nil
	case KeySeed:
		return strconv.FormatBool(c.Seed), nil
	case KeyLogLevel:
		return c.LogLevel, nil
	default:
		return "", fmt.Errorf("unknown configuration key: %s", key)
	}
}

// Set updates a configuration key from text
func (c *Config) Set(key, value string) error {
	switch normalizeKey(key) {
	case KeyDataDir:
		if strings.TrimSpace(value) == "" {
			return fmt.Errorf("%s cannot be empty", KeyDataDir)
		}
		c.DataDir = expandHome(value)
	case KeyReportTitle:
		c.ReportTitle = value
	case KeySeed:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid value for %s: %w", KeySeed, err)
		}
		c.Seed = b
	case KeyLogLevel:
		if _, err := parseLevel(value); err != nil {
			return err
		}
		c.LogLevel = strings.ToLower(value)
	default:
		return fmt.Errorf("unknown configuration key: %s", key)
	}
	return nil
}

// Logger builds a text logger writing to w at the configured level
func (c *Config) Logger(w io.Writer) *slog.Logger {
	level, err := parseLevel(c.LogLevel)
	if err != nil {
		level = slog.LevelWarn
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return level, fmt.Errorf("invalid log level %q", s)
	}
	return level, nil
}

func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}
	return path
}
