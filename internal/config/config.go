package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds the user-tunable settings of gridsheet.
type Config struct {
	LogLevel      string `mapstructure:"log_level"`
	LogFormat     string `mapstructure:"log_format"`
	LogFile       string `mapstructure:"log_file"`
	PixelsPerCell int    `mapstructure:"pixels_per_cell"`
	Mouse         bool   `mapstructure:"mouse"`
	Theme         string `mapstructure:"theme"`
}

const (
	defaultConfigPath    = "~/.config/gridsheet/config.toml"
	defaultLogFile       = "~/.local/state/gridsheet/gridsheet.log"
	defaultLogLevel      = "info"
	defaultLogFormat     = "text"
	defaultPixelsPerCell = 8

	maxPixelsPerCell = 64

	envPrefix = "GRIDSHEET"
)

// Load reads the config file at path, or GRIDSHEET_CONFIG, or the default
// location. A missing file is not an error. Every key can be overridden by a
// GRIDSHEET_<KEY> environment variable.
func Load(path string) (Config, error) {
	if strings.TrimSpace(path) == "" {
		path = os.Getenv(envPrefix + "_CONFIG")
	}
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	v := viper.New()
	v.SetDefault("log_level", defaultLogLevel)
	v.SetDefault("log_format", defaultLogFormat)
	v.SetDefault("log_file", defaultLogFile)
	v.SetDefault("pixels_per_cell", defaultPixelsPerCell)
	v.SetDefault("mouse", true)
	v.SetDefault("theme", "")

	v.SetConfigType("toml")
	v.SetConfigFile(resolved)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil && !isNotFound(err) {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	return cfg.normalized(), nil
}

func (c Config) normalized() Config {
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	if c.LogLevel == "" {
		c.LogLevel = defaultLogLevel
	}

	c.LogFormat = strings.ToLower(strings.TrimSpace(c.LogFormat))
	if c.LogFormat != "json" {
		c.LogFormat = defaultLogFormat
	}

	c.LogFile = strings.TrimSpace(c.LogFile)
	if c.LogFile == "" {
		c.LogFile = defaultLogFile
	}
	c.LogFile = mustExpand(c.LogFile)

	if c.PixelsPerCell <= 0 {
		c.PixelsPerCell = defaultPixelsPerCell
	}
	c.PixelsPerCell = min(c.PixelsPerCell, maxPixelsPerCell)

	c.Theme = strings.TrimSpace(c.Theme)
	return c
}

func isNotFound(err error) bool {
	var notFound viper.ConfigFileNotFoundError
	return errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist)
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return ExpandPath(defaultConfigPath)
	}
	return ExpandPath(path)
}

func mustExpand(path string) string {
	expanded, err := ExpandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

// ExpandPath resolves a leading "~" to the home directory and returns an
// absolute path.
func ExpandPath(path string) (string, error) {
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
