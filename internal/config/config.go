// Package config loads notetree settings from a config file and NOTETREE_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"notetree/internal/domain"
)

// EnvPrefix is prepended to every environment override, e.g. NOTETREE_DB_PATH
const EnvPrefix = "NOTETREE"

// Config keys
const (
	KeyDBPath             = "db_path"
	KeyLogLevel           = "log_level"
	KeyHoistedNoteID      = "hoisted_note_id"
	KeySiblingConcurrency = "sibling_concurrency"
)

// Config holds the resolved settings
type Config struct {
	DBPath             string
	LogLevel           string
	HoistedNoteID      string
	SiblingConcurrency int
}

// Dir returns the directory searched for config.toml
func Dir() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "notetree")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".config", "notetree")
}

// DefaultDBPath returns the database location used when none is configured
func DefaultDBPath() string {
	if dir := os.Getenv("XDG_DATA_HOME"); dir != "" {
		return filepath.Join(dir, "notetree", "notes.db")
	}
	return filepath.Join("~", ".local", "share", "notetree", "notes.db")
}

// New returns a viper instance with defaults and env bindings applied.
// cfgFile overrides the config.toml lookup when non-empty.
func New(cfgFile string) *viper.Viper {
	v := viper.New()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(Dir())
		v.SetConfigName("config")
		v.SetConfigType("toml")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	v.SetDefault(KeyDBPath, DefaultDBPath())
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyHoistedNoteID, domain.RootNoteID)
	v.SetDefault(KeySiblingConcurrency, 1)

	return v
}

// Load reads the config file, if any, and resolves the settings.
// A missing default config file is not an error; a missing explicit one is.
func Load(cfgFile string) (*Config, error) {
	v := New(cfgFile)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := &Config{
		DBPath:             v.GetString(KeyDBPath),
		LogLevel:           v.GetString(KeyLogLevel),
		HoistedNoteID:      v.GetString(KeyHoistedNoteID),
		SiblingConcurrency: v.GetInt(KeySiblingConcurrency),
	}

	if cfg.DBPath == "" {
		return nil, fmt.Errorf("%s must not be empty", KeyDBPath)
	}
	if cfg.HoistedNoteID == "" {
		cfg.HoistedNoteID = domain.RootNoteID
	}
	if cfg.SiblingConcurrency < 1 {
		cfg.SiblingConcurrency = 1
	}

	return cfg, nil
}
