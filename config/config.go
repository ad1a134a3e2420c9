package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. TASKBRIDGE_SCRIPT_DEFAULT_LIMIT.
const EnvPrefix = "TASKBRIDGE"

// Config represents the configuration implementation.
type Config struct {
	AppName string
	RunMode string
	Logger  *Logger
	Script  *Script
	Filter  *Filter
	Viper   *viper.Viper
}

// newViper returns a viper instance with defaults and env overrides applied.
func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)
	return v
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app_name", "taskbridge")
	v.SetDefault("run_mode", "development")
	setLoggerDefaults(v)
	setScriptDefaults(v)
}

// LoadConfig loads the configuration from configPath. An empty path searches
// the standard locations; a missing file there is not an error and yields
// the defaults.
func LoadConfig(configPath string) (*Config, error) {
	v := newViper()

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		return fromViper(v), nil
	}

	v.SetConfigName("taskbridge")
	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".taskbridge"))
	}
	v.AddConfigPath("/etc/taskbridge")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}
	return fromViper(v), nil
}

// Default returns the configuration built from defaults and environment only.
func Default() *Config {
	return fromViper(newViper())
}

func fromViper(v *viper.Viper) *Config {
	return &Config{
		AppName: v.GetString("app_name"),
		RunMode: v.GetString("run_mode"),
		Logger:  getLoggerConfig(v),
		Script:  getScriptConfig(v),
		Filter:  getFilterConfig(v),
		Viper:   v,
	}
}
