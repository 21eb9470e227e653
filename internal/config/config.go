// Package config loads Neon settings from an optional YAML file and
// NEON_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Keys.
const (
	KeyDBPath        = "db.path"
	KeyLogLevel      = "logging.level"
	KeyLogFormat     = "logging.format"
	KeyNoColor       = "ui.no_color"
	KeyDefaultTheme  = "ui.default_theme"
	envPrefix        = "NEON"
	configName       = "config"
	configDirName    = "neon"
	defaultLogLevel  = "warn"
	defaultLogFormat = "console"
)

// Config is the resolved configuration.
type Config struct {
	DBPath       string
	LogLevel     string
	LogFormat    string
	NoColor      bool
	DefaultTheme string

	v *viper.Viper
}

// Load reads configuration. An explicit path must exist; otherwise the
// default location is tried and a missing file is fine.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetDefault(KeyDBPath, "")
	v.SetDefault(KeyLogLevel, defaultLogLevel)
	v.SetDefault(KeyLogFormat, defaultLogFormat)
	v.SetDefault(KeyNoColor, false)
	v.SetDefault(KeyDefaultTheme, "")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if p := strings.TrimSpace(path); p != "" {
		v.SetConfigFile(p)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", p, err)
		}
	} else if dir, err := DefaultDir(); err == nil {
		v.SetConfigName(configName)
		v.SetConfigType("yaml")
		v.AddConfigPath(dir)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	// NO_COLOR is honored regardless of prefix, as most terminal tools do.
	if strings.TrimSpace(os.Getenv("NO_COLOR")) != "" {
		v.Set(KeyNoColor, true)
	}

	return fromViper(v), nil
}

func fromViper(v *viper.Viper) *Config {
	return &Config{
		DBPath:       v.GetString(KeyDBPath),
		LogLevel:     v.GetString(KeyLogLevel),
		LogFormat:    v.GetString(KeyLogFormat),
		NoColor:      v.GetBool(KeyNoColor),
		DefaultTheme: v.GetString(KeyDefaultTheme),
		v:            v,
	}
}

// Override sets a key from a command-line flag and refreshes the fields.
func (c *Config) Override(key string, value any) {
	c.v.Set(key, value)
	*c = *fromViper(c.v)
}

// Viper exposes the underlying instance (e.g. for the logger).
func (c *Config) Viper() *viper.Viper {
	return c.v
}

// DefaultDir is $XDG_CONFIG_HOME/neon or the OS equivalent.
func DefaultDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("get config dir: %w", err)
	}
	return filepath.Join(base, configDirName), nil
}
