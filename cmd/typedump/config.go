package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
)

// configFile is looked up in the working directory.
const configFile = "typedump.toml"

// Config holds the tool's settings. Every key can be overridden with a
// TYPEDUMP_ environment variable, e.g. TYPEDUMP_LOG_LEVEL=debug.
type Config struct {
	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"`
	Color     string `mapstructure:"color"`
	Indent    int    `mapstructure:"indent"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log_level", "warn")
	v.SetDefault("log_format", "console")
	v.SetDefault("color", "auto")
	v.SetDefault("indent", 2)
}

// loadConfig merges defaults, the optional config file in dir and the
// environment, in increasing precedence.
func loadConfig(dir string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("TYPEDUMP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	path := filepath.Join(dir, configFile)
	if _, err := os.Stat(path); err == nil {
		v.SetConfigFile(path)
		v.SetConfigType("toml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log_level %q", c.LogLevel)
	}
	switch c.LogFormat {
	case "console", "json":
	default:
		return fmt.Errorf("invalid log_format %q (want console or json)", c.LogFormat)
	}
	switch c.Color {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("invalid color %q (want auto, always or never)", c.Color)
	}
	if c.Indent < 0 {
		return fmt.Errorf("invalid indent %d", c.Indent)
	}
	return nil
}
