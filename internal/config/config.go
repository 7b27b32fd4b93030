// Package config loads telmask-demo settings from flags, environment, an
// optional .env file and an optional YAML config file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Country       string
	TrunkPrefix   bool   `mapstructure:"trunk_prefix"`
	CountriesFile string `mapstructure:"countries_file"`
	Width         int
	Log           LogConfig
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level string
	File  string
}

// Flags returns the command-line flags Load understands.
func Flags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("telmask-demo", pflag.ContinueOnError)
	fs.StringP("country", "c", "US", "region code of the number format")
	fs.Bool("trunk_prefix", false, "show the national trunk prefix")
	fs.String("countries_file", "", "YAML file with extra country formats")
	fs.Int("width", 24, "input width in cells")
	fs.String("log.level", "info", "log level (debug, info, warn, error)")
	fs.String("log.file", "", "log file; empty discards logs")
	fs.StringP("config", "f", "", "config file")
	return fs
}

// Load reads configuration. Precedence: flags set on the command line, then
// TELMASK_* env vars (also read from .env), then the config file, then flag
// defaults. fs may be nil.
func Load(fs *pflag.FlagSet) (Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("country", "US")
	v.SetDefault("trunk_prefix", false)
	v.SetDefault("countries_file", "")
	v.SetDefault("width", 24)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")

	v.SetEnvPrefix("TELMASK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if fs != nil {
		if err := v.BindPFlags(fs); err != nil {
			return Config{}, fmt.Errorf("bind flags: %w", err)
		}
	}

	v.SetConfigType("yaml")
	cfgPath := v.GetString("config")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "telmask"))
		}
		v.SetConfigName("config")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgPath != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	c.Country = strings.ToUpper(strings.TrimSpace(c.Country))
	if c.Width < 8 {
		c.Width = 8
	}
	return c, nil
}
