/*
 * config.go, part of molrx.
 *
 *
 * Copyright 2026 The molrx authors.
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 *
 */

package main

import (
	"fmt"
	"strings"

	"github.com/molrx/molrx/reaction"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// envPrefix is the prefix of the environment variables read by molrx.
const envPrefix = "MOLRX"

// Config holds the settings of a molrx run.
type Config struct {
	Rules            []string  `mapstructure:"rules"`
	ActiveCentersSet bool      `mapstructure:"active_centers_set"`
	Balance          bool      `mapstructure:"balance"`
	MaxCoefficient   int       `mapstructure:"max_coefficient"`
	Compress         bool      `mapstructure:"compress"`
	Log              LogConfig `mapstructure:"log"`
}

// LogConfig configures the zap logger.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` //json or console
}

// newViper returns a viper instance reading YAML and MOLRX_* variables,
// i.e. MOLRX_LOG_LEVEL for log.level.
func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	//Unmarshal only sees the environment for keys viper knows about.
	for _, k := range []string{"rules", "active_centers_set", "balance", "max_coefficient", "compress", "log.level", "log.format"} {
		_ = v.BindEnv(k)
	}
	return v
}

// loadConfig reads the file at path, if path is not empty, merges the environment,
// and returns the validated configuration with defaults applied.
func loadConfig(v *viper.Viper, path string) (*Config, error) {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: failed to read config file %q: %w", path, err)
		}
	}
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to unmarshal configuration: %w", err)
	}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validation failed: %w", err)
	}
	return cfg, nil
}

// ApplyDefaults fills the unset fields.
func (c *Config) ApplyDefaults() {
	if len(c.Rules) == 0 {
		c.Rules = reaction.Names()
	}
	if c.MaxCoefficient == 0 {
		c.MaxCoefficient = 5
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "console"
	}
}

// Validate checks that every rule exists and that the log settings make sense.
func (c *Config) Validate() error {
	for _, r := range c.Rules {
		if _, err := reaction.New(r); err != nil {
			return err
		}
	}
	if c.MaxCoefficient < 1 {
		return fmt.Errorf("max_coefficient must be positive, got %d", c.MaxCoefficient)
	}
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	if c.Log.Format != "json" && c.Log.Format != "console" {
		return fmt.Errorf("log.format must be json or console, got %q", c.Log.Format)
	}
	return nil
}

// newLogger builds the logger described by c. Logs go to stderr, so they
// never mix with the output stream.
func newLogger(c LogConfig) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(c.Level)
	if err != nil {
		return nil, err
	}
	zc := zap.NewProductionConfig()
	if c.Format == "console" {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(lvl)
	zc.OutputPaths = []string{"stderr"}
	zc.ErrorOutputPaths = []string{"stderr"}
	return zc.Build()
}
