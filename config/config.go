// Copyright 2025 pyradigm Project Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config loads CLI settings from TOML files and environment
// variables.
package config

import (
	"strings"

	"github.com/juju/errors"
	"github.com/spf13/viper"
)

// Config carries the tool-wide settings.
type Config struct {
	Split SplitConfig `mapstructure:"split"`
	Log   LogConfig   `mapstructure:"log"`
}

// SplitConfig sets the defaults of the split command.
type SplitConfig struct {
	// TrainFraction is the default fraction of each class drawn into the
	// training set.
	TrainFraction float64 `mapstructure:"train_fraction"`
	// Seed seeds the random generator.
	Seed int64 `mapstructure:"seed"`
	// NumRepetitions is the default number of holdout repetitions.
	NumRepetitions int `mapstructure:"num_repetitions"`
}

// LogConfig sets the log sink.
type LogConfig struct {
	Path       string `mapstructure:"path"`
	MaxSize    int    `mapstructure:"max_size"`
	MaxAge     int    `mapstructure:"max_age"`
	MaxBackups int    `mapstructure:"max_backups"`
}

// GetDefaultConfig returns a Config with the default values.
func GetDefaultConfig() *Config {
	return &Config{
		Split: SplitConfig{
			TrainFraction:  0.5,
			Seed:           42,
			NumRepetitions: 1,
		},
		Log: LogConfig{
			MaxSize:    100,
			MaxAge:     7,
			MaxBackups: 3,
		},
	}
}

func setDefault() {
	defaultConfig := GetDefaultConfig()
	viper.SetDefault("split.train_fraction", defaultConfig.Split.TrainFraction)
	viper.SetDefault("split.seed", defaultConfig.Split.Seed)
	viper.SetDefault("split.num_repetitions", defaultConfig.Split.NumRepetitions)
	viper.SetDefault("log.path", defaultConfig.Log.Path)
	viper.SetDefault("log.max_size", defaultConfig.Log.MaxSize)
	viper.SetDefault("log.max_age", defaultConfig.Log.MaxAge)
	viper.SetDefault("log.max_backups", defaultConfig.Log.MaxBackups)
}

// LoadConfig loads the configuration from the TOML file at path. An empty
// path returns the defaults. Values can be overridden through environment
// variables prefixed with PYRADIGM, for example PYRADIGM_SPLIT_SEED.
func LoadConfig(path string) (*Config, error) {
	setDefault()
	viper.SetConfigType("toml")
	viper.SetEnvPrefix("pyradigm")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	if path != "" {
		viper.SetConfigFile(path)
		if err := viper.ReadInConfig(); err != nil {
			return nil, errors.Trace(err)
		}
	}
	var conf Config
	if err := viper.Unmarshal(&conf); err != nil {
		return nil, errors.Trace(err)
	}
	if err := conf.validate(); err != nil {
		return nil, errors.Trace(err)
	}
	return &conf, nil
}

func (c *Config) validate() error {
	if c.Split.TrainFraction <= 0 || c.Split.TrainFraction >= 1 {
		return errors.NotValidf("split.train_fraction %g", c.Split.TrainFraction)
	}
	if c.Split.NumRepetitions < 1 {
		return errors.NotValidf("split.num_repetitions %d", c.Split.NumRepetitions)
	}
	if c.Log.MaxSize < 0 || c.Log.MaxAge < 0 || c.Log.MaxBackups < 0 {
		return errors.NotValidf("negative log rotation setting")
	}
	return nil
}
