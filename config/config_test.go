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

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	viper.Reset()
	conf, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, GetDefaultConfig(), conf)
}

func TestLoadConfigFile(t *testing.T) {
	viper.Reset()
	path := filepath.Join(t.TempDir(), "pyradigm.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[split]
train_fraction = 0.75
seed = 7

[log]
path = "/tmp/pyradigm.log"
`), 0o644))

	conf, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 0.75, conf.Split.TrainFraction)
	assert.Equal(t, int64(7), conf.Split.Seed)
	// unset keys keep their defaults
	assert.Equal(t, 1, conf.Split.NumRepetitions)
	assert.Equal(t, "/tmp/pyradigm.log", conf.Log.Path)
	assert.Equal(t, 100, conf.Log.MaxSize)
}

func TestLoadConfigEnvOverride(t *testing.T) {
	viper.Reset()
	t.Setenv("PYRADIGM_SPLIT_TRAIN_FRACTION", "0.8")
	conf, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, 0.8, conf.Split.TrainFraction)
}

func TestLoadConfigInvalid(t *testing.T) {
	viper.Reset()
	dir := t.TempDir()

	missing := filepath.Join(dir, "absent.toml")
	_, err := LoadConfig(missing)
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(bad, []byte("[split]\ntrain_fraction = 1.5\n"), 0o644))
	_, err = LoadConfig(bad)
	assert.Error(t, err)

	zeroReps := filepath.Join(dir, "reps.toml")
	require.NoError(t, os.WriteFile(zeroReps, []byte("[split]\nnum_repetitions = -1\n"), 0o644))
	_, err = LoadConfig(zeroReps)
	assert.Error(t, err)
}
