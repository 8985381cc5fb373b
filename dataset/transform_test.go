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

package dataset

import (
	"fmt"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransform(t *testing.T) {
	table := newTwoSampletTable(t)
	doubled, err := table.Transform(func(vec []float32) ([]float32, error) {
		return lo.Map(vec, func(v float32, _ int) float32 { return 2 * v }), nil
	}, "doubled")
	require.NoError(t, err)

	assert.Equal(t, table.IDs(), doubled.IDs())
	vec, _ := doubled.Features("s1")
	assert.Equal(t, []float32{2, 4}, vec)
	target, _ := doubled.Target("s2")
	origTarget, _ := table.Target("s2")
	assert.Equal(t, origTarget, target)
	assert.Contains(t, doubled.Description(), "doubled")

	// the input table is untouched
	vec, _ = table.Features("s1")
	assert.Equal(t, []float32{1, 2}, vec)
}

func TestTransformChangesDimensionality(t *testing.T) {
	table := newTwoSampletTable(t)
	reduced, err := table.Transform(func(vec []float32) ([]float32, error) {
		sum := float32(0)
		for _, v := range vec {
			sum += v
		}
		return []float32{sum}, nil
	}, "sum")
	require.NoError(t, err)
	assert.Equal(t, 1, reduced.NumFeatures())
	vec, _ := reduced.Features("s2")
	assert.Equal(t, []float32{7}, vec)
}

func TestTransformFailureAborts(t *testing.T) {
	table := newTwoSampletTable(t)
	_, err := table.Transform(func(vec []float32) ([]float32, error) {
		if vec[0] > 2 {
			return nil, fmt.Errorf("out of range")
		}
		return vec, nil
	}, "guarded")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "s2")
}

func TestTransformNonUniformOutput(t *testing.T) {
	table := newTwoSampletTable(t)
	calls := 0
	_, err := table.Transform(func(vec []float32) ([]float32, error) {
		calls++
		return make([]float32, calls), nil
	}, "ragged")
	assert.ErrorIs(t, err, ErrDimensionMismatch)
}

func TestZScore(t *testing.T) {
	out, err := ZScore([]float32{2, 4, 6})
	require.NoError(t, err)
	assert.InDelta(t, 0, mean32(out), 1e-6)
	assert.InDelta(t, -1.2247449, out[0], 1e-5)
	assert.InDelta(t, 0, out[1], 1e-6)
	assert.InDelta(t, 1.2247449, out[2], 1e-5)

	_, err = ZScore([]float32{3, 3, 3})
	assert.ErrorIs(t, err, ErrValidation)
}

func mean32(vec []float32) float32 {
	sum := float32(0)
	for _, v := range vec {
		sum += v
	}
	return sum / float32(len(vec))
}

func TestDescribe(t *testing.T) {
	table := NewTable[int]()
	require.NoError(t, table.AddSamplet("s1", []float32{1, 10}, 0, WithFeatureNames([]string{"a", "b"})))
	require.NoError(t, table.AddSamplet("s2", []float32{3, 20}, 1))
	require.NoError(t, table.AddSamplet("s3", []float32{5, 30}, 0))

	stats := table.Describe()
	require.Len(t, stats, 2)
	assert.Equal(t, "a", stats[0].Name)
	assert.InDelta(t, 3, stats[0].Mean, 1e-9)
	assert.InDelta(t, 2, stats[0].Std, 1e-9)
	assert.InDelta(t, 1, stats[0].Min, 1e-9)
	assert.InDelta(t, 5, stats[0].Max, 1e-9)
	assert.Equal(t, "b", stats[1].Name)
	assert.InDelta(t, 20, stats[1].Mean, 1e-9)
}
