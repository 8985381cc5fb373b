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
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// FeatureStats summarizes the distribution of one feature column.
type FeatureStats struct {
	Name string
	Mean float64
	Std  float64
	Min  float64
	Max  float64
}

// Describe computes per-feature statistics over all samplets.
func (t *Table[T]) Describe() []FeatureStats {
	if t.NumSamplets() == 0 || t.numFeatures == 0 {
		return nil
	}
	column := make([]float64, t.NumSamplets())
	described := make([]FeatureStats, t.numFeatures)
	for j := 0; j < t.numFeatures; j++ {
		for i, id := range t.ids {
			column[i] = float64(t.features[id][j])
		}
		described[j] = FeatureStats{
			Name: t.featureNames[j],
			Mean: stat.Mean(column, nil),
			Std:  stat.StdDev(column, nil),
			Min:  floats.Min(column),
			Max:  floats.Max(column),
		}
	}
	return described
}
