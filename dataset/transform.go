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

	"github.com/chewxy/math32"
	"github.com/juju/errors"
)

// Transform applies fn to every feature vector independently and returns a
// new table with identical ids, targets and classes. The output vectors may
// have a different length than the input but must be uniform across
// samplets. A failure for any samplet aborts the whole operation.
func (t *Table[T]) Transform(fn func([]float32) ([]float32, error), description string) (*Table[T], error) {
	if fn == nil {
		return nil, fmt.Errorf("%w: nil transform function", ErrValidation)
	}
	transformed := NewTable[T]()
	for _, id := range t.ids {
		vec, err := fn(append([]float32(nil), t.features[id]...))
		if err != nil {
			return nil, errors.Annotatef(err, "failed to transform features of samplet %q", id)
		}
		if len(vec) == 0 {
			return nil, fmt.Errorf("%w: transform returned empty features for samplet %q",
				ErrValidation, id)
		}
		if transformed.NumSamplets() == 0 {
			transformed.numFeatures = len(vec)
			transformed.featureNames = defaultFeatureNames(len(vec))
			transformed.valueKind = t.valueKind
		} else if len(vec) != transformed.numFeatures {
			return nil, fmt.Errorf("%w: transform returned %d features for samplet %q, want %d",
				ErrDimensionMismatch, len(vec), id, transformed.numFeatures)
		}
		transformed.insert(id, vec, t.targets[id], t.classes[id])
	}
	if description == "" {
		description = "transform"
	}
	transformed.description = appendHistory(description+" applied to", t.description)
	return transformed, nil
}

// ZScore standardizes a vector to zero mean and unit variance. It fails for
// vectors with zero variance.
func ZScore(vec []float32) ([]float32, error) {
	var mean float32
	for _, v := range vec {
		mean += v
	}
	mean /= float32(len(vec))
	var variance float32
	for _, v := range vec {
		variance += (v - mean) * (v - mean)
	}
	variance /= float32(len(vec))
	if variance == 0 {
		return nil, fmt.Errorf("%w: zero variance", ErrValidation)
	}
	std := math32.Sqrt(variance)
	scaled := make([]float32, len(vec))
	for i, v := range vec {
		scaled[i] = (v - mean) / std
	}
	return scaled, nil
}
