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

	mapset "github.com/deckarep/golang-set/v2"
	"go.uber.org/zap"

	"github.com/growupboron/pyradigm/base/log"
)

// Combine merges two tables. The meaning depends on the id sets:
//
//   - identical id sets: column-wise feature concatenation, producing one
//     wider table whose feature names are the concatenation of both;
//   - disjoint id sets with equal feature counts: union of samplets;
//   - any partial overlap: ErrAmbiguousCombine.
func (t *Table[T]) Combine(other *Table[T]) (*Table[T], error) {
	if other == nil {
		return nil, fmt.Errorf("%w: no table to combine with", ErrValidation)
	}
	selfIDs := mapset.NewSet(t.ids...)
	otherIDs := mapset.NewSet(other.ids...)
	switch {
	case selfIDs.Equal(otherIDs):
		return t.concatFeatures(other)
	case selfIDs.Intersect(otherIDs).Cardinality() == 0:
		if t.numFeatures != other.numFeatures {
			return nil, fmt.Errorf("%w: feature counts differ (%d vs %d)",
				ErrIncompatibleTables, t.numFeatures, other.numFeatures)
		}
		combined := t.clone()
		if err := combined.Extend(other); err != nil {
			return nil, err
		}
		return combined, nil
	default:
		return nil, fmt.Errorf("%w: id sets overlap partially", ErrAmbiguousCombine)
	}
}

// concatFeatures stacks the feature vectors of two tables sharing one id set.
func (t *Table[T]) concatFeatures(other *Table[T]) (*Table[T], error) {
	for _, id := range t.ids {
		if t.classes[id] != other.classes[id] {
			return nil, fmt.Errorf("%w: class labels disagree for samplet %q",
				ErrIncompatibleTables, id)
		}
	}
	if t.numFeatures < 1 || other.numFeatures < 1 {
		return nil, fmt.Errorf("%w: no features to concatenate", ErrValidation)
	}
	combined := NewTable[T]()
	for _, id := range t.ids {
		vec := make([]float32, 0, t.numFeatures+other.numFeatures)
		vec = append(vec, t.features[id]...)
		vec = append(vec, other.features[id]...)
		combined.insert(id, vec, t.targets[id], t.classes[id])
	}
	combined.numFeatures = t.numFeatures + other.numFeatures
	combined.featureNames = append(t.FeatureNames(), other.FeatureNames()...)
	combined.valueKind = t.valueKind
	combined.description = appendHistory("feature concatenation of", t.description)
	return combined, nil
}

// Extend appends every samplet of other to the receiver in place. The ids of
// other must not be present yet and its feature count must match.
func (t *Table[T]) Extend(other *Table[T]) error {
	if other == nil {
		return fmt.Errorf("%w: no table to extend with", ErrValidation)
	}
	if t.NumSamplets() > 0 && t.numFeatures != other.numFeatures {
		return fmt.Errorf("%w: feature counts differ (%d vs %d)",
			ErrIncompatibleTables, t.numFeatures, other.numFeatures)
	}
	for _, id := range other.ids {
		if _, exists := t.features[id]; exists {
			return fmt.Errorf("%w: %q", ErrDuplicateSamplet, id)
		}
	}
	if t.NumSamplets() == 0 {
		t.numFeatures = other.numFeatures
		t.featureNames = other.FeatureNames()
		t.valueKind = other.valueKind
	}
	for _, id := range other.ids {
		t.insert(id, append([]float32(nil), other.features[id]...), other.targets[id], other.classes[id])
	}
	return nil
}

// Remove returns a deep copy of the receiver with every id of other deleted.
// Zero overlap and removals emptying the result are reported as warnings.
func (t *Table[T]) Remove(other *Table[T]) *Table[T] {
	removed := t.clone()
	if other == nil {
		return removed
	}
	overlap := mapset.NewSet(t.ids...).Intersect(mapset.NewSet(other.ids...)).Cardinality()
	if overlap == 0 {
		log.Logger().Warn("none of the samplet ids to remove are present")
	} else if overlap == t.NumSamplets() {
		log.Logger().Warn("removing all samplets, the result is empty",
			zap.Int("num_samplets", t.NumSamplets()))
	}
	for _, id := range other.ids {
		removed.DelSamplet(id)
	}
	return removed
}
