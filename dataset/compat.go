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
	mapset "github.com/deckarep/golang-set/v2"
	"go.uber.org/zap"

	"github.com/growupboron/pyradigm/base/log"
)

// Compatible reports whether both tables cover the same id set with the same
// class label per id, ignoring feature content and dimensionality. Parallel
// tables over one cohort are compatible even when their feature spaces differ.
func (t *Table[T]) Compatible(other *Table[T]) bool {
	if other == nil || t.NumSamplets() != other.NumSamplets() {
		return false
	}
	if !mapset.NewSet(t.ids...).Equal(mapset.NewSet(other.ids...)) {
		return false
	}
	for id, class := range t.classes {
		if other.classes[id] != class {
			return false
		}
	}
	return true
}

// CheckCompatibility checks every table against the first one (the pivot).
// It returns one flag per non-pivot table, an aggregate flag and a flag for
// dimensionality mismatches against reqdNumFeatures. Dimensionality may be
// given per table, once for all tables, or not at all. Mismatches are
// reported as warnings, never as errors.
func CheckCompatibility[T TargetType](tables []*Table[T], reqdNumFeatures []int) (allCompatible bool, compatible []bool, dimMismatch bool) {
	if len(tables) == 0 {
		log.Logger().Warn("no tables to check for compatibility")
		return false, nil, false
	}
	checkDim := len(reqdNumFeatures) > 0
	switch {
	case !checkDim:
	case len(reqdNumFeatures) == 1:
		reqd := reqdNumFeatures[0]
		reqdNumFeatures = make([]int, len(tables))
		for i := range reqdNumFeatures {
			reqdNumFeatures[i] = reqd
		}
	case len(reqdNumFeatures) != len(tables):
		log.Logger().Warn("required feature counts do not cover all tables, skipping dimensionality check",
			zap.Int("num_tables", len(tables)), zap.Int("num_counts", len(reqdNumFeatures)))
		checkDim = false
	}
	pivot := tables[0]
	if checkDim && pivot.NumFeatures() != reqdNumFeatures[0] {
		log.Logger().Warn("dimensionality mismatch",
			zap.Int("expected", reqdNumFeatures[0]), zap.Int("actual", pivot.NumFeatures()))
		dimMismatch = true
	}
	allCompatible = true
	compatible = make([]bool, 0, len(tables)-1)
	for i, table := range tables[1:] {
		ok := pivot.Compatible(table)
		compatible = append(compatible, ok)
		allCompatible = allCompatible && ok
		if checkDim && table.NumFeatures() != reqdNumFeatures[i+1] {
			log.Logger().Warn("dimensionality mismatch",
				zap.Int("expected", reqdNumFeatures[i+1]), zap.Int("actual", table.NumFeatures()))
			dimMismatch = true
		}
	}
	return allCompatible, compatible, dimMismatch
}
