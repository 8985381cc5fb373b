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

package multi

import (
	"fmt"
	"testing"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/growupboron/pyradigm/dataset"
)

// cohortTable builds a table over a fixed two-class cohort with the given
// feature count.
func cohortTable(t *testing.T, numFeatures int) *dataset.Table[string] {
	t.Helper()
	table := dataset.NewTable[string]()
	for c := 0; c < 2; c++ {
		for i := 0; i < 6; i++ {
			id := fmt.Sprintf("c%d_s%d", c, i)
			class := fmt.Sprintf("class%d", c)
			require.NoError(t, table.AddSamplet(id, make([]float32, numFeatures), class))
		}
	}
	return table
}

func TestSetAppend(t *testing.T) {
	s := NewSet[string]()
	assert.Equal(t, 0, s.Len())

	a := cohortTable(t, 4)
	require.NoError(t, s.Append(a, "mri"))
	require.NoError(t, s.Append(cohortTable(t, 9), "pet"))
	assert.Equal(t, 2, s.Len())
	assert.Equal(t, []string{"mri", "pet"}, s.Names())

	got, ok := s.Table("pet")
	require.True(t, ok)
	assert.Equal(t, 9, got.NumFeatures())
	_, ok = s.Table("absent")
	assert.False(t, ok)

	// appended tables are copies, later mutation of the input is invisible
	a.DelSamplet("c0_s0")
	got, _ = s.Table("mri")
	assert.True(t, got.Contains("c0_s0"))
}

func TestSetAppendRejectsIncompatible(t *testing.T) {
	s := NewSet[string]()
	require.NoError(t, s.Append(cohortTable(t, 4), "mri"))

	other := cohortTable(t, 4)
	other.DelSamplet("c1_s5")
	assert.ErrorIs(t, s.Append(other, "short"), dataset.ErrIncompatibleTables)

	assert.ErrorIs(t, s.Append(cohortTable(t, 2), "mri"), dataset.ErrValidation)
	assert.ErrorIs(t, s.Append(dataset.NewTable[string](), "empty"), dataset.ErrValidation)
}

func TestHoldout(t *testing.T) {
	s := NewSet[string]()
	require.NoError(t, s.Append(cohortTable(t, 4), "mri"))
	require.NoError(t, s.Append(cohortTable(t, 9), "pet"))

	folds, err := s.Holdout(3, 0.5, 42)
	require.NoError(t, err)
	require.Len(t, folds, 3)

	for _, fold := range folds {
		trainSet := mapset.NewSet(fold.TrainIDs...)
		testSet := mapset.NewSet(fold.TestIDs...)
		assert.Equal(t, 0, trainSet.Intersect(testSet).Cardinality())
		assert.Equal(t, 12, trainSet.Cardinality()+testSet.Cardinality())

		require.Len(t, fold.Train, 2)
		require.Len(t, fold.Test, 2)
		assert.Equal(t, fold.TrainIDs, fold.Train[0].IDs())
		assert.Equal(t, fold.TrainIDs, fold.Train[1].IDs())
		assert.Equal(t, 4, fold.Train[0].NumFeatures())
		assert.Equal(t, 9, fold.Train[1].NumFeatures())
	}

	// distinct seeds per repetition give distinct draws somewhere
	distinct := false
	for i := 1; i < len(folds); i++ {
		if !mapset.NewSet(folds[i].TrainIDs...).Equal(mapset.NewSet(folds[0].TrainIDs...)) {
			distinct = true
		}
	}
	assert.True(t, distinct)
}

func TestHoldoutValidation(t *testing.T) {
	_, err := NewSet[string]().Holdout(1, 0.5, 0)
	assert.ErrorIs(t, err, dataset.ErrValidation)

	s := NewSet[string]()
	require.NoError(t, s.Append(cohortTable(t, 4), "mri"))
	_, err = s.Holdout(0, 0.5, 0)
	assert.ErrorIs(t, err, dataset.ErrValidation)
	_, err = s.Holdout(2, 1.5, 0)
	assert.ErrorIs(t, err, dataset.ErrValidation)
}

func TestSetString(t *testing.T) {
	s := NewSet[string]()
	assert.Equal(t, "empty set", s.String())
	require.NoError(t, s.Append(cohortTable(t, 4), "mri"))
	require.NoError(t, s.Append(cohortTable(t, 9), "pet"))
	assert.Equal(t, "2 tables over 12 samplets: mri (4 features), pet (9 features)", s.String())
}
