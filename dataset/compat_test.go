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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// parallelTable builds a table over the same cohort as the input but with a
// different feature space.
func parallelTable(t *testing.T, src *Table[string], numFeatures int) *Table[string] {
	t.Helper()
	out := NewTable[string]()
	for _, id := range src.IDs() {
		target, _ := src.Target(id)
		class, _ := src.Class(id)
		require.NoError(t, out.AddSamplet(id, make([]float32, numFeatures), target, WithClassID(class)))
	}
	return out
}

func TestCompatible(t *testing.T) {
	a := newStratifiedTable(t, 2, 3, 4)
	b := parallelTable(t, a, 7)
	assert.True(t, a.Compatible(b))
	assert.True(t, b.Compatible(a))

	// a missing samplet breaks compatibility
	c, err := b.Copy()
	require.NoError(t, err)
	c.DelSamplet("c0_s0")
	assert.False(t, a.Compatible(c))

	// a different class label for one id breaks compatibility
	d := NewTable[string]()
	for i, id := range a.IDs() {
		target, _ := a.Target(id)
		class, _ := a.Class(id)
		if i == 0 {
			class = "other"
		}
		require.NoError(t, d.AddSamplet(id, []float32{0}, target, WithClassID(class)))
	}
	assert.False(t, a.Compatible(d))
}

func TestCheckCompatibility(t *testing.T) {
	a := newStratifiedTable(t, 2, 3, 4)
	b := parallelTable(t, a, 4)
	c := parallelTable(t, a, 9)

	all, flags, dimMismatch := CheckCompatibility([]*Table[string]{a, b, c}, nil)
	assert.True(t, all)
	assert.Equal(t, []bool{true, true}, flags)
	assert.False(t, dimMismatch)

	// one required count broadcasts to all tables
	all, _, dimMismatch = CheckCompatibility([]*Table[string]{a, b, c}, []int{4})
	assert.True(t, all)
	assert.True(t, dimMismatch)

	// per-table counts
	_, _, dimMismatch = CheckCompatibility([]*Table[string]{a, b, c}, []int{4, 4, 9})
	assert.False(t, dimMismatch)

	// a table over a different cohort flags as incompatible
	stranger := NewTable[string]()
	require.NoError(t, stranger.AddSamplet("x", []float32{1}, "class0"))
	all, flags, _ = CheckCompatibility([]*Table[string]{a, b, stranger}, nil)
	assert.False(t, all)
	assert.Equal(t, []bool{true, false}, flags)
}
