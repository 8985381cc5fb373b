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
	"math"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/growupboron/pyradigm/base"
)

// SplitOptions selects the size of the training side of a stratified split.
// Exactly one of TrainFraction and CountPerClass must be set.
type SplitOptions struct {
	// TrainFraction is the fraction of each class drawn into the training
	// set, inside the open interval (0, 1).
	TrainFraction float64
	// CountPerClass is the exact number of samplets drawn from each class
	// into the training set.
	CountPerClass int
	// Seed seeds the random generator.
	Seed int64
}

// SplitIDs partitions the id set into two disjoint lists, train and test,
// drawing the requested fraction or count independently from each class.
func (t *Table[T]) SplitIDs(opts SplitOptions) (train, test []string, err error) {
	useFraction := opts.TrainFraction != 0
	useCount := opts.CountPerClass != 0
	if useFraction == useCount {
		return nil, nil, fmt.Errorf("%w: exactly one of fraction or count per class must be given",
			ErrValidation)
	}
	smallest := t.smallestClassSize()
	if smallest == 0 {
		return nil, nil, fmt.Errorf("%w: table is empty", ErrValidation)
	}
	if useFraction {
		if opts.TrainFraction <= 0 || opts.TrainFraction >= 1 {
			return nil, nil, fmt.Errorf("%w: train fraction %g outside (0, 1)",
				ErrValidation, opts.TrainFraction)
		}
		if opts.TrainFraction < 1/float64(smallest) {
			return nil, nil, fmt.Errorf("%w: fraction %g draws zero samplets from the smallest class (%d)",
				ErrValidation, opts.TrainFraction, smallest)
		}
		train = t.RandomSubsetIDs(opts.TrainFraction, opts.Seed)
	} else {
		if opts.CountPerClass < 0 {
			return nil, nil, fmt.Errorf("%w: negative count per class", ErrValidation)
		}
		if opts.CountPerClass >= smallest {
			return nil, nil, fmt.Errorf("%w: count %d would exclude the smallest class (%d) from the test set",
				ErrValidation, opts.CountPerClass, smallest)
		}
		train = t.RandomSubsetIDsByCount(opts.CountPerClass, opts.Seed)
	}
	trainSet := mapset.NewSet(train...)
	for _, id := range t.ids {
		if !trainSet.Contains(id) {
			test = append(test, id)
		}
	}
	if len(train) == 0 || len(test) == 0 {
		return nil, nil, fmt.Errorf("%w: selection produced an empty training or test set", ErrValidation)
	}
	return train, test, nil
}

// RandomSubsetIDs draws the given fraction of ids from each class.
func (t *Table[T]) RandomSubsetIDs(fracPerClass float64, seed int64) []string {
	rng := base.NewRandomGenerator(seed)
	var subset []string
	for _, class := range t.ClassSet() {
		pool := t.IDsInClass(class)
		count := int(math.Floor(fracPerClass * float64(len(pool))))
		subset = append(subset, rng.SampleStrings(pool, count)...)
	}
	return subset
}

// RandomSubsetIDsByCount draws exactly countPerClass ids from each class,
// capped at the class size.
func (t *Table[T]) RandomSubsetIDsByCount(countPerClass int, seed int64) []string {
	rng := base.NewRandomGenerator(seed)
	var subset []string
	for _, class := range t.ClassSet() {
		subset = append(subset, rng.SampleStrings(t.IDsInClass(class), countPerClass)...)
	}
	return subset
}

// RandomSubset returns a new table with the given fraction of each class.
func (t *Table[T]) RandomSubset(fracPerClass float64, seed int64) *Table[T] {
	return t.GetSubset(t.RandomSubsetIDs(fracPerClass, seed))
}

func (t *Table[T]) smallestClassSize() int {
	smallest := 0
	for _, size := range t.ClassSizes() {
		if smallest == 0 || size < smallest {
			smallest = size
		}
	}
	return smallest
}
