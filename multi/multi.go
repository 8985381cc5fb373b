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

// Package multi orchestrates parallel feature tables over one samplet
// cohort, such as several feature extractions of the same subjects.
package multi

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/growupboron/pyradigm/base/log"
	"github.com/growupboron/pyradigm/dataset"
)

// Set holds tables that cover the same samplet ids with the same class
// labels. The first table appended is the pivot every later table is
// checked against.
type Set[T dataset.TargetType] struct {
	names  []string
	tables []*dataset.Table[T]
}

// NewSet returns an empty set.
func NewSet[T dataset.TargetType]() *Set[T] {
	return &Set[T]{}
}

// Append adds a table under the given name. The table must be compatible
// with the pivot, meaning the same id set and per-id class labels.
func (s *Set[T]) Append(table *dataset.Table[T], name string) error {
	if table == nil || table.NumSamplets() == 0 {
		return fmt.Errorf("%w: no samplets to append", dataset.ErrValidation)
	}
	if name == "" {
		name = fmt.Sprintf("table%d", len(s.tables))
	}
	for _, existing := range s.names {
		if existing == name {
			return fmt.Errorf("%w: table name %q already used", dataset.ErrValidation, name)
		}
	}
	if len(s.tables) > 0 && !s.tables[0].Compatible(table) {
		return fmt.Errorf("%w: table %q does not cover the same cohort as %q",
			dataset.ErrIncompatibleTables, name, s.names[0])
	}
	copied, err := table.Copy()
	if err != nil {
		return err
	}
	s.names = append(s.names, name)
	s.tables = append(s.tables, copied)
	log.Logger().Debug("appended table",
		zap.String("name", name),
		zap.Int("num_features", table.NumFeatures()))
	return nil
}

// Len returns the number of tables in the set.
func (s *Set[T]) Len() int {
	return len(s.tables)
}

// Names returns the table names in append order.
func (s *Set[T]) Names() []string {
	return append([]string(nil), s.names...)
}

// Table returns the table appended under name.
func (s *Set[T]) Table(name string) (*dataset.Table[T], bool) {
	for i, n := range s.names {
		if n == name {
			return s.tables[i], true
		}
	}
	return nil, false
}

// Fold is one train/test partition applied across every table of a set.
type Fold[T dataset.TargetType] struct {
	TrainIDs []string
	TestIDs  []string
	Train    []*dataset.Table[T]
	Test     []*dataset.Table[T]
}

// Holdout draws numRep independent stratified splits on the pivot and
// carves every table of the set along the same id partition, so the folds
// stay aligned across feature spaces.
func (s *Set[T]) Holdout(numRep int, trainFraction float64, seed int64) ([]Fold[T], error) {
	if len(s.tables) == 0 {
		return nil, fmt.Errorf("%w: empty set", dataset.ErrValidation)
	}
	if numRep < 1 {
		return nil, fmt.Errorf("%w: at least one repetition required", dataset.ErrValidation)
	}
	folds := make([]Fold[T], 0, numRep)
	for rep := 0; rep < numRep; rep++ {
		train, test, err := s.tables[0].SplitIDs(dataset.SplitOptions{
			TrainFraction: trainFraction,
			Seed:          seed + int64(rep),
		})
		if err != nil {
			return nil, err
		}
		fold := Fold[T]{TrainIDs: train, TestIDs: test}
		for _, table := range s.tables {
			fold.Train = append(fold.Train, table.GetSubset(train))
			fold.Test = append(fold.Test, table.GetSubset(test))
		}
		folds = append(folds, fold)
	}
	return folds, nil
}

func (s *Set[T]) String() string {
	if len(s.tables) == 0 {
		return "empty set"
	}
	parts := make([]string, 0, len(s.tables))
	for i, table := range s.tables {
		parts = append(parts, fmt.Sprintf("%s (%d features)", s.names[i], table.NumFeatures()))
	}
	return fmt.Sprintf("%d tables over %d samplets: %s",
		len(s.tables), s.tables[0].NumSamplets(), strings.Join(parts, ", "))
}
