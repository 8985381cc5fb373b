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

// Package dataset implements an in-memory container for labeled multi-sample
// datasets. Each samplet maps an id to a fixed-length feature vector, a
// target and a class label, kept mutually consistent across every mutation.
package dataset

import (
	"fmt"
	"sort"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
	"go.uber.org/zap"

	"github.com/growupboron/pyradigm/base/log"
)

// TargetType constrains the target value of a samplet.
type TargetType interface {
	string | int | int32 | int64 | float32 | float64
}

// Table is an ordered, id-addressed collection of samplets. Feature vectors,
// targets and class labels always share the same id set and insertion order.
// The zero value is not usable; construct with NewTable, FromData, Load or
// LoadARFF.
type Table[T TargetType] struct {
	ids          []string
	features     map[string][]float32
	targets      map[string]T
	classes      map[string]string
	numFeatures  int
	featureNames []string
	valueKind    Kind
	description  string
}

// ClassificationTable holds categorical targets.
type ClassificationTable = Table[string]

// RegressionTable holds continuous targets.
type RegressionTable = Table[float64]

// Samplet is one observation of a table.
type Samplet[T TargetType] struct {
	ID       string
	Features []float32
	Target   T
	Class    string
}

// NewTable creates an empty table.
func NewTable[T TargetType]() *Table[T] {
	return &Table[T]{
		features: make(map[string][]float32),
		targets:  make(map[string]T),
		classes:  make(map[string]string),
	}
}

// FromData creates a table from three mappings sharing one key set. Classes
// may be nil, in which case they are derived from the targets. Row order is
// the sorted key order. The input vectors are copied.
func FromData[T TargetType](features map[string][]float32, targets map[string]T,
	classes map[string]string, description string, featureNames []string) (*Table[T], error) {
	if len(features) == 0 || len(targets) == 0 {
		return nil, fmt.Errorf("%w: features and targets must not be empty", ErrValidation)
	}
	if len(features) != len(targets) || (classes != nil && len(classes) != len(features)) {
		return nil, fmt.Errorf("%w: features, targets and classes differ in size", ErrValidation)
	}
	ids := make([]string, 0, len(features))
	for id := range features {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	numFeatures := len(features[ids[0]])
	t := NewTable[T]()
	t.numFeatures = numFeatures
	t.valueKind = KindFloat32
	for _, id := range ids {
		target, ok := targets[id]
		if !ok {
			return nil, fmt.Errorf("%w: samplet %q has no target", ErrValidation, id)
		}
		class := formatTarget(target)
		if classes != nil {
			if class, ok = classes[id]; !ok {
				return nil, fmt.Errorf("%w: samplet %q has no class", ErrValidation, id)
			}
		}
		vec := features[id]
		if len(vec) == 0 {
			return nil, fmt.Errorf("%w: samplet %q has empty features", ErrValidation, id)
		}
		if len(vec) != numFeatures {
			return nil, fmt.Errorf("%w: samplet %q has %d features, want %d",
				ErrValidation, id, len(vec), numFeatures)
		}
		t.insert(id, append([]float32(nil), vec...), target, class)
	}
	if featureNames == nil {
		t.featureNames = defaultFeatureNames(numFeatures)
	} else {
		if len(featureNames) != numFeatures {
			return nil, fmt.Errorf("%w: %d feature names for %d features",
				ErrValidation, len(featureNames), numFeatures)
		}
		t.featureNames = append([]string(nil), featureNames...)
	}
	t.description = description
	return t, nil
}

// Copy deep-copies the table. The copy shares no state with the original.
func (t *Table[T]) Copy() (*Table[T], error) {
	if t.NumSamplets() == 0 {
		return nil, fmt.Errorf("%w: table to copy is empty", ErrValidation)
	}
	return t.clone(), nil
}

func (t *Table[T]) clone() *Table[T] {
	c := NewTable[T]()
	c.ids = append([]string(nil), t.ids...)
	for id, vec := range t.features {
		c.features[id] = append([]float32(nil), vec...)
	}
	for id, target := range t.targets {
		c.targets[id] = target
	}
	for id, class := range t.classes {
		c.classes[id] = class
	}
	c.numFeatures = t.numFeatures
	c.featureNames = append([]string(nil), t.featureNames...)
	c.valueKind = t.valueKind
	c.description = t.description
	return c
}

// insert stores one samplet without any validation. Callers guarantee the
// id is new and the vector length matches.
func (t *Table[T]) insert(id string, vec []float32, target T, class string) {
	t.ids = append(t.ids, id)
	t.features[id] = vec
	t.targets[id] = target
	t.classes[id] = class
}

type addOptions struct {
	classID      string
	hasClassID   bool
	overwrite    bool
	featureNames []string
}

// AddOption configures AddSamplet.
type AddOption func(*addOptions)

// WithClassID sets the class label explicitly instead of deriving it from
// the target.
func WithClassID(class string) AddOption {
	return func(o *addOptions) {
		o.classID = class
		o.hasClassID = true
	}
}

// WithOverwrite allows replacing an existing samplet.
func WithOverwrite() AddOption {
	return func(o *addOptions) {
		o.overwrite = true
	}
}

// WithFeatureNames declares the feature names alongside the insertion. They
// must match the names already fixed for the table.
func WithFeatureNames(names []string) AddOption {
	return func(o *addOptions) {
		o.featureNames = names
	}
}

// AddSamplet adds one samplet. The features accept any supported numeric
// container and are flattened to 1-D. The first insertion into an empty
// table fixes the feature count, the value kind and default feature names.
// Either all three collections gain an entry or none of them are mutated.
func (t *Table[T]) AddSamplet(id string, features any, target T, opts ...AddOption) error {
	var options addOptions
	for _, opt := range opts {
		opt(&options)
	}
	_, exists := t.features[id]
	if exists && !options.overwrite {
		return fmt.Errorf("%w: %q", ErrDuplicateSamplet, id)
	}
	vec, kind, err := Flatten(features)
	if err != nil {
		return err
	}
	class := formatTarget(target)
	if options.hasClassID {
		class = options.classID
	}
	if t.NumSamplets() == 0 {
		if options.featureNames != nil && len(options.featureNames) != len(vec) {
			return fmt.Errorf("%w: %d feature names for %d features",
				ErrValidation, len(options.featureNames), len(vec))
		}
		t.numFeatures = len(vec)
		t.valueKind = kind
		if options.featureNames != nil {
			t.featureNames = append([]string(nil), options.featureNames...)
		} else {
			t.featureNames = defaultFeatureNames(len(vec))
		}
		t.insert(id, vec, target, class)
		return nil
	}
	if len(vec) != t.numFeatures {
		return fmt.Errorf("%w: samplet %q has %d features, table has %d",
			ErrDimensionMismatch, id, len(vec), t.numFeatures)
	}
	if kind != t.valueKind {
		return fmt.Errorf("%w: samplet %q has kind %s, table has %s",
			ErrTypeMismatch, id, kind, t.valueKind)
	}
	if options.featureNames != nil && !equalStrings(options.featureNames, t.featureNames) {
		return fmt.Errorf("%w: supplied feature names do not match the existing names", ErrValidation)
	}
	if exists {
		t.features[id] = vec
		t.targets[id] = target
		t.classes[id] = class
		return nil
	}
	t.insert(id, vec, target, class)
	return nil
}

// DelSamplet removes a samplet from all three collections. A missing id is
// reported as a warning and leaves the table untouched.
func (t *Table[T]) DelSamplet(id string) {
	if _, ok := t.features[id]; !ok {
		log.Logger().Warn("samplet to delete not found", zap.String("id", id))
		return
	}
	delete(t.features, id)
	delete(t.targets, id)
	delete(t.classes, id)
	for i, existing := range t.ids {
		if existing == id {
			t.ids = append(t.ids[:i], t.ids[i+1:]...)
			break
		}
	}
}

// SetFeatures replaces the feature vector of an existing samplet.
func (t *Table[T]) SetFeatures(id string, features any) error {
	if _, ok := t.features[id]; !ok {
		return fmt.Errorf("%w: %q, add it first via AddSamplet", ErrSampletNotFound, id)
	}
	vec, kind, err := Flatten(features)
	if err != nil {
		return err
	}
	if len(vec) != t.numFeatures {
		return fmt.Errorf("%w: supplied %d features, table has %d",
			ErrDimensionMismatch, len(vec), t.numFeatures)
	}
	if kind != t.valueKind {
		return fmt.Errorf("%w: supplied kind %s, table has %s", ErrTypeMismatch, kind, t.valueKind)
	}
	t.features[id] = vec
	return nil
}

// SetData replaces every feature vector at once. The key set of features must
// equal the current id set and the vectors must share one non-zero length,
// which becomes the new feature count. This is the only operation that may
// change the feature count of a populated table. Feature names may be nil, in
// which case defaults are generated for the new width.
func (t *Table[T]) SetData(features map[string][]float32, featureNames []string) error {
	if t.NumSamplets() == 0 {
		return fmt.Errorf("%w: table is empty, add samplets first", ErrValidation)
	}
	if len(features) != len(t.ids) {
		return fmt.Errorf("%w: supplied %d vectors for %d samplets",
			ErrValidation, len(features), len(t.ids))
	}
	numFeatures := 0
	for _, id := range t.ids {
		vec, ok := features[id]
		if !ok {
			return fmt.Errorf("%w: supplied features miss samplet %q", ErrValidation, id)
		}
		if len(vec) == 0 {
			return fmt.Errorf("%w: samplet %q has empty features", ErrValidation, id)
		}
		if numFeatures == 0 {
			numFeatures = len(vec)
		} else if len(vec) != numFeatures {
			return fmt.Errorf("%w: samplet %q has %d features, want %d",
				ErrDimensionMismatch, id, len(vec), numFeatures)
		}
	}
	if featureNames != nil && len(featureNames) != numFeatures {
		return fmt.Errorf("%w: %d feature names for %d features",
			ErrValidation, len(featureNames), numFeatures)
	}
	for _, id := range t.ids {
		t.features[id] = append([]float32(nil), features[id]...)
	}
	t.numFeatures = numFeatures
	t.valueKind = KindFloat32
	if featureNames != nil {
		t.featureNames = append([]string(nil), featureNames...)
	} else {
		t.featureNames = defaultFeatureNames(numFeatures)
	}
	return nil
}

// SetTargets replaces every target at once. The key set must equal the
// current id set.
func (t *Table[T]) SetTargets(targets map[string]T) error {
	if err := t.checkSameIDSet(len(targets), func(id string) bool {
		_, ok := targets[id]
		return ok
	}); err != nil {
		return err
	}
	for _, id := range t.ids {
		t.targets[id] = targets[id]
	}
	return nil
}

// SetClasses replaces every class label at once. The key set must equal the
// current id set.
func (t *Table[T]) SetClasses(classes map[string]string) error {
	if err := t.checkSameIDSet(len(classes), func(id string) bool {
		_, ok := classes[id]
		return ok
	}); err != nil {
		return err
	}
	for _, id := range t.ids {
		t.classes[id] = classes[id]
	}
	return nil
}

func (t *Table[T]) checkSameIDSet(size int, contains func(string) bool) error {
	if t.NumSamplets() == 0 {
		return fmt.Errorf("%w: table is empty, add samplets first", ErrValidation)
	}
	if size != len(t.ids) {
		return fmt.Errorf("%w: supplied %d entries for %d samplets",
			ErrValidation, size, len(t.ids))
	}
	for _, id := range t.ids {
		if !contains(id) {
			return fmt.Errorf("%w: supplied mapping misses samplet %q", ErrValidation, id)
		}
	}
	return nil
}

// SetDescription sets the free-text annotation. It must not be empty.
func (t *Table[T]) SetDescription(description string) error {
	if description == "" {
		return fmt.Errorf("%w: description can not be empty", ErrValidation)
	}
	t.description = description
	return nil
}

// GetSubset returns a new table containing only the requested ids, in the
// insertion order of the receiver. Missing ids are skipped; when none of the
// requested ids exist, a warning is reported and an empty table returned.
func (t *Table[T]) GetSubset(ids []string) *Table[T] {
	requested := mapset.NewSet(ids...)
	sub := NewTable[T]()
	for _, id := range t.ids {
		if requested.Contains(id) {
			sub.insert(id, append([]float32(nil), t.features[id]...), t.targets[id], t.classes[id])
		}
	}
	if sub.NumSamplets() == 0 {
		log.Logger().Warn("requested subset of ids does not exist in the table",
			zap.Int("num_requested", len(ids)))
		return sub
	}
	sub.numFeatures = t.numFeatures
	sub.featureNames = append([]string(nil), t.featureNames...)
	sub.valueKind = t.valueKind
	sub.description = appendHistory("subset derived from", t.description)
	return sub
}

// GetFeatureSubset returns a new table with every vector restricted to the
// given column indices. Feature names are sliced in step.
func (t *Table[T]) GetFeatureSubset(indices []int) (*Table[T], error) {
	for _, idx := range indices {
		if idx < 0 || idx >= t.numFeatures {
			return nil, fmt.Errorf("%w: index %d outside [0, %d)", ErrIndexOutOfRange, idx, t.numFeatures)
		}
	}
	sub := NewTable[T]()
	for _, id := range t.ids {
		vec := make([]float32, len(indices))
		for i, idx := range indices {
			vec[i] = t.features[id][idx]
		}
		sub.insert(id, vec, t.targets[id], t.classes[id])
	}
	names := make([]string, len(indices))
	for i, idx := range indices {
		names[i] = t.featureNames[idx]
	}
	sub.numFeatures = len(indices)
	sub.featureNames = names
	sub.valueKind = t.valueKind
	sub.description = appendHistory("feature subset derived from", t.description)
	return sub, nil
}

// MatrixInOrder returns a dense matrix whose rows follow the exact order of
// the given ids. A single string is treated as a one-row request. Passing a
// set fails with ErrUnorderedInput since sets can not guarantee row order.
func (t *Table[T]) MatrixInOrder(ids any) ([][]float32, error) {
	var ordered []string
	switch typed := ids.(type) {
	case string:
		ordered = []string{typed}
	case []string:
		ordered = typed
	case mapset.Set[string]:
		return nil, fmt.Errorf("%w: a set can not guarantee row order, pass a slice", ErrUnorderedInput)
	default:
		return nil, fmt.Errorf("%w: unsupported id container %T", ErrValidation, ids)
	}
	if len(ordered) == 0 {
		log.Logger().Warn("matrix requested for zero ids")
		return [][]float32{}, nil
	}
	matrix := make([][]float32, len(ordered))
	for i, id := range ordered {
		vec, ok := t.features[id]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrSampletNotFound, id)
		}
		matrix[i] = append([]float32(nil), vec...)
	}
	return matrix, nil
}

// MatrixAndTargets exports the features and targets in insertion order, along
// with the ids defining the row order.
func (t *Table[T]) MatrixAndTargets() ([][]float32, []T, []string) {
	matrix := make([][]float32, len(t.ids))
	targets := make([]T, len(t.ids))
	ids := append([]string(nil), t.ids...)
	for i, id := range t.ids {
		matrix[i] = append([]float32(nil), t.features[id]...)
		targets[i] = t.targets[id]
	}
	return matrix, targets, ids
}

// Glance returns the first n samplets.
func (t *Table[T]) Glance(n int) []Samplet[T] {
	if n > len(t.ids) {
		n = len(t.ids)
	}
	if n < 0 {
		n = 0
	}
	glance := make([]Samplet[T], 0, n)
	for _, id := range t.ids[:n] {
		glance = append(glance, Samplet[T]{
			ID:       id,
			Features: append([]float32(nil), t.features[id]...),
			Target:   t.targets[id],
			Class:    t.classes[id],
		})
	}
	return glance
}

// NumSamplets returns the number of samplets.
func (t *Table[T]) NumSamplets() int {
	return len(t.ids)
}

// NumFeatures returns the fixed length of the feature vectors.
func (t *Table[T]) NumFeatures() int {
	return t.numFeatures
}

// Shape returns (samplets, features).
func (t *Table[T]) Shape() (int, int) {
	return len(t.ids), t.numFeatures
}

// IDs returns the samplet ids in insertion order.
func (t *Table[T]) IDs() []string {
	return append([]string(nil), t.ids...)
}

// Contains reports whether the id is present.
func (t *Table[T]) Contains(id string) bool {
	_, ok := t.features[id]
	return ok
}

// Features returns the feature vector of a samplet.
func (t *Table[T]) Features(id string) ([]float32, bool) {
	vec, ok := t.features[id]
	if !ok {
		return nil, false
	}
	return append([]float32(nil), vec...), true
}

// Get returns the feature vector of a samplet, or fallback when absent.
func (t *Table[T]) Get(id string, fallback []float32) []float32 {
	if vec, ok := t.Features(id); ok {
		return vec
	}
	return fallback
}

// Targets returns a copy of the id-to-target mapping.
func (t *Table[T]) Targets() map[string]T {
	targets := make(map[string]T, len(t.targets))
	for id, target := range t.targets {
		targets[id] = target
	}
	return targets
}

// Classes returns a copy of the id-to-class mapping.
func (t *Table[T]) Classes() map[string]string {
	classes := make(map[string]string, len(t.classes))
	for id, class := range t.classes {
		classes[id] = class
	}
	return classes
}

// Target returns the target of a samplet.
func (t *Table[T]) Target(id string) (T, bool) {
	target, ok := t.targets[id]
	return target, ok
}

// Class returns the class label of a samplet.
func (t *Table[T]) Class(id string) (string, bool) {
	class, ok := t.classes[id]
	return class, ok
}

// FeatureNames returns the names of the features.
func (t *Table[T]) FeatureNames() []string {
	return append([]string(nil), t.featureNames...)
}

// ValueKind returns the element kind fixed by the first insertion.
func (t *Table[T]) ValueKind() Kind {
	return t.valueKind
}

// Description returns the free-text annotation.
func (t *Table[T]) Description() string {
	return t.description
}

// ClassSet returns the distinct class labels in first-appearance order.
func (t *Table[T]) ClassSet() []string {
	seen := mapset.NewSet[string]()
	var classes []string
	for _, id := range t.ids {
		if class := t.classes[id]; !seen.Contains(class) {
			seen.Add(class)
			classes = append(classes, class)
		}
	}
	return classes
}

// TargetSet returns the distinct targets in first-appearance order.
func (t *Table[T]) TargetSet() []T {
	seen := mapset.NewSet[T]()
	var targets []T
	for _, id := range t.ids {
		if target := t.targets[id]; !seen.Contains(target) {
			seen.Add(target)
			targets = append(targets, target)
		}
	}
	return targets
}

// ClassSizes returns the number of samplets per class label.
func (t *Table[T]) ClassSizes() map[string]int {
	sizes := make(map[string]int)
	for _, class := range t.classes {
		sizes[class]++
	}
	return sizes
}

// IDsInClass returns the ids of all samplets with the given class label, in
// insertion order.
func (t *Table[T]) IDsInClass(class string) []string {
	var ids []string
	for _, id := range t.ids {
		if t.classes[id] == class {
			ids = append(ids, id)
		}
	}
	return ids
}

// SummarizeClasses returns the class set, the matching target per class and
// the size of each class, for reporting callers.
func (t *Table[T]) SummarizeClasses() (classSet []string, targetSet []T, sizes []int) {
	classSet = t.ClassSet()
	classSizes := t.ClassSizes()
	targetByClass := make(map[string]T)
	for _, id := range t.ids {
		class := t.classes[id]
		if _, ok := targetByClass[class]; !ok {
			targetByClass[class] = t.targets[id]
		}
	}
	targetSet = make([]T, len(classSet))
	sizes = make([]int, len(classSet))
	for i, class := range classSet {
		targetSet[i] = targetByClass[class]
		sizes[i] = classSizes[class]
	}
	return classSet, targetSet, sizes
}

// Equal reports whether both tables hold the same id set with the same class
// labels and elementwise-equal feature vectors per id.
func (t *Table[T]) Equal(other *Table[T]) bool {
	if other == nil {
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
	for id, vec := range t.features {
		if !equalFloats(vec, other.features[id]) {
			return false
		}
	}
	return true
}

// String returns a concise text summary of the table.
func (t *Table[T]) String() string {
	var lines []string
	if t.description != "" {
		lines = append(lines, t.description)
	}
	if t.NumSamplets() == 0 {
		return strings.Join(append(lines, "empty table"), "\n")
	}
	classSet, _, sizes := t.SummarizeClasses()
	lines = append(lines, fmt.Sprintf("%d samplets, %d classes, %d features",
		t.NumSamplets(), len(classSet), t.numFeatures))
	for i, class := range classSet {
		lines = append(lines, fmt.Sprintf("class %s: %d samplets", class, sizes[i]))
	}
	return strings.Join(lines, "\n")
}

func formatTarget[T TargetType](target T) string {
	return fmt.Sprint(target)
}

func defaultFeatureNames(n int) []string {
	names := make([]string, n)
	for i := range names {
		names[i] = fmt.Sprintf("f%d", i)
	}
	return names
}

func appendHistory(prefix, description string) string {
	if description == "" {
		return prefix + " unnamed table"
	}
	return prefix + ": " + description
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func equalFloats(a, b []float32) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
