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

import "github.com/juju/errors"

// Error kinds surfaced by table operations. Structural violations fail fast
// and leave the table unmodified; benign not-found conditions degrade to a
// logged warning instead. Match with errors.Is.
const (
	// ErrValidation reports malformed, empty or mismatched input.
	ErrValidation = errors.ConstError("invalid input")
	// ErrDuplicateSamplet reports re-insertion of an id without overwrite.
	ErrDuplicateSamplet = errors.ConstError("samplet already exists")
	// ErrDimensionMismatch reports a feature vector whose length differs
	// from the feature count of the table.
	ErrDimensionMismatch = errors.ConstError("feature dimension mismatch")
	// ErrTypeMismatch reports a feature vector whose element type differs
	// from the value kind of the table.
	ErrTypeMismatch = errors.ConstError("feature value kind mismatch")
	// ErrSampletNotFound reports lookup or replacement of an absent id.
	ErrSampletNotFound = errors.ConstError("samplet not found")
	// ErrUnorderedInput reports an unordered collection passed where row
	// order must be caller-guaranteed.
	ErrUnorderedInput = errors.ConstError("unordered input")
	// ErrIndexOutOfRange reports a feature index outside [0, NumFeatures).
	ErrIndexOutOfRange = errors.ConstError("feature index out of range")
	// ErrIncompatibleTables reports tables that violate a combination
	// precondition, such as differing feature counts or class labels.
	ErrIncompatibleTables = errors.ConstError("incompatible tables")
	// ErrAmbiguousCombine reports a combination of tables whose id sets
	// partially overlap, which has no defined semantics.
	ErrAmbiguousCombine = errors.ConstError("ambiguous combination")
	// ErrCorruptData reports a persisted table that failed reconstruction.
	ErrCorruptData = errors.ConstError("corrupt table data")
	// ErrNonNumericAttribute reports an ARFF attribute that is not numeric.
	ErrNonNumericAttribute = errors.ConstError("non-numeric attribute")
)
