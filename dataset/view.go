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

// View is the target-type-independent surface of a table, for callers that
// inspect, split or persist a table without caring about its target type.
type View interface {
	NumSamplets() int
	NumFeatures() int
	Shape() (int, int)
	IDs() []string
	ClassSet() []string
	ClassSizes() map[string]int
	FeatureNames() []string
	ValueKind() Kind
	Description() string
	Describe() []FeatureStats
	SplitIDs(opts SplitOptions) (train, test []string, err error)
	Save(path string) error
	String() string
}

var (
	_ View = (*ClassificationTable)(nil)
	_ View = (*RegressionTable)(nil)
)
