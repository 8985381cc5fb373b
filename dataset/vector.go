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

	"github.com/samber/lo"
)

// Kind identifies the element type of the feature vectors a caller inserted.
// It is fixed by the first insertion and enforced on every later one.
type Kind uint8

const (
	KindNone Kind = iota
	KindInt
	KindFloat32
	KindFloat64
)

func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindFloat32:
		return "float32"
	case KindFloat64:
		return "float64"
	default:
		return "none"
	}
}

// Flatten converts any supported numeric input to a flat float32 vector and
// reports the element kind of the input. Nested slices are collapsed to 1-D.
func Flatten(features any) ([]float32, Kind, error) {
	var (
		vec  []float32
		kind Kind
	)
	switch typed := features.(type) {
	case nil:
		return nil, KindNone, fmt.Errorf("%w: features are empty", ErrValidation)
	case float32:
		vec, kind = []float32{typed}, KindFloat32
	case float64:
		vec, kind = []float32{float32(typed)}, KindFloat64
	case int:
		vec, kind = []float32{float32(typed)}, KindInt
	case []float32:
		vec = make([]float32, len(typed))
		copy(vec, typed)
		kind = KindFloat32
	case []float64:
		vec = lo.Map(typed, func(e float64, _ int) float32 { return float32(e) })
		kind = KindFloat64
	case []int:
		vec = lo.Map(typed, func(e int, _ int) float32 { return float32(e) })
		kind = KindInt
	case []int32:
		vec = lo.Map(typed, func(e int32, _ int) float32 { return float32(e) })
		kind = KindInt
	case []int64:
		vec = lo.Map(typed, func(e int64, _ int) float32 { return float32(e) })
		kind = KindInt
	case [][]float32:
		for _, row := range typed {
			vec = append(vec, row...)
		}
		kind = KindFloat32
	case [][]float64:
		for _, row := range typed {
			for _, e := range row {
				vec = append(vec, float32(e))
			}
		}
		kind = KindFloat64
	case [][]int:
		for _, row := range typed {
			for _, e := range row {
				vec = append(vec, float32(e))
			}
		}
		kind = KindInt
	default:
		return nil, KindNone, fmt.Errorf("%w: unsupported feature container %T", ErrValidation, features)
	}
	if len(vec) == 0 {
		return nil, KindNone, fmt.Errorf("%w: features are empty", ErrValidation)
	}
	return vec, kind, nil
}
