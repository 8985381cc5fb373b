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
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/juju/errors"

	"github.com/growupboron/pyradigm/base/encoding"
)

// Table blob layout: magic, version, value kind, target kind, feature count,
// description, feature names, then one (id, class, target, vector) record
// per samplet in insertion order.
var blobMagic = [4]byte{'P', 'Y', 'R', 'D'}

const blobVersion byte = 1

// TargetKind identifies the target type a table was persisted with.
type TargetKind byte

const (
	TargetNone TargetKind = iota
	TargetString
	TargetInt
	TargetInt32
	TargetInt64
	TargetFloat32
	TargetFloat64
)

func (k TargetKind) String() string {
	switch k {
	case TargetString:
		return "string"
	case TargetInt:
		return "int"
	case TargetInt32:
		return "int32"
	case TargetInt64:
		return "int64"
	case TargetFloat32:
		return "float32"
	case TargetFloat64:
		return "float64"
	default:
		return "none"
	}
}

func targetKindOf[T TargetType]() TargetKind {
	var zero T
	switch any(zero).(type) {
	case string:
		return TargetString
	case int:
		return TargetInt
	case int32:
		return TargetInt32
	case int64:
		return TargetInt64
	case float32:
		return TargetFloat32
	case float64:
		return TargetFloat64
	default:
		return TargetNone
	}
}

func parseTarget[T TargetType](s string) (T, error) {
	var zero T
	switch p := any(&zero).(type) {
	case *string:
		*p = s
	case *int:
		v, err := strconv.Atoi(s)
		if err != nil {
			return zero, errors.Trace(err)
		}
		*p = v
	case *int32:
		v, err := strconv.ParseInt(s, 10, 32)
		if err != nil {
			return zero, errors.Trace(err)
		}
		*p = int32(v)
	case *int64:
		v, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return zero, errors.Trace(err)
		}
		*p = v
	case *float32:
		v, err := strconv.ParseFloat(s, 32)
		if err != nil {
			return zero, errors.Trace(err)
		}
		*p = float32(v)
	case *float64:
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return zero, errors.Trace(err)
		}
		*p = v
	}
	return zero, nil
}

// Save writes the full table state to path as a single binary blob. Failures
// to create or write the file surface the underlying I/O error.
func (t *Table[T]) Save(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return errors.Trace(err)
	}
	defer file.Close()
	w := bufio.NewWriter(file)
	if err := t.write(w); err != nil {
		return errors.Trace(err)
	}
	if err := w.Flush(); err != nil {
		return errors.Trace(err)
	}
	return errors.Trace(file.Close())
}

func (t *Table[T]) write(w io.Writer) error {
	if _, err := w.Write(blobMagic[:]); err != nil {
		return errors.Trace(err)
	}
	header := []byte{blobVersion, byte(t.valueKind), byte(targetKindOf[T]())}
	if _, err := w.Write(header); err != nil {
		return errors.Trace(err)
	}
	if err := binary.Write(w, binary.LittleEndian, int32(t.numFeatures)); err != nil {
		return errors.Trace(err)
	}
	if err := encoding.WriteString(w, t.description); err != nil {
		return errors.Trace(err)
	}
	if err := encoding.WriteStringSlice(w, t.featureNames); err != nil {
		return errors.Trace(err)
	}
	if err := binary.Write(w, binary.LittleEndian, int32(len(t.ids))); err != nil {
		return errors.Trace(err)
	}
	for _, id := range t.ids {
		if err := encoding.WriteString(w, id); err != nil {
			return errors.Trace(err)
		}
		if err := encoding.WriteString(w, t.classes[id]); err != nil {
			return errors.Trace(err)
		}
		if err := encoding.WriteString(w, formatTarget(t.targets[id])); err != nil {
			return errors.Trace(err)
		}
		if err := encoding.WriteVector(w, t.features[id]); err != nil {
			return errors.Trace(err)
		}
	}
	return nil
}

// Load reconstructs a table persisted by Save, re-validating all container
// invariants. A missing or unreadable file surfaces the I/O error; malformed
// content fails with ErrCorruptData. The target type must match the one the
// table was saved with.
func Load[T TargetType](path string) (*Table[T], error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Trace(err)
	}
	defer file.Close()
	r := bufio.NewReader(file)
	valueKind, targetKind, err := readHeader(r)
	if err != nil {
		return nil, errors.Annotatef(err, "reading %s", path)
	}
	if targetKind != targetKindOf[T]() {
		return nil, fmt.Errorf("%w: table stores %s targets, %s requested",
			ErrTypeMismatch, targetKind, targetKindOf[T]())
	}
	t, err := readBody[T](r, valueKind)
	if err != nil {
		return nil, errors.Annotatef(err, "reading %s", path)
	}
	return t, nil
}

func readHeader(r io.Reader) (Kind, TargetKind, error) {
	var magic [4]byte
	if _, err := io.ReadFull(r, magic[:]); err != nil {
		return KindNone, TargetNone, fmt.Errorf("%w: %v", ErrCorruptData, err)
	}
	if magic != blobMagic {
		return KindNone, TargetNone, fmt.Errorf("%w: bad magic %q", ErrCorruptData, magic[:])
	}
	var header [3]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		return KindNone, TargetNone, fmt.Errorf("%w: %v", ErrCorruptData, err)
	}
	if header[0] != blobVersion {
		return KindNone, TargetNone, fmt.Errorf("%w: unsupported version %d", ErrCorruptData, header[0])
	}
	return Kind(header[1]), TargetKind(header[2]), nil
}

func readBody[T TargetType](r io.Reader, valueKind Kind) (*Table[T], error) {
	var numFeatures int32
	if err := binary.Read(r, binary.LittleEndian, &numFeatures); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptData, err)
	}
	if numFeatures < 0 {
		return nil, fmt.Errorf("%w: negative feature count", ErrCorruptData)
	}
	description, err := encoding.ReadString(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptData, err)
	}
	featureNames, err := encoding.ReadStringSlice(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptData, err)
	}
	if len(featureNames) > 0 && len(featureNames) != int(numFeatures) {
		return nil, fmt.Errorf("%w: %d feature names for %d features",
			ErrCorruptData, len(featureNames), numFeatures)
	}
	var count int32
	if err := binary.Read(r, binary.LittleEndian, &count); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptData, err)
	}
	if count < 0 {
		return nil, fmt.Errorf("%w: negative samplet count", ErrCorruptData)
	}
	t := NewTable[T]()
	t.numFeatures = int(numFeatures)
	t.valueKind = valueKind
	t.description = description
	t.featureNames = featureNames
	for i := int32(0); i < count; i++ {
		id, err := encoding.ReadString(r)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrCorruptData, err)
		}
		if _, exists := t.features[id]; exists {
			return nil, fmt.Errorf("%w: duplicate samplet %q", ErrCorruptData, id)
		}
		class, err := encoding.ReadString(r)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrCorruptData, err)
		}
		rawTarget, err := encoding.ReadString(r)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrCorruptData, err)
		}
		target, err := parseTarget[T](rawTarget)
		if err != nil {
			return nil, fmt.Errorf("%w: samplet %q has malformed target %q", ErrCorruptData, id, rawTarget)
		}
		vec, err := encoding.ReadVector(r)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrCorruptData, err)
		}
		if len(vec) != int(numFeatures) {
			return nil, fmt.Errorf("%w: samplet %q has %d features, want %d",
				ErrCorruptData, id, len(vec), numFeatures)
		}
		t.insert(id, vec, target, class)
	}
	return t, nil
}

// Summary describes a persisted table without binding its target type.
type Summary struct {
	ValueKind    Kind
	TargetKind   TargetKind
	NumSamplets  int
	NumFeatures  int
	Description  string
	FeatureNames []string
	ClassSizes   map[string]int
}

// Peek reads the blob at path and summarizes it. Callers use the reported
// TargetKind to pick the type parameter for Load.
func Peek(path string) (*Summary, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Trace(err)
	}
	defer file.Close()
	r := bufio.NewReader(file)
	valueKind, targetKind, err := readHeader(r)
	if err != nil {
		return nil, errors.Annotatef(err, "reading %s", path)
	}
	// Targets stay in their string form, so any stored kind decodes.
	t, err := readBody[string](r, valueKind)
	if err != nil {
		return nil, errors.Annotatef(err, "reading %s", path)
	}
	return &Summary{
		ValueKind:    valueKind,
		TargetKind:   targetKind,
		NumSamplets:  t.NumSamplets(),
		NumFeatures:  t.NumFeatures(),
		Description:  t.Description(),
		FeatureNames: t.FeatureNames(),
		ClassSizes:   t.ClassSizes(),
	}, nil
}
