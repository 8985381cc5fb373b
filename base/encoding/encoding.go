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

// Package encoding implements the binary stream primitives used by the
// dataset persistence format.
package encoding

import (
	"encoding/binary"
	"io"

	"github.com/juju/errors"
)

// readChunk bounds the bytes allocated ahead of a read, so a corrupt length
// prefix fails on the truncated stream instead of exhausting memory.
const readChunk = 1 << 20

// WriteVector writes a dense vector to byte stream.
func WriteVector(w io.Writer, v []float32) error {
	if err := binary.Write(w, binary.LittleEndian, int32(len(v))); err != nil {
		return errors.Trace(err)
	}
	return errors.Trace(binary.Write(w, binary.LittleEndian, v))
}

// ReadVector reads a dense vector from byte stream.
func ReadVector(r io.Reader) ([]float32, error) {
	var length int32
	if err := binary.Read(r, binary.LittleEndian, &length); err != nil {
		return nil, errors.Trace(err)
	}
	if length < 0 {
		return nil, errors.New("negative vector length")
	}
	const chunk = readChunk / 4
	v := make([]float32, 0, min(int(length), chunk))
	for remaining := int(length); remaining > 0; {
		n := min(remaining, chunk)
		buf := make([]float32, n)
		if err := binary.Read(r, binary.LittleEndian, buf); err != nil {
			return nil, errors.Trace(err)
		}
		v = append(v, buf...)
		remaining -= n
	}
	return v, nil
}

// WriteString writes string to byte stream.
func WriteString(w io.Writer, s string) error {
	return WriteBytes(w, []byte(s))
}

// ReadString reads string from byte stream.
func ReadString(r io.Reader) (string, error) {
	data, err := ReadBytes(r)
	return string(data), err
}

// WriteStringSlice writes a slice of strings to byte stream.
func WriteStringSlice(w io.Writer, s []string) error {
	if err := binary.Write(w, binary.LittleEndian, int32(len(s))); err != nil {
		return errors.Trace(err)
	}
	for _, v := range s {
		if err := WriteString(w, v); err != nil {
			return errors.Trace(err)
		}
	}
	return nil
}

// ReadStringSlice reads a slice of strings from byte stream.
func ReadStringSlice(r io.Reader) ([]string, error) {
	var length int32
	if err := binary.Read(r, binary.LittleEndian, &length); err != nil {
		return nil, errors.Trace(err)
	}
	if length < 0 {
		return nil, errors.New("negative slice length")
	}
	s := make([]string, 0, min(int(length), readChunk/16))
	for i := int32(0); i < length; i++ {
		v, err := ReadString(r)
		if err != nil {
			return nil, errors.Trace(err)
		}
		s = append(s, v)
	}
	return s, nil
}

// WriteBytes writes bytes to byte stream.
func WriteBytes(w io.Writer, s []byte) error {
	err := binary.Write(w, binary.LittleEndian, int32(len(s)))
	if err != nil {
		return err
	}
	n, err := w.Write(s)
	if err != nil {
		return err
	} else if n != len(s) {
		return errors.New("fail to write string")
	}
	return nil
}

// ReadBytes reads bytes from byte stream.
func ReadBytes(r io.Reader) ([]byte, error) {
	var length int32
	err := binary.Read(r, binary.LittleEndian, &length)
	if err != nil {
		return nil, err
	}
	if length < 0 {
		return nil, errors.New("negative byte length")
	}
	data := make([]byte, 0, min(int(length), readChunk))
	buf := make([]byte, min(int(length), readChunk))
	for remaining := int(length); remaining > 0; {
		n, err := r.Read(buf[:min(remaining, len(buf))])
		if err != nil {
			return nil, err
		}
		if n == 0 {
			return nil, errors.New("fail to read string")
		}
		data = append(data, buf[:n]...)
		remaining -= n
	}
	return data, nil
}
