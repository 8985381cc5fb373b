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

package encoding

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWriteVector(t *testing.T) {
	a := []float32{1, 2, 3, 4}
	buf := bytes.NewBuffer(nil)
	err := WriteVector(buf, a)
	assert.NoError(t, err)
	b, err := ReadVector(buf)
	assert.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestWriteString(t *testing.T) {
	a := "abc"
	buf := bytes.NewBuffer(nil)
	err := WriteString(buf, a)
	assert.NoError(t, err)
	var b string
	b, err = ReadString(buf)
	assert.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestWriteStringSlice(t *testing.T) {
	a := []string{"f0", "f1", "f2"}
	buf := bytes.NewBuffer(nil)
	err := WriteStringSlice(buf, a)
	assert.NoError(t, err)
	b, err := ReadStringSlice(buf)
	assert.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestReadTruncated(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	assert.NoError(t, WriteString(buf, "truncated payload"))
	short := bytes.NewBuffer(buf.Bytes()[:buf.Len()-4])
	_, err := ReadString(short)
	assert.Error(t, err)
}

func TestReadOverstatedLength(t *testing.T) {
	// a length prefix claiming far more data than the stream holds must
	// fail without allocating the claimed size
	header := []byte{0xff, 0xff, 0xff, 0x7f}

	_, err := ReadBytes(bytes.NewBuffer(append(append([]byte{}, header...), 'x')))
	assert.Error(t, err)

	_, err = ReadVector(bytes.NewBuffer(append(append([]byte{}, header...), 1, 2, 3, 4)))
	assert.Error(t, err)

	_, err = ReadStringSlice(bytes.NewBuffer(append([]byte{}, header...)))
	assert.Error(t, err)
}
