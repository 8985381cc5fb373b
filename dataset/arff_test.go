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
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const irisSnippet = `% 1. Title: Iris Plants Database
@RELATION iris

@ATTRIBUTE sepallength NUMERIC
@ATTRIBUTE sepalwidth  NUMERIC
@ATTRIBUTE petallength NUMERIC
@ATTRIBUTE petalwidth  NUMERIC
@ATTRIBUTE class       {Iris-setosa,Iris-versicolor,Iris-virginica}

@DATA
5.1,3.5,1.4,0.2,Iris-setosa
4.9,3.0,1.4,0.2,Iris-setosa
7.0,3.2,4.7,1.4,Iris-versicolor
6.3,3.3,6.0,2.5,Iris-virginica
5.8,2.7,5.1,1.9,Iris-virginica
`

func TestReadARFF(t *testing.T) {
	table, err := ReadARFF(strings.NewReader(irisSnippet))
	require.NoError(t, err)
	assert.Equal(t, 5, table.NumSamplets())
	assert.Equal(t, 4, table.NumFeatures())
	assert.Equal(t, "iris", table.Description())
	assert.Equal(t, []string{"sepallength", "sepalwidth", "petallength", "petalwidth"},
		table.FeatureNames())
	assert.Equal(t, []string{"row0", "row1", "row2", "row3", "row4"}, table.IDs())

	vec, ok := table.Features("row2")
	require.True(t, ok)
	assert.Equal(t, []float32{7.0, 3.2, 4.7, 1.4}, vec)

	// targets are 1-based class indices in first-appearance order
	target, _ := table.Target("row0")
	assert.Equal(t, 1, target)
	target, _ = table.Target("row2")
	assert.Equal(t, 2, target)
	target, _ = table.Target("row4")
	assert.Equal(t, 3, target)
	class, _ := table.Class("row4")
	assert.Equal(t, "Iris-virginica", class)

	assert.Equal(t, map[string]int{
		"Iris-setosa":     2,
		"Iris-versicolor": 1,
		"Iris-virginica":  2,
	}, table.ClassSizes())
}

func TestReadARFFRowIDPadding(t *testing.T) {
	var sb strings.Builder
	sb.WriteString("@relation wide\n@attribute f numeric\n@attribute class {a,b}\n@data\n")
	for i := 0; i < 12; i++ {
		sb.WriteString("1.0,a\n")
	}
	table, err := ReadARFF(strings.NewReader(sb.String()))
	require.NoError(t, err)
	assert.Equal(t, "row00", table.IDs()[0])
	assert.Equal(t, "row11", table.IDs()[11])
}

func TestReadARFFNonNumericFeature(t *testing.T) {
	arff := `@relation bad
@attribute color {red,green}
@attribute size numeric
@attribute class {a,b}
@data
red,1.0,a
`
	_, err := ReadARFF(strings.NewReader(arff))
	assert.ErrorIs(t, err, ErrNonNumericAttribute)
}

func TestReadARFFQuotedAttributeNames(t *testing.T) {
	arff := `@relation quoted
@attribute 'mean radius' real
@attribute class {m,b}
@data
17.99,m
`
	table, err := ReadARFF(strings.NewReader(arff))
	require.NoError(t, err)
	assert.Equal(t, []string{"mean radius"}, table.FeatureNames())
}

func TestReadARFFMalformed(t *testing.T) {
	for name, arff := range map[string]string{
		"no data section": "@relation x\n@attribute f numeric\n@attribute class {a}\n",
		"no rows":         "@relation x\n@attribute f numeric\n@attribute class {a}\n@data\n",
		"missing class":   "@relation x\n@attribute f numeric\n@data\n1.0\n",
		"ragged row":      "@relation x\n@attribute f numeric\n@attribute class {a}\n@data\n1.0\n",
		"bad value":       "@relation x\n@attribute f numeric\n@attribute class {a}\n@data\noops,a\n",
	} {
		_, err := ReadARFF(strings.NewReader(arff))
		assert.ErrorIsf(t, err, ErrValidation, "case %s", name)
	}
}

func TestLoadARFF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "iris.arff")
	require.NoError(t, os.WriteFile(path, []byte(irisSnippet), 0o644))
	table, err := LoadARFF(path)
	require.NoError(t, err)
	assert.Equal(t, 5, table.NumSamplets())

	_, err = LoadARFF(filepath.Join(t.TempDir(), "absent.arff"))
	assert.Error(t, err)
}
