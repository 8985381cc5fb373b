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
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/juju/errors"
	"github.com/samber/lo"
)

// arffAttribute is one @attribute declaration.
type arffAttribute struct {
	name string
	typ  string
}

func (a arffAttribute) numeric() bool {
	switch strings.ToLower(a.typ) {
	case "numeric", "real", "integer":
		return true
	default:
		return false
	}
}

// LoadARFF imports a dataset in the attribute-relation file format. The last
// attribute is the class label; all other attributes must be numeric. Rows
// carry no ids, so zero-padded sequential ids are synthesized. Targets are
// 1-based class indices in first-appearance order.
func LoadARFF(path string) (*Table[int], error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Trace(err)
	}
	defer file.Close()
	t, err := ReadARFF(file)
	if err != nil {
		return nil, errors.Annotatef(err, "reading %s", path)
	}
	return t, nil
}

// ReadARFF imports an ARFF dataset from a stream. See LoadARFF.
func ReadARFF(r io.Reader) (*Table[int], error) {
	var (
		relation   string
		attributes []arffAttribute
		rows       [][]float32
		rowClasses []string
	)
	inData := false
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 1024*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "%") {
			continue
		}
		if !inData {
			lower := strings.ToLower(line)
			switch {
			case strings.HasPrefix(lower, "@relation"):
				relation = strings.Trim(strings.TrimSpace(line[len("@relation"):]), `'"`)
			case strings.HasPrefix(lower, "@attribute"):
				attr, err := parseAttribute(strings.TrimSpace(line[len("@attribute"):]))
				if err != nil {
					return nil, err
				}
				attributes = append(attributes, attr)
			case strings.HasPrefix(lower, "@data"):
				if len(attributes) < 2 {
					return nil, fmt.Errorf("%w: need at least one numeric attribute and a class",
						ErrValidation)
				}
				if nonNumeric := lo.Filter(attributes[:len(attributes)-1], func(a arffAttribute, _ int) bool {
					return !a.numeric()
				}); len(nonNumeric) > 0 {
					return nil, fmt.Errorf("%w: %q is %s, encode features to numeric before import",
						ErrNonNumericAttribute, nonNumeric[0].name, nonNumeric[0].typ)
				}
				inData = true
			}
			continue
		}
		fields := strings.Split(line, ",")
		if len(fields) != len(attributes) {
			return nil, fmt.Errorf("%w: row %d has %d values, want %d",
				ErrValidation, len(rows), len(fields), len(attributes))
		}
		vec := make([]float32, len(fields)-1)
		for i, field := range fields[:len(fields)-1] {
			v, err := strconv.ParseFloat(strings.TrimSpace(field), 32)
			if err != nil {
				return nil, fmt.Errorf("%w: row %d has non-numeric value %q",
					ErrValidation, len(rows), strings.TrimSpace(field))
			}
			vec[i] = float32(v)
		}
		rows = append(rows, vec)
		rowClasses = append(rowClasses, strings.Trim(strings.TrimSpace(fields[len(fields)-1]), `'"`))
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Trace(err)
	}
	if !inData {
		return nil, fmt.Errorf("%w: no @data section", ErrValidation)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no data rows", ErrValidation)
	}
	// encode class names to targets 1 to n in first-appearance order
	targets := make(map[string]int)
	for _, class := range rowClasses {
		if _, ok := targets[class]; !ok {
			targets[class] = len(targets) + 1
		}
	}
	featureNames := lo.Map(attributes[:len(attributes)-1], func(a arffAttribute, _ int) string {
		return a.name
	})
	width := len(strconv.Itoa(len(rows)))
	t := NewTable[int]()
	for i, vec := range rows {
		id := fmt.Sprintf("row%0*d", width, i)
		opts := []AddOption{WithClassID(rowClasses[i])}
		if i == 0 {
			opts = append(opts, WithFeatureNames(featureNames))
		}
		if err := t.AddSamplet(id, vec, targets[rowClasses[i]], opts...); err != nil {
			return nil, errors.Trace(err)
		}
	}
	t.description = relation
	return t, nil
}

func parseAttribute(decl string) (arffAttribute, error) {
	if decl == "" {
		return arffAttribute{}, fmt.Errorf("%w: empty attribute declaration", ErrValidation)
	}
	var name, rest string
	if decl[0] == '\'' || decl[0] == '"' {
		quote := decl[0]
		end := strings.IndexByte(decl[1:], quote)
		if end < 0 {
			return arffAttribute{}, fmt.Errorf("%w: unterminated attribute name %q", ErrValidation, decl)
		}
		name = decl[1 : end+1]
		rest = strings.TrimSpace(decl[end+2:])
	} else {
		fields := strings.SplitN(decl, " ", 2)
		if len(fields) != 2 {
			return arffAttribute{}, fmt.Errorf("%w: attribute %q has no type", ErrValidation, decl)
		}
		name = fields[0]
		rest = strings.TrimSpace(fields[1])
	}
	if rest == "" {
		return arffAttribute{}, fmt.Errorf("%w: attribute %q has no type", ErrValidation, name)
	}
	return arffAttribute{name: name, typ: rest}, nil
}
