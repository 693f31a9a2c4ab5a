// Copyright 2023 Linkall Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package convert

import (
	// standard libraries.
	"bytes"
	"path/filepath"
	"strings"

	// this project.
	"github.com/vanus-labs/ies2tsv/internal/ies"
)

const (
	separator = '\t'
	newline   = '\n'
)

// EncodeTSV renders t as tab separated text without a trailing newline.
func EncodeTSV(t *ies.Table) []byte {
	var buf bytes.Buffer
	for i, row := range t.Rows() {
		if i > 0 {
			buf.WriteByte(newline)
		}
		for j, field := range row {
			if j > 0 {
				buf.WriteByte(separator)
			}
			buf.WriteString(field)
		}
	}
	return buf.Bytes()
}

// OutputPath replaces the extension of input with ext.
func OutputPath(input, ext string) string {
	return strings.TrimSuffix(input, filepath.Ext(input)) + ext
}
