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

package ies

// Inspect decodes the header and the column descriptors of buf.
func Inspect(buf []byte) (Header, *ColumnTable, error) {
	h, err := ReadHeader(buf)
	if err != nil {
		return Header{}, nil, err
	}
	cols, err := ReadColumns(buf, h)
	if err != nil {
		return h, nil, err
	}
	return h, cols, nil
}

// Decode decodes a whole IES file held in buf.
func Decode(buf []byte) (*Table, error) {
	h, cols, err := Inspect(buf)
	if err != nil {
		return nil, err
	}
	rows, err := ReadRows(buf, h)
	if err != nil {
		return nil, err
	}
	return Assemble(cols, rows), nil
}
