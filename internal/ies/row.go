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

import (
	// standard libraries.
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Row is one decoded record. Fields holds the numeric columns first, then
// the string columns, each in slot order.
type Row struct {
	ID     uint32
	Fields []string
}

// ReadRows decodes the row data block described by h.
func ReadRows(buf []byte, h Header) ([]Row, error) {
	rows := make([]Row, 0, h.RowCount)
	c := newCursor(buf, h.RowsOffset())
	for i := 0; i < int(h.RowCount); i++ {
		var (
			row Row
			err error
		)
		if row, c, err = readRow(c, i, h.NumericCount, h.StringCount); err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func readRow(c cursor, i int, numericCount, stringCount uint16) (Row, cursor, error) {
	field := fmt.Sprintf("row[%d]", i)

	id, c, err := c.Uint32(field + ".id")
	if err != nil {
		return Row{}, c, err
	}

	// The lookup key is not part of the table.
	keyLen, c, err := c.Uint16(field + ".key_length")
	if err != nil {
		return Row{}, c, err
	}
	if c, err = c.Skip(field+".key", int(keyLen)); err != nil {
		return Row{}, c, err
	}

	row := Row{
		ID:     id,
		Fields: make([]string, 0, int(numericCount)+int(stringCount)),
	}

	for j := 0; j < int(numericCount); j++ {
		var v float32
		if v, c, err = c.Float32(fmt.Sprintf("%s.numeric[%d]", field, j)); err != nil {
			return Row{}, c, err
		}
		row.Fields = append(row.Fields, FormatFloat(v))
	}

	for j := 0; j < int(stringCount); j++ {
		name := fmt.Sprintf("%s.string[%d]", field, j)
		var (
			n   uint16
			raw []byte
		)
		if n, c, err = c.Uint16(name + ".length"); err != nil {
			return Row{}, c, err
		}
		if raw, c, err = c.Bytes(name, int(n)); err != nil {
			return Row{}, c, err
		}
		row.Fields = append(row.Fields, Deobfuscate(raw))
	}

	// One flag byte per string column closes the record.
	if c, err = c.Skip(field+".flags", int(stringCount)); err != nil {
		return Row{}, c, err
	}

	return row, c, nil
}

// FormatFloat renders v the way IES table dumps print numbers:
// the shortest decimal that round-trips the value widened to float64,
// fixed notation with at least one fractional digit for decimal exponents
// in [-4, 16), scientific notation otherwise.
func FormatFloat(v float32) string {
	f := float64(v)
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}

	sci := strconv.FormatFloat(f, 'e', -1, 64)
	exp, _ := strconv.Atoi(sci[strings.IndexByte(sci, 'e')+1:])
	if exp < -4 || exp >= 16 {
		return sci
	}

	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}
	return s
}
