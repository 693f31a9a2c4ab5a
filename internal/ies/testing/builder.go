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

// Package testing builds IES files for tests.
package testing

import (
	// standard libraries.
	"bytes"
	"encoding/binary"
	"math"

	// this project.
	"github.com/vanus-labs/ies2tsv/internal/ies"
)

const (
	tableNameSize  = 128
	columnNameSize = 64
)

// Obfuscate is the inverse of ies.Deobfuscate: every byte of s is XORed
// with 0x01, then the result is padded with NUL bytes up to width.
func Obfuscate(s string, width int) []byte {
	if width < len(s) {
		width = len(s)
	}
	out := make([]byte, width)
	for i := 0; i < len(s); i++ {
		out[i] = s[i] ^ 0x01
	}
	return out
}

type Row struct {
	ID      uint32
	Key     string
	Numbers []float32
	Strings []string
}

// File describes an IES file. Counts in the header are derived from
// Columns and Rows.
type File struct {
	TableName string
	Marker    uint32
	Columns   []ies.Column
	Rows      []Row
}

func NewFile(name string) *File {
	return &File{
		TableName: name,
		Marker:    ies.FormatMarker,
	}
}

func (f *File) nextSlot(kind ies.Kind) uint16 {
	var n uint16
	for _, c := range f.Columns {
		if c.Kind == kind {
			n++
		}
	}
	return n
}

func (f *File) AddNumeric(name string) *File {
	f.Columns = append(f.Columns, ies.Column{Name: name, Kind: ies.KindNumeric, Slot: f.nextSlot(ies.KindNumeric)})
	return f
}

func (f *File) AddString(name string) *File {
	f.Columns = append(f.Columns, ies.Column{Name: name, Kind: ies.KindString, Slot: f.nextSlot(ies.KindString)})
	return f
}

func (f *File) AddRow(id uint32, key string, numbers []float32, strs ...string) *File {
	f.Rows = append(f.Rows, Row{ID: id, Key: key, Numbers: numbers, Strings: strs})
	return f
}

func (f *File) counts() (numeric, str uint16) {
	for _, c := range f.Columns {
		if c.Kind == ies.KindNumeric {
			numeric++
		} else {
			str++
		}
	}
	return numeric, str
}

func (f *File) columnBlock() []byte {
	var buf bytes.Buffer
	for _, c := range f.Columns {
		buf.Write(Obfuscate(c.Name, columnNameSize))
		buf.Write(make([]byte, 64))
		_ = binary.Write(&buf, binary.LittleEndian, uint16(c.Kind))
		buf.Write(make([]byte, 4))
		_ = binary.Write(&buf, binary.LittleEndian, c.Slot)
	}
	return buf.Bytes()
}

func (f *File) rowBlock() []byte {
	var buf bytes.Buffer
	for _, r := range f.Rows {
		_ = binary.Write(&buf, binary.LittleEndian, r.ID)
		_ = binary.Write(&buf, binary.LittleEndian, uint16(len(r.Key)))
		buf.WriteString(r.Key)
		for _, n := range r.Numbers {
			_ = binary.Write(&buf, binary.LittleEndian, math.Float32bits(n))
		}
		for _, s := range r.Strings {
			_ = binary.Write(&buf, binary.LittleEndian, uint16(len(s)))
			buf.Write(Obfuscate(s, 0))
		}
		buf.Write(make([]byte, len(r.Strings)))
	}
	return buf.Bytes()
}

// Bytes encodes the file.
func (f *File) Bytes() []byte {
	cols := f.columnBlock()
	rows := f.rowBlock()
	numeric, str := f.counts()

	header := make([]byte, ies.HeaderSize)
	copy(header[:tableNameSize], f.TableName)
	binary.LittleEndian.PutUint32(header[128:], f.Marker)
	binary.LittleEndian.PutUint32(header[132:], uint32(len(cols)))
	binary.LittleEndian.PutUint32(header[136:], uint32(len(rows)))
	binary.LittleEndian.PutUint32(header[140:], uint32(ies.HeaderSize+len(cols)+len(rows)))
	binary.LittleEndian.PutUint16(header[146:], uint16(len(f.Rows)))
	binary.LittleEndian.PutUint16(header[148:], uint16(len(f.Columns)))
	binary.LittleEndian.PutUint16(header[150:], numeric)
	binary.LittleEndian.PutUint16(header[152:], str)

	out := make([]byte, 0, len(header)+len(cols)+len(rows))
	out = append(out, header...)
	out = append(out, cols...)
	return append(out, rows...)
}

// SampleFile is a two column, two row table:
//
//	ID	Name
//	1.0	Alice
//	2.0	Bob
func SampleFile() *File {
	return NewFile("Sample").
		AddNumeric("ID").
		AddString("Name").
		AddRow(1, "k1", []float32{1}, "Alice").
		AddRow(2, "k2", []float32{2}, "Bob")
}

// SampleTSV is the text form of SampleFile.
const SampleTSV = "ID\tName\n1.0\tAlice\n2.0\tBob"
