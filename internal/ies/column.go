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
)

const (
	columnNameSize     = 64
	columnReservedSize = 64
	columnPaddingSize  = 4
	DescriptorSize     = columnNameSize + columnReservedSize + 2 + columnPaddingSize + 2
)

// Kind is the declared type of a column.
type Kind uint16

const (
	KindNumeric Kind = iota
	KindString
)

func (k Kind) String() string {
	switch k {
	case KindNumeric:
		return "numeric"
	case KindString:
		return "string"
	default:
		return fmt.Sprintf("kind(%d)", uint16(k))
	}
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Column describes one column of a table.
type Column struct {
	Name string `json:"Name"`
	Kind Kind   `json:"Kind"`
	// Slot is the position of the column among columns of the same kind.
	Slot uint16 `json:"Slot"`
	// Index is the final position of the column in a row.
	Index int `json:"Index"`
}

type columnSlot struct {
	col  Column
	used bool
}

// ColumnTable maps final column positions to columns. Every position is
// written at most once.
type ColumnTable struct {
	slots []columnSlot
}

func NewColumnTable(n int) *ColumnTable {
	return &ColumnTable{
		slots: make([]columnSlot, n),
	}
}

func (t *ColumnTable) Len() int {
	return len(t.slots)
}

// Put stores col at col.Index.
func (t *ColumnTable) Put(col Column) error {
	if col.Index < 0 || col.Index >= len(t.slots) {
		return formatErrorf("column.index", -1, "column %q maps to index %d, table has %d columns",
			col.Name, col.Index, len(t.slots))
	}
	if s := &t.slots[col.Index]; s.used {
		return formatErrorf("column.index", -1, "index %d already holds %q, cannot store %q",
			col.Index, s.col.Name, col.Name)
	}
	t.slots[col.Index] = columnSlot{col: col, used: true}
	return nil
}

// Get returns the column at index i and whether it has been stored.
func (t *ColumnTable) Get(i int) (Column, bool) {
	if i < 0 || i >= len(t.slots) {
		return Column{}, false
	}
	s := t.slots[i]
	return s.col, s.used
}

// Validate checks that every index has been stored.
func (t *ColumnTable) Validate() error {
	for i, s := range t.slots {
		if !s.used {
			return formatErrorf("column.index", -1, "index %d is not populated", i)
		}
	}
	return nil
}

func (t *ColumnTable) Columns() []Column {
	cols := make([]Column, len(t.slots))
	for i, s := range t.slots {
		cols[i] = s.col
	}
	return cols
}

func (t *ColumnTable) Names() []string {
	names := make([]string, len(t.slots))
	for i, s := range t.slots {
		names[i] = s.col.Name
	}
	return names
}

// ReadColumns decodes the column descriptor block described by h.
func ReadColumns(buf []byte, h Header) (*ColumnTable, error) {
	t := NewColumnTable(int(h.ColumnCount))
	c := newCursor(buf, h.ColumnsOffset())
	for i := 0; i < int(h.ColumnCount); i++ {
		var (
			col Column
			err error
		)
		if col, c, err = readColumn(c, i, h.NumericCount); err != nil {
			return nil, err
		}
		if err = t.Put(col); err != nil {
			return nil, err
		}
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

func readColumn(c cursor, i int, numericCount uint16) (Column, cursor, error) {
	field := fmt.Sprintf("column[%d]", i)

	name, c, err := c.Bytes(field+".name", columnNameSize)
	if err != nil {
		return Column{}, c, err
	}
	if c, err = c.Skip(field+".reserved", columnReservedSize); err != nil {
		return Column{}, c, err
	}
	kind, c, err := c.Uint16(field + ".kind")
	if err != nil {
		return Column{}, c, err
	}
	if c, err = c.Skip(field+".padding", columnPaddingSize); err != nil {
		return Column{}, c, err
	}
	slot, c, err := c.Uint16(field + ".slot")
	if err != nil {
		return Column{}, c, err
	}

	col := Column{
		Name: Deobfuscate(name),
		Kind: KindNumeric,
		Slot: slot,
	}
	if kind == uint16(KindNumeric) {
		col.Index = int(slot)
	} else {
		col.Kind = KindString
		col.Index = int(slot) + int(numericCount)
	}
	return col, c, nil
}
