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

// Table is a decoded IES file: a header row of column names followed by
// the data rows in file order. A Table is never modified after Assemble.
type Table struct {
	rows [][]string
}

// Assemble builds the table from the column names and the decoded rows.
func Assemble(cols *ColumnTable, rows []Row) *Table {
	t := &Table{
		rows: make([][]string, 0, len(rows)+1),
	}
	t.rows = append(t.rows, cols.Names())
	for _, r := range rows {
		t.rows = append(t.rows, r.Fields)
	}
	return t
}

// Rows returns the header row followed by the data rows.
func (t *Table) Rows() [][]string {
	return t.rows
}

func (t *Table) Header() []string {
	return t.rows[0]
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	return len(t.rows) - 1
}
