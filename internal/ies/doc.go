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

// Package ies decodes IES table files.
//
// The layout of `File` is:
//
//	┌──────────┬─────────────────────────┬──────────────────┐
//	│  Header  │  Column Descriptors ... │  Rows ...        │
//	└──────────┴─────────────────────────┴──────────────────┘
//
// Both blocks are located backward from the end of the file:
// descriptors start at FileSize-ColumnsSize-RowsSize, rows start at
// FileSize-RowsSize.
//
// The layout of `Header` is:
//
//	+000 128B Table Name (plain text, NUL padded)
//	+080   4B Marker (always 1)
//	+084   4B Columns Size (in bytes)
//	+088   4B Rows Size (in bytes)
//	+08C   4B File Size (in bytes)
//	+090   2B Reserved
//	+092   2B Row Count
//	+094   2B Column Count
//	+096   2B Numeric Column Count
//	+098   2B String Column Count
//
// The layout of `Column Descriptor` is:
//
//	+00 64B Name (obfuscated)
//	+40 64B Reserved
//	+80  2B Kind (0: numeric, otherwise string)
//	+82  4B Reserved
//	+86  2B Slot
//
// The final index of a column is Slot for numeric columns and
// Slot+NumericColumnCount for string columns.
//
// The layout of `Row` is:
//
//	┌─────────────┬─────────────────┬──────────────────┐
//	│    ID(4)    │  Key Length(2)  │     Key ...      │
//	├─────────────┴─────────────────┴──────────────────┤
//	│          Numeric Values (4 each) ...             │
//	├─────────────────┬────────────────────────────────┤
//	│    Length(2)    │  String Value ...              │  x String Column Count
//	├─────────────────┴────────────────────────────────┤
//	│          Flags (1 each per string column)        │
//	└──────────────────────────────────────────────────┘
//
// Numeric values are IEEE-754 single precision numbers. All values are
// little-endian.
//
// Obfuscated text has every byte XORed with 0x01 and is padded with NUL
// bytes, see Deobfuscate.
package ies
