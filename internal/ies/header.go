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
	"encoding/binary"
)

const (
	tableNameSize = 128
	HeaderSize    = tableNameSize + 4 + 4 + 4 + 4 + 2 + 2 + 2 + 2 + 2

	tableNameOffset    = 0
	markerOffset       = 128
	columnsSizeOffset  = 132
	rowsSizeOffset     = 136
	fileSizeOffset     = 140
	rowCountOffset     = 146
	columnCountOffset  = 148
	numericCountOffset = 150
	stringCountOffset  = 152

	// FormatMarker is the only marker value seen in IES files.
	FormatMarker = 1
)

// Header is the fixed preamble of an IES file.
type Header struct {
	TableName    string `json:"TableName"`
	Marker       uint32 `json:"Marker"`
	ColumnsSize  uint32 `json:"ColumnsSize"`
	RowsSize     uint32 `json:"RowsSize"`
	FileSize     uint32 `json:"FileSize"`
	RowCount     uint16 `json:"RowCount"`
	ColumnCount  uint16 `json:"ColumnCount"`
	NumericCount uint16 `json:"NumericCount"`
	StringCount  uint16 `json:"StringCount"`
}

// ColumnsOffset is the start of the column descriptor block.
func (h Header) ColumnsOffset() int {
	return int(int64(h.FileSize) - int64(h.ColumnsSize) - int64(h.RowsSize))
}

// RowsOffset is the start of the row data block.
func (h Header) RowsOffset() int {
	return int(int64(h.FileSize) - int64(h.RowsSize))
}

// ReadHeader decodes and validates the preamble of buf, which must hold
// the whole file.
func ReadHeader(buf []byte) (Header, error) {
	if len(buf) < HeaderSize {
		return Header{}, formatErrorf("header", 0, "file is %d bytes, header needs %d", len(buf), HeaderSize)
	}

	h := Header{
		TableName:    plainText(buf[tableNameOffset : tableNameOffset+tableNameSize]),
		Marker:       binary.LittleEndian.Uint32(buf[markerOffset:]),
		ColumnsSize:  binary.LittleEndian.Uint32(buf[columnsSizeOffset:]),
		RowsSize:     binary.LittleEndian.Uint32(buf[rowsSizeOffset:]),
		FileSize:     binary.LittleEndian.Uint32(buf[fileSizeOffset:]),
		RowCount:     binary.LittleEndian.Uint16(buf[rowCountOffset:]),
		ColumnCount:  binary.LittleEndian.Uint16(buf[columnCountOffset:]),
		NumericCount: binary.LittleEndian.Uint16(buf[numericCountOffset:]),
		StringCount:  binary.LittleEndian.Uint16(buf[stringCountOffset:]),
	}

	if int64(h.FileSize) != int64(len(buf)) {
		return Header{}, formatErrorf("header.file_size", fileSizeOffset,
			"declared %d bytes, file has %d", h.FileSize, len(buf))
	}
	if h.Marker != FormatMarker {
		return Header{}, formatErrorf("header.marker", markerOffset, "expect %d, got %d", FormatMarker, h.Marker)
	}
	if int(h.ColumnCount) != int(h.NumericCount)+int(h.StringCount) {
		return Header{}, formatErrorf("header.column_count", columnCountOffset,
			"%d columns, but %d numeric + %d string", h.ColumnCount, h.NumericCount, h.StringCount)
	}
	if off := h.RowsOffset(); off < HeaderSize || off > len(buf) {
		return Header{}, formatErrorf("header.rows_size", rowsSizeOffset,
			"row block starts at %d, outside [%d, %d]", off, HeaderSize, len(buf))
	}
	if off := h.ColumnsOffset(); off < HeaderSize || off > h.RowsOffset() {
		return Header{}, formatErrorf("header.columns_size", columnsSizeOffset,
			"column block starts at %d, outside [%d, %d]", off, HeaderSize, h.RowsOffset())
	}

	return h, nil
}
