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
	"math"
)

// cursor is a read position over an immutable buffer. Reads never mutate
// the receiver; they return the value together with the advanced cursor.
type cursor struct {
	buf []byte
	off int
}

func newCursor(buf []byte, off int) cursor {
	return cursor{buf: buf, off: off}
}

func (c cursor) Offset() int {
	return c.off
}

func (c cursor) Remaining() int {
	return len(c.buf) - c.off
}

func (c cursor) Bytes(field string, n int) ([]byte, cursor, error) {
	if n < 0 || c.off < 0 || c.Remaining() < n {
		return nil, c, formatErrorf(field, c.off, "need %d bytes, %d left", n, c.Remaining())
	}
	end := c.off + n
	return c.buf[c.off:end:end], cursor{buf: c.buf, off: end}, nil
}

func (c cursor) Skip(field string, n int) (cursor, error) {
	_, next, err := c.Bytes(field, n)
	return next, err
}

func (c cursor) Uint16(field string) (uint16, cursor, error) {
	b, next, err := c.Bytes(field, 2)
	if err != nil {
		return 0, c, err
	}
	return binary.LittleEndian.Uint16(b), next, nil
}

func (c cursor) Uint32(field string) (uint32, cursor, error) {
	b, next, err := c.Bytes(field, 4)
	if err != nil {
		return 0, c, err
	}
	return binary.LittleEndian.Uint32(b), next, nil
}

func (c cursor) Float32(field string) (float32, cursor, error) {
	v, next, err := c.Uint32(field)
	if err != nil {
		return 0, c, err
	}
	return math.Float32frombits(v), next, nil
}
