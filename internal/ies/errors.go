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
	"errors"
	"fmt"
)

// ErrCorrupted is the cause of every FormatError.
var ErrCorrupted = errors.New("ies: corrupted file")

// FormatError reports a structural problem in an IES file. A file that
// produces a FormatError yields no output.
type FormatError struct {
	// Field names the element being decoded, e.g. "header.marker" or
	// "row[3].string[1]".
	Field string
	// Offset is the byte offset where decoding of Field started, or -1
	// when the error is not tied to a position.
	Offset int
	Reason string
}

// Make sure FormatError implements error.
var _ error = (*FormatError)(nil)

func (e *FormatError) Error() string {
	if e.Offset < 0 {
		return fmt.Sprintf("ies: invalid %s: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("ies: invalid %s at offset %d: %s", e.Field, e.Offset, e.Reason)
}

func (e *FormatError) Unwrap() error {
	return ErrCorrupted
}

func formatErrorf(field string, off int, format string, a ...interface{}) *FormatError {
	return &FormatError{
		Field:  field,
		Offset: off,
		Reason: fmt.Sprintf(format, a...),
	}
}

// IsFormatError reports whether err, or any error it wraps, is a FormatError.
func IsFormatError(err error) bool {
	var fe *FormatError
	return errors.As(err, &fe)
}
