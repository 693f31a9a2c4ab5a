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
	"strings"
)

const obfuscationKey = 0x01

// Deobfuscate recovers the text stored in a name or string field.
//
// NUL bytes are padding and are dropped wherever they appear, every other
// byte is XORed with 0x01. Byte sequences that are not valid UTF-8 are
// discarded instead of failing the decode.
func Deobfuscate(raw []byte) string {
	out := make([]byte, 0, len(raw))
	for _, b := range raw {
		if b == 0 {
			continue
		}
		out = append(out, b^obfuscationKey)
	}
	return strings.TrimRight(strings.ToValidUTF8(string(out), ""), "\x00")
}

// plainText decodes a field that is stored without obfuscation.
func plainText(raw []byte) string {
	return strings.TrimRight(strings.ToValidUTF8(string(raw), ""), "\x00")
}
