// Copyright (C) 2026 Sergey S. Chernov.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package dump renders binary data as a human-readable hex dump. It is a
// diagnostic aid only and has no bearing on the bipack wire format.
package dump

import (
	"fmt"
	"strings"
)

const bytesPerRow = 16

// Dump formats data as rows of 16 bytes: a 4-digit hex offset, the bytes in
// hex, and a printable-ASCII column. Every row, including the last, ends
// with a newline.
//
//	0000 00 01 02 03 04 05 06 07 08 09 0a 0b 0c 0d 0e 0f |................|
//	0010 20 21 22 23 24 25                               | !"#$%          |
func Dump(data []byte) string {
	var b strings.Builder
	for offset := 0; offset < len(data); offset += bytesPerRow {
		row := data[offset:]
		if len(row) > bytesPerRow {
			row = row[:bytesPerRow]
		}
		fmt.Fprintf(&b, "%04X ", offset)
		for _, v := range row {
			fmt.Fprintf(&b, "%02x ", v)
		}
		for i := len(row); i < bytesPerRow; i++ {
			b.WriteString("   ")
		}
		b.WriteByte('|')
		for _, v := range row {
			if v >= 32 && v < 127 {
				b.WriteByte(v)
			} else {
				b.WriteByte('.')
			}
		}
		for i := len(row); i < bytesPerRow; i++ {
			b.WriteByte(' ')
		}
		b.WriteString("|\n")
	}
	return b.String()
}
