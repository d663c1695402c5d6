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

// Package smartint implements the bipack variable-length integer encoding.
//
// A value is split into 7-bit groups, least-significant group first. Each
// encoded byte carries one group in its low 7 bits; bit 7 is a continuation
// flag, set on every byte except the last. The encoding is always minimal:
// zero is the single byte 0x00, values up to 127 take one byte, up to 16383
// two bytes, and the full 64-bit range at most MaxLen bytes.
//
// Signed values are mapped to unsigned ones with the zig-zag fold before
// encoding, so small magnitudes of either sign stay short on the wire.
package smartint

// MaxLen is the maximum encoded length of a 64-bit value: ceil(64 / 7) groups.
const MaxLen = 10

// Append appends the encoding of v to dst and returns the extended slice.
func Append(dst []byte, v uint64) []byte {
	for v >= 0x80 {
		dst = append(dst, byte(v)|0x80)
		v >>= 7
	}
	return append(dst, byte(v))
}

// AppendSigned appends the encoding of the zig-zag fold of v to dst and
// returns the extended slice.
func AppendSigned(dst []byte, v int64) []byte {
	return Append(dst, Fold(v))
}

// Decode decodes a value from the start of buf and returns it together with
// the number of bytes consumed. The count follows the encoding/binary varint
// convention:
//
//	n > 0:  value decoded from the first n bytes
//	n == 0: buf is exhausted before the continuation chain ends (truncated)
//	n < 0:  the value overflows 64 bits; -n bytes were examined
func Decode(buf []byte) (uint64, int) {
	var v uint64
	for i, b := range buf {
		if i == MaxLen {
			return 0, -(i + 1)
		}
		if b < 0x80 {
			if i == MaxLen-1 && b > 1 {
				// The tenth group may only hold bit 63.
				return 0, -(i + 1)
			}
			return v | uint64(b)<<(7*i), i + 1
		}
		v |= uint64(b&0x7f) << (7 * i)
	}
	return 0, 0
}

// DecodeSigned decodes an unsigned value from the start of buf and unfolds it.
// The byte count has the same meaning as for Decode.
func DecodeSigned(buf []byte) (int64, int) {
	u, n := Decode(buf)
	return Unfold(u), n
}

// Fold maps a signed value to the unsigned value that encodes it: 2v for
// non-negative v, -2v-1 for negative v.
func Fold(v int64) uint64 {
	return uint64(v<<1) ^ uint64(v>>63)
}

// Unfold inverts Fold.
func Unfold(u uint64) int64 {
	return int64(u>>1) ^ -int64(u&1)
}

// EncodedLen returns the number of bytes Append produces for v.
func EncodedLen(v uint64) int {
	n := 1
	for v >= 0x80 {
		v >>= 7
		n++
	}
	return n
}
