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

// Package bipack implements the bipack compact binary format: a writer (Sink)
// that serializes primitive values into a byte buffer and a reader (Source)
// that extracts them back, advancing a cursor as it consumes bytes.
//
// The wire format has no schema or magic header; producer and consumer must
// agree on the sequence of values out-of-band. The primitives are:
//
//	u8/i8 ... u64/i64   fixed width, little-endian
//	unsigned smartint   7-bit groups, LSB first, bit 7 = continuation
//	signed smartint     zig-zag fold, then unsigned smartint
//	fixed bytes         raw bytes, length known to both sides
//	var bytes           unsigned smartint length, then the bytes
//	string              var bytes holding UTF-8 text
//
// Encoding never fails; decoding reports ErrTruncated, ErrOverflow or
// ErrInvalidEncoding. See the smartint package for the integer encoding
// itself.
package bipack
