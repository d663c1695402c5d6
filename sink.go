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

package bipack

import (
	"encoding/binary"

	"github.com/sergeych/bipack-go/smartint"
)

// Sink provides methods for encoding values. Fixed-width integers are written
// little-endian; PutUnsigned and PutSigned use the smartint encoding.
type Sink interface {
	// PutUint8 encodes an unsigned, 8 bit integer value to the Sink.
	PutUint8(uint8)
	// PutUint16 encodes an unsigned, 16 bit integer value to the Sink.
	PutUint16(uint16)
	// PutUint32 encodes an unsigned, 32 bit integer value to the Sink.
	PutUint32(uint32)
	// PutUint64 encodes an unsigned, 64 bit integer value to the Sink.
	PutUint64(uint64)
	// PutInt8 encodes a signed, 8 bit integer value to the Sink.
	PutInt8(int8)
	// PutInt16 encodes a signed, 16 bit integer value to the Sink.
	PutInt16(int16)
	// PutInt32 encodes a signed, 32 bit integer value to the Sink.
	PutInt32(int32)
	// PutInt64 encodes a signed, 64 bit integer value to the Sink.
	PutInt64(int64)
	// PutUnsigned encodes a value in the variable-length smartint format.
	// It is also the encoding of the length prefix written by PutVarBytes
	// and PutString.
	PutUnsigned(uint64)
	// PutSigned zig-zag folds a value and encodes it as with PutUnsigned.
	PutSigned(int64)
	// PutFixedBytes appends the given bytes verbatim, with no length prefix.
	// The reader must know the length from context.
	PutFixedBytes([]byte)
	// PutVarBytes appends a smartint length prefix followed by the bytes.
	PutVarBytes([]byte)
	// PutString encodes the UTF-8 bytes of a string as with PutVarBytes.
	PutString(string)
}

// Buffer is an in-memory Sink appending to a growable byte buffer. The zero
// value is an empty buffer ready for use. Operations on a Buffer never fail.
type Buffer struct {
	data []byte
}

var _ Sink = (*Buffer)(nil)

// NewBuffer returns a Buffer that appends to data. Passing nil starts an
// empty buffer; passing a slice with spare capacity avoids regrowing it.
func NewBuffer(data []byte) *Buffer {
	return &Buffer{data: data}
}

// Bytes returns the encoded buffer. The Buffer retains the underlying array;
// the caller must not keep writing through the Buffer while using the
// returned slice.
func (b *Buffer) Bytes() []byte { return b.data }

// Len returns the number of bytes encoded so far.
func (b *Buffer) Len() int { return len(b.data) }

// Reset discards the buffer contents, keeping the allocated space for reuse.
func (b *Buffer) Reset() { b.data = b.data[:0] }

func (b *Buffer) PutUint8(v uint8) {
	b.data = append(b.data, v)
}

func (b *Buffer) PutUint16(v uint16) {
	b.data = binary.LittleEndian.AppendUint16(b.data, v)
}

func (b *Buffer) PutUint32(v uint32) {
	b.data = binary.LittleEndian.AppendUint32(b.data, v)
}

func (b *Buffer) PutUint64(v uint64) {
	b.data = binary.LittleEndian.AppendUint64(b.data, v)
}

func (b *Buffer) PutInt8(v int8) { b.PutUint8(uint8(v)) }

func (b *Buffer) PutInt16(v int16) { b.PutUint16(uint16(v)) }

func (b *Buffer) PutInt32(v int32) { b.PutUint32(uint32(v)) }

func (b *Buffer) PutInt64(v int64) { b.PutUint64(uint64(v)) }

func (b *Buffer) PutUnsigned(v uint64) {
	b.data = smartint.Append(b.data, v)
}

func (b *Buffer) PutSigned(v int64) {
	b.data = smartint.AppendSigned(b.data, v)
}

func (b *Buffer) PutFixedBytes(data []byte) {
	b.data = append(b.data, data...)
}

func (b *Buffer) PutVarBytes(data []byte) {
	b.PutUnsigned(uint64(len(data)))
	b.PutFixedBytes(data)
}

func (b *Buffer) PutString(s string) {
	b.PutUnsigned(uint64(len(s)))
	b.data = append(b.data, s...)
}
