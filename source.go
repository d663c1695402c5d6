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
	"math"
	"unicode/utf8"

	"github.com/sergeych/bipack-go/smartint"
)

// Source provides methods for decoding values, mirroring every Sink
// operation. Each operation either returns the decoded value or one of
// ErrTruncated, ErrOverflow and ErrInvalidEncoding; there is no best-effort
// decoding.
type Source interface {
	// GetUint8 decodes and returns an unsigned, 8 bit integer value.
	GetUint8() (uint8, error)
	// GetUint16 decodes and returns an unsigned, 16 bit integer value.
	GetUint16() (uint16, error)
	// GetUint32 decodes and returns an unsigned, 32 bit integer value.
	GetUint32() (uint32, error)
	// GetUint64 decodes and returns an unsigned, 64 bit integer value.
	GetUint64() (uint64, error)
	// GetInt8 decodes and returns a signed, 8 bit integer value.
	GetInt8() (int8, error)
	// GetInt16 decodes and returns a signed, 16 bit integer value.
	GetInt16() (int16, error)
	// GetInt32 decodes and returns a signed, 32 bit integer value.
	GetInt32() (int32, error)
	// GetInt64 decodes and returns a signed, 64 bit integer value.
	GetInt64() (int64, error)
	// GetUnsigned decodes a smartint-encoded value written by PutUnsigned.
	GetUnsigned() (uint64, error)
	// GetUnsigned16 decodes a smartint-encoded value and fails with
	// ErrOverflow if it does not fit in 16 bits.
	GetUnsigned16() (uint16, error)
	// GetUnsigned32 decodes a smartint-encoded value and fails with
	// ErrOverflow if it does not fit in 32 bits.
	GetUnsigned32() (uint32, error)
	// GetSigned decodes a smartint-encoded value and inverts the zig-zag
	// fold applied by PutSigned.
	GetSigned() (int64, error)
	// GetFixedBytes decodes exactly n bytes written by PutFixedBytes.
	GetFixedBytes(n int) ([]byte, error)
	// GetVarBytes decodes a smartint length prefix and then that many bytes,
	// as written by PutVarBytes.
	GetVarBytes() ([]byte, error)
	// GetString decodes var bytes and validates them as UTF-8 text.
	GetString() (string, error)
}

// SliceSource is a Source decoding from a byte slice it does not own. It
// keeps a cursor of how many bytes have been consumed; a failed operation
// leaves the cursor where it was, so the caller may retry the read as a
// different type. The one exception is GetString: when the bytes are not
// valid UTF-8 the cursor stays past them, since the length-prefixed data has
// already been consumed.
//
// The slice is never mutated, so any number of SliceSources may read the
// same slice, each with its own cursor.
type SliceSource struct {
	data []byte
	pos  int
}

var _ Source = (*SliceSource)(nil)

// NewSliceSource returns a SliceSource reading data from the beginning.
func NewSliceSource(data []byte) *SliceSource {
	return &SliceSource{data: data}
}

// Pos returns the number of bytes consumed so far.
func (s *SliceSource) Pos() int { return s.pos }

// Remaining returns the number of bytes left to consume.
func (s *SliceSource) Remaining() int { return len(s.data) - s.pos }

// AtEnd reports whether the source is fully consumed. Callers that expect no
// trailing bytes should check it after the last read.
func (s *SliceSource) AtEnd() bool { return s.pos == len(s.data) }

// next consumes n bytes and returns them as a sub-slice of the input, or
// ErrTruncated without moving the cursor.
func (s *SliceSource) next(n int) ([]byte, error) {
	if n < 0 || n > len(s.data)-s.pos {
		return nil, ErrTruncated
	}
	b := s.data[s.pos : s.pos+n]
	s.pos += n
	return b, nil
}

func (s *SliceSource) GetUint8() (uint8, error) {
	b, err := s.next(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (s *SliceSource) GetUint16() (uint16, error) {
	b, err := s.next(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

func (s *SliceSource) GetUint32() (uint32, error) {
	b, err := s.next(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

func (s *SliceSource) GetUint64() (uint64, error) {
	b, err := s.next(8)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b), nil
}

func (s *SliceSource) GetInt8() (int8, error) {
	v, err := s.GetUint8()
	return int8(v), err
}

func (s *SliceSource) GetInt16() (int16, error) {
	v, err := s.GetUint16()
	return int16(v), err
}

func (s *SliceSource) GetInt32() (int32, error) {
	v, err := s.GetUint32()
	return int32(v), err
}

func (s *SliceSource) GetInt64() (int64, error) {
	v, err := s.GetUint64()
	return int64(v), err
}

func (s *SliceSource) GetUnsigned() (uint64, error) {
	v, n := smartint.Decode(s.data[s.pos:])
	switch {
	case n == 0:
		return 0, ErrTruncated
	case n < 0:
		return 0, ErrOverflow
	}
	s.pos += n
	return v, nil
}

func (s *SliceSource) GetUnsigned16() (uint16, error) {
	v, err := s.getUnsignedMax(math.MaxUint16)
	return uint16(v), err
}

func (s *SliceSource) GetUnsigned32() (uint32, error) {
	v, err := s.getUnsignedMax(math.MaxUint32)
	return uint32(v), err
}

func (s *SliceSource) getUnsignedMax(max uint64) (uint64, error) {
	mark := s.pos
	v, err := s.GetUnsigned()
	if err != nil {
		return 0, err
	}
	if v > max {
		s.pos = mark
		return 0, ErrOverflow
	}
	return v, nil
}

func (s *SliceSource) GetSigned() (int64, error) {
	v, err := s.GetUnsigned()
	return smartint.Unfold(v), err
}

// GetFixedBytes returns a copy of the bytes, so the result stays valid after
// the input slice is reused.
func (s *SliceSource) GetFixedBytes(n int) ([]byte, error) {
	b, err := s.next(n)
	if err != nil {
		return nil, err
	}
	out := make([]byte, n)
	copy(out, b)
	return out, nil
}

func (s *SliceSource) GetVarBytes() ([]byte, error) {
	mark := s.pos
	size, err := s.GetUnsigned()
	if err != nil {
		return nil, err
	}
	if size > uint64(s.Remaining()) {
		s.pos = mark
		return nil, ErrTruncated
	}
	return s.GetFixedBytes(int(size))
}

func (s *SliceSource) GetString() (string, error) {
	b, err := s.GetVarBytes()
	if err != nil {
		return "", err
	}
	if !utf8.Valid(b) {
		// The bytes are consumed regardless: the length prefix was already
		// read, so the cursor stays past them.
		return "", ErrInvalidEncoding
	}
	return string(b), nil
}
