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
	"io"
	"math"
	"unicode/utf8"

	"github.com/pkg/errors"

	"github.com/sergeych/bipack-go/smartint"
)

// StreamSink is a Sink writing through to an io.Writer. The codec itself
// cannot fail, but the underlying writer can: the first write error latches
// and turns every later operation into a no-op, so a whole message can be
// encoded without per-operation checks and the error collected once at the
// end from Error.
type StreamSink struct {
	writer io.Writer
	tmp    [smartint.MaxLen]byte
	err    error
}

var _ Sink = (*StreamSink)(nil)

// NewStreamSink returns a StreamSink encoding to w.
func NewStreamSink(w io.Writer) *StreamSink {
	return &StreamSink{writer: w}
}

// Error returns the error which stopped writing to the stream, or nil if
// writing has not stopped.
func (w *StreamSink) Error() error { return w.err }

// SetError sets the error state and stops writing to the stream.
func (w *StreamSink) SetError(err error) { w.err = err }

func (w *StreamSink) write(b []byte) {
	if w.err != nil {
		return
	}
	n, err := w.writer.Write(b)
	if err != nil {
		w.err = errors.Wrap(err, "bipack: sink write")
	} else if n != len(b) {
		w.err = io.ErrShortWrite
	}
}

func (w *StreamSink) PutUint8(v uint8) {
	w.tmp[0] = v
	w.write(w.tmp[:1])
}

func (w *StreamSink) PutUint16(v uint16) {
	binary.LittleEndian.PutUint16(w.tmp[:], v)
	w.write(w.tmp[:2])
}

func (w *StreamSink) PutUint32(v uint32) {
	binary.LittleEndian.PutUint32(w.tmp[:], v)
	w.write(w.tmp[:4])
}

func (w *StreamSink) PutUint64(v uint64) {
	binary.LittleEndian.PutUint64(w.tmp[:], v)
	w.write(w.tmp[:8])
}

func (w *StreamSink) PutInt8(v int8) { w.PutUint8(uint8(v)) }

func (w *StreamSink) PutInt16(v int16) { w.PutUint16(uint16(v)) }

func (w *StreamSink) PutInt32(v int32) { w.PutUint32(uint32(v)) }

func (w *StreamSink) PutInt64(v int64) { w.PutUint64(uint64(v)) }

func (w *StreamSink) PutUnsigned(v uint64) {
	w.write(smartint.Append(w.tmp[:0], v))
}

func (w *StreamSink) PutSigned(v int64) {
	w.PutUnsigned(smartint.Fold(v))
}

func (w *StreamSink) PutFixedBytes(data []byte) {
	w.write(data)
}

func (w *StreamSink) PutVarBytes(data []byte) {
	w.PutUnsigned(uint64(len(data)))
	w.PutFixedBytes(data)
}

func (w *StreamSink) PutString(s string) {
	w.PutUnsigned(uint64(len(s)))
	if w.err != nil {
		return
	}
	if _, err := io.WriteString(w.writer, s); err != nil {
		w.err = errors.Wrap(err, "bipack: sink write")
	}
}

// StreamSource is a Source decoding from an io.Reader, for callers that want
// to decode straight off a file or connection without buffering the whole
// message first. Unlike SliceSource it cannot promise an untouched cursor on
// failure: bytes already taken from the reader stay consumed.
type StreamSource struct {
	reader io.Reader
	tmp    [smartint.MaxLen]byte
}

var _ Source = (*StreamSource)(nil)

// NewStreamSource returns a StreamSource decoding from r.
func NewStreamSource(r io.Reader) *StreamSource {
	return &StreamSource{reader: r}
}

func (r *StreamSource) read(n int) ([]byte, error) {
	b := r.tmp[:n]
	if _, err := io.ReadFull(r.reader, b); err != nil {
		return nil, truncated(err)
	}
	return b, nil
}

// truncated maps an end-of-stream condition to ErrTruncated, keeping other
// I/O failures as they are.
func truncated(err error) error {
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return ErrTruncated
	}
	return errors.Wrap(err, "bipack: source read")
}

func (r *StreamSource) GetUint8() (uint8, error) {
	b, err := r.read(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (r *StreamSource) GetUint16() (uint16, error) {
	b, err := r.read(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

func (r *StreamSource) GetUint32() (uint32, error) {
	b, err := r.read(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

func (r *StreamSource) GetUint64() (uint64, error) {
	b, err := r.read(8)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b), nil
}

func (r *StreamSource) GetInt8() (int8, error) {
	v, err := r.GetUint8()
	return int8(v), err
}

func (r *StreamSource) GetInt16() (int16, error) {
	v, err := r.GetUint16()
	return int16(v), err
}

func (r *StreamSource) GetInt32() (int32, error) {
	v, err := r.GetUint32()
	return int32(v), err
}

func (r *StreamSource) GetInt64() (int64, error) {
	v, err := r.GetUint64()
	return int64(v), err
}

func (r *StreamSource) GetUnsigned() (uint64, error) {
	// Pull continuation bytes one at a time, then let smartint judge the
	// assembled group sequence.
	for i := 0; ; i++ {
		if i == len(r.tmp) {
			return 0, ErrOverflow
		}
		if _, err := io.ReadFull(r.reader, r.tmp[i:i+1]); err != nil {
			return 0, truncated(err)
		}
		if r.tmp[i] < 0x80 {
			v, n := smartint.Decode(r.tmp[:i+1])
			if n < 0 {
				return 0, ErrOverflow
			}
			return v, nil
		}
	}
}

func (r *StreamSource) GetUnsigned16() (uint16, error) {
	v, err := r.getUnsignedMax(math.MaxUint16)
	return uint16(v), err
}

func (r *StreamSource) GetUnsigned32() (uint32, error) {
	v, err := r.getUnsignedMax(math.MaxUint32)
	return uint32(v), err
}

func (r *StreamSource) getUnsignedMax(max uint64) (uint64, error) {
	v, err := r.GetUnsigned()
	if err != nil {
		return 0, err
	}
	if v > max {
		return 0, ErrOverflow
	}
	return v, nil
}

func (r *StreamSource) GetSigned() (int64, error) {
	v, err := r.GetUnsigned()
	return smartint.Unfold(v), err
}

func (r *StreamSource) GetFixedBytes(n int) ([]byte, error) {
	if n < 0 {
		return nil, ErrTruncated
	}
	b := make([]byte, n)
	if _, err := io.ReadFull(r.reader, b); err != nil {
		return nil, truncated(err)
	}
	return b, nil
}

func (r *StreamSource) GetVarBytes() ([]byte, error) {
	size, err := r.GetUnsigned()
	if err != nil {
		return nil, err
	}
	if size > math.MaxInt32 {
		return nil, ErrOverflow
	}
	return r.GetFixedBytes(int(size))
}

func (r *StreamSource) GetString() (string, error) {
	b, err := r.GetVarBytes()
	if err != nil {
		return "", err
	}
	if !utf8.Valid(b) {
		return "", ErrInvalidEncoding
	}
	return string(b), nil
}
