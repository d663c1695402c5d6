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
	"bytes"
	"testing"

	"github.com/pkg/errors"
	. "github.com/smartystreets/goconvey/convey"
)

// failWriter fails every write after the first n bytes were accepted.
type failWriter struct {
	n    int
	fail error
}

func (w *failWriter) Write(p []byte) (int, error) {
	if w.n <= 0 {
		return 0, w.fail
	}
	if len(p) > w.n {
		n := w.n
		w.n = 0
		return n, w.fail
	}
	w.n -= len(p)
	return len(p), nil
}

func TestStreamSink(t *testing.T) {
	t.Parallel()

	Convey("StreamSink", t, func() {
		Convey("produces the same bytes as Buffer", func() {
			b := NewBuffer(nil)
			var out bytes.Buffer
			w := NewStreamSink(&out)

			for _, sink := range []Sink{b, w} {
				sink.PutUint8(7)
				sink.PutUint16(64000)
				sink.PutUint32(66000)
				sink.PutUint64(931127140399)
				sink.PutInt8(-1)
				sink.PutInt16(-2)
				sink.PutInt32(-3)
				sink.PutInt64(-4)
				sink.PutUnsigned(300)
				sink.PutSigned(-300)
				sink.PutFixedBytes([]byte{0xde, 0xad})
				sink.PutVarBytes([]byte{0xbe, 0xef})
				sink.PutString("Hi")
			}

			So(w.Error(), ShouldBeNil)
			So(out.Bytes(), ShouldResemble, b.Bytes())
		})

		Convey("first write failure latches", func() {
			cause := errors.New("disk full")
			w := NewStreamSink(&failWriter{n: 3, fail: cause})

			w.PutUint16(1)
			So(w.Error(), ShouldBeNil)
			w.PutUint64(2)
			So(errors.Cause(w.Error()), ShouldEqual, cause)

			// Later puts keep the original error.
			w.PutString("ignored")
			So(errors.Cause(w.Error()), ShouldEqual, cause)
		})

		Convey("SetError stops writing", func() {
			var out bytes.Buffer
			w := NewStreamSink(&out)
			w.SetError(errors.New("stop"))
			w.PutUint8(1)
			So(out.Len(), ShouldEqual, 0)
		})
	})
}

func TestStreamSource(t *testing.T) {
	t.Parallel()

	Convey("StreamSource", t, func() {
		Convey("decodes what a sink encoded", func() {
			b := NewBuffer(nil)
			b.PutUint8(7)
			b.PutUint16(64000)
			b.PutUint32(66000)
			b.PutUint64(931127140399)
			b.PutUnsigned(300)
			b.PutSigned(-300)
			b.PutVarBytes([]byte{0xde, 0xad})
			b.PutString("Hi")

			r := NewStreamSource(bytes.NewReader(b.Bytes()))

			u8, err := r.GetUint8()
			So(err, ShouldBeNil)
			So(u8, ShouldEqual, 7)
			u16, err := r.GetUint16()
			So(err, ShouldBeNil)
			So(u16, ShouldEqual, 64000)
			u32, err := r.GetUint32()
			So(err, ShouldBeNil)
			So(u32, ShouldEqual, 66000)
			u64, err := r.GetUint64()
			So(err, ShouldBeNil)
			So(u64, ShouldEqual, 931127140399)
			u, err := r.GetUnsigned()
			So(err, ShouldBeNil)
			So(u, ShouldEqual, 300)
			i, err := r.GetSigned()
			So(err, ShouldBeNil)
			So(i, ShouldEqual, -300)
			vb, err := r.GetVarBytes()
			So(err, ShouldBeNil)
			So(vb, ShouldResemble, []byte{0xde, 0xad})
			s, err := r.GetString()
			So(err, ShouldBeNil)
			So(s, ShouldEqual, "Hi")
		})

		Convey("end of stream is truncation", func() {
			r := NewStreamSource(bytes.NewReader(nil))
			_, err := r.GetUint8()
			So(err, ShouldEqual, ErrTruncated)

			r = NewStreamSource(bytes.NewReader([]byte{0x01, 0x02}))
			_, err = r.GetUint32()
			So(err, ShouldEqual, ErrTruncated)

			r = NewStreamSource(bytes.NewReader([]byte{0x80}))
			_, err = r.GetUnsigned()
			So(err, ShouldEqual, ErrTruncated)
		})

		Convey("smartint overflow", func() {
			data := bytes.Repeat([]byte{0x80}, 10)
			data = append(data, 0x01)
			r := NewStreamSource(bytes.NewReader(data))
			_, err := r.GetUnsigned()
			So(err, ShouldEqual, ErrOverflow)
		})

		Convey("invalid UTF-8", func() {
			b := NewBuffer(nil)
			b.PutVarBytes([]byte{0xff, 0xfe})
			r := NewStreamSource(bytes.NewReader(b.Bytes()))
			_, err := r.GetString()
			So(err, ShouldEqual, ErrInvalidEncoding)
		})
	})
}
