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

import "strings"

// StringBuilder accumulates text fragments to be encoded in one piece. It
// holds no encoding logic; once assembled, the text is handed to a Sink with
// PackInto. The zero value is empty and ready for use.
type StringBuilder struct {
	b strings.Builder
}

// Append adds a text fragment to the accumulated string.
func (s *StringBuilder) Append(text string) {
	s.b.WriteString(text)
}

// AppendRune adds a single rune to the accumulated string.
func (s *StringBuilder) AppendRune(r rune) {
	s.b.WriteRune(r)
}

// Len returns the number of accumulated bytes.
func (s *StringBuilder) Len() int { return s.b.Len() }

// String returns the accumulated text.
func (s *StringBuilder) String() string { return s.b.String() }

// PackInto encodes the accumulated text to sink as a length-prefixed string.
func (s *StringBuilder) PackInto(sink Sink) {
	sink.PutString(s.b.String())
}
