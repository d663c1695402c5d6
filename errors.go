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

import "github.com/pkg/errors"

var (
	// ErrTruncated is returned when fewer bytes remain in the input than the
	// operation requires, including an unterminated smartint continuation
	// chain.
	ErrTruncated = errors.New("bipack: truncated input")

	// ErrOverflow is returned when a decoded smartint's magnitude exceeds the
	// representable range of the requested integer width.
	ErrOverflow = errors.New("bipack: integer overflow")

	// ErrInvalidEncoding is returned when bytes read as a string are not valid
	// UTF-8.
	ErrInvalidEncoding = errors.New("bipack: invalid string encoding")
)
