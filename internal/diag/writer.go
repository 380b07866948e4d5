// This file is part of gel - https://github.com/tigrux/gel-sub000
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

// Package diag holds small diagnostic plumbing used by the builtin print
// operator.
package diag

import (
	"io"

	"github.com/pkg/errors"
)

// Writer wraps an io.Writer and latches the first write error it sees:
// once Err is set, every subsequent Write is a no-op that returns the same
// error, so a caller writing many pieces (such as successive print calls)
// doesn't need to check every call.
// Adapted from the teacher's ErrWriter.
type Writer struct {
	w   io.Writer
	Err error
}

// NewWriter wraps w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Write implements io.Writer.
func (w *Writer) Write(p []byte) (int, error) {
	if w.Err != nil {
		return 0, w.Err
	}
	n, err := w.w.Write(p)
	if err != nil {
		w.Err = errors.Wrap(err, "write failed")
	}
	return n, w.Err
}
