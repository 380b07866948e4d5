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

package parser

import (
	"fmt"
	"strings"
	"text/scanner"
)

const maxErrors = 10

// Kind enumerates the parse-error domain of spec section 7.
type Kind int

// Parse error kinds.
const (
	UnknownToken Kind = iota
	UnexpectedEOF
	UnexpectedEOFInString
	UnexpectedEOFInComment
	NonDigitInNumber
	DigitBeyondRadix
	NonDecimalFloat
	MalformedFloat
	MismatchedDelimiter
	UnexpectedDelimiter
	UnexpectedEOFInArray
	MacroMalformed
	MacroArgumentMismatch
)

var kindNames = [...]string{
	UnknownToken:           "unknown-token",
	UnexpectedEOF:          "unexpected-EOF",
	UnexpectedEOFInString:  "unexpected-EOF-in-string",
	UnexpectedEOFInComment: "unexpected-EOF-in-comment",
	NonDigitInNumber:       "non-digit-in-number",
	DigitBeyondRadix:       "digit-beyond-radix",
	NonDecimalFloat:        "non-decimal-float",
	MalformedFloat:         "malformed-float",
	MismatchedDelimiter:    "mismatched-delimiter",
	UnexpectedDelimiter:    "unexpected-delimiter",
	UnexpectedEOFInArray:   "unexpected-EOF-in-array",
	MacroMalformed:         "macro-malformed",
	MacroArgumentMismatch:  "macro-argument-mismatch",
}

// String implements fmt.Stringer.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// ErrorItem is one accumulated parse error, positioned the way the
// teacher's ErrAsm entries are.
type ErrorItem struct {
	Pos  scanner.Position
	Kind Kind
	Msg  string
}

// ErrorList accumulates parse errors across an entire Parse call. It
// implements error so that a single non-nil ErrorList can be returned in
// place of a single error, the same convention as the teacher's ErrAsm.
type ErrorList []ErrorItem

// Error implements the error interface, rendering every accumulated item
// one per line.
func (e ErrorList) Error() string {
	lines := make([]string, 0, len(e))
	for _, item := range e {
		lines = append(lines, fmt.Sprintf("%s: %s: %s", item.Pos, item.Kind, item.Msg))
	}
	return strings.Join(lines, "\n")
}

func (e *ErrorList) add(pos scanner.Position, kind Kind, format string, args ...interface{}) {
	*e = append(*e, ErrorItem{Pos: pos, Kind: kind, Msg: fmt.Sprintf(format, args...)})
}

func (e *ErrorList) abort() bool { return len(*e) >= maxErrors }
