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

package eval

import "fmt"

// Kind enumerates the evaluation error domain of spec section 7. Kind
// NotCallable is not named in the section 7 enumeration table but is
// required by section 4.3's evaluator algorithm ("if head is not a
// Closure, fail with not callable"); it is added here as a supplement to
// that enumeration.
type Kind int

// Evaluation error kinds.
const (
	WrongArity Kind = iota
	UnknownSymbol
	SymbolAlreadyExists
	TypeMismatch
	InvalidProperty
	IndexOutOfBounds
	InvalidKey
	NotInstantiatable
	InvalidTypeName
	InvalidArgumentName
	IncompatibleValues
	NotCallable
)

var kindNames = [...]string{
	WrongArity:          "wrong-arity",
	UnknownSymbol:       "unknown-symbol",
	SymbolAlreadyExists: "symbol-already-exists",
	TypeMismatch:        "type-mismatch",
	InvalidProperty:     "invalid-property",
	IndexOutOfBounds:    "index-out-of-bounds",
	InvalidKey:          "invalid-key",
	NotInstantiatable:   "not-instantiatable",
	InvalidTypeName:     "invalid-type-name",
	InvalidArgumentName: "invalid-argument-name",
	IncompatibleValues:  "incompatible-values",
	NotCallable:         "not-callable",
}

// String implements fmt.Stringer.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Error is an evaluation-domain error: a Kind plus a human-readable
// message. It is distinct from the parser's error domain (spec section
// 7): evaluation stops at the first Error rather than accumulating a
// batch the way parsing does.
type Error struct {
	Kind    Kind
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Errorf builds an *Error of the given kind with a formatted message.
func Errorf(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// KindOf returns the Kind of err if it is (or wraps) an *Error, and
// whether it was.
func KindOf(err error) (Kind, bool) {
	type causer interface{ Cause() error }
	for err != nil {
		if e, ok := err.(*Error); ok {
			return e.Kind, true
		}
		c, ok := err.(causer)
		if !ok {
			return 0, false
		}
		err = c.Cause()
	}
	return 0, false
}
