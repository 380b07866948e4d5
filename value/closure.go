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

package value

// NativeFunc is the signature of a host-supplied closure: it receives the
// unevaluated argument Values and the caller's Context, and decides for
// itself which of them (if any) to evaluate. Every built-in operator
// (including special forms like if, while, and quote) is implemented as a
// NativeFunc; there is no separate special-form dispatch mechanism.
type NativeFunc func(args []Value, ctx *Context) (Value, error)

// UserClosure is a closure defined in Gel source: def, closure, or let.
type UserClosure struct {
	// Params holds the fixed, positional parameter names.
	Params []string
	// Variadic, if non-empty, is the name of the trailing "& rest"
	// parameter that collects any arguments beyond len(Params) into an
	// Array. Empty means the closure is not variadic and arity must
	// match Params exactly.
	Variadic string
	// Captured is the Context the closure was defined in. Calls create a
	// fresh child Context whose outer pointer is Captured, not the
	// caller's Context.
	Captured *Context
	// Body is evaluated in sequence on invocation; the last form's value
	// is returned.
	Body []Value
}

// Closure is a callable Value: either a native, host-supplied function, or
// a user-defined lambda. Exactly one of Native or User is set.
type Closure struct {
	// Name is used only for debugging and for the Display stringification
	// ("lambda" for an anonymous user closure, the binding name for
	// anything registered with def).
	Name   string
	Native NativeFunc
	User   *UserClosure
}

// NewNativeClosure wraps fn as a named native Closure.
func NewNativeClosure(name string, fn NativeFunc) *Closure {
	return &Closure{Name: name, Native: fn}
}

// NewUserClosure wraps uc as a named user Closure.
func NewUserClosure(name string, uc *UserClosure) *Closure {
	return &Closure{Name: name, User: uc}
}

// IsVariadic reports whether the closure accepts a trailing "& rest"
// parameter. Always false for native closures, which manage their own
// arity checking.
func (c *Closure) IsVariadic() bool {
	return c.User != nil && c.User.Variadic != ""
}
