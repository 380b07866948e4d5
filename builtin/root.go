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

package builtin

import (
	"io"
	"os"

	"github.com/tigrux/gel-sub000/value"
)

// registerFunc binds one native closure by name into the root Context
// under construction; each registerXxx function in this package takes one
// of these instead of the Context directly.
type registerFunc func(name string, fn value.NativeFunc)

// Root returns a fresh root value.Context populated with every predefined
// operator in spec section 4.5, writing print's output to stdout.
func Root() *value.Context {
	return RootWithOutput(os.Stdout)
}

// RootWithOutput is Root, but print writes to w instead of os.Stdout; the
// gel package and its tests use this to capture output.
func RootWithOutput(w io.Writer) *value.Context {
	ctx := value.NewRootContext()
	var register registerFunc = func(name string, fn value.NativeFunc) {
		if _, err := ctx.Define(name, value.NewClosure(value.NewNativeClosure(name, fn))); err != nil {
			panic("builtin: duplicate root registration for " + name)
		}
	}

	registerBinding(register)
	registerControl(register)
	registerImperative(register)
	registerArithmetic(register)
	registerLogic(register)
	registerArray(register)
	registerHash(register)
	registerFunctional(register)
	registerIO(register, w)

	return ctx
}
