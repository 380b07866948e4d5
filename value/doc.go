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

// Package value implements the dynamically-typed universe every Gel script
// evaluates over: a tagged-union Value type (void, bool, int, double,
// string, symbol, array, hash, closure, variable, and opaque host-object
// handles), the reference containers it can hold (Array, Hash, Variable),
// and the lexically-nested Context that binds names to Variables.
//
// Value is deliberately a small struct rather than an interface: every
// variant is known up front, so a closed tagged union with a Kind
// discriminant avoids both the allocation cost of boxing scalars in an
// interface and the need for type assertions at every call site. Array,
// Hash, Closure, and Variable are reference types (held behind pointers);
// copying a Value that wraps one of them copies the pointer, not the
// payload, which is exactly the aliasing behavior the embedded scripting
// language depends on for mutation-through-sharing and closure capture.
//
// Context and Closure live in this package alongside Value rather than in
// packages of their own because all three are mutually recursive: a
// Closure embeds the Context it closed over, a Context maps names to
// Variables, and a Value can hold any of the above. Splitting them across
// packages would require either an import cycle or a do-nothing interface
// layer purely to satisfy the compiler.
package value
