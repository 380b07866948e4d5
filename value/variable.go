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

// Variable is the unit of lexical binding: a mutable cell holding one
// Value. Closures capture *Variable pointers, not snapshots, so that
// set! performed through any alias is observed by every holder. Its
// identity (the pointer itself) is what used to require manual reference
// counting in the original implementation; here it is simply a heap
// object kept alive for as long as anything reaches it, which the garbage
// collector already guarantees (see DESIGN.md's Open Question on this).
type Variable struct {
	val Value
}

// NewVariableCell creates a Variable cell holding v.
func NewVariableCell(v Value) *Variable {
	return &Variable{val: v}
}

// Get returns the Variable's current Value.
func (v *Variable) Get() Value { return v.val }

// Set replaces the Variable's Value in place. The cell's identity does not
// change, so every Symbol or Closure that captured this Variable observes
// the new value on its next read.
func (v *Variable) Set(val Value) { v.val = val }
