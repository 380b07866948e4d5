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

import "github.com/tigrux/gel-sub000/value"

// CloseOver implements the close-over rewriting of spec section 4.4. It is
// run once, at the moment a user closure is constructed by def, closure or
// let, over that closure's own body forms: every Symbol in body whose name
// is not one of params or variadic is resolved against captured, and if
// found, the Symbol Value is mutated in place to carry that Variable
// (value.BindSymbol), so that evalSymbol never has to walk captured's
// chain again at call time.
//
// The walk is static and untyped: it descends into every nested Array
// (and Hash) literal in body, including one that textually looks like a
// nested lambda's own parameter list or body. This mirrors the original
// implementation's lack of hygiene — a nested closure's parameters are
// not excluded from the outer rewrite, because the outer rewrite cannot
// tell a literal array from a parameter list without evaluating it. In
// practice this only matters when an inner binding shadows an outer one
// of the same name inside a still-unconstructed nested closure, which is
// the same edge case spec section 9 flags as accepted, unhygienic
// behavior.
func CloseOver(body []value.Value, params []string, variadic string, captured *value.Context) {
	skip := make(map[string]bool, len(params)+1)
	for _, p := range params {
		skip[p] = true
	}
	if variadic != "" {
		skip[variadic] = true
	}
	for _, form := range body {
		closeOverValue(form, skip, captured)
	}
}

func closeOverValue(v value.Value, skip map[string]bool, captured *value.Context) {
	switch v.Kind() {
	case value.Sym:
		name, _ := v.SymbolName()
		if skip[name] {
			return
		}
		if variable, ok := captured.Lookup(name); ok {
			v.BindSymbol(variable)
		}
	case value.Arr:
		arr, _ := v.AsArray()
		for _, item := range arr.Items() {
			closeOverValue(item, skip, captured)
		}
	case value.Hsh:
		hash, _ := v.AsHash()
		for _, k := range hash.Keys() {
			closeOverValue(k, skip, captured)
			val, _ := hash.Get(k)
			closeOverValue(val, skip, captured)
		}
	}
}
