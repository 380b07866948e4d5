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

// Package builtin populates a root value.Context with the predefined
// operators of spec section 4.5: binding, control, imperative, arithmetic,
// logic, array, hash, functional and I/O. Every operator is an ordinary
// native value.Closure that receives its argument forms unevaluated, the
// same uniform invocation convention user closures get from eval.Apply;
// special forms like if and while are not distinguished from regular
// functions at the call site, only by what they choose to evaluate.
package builtin
