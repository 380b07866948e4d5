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

// Package gel is the embedding surface of spec section 6: constructing an
// Environment, binding host values, native functions, and objects into it,
// parsing text into a form tree, evaluating forms, and converting between
// Value and host-native Go types. It is thin glue over value, parser,
// eval, and builtin — the same role lang/retro plays for the teacher's vm
// package — plus presentation sugar (fuzzy "did you mean" suggestions,
// YAML configuration) that never leaks back into the core packages.
package gel
