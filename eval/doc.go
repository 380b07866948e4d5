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

// Package eval implements the evaluator described in spec section 4.3: a
// single recursive Eval over value.Value, with Array Values doubling as
// call forms. There is no bytecode and no separate special-form table;
// every operator, including if, while and quote, is a value.Closure
// registered in the root value.Context by the builtin package, and
// receives its argument forms unevaluated so that it can decide for
// itself which of them to evaluate and in what order.
package eval
