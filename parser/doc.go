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

// Package parser reads Gel source text into a tree of value.Value datums
// (spec section 4.1): a text/scanner-based tokenizer recognizes atoms
// (symbols, ints, doubles, strings) and the three bracket families,
// "(" "[" "{" desugar respectively into a call form, an (array ...) form
// and a (hash ...) form, and a leading "'" desugars into (quote datum).
// Parsing never stops at the first error: like the teacher's assembler,
// it accumulates up to a fixed number of positioned errors and returns
// them together as an ErrorList.
//
// Macro expansion runs during reading: each form, at any nesting depth, is
// checked as soon as it is complete, and any call whose head names a macro
// registered earlier in the same parse is substituted (spec section 4.1's forward-reference rule:
// a macro must be defined before its first use to be expanded).
package parser
