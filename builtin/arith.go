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
	"github.com/tigrux/gel-sub000/eval"
	"github.com/tigrux/gel-sub000/value"
)

func registerArithmetic(register registerFunc) {
	register("+", arithFold("+", value.Value.Add))
	register("-", arithFold("-", value.Value.Sub))
	register("*", arithFold("*", value.Value.Mul))
	register("/", arithFold("/", value.Value.Div))
	register("%", arithFold("%", value.Value.Mod))
}

// arithFold builds the n-ary left-fold native closure for one arithmetic
// operator (spec section 4.5: "n-ary left-fold with pairwise promotion").
// A single argument is returned unchanged; zero arguments is an arity
// error since there is no identity element spec.md defines for any of
// these operators.
func arithFold(name string, op func(value.Value, value.Value) (value.Value, error)) value.NativeFunc {
	return func(args []value.Value, ctx *value.Context) (value.Value, error) {
		if len(args) < 1 {
			return value.VoidValue, eval.Errorf(eval.WrongArity, "%s: expected at least 1 argument, got 0", name)
		}
		acc, err := eval.Eval(args[0], ctx)
		if err != nil {
			return value.VoidValue, err
		}
		for _, form := range args[1:] {
			next, err := eval.Eval(form, ctx)
			if err != nil {
				return value.VoidValue, err
			}
			acc, err = op(acc, next)
			if err != nil {
				return value.VoidValue, eval.Errorf(eval.IncompatibleValues, "%s: %v", name, err)
			}
		}
		return acc, nil
	}
}
