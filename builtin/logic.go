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

func registerLogic(register registerFunc) {
	register("and", builtinAnd)
	register("or", builtinOr)
	register(">", compareFold(">", func(c int) bool { return c > 0 }))
	register(">=", compareFold(">=", func(c int) bool { return c >= 0 }))
	register("=", compareFold("=", func(c int) bool { return c == 0 }, true))
	register("<", compareFold("<", func(c int) bool { return c < 0 }))
	register("<=", compareFold("<=", func(c int) bool { return c <= 0 }))
	register("!=", compareFold("!=", func(c int) bool { return c != 0 }, true))
}

// builtinAnd short-circuits left to right, returning the first falsy Value
// or the last one if every operand is truthy (spec section 4.5).
func builtinAnd(args []value.Value, ctx *value.Context) (value.Value, error) {
	result := value.NewBool(true)
	for _, form := range args {
		v, err := eval.Eval(form, ctx)
		if err != nil {
			return value.VoidValue, err
		}
		if !v.Truthy() {
			return v, nil
		}
		result = v
	}
	return result, nil
}

// builtinOr mirrors builtinAnd: returns the first truthy Value, or the
// last one if every operand is falsy.
func builtinOr(args []value.Value, ctx *value.Context) (value.Value, error) {
	result := value.NewBool(false)
	for _, form := range args {
		v, err := eval.Eval(form, ctx)
		if err != nil {
			return value.VoidValue, err
		}
		if v.Truthy() {
			return v, nil
		}
		result = v
	}
	return result, nil
}

// compareFold builds a chained pairwise comparison operator: (op a b c)
// is true iff op holds between every adjacent pair. useEqual, if given and
// true, compares with Value.Equal instead of Value.Compare, so that "="
// and "!=" also work on kinds Compare rejects (e.g. two hashes).
func compareFold(name string, holds func(int) bool, useEqual ...bool) value.NativeFunc {
	equalityOnly := len(useEqual) > 0 && useEqual[0]
	return func(args []value.Value, ctx *value.Context) (value.Value, error) {
		if len(args) < 2 {
			return value.VoidValue, eval.Errorf(eval.WrongArity, "%s: expected at least 2 argument(s), got %d", name, len(args))
		}
		prev, err := eval.Eval(args[0], ctx)
		if err != nil {
			return value.VoidValue, err
		}
		for _, form := range args[1:] {
			cur, err := eval.Eval(form, ctx)
			if err != nil {
				return value.VoidValue, err
			}
			if equalityOnly {
				if !equalityHolds(holds, prev.Equal(cur)) {
					return value.NewBool(false), nil
				}
			} else {
				c, err := prev.Compare(cur)
				if err != nil {
					return value.VoidValue, eval.Errorf(eval.IncompatibleValues, "%s: %v", name, err)
				}
				if !holds(c) {
					return value.NewBool(false), nil
				}
			}
			prev = cur
		}
		return value.NewBool(true), nil
	}
}

// equalityHolds adapts an Equal result to the same holds(c int) bool shape
// Compare results use: c==0 for equal, c!=0 (1) for unequal.
func equalityHolds(holds func(int) bool, eq bool) bool {
	if eq {
		return holds(0)
	}
	return holds(1)
}
