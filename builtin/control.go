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

func registerControl(register registerFunc) {
	register("begin", builtinBegin)
	register("if", builtinIf)
	register("cond", builtinCond)
	register("case", builtinCase)
	register("while", builtinWhile)
	register("for", builtinFor)
	register("break", builtinBreak)
	register("quote", builtinQuote)
}

func builtinBegin(args []value.Value, ctx *value.Context) (value.Value, error) {
	return evalSequence(args, ctx.NewChildContext())
}

func evalSequence(forms []value.Value, ctx *value.Context) (value.Value, error) {
	result := value.VoidValue
	for _, form := range forms {
		var err error
		result, err = eval.Eval(form, ctx)
		if err != nil {
			return value.VoidValue, err
		}
	}
	return result, nil
}

// builtinIf implements (if cond then [else]).
func builtinIf(args []value.Value, ctx *value.Context) (value.Value, error) {
	if len(args) < 2 || len(args) > 3 {
		return value.VoidValue, eval.Errorf(eval.WrongArity, "if: expected 2 or 3 argument(s), got %d", len(args))
	}
	cond, err := eval.Eval(args[0], ctx)
	if err != nil {
		return value.VoidValue, err
	}
	if cond.Truthy() {
		return eval.Eval(args[1], ctx)
	}
	if len(args) == 3 {
		return eval.Eval(args[2], ctx)
	}
	return value.VoidValue, nil
}

// builtinCond implements (cond (test body...) ... (else body...)).
func builtinCond(args []value.Value, ctx *value.Context) (value.Value, error) {
	for _, clauseVal := range args {
		clause, ok := clauseVal.AsArray()
		if !ok || clause.Len() == 0 {
			return value.VoidValue, eval.Errorf(eval.TypeMismatch, "cond: each clause must be a non-empty array")
		}
		items := clause.Items()
		if name, ok := items[0].SymbolName(); ok && name == "else" {
			return evalSequence(items[1:], ctx.NewChildContext())
		}
		test, err := eval.Eval(items[0], ctx)
		if err != nil {
			return value.VoidValue, err
		}
		if test.Truthy() {
			return evalSequence(items[1:], ctx.NewChildContext())
		}
	}
	return value.VoidValue, nil
}

// builtinCase implements (case key-expr (match body...) ... (else body...)),
// where match is either a single literal datum or an array of alternative
// literal datums, compared against the evaluated key with Value.Equal.
func builtinCase(args []value.Value, ctx *value.Context) (value.Value, error) {
	if len(args) < 1 {
		return value.VoidValue, eval.Errorf(eval.WrongArity, "case: expected a key expression")
	}
	key, err := eval.Eval(args[0], ctx)
	if err != nil {
		return value.VoidValue, err
	}
	for _, clauseVal := range args[1:] {
		clause, ok := clauseVal.AsArray()
		if !ok || clause.Len() == 0 {
			return value.VoidValue, eval.Errorf(eval.TypeMismatch, "case: each clause must be a non-empty array")
		}
		items := clause.Items()
		if name, ok := items[0].SymbolName(); ok && name == "else" {
			return evalSequence(items[1:], ctx.NewChildContext())
		}
		if caseMatches(items[0], key) {
			return evalSequence(items[1:], ctx.NewChildContext())
		}
	}
	return value.VoidValue, nil
}

func caseMatches(matchForm value.Value, key value.Value) bool {
	if alts, ok := matchForm.AsArray(); ok {
		for _, alt := range alts.Items() {
			if alt.Equal(key) {
				return true
			}
		}
		return false
	}
	return matchForm.Equal(key)
}

// builtinWhile implements (while cond body...), consulting the loop
// Context's Running flag so that break (spec section 4.5) can cancel it.
func builtinWhile(args []value.Value, ctx *value.Context) (value.Value, error) {
	if len(args) < 1 {
		return value.VoidValue, eval.Errorf(eval.WrongArity, "while: expected a condition")
	}
	cond, body := args[0], args[1:]
	loopCtx := ctx.NewChildContext()
	loopCtx.Running = true
	for loopCtx.Running {
		test, err := eval.Eval(cond, loopCtx)
		if err != nil {
			return value.VoidValue, err
		}
		if !test.Truthy() {
			break
		}
		if _, err := evalSequence(body, loopCtx); err != nil {
			return value.VoidValue, err
		}
	}
	return value.VoidValue, nil
}

// builtinFor implements (for sym array-expr body...), iterating sym over
// each element of the evaluated array.
func builtinFor(args []value.Value, ctx *value.Context) (value.Value, error) {
	if len(args) < 2 {
		return value.VoidValue, eval.Errorf(eval.WrongArity, "for: expected a symbol and an array")
	}
	name, ok := args[0].SymbolName()
	if !ok {
		return value.VoidValue, eval.Errorf(eval.TypeMismatch, "for: first argument must be a symbol")
	}
	arrVal, err := eval.Eval(args[1], ctx)
	if err != nil {
		return value.VoidValue, err
	}
	arr, ok := arrVal.AsArray()
	if !ok {
		return value.VoidValue, eval.Errorf(eval.TypeMismatch, "for: expected array, got %s", arrVal.Kind())
	}
	body := args[2:]
	loopCtx := ctx.NewChildContext()
	loopCtx.Running = true
	cell := value.NewVariableCell(value.VoidValue)
	loopCtx.DefineVariable(name, cell)
	for _, item := range arr.Items() {
		if !loopCtx.Running {
			break
		}
		cell.Set(item)
		if _, err := evalSequence(body, loopCtx); err != nil {
			return value.VoidValue, err
		}
	}
	return value.VoidValue, nil
}

// builtinBreak implements (break): it walks outward from the calling
// Context for the nearest one with Running set, and clears it.
func builtinBreak(args []value.Value, ctx *value.Context) (value.Value, error) {
	for c := ctx; c != nil; c = c.Outer() {
		if c.Running {
			c.Running = false
			break
		}
	}
	return value.VoidValue, nil
}

func builtinQuote(args []value.Value, ctx *value.Context) (value.Value, error) {
	if len(args) != 1 {
		return value.VoidValue, eval.Errorf(eval.WrongArity, "quote: expected 1 argument, got %d", len(args))
	}
	return args[0], nil
}
