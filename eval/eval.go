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

import (
	"github.com/pkg/errors"

	"github.com/tigrux/gel-sub000/value"
)

// Eval evaluates v in ctx per spec section 4.3:
//
//   - Void, Bool, Int, Double, String and Closure Values are self-evaluating.
//   - A Symbol resolves through ctx's chain, or through the Variable a
//     prior close-over pass already attached to it.
//   - A non-empty Array is a call form: its first element is evaluated to
//     produce the callee, which must be a Closure; the remaining elements
//     are passed to Apply unevaluated, since a closure (particularly a
//     native one implementing a special form like if or while) decides for
//     itself which of its arguments to evaluate.
//   - An empty Array evaluates to itself.
func Eval(v value.Value, ctx *value.Context) (value.Value, error) {
	switch v.Kind() {
	case value.Sym:
		return evalSymbol(v, ctx)
	case value.Arr:
		return evalArray(v, ctx)
	default:
		return v, nil
	}
}

func evalSymbol(v value.Value, ctx *value.Context) (value.Value, error) {
	if variable := v.SymbolVariable(); variable != nil {
		return variable.Get(), nil
	}
	name, _ := v.SymbolName()
	variable, ok := ctx.Lookup(name)
	if !ok {
		return value.VoidValue, Errorf(UnknownSymbol, "unknown symbol: %s", name)
	}
	return variable.Get(), nil
}

func evalArray(v value.Value, ctx *value.Context) (value.Value, error) {
	arr, _ := v.AsArray()
	items := arr.Items()
	if len(items) == 0 {
		return v, nil
	}
	head, err := Eval(items[0], ctx)
	if err != nil {
		return value.VoidValue, err
	}
	closure, ok := head.AsClosure()
	if !ok {
		return value.VoidValue, Errorf(NotCallable, "not callable: %s", head.Display())
	}
	return Apply(closure, items[1:], ctx)
}

// Apply invokes closure with the unevaluated argument forms args, which
// were taken from the caller's Context callerCtx.
//
// A native closure receives args and callerCtx verbatim and is entirely
// responsible for evaluating (or not evaluating) them.
//
// A user closure evaluates every argument in callerCtx, binds the results
// positionally to its parameter names in a fresh Context whose outer scope
// is the Context the closure was defined in (not callerCtx — this is what
// makes it a closure rather than dynamically scoped), and then evaluates
// its body forms in sequence in that new Context, returning the value of
// the last one.
func Apply(closure *value.Closure, args []value.Value, callerCtx *value.Context) (value.Value, error) {
	if closure.Native != nil {
		return closure.Native(args, callerCtx)
	}
	uc := closure.User
	if uc.Variadic == "" {
		if len(args) != len(uc.Params) {
			return value.VoidValue, arityError(closure.Name, uc, len(args))
		}
	} else if len(args) < len(uc.Params) {
		return value.VoidValue, arityError(closure.Name, uc, len(args))
	}

	callCtx := uc.Captured.NewChildContext()
	if callCtx.ExceedsMaxDepth() {
		return value.VoidValue, errors.Errorf("%s: recursion limit exceeded", displayName(closure.Name))
	}
	for i, param := range uc.Params {
		argVal, err := Eval(args[i], callerCtx)
		if err != nil {
			return value.VoidValue, err
		}
		callCtx.DefineVariable(param, value.NewVariableCell(argVal))
	}
	if uc.Variadic != "" {
		rest := make([]value.Value, 0, len(args)-len(uc.Params))
		for _, a := range args[len(uc.Params):] {
			argVal, err := Eval(a, callerCtx)
			if err != nil {
				return value.VoidValue, err
			}
			rest = append(rest, argVal)
		}
		callCtx.DefineVariable(uc.Variadic, value.NewVariableCell(value.NewArray(value.NewArrayFrom(rest))))
	}

	result := value.VoidValue
	for _, form := range uc.Body {
		var err error
		result, err = Eval(form, callCtx)
		if err != nil {
			return value.VoidValue, err
		}
	}
	return result, nil
}

func arityError(name string, uc *value.UserClosure, got int) error {
	want := len(uc.Params)
	if uc.Variadic != "" {
		return Errorf(WrongArity, "%s: expected at least %d argument(s), got %d", displayName(name), want, got)
	}
	return Errorf(WrongArity, "%s: expected %d argument(s), got %d", displayName(name), want, got)
}

func displayName(name string) string {
	if name == "" {
		return "lambda"
	}
	return name
}
