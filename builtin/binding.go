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
	"github.com/tigrux/gel-sub000/parser"
	"github.com/tigrux/gel-sub000/value"
)

func registerBinding(register registerFunc) {
	register("def", builtinDef)
	register("closure", builtinClosure)
	register("let", builtinLet)
}

// builtinDef implements spec section 4.5's def:
//
//	(def name value)               — bind name to the evaluated value
//	(def (name param ...) body...) — bind name to a new user closure
func builtinDef(args []value.Value, ctx *value.Context) (value.Value, error) {
	if len(args) < 2 {
		return value.VoidValue, eval.Errorf(eval.WrongArity, "def: expected at least 2 argument(s), got %d", len(args))
	}
	if name, ok := args[0].SymbolName(); ok {
		if len(args) != 2 {
			return value.VoidValue, eval.Errorf(eval.WrongArity, "def: expected 2 arguments for a value binding, got %d", len(args))
		}
		val, err := eval.Eval(args[1], ctx)
		if err != nil {
			return value.VoidValue, err
		}
		if _, err := ctx.Define(name, val); err != nil {
			return value.VoidValue, eval.Errorf(eval.SymbolAlreadyExists, "def: %v", err)
		}
		return val, nil
	}
	sig, ok := args[0].AsArray()
	if !ok {
		return value.VoidValue, eval.Errorf(eval.TypeMismatch, "def: first argument must be a symbol or a (name param ...) signature")
	}
	sigItems := sig.Items()
	if len(sigItems) == 0 {
		return value.VoidValue, eval.Errorf(eval.TypeMismatch, "def: empty function signature")
	}
	name, ok := sigItems[0].SymbolName()
	if !ok {
		return value.VoidValue, eval.Errorf(eval.TypeMismatch, "def: function name must be a symbol")
	}
	params, variadic, err := parser.ParseParamList(value.NewArrayFrom(sigItems[1:]))
	if err != nil {
		return value.VoidValue, eval.Errorf(eval.InvalidArgumentName, "def: %v", err)
	}
	uc := &value.UserClosure{Params: params, Variadic: variadic, Captured: ctx, Body: args[1:]}
	closureVal := value.NewClosure(value.NewUserClosure(name, uc))
	if _, err := ctx.Define(name, closureVal); err != nil {
		return value.VoidValue, eval.Errorf(eval.SymbolAlreadyExists, "def: %v", err)
	}
	// Close-over after binding so the closure can recurse through its own name.
	eval.CloseOver(uc.Body, params, variadic, ctx)
	return closureVal, nil
}

// builtinClosure implements (closure (param ...) body...): an anonymous
// user closure capturing ctx.
func builtinClosure(args []value.Value, ctx *value.Context) (value.Value, error) {
	if len(args) < 1 {
		return value.VoidValue, eval.Errorf(eval.WrongArity, "closure: expected a parameter list and a body")
	}
	sig, ok := args[0].AsArray()
	if !ok {
		return value.VoidValue, eval.Errorf(eval.TypeMismatch, "closure: parameter list must be an array")
	}
	params, variadic, err := parser.ParseParamList(sig)
	if err != nil {
		return value.VoidValue, eval.Errorf(eval.InvalidArgumentName, "closure: %v", err)
	}
	uc := &value.UserClosure{Params: params, Variadic: variadic, Captured: ctx, Body: args[1:]}
	eval.CloseOver(uc.Body, params, variadic, ctx)
	return value.NewClosure(value.NewUserClosure("lambda", uc)), nil
}

// builtinLet implements spec section 4.5's let:
//
//	(let ((x v) (y w) ...) body...)        — new scope, each value
//	                                          evaluated in the outer scope
//	(let NAME ((x v) ...) body...)         — also binds NAME, inside the
//	                                          new scope, to a closure of
//	                                          (x ...) and body, enabling
//	                                          named-recursive iteration
func builtinLet(args []value.Value, ctx *value.Context) (value.Value, error) {
	if len(args) < 1 {
		return value.VoidValue, eval.Errorf(eval.WrongArity, "let: expected at least a binding list")
	}
	rest := args
	var selfName string
	if name, ok := args[0].SymbolName(); ok {
		selfName = name
		rest = args[1:]
	}
	if len(rest) < 1 {
		return value.VoidValue, eval.Errorf(eval.WrongArity, "let: expected a binding list")
	}
	bindingsArr, ok := rest[0].AsArray()
	if !ok {
		return value.VoidValue, eval.Errorf(eval.TypeMismatch, "let: binding list must be an array")
	}
	body := rest[1:]

	var names []string
	var values []value.Value
	for _, b := range bindingsArr.Items() {
		pair, ok := b.AsArray()
		if !ok || pair.Len() != 2 {
			return value.VoidValue, eval.Errorf(eval.TypeMismatch, "let: each binding must be (name value)")
		}
		name, ok := pair.Items()[0].SymbolName()
		if !ok {
			return value.VoidValue, eval.Errorf(eval.TypeMismatch, "let: binding name must be a symbol")
		}
		val, err := eval.Eval(pair.Items()[1], ctx)
		if err != nil {
			return value.VoidValue, err
		}
		names = append(names, name)
		values = append(values, val)
	}

	inner := ctx.NewChildContext()
	for i, name := range names {
		inner.DefineVariable(name, value.NewVariableCell(values[i]))
	}

	if selfName != "" {
		selfCell := value.NewVariableCell(value.VoidValue)
		inner.DefineVariable(selfName, selfCell)
		uc := &value.UserClosure{Params: names, Captured: inner, Body: body}
		eval.CloseOver(body, names, "", inner)
		selfCell.Set(value.NewClosure(value.NewUserClosure(selfName, uc)))
	}

	result := value.VoidValue
	for _, form := range body {
		var err error
		result, err = eval.Eval(form, inner)
		if err != nil {
			return value.VoidValue, err
		}
	}
	return result, nil
}
