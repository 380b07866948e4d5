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

func registerImperative(register registerFunc) {
	register("set!", builtinSetBang)
	register("get&", builtinGetAmp)
}

// builtinSetBang implements (set! name value): mutate an existing binding,
// searching the Context chain the way Lookup does.
func builtinSetBang(args []value.Value, ctx *value.Context) (value.Value, error) {
	var nameVal, val value.Value
	if err := Parse("set!", "sV", args, ctx, &nameVal, &val); err != nil {
		return value.VoidValue, err
	}
	name, _ := nameVal.SymbolName()
	if !ctx.Set(name, val) {
		return value.VoidValue, eval.Errorf(eval.UnknownSymbol, "set!: unknown symbol: %s", name)
	}
	return val, nil
}

// builtinGetAmp implements (get& name): returns the Variable cell bound to
// name as a first-class Value.
func builtinGetAmp(args []value.Value, ctx *value.Context) (value.Value, error) {
	if len(args) != 1 {
		return value.VoidValue, eval.Errorf(eval.WrongArity, "get&: expected 1 argument, got %d", len(args))
	}
	name, ok := args[0].SymbolName()
	if !ok {
		return value.VoidValue, eval.Errorf(eval.TypeMismatch, "get&: argument must be a symbol")
	}
	variable, ok := ctx.Lookup(name)
	if !ok {
		return value.VoidValue, eval.Errorf(eval.UnknownSymbol, "get&: unknown symbol: %s", name)
	}
	return value.NewVariable(variable), nil
}
