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

func registerFunctional(register registerFunc) {
	register("range", builtinRange)
	register("find", builtinFind)
	register("filter", builtinFilter)
	register("apply", builtinApply)
	register("map", builtinMap)
	register("zip", builtinZip)
}

// quoteForm wraps an already-computed Value as a "(quote v)" form, so it
// can be handed to eval.Apply (which evaluates each argument form in the
// caller's Context) without being re-evaluated — quote simply hands it
// back. This is how the functional builtins below re-inject host-side
// data (array elements) into user closures without risking, say, a
// sub-array element being misread as a call form.
func quoteForm(v value.Value) value.Value {
	return value.NewArray(value.NewArrayFrom([]value.Value{value.NewSymbol("quote"), v}))
}

func callWithValues(closure *value.Closure, vals []value.Value, ctx *value.Context) (value.Value, error) {
	forms := make([]value.Value, len(vals))
	for i, v := range vals {
		forms[i] = quoteForm(v)
	}
	return eval.Apply(closure, forms, ctx)
}

// builtinRange implements (range a b): ascending integers from a through b
// inclusive when a <= b, descending from a through b inclusive otherwise
// (a == b yields the single-element [a]).
func builtinRange(args []value.Value, ctx *value.Context) (value.Value, error) {
	var fromVal, toVal value.Value
	if err := Parse("range", "II", args, ctx, &fromVal, &toVal); err != nil {
		return value.VoidValue, err
	}
	from, _ := fromVal.AsInt()
	to, _ := toVal.AsInt()
	var items []value.Value
	if from <= to {
		for i := from; i <= to; i++ {
			items = append(items, value.NewInt(i))
		}
	} else {
		for i := from; i >= to; i-- {
			items = append(items, value.NewInt(i))
		}
	}
	return value.NewArray(value.NewArrayFrom(items)), nil
}

// builtinFind implements (find pred array): the first element for which
// pred returns a truthy Value, or Void if none does.
func builtinFind(args []value.Value, ctx *value.Context) (value.Value, error) {
	var predVal, arrVal value.Value
	if err := Parse("find", "CA", args, ctx, &predVal, &arrVal); err != nil {
		return value.VoidValue, err
	}
	pred, _ := predVal.AsClosure()
	arr, _ := arrVal.AsArray()
	for _, item := range arr.Items() {
		result, err := callWithValues(pred, []value.Value{item}, ctx)
		if err != nil {
			return value.VoidValue, err
		}
		if result.Truthy() {
			return item, nil
		}
	}
	return value.VoidValue, nil
}

// builtinFilter implements (filter pred array): a new Array of the
// elements for which pred returns a truthy Value.
func builtinFilter(args []value.Value, ctx *value.Context) (value.Value, error) {
	var predVal, arrVal value.Value
	if err := Parse("filter", "CA", args, ctx, &predVal, &arrVal); err != nil {
		return value.VoidValue, err
	}
	pred, _ := predVal.AsClosure()
	arr, _ := arrVal.AsArray()
	var out []value.Value
	for _, item := range arr.Items() {
		result, err := callWithValues(pred, []value.Value{item}, ctx)
		if err != nil {
			return value.VoidValue, err
		}
		if result.Truthy() {
			out = append(out, item)
		}
	}
	return value.NewArray(value.NewArrayFrom(out)), nil
}

// builtinApply implements (apply closure array): call closure with the
// array's elements spread as its arguments.
func builtinApply(args []value.Value, ctx *value.Context) (value.Value, error) {
	var closureVal, arrVal value.Value
	if err := Parse("apply", "CA", args, ctx, &closureVal, &arrVal); err != nil {
		return value.VoidValue, err
	}
	closure, _ := closureVal.AsClosure()
	arr, _ := arrVal.AsArray()
	return callWithValues(closure, arr.Items(), ctx)
}

// builtinMap implements (map closure array): a new Array of closure
// applied to each element in turn.
func builtinMap(args []value.Value, ctx *value.Context) (value.Value, error) {
	var closureVal, arrVal value.Value
	if err := Parse("map", "CA", args, ctx, &closureVal, &arrVal); err != nil {
		return value.VoidValue, err
	}
	closure, _ := closureVal.AsClosure()
	arr, _ := arrVal.AsArray()
	out := make([]value.Value, arr.Len())
	for i, item := range arr.Items() {
		result, err := callWithValues(closure, []value.Value{item}, ctx)
		if err != nil {
			return value.VoidValue, err
		}
		out[i] = result
	}
	return value.NewArray(value.NewArrayFrom(out)), nil
}

// builtinZip implements (zip array ...): an Array of Arrays, each the
// tuple of the i-th element of every input array, truncated to the
// shortest input.
func builtinZip(args []value.Value, ctx *value.Context) (value.Value, error) {
	if len(args) < 1 {
		return value.VoidValue, eval.Errorf(eval.WrongArity, "zip: expected at least 1 argument, got 0")
	}
	arrays := make([]*value.Array, len(args))
	shortest := -1
	for i, form := range args {
		v, err := eval.Eval(form, ctx)
		if err != nil {
			return value.VoidValue, err
		}
		arr, ok := v.AsArray()
		if !ok {
			return value.VoidValue, eval.Errorf(eval.TypeMismatch, "zip: expected array, got %s", v.Kind())
		}
		arrays[i] = arr
		if shortest == -1 || arr.Len() < shortest {
			shortest = arr.Len()
		}
	}
	out := make([]value.Value, shortest)
	for i := 0; i < shortest; i++ {
		tuple := make([]value.Value, len(arrays))
		for j, arr := range arrays {
			tuple[j] = arr.Items()[i]
		}
		out[i] = value.NewArray(value.NewArrayFrom(tuple))
	}
	return value.NewArray(value.NewArrayFrom(out)), nil
}
