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

func registerArray(register registerFunc) {
	register("array", builtinArray)
	register("array-append!", builtinArrayAppend)
	register("array-get", builtinArrayGet)
	register("array-set!", builtinArraySet)
	register("array-remove!", builtinArrayRemove)
	register("array-size", builtinArraySize)
}

// builtinArray implements the array constructor used to desugar "[...]".
func builtinArray(args []value.Value, ctx *value.Context) (value.Value, error) {
	items := make([]value.Value, len(args))
	for i, form := range args {
		v, err := eval.Eval(form, ctx)
		if err != nil {
			return value.VoidValue, err
		}
		items[i] = v
	}
	return value.NewArray(value.NewArrayFrom(items)), nil
}

func builtinArrayAppend(args []value.Value, ctx *value.Context) (value.Value, error) {
	var arrVal, elem value.Value
	if err := Parse("array-append!", "AV", args, ctx, &arrVal, &elem); err != nil {
		return value.VoidValue, err
	}
	arr, _ := arrVal.AsArray()
	arr.Append(elem)
	return arrVal, nil
}

func builtinArrayGet(args []value.Value, ctx *value.Context) (value.Value, error) {
	var arrVal, idxVal value.Value
	if err := Parse("array-get", "AI", args, ctx, &arrVal, &idxVal); err != nil {
		return value.VoidValue, err
	}
	arr, _ := arrVal.AsArray()
	idx, _ := idxVal.AsInt()
	v, err := arr.Get(idx)
	if err != nil {
		return value.VoidValue, eval.Errorf(eval.IndexOutOfBounds, "array-get: %v", err)
	}
	return v, nil
}

func builtinArraySet(args []value.Value, ctx *value.Context) (value.Value, error) {
	var arrVal, idxVal, elem value.Value
	if err := Parse("array-set!", "AIV", args, ctx, &arrVal, &idxVal, &elem); err != nil {
		return value.VoidValue, err
	}
	arr, _ := arrVal.AsArray()
	idx, _ := idxVal.AsInt()
	if err := arr.Set(idx, elem); err != nil {
		return value.VoidValue, eval.Errorf(eval.IndexOutOfBounds, "array-set!: %v", err)
	}
	return arrVal, nil
}

func builtinArrayRemove(args []value.Value, ctx *value.Context) (value.Value, error) {
	var arrVal, idxVal value.Value
	if err := Parse("array-remove!", "AI", args, ctx, &arrVal, &idxVal); err != nil {
		return value.VoidValue, err
	}
	arr, _ := arrVal.AsArray()
	idx, _ := idxVal.AsInt()
	if err := arr.Remove(idx); err != nil {
		return value.VoidValue, eval.Errorf(eval.IndexOutOfBounds, "array-remove!: %v", err)
	}
	return arrVal, nil
}

func builtinArraySize(args []value.Value, ctx *value.Context) (value.Value, error) {
	var arrVal value.Value
	if err := Parse("array-size", "A", args, ctx, &arrVal); err != nil {
		return value.VoidValue, err
	}
	arr, _ := arrVal.AsArray()
	return value.NewInt(int64(arr.Len())), nil
}
