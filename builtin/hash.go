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

func registerHash(register registerFunc) {
	register("hash", builtinHash)
	register("hash-get", builtinHashGet)
	register("hash-set!", builtinHashSet)
	register("hash-remove!", builtinHashRemove)
	register("hash-size", builtinHashSize)
	register("hash-keys", builtinHashKeys)
}

// builtinHash implements the hash constructor used to desugar "{...}": an
// even number of arguments, alternating key value key value ...
func builtinHash(args []value.Value, ctx *value.Context) (value.Value, error) {
	if len(args)%2 != 0 {
		return value.VoidValue, eval.Errorf(eval.WrongArity, "hash: expected an even number of key/value arguments, got %d", len(args))
	}
	h := value.EmptyHash()
	for i := 0; i < len(args); i += 2 {
		k, err := eval.Eval(args[i], ctx)
		if err != nil {
			return value.VoidValue, err
		}
		v, err := eval.Eval(args[i+1], ctx)
		if err != nil {
			return value.VoidValue, err
		}
		h.Set(k, v)
	}
	return value.NewHash(h), nil
}

func builtinHashGet(args []value.Value, ctx *value.Context) (value.Value, error) {
	var hashVal, key value.Value
	if err := Parse("hash-get", "HV", args, ctx, &hashVal, &key); err != nil {
		return value.VoidValue, err
	}
	h, _ := hashVal.AsHash()
	v, ok := h.Get(key)
	if !ok {
		return value.VoidValue, eval.Errorf(eval.InvalidKey, "hash-get: key not found: %s", key.Repr())
	}
	return v, nil
}

func builtinHashSet(args []value.Value, ctx *value.Context) (value.Value, error) {
	var hashVal, key, val value.Value
	if err := Parse("hash-set!", "HVV", args, ctx, &hashVal, &key, &val); err != nil {
		return value.VoidValue, err
	}
	h, _ := hashVal.AsHash()
	h.Set(key, val)
	return hashVal, nil
}

func builtinHashRemove(args []value.Value, ctx *value.Context) (value.Value, error) {
	var hashVal, key value.Value
	if err := Parse("hash-remove!", "HV", args, ctx, &hashVal, &key); err != nil {
		return value.VoidValue, err
	}
	h, _ := hashVal.AsHash()
	if !h.Remove(key) {
		return value.VoidValue, eval.Errorf(eval.InvalidKey, "hash-remove!: key not found: %s", key.Repr())
	}
	return hashVal, nil
}

func builtinHashSize(args []value.Value, ctx *value.Context) (value.Value, error) {
	var hashVal value.Value
	if err := Parse("hash-size", "H", args, ctx, &hashVal); err != nil {
		return value.VoidValue, err
	}
	h, _ := hashVal.AsHash()
	return value.NewInt(int64(h.Len())), nil
}

func builtinHashKeys(args []value.Value, ctx *value.Context) (value.Value, error) {
	var hashVal value.Value
	if err := Parse("hash-keys", "H", args, ctx, &hashVal); err != nil {
		return value.VoidValue, err
	}
	h, _ := hashVal.AsHash()
	return value.NewArray(value.NewArrayFrom(h.Keys())), nil
}
