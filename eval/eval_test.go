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

package eval_test

import (
	"testing"

	"github.com/tigrux/gel-sub000/eval"
	"github.com/tigrux/gel-sub000/value"
)

func arr(items ...value.Value) value.Value {
	return value.NewArray(value.NewArrayFrom(items))
}

func TestEvalSelfEvaluating(t *testing.T) {
	ctx := value.NewRootContext()
	for _, v := range []value.Value{value.NewInt(1), value.NewString("hi"), value.NewBool(true), value.VoidValue} {
		got, err := eval.Eval(v, ctx)
		if err != nil {
			t.Fatalf("Eval(%v): %v", v, err)
		}
		if !got.Equal(v) {
			t.Errorf("Eval(%v) = %v, want %v", v, got, v)
		}
	}
}

func TestEvalSymbolUnknown(t *testing.T) {
	ctx := value.NewRootContext()
	_, err := eval.Eval(value.NewSymbol("nope"), ctx)
	if err == nil {
		t.Fatal("expected unknown-symbol error")
	}
	if kind, ok := eval.KindOf(err); !ok || kind != eval.UnknownSymbol {
		t.Errorf("KindOf(err) = %v, %v; want UnknownSymbol", kind, ok)
	}
}

func TestEvalSymbolBound(t *testing.T) {
	ctx := value.NewRootContext()
	if _, err := ctx.Define("x", value.NewInt(42)); err != nil {
		t.Fatal(err)
	}
	got, err := eval.Eval(value.NewSymbol("x"), ctx)
	if err != nil {
		t.Fatal(err)
	}
	if i, _ := got.AsInt(); i != 42 {
		t.Errorf("got %v, want 42", got)
	}
}

func TestEvalEmptyArraySelfEvaluates(t *testing.T) {
	ctx := value.NewRootContext()
	empty := arr()
	got, err := eval.Eval(empty, ctx)
	if err != nil {
		t.Fatal(err)
	}
	if !got.Equal(empty) {
		t.Errorf("got %v, want %v", got, empty)
	}
}

func TestEvalNotCallable(t *testing.T) {
	ctx := value.NewRootContext()
	form := arr(value.NewInt(1), value.NewInt(2))
	_, err := eval.Eval(form, ctx)
	if err == nil {
		t.Fatal("expected not-callable error")
	}
	if kind, ok := eval.KindOf(err); !ok || kind != eval.NotCallable {
		t.Errorf("KindOf(err) = %v, %v; want NotCallable", kind, ok)
	}
}

func TestApplyNativeReceivesUnevaluatedArgs(t *testing.T) {
	ctx := value.NewRootContext()
	var seenRaw value.Value
	native := value.NewNativeClosure("quote-first", func(args []value.Value, ctx *value.Context) (value.Value, error) {
		seenRaw = args[0]
		return args[0], nil
	})
	form := arr(value.NewClosure(native), value.NewSymbol("undefined-but-unevaluated"))
	got, err := eval.Eval(form, ctx)
	if err != nil {
		t.Fatal(err)
	}
	if name, _ := got.SymbolName(); name != "undefined-but-unevaluated" {
		t.Errorf("got %v", got)
	}
	if name, _ := seenRaw.SymbolName(); name != "undefined-but-unevaluated" {
		t.Errorf("native did not receive raw symbol: %v", seenRaw)
	}
}

func TestApplyUserClosureBindsParamsAndClosesOverCaptured(t *testing.T) {
	root := value.NewRootContext()
	if _, err := root.Define("y", value.NewInt(10)); err != nil {
		t.Fatal(err)
	}
	// (lambda (x) (+ x y)) constructed by hand; close-over rewrites y.
	body := []value.Value{arr(value.NewSymbol("+"), value.NewSymbol("x"), value.NewSymbol("y"))}
	plus := value.NewNativeClosure("+", func(args []value.Value, ctx *value.Context) (value.Value, error) {
		a, err := eval.Eval(args[0], ctx)
		if err != nil {
			return value.VoidValue, err
		}
		b, err := eval.Eval(args[1], ctx)
		if err != nil {
			return value.VoidValue, err
		}
		return a.Add(b)
	})
	if _, err := root.Define("+", value.NewClosure(plus)); err != nil {
		t.Fatal(err)
	}
	eval.CloseOver(body, []string{"x"}, "", root)

	uc := &value.UserClosure{Params: []string{"x"}, Captured: root, Body: body}
	closure := value.NewUserClosure("", uc)
	closure.Name = "add-y"

	// Evaluate a call from a caller Context where y is shadowed — close-over
	// should still resolve y from the captured root, not the caller.
	caller := value.NewRootContext()
	if _, err := caller.Define("y", value.NewInt(999)); err != nil {
		t.Fatal(err)
	}
	got, err := eval.Apply(closure, []value.Value{value.NewInt(5)}, caller)
	if err != nil {
		t.Fatal(err)
	}
	if i, _ := got.AsInt(); i != 15 {
		t.Errorf("got %v, want 15", got)
	}
}

func TestApplyArityMismatch(t *testing.T) {
	root := value.NewRootContext()
	uc := &value.UserClosure{Params: []string{"a", "b"}, Captured: root}
	closure := value.NewUserClosure("", uc)
	_, err := eval.Apply(closure, []value.Value{value.NewInt(1)}, root)
	if err == nil {
		t.Fatal("expected wrong-arity error")
	}
	if kind, ok := eval.KindOf(err); !ok || kind != eval.WrongArity {
		t.Errorf("KindOf(err) = %v, %v; want WrongArity", kind, ok)
	}
}

func TestApplyVariadicCollectsRest(t *testing.T) {
	root := value.NewRootContext()
	var gotRest value.Value
	uc := &value.UserClosure{
		Params:   []string{"first"},
		Variadic: "rest",
		Captured: root,
	}
	uc.Body = []value.Value{value.NewSymbol("rest")}
	eval.CloseOver(uc.Body, uc.Params, uc.Variadic, root)
	closure := value.NewUserClosure("", uc)
	got, err := eval.Apply(closure, []value.Value{value.NewInt(1), value.NewInt(2), value.NewInt(3)}, root)
	if err != nil {
		t.Fatal(err)
	}
	restArr, ok := got.AsArray()
	if !ok || restArr.Len() != 2 {
		t.Fatalf("got %v", got)
	}
	_ = gotRest
}
