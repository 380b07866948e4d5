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

package builtin_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/tigrux/gel-sub000/builtin"
	"github.com/tigrux/gel-sub000/eval"
	"github.com/tigrux/gel-sub000/parser"
	"github.com/tigrux/gel-sub000/value"
)

// run parses and evaluates every top-level form of src against a fresh
// root Context, returning the value of the last form.
func run(t *testing.T, ctx *value.Context, src string) value.Value {
	t.Helper()
	forms, err := parser.Parse("test", strings.NewReader(src), ctx)
	if err != nil {
		t.Fatalf("Parse(%q): %v", src, err)
	}
	arr, _ := forms.AsArray()
	result := value.VoidValue
	for _, form := range arr.Items() {
		result, err = eval.Eval(form, ctx)
		if err != nil {
			t.Fatalf("Eval(%q): %v", src, err)
		}
	}
	return result
}

func TestArithmetic(t *testing.T) {
	ctx := builtin.Root()
	cases := map[string]int64{
		"(+ 1 2 3)":    6,
		"(- 10 3 2)":   5,
		"(* 2 3 4)":    24,
		"(/ 20 2 5)":   2,
		"(% 17 5)":     2,
		"(+ 1 (* 2 3))": 7,
	}
	for src, want := range cases {
		got, ok := run(t, ctx, src).AsInt()
		if !ok || got != want {
			t.Errorf("%s = %v, want %d", src, got, want)
		}
	}
}

func TestStringConcatCoercesDisplay(t *testing.T) {
	ctx := builtin.Root()
	got, ok := run(t, ctx, `(+ "n=" 3)`).AsString()
	if !ok || got != "n=3" {
		t.Errorf("got %q", got)
	}
}

func TestDefValueAndFunction(t *testing.T) {
	ctx := builtin.Root()
	run(t, ctx, `(def x 10)`)
	got, _ := run(t, ctx, `x`).AsInt()
	if got != 10 {
		t.Fatalf("x = %v", got)
	}
	run(t, ctx, `(def (square n) (* n n))`)
	got, _ = run(t, ctx, `(square 7)`).AsInt()
	if got != 49 {
		t.Errorf("(square 7) = %v", got)
	}
}

func TestDefRecursiveFactorial(t *testing.T) {
	ctx := builtin.Root()
	run(t, ctx, `(def (fact n) (if (<= n 1) 1 (* n (fact (- n 1)))))`)
	got, _ := run(t, ctx, `(fact 6)`).AsInt()
	if got != 720 {
		t.Errorf("(fact 6) = %v", got)
	}
}

func TestNamedLetLoop(t *testing.T) {
	ctx := builtin.Root()
	got, _ := run(t, ctx, `
		(let sum ((i 1) (acc 0))
		  (if (> i 5) acc (sum (+ i 1) (+ acc i))))
	`).AsInt()
	if got != 15 {
		t.Errorf("named-let sum = %v, want 15", got)
	}
}

func TestWhileAndBreak(t *testing.T) {
	ctx := builtin.Root()
	run(t, ctx, `(def i 0)`)
	run(t, ctx, `
		(while true
		  (set! i (+ i 1))
		  (if (= i 5) (break)))
	`)
	got, _ := run(t, ctx, `i`).AsInt()
	if got != 5 {
		t.Errorf("i = %v, want 5", got)
	}
}

func TestForLoop(t *testing.T) {
	ctx := builtin.Root()
	run(t, ctx, `(def total 0)`)
	run(t, ctx, `(for x [1 2 3 4] (set! total (+ total x)))`)
	got, _ := run(t, ctx, `total`).AsInt()
	if got != 10 {
		t.Errorf("total = %v, want 10", got)
	}
}

func TestCondAndCase(t *testing.T) {
	ctx := builtin.Root()
	got, _ := run(t, ctx, `(cond (false 1) (true 2) (else 3))`).AsInt()
	if got != 2 {
		t.Errorf("cond = %v", got)
	}
	text, _ := run(t, ctx, `(case 2 (1 "one") ((2 3) "two-or-three") (else "other"))`).AsString()
	if text != "two-or-three" {
		t.Errorf("case = %q", text)
	}
}

func TestArrayOps(t *testing.T) {
	ctx := builtin.Root()
	run(t, ctx, `(def a [1 2 3])`)
	got, _ := run(t, ctx, `(array-get a 0)`).AsInt()
	if got != 1 {
		t.Errorf("array-get = %v", got)
	}
	got, _ = run(t, ctx, `(array-get a -1)`).AsInt()
	if got != 3 {
		t.Errorf("array-get -1 = %v", got)
	}
	run(t, ctx, `(array-append! a 4)`)
	size, _ := run(t, ctx, `(array-size a)`).AsInt()
	if size != 4 {
		t.Errorf("array-size = %v", size)
	}
	run(t, ctx, `(array-set! a 0 99)`)
	got, _ = run(t, ctx, `(array-get a 0)`).AsInt()
	if got != 99 {
		t.Errorf("after array-set!, array-get a 0 = %v", got)
	}
	run(t, ctx, `(array-remove! a 0)`)
	size, _ = run(t, ctx, `(array-size a)`).AsInt()
	if size != 3 {
		t.Errorf("array-size after remove = %v", size)
	}
}

func TestHashOps(t *testing.T) {
	ctx := builtin.Root()
	run(t, ctx, `(def h {"a" 1 "b" 2})`)
	got, _ := run(t, ctx, `(hash-get h "a")`).AsInt()
	if got != 1 {
		t.Errorf("hash-get = %v", got)
	}
	run(t, ctx, `(hash-set! h "c" 3)`)
	size, _ := run(t, ctx, `(hash-size h)`).AsInt()
	if size != 3 {
		t.Errorf("hash-size = %v", size)
	}
	run(t, ctx, `(hash-remove! h "a")`)
	size, _ = run(t, ctx, `(hash-size h)`).AsInt()
	if size != 2 {
		t.Errorf("hash-size after remove = %v", size)
	}
}

func TestFunctional(t *testing.T) {
	ctx := builtin.Root()
	got, _ := run(t, ctx, `(map (closure (x) (* x x)) [1 2 3])`).AsArray()
	want := []int64{1, 4, 9}
	if got.Len() != len(want) {
		t.Fatalf("map len = %d", got.Len())
	}
	for i, w := range want {
		if v, _ := got.Items()[i].AsInt(); v != w {
			t.Errorf("map[%d] = %v, want %d", i, v, w)
		}
	}

	filtered, _ := run(t, ctx, `(filter (closure (x) (> x 2)) [1 2 3 4])`).AsArray()
	if filtered.Len() != 2 {
		t.Fatalf("filter len = %d", filtered.Len())
	}

	found := run(t, ctx, `(find (closure (x) (> x 2)) [1 2 3 4])`)
	if i, _ := found.AsInt(); i != 3 {
		t.Errorf("find = %v", found)
	}

	summed := run(t, ctx, `(apply + [1 2 3 4])`)
	if i, _ := summed.AsInt(); i != 10 {
		t.Errorf("apply = %v", summed)
	}

	r := run(t, ctx, `(range 1 4)`)
	arr, _ := r.AsArray()
	if arr.Len() != 4 {
		t.Fatalf("range len = %d", arr.Len())
	}
	for i, item := range arr.Items() {
		if n, _ := item.AsInt(); n != int64(i+1) {
			t.Errorf("range[%d] = %v, want %d", i, item, i+1)
		}
	}

	squared := run(t, ctx, `(map (closure (x) (* x x)) (range 1 4))`)
	squaredArr, _ := squared.AsArray()
	want = []int64{1, 4, 9, 16}
	if squaredArr.Len() != len(want) {
		t.Fatalf("squared len = %d", squaredArr.Len())
	}
	for i, item := range squaredArr.Items() {
		if n, _ := item.AsInt(); n != want[i] {
			t.Errorf("squared[%d] = %v, want %d", i, item, want[i])
		}
	}

	single := run(t, ctx, `(range 3 3)`)
	singleArr, _ := single.AsArray()
	if singleArr.Len() != 1 {
		t.Fatalf("range 3 3 len = %d", singleArr.Len())
	}
	if n, _ := singleArr.Items()[0].AsInt(); n != 3 {
		t.Errorf("range 3 3 = %v, want [3]", n)
	}

	zipped, _ := run(t, ctx, `(zip [1 2 3] [4 5])`).AsArray()
	if zipped.Len() != 2 {
		t.Fatalf("zip len = %d", zipped.Len())
	}
}

func TestPrintWritesDisplayForm(t *testing.T) {
	var buf bytes.Buffer
	ctx := builtin.RootWithOutput(&buf)
	run(t, ctx, `(print "x=" 5)`)
	if got, want := buf.String(), "x=5\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestDefDuplicateBindingFails(t *testing.T) {
	ctx := builtin.Root()
	run(t, ctx, `(def x 1)`)
	forms, err := parser.Parse("test", strings.NewReader(`(def x 2)`), ctx)
	if err != nil {
		t.Fatal(err)
	}
	arr, _ := forms.AsArray()
	_, err = eval.Eval(arr.Items()[0], ctx)
	if err == nil {
		t.Fatal("expected symbol-already-exists error")
	}
	if kind, ok := eval.KindOf(err); !ok || kind != eval.SymbolAlreadyExists {
		t.Errorf("KindOf(err) = %v, %v", kind, ok)
	}
}

func TestUnknownSymbol(t *testing.T) {
	ctx := builtin.Root()
	forms, err := parser.Parse("test", strings.NewReader(`does-not-exist`), ctx)
	if err != nil {
		t.Fatal(err)
	}
	arr, _ := forms.AsArray()
	_, err = eval.Eval(arr.Items()[0], ctx)
	if err == nil {
		t.Fatal("expected unknown-symbol error")
	}
	if kind, ok := eval.KindOf(err); !ok || kind != eval.UnknownSymbol {
		t.Errorf("KindOf(err) = %v, %v", kind, ok)
	}
}
