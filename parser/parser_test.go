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

package parser_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/tigrux/gel-sub000/parser"
	"github.com/tigrux/gel-sub000/value"
)

func parseForms(t *testing.T, src string) []value.Value {
	t.Helper()
	v, err := parser.Parse("test", strings.NewReader(src), nil)
	if err != nil {
		t.Fatalf("Parse(%q): %v", src, err)
	}
	arr, _ := v.AsArray()
	return arr.Items()
}

func TestParseAtoms(t *testing.T) {
	forms := parseForms(t, `42 3.14 "hi" foo`)
	if len(forms) != 4 {
		t.Fatalf("got %d forms, want 4: %v", len(forms), forms)
	}
	if i, ok := forms[0].AsInt(); !ok || i != 42 {
		t.Errorf("forms[0] = %v", forms[0])
	}
	if f, ok := forms[1].AsDouble(); !ok || f != 3.14 {
		t.Errorf("forms[1] = %v", forms[1])
	}
	if s, ok := forms[2].AsString(); !ok || s != "hi" {
		t.Errorf("forms[2] = %v", forms[2])
	}
	if name, ok := forms[3].SymbolName(); !ok || name != "foo" {
		t.Errorf("forms[3] = %v", forms[3])
	}
}

func TestParseBracketDesugaring(t *testing.T) {
	forms := parseForms(t, `[1 2 3]`)
	if len(forms) != 1 {
		t.Fatalf("got %d forms", len(forms))
	}
	if got, want := forms[0].Display(), "(array 1 2 3)"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	forms = parseForms(t, `{1 2}`)
	if got, want := forms[0].Display(), "(hash 1 2)"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestParseQuote(t *testing.T) {
	forms := parseForms(t, `'x`)
	if got, want := forms[0].Display(), "(quote x)"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	forms = parseForms(t, `''x`)
	if got, want := forms[0].Display(), "(quote (quote x))"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestParseNegativeNumberReparse(t *testing.T) {
	forms := parseForms(t, `-5 -3.5 -foo -`)
	if len(forms) != 4 {
		t.Fatalf("got %d forms: %v", len(forms), forms)
	}
	if i, ok := forms[0].AsInt(); !ok || i != -5 {
		t.Errorf("forms[0] = %v", forms[0])
	}
	if f, ok := forms[1].AsDouble(); !ok || f != -3.5 {
		t.Errorf("forms[1] = %v", forms[1])
	}
	if name, ok := forms[2].SymbolName(); !ok || name != "-foo" {
		t.Errorf("forms[2] = %v, want symbol -foo", forms[2])
	}
	if name, ok := forms[3].SymbolName(); !ok || name != "-" {
		t.Errorf("forms[3] = %v, want symbol -", forms[3])
	}
}

func TestParseComment(t *testing.T) {
	forms := parseForms(t, "1 # this is a comment\n2")
	if len(forms) != 2 {
		t.Fatalf("got %d forms: %v", len(forms), forms)
	}
	if i, _ := forms[0].AsInt(); i != 1 {
		t.Errorf("forms[0] = %v", forms[0])
	}
	if i, _ := forms[1].AsInt(); i != 2 {
		t.Errorf("forms[1] = %v", forms[1])
	}
}

func TestParseUnterminatedComment(t *testing.T) {
	_, err := parser.Parse("test", strings.NewReader("1 # no trailing newline"), nil)
	if err == nil {
		t.Fatal("expected an error")
	}
	list := err.(parser.ErrorList)
	if list[0].Kind != parser.UnexpectedEOFInComment {
		t.Errorf("Kind = %v, want UnexpectedEOFInComment", list[0].Kind)
	}
}

func TestParseMismatchedDelimiter(t *testing.T) {
	_, err := parser.Parse("test", strings.NewReader(`(1 2]`), nil)
	if err == nil {
		t.Fatal("expected an error")
	}
	list, ok := err.(parser.ErrorList)
	if !ok || len(list) == 0 {
		t.Fatalf("err = %v, want a non-empty ErrorList", err)
	}
	if list[0].Kind != parser.MismatchedDelimiter {
		t.Errorf("Kind = %v, want MismatchedDelimiter", list[0].Kind)
	}
}

func TestParseUnclosedForm(t *testing.T) {
	_, err := parser.Parse("test", strings.NewReader(`(1 2`), nil)
	if err == nil {
		t.Fatal("expected an error")
	}
	list := err.(parser.ErrorList)
	if list[0].Kind != parser.UnexpectedEOFInArray {
		t.Errorf("Kind = %v, want UnexpectedEOFInArray", list[0].Kind)
	}
}

func TestParseUnexpectedClosingDelimiter(t *testing.T) {
	_, err := parser.Parse("test", strings.NewReader(`1)`), nil)
	if err == nil {
		t.Fatal("expected an error")
	}
	list := err.(parser.ErrorList)
	if list[0].Kind != parser.UnexpectedDelimiter {
		t.Errorf("Kind = %v, want UnexpectedDelimiter", list[0].Kind)
	}
}

func TestParseMacroExpansion(t *testing.T) {
	forms := parseForms(t, `(macro inc (x) (+ x 1)) (inc 5)`)
	if len(forms) != 1 {
		t.Fatalf("got %d forms, want 1 (macro def contributes nothing): %v", len(forms), forms)
	}
	if got, want := forms[0].Display(), "(+ 5 1)"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestParseMacroVariadicSplice(t *testing.T) {
	forms := parseForms(t, `(macro my-list (& rest) (array rest)) (my-list 1 2 3)`)
	if len(forms) != 1 {
		t.Fatalf("got %d forms: %v", len(forms), forms)
	}
	if got, want := forms[0].Display(), "(array 1 2 3)"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestParseSymbolPreBoundFromRoot(t *testing.T) {
	root := value.NewRootContext()
	variable, err := root.Define("foo", value.NewInt(7))
	if err != nil {
		t.Fatal(err)
	}
	v, err := parser.Parse("test", strings.NewReader("foo"), root)
	if err != nil {
		t.Fatal(err)
	}
	arr, _ := v.AsArray()
	sym := arr.Items()[0]
	if sym.SymbolVariable() != variable {
		t.Errorf("symbol was not pre-bound to the root Variable")
	}
}

func ExampleParse() {
	v, err := parser.Parse("example", strings.NewReader(`(+ 1 (* 2 3))`), nil)
	if err != nil {
		panic(err)
	}
	arr, _ := v.AsArray()
	fmt.Println(arr.Items()[0].Display())
	// Output: (+ 1 (* 2 3))
}
