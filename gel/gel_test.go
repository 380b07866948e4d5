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

package gel_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tigrux/gel-sub000/gel"
	"github.com/tigrux/gel-sub000/value"
)

func run(t *testing.T, it *gel.Interpreter, src string) value.Value {
	t.Helper()
	forms, err := it.ParseString("test", src)
	if err != nil {
		t.Fatalf("ParseString(%q): %v", src, err)
	}
	result, err := it.Run(forms)
	if err != nil {
		t.Fatalf("Run(%q): %v", src, err)
	}
	return result
}

func TestInterpreterEvalArithmetic(t *testing.T) {
	it := gel.New()
	got, ok := run(t, it, "(+ 1 2 3)").AsInt()
	if !ok || got != 6 {
		t.Fatalf("got %v, want 6", got)
	}
}

func TestInterpreterBind(t *testing.T) {
	it := gel.New()
	if err := it.Bind("host-value", value.NewInt(42)); err != nil {
		t.Fatalf("Bind: %v", err)
	}
	got, ok := run(t, it, "(+ host-value 1)").AsInt()
	if !ok || got != 43 {
		t.Fatalf("got %v, want 43", got)
	}
}

func TestInterpreterBindFunc(t *testing.T) {
	it := gel.New()
	called := false
	err := it.BindFunc("host-fn", func(args []value.Value, ctx *value.Context) (value.Value, error) {
		called = true
		return value.NewString("from host"), nil
	})
	if err != nil {
		t.Fatalf("BindFunc: %v", err)
	}
	got, ok := run(t, it, "(host-fn)").AsString()
	if !ok || got != "from host" {
		t.Fatalf("got %v, want %q", got, "from host")
	}
	if !called {
		t.Fatal("host-fn was not invoked")
	}
}

func TestInterpreterOutputCapture(t *testing.T) {
	var buf bytes.Buffer
	it := gel.New(gel.WithOutput(&buf))
	run(t, it, `(print "hello")`)
	if got := buf.String(); got != "hello\n" {
		t.Fatalf("output = %q, want %q", got, "hello\n")
	}
}

func TestInterpreterUnknownSymbolSuggestion(t *testing.T) {
	it := gel.New()
	forms, err := it.ParseString("test", "(defx x 1)")
	if err != nil {
		t.Fatalf("ParseString: %v", err)
	}
	_, err = it.Run(forms)
	if err == nil {
		t.Fatal("expected an error for the unknown symbol defx")
	}
	if !strings.Contains(err.Error(), `did you mean "def"`) {
		t.Fatalf("error = %q, want a did-you-mean suggestion for def", err.Error())
	}
}

func TestInterpreterStackSizeLimit(t *testing.T) {
	cfg := gel.DefaultConfig()
	cfg.StackSize = 8
	it := gel.New(gel.WithConfig(cfg))
	forms, err := it.ParseString("test", "(def (loop n) (loop (+ n 1))) (loop 0)")
	if err != nil {
		t.Fatalf("ParseString: %v", err)
	}
	if _, err := it.Run(forms); err == nil {
		t.Fatal("expected a recursion-limit error")
	}
}

func TestInterpreterMacroExpansionToggle(t *testing.T) {
	cfg := gel.DefaultConfig()
	cfg.MacroExpansion = false
	it := gel.New(gel.WithConfig(cfg))
	forms, err := it.ParseString("test", "(macro twice (x) (+ x x)) (twice 3)")
	if err != nil {
		t.Fatalf("ParseString: %v", err)
	}
	arr, _ := forms.AsArray()
	if arr.Len() != 2 {
		t.Fatalf("with macro expansion disabled, expected 2 raw forms, got %d", arr.Len())
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "gel.yaml")
	content := "prelude: []\nstack-size: 256\nmacro-expansion: true\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	cfg, err := gel.LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.StackSize != 256 || !cfg.MacroExpansion {
		t.Fatalf("got %+v", cfg)
	}
}

func TestInterpreterPrelude(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "prelude.gel")
	if err := os.WriteFile(path, []byte("(def seeded 100)"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	cfg := gel.DefaultConfig()
	cfg.Prelude = []string{path}
	it := gel.New(gel.WithConfig(cfg))
	if err := it.LoadPrelude(); err != nil {
		t.Fatalf("LoadPrelude: %v", err)
	}
	got, ok := run(t, it, "(+ seeded 1)").AsInt()
	if !ok || got != 101 {
		t.Fatalf("got %v, want 101", got)
	}
}

func TestConvertRoundTrip(t *testing.T) {
	v, err := gel.FromGo([]interface{}{int64(1), "two", true})
	if err != nil {
		t.Fatalf("FromGo: %v", err)
	}
	back, err := gel.ToGo(v)
	if err != nil {
		t.Fatalf("ToGo: %v", err)
	}
	items, ok := back.([]interface{})
	if !ok || len(items) != 3 {
		t.Fatalf("got %#v", back)
	}
}
