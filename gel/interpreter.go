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

package gel

import (
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/sahilm/fuzzy"

	"github.com/tigrux/gel-sub000/builtin"
	"github.com/tigrux/gel-sub000/eval"
	"github.com/tigrux/gel-sub000/parser"
	"github.com/tigrux/gel-sub000/value"
)

// Interpreter is the embedding handle of spec section 6: a root
// Environment populated with the predefined operators, plus whatever a
// host has bound into it, and the configuration that governs parsing and
// evaluation.
type Interpreter struct {
	Root   *value.Context
	out    io.Writer
	config Config
}

// Option configures an Interpreter at construction time.
type Option func(*Interpreter)

// WithOutput directs the print builtin's output to w instead of
// os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(it *Interpreter) { it.out = w }
}

// WithConfig supplies a Config other than DefaultConfig().
func WithConfig(cfg Config) Option {
	return func(it *Interpreter) { it.config = cfg }
}

// New returns a fresh Interpreter: a root Context populated with every
// predefined operator (builtin.RootWithOutput, which itself wraps the
// output in an internal/diag.Writer), shaped by opts.
func New(opts ...Option) *Interpreter {
	it := &Interpreter{config: DefaultConfig()}
	for _, opt := range opts {
		opt(it)
	}
	if it.out == nil {
		it.out = os.Stdout
	}
	it.Root = builtin.RootWithOutput(it.out)
	if it.config.StackSize > 0 {
		it.Root.SetMaxDepth(it.config.StackSize)
	}
	return it
}

// Config returns the Interpreter's active configuration.
func (it *Interpreter) Config() Config { return it.config }

// Bind creates a new binding named name in the root Context holding val,
// the "bind a name to a typed value" half of spec section 6's embedding
// interface. It fails if name is already bound.
func (it *Interpreter) Bind(name string, val value.Value) error {
	_, err := it.Root.Define(name, val)
	return err
}

// BindFunc binds name to a native closure wrapping fn, the "bind a name
// to a native function pointer" half of spec section 6's embedding
// interface. Host user-data, where the original C API threads an opaque
// pointer through every call, is modeled idiomatically as whatever fn
// closes over.
func (it *Interpreter) BindFunc(name string, fn value.NativeFunc) error {
	return it.Bind(name, value.NewClosure(value.NewNativeClosure(name, fn)))
}

// ParseString parses src (named name for diagnostics) into an Array of
// top-level forms, honoring the Interpreter's macro-expansion setting.
func (it *Interpreter) ParseString(name, src string) (value.Value, error) {
	var opts []parser.Option
	if !it.config.MacroExpansion {
		opts = append(opts, parser.WithoutMacroExpansion())
	}
	return parser.Parse(name, strings.NewReader(src), it.Root, opts...)
}

// ParseFile reads and parses the file at path.
func (it *Interpreter) ParseFile(path string) (value.Value, error) {
	f, err := os.Open(path)
	if err != nil {
		return value.VoidValue, errors.Wrapf(err, "opening %s", path)
	}
	defer f.Close()
	var opts []parser.Option
	if !it.config.MacroExpansion {
		opts = append(opts, parser.WithoutMacroExpansion())
	}
	return parser.Parse(path, f, it.Root, opts...)
}

// Eval evaluates one form in the root Context (spec section 6: "Evaluate
// one form in one Environment -> (success, result Value) | (error, kind +
// message)"). An unknown-symbol error is enriched with a fuzzy "did you
// mean" suggestion drawn from the names currently reachable from the root
// Context; eval and builtin themselves never see or import the
// suggestion machinery.
func (it *Interpreter) Eval(form value.Value) (value.Value, error) {
	result, err := eval.Eval(form, it.Root)
	if err != nil {
		return result, it.suggestOnUnknownSymbol(err)
	}
	return result, nil
}

// Run evaluates every top-level form in forms (the Array ParseString or
// ParseFile returned) in sequence, returning the value of the last one,
// stopping at the first error per spec section 7's propagation policy.
func (it *Interpreter) Run(forms value.Value) (value.Value, error) {
	arr, ok := forms.AsArray()
	if !ok {
		return value.VoidValue, errors.New("gel: Run expects the Array returned by ParseString/ParseFile")
	}
	result := value.VoidValue
	for _, form := range arr.Items() {
		var err error
		result, err = it.Eval(form)
		if err != nil {
			return result, err
		}
	}
	return result, nil
}

// LoadPrelude evaluates every file named in Config.Prelude, in order,
// against the root Context, before a main script runs.
func (it *Interpreter) LoadPrelude() error {
	for _, path := range it.config.Prelude {
		forms, err := it.ParseFile(path)
		if err != nil {
			return err
		}
		if _, err := it.Run(forms); err != nil {
			return errors.Wrapf(err, "loading prelude %s", path)
		}
	}
	return nil
}

// suggestOnUnknownSymbol appends a "did you mean X?" clause to err when it
// is an unknown-symbol eval.Error and a close match exists among the
// names bound in the root Context.
func (it *Interpreter) suggestOnUnknownSymbol(err error) error {
	kind, ok := eval.KindOf(err)
	if !ok || kind != eval.UnknownSymbol {
		return err
	}
	evalErr, ok := err.(*eval.Error)
	if !ok {
		return err
	}
	name := unknownSymbolName(evalErr.Message)
	if name == "" {
		return err
	}
	best, ok := bestFuzzyMatch(name, it.Root.Names())
	if !ok {
		return err
	}
	return errors.Errorf("%s (did you mean %q?)", evalErr.Error(), best)
}

// bestFuzzyMatch finds the candidate name whose characters appear, in
// order, as a subsequence of the misspelled name, scored highest by
// fuzzy.Find. fuzzy.Find(pattern, data) only matches data entries that
// contain pattern as a subsequence, so the typed (and possibly longer,
// misspelled) name is used as the data and each candidate is tried in
// turn as the pattern, rather than one fuzzy.Find(name, candidates) call
// in the usual typeahead direction.
func bestFuzzyMatch(name string, candidates []string) (string, bool) {
	best := ""
	bestScore := -1
	data := []string{name}
	for _, candidate := range candidates {
		matches := fuzzy.Find(candidate, data)
		if len(matches) == 0 {
			continue
		}
		if matches[0].Score > bestScore {
			bestScore = matches[0].Score
			best = candidate
		}
	}
	return best, best != ""
}

func unknownSymbolName(message string) string {
	const prefix = "unknown symbol: "
	if !strings.HasPrefix(message, prefix) {
		return ""
	}
	return strings.TrimPrefix(message, prefix)
}
