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

package parser

import (
	"github.com/pkg/errors"

	"github.com/tigrux/gel-sub000/value"
)

// macroDef is a registered (macro NAME (PARAM ...) BODY ...) template, kept
// in a table scoped to a single parse (spec section 4.1).
type macroDef struct {
	name     string
	params   []string
	variadic string
	body     []value.Value
}

// expandForms applies the parse-time macro pass (spec section 4.1) to one
// freshly constructed form v:
//
//   - (macro NAME (PARAM ...) BODY ...) registers the template and
//     contributes nothing to the output.
//   - (NAME ARG ...) where NAME names a registered macro is expanded in
//     place, producing zero or more replacement forms.
//   - anything else passes through unchanged.
func (p *parser) expandForms(v value.Value) []value.Value {
	arr, ok := v.AsArray()
	if !ok || arr.Len() == 0 {
		return []value.Value{v}
	}
	items := arr.Items()
	head, isSym := items[0].SymbolName()
	if !isSym {
		return []value.Value{v}
	}
	if head == "macro" {
		if err := p.defineMacro(items); err != nil {
			p.errs.add(p.s.Position, MacroMalformed, "%v", err)
		}
		return nil
	}
	if def, ok := p.macros[head]; ok {
		expanded, err := expandMacroCall(def, items[1:])
		if err != nil {
			p.errs.add(p.s.Position, MacroArgumentMismatch, "macro %s: %v", head, err)
			return nil
		}
		return expanded
	}
	return []value.Value{v}
}

func (p *parser) defineMacro(items []value.Value) error {
	if len(items) < 3 {
		return errors.New("macro requires a name, a parameter list and a body")
	}
	name, ok := items[1].SymbolName()
	if !ok {
		return errors.New("macro name must be a symbol")
	}
	paramsArr, ok := items[2].AsArray()
	if !ok {
		return errors.New("macro parameter list must be an array")
	}
	names, variadic, err := ParseParamList(paramsArr)
	if err != nil {
		return errors.Wrap(err, "macro parameter list")
	}
	p.macros[name] = &macroDef{name: name, params: names, variadic: variadic, body: items[3:]}
	return nil
}

func expandMacroCall(def *macroDef, args []value.Value) ([]value.Value, error) {
	if def.variadic == "" {
		if len(args) != len(def.params) {
			return nil, errors.Errorf("expected %d argument(s), got %d", len(def.params), len(args))
		}
	} else if len(args) < len(def.params) {
		return nil, errors.Errorf("expected at least %d argument(s), got %d", len(def.params), len(args))
	}
	bind := make(map[string]value.Value, len(def.params))
	for i, name := range def.params {
		bind[name] = args[i]
	}
	var variadicArgs []value.Value
	if def.variadic != "" {
		variadicArgs = args[len(def.params):]
	}
	var out []value.Value
	for _, tmpl := range def.body {
		out = append(out, substitute(tmpl, bind, def.variadic, variadicArgs)...)
	}
	return out, nil
}

// substitute walks one body template form, replacing every Symbol matching
// a bound parameter with its argument Value, splicing the variadic
// parameter's collected arguments wherever its Symbol appears (rather than
// substituting it as a single Array), and recursing into nested Arrays.
func substitute(tmpl value.Value, bind map[string]value.Value, variadic string, variadicArgs []value.Value) []value.Value {
	switch tmpl.Kind() {
	case value.Sym:
		name, _ := tmpl.SymbolName()
		if variadic != "" && name == variadic {
			return variadicArgs
		}
		if v, ok := bind[name]; ok {
			return []value.Value{v}
		}
		return []value.Value{tmpl}
	case value.Arr:
		arr, _ := tmpl.AsArray()
		var items []value.Value
		for _, item := range arr.Items() {
			items = append(items, substitute(item, bind, variadic, variadicArgs)...)
		}
		return []value.Value{value.NewArray(value.NewArrayFrom(items))}
	default:
		return []value.Value{tmpl}
	}
}
