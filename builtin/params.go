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
	stderrors "errors"
	"fmt"

	"github.com/tigrux/gel-sub000/eval"
	"github.com/tigrux/gel-sub000/value"
)

// Parse implements the declarative parameter-parsing helper of spec
// section 4.6. format is a string of codes, one per expected argument:
//
//	v  literal (unevaluated) Value
//	V  evaluated Value
//	a  literal Array        A  evaluated Array
//	H  evaluated Hash
//	s  literal Symbol       S  evaluated String
//	I  evaluated Int
//	O  evaluated object handle
//	C  evaluated Closure
//	b  literal Bool (supplement to the spec's union; see DESIGN.md)
//	(XYZ)  nested destructure: the argument must be a literal Array whose
//	       elements match the nested format XYZ
//	*  remaining arguments are optional; stops the exact-arity check
//
// Every non-'*', non-group code consumes one entry of args and one entry
// of outs, in order; a group consumes one entry of args for the whole
// nested Array but one entry of outs per code inside it. On success every
// out pointer reached is set to the (possibly evaluated) Value produced
// for its slot; on failure Parse returns a *eval.Error of Kind WrongArity
// or TypeMismatch, or the error from evaluating an argument. Out slots are
// filled in order as their arguments bind, so slots bound before the
// failing one may already have been set.
//
// Unlike the original's void**-based out parameters, every out slot here
// is a *value.Value regardless of the expected Kind: Parse itself checks
// the Kind named by the code and the caller unwraps the concrete payload
// (AsInt, AsString, ...) afterwards. This is a deliberate simplification
// documented in DESIGN.md rather than reproducing per-code Go types.
func Parse(name, format string, args []value.Value, ctx *value.Context, outs ...*value.Value) error {
	items, err := parseFormatString(format)
	if err != nil {
		return eval.Errorf(eval.TypeMismatch, "%s: invalid parameter format %q: %v", name, format, err)
	}
	argi, outi, err := bindItems(name, items, args, ctx, outs)
	if err != nil {
		if stderrors.Is(err, errMissingArg) {
			return eval.Errorf(eval.WrongArity, "%s: expected at least %d argument(s), got %d", name, argi+1, len(args))
		}
		return err
	}
	if !formatHasStar(items) && argi != len(args) {
		return eval.Errorf(eval.WrongArity, "%s: expected %d argument(s), got %d", name, argi, len(args))
	}
	return nil
}

type formatItem struct {
	ch    byte
	group []formatItem
	star  bool
}

type fmtScanner struct {
	s   string
	pos int
}

func parseFormatString(format string) ([]formatItem, error) {
	fs := &fmtScanner{s: format}
	items, err := fs.parseItems()
	if err != nil {
		return nil, err
	}
	if fs.pos != len(fs.s) {
		return nil, fmt.Errorf("unexpected %q at position %d", fs.s[fs.pos], fs.pos)
	}
	return items, nil
}

func (fs *fmtScanner) parseItems() ([]formatItem, error) {
	var items []formatItem
	for fs.pos < len(fs.s) {
		ch := fs.s[fs.pos]
		if ch == ')' {
			return items, nil
		}
		fs.pos++
		switch ch {
		case '(':
			sub, err := fs.parseItems()
			if err != nil {
				return nil, err
			}
			if fs.pos >= len(fs.s) || fs.s[fs.pos] != ')' {
				return nil, stderrors.New("unterminated nested format group")
			}
			fs.pos++
			items = append(items, formatItem{group: sub})
		case '*':
			items = append(items, formatItem{star: true})
		default:
			items = append(items, formatItem{ch: ch})
		}
	}
	return items, nil
}

func formatHasStar(items []formatItem) bool {
	for _, it := range items {
		if it.star {
			return true
		}
	}
	return false
}

var errMissingArg = stderrors.New("missing argument")

// bindItems consumes args/outs against items, returning how many of each it
// consumed. A '*' item stops consumption immediately (the remainder of
// args and outs is left to the caller).
func bindItems(name string, items []formatItem, args []value.Value, ctx *value.Context, outs []*value.Value) (argi, outi int, err error) {
	for _, item := range items {
		if item.star {
			return argi, outi, nil
		}
		if argi >= len(args) {
			return argi, outi, errMissingArg
		}
		if item.group != nil {
			v := args[argi]
			if v.Kind() != value.Arr {
				return argi, outi, eval.Errorf(eval.TypeMismatch, "%s: expected array, got %s", name, v.Kind())
			}
			arr, _ := v.AsArray()
			subArgi, subOuti, err := bindItems(name, item.group, arr.Items(), ctx, outs[minInt(outi, len(outs)):])
			if err != nil {
				return argi, outi, err
			}
			if !formatHasStar(item.group) && subArgi != arr.Len() {
				return argi, outi, eval.Errorf(eval.WrongArity, "%s: nested group expected %d argument(s), got %d", name, subArgi, arr.Len())
			}
			outi += subOuti
			argi++
			continue
		}
		result, err := bindOne(name, item.ch, args[argi], ctx)
		if err != nil {
			return argi, outi, err
		}
		if outi < len(outs) && outs[outi] != nil {
			*outs[outi] = result
		}
		argi++
		outi++
	}
	return argi, outi, nil
}

func bindOne(name string, ch byte, v value.Value, ctx *value.Context) (value.Value, error) {
	switch ch {
	case 'v':
		return v, nil
	case 'V':
		return eval.Eval(v, ctx)
	case 'a':
		return checkKind(name, v, value.Arr)
	case 'A':
		ev, err := eval.Eval(v, ctx)
		if err != nil {
			return value.VoidValue, err
		}
		return checkKind(name, ev, value.Arr)
	case 'H':
		ev, err := eval.Eval(v, ctx)
		if err != nil {
			return value.VoidValue, err
		}
		return checkKind(name, ev, value.Hsh)
	case 's':
		return checkKind(name, v, value.Sym)
	case 'S':
		ev, err := eval.Eval(v, ctx)
		if err != nil {
			return value.VoidValue, err
		}
		return checkKind(name, ev, value.String)
	case 'I':
		ev, err := eval.Eval(v, ctx)
		if err != nil {
			return value.VoidValue, err
		}
		return checkKind(name, ev, value.Int)
	case 'O':
		ev, err := eval.Eval(v, ctx)
		if err != nil {
			return value.VoidValue, err
		}
		return checkKind(name, ev, value.Obj)
	case 'C':
		ev, err := eval.Eval(v, ctx)
		if err != nil {
			return value.VoidValue, err
		}
		return checkKind(name, ev, value.Clo)
	case 'b':
		return checkKind(name, v, value.Bool)
	default:
		return value.VoidValue, eval.Errorf(eval.TypeMismatch, "%s: unknown parameter format code %q", name, string(ch))
	}
}

func checkKind(name string, v value.Value, want value.Kind) (value.Value, error) {
	if v.Kind() != want {
		return value.VoidValue, eval.Errorf(eval.TypeMismatch, "%s: expected %s, got %s", name, want, v.Kind())
	}
	return v, nil
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
