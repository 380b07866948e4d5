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

package value

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Kind discriminates the variants a Value may hold.
type Kind uint8

// Value variants.
const (
	Void Kind = iota
	Bool
	Int
	Double
	String
	Sym
	Arr
	Hsh
	Clo
	Var
	Obj
	TypeInfo
	TypeLib
)

var kindNames = [...]string{
	Void:     "void",
	Bool:     "bool",
	Int:      "int",
	Double:   "double",
	String:   "string",
	Sym:      "symbol",
	Arr:      "array",
	Hsh:      "hash",
	Clo:      "closure",
	Var:      "variable",
	Obj:      "object",
	TypeInfo: "typeinfo",
	TypeLib:  "typelib",
}

// String implements fmt.Stringer for Kind, returning the type name used in
// type-mismatch diagnostics.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Value is the tagged union that every Gel expression evaluates to. The
// zero Value is Void.
type Value struct {
	kind Kind
	b    bool
	i    int64
	f    float64
	s    string
	sym  *symbolData
	arr  *Array
	hash *Hash
	clo  *Closure
	vr   *Variable
	obj  *object
}

type object struct {
	kind   Kind
	handle interface{}
}

// VoidValue is the single canonical Void value.
var VoidValue = Value{kind: Void}

// NewBool returns a Bool Value.
func NewBool(b bool) Value { return Value{kind: Bool, b: b} }

// NewInt returns an Int Value.
func NewInt(i int64) Value { return Value{kind: Int, i: i} }

// NewDouble returns a Double Value.
func NewDouble(f float64) Value { return Value{kind: Double, f: f} }

// NewString returns a String Value.
func NewString(s string) Value { return Value{kind: String, s: s} }

// NewArray wraps an existing *Array as a Value.
func NewArray(a *Array) Value { return Value{kind: Arr, arr: a} }

// NewHash wraps an existing *Hash as a Value.
func NewHash(h *Hash) Value { return Value{kind: Hsh, hash: h} }

// NewClosure wraps an existing *Closure as a Value.
func NewClosure(c *Closure) Value { return Value{kind: Clo, clo: c} }

// NewVariable wraps an existing *Variable as a first-class Value, as
// produced by the get& builtin.
func NewVariable(v *Variable) Value { return Value{kind: Var, vr: v} }

// NewObject wraps an opaque host handle (Object, Typeinfo or Typelib) as a
// Value. The core never dereferences handle; it exists only so that the
// optional introspection collaborator described in spec section 6 has a
// slot in the data model.
func NewObject(kind Kind, handle interface{}) Value {
	return Value{kind: kind, obj: &object{kind: kind, handle: handle}}
}

// NewSymbol returns an unresolved Symbol Value: the evaluator will look its
// name up in the Context chain.
func NewSymbol(name string) Value {
	return Value{kind: Sym, sym: &symbolData{name: name}}
}

// NewBoundSymbol returns a Symbol Value pre-attached to the given Variable,
// as the parser does for identifiers that resolve to a predefined binding
// and as close-over rewriting does for references into a captured Context.
func NewBoundSymbol(name string, v *Variable) Value {
	return Value{kind: Sym, sym: &symbolData{name: name, v: v}}
}

// Kind returns the Value's variant.
func (v Value) Kind() Kind { return v.kind }

// IsVoid reports whether v is Void.
func (v Value) IsVoid() bool { return v.kind == Void }

// AsBool returns the payload of a Bool Value and whether v was a Bool.
func (v Value) AsBool() (bool, bool) { return v.b, v.kind == Bool }

// AsInt returns the payload of an Int Value and whether v was an Int.
func (v Value) AsInt() (int64, bool) { return v.i, v.kind == Int }

// AsDouble returns the payload of a Double Value and whether v was a
// Double.
func (v Value) AsDouble() (float64, bool) { return v.f, v.kind == Double }

// AsString returns the payload of a String Value and whether v was a
// String.
func (v Value) AsString() (string, bool) { return v.s, v.kind == String }

// AsArray returns the *Array payload and whether v was an Array.
func (v Value) AsArray() (*Array, bool) { return v.arr, v.kind == Arr }

// AsHash returns the *Hash payload and whether v was a Hash.
func (v Value) AsHash() (*Hash, bool) { return v.hash, v.kind == Hsh }

// AsClosure returns the *Closure payload and whether v was a Closure.
func (v Value) AsClosure() (*Closure, bool) { return v.clo, v.kind == Clo }

// AsVariable returns the *Variable payload and whether v was a Variable.
func (v Value) AsVariable() (*Variable, bool) { return v.vr, v.kind == Var }

// SymbolName returns the name of a Symbol Value and whether v was a
// Symbol.
func (v Value) SymbolName() (string, bool) {
	if v.kind != Sym {
		return "", false
	}
	return v.sym.name, true
}

// SymbolVariable returns the Variable currently attached to a Symbol
// Value, if any.
func (v Value) SymbolVariable() *Variable {
	if v.kind != Sym {
		return nil
	}
	return v.sym.v
}

// BindSymbol attaches variable to a Symbol Value in place. Every alias of
// this Value (e.g. other elements of the same Array slot) observes the
// attached Variable afterwards, which is what makes close-over rewriting
// (spec section 4.4) work on the shared body tree rather than on a copy.
func (v Value) BindSymbol(variable *Variable) {
	if v.kind == Sym {
		v.sym.v = variable
	}
}

type symbolData struct {
	name string
	v    *Variable
}

// IsNumeric reports whether v is an Int or a Double.
func (v Value) IsNumeric() bool { return v.kind == Int || v.kind == Double }

// Truthy implements the boolean-coercion rule of spec section 4.2: Void is
// false; empty/zero values of every other kind are false; everything else
// is true.
func (v Value) Truthy() bool {
	switch v.kind {
	case Void:
		return false
	case Bool:
		return v.b
	case Int:
		return v.i != 0
	case Double:
		return v.f != 0
	case String:
		return v.s != ""
	case Arr:
		return v.arr.Len() > 0
	case Hsh:
		return v.hash.Len() > 0
	case Obj:
		return v.obj != nil && v.obj.handle != nil
	default:
		return true
	}
}

// Repr returns the re-readable string form of v: strings are quoted,
// arrays print as "( ... )", hashes as "{ k v ... }", symbols print their
// name.
func (v Value) Repr() string { return v.stringify(true) }

// Display returns the human-facing string form of v: strings are
// unquoted, closures print their registered name if any.
func (v Value) Display() string { return v.stringify(false) }

func (v Value) stringify(repr bool) string {
	switch v.kind {
	case Void:
		return "void"
	case Bool:
		if v.b {
			return "true"
		}
		return "false"
	case Int:
		return strconv.FormatInt(v.i, 10)
	case Double:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case String:
		if repr {
			return strconv.Quote(v.s)
		}
		return v.s
	case Sym:
		return v.sym.name
	case Arr:
		items := v.arr.Items()
		parts := make([]string, len(items))
		for i, item := range items {
			parts[i] = item.stringify(repr)
		}
		return "(" + strings.Join(parts, " ") + ")"
	case Hsh:
		keys := v.hash.Keys()
		parts := make([]string, 0, 2*len(keys))
		for _, k := range keys {
			val, _ := v.hash.Get(k)
			parts = append(parts, k.stringify(repr), val.stringify(repr))
		}
		return "{" + strings.Join(parts, " ") + "}"
	case Clo:
		if v.clo.Name != "" {
			return "#<closure:" + v.clo.Name + ">"
		}
		return "#<closure>"
	case Var:
		return "#<variable>"
	case Obj, TypeInfo, TypeLib:
		return "#<" + v.kind.String() + ">"
	default:
		return "#<unknown>"
	}
}

// Equal implements the value-equality rule of spec section 4.2: numbers
// compare numerically regardless of Int/Double, strings lexically,
// booleans by value, arrays element-wise, hashes structurally. Mismatched
// kinds are never equal except for the Int/Double numeric pair.
func (v Value) Equal(other Value) bool {
	if v.IsNumeric() && other.IsNumeric() {
		return v.numeric() == other.numeric()
	}
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case Void:
		return true
	case Bool:
		return v.b == other.b
	case String:
		return v.s == other.s
	case Sym:
		return v.sym.name == other.sym.name
	case Arr:
		return v.arr.Equal(other.arr)
	case Hsh:
		return v.hash.Equal(other.hash)
	case Clo:
		return v.clo == other.clo
	case Var:
		return v.vr == other.vr
	case Obj, TypeInfo, TypeLib:
		return v.obj == other.obj
	default:
		return false
	}
}

func (v Value) numeric() float64 {
	if v.kind == Int {
		return float64(v.i)
	}
	return v.f
}

// Compare implements the ordering rule of spec section 4.2: numeric for
// numbers, lexicographic for strings, false<true for booleans, elementwise
// for arrays. It returns an error (incompatible-values) for any other pair,
// including hashes, which are only structurally comparable via Equal.
func (v Value) Compare(other Value) (int, error) {
	switch {
	case v.IsNumeric() && other.IsNumeric():
		a, b := v.numeric(), other.numeric()
		switch {
		case a < b:
			return -1, nil
		case a > b:
			return 1, nil
		default:
			return 0, nil
		}
	case v.kind == String && other.kind == String:
		return strings.Compare(v.s, other.s), nil
	case v.kind == Bool && other.kind == Bool:
		switch {
		case v.b == other.b:
			return 0, nil
		case other.b:
			return -1, nil
		default:
			return 1, nil
		}
	case v.kind == Arr && other.kind == Arr:
		return v.arr.Compare(other.arr)
	default:
		return 0, errors.Errorf("cannot compare %s and %s", v.kind, other.kind)
	}
}
