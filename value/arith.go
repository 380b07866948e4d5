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

import "github.com/pkg/errors"

// Add implements the "+" operator's full promotion table: numeric
// addition with Int+Int->Int / otherwise Double, string concatenation
// (coercing a non-string right-hand side to its display form, following
// the original implementation's behavior for the mixed case), array
// concatenation, and right-wins hash merge.
func (v Value) Add(other Value) (Value, error) {
	switch {
	case v.IsNumeric() && other.IsNumeric():
		return numericBinOp(v, other, func(a, b int64) int64 { return a + b }, func(a, b float64) float64 { return a + b })
	case v.kind == String:
		return NewString(v.s + other.Display()), nil
	case v.kind == Arr && other.kind == Arr:
		items := make([]Value, 0, v.arr.Len()+other.arr.Len())
		items = append(items, v.arr.Items()...)
		items = append(items, other.arr.Items()...)
		return NewArray(NewArrayFrom(items)), nil
	case v.kind == Hsh && other.kind == Hsh:
		return NewHash(v.hash.Merge(other.hash)), nil
	default:
		return Value{}, errors.Errorf("incompatible values for +: %s and %s", v.kind, other.kind)
	}
}

// Sub implements numeric subtraction per the promotion rule.
func (v Value) Sub(other Value) (Value, error) {
	if !v.IsNumeric() || !other.IsNumeric() {
		return Value{}, errors.Errorf("incompatible values for -: %s and %s", v.kind, other.kind)
	}
	return numericBinOp(v, other, func(a, b int64) int64 { return a - b }, func(a, b float64) float64 { return a - b })
}

// Mul implements numeric multiplication per the promotion rule.
func (v Value) Mul(other Value) (Value, error) {
	if !v.IsNumeric() || !other.IsNumeric() {
		return Value{}, errors.Errorf("incompatible values for *: %s and %s", v.kind, other.kind)
	}
	return numericBinOp(v, other, func(a, b int64) int64 { return a * b }, func(a, b float64) float64 { return a * b })
}

// Div implements numeric division. Division by zero on two Ints is an
// error; division by zero on any Double operand follows platform IEEE 754
// semantics (producing +-Inf or NaN, not a panic).
func (v Value) Div(other Value) (Value, error) {
	if !v.IsNumeric() || !other.IsNumeric() {
		return Value{}, errors.Errorf("incompatible values for /: %s and %s", v.kind, other.kind)
	}
	if v.kind == Int && other.kind == Int {
		if other.i == 0 {
			return Value{}, errors.New("division by zero")
		}
		return NewInt(v.i / other.i), nil
	}
	return NewDouble(v.numeric() / other.numeric()), nil
}

// Mod implements "%". On two Ints it is integer remainder (division by
// zero is an error); on any Double operand both sides are truncated to
// Int first, per spec section 4.2.
func (v Value) Mod(other Value) (Value, error) {
	if !v.IsNumeric() || !other.IsNumeric() {
		return Value{}, errors.Errorf("incompatible values for %%: %s and %s", v.kind, other.kind)
	}
	a, b := int64(v.numeric()), int64(other.numeric())
	if b == 0 {
		return Value{}, errors.New("division by zero")
	}
	if v.kind == Int && other.kind == Int {
		return NewInt(a % b), nil
	}
	return NewDouble(float64(a % b)), nil
}

func numericBinOp(a, b Value, intOp func(int64, int64) int64, floatOp func(float64, float64) float64) (Value, error) {
	if a.kind == Int && b.kind == Int {
		return NewInt(intOp(a.i, b.i)), nil
	}
	return NewDouble(floatOp(a.numeric(), b.numeric())), nil
}
