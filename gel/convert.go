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
	"github.com/pkg/errors"

	"github.com/tigrux/gel-sub000/value"
)

// FromGo converts a host-native Go value into a Value, the "convert
// between Value and host-native types" half of spec section 6's embedding
// interface. Supported inputs are nil (Void), bool, int/int32/int64
// (widened to int64), float32/float64 (widened to float64), string, and
// []interface{} built from the same. Anything else, including the other
// integer kinds and maps, is an error.
func FromGo(x interface{}) (value.Value, error) {
	switch v := x.(type) {
	case nil:
		return value.VoidValue, nil
	case bool:
		return value.NewBool(v), nil
	case int:
		return value.NewInt(int64(v)), nil
	case int32:
		return value.NewInt(int64(v)), nil
	case int64:
		return value.NewInt(v), nil
	case float32:
		return value.NewDouble(float64(v)), nil
	case float64:
		return value.NewDouble(v), nil
	case string:
		return value.NewString(v), nil
	case []interface{}:
		items := make([]value.Value, len(v))
		for i, elem := range v {
			item, err := FromGo(elem)
			if err != nil {
				return value.VoidValue, errors.Wrapf(err, "element %d", i)
			}
			items[i] = item
		}
		return value.NewArray(value.NewArrayFrom(items)), nil
	default:
		return value.VoidValue, errors.Errorf("gel: cannot convert %T to a Value", x)
	}
}

// ToGo converts a Value back to a host-native Go value: bool, int64,
// float64, string, or []interface{} for an Array. A Value of any other
// Kind (Hash, Closure, Variable, Symbol, the opaque handle kinds) is
// returned as an error, since those have no single idiomatic host-native
// representation.
func ToGo(v value.Value) (interface{}, error) {
	switch v.Kind() {
	case value.Void:
		return nil, nil
	case value.Bool:
		b, _ := v.AsBool()
		return b, nil
	case value.Int:
		i, _ := v.AsInt()
		return i, nil
	case value.Double:
		f, _ := v.AsDouble()
		return f, nil
	case value.String:
		s, _ := v.AsString()
		return s, nil
	case value.Arr:
		arr, _ := v.AsArray()
		items := arr.Items()
		out := make([]interface{}, len(items))
		for i, item := range items {
			converted, err := ToGo(item)
			if err != nil {
				return nil, errors.Wrapf(err, "element %d", i)
			}
			out[i] = converted
		}
		return out, nil
	default:
		return nil, errors.Errorf("gel: cannot convert a %s Value to a host-native type", v.Kind())
	}
}
