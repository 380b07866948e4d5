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

// ParseParamList decodes a parameter-list Array of the shape "(a b & rest)"
// (spec section 4.4) into its fixed names and optional variadic name.
// Shared by macro definitions here and by the def/closure/let builtins,
// which use the exact same syntax for their own parameter lists.
func ParseParamList(params *value.Array) (names []string, variadic string, err error) {
	items := params.Items()
	for i := 0; i < len(items); i++ {
		name, ok := items[i].SymbolName()
		if !ok {
			return nil, "", errors.Errorf("parameter %d is not a symbol", i)
		}
		if name == "&" {
			if i != len(items)-2 {
				return nil, "", errors.New("'&' must be followed by exactly one variadic parameter name")
			}
			rest, ok := items[i+1].SymbolName()
			if !ok {
				return nil, "", errors.New("variadic parameter name must be a symbol")
			}
			return names, rest, nil
		}
		names = append(names, name)
	}
	return names, "", nil
}
