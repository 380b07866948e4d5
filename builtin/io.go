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
	"io"
	"strings"

	"github.com/tigrux/gel-sub000/eval"
	"github.com/tigrux/gel-sub000/internal/diag"
	"github.com/tigrux/gel-sub000/value"
)

func registerIO(register registerFunc, w io.Writer) {
	out := diag.NewWriter(w)
	register("print", func(args []value.Value, ctx *value.Context) (value.Value, error) {
		return builtinPrint(out, args, ctx)
	})
}

// builtinPrint implements (print arg ...): concatenates the display form
// of every evaluated argument and appends a trailing newline.
func builtinPrint(out *diag.Writer, args []value.Value, ctx *value.Context) (value.Value, error) {
	var parts []string
	for _, form := range args {
		v, err := eval.Eval(form, ctx)
		if err != nil {
			return value.VoidValue, err
		}
		parts = append(parts, v.Display())
	}
	if _, err := io.WriteString(out, strings.Join(parts, "")+"\n"); err != nil {
		return value.VoidValue, eval.Errorf(eval.IncompatibleValues, "print: %v", err)
	}
	return value.VoidValue, nil
}
