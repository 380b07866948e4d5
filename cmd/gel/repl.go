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

package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/peterh/liner"

	"github.com/tigrux/gel-sub000/gel"
	"github.com/tigrux/gel-sub000/parser"
)

var (
	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	resultStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
)

const (
	prompt             = "gel> "
	continuationPrompt = " ..> "
	historyFileName    = ".gel_history"
)

// runREPL implements spec section 6's interactive CLI surface: a line at
// a time, with history and tab completion seeded from the names bound in
// the root Context, in the style of sambeau-basil's parsley REPL but
// built on this interpreter's own ParseString/Run instead of a one-shot
// lexer/parser pair.
func runREPL(it *gel.Interpreter) error {
	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)
	line.SetCompleter(func(partial string) []string {
		var completions []string
		for _, name := range it.Root.Names() {
			if strings.HasPrefix(name, partial) {
				completions = append(completions, name)
			}
		}
		return completions
	})

	historyPath := filepath.Join(os.TempDir(), historyFileName)
	if f, err := os.Open(historyPath); err == nil {
		_, _ = line.ReadHistory(f)
		f.Close()
	}
	defer func() {
		if f, err := os.Create(historyPath); err == nil {
			_, _ = line.WriteHistory(f)
			f.Close()
		}
	}()

	var buf strings.Builder
	for {
		p := prompt
		if buf.Len() > 0 {
			p = continuationPrompt
		}
		input, err := line.Prompt(promptStyle.Render(p))
		if err != nil {
			if err == liner.ErrPromptAborted {
				buf.Reset()
				continue
			}
			if err == io.EOF {
				fmt.Println()
				return nil
			}
			return err
		}
		if buf.Len() == 0 && strings.TrimSpace(input) == "" {
			continue
		}
		if buf.Len() > 0 {
			buf.WriteString("\n")
		}
		buf.WriteString(input)

		forms, perr := it.ParseString("repl", buf.String())
		if perr != nil {
			if awaitingClose(perr) {
				continue
			}
			fmt.Println(errorStyle.Render(perr.Error()))
			buf.Reset()
			continue
		}
		line.AppendHistory(buf.String())
		buf.Reset()

		result, err := it.Run(forms)
		if err != nil {
			fmt.Println(errorStyle.Render(err.Error()))
			continue
		}
		if !result.IsVoid() {
			fmt.Println(resultStyle.Render(result.Repr()))
		}
	}
}

// awaitingClose reports whether perr is solely an unclosed-form parse
// error, meaning the form the user is typing isn't finished yet and the
// REPL should keep reading lines instead of reporting a failure.
func awaitingClose(perr error) bool {
	list, ok := perr.(parser.ErrorList)
	if !ok || len(list) != 1 {
		return false
	}
	return list[0].Kind == parser.UnexpectedEOFInArray
}
