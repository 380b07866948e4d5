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

// Command gel is the CLI surface of spec section 6: a single positional
// script path, or an interactive "gel> " prompt when none is given.
// Rebuilt on kong (structured flags) and liner (line-edited REPL) in
// place of the teacher's flag/raw-termios pair; see DESIGN.md.
package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/pkg/profile"

	"github.com/tigrux/gel-sub000/gel"
)

// CLI is the top-level command-line interface for gel.
type CLI struct {
	Script string   `arg:"" optional:"" help:"Gel script to run; omitted enters interactive mode." type:"path"`
	With   []string `help:"Additional prelude file(s), loaded before the script." short:"w" type:"path"`
	Config string   `help:"Path to a YAML configuration file (see gel.Config)." short:"c" type:"path"`
	Debug  bool     `help:"Print errors with a full stack trace."`
	Profile string  `help:"Enable CPU or memory profiling for the run." enum:",cpu,mem" default:""`
}

func main() {
	var cli CLI
	kctx := kong.Parse(&cli,
		kong.Name("gel"),
		kong.Description("An embeddable Lisp-dialect interpreter."),
		kong.UsageOnError(),
	)
	err := cli.run()
	if err != nil {
		atExit(cli.Debug, err)
	}
	kctx.Exit(0)
}

// run loads the configuration and prelude, then either runs Script to
// completion or falls into the interactive REPL.
func (cli *CLI) run() error {
	if cli.Profile != "" {
		stop := startProfile(cli.Profile)
		defer stop()
	}

	cfg := gel.DefaultConfig()
	if cli.Config != "" {
		loaded, err := gel.LoadConfig(cli.Config)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	cfg.Prelude = append(cfg.Prelude, cli.With...)

	it := gel.New(gel.WithConfig(cfg))
	if err := it.LoadPrelude(); err != nil {
		return err
	}

	if cli.Script == "" {
		return runREPL(it)
	}
	forms, err := it.ParseFile(cli.Script)
	if err != nil {
		return err
	}
	_, err = it.Run(forms)
	return err
}

func startProfile(mode string) func() {
	switch mode {
	case "cpu":
		return profile.Start(profile.CPUProfile, profile.Quiet).Stop
	case "mem":
		return profile.Start(profile.MemProfile, profile.Quiet).Stop
	default:
		return func() {}
	}
}

// atExit prints err (mirroring the teacher's cmd/retro/main.go atExit)
// and exits 1 — the non-interactive I/O-or-parse-error status spec
// section 6 names. --debug prints the full %+v stack trace that
// github.com/pkg/errors attaches at each Wrap/Errorf call site.
func atExit(debug bool, err error) {
	if debug {
		fmt.Fprintf(os.Stderr, "gel: %+v\n", err)
	} else {
		fmt.Fprintf(os.Stderr, "gel: %v\n", err)
	}
	os.Exit(1)
}
