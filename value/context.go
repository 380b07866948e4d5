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

// Context is a lexical scope: a mapping of names to Variable cells plus a
// pointer to the enclosing scope. Names are unique within a single
// Context; resolution scans the chain from the innermost Context outward.
//
// Running is consulted and cleared by break (spec section 4.5): while and
// for each create a Context with Running set to true on entry, and break walks outward from the current Context to the
// nearest one with Running still true and clears it.
type Context struct {
	vars     map[string]*Variable
	outer    *Context
	Running  bool
	maxDepth int
	depth    int
}

// NewRootContext returns a fresh Context with no outer scope. The root
// environment described in spec section 5 is one such Context, populated
// once by the builtin package.
func NewRootContext() *Context {
	return &Context{vars: make(map[string]*Variable)}
}

// NewChildContext returns a fresh Context whose outer scope is ctx. This
// is used on entry to a lambda call, let, for, while, or any other nested
// block.
func (ctx *Context) NewChildContext() *Context {
	return &Context{vars: make(map[string]*Variable), outer: ctx, maxDepth: ctx.maxDepth, depth: ctx.depth + 1}
}

// SetMaxDepth bounds the number of nested lambda-call Contexts allowed
// below ctx in the chain; every Context derived from ctx via
// NewChildContext inherits the same bound. A host embedder calls this on
// a root Context, before evaluating a script, to cap recursion instead of
// relying on the process's own call stack (gel.Config's stack-size). 0,
// the default, leaves recursion unbounded.
func (ctx *Context) SetMaxDepth(n int) { ctx.maxDepth = n }

// ExceedsMaxDepth reports whether ctx's position in the chain has passed
// the maximum depth configured by the nearest SetMaxDepth call.
func (ctx *Context) ExceedsMaxDepth() bool {
	return ctx.maxDepth > 0 && ctx.depth > ctx.maxDepth
}

// Outer returns the enclosing Context, or nil for the root.
func (ctx *Context) Outer() *Context { return ctx.outer }

// Lookup resolves name by scanning this Context and its outer chain,
// innermost first, returning the first matching Variable.
func (ctx *Context) Lookup(name string) (*Variable, bool) {
	for c := ctx; c != nil; c = c.outer {
		if v, ok := c.vars[name]; ok {
			return v, true
		}
	}
	return nil, false
}

// Define creates a new binding for name in this Context (not any outer
// one), holding value. It fails with symbol-already-exists if name is
// already bound in this Context specifically — shadowing an outer binding
// from an inner scope is allowed, but redefining within the same scope is
// not.
func (ctx *Context) Define(name string, val Value) (*Variable, error) {
	if _, ok := ctx.vars[name]; ok {
		return nil, errors.Errorf("symbol already exists: %s", name)
	}
	v := NewVariableCell(val)
	ctx.vars[name] = v
	return v, nil
}

// DefineVariable binds name directly to an existing Variable cell in this
// Context, used when let/lambda-call parameter binding must share an
// already-allocated cell. It does not check for redefinition: callers
// that need that check should use Define.
func (ctx *Context) DefineVariable(name string, v *Variable) {
	ctx.vars[name] = v
}

// Set mutates the Value held by the Variable bound to name, searching the
// Context chain the same way Lookup does. It reports whether name was
// found.
func (ctx *Context) Set(name string, val Value) bool {
	v, ok := ctx.Lookup(name)
	if !ok {
		return false
	}
	v.Set(val)
	return true
}

// Names returns every name reachable from ctx, innermost scope first, used
// by the "did you mean" suggestion machinery and by REPL tab completion.
func (ctx *Context) Names() []string {
	seen := make(map[string]bool)
	var names []string
	for c := ctx; c != nil; c = c.outer {
		for name := range c.vars {
			if !seen[name] {
				seen[name] = true
				names = append(names, name)
			}
		}
	}
	return names
}
