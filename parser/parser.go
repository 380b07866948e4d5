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
	"io"
	"strconv"
	"strings"
	"text/scanner"
	"unicode"

	"github.com/tigrux/gel-sub000/value"
)

// identStartChars holds the non-letter runes an identifier may start with
// (spec section 4.1): "= _ + - * / % ! & < > .".
const identStartChars = "=_+-*/%!&<>."

// identContChars additionally allowed once an identifier has started.
const identContChars = identStartChars + "?"

func isIdentRune(ch rune, i int) bool {
	if i == 0 {
		return unicode.IsLetter(ch) || strings.ContainsRune(identStartChars, ch)
	}
	return unicode.IsLetter(ch) || unicode.IsDigit(ch) || strings.ContainsRune(identContChars, ch)
}

// sentinel distinguishes an ordinary datum from a structural event
// encountered while reading one.
type sentinel int

const (
	sentinelNone sentinel = iota
	sentinelEOF
	sentinelClose
	sentinelSkip
)

// parser is the reader's mutable state: the token source, the accumulated
// error list and the macro table for this parse.
type parser struct {
	s        scanner.Scanner
	errs     ErrorList
	root     *value.Context
	macros   map[string]*macroDef
	noMacros bool
}

// Option configures a single Parse call.
type Option func(*parser)

// WithoutMacroExpansion disables the parse-time macro expansion pass (spec
// section 4.1): the returned forms include any (macro NAME ...) template
// definitions and macro calls exactly as read, unexpanded. This backs
// gel.Config's macro-expansion: false knob, used to debug macro templates
// by inspecting the raw parse tree.
func WithoutMacroExpansion() Option {
	return func(p *parser) { p.noMacros = true }
}

func newParser(name string, r io.Reader, root *value.Context, opts ...Option) *parser {
	p := &parser{root: root, macros: make(map[string]*macroDef)}
	for _, opt := range opts {
		opt(p)
	}
	p.s.Init(r)
	p.s.Filename = name
	p.s.Mode = scanner.ScanIdents | scanner.ScanInts | scanner.ScanFloats | scanner.ScanStrings
	p.s.IsIdentRune = isIdentRune
	p.s.Error = func(_ *scanner.Scanner, msg string) {
		pos := p.s.Position
		if !pos.IsValid() {
			pos = p.s.Pos()
		}
		p.errs.add(pos, UnknownToken, "%s", msg)
	}
	return p
}

// Parse reads every top-level form from r, applying bracket desugaring and
// parse-time macro expansion, and returns them as a single Array Value
// (spec section 4.1). If any errors were accumulated, err is a non-nil
// ErrorList; the returned forms are still whatever could be recovered.
func Parse(name string, r io.Reader, root *value.Context, opts ...Option) (value.Value, error) {
	p := newParser(name, r, root, opts...)
	forms := p.parseForms(0, scanner.Position{})
	if len(p.errs) == 0 {
		return value.NewArray(value.NewArrayFrom(forms)), nil
	}
	return value.NewArray(value.NewArrayFrom(forms)), p.errs
}

// scan returns the next significant token, silently discarding "#" line
// comments (spec section 4.1): text/scanner has no built-in notion of them,
// so they are skipped by hand using the scanner's own rune reader, which
// keeps position tracking intact.
func (p *parser) scan() rune {
	for {
		tok := p.s.Scan()
		if tok != '#' {
			return tok
		}
		for {
			r := p.s.Next()
			if r == '\n' {
				break
			}
			if r == scanner.EOF {
				p.errs.add(p.s.Position, UnexpectedEOFInComment, "unexpected EOF in comment")
				return scanner.EOF
			}
		}
	}
}

// parseForms reads forms until the delimiter matching open is consumed (or,
// for the top-level call where open is 0, until EOF), macro-expanding each
// one as it completes.
func (p *parser) parseForms(open rune, openPos scanner.Position) []value.Value {
	var forms []value.Value
	for {
		if p.errs.abort() {
			return forms
		}
		v, sig := p.readDatum(open, openPos)
		switch sig {
		case sentinelEOF:
			if open != 0 {
				p.errs.add(openPos, UnexpectedEOFInArray, "unexpected EOF, %q opened here is never closed", string(open))
			}
			return forms
		case sentinelClose:
			return forms
		case sentinelSkip:
			continue
		default:
			if p.noMacros {
				forms = append(forms, v)
			} else {
				forms = append(forms, p.expandForms(v)...)
			}
		}
	}
}

// readDatum reads exactly one datum: an atom, a bracketed form, or a
// '-prefixed quotation of the next datum. It reports a structural sentinel
// instead of a Value when it encounters EOF or a closing delimiter.
func (p *parser) readDatum(open rune, openPos scanner.Position) (value.Value, sentinel) {
	tok := p.scan()
	switch tok {
	case scanner.EOF:
		return value.VoidValue, sentinelEOF
	case '(', '[', '{':
		pos := p.s.Position
		inner := p.parseForms(tok, pos)
		return p.closeBracket(tok, inner), sentinelNone
	case ')', ']', '}':
		if open == 0 {
			p.errs.add(p.s.Position, UnexpectedDelimiter, "unexpected closing delimiter %q", string(tok))
			return value.VoidValue, sentinelSkip
		}
		if !bracketsMatch(open, tok) {
			p.errs.add(p.s.Position, MismatchedDelimiter,
				"mismatched delimiter: %q opened at %s, closed with %q", string(open), openPos, string(tok))
		}
		return value.VoidValue, sentinelClose
	case '\'':
		inner, sig := p.readDatum(open, openPos)
		if sig != sentinelNone {
			return inner, sig
		}
		quoted := value.NewArray(value.NewArrayFrom([]value.Value{p.symbolValue("quote"), inner}))
		return quoted, sentinelNone
	case scanner.Ident:
		return p.readIdent(), sentinelNone
	case scanner.Int:
		return p.readInt(), sentinelNone
	case scanner.Float:
		return p.readFloat(), sentinelNone
	case scanner.String:
		return p.readString(), sentinelNone
	default:
		p.errs.add(p.s.Position, UnknownToken, "unknown token %q", string(tok))
		return value.VoidValue, sentinelSkip
	}
}

func (p *parser) closeBracket(open rune, inner []value.Value) value.Value {
	switch open {
	case '[':
		items := append([]value.Value{p.symbolValue("array")}, inner...)
		return value.NewArray(value.NewArrayFrom(items))
	case '{':
		items := append([]value.Value{p.symbolValue("hash")}, inner...)
		return value.NewArray(value.NewArrayFrom(items))
	default:
		return value.NewArray(value.NewArrayFrom(inner))
	}
}

func bracketsMatch(open, close rune) bool {
	switch open {
	case '(':
		return close == ')'
	case '[':
		return close == ']'
	case '{':
		return close == '}'
	default:
		return false
	}
}

// symbolValue builds a Symbol Value for name, pre-attaching the root
// Context's Variable for it if one is already bound there (spec section
// 4.1: "the parser attaches the corresponding Variable to the Symbol so
// that evaluation can skip Environment lookup"). This only ever applies to
// the root-level predefined operators; Symbols naming locals or later
// top-level defs are resolved normally at eval time.
func (p *parser) symbolValue(name string) value.Value {
	if p.root != nil {
		if v, ok := p.root.Lookup(name); ok {
			return value.NewBoundSymbol(name, v)
		}
	}
	return value.NewSymbol(name)
}

// readIdent classifies one scanned identifier token. A token starting with
// "-" that reparses wholesale as a signed integer or float literal becomes
// a negated numeric literal instead of a Symbol (spec section 4.1: "this is
// how unary minus on a literal works"). The identifiers true and false
// become Bool literals; anything else becomes a Symbol.
func (p *parser) readIdent() value.Value {
	text := p.s.TokenText()
	switch text {
	case "true":
		return value.NewBool(true)
	case "false":
		return value.NewBool(false)
	}
	if len(text) > 1 && text[0] == '-' {
		if n, err := strconv.ParseInt(text, 0, 64); err == nil {
			return value.NewInt(n)
		}
		if f, err := strconv.ParseFloat(text, 64); err == nil {
			return value.NewDouble(f)
		}
	}
	return p.symbolValue(text)
}

func (p *parser) readInt() value.Value {
	text := p.s.TokenText()
	n, err := strconv.ParseInt(text, 0, 64)
	if err != nil {
		p.errs.add(p.s.Position, DigitBeyondRadix, "invalid integer literal %q: %v", text, err)
		return value.NewInt(0)
	}
	return value.NewInt(n)
}

func (p *parser) readFloat() value.Value {
	text := p.s.TokenText()
	if len(text) > 1 && text[0] == '0' && (text[1] == 'x' || text[1] == 'X') {
		p.errs.add(p.s.Position, NonDecimalFloat, "non-decimal float literal %q", text)
		return value.NewDouble(0)
	}
	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		p.errs.add(p.s.Position, MalformedFloat, "malformed float literal %q: %v", text, err)
		return value.NewDouble(0)
	}
	return value.NewDouble(f)
}

func (p *parser) readString() value.Value {
	text := p.s.TokenText()
	s, err := strconv.Unquote(text)
	if err != nil {
		p.errs.add(p.s.Position, UnexpectedEOFInString, "malformed string literal %s: %v", text, err)
		return value.NewString("")
	}
	return value.NewString(s)
}
