// Copyright 2016-2026, Pulumi Corporation.
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

// Package lexer scans source text into the token stream consumed by the parser.
package lexer

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/golang/glog"

	"github.com/pulumi/rune/pkg/compiler/ast"
	"github.com/pulumi/rune/pkg/compiler/errors"
	"github.com/pulumi/rune/pkg/diag"
)

// Lexer produces tokens from a source string on demand.
type Lexer struct {
	src string
	cur int // the offset of the next unscanned byte.
}

// New creates a lexer over the given source.
func New(src string) *Lexer {
	return &Lexer{src: src}
}

// Source returns the text covered by the given span.
func (l *Lexer) Source(span diag.Span) string {
	return l.src[span.Start:span.End]
}

// End returns the span just past the end of the input, for diagnostics about a missing token.
func (l *Lexer) End() diag.Span {
	return diag.NewSpan(len(l.src), len(l.src))
}

// Next scans the next token.  It returns false once the input is exhausted.
func (l *Lexer) Next() (ast.Token, bool, error) {
	l.skipTrivia()
	if l.cur >= len(l.src) {
		return ast.Token{}, false, nil
	}

	start := l.cur
	r, size := utf8.DecodeRuneInString(l.src[l.cur:])
	switch {
	case isIdentStart(r):
		l.cur += size
		for l.cur < len(l.src) {
			r, size = utf8.DecodeRuneInString(l.src[l.cur:])
			if !isIdentContinue(r) {
				break
			}
			l.cur += size
		}
		kind := ast.IdentKind
		if kw, has := ast.Keywords[l.src[start:l.cur]]; has {
			kind = kw
		}
		return l.token(kind, start), true, nil
	case isDigit(r):
		for l.cur < len(l.src) && (isHexDigit(l.src[l.cur]) || l.src[l.cur] == 'x' || l.src[l.cur] == '_') {
			l.cur++
		}
		return l.token(ast.LitIntKind, start), true, nil
	case r == '"':
		l.cur++
		for l.cur < len(l.src) {
			switch l.src[l.cur] {
			case '\\':
				l.cur += 2
				continue
			case '"':
				l.cur++
				return l.token(ast.LitStrKind, start), true, nil
			}
			l.cur++
		}
		l.cur = len(l.src)
		return ast.Token{}, false, errors.New(errors.ErrorUnterminatedString, diag.NewSpan(start, l.cur))
	}

	if kind, n := l.punct(); n > 0 {
		l.cur += n
		return l.token(kind, start), true, nil
	}

	return ast.Token{}, false, errors.New(errors.ErrorUnexpectedChar, diag.NewSpan(start, start+size), r)
}

func (l *Lexer) token(kind ast.Kind, start int) ast.Token {
	tok := ast.Token{Kind: kind, Span: diag.NewSpan(start, l.cur)}
	if glog.V(9) {
		glog.V(9).Infof("Lexed %v %q", tok, l.src[start:l.cur])
	}
	return tok
}

// punct recognizes punctuation and delimiters, preferring the longest match.
func (l *Lexer) punct() (ast.Kind, int) {
	rest := l.src[l.cur:]
	for _, p := range twoCharPunct {
		if strings.HasPrefix(rest, p.text) {
			return p.kind, 2
		}
	}
	if kind, has := oneCharPunct[rest[0]]; has {
		return kind, 1
	}
	return 0, 0
}

var twoCharPunct = []struct {
	text string
	kind ast.Kind
}{
	{"::", ast.ColonColonKind},
	{"==", ast.EqEqKind},
	{"!=", ast.BangEqKind},
	{"<=", ast.LtEqKind},
	{">=", ast.GtEqKind},
	{"&&", ast.AmpAmpKind},
	{"||", ast.PipePipeKind},
	{"=>", ast.FatArrowKind},
}

var oneCharPunct = map[byte]ast.Kind{
	',': ast.CommaKind,
	';': ast.SemiKind,
	'.': ast.DotKind,
	':': ast.ColonKind,
	'=': ast.EqKind,
	'<': ast.LtKind,
	'>': ast.GtKind,
	'+': ast.PlusKind,
	'-': ast.MinusKind,
	'*': ast.StarKind,
	'/': ast.SlashKind,
	'%': ast.PercentKind,
	'!': ast.BangKind,
	'(': ast.OpenParenKind,
	')': ast.CloseParenKind,
	'{': ast.OpenBraceKind,
	'}': ast.CloseBraceKind,
	'[': ast.OpenBracketKind,
	']': ast.CloseBracketKind,
}

// skipTrivia skips whitespace and `//` line comments.
func (l *Lexer) skipTrivia() {
	for l.cur < len(l.src) {
		switch c := l.src[l.cur]; {
		case c == ' ' || c == '\t' || c == '\r' || c == '\n':
			l.cur++
		case strings.HasPrefix(l.src[l.cur:], "//"):
			if nl := strings.IndexByte(l.src[l.cur:], '\n'); nl >= 0 {
				l.cur += nl + 1
			} else {
				l.cur = len(l.src)
			}
		default:
			return
		}
	}
}

func isIdentStart(r rune) bool    { return r == '_' || unicode.IsLetter(r) }
func isIdentContinue(r rune) bool { return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) }
func isDigit(r rune) bool         { return r >= '0' && r <= '9' }

func isHexDigit(b byte) bool {
	return (b >= '0' && b <= '9') || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

// Unquote processes the escapes of a string literal token's text, including its surrounding quotes.
func Unquote(text string, span diag.Span) (string, error) {
	body := text[1 : len(text)-1]
	var sb strings.Builder
	for i := 0; i < len(body); i++ {
		c := body[i]
		if c != '\\' {
			sb.WriteByte(c)
			continue
		}
		i++
		if i >= len(body) {
			return "", errors.New(errors.ErrorInvalidEscape, span, ' ')
		}
		switch esc := body[i]; esc {
		case 'n':
			sb.WriteByte('\n')
		case 't':
			sb.WriteByte('\t')
		case 'r':
			sb.WriteByte('\r')
		case '0':
			sb.WriteByte(0)
		case '\\', '"', '\'':
			sb.WriteByte(esc)
		default:
			return "", errors.New(errors.ErrorInvalidEscape, span, esc)
		}
	}
	return sb.String(), nil
}
