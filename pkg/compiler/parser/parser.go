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

// Package parser turns a token stream into syntax tree nodes.  Every Parse method consumes exactly the tokens of its
// production and leaves the cursor immediately after them, so that productions compose.  The grammar is resolved with
// a single token of lookahead and never backtracks.
package parser

import (
	"github.com/golang/glog"

	"github.com/pulumi/rune/pkg/compiler/ast"
	"github.com/pulumi/rune/pkg/compiler/errors"
	"github.com/pulumi/rune/pkg/compiler/lexer"
	"github.com/pulumi/rune/pkg/diag"
	"github.com/pulumi/rune/pkg/tokens"
)

// Parser owns a cursor over a token stream.
type Parser struct {
	lex    *lexer.Lexer
	peeked *ast.Token // the buffered lookahead token, if any.
	eof    bool       // true once the lexer has run out of tokens.
}

// New creates a parser over the given source text.
func New(src string) *Parser {
	return &Parser{lex: lexer.New(src)}
}

// Peek returns the next token without consuming it, or nil at the end of input.
func (p *Parser) Peek() (*ast.Token, error) {
	if p.peeked == nil && !p.eof {
		tok, ok, err := p.lex.Next()
		if err != nil {
			return nil, err
		}
		if ok {
			p.peeked = &tok
		} else {
			p.eof = true
		}
	}
	return p.peeked, nil
}

// PeekKind returns true if the next token is of the given kind.
func (p *Parser) PeekKind(kind ast.Kind) (bool, error) {
	tok, err := p.Peek()
	if err != nil {
		return false, err
	}
	return tok != nil && tok.Kind == kind, nil
}

// IsEOF returns true once every token has been consumed.
func (p *Parser) IsEOF() (bool, error) {
	tok, err := p.Peek()
	return tok == nil && err == nil, err
}

// Next consumes the next token.  Running out of input is an error describing what was expected instead.
func (p *Parser) Next(expected string) (ast.Token, error) {
	tok, err := p.Peek()
	if err != nil {
		return ast.Token{}, err
	}
	if tok == nil {
		return ast.Token{}, errors.New(errors.ErrorUnexpectedEOF, p.lex.End(), expected)
	}
	p.peeked = nil
	return *tok, nil
}

// Expect consumes the next token, failing unless it is of the given kind.
func (p *Parser) Expect(kind ast.Kind) (ast.Token, error) {
	tok, err := p.Next(kind.String())
	if err != nil {
		return ast.Token{}, err
	}
	if tok.Kind != kind {
		return ast.Token{}, errors.New(errors.ErrorUnexpectedToken, tok.Span, tok.Kind, kind)
	}
	return tok, nil
}

// Eat consumes the next token if it is of the given kind, and returns nil otherwise.
func (p *Parser) Eat(kind ast.Kind) (*ast.Token, error) {
	is, err := p.PeekKind(kind)
	if err != nil || !is {
		return nil, err
	}
	tok, err := p.Next(kind.String())
	if err != nil {
		return nil, err
	}
	return &tok, nil
}

// Source returns the text of the given token.
func (p *Parser) Source(tok ast.Token) string {
	return p.lex.Source(tok.Span)
}

// unexpected reports the next token as not matching the expected construct.
func (p *Parser) unexpected(d *diag.Diag, expected string) error {
	tok, err := p.Peek()
	if err != nil {
		return err
	}
	if tok == nil {
		return errors.New(errors.ErrorUnexpectedEOF, p.lex.End(), expected)
	}
	return errors.New(d, tok.Span, tok.Kind)
}

// unexpectedToken reports the next token as not being the expected one.
func (p *Parser) unexpectedToken(expected string) error {
	tok, err := p.Peek()
	if err != nil {
		return err
	}
	if tok == nil {
		return errors.New(errors.ErrorUnexpectedEOF, p.lex.End(), expected)
	}
	return errors.New(errors.ErrorUnexpectedToken, tok.Span, tok.Kind, expected)
}

// ParseIdent parses a single identifier.
func (p *Parser) ParseIdent() (ast.Ident, error) {
	tok, err := p.Peek()
	if err != nil {
		return ast.Ident{}, err
	}
	if tok == nil || tok.Kind != ast.IdentKind {
		return ast.Ident{}, p.unexpected(errors.ErrorExpectedIdent, ast.IdentKind.String())
	}
	t, err := p.Next(ast.IdentKind.String())
	if err != nil {
		return ast.Ident{}, err
	}
	return ast.Ident{Token: t, Name: tokens.Name(p.Source(t))}, nil
}

// ParseFile parses declarations until the end of input.  Declarations that are not self-delimiting must be followed by
// a `;`; a `;` after any other declaration is permitted.
func (p *Parser) ParseFile() (*ast.File, error) {
	file := &ast.File{}
	for {
		eof, err := p.IsEOF()
		if err != nil {
			return nil, err
		}
		if eof {
			break
		}

		decl, err := p.ParseDecl()
		if err != nil {
			return nil, err
		}

		var semi *ast.Token
		if decl.NeedsTerminator() {
			t, err := p.Expect(ast.SemiKind)
			if err != nil {
				return nil, err
			}
			semi = &t
		} else if semi, err = p.Eat(ast.SemiKind); err != nil {
			return nil, err
		}
		file.Decls = append(file.Decls, ast.FileDecl{Decl: decl, Semi: semi})
	}

	if glog.V(5) {
		glog.V(5).Infof("Parsed file with %d declarations", len(file.Decls))
	}
	return file, nil
}

// ParseDecl parses a single top-level declaration.
func (p *Parser) ParseDecl() (ast.Decl, error) {
	tok, err := p.Peek()
	if err != nil {
		return nil, err
	}
	if tok != nil {
		switch tok.Kind {
		case ast.StructKind:
			decl, err := p.ParseDeclStruct()
			if err != nil {
				return nil, err
			}
			return decl, nil
		case ast.FnKind:
			decl, err := p.ParseDeclFn()
			if err != nil {
				return nil, err
			}
			return decl, nil
		}
	}
	return nil, p.unexpected(errors.ErrorExpectedDecl, "a declaration")
}
