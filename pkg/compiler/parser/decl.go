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

package parser

import (
	"github.com/golang/glog"

	"github.com/pulumi/rune/pkg/compiler/ast"
)

// ParseDeclStruct parses `struct Name` followed by an optional tuple or struct body.
func (p *Parser) ParseDeclStruct() (*ast.DeclStruct, error) {
	kw, err := p.Expect(ast.StructKind)
	if err != nil {
		return nil, err
	}
	ident, err := p.ParseIdent()
	if err != nil {
		return nil, err
	}
	body, err := p.ParseDeclStructBody()
	if err != nil {
		return nil, err
	}

	decl := &ast.DeclStruct{Struct: kw, Ident: ident, Body: body}
	if glog.V(9) {
		glog.V(9).Infof("Parsed struct %v (%T) at %v", ident.Name, body, decl.Span())
	}
	return decl, nil
}

// ParseDeclStructBody picks the body variant from the next token without consuming it: `(` selects a tuple body, `{`
// a struct body, and anything else, end of input included, an empty body that consumes nothing.
func (p *Parser) ParseDeclStructBody() (ast.DeclStructBody, error) {
	tok, err := p.Peek()
	if err != nil {
		return nil, err
	}
	if tok != nil {
		switch tok.Kind {
		case ast.OpenParenKind:
			body, err := p.ParseTupleBody()
			if err != nil {
				return nil, err
			}
			return body, nil
		case ast.OpenBraceKind:
			body, err := p.ParseStructBody()
			if err != nil {
				return nil, err
			}
			return body, nil
		}
	}
	return &ast.EmptyBody{}, nil
}

// ParseTupleBody parses `(a, b, c)`.
func (p *Parser) ParseTupleBody() (*ast.TupleBody, error) {
	opening, fields, closing, err := p.parseFields(ast.Parenthesis)
	if err != nil {
		return nil, err
	}
	return &ast.TupleBody{Open: opening, Fields: fields, Close: closing}, nil
}

// ParseStructBody parses `{a, b, c}`.
func (p *Parser) ParseStructBody() (*ast.StructBody, error) {
	opening, fields, closing, err := p.parseFields(ast.Brace)
	if err != nil {
		return nil, err
	}
	return &ast.StructBody{Open: opening, Fields: fields, Close: closing}, nil
}

// parseFields parses a delimited, comma separated list of identifiers.  A field without a trailing comma ends the list
// and the closing delimiter must follow; a comma directly before the closing delimiter is permitted.
func (p *Parser) parseFields(d ast.Delimiter) (ast.Token, []ast.Field, ast.Token, error) {
	opening, err := p.Expect(ast.Open(d))
	if err != nil {
		return ast.Token{}, nil, ast.Token{}, err
	}

	var fields []ast.Field
	for {
		done, err := p.PeekKind(ast.Close(d))
		if err != nil {
			return ast.Token{}, nil, ast.Token{}, err
		}
		if done {
			break
		}

		ident, err := p.ParseIdent()
		if err != nil {
			return ast.Token{}, nil, ast.Token{}, err
		}
		comma, err := p.Eat(ast.CommaKind)
		if err != nil {
			return ast.Token{}, nil, ast.Token{}, err
		}
		fields = append(fields, ast.Field{Ident: ident, Comma: comma})
		if comma == nil {
			break
		}
	}

	closing, err := p.Expect(ast.Close(d))
	if err != nil {
		return ast.Token{}, nil, ast.Token{}, err
	}
	return opening, fields, closing, nil
}

// ParseDeclFn parses `fn name(args) { body }`.
func (p *Parser) ParseDeclFn() (*ast.DeclFn, error) {
	kw, err := p.Expect(ast.FnKind)
	if err != nil {
		return nil, err
	}
	ident, err := p.ParseIdent()
	if err != nil {
		return nil, err
	}
	opening, args, closing, err := p.parseFields(ast.Parenthesis)
	if err != nil {
		return nil, err
	}
	body, err := p.ParseExprBlock()
	if err != nil {
		return nil, err
	}

	decl := &ast.DeclFn{Fn: kw, Ident: ident, Open: opening, Args: args, Close: closing, Body: body}
	if glog.V(9) {
		glog.V(9).Infof("Parsed fn %v/%d at %v", ident.Name, len(args), decl.Span())
	}
	return decl, nil
}
