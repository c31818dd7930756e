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
	"github.com/pulumi/rune/pkg/compiler/ast"
	"github.com/pulumi/rune/pkg/compiler/errors"
)

const expectedPat = "a pattern"

// ParsePat parses a match arm pattern: `_`, a binding, an optionally negated integer, or a boolean.
func (p *Parser) ParsePat() (ast.Pat, error) {
	tok, err := p.Peek()
	if err != nil {
		return nil, err
	}
	if tok == nil {
		return nil, p.unexpected(errors.ErrorExpectedPattern, expectedPat)
	}

	switch tok.Kind {
	case ast.UnderscoreKind:
		t, err := p.Next(expectedPat)
		if err != nil {
			return nil, err
		}
		return &ast.PatIgnore{Token: t}, nil
	case ast.IdentKind:
		ident, err := p.ParseIdent()
		if err != nil {
			return nil, err
		}
		return &ast.PatBinding{Ident: ident}, nil
	case ast.TrueKind, ast.FalseKind:
		t, err := p.Next(expectedPat)
		if err != nil {
			return nil, err
		}
		return &ast.PatBool{Token: t, Value: t.Kind == ast.TrueKind}, nil
	case ast.MinusKind, ast.LitIntKind:
		minus, err := p.Eat(ast.MinusKind)
		if err != nil {
			return nil, err
		}
		lit, err := p.parseLitInt()
		if err != nil {
			return nil, err
		}
		value := lit.Value
		if minus != nil {
			value = -value
		}
		return &ast.PatInt{Minus: minus, Token: lit.Token, Value: value}, nil
	}
	return nil, p.unexpected(errors.ErrorExpectedPattern, expectedPat)
}
