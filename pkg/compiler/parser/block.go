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
)

// ParseExprBlock parses `{ stmt* }`.
func (p *Parser) ParseExprBlock() (*ast.ExprBlock, error) {
	opening, err := p.Expect(ast.OpenBraceKind)
	if err != nil {
		return nil, err
	}

	block := &ast.ExprBlock{Open: opening}
	for {
		done, err := p.PeekKind(ast.CloseBraceKind)
		if err != nil {
			return nil, err
		}
		if done {
			break
		}

		stmt, tail, err := p.parseStmt()
		if err != nil {
			return nil, err
		}
		block.Stmts = append(block.Stmts, stmt)
		if tail {
			break
		}
	}

	if block.Close, err = p.Expect(ast.CloseBraceKind); err != nil {
		return nil, err
	}
	return block, nil
}

// parseStmt parses one statement of a block.  It returns true if the statement is an unterminated expression, which
// must then be the tail of the block.
func (p *Parser) parseStmt() (ast.Stmt, bool, error) {
	tok, err := p.Peek()
	if err != nil {
		return nil, false, err
	}
	if tok != nil && tok.Kind == ast.LetKind {
		local, err := p.parseLocal()
		if err != nil {
			return nil, false, err
		}
		return local, false, nil
	}

	// Block-like expressions end a statement on their own; anything else needs a `;` unless it is the tail.
	if tok != nil && isBlockLikeStart(tok.Kind) {
		expr, err := p.parseBlockLike()
		if err != nil {
			return nil, false, err
		}
		semi, err := p.Eat(ast.SemiKind)
		if err != nil {
			return nil, false, err
		}
		return &ast.StmtExpr{Expr: expr, Semi: semi}, false, nil
	}

	expr, err := p.ParseExpr()
	if err != nil {
		return nil, false, err
	}
	semi, err := p.Eat(ast.SemiKind)
	if err != nil {
		return nil, false, err
	}
	if semi == nil {
		if done, err := p.PeekKind(ast.CloseBraceKind); err != nil {
			return nil, false, err
		} else if !done {
			return nil, false, p.unexpectedToken("`;` or `}`")
		}
	}
	return &ast.StmtExpr{Expr: expr, Semi: semi}, semi == nil, nil
}

func isBlockLikeStart(kind ast.Kind) bool {
	switch kind {
	case ast.OpenBraceKind, ast.IfKind, ast.WhileKind, ast.LoopKind, ast.MatchKind:
		return true
	}
	return false
}

// parseLocal parses `let name = expr;`.
func (p *Parser) parseLocal() (*ast.StmtLocal, error) {
	kw, err := p.Expect(ast.LetKind)
	if err != nil {
		return nil, err
	}
	ident, err := p.ParseIdent()
	if err != nil {
		return nil, err
	}
	eq, err := p.Expect(ast.EqKind)
	if err != nil {
		return nil, err
	}
	expr, err := p.ParseExpr()
	if err != nil {
		return nil, err
	}
	semi, err := p.Expect(ast.SemiKind)
	if err != nil {
		return nil, err
	}
	return &ast.StmtLocal{Let: kw, Ident: ident, Eq: eq, Expr: expr, Semi: semi}, nil
}
