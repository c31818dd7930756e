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

package ast

import (
	"github.com/pulumi/rune/pkg/diag"
)

// Stmt is a statement inside of a block.
type Stmt interface {
	Node
	stmt()
}

// StmtLocal introduces a local variable: `let x = expr;`.
type StmtLocal struct {
	Let   Token
	Ident Ident
	Eq    Token
	Expr  Expr
	Semi  Token
}

// StmtExpr is an expression statement.  Semi is nil for block-like expressions and for a block's tail expression.
type StmtExpr struct {
	Expr Expr
	Semi *Token
}

var _ Stmt = (*StmtLocal)(nil)
var _ Stmt = (*StmtExpr)(nil)

func (*StmtLocal) stmt() {}
func (*StmtExpr) stmt()  {}

func (node *StmtLocal) Span() diag.Span { return node.Let.Span.Join(node.Semi.Span) }

func (node *StmtExpr) Span() diag.Span {
	if node.Semi != nil {
		return node.Expr.Span().Join(node.Semi.Span)
	}
	return node.Expr.Span()
}
