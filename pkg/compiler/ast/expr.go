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
	"github.com/pulumi/rune/pkg/tokens"
)

// Expr is an expression.
type Expr interface {
	Node
	expr()
}

// LitUnit is the unit literal `()`.
type LitUnit struct {
	Open  Token
	Close Token
}

// LitBool is `true` or `false`.
type LitBool struct {
	Token Token
	Value bool
}

// LitInt is an integer literal.
type LitInt struct {
	Token Token
	Value int64
}

// LitStr is a string literal with its escapes already processed.
type LitStr struct {
	Token Token
	Value string
}

// PathSegment is a `::name` suffix of a path.
type PathSegment struct {
	ColonColon Token
	Ident      Ident
}

// ExprPath is a possibly qualified name: `x` or `std::io::println`.
type ExprPath struct {
	First Ident
	Rest  []PathSegment
}

// IsLocal is true if the path is a single unqualified name, which may refer to a local variable.
func (node *ExprPath) IsLocal() bool { return len(node.Rest) == 0 }

// Item returns the full item path this expression names.
func (node *ExprPath) Item() tokens.Item {
	names := []tokens.Name{node.First.Name}
	for _, seg := range node.Rest {
		names = append(names, seg.Ident.Name)
	}
	return tokens.NewItem(names...)
}

// ExprGroup is a parenthesized expression `(e)`.
type ExprGroup struct {
	Open  Token
	Expr  Expr
	Close Token
}

// ExprItem is an element of a comma separated expression list.
type ExprItem struct {
	Expr  Expr
	Comma *Token
}

// ExprTuple is a tuple `(a, b)`.  A single element tuple requires the trailing comma: `(a,)`.
type ExprTuple struct {
	Open  Token
	Items []ExprItem
	Close Token
}

// ExprVec is a vector literal `[a, b]`.
type ExprVec struct {
	Open  Token
	Items []ExprItem
	Close Token
}

// UnaryOp is a prefix operator.
type UnaryOp int

const (
	OpNot UnaryOp = iota
	OpNeg
)

func (op UnaryOp) String() string {
	if op == OpNot {
		return "!"
	}
	return "-"
}

// ExprUnary is `!e` or `-e`.
type ExprUnary struct {
	Op      UnaryOp
	OpToken Token
	Expr    Expr
}

// BinOp is an infix operator.
type BinOp int

const (
	OpAdd BinOp = iota
	OpSub
	OpMul
	OpDiv
	OpRem
	OpEq
	OpNeq
	OpLt
	OpLte
	OpGt
	OpGte
	OpAnd
	OpOr
)

var binOpStrings = [...]string{
	OpAdd: "+",
	OpSub: "-",
	OpMul: "*",
	OpDiv: "/",
	OpRem: "%",
	OpEq:  "==",
	OpNeq: "!=",
	OpLt:  "<",
	OpLte: "<=",
	OpGt:  ">",
	OpGte: ">=",
	OpAnd: "&&",
	OpOr:  "||",
}

func (op BinOp) String() string { return binOpStrings[op] }

// IsShortCircuit is true for the logical operators, whose right hand side is conditionally evaluated.
func (op BinOp) IsShortCircuit() bool { return op == OpAnd || op == OpOr }

// ExprBinary is `lhs op rhs`.
type ExprBinary struct {
	Lhs     Expr
	Op      BinOp
	OpToken Token
	Rhs     Expr
}

// ExprAssign assigns to a local variable: `x = value`.
type ExprAssign struct {
	Target *ExprPath
	Eq     Token
	Value  Expr
}

// ExprIndexGet reads an element: `target[index]`.
type ExprIndexGet struct {
	Target Expr
	Open   Token
	Index  Expr
	Close  Token
}

// ExprIndexSet writes an element: `target[index] = value`.
type ExprIndexSet struct {
	Target Expr
	Open   Token
	Index  Expr
	Close  Token
	Eq     Token
	Value  Expr
}

// ExprAwait suspends on a value: `expr.await`.
type ExprAwait struct {
	Expr  Expr
	Dot   Token
	Await Token
}

// ExprCall calls a function by path: `foo::bar(a, b)`.
type ExprCall struct {
	Fn    *ExprPath
	Open  Token
	Args  []ExprItem
	Close Token
}

// ExprBlock is a braced sequence of statements, optionally ending in a tail expression that is the block's value.
type ExprBlock struct {
	Open  Token
	Stmts []Stmt
	Close Token
}

// Tail returns the trailing expression that produces the block's value, or nil if the block evaluates to unit.
func (node *ExprBlock) Tail() Expr {
	if len(node.Stmts) == 0 {
		return nil
	}
	if s, ok := node.Stmts[len(node.Stmts)-1].(*StmtExpr); ok && s.Semi == nil {
		return s.Expr
	}
	return nil
}

// ExprIf is `if cond { .. } else ..`.
type ExprIf struct {
	If   Token
	Cond Expr
	Then *ExprBlock
	Else *ExprElse
}

// ExprElse is the `else` branch of an if, whose expression is either an *ExprBlock or an *ExprIf.
type ExprElse struct {
	Else Token
	Expr Expr
}

// ExprWhile is `while cond { .. }`.
type ExprWhile struct {
	While Token
	Cond  Expr
	Body  *ExprBlock
}

// ExprLoop is `loop { .. }`.
type ExprLoop struct {
	Loop Token
	Body *ExprBlock
}

// ExprBreak is `break`.
type ExprBreak struct {
	Break Token
}

// ExprReturn is `return` with an optional value.
type ExprReturn struct {
	Return Token
	Expr   Expr
}

// ExprMatch is `match expr { pat => body, .. }`.
type ExprMatch struct {
	Match Token
	Expr  Expr
	Open  Token
	Arms  []MatchArm
	Close Token
}

// MatchArm is one `pat [if guard] => body` case.
type MatchArm struct {
	Pat   Pat
	Guard *Guard
	Arrow Token
	Body  Expr
	Comma *Token
}

func (arm *MatchArm) Span() diag.Span {
	if arm.Comma != nil {
		return arm.Pat.Span().Join(arm.Comma.Span)
	}
	return arm.Pat.Span().Join(arm.Body.Span())
}

// Guard is the `if cond` part of a match arm.
type Guard struct {
	If   Token
	Expr Expr
}

func (node *LitUnit) Span() diag.Span   { return node.Open.Span.Join(node.Close.Span) }
func (node *LitBool) Span() diag.Span   { return node.Token.Span }
func (node *LitInt) Span() diag.Span    { return node.Token.Span }
func (node *LitStr) Span() diag.Span    { return node.Token.Span }
func (node *ExprGroup) Span() diag.Span { return node.Open.Span.Join(node.Close.Span) }
func (node *ExprTuple) Span() diag.Span { return node.Open.Span.Join(node.Close.Span) }
func (node *ExprVec) Span() diag.Span   { return node.Open.Span.Join(node.Close.Span) }
func (node *ExprUnary) Span() diag.Span { return node.OpToken.Span.Join(node.Expr.Span()) }
func (node *ExprBinary) Span() diag.Span {
	return node.Lhs.Span().Join(node.Rhs.Span())
}
func (node *ExprAssign) Span() diag.Span   { return node.Target.Span().Join(node.Value.Span()) }
func (node *ExprIndexGet) Span() diag.Span { return node.Target.Span().Join(node.Close.Span) }
func (node *ExprIndexSet) Span() diag.Span { return node.Target.Span().Join(node.Value.Span()) }
func (node *ExprAwait) Span() diag.Span    { return node.Expr.Span().Join(node.Await.Span) }
func (node *ExprCall) Span() diag.Span     { return node.Fn.Span().Join(node.Close.Span) }
func (node *ExprBlock) Span() diag.Span    { return node.Open.Span.Join(node.Close.Span) }
func (node *ExprElse) Span() diag.Span     { return node.Else.Span.Join(node.Expr.Span()) }
func (node *ExprWhile) Span() diag.Span    { return node.While.Span.Join(node.Body.Span()) }
func (node *ExprLoop) Span() diag.Span     { return node.Loop.Span.Join(node.Body.Span()) }
func (node *ExprBreak) Span() diag.Span    { return node.Break.Span }
func (node *ExprMatch) Span() diag.Span    { return node.Match.Span.Join(node.Close.Span) }

func (node *ExprPath) Span() diag.Span {
	if n := len(node.Rest); n > 0 {
		return node.First.Span().Join(node.Rest[n-1].Ident.Span())
	}
	return node.First.Span()
}

func (node *ExprIf) Span() diag.Span {
	if node.Else != nil {
		return node.If.Span.Join(node.Else.Span())
	}
	return node.If.Span.Join(node.Then.Span())
}

func (node *ExprReturn) Span() diag.Span {
	if node.Expr != nil {
		return node.Return.Span.Join(node.Expr.Span())
	}
	return node.Return.Span
}

func (*LitUnit) expr()      {}
func (*LitBool) expr()      {}
func (*LitInt) expr()       {}
func (*LitStr) expr()       {}
func (*ExprPath) expr()     {}
func (*ExprGroup) expr()    {}
func (*ExprTuple) expr()    {}
func (*ExprVec) expr()      {}
func (*ExprUnary) expr()    {}
func (*ExprBinary) expr()   {}
func (*ExprAssign) expr()   {}
func (*ExprIndexGet) expr() {}
func (*ExprIndexSet) expr() {}
func (*ExprAwait) expr()    {}
func (*ExprCall) expr()     {}
func (*ExprBlock) expr()    {}
func (*ExprIf) expr()       {}
func (*ExprWhile) expr()    {}
func (*ExprLoop) expr()     {}
func (*ExprBreak) expr()    {}
func (*ExprReturn) expr()   {}
func (*ExprMatch) expr()    {}

// IsBlockLike is true for expressions that end in a closing brace and so may appear as statements without a `;`.
func IsBlockLike(e Expr) bool {
	switch e.(type) {
	case *ExprBlock, *ExprIf, *ExprWhile, *ExprLoop, *ExprMatch:
		return true
	}
	return false
}
