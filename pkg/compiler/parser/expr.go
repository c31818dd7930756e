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
	"strconv"
	"strings"

	"github.com/pulumi/rune/pkg/compiler/ast"
	"github.com/pulumi/rune/pkg/compiler/errors"
	"github.com/pulumi/rune/pkg/compiler/lexer"
)

// binaryOps maps infix tokens onto their operator and binding power; higher binds tighter.
var binaryOps = map[ast.Kind]struct {
	op   ast.BinOp
	prec int
}{
	ast.PipePipeKind: {ast.OpOr, 1},
	ast.AmpAmpKind:   {ast.OpAnd, 2},
	ast.EqEqKind:     {ast.OpEq, 3},
	ast.BangEqKind:   {ast.OpNeq, 3},
	ast.LtKind:       {ast.OpLt, 4},
	ast.LtEqKind:     {ast.OpLte, 4},
	ast.GtKind:       {ast.OpGt, 4},
	ast.GtEqKind:     {ast.OpGte, 4},
	ast.PlusKind:     {ast.OpAdd, 5},
	ast.MinusKind:    {ast.OpSub, 5},
	ast.StarKind:     {ast.OpMul, 6},
	ast.SlashKind:    {ast.OpDiv, 6},
	ast.PercentKind:  {ast.OpRem, 6},
}

const expectedExpr = "an expression"

// ParseExpr parses a full expression, assignments included.
func (p *Parser) ParseExpr() (ast.Expr, error) {
	lhs, err := p.parseBinary(1)
	if err != nil {
		return nil, err
	}

	eq, err := p.Eat(ast.EqKind)
	if err != nil || eq == nil {
		return lhs, err
	}
	value, err := p.ParseExpr()
	if err != nil {
		return nil, err
	}

	switch target := lhs.(type) {
	case *ast.ExprPath:
		if target.IsLocal() {
			return &ast.ExprAssign{Target: target, Eq: *eq, Value: value}, nil
		}
	case *ast.ExprIndexGet:
		return &ast.ExprIndexSet{
			Target: target.Target,
			Open:   target.Open,
			Index:  target.Index,
			Close:  target.Close,
			Eq:     *eq,
			Value:  value,
		}, nil
	}
	return nil, errors.New(errors.ErrorIllegalAssignTarget, lhs.Span())
}

// parseBinary parses a left associative chain of operators binding at least as tightly as minPrec.
func (p *Parser) parseBinary(minPrec int) (ast.Expr, error) {
	lhs, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for {
		tok, err := p.Peek()
		if err != nil {
			return nil, err
		}
		if tok == nil {
			return lhs, nil
		}
		bin, has := binaryOps[tok.Kind]
		if !has || bin.prec < minPrec {
			return lhs, nil
		}
		opTok, err := p.Next(expectedExpr)
		if err != nil {
			return nil, err
		}
		rhs, err := p.parseBinary(bin.prec + 1)
		if err != nil {
			return nil, err
		}
		lhs = &ast.ExprBinary{Lhs: lhs, Op: bin.op, OpToken: opTok, Rhs: rhs}
	}
}

func (p *Parser) parseUnary() (ast.Expr, error) {
	tok, err := p.Peek()
	if err != nil {
		return nil, err
	}
	if tok != nil && (tok.Kind == ast.BangKind || tok.Kind == ast.MinusKind) {
		opTok, err := p.Next(expectedExpr)
		if err != nil {
			return nil, err
		}
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		op := ast.OpNot
		if opTok.Kind == ast.MinusKind {
			op = ast.OpNeg
		}
		return &ast.ExprUnary{Op: op, OpToken: opTok, Expr: operand}, nil
	}
	return p.parsePostfix()
}

// parsePostfix parses a primary expression followed by any number of calls, indexes and awaits.
func (p *Parser) parsePostfix() (ast.Expr, error) {
	expr, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	for {
		tok, err := p.Peek()
		if err != nil {
			return nil, err
		}
		if tok == nil {
			return expr, nil
		}

		switch tok.Kind {
		case ast.OpenParenKind:
			path, ok := expr.(*ast.ExprPath)
			if !ok {
				return expr, nil
			}
			opening, args, closing, err := p.parseItems(ast.Parenthesis)
			if err != nil {
				return nil, err
			}
			expr = &ast.ExprCall{Fn: path, Open: opening, Args: args, Close: closing}
		case ast.OpenBracketKind:
			opening, err := p.Expect(ast.OpenBracketKind)
			if err != nil {
				return nil, err
			}
			index, err := p.ParseExpr()
			if err != nil {
				return nil, err
			}
			closing, err := p.Expect(ast.CloseBracketKind)
			if err != nil {
				return nil, err
			}
			expr = &ast.ExprIndexGet{Target: expr, Open: opening, Index: index, Close: closing}
		case ast.DotKind:
			dot, err := p.Expect(ast.DotKind)
			if err != nil {
				return nil, err
			}
			await, err := p.Expect(ast.AwaitKind)
			if err != nil {
				return nil, err
			}
			expr = &ast.ExprAwait{Expr: expr, Dot: dot, Await: await}
		default:
			return expr, nil
		}
	}
}

func (p *Parser) parsePrimary() (ast.Expr, error) {
	tok, err := p.Peek()
	if err != nil {
		return nil, err
	}
	if tok == nil {
		return nil, p.unexpected(errors.ErrorExpectedExpr, expectedExpr)
	}

	switch tok.Kind {
	case ast.LitIntKind:
		lit, err := p.parseLitInt()
		if err != nil {
			return nil, err
		}
		return lit, nil
	case ast.LitStrKind:
		t, err := p.Next(expectedExpr)
		if err != nil {
			return nil, err
		}
		value, err := lexer.Unquote(p.Source(t), t.Span)
		if err != nil {
			return nil, err
		}
		return &ast.LitStr{Token: t, Value: value}, nil
	case ast.TrueKind, ast.FalseKind:
		t, err := p.Next(expectedExpr)
		if err != nil {
			return nil, err
		}
		return &ast.LitBool{Token: t, Value: t.Kind == ast.TrueKind}, nil
	case ast.IdentKind:
		path, err := p.ParseExprPath()
		if err != nil {
			return nil, err
		}
		return path, nil
	case ast.OpenParenKind:
		return p.parseParens()
	case ast.OpenBracketKind:
		opening, items, closing, err := p.parseItems(ast.Bracket)
		if err != nil {
			return nil, err
		}
		return &ast.ExprVec{Open: opening, Items: items, Close: closing}, nil
	case ast.BreakKind:
		t, err := p.Next(expectedExpr)
		if err != nil {
			return nil, err
		}
		return &ast.ExprBreak{Break: t}, nil
	case ast.ReturnKind:
		return p.parseReturn()
	case ast.OpenBraceKind, ast.IfKind, ast.WhileKind, ast.LoopKind, ast.MatchKind:
		return p.parseBlockLike()
	}
	return nil, p.unexpected(errors.ErrorExpectedExpr, expectedExpr)
}

// parseBlockLike parses one of the expressions that end in a closing brace.
func (p *Parser) parseBlockLike() (ast.Expr, error) {
	tok, err := p.Peek()
	if err != nil {
		return nil, err
	}
	if tok == nil {
		return nil, p.unexpected(errors.ErrorExpectedExpr, expectedExpr)
	}

	var expr ast.Expr
	switch tok.Kind {
	case ast.OpenBraceKind:
		expr, err = p.ParseExprBlock()
	case ast.IfKind:
		expr, err = p.parseIf()
	case ast.WhileKind:
		expr, err = p.parseWhile()
	case ast.LoopKind:
		expr, err = p.parseLoop()
	case ast.MatchKind:
		expr, err = p.parseMatch()
	default:
		return nil, p.unexpected(errors.ErrorExpectedExpr, expectedExpr)
	}
	if err != nil {
		return nil, err
	}
	return expr, nil
}

func (p *Parser) parseLitInt() (*ast.LitInt, error) {
	t, err := p.Expect(ast.LitIntKind)
	if err != nil {
		return nil, err
	}
	text := strings.ReplaceAll(p.Source(t), "_", "")
	var value int64
	if strings.HasPrefix(text, "0x") {
		value, err = strconv.ParseInt(text[2:], 16, 64)
	} else {
		value, err = strconv.ParseInt(text, 10, 64)
	}
	if err != nil {
		return nil, errors.New(errors.ErrorIntegerOutOfRange, t.Span, p.Source(t))
	}
	return &ast.LitInt{Token: t, Value: value}, nil
}

// ParseExprPath parses `a` or `a::b::c`.
func (p *Parser) ParseExprPath() (*ast.ExprPath, error) {
	first, err := p.ParseIdent()
	if err != nil {
		return nil, err
	}
	path := &ast.ExprPath{First: first}
	for {
		cc, err := p.Eat(ast.ColonColonKind)
		if err != nil {
			return nil, err
		}
		if cc == nil {
			return path, nil
		}
		ident, err := p.ParseIdent()
		if err != nil {
			return nil, err
		}
		path.Rest = append(path.Rest, ast.PathSegment{ColonColon: *cc, Ident: ident})
	}
}

// parseParens disambiguates `()` (unit), `(e)` (group) and `(e,)` / `(a, b)` (tuple).
func (p *Parser) parseParens() (ast.Expr, error) {
	opening, err := p.Expect(ast.OpenParenKind)
	if err != nil {
		return nil, err
	}
	if closing, err := p.Eat(ast.CloseParenKind); err != nil || closing != nil {
		if err != nil {
			return nil, err
		}
		return &ast.LitUnit{Open: opening, Close: *closing}, nil
	}

	first, err := p.ParseExpr()
	if err != nil {
		return nil, err
	}
	comma, err := p.Eat(ast.CommaKind)
	if err != nil {
		return nil, err
	}
	if comma == nil {
		closing, err := p.Expect(ast.CloseParenKind)
		if err != nil {
			return nil, err
		}
		return &ast.ExprGroup{Open: opening, Expr: first, Close: closing}, nil
	}

	items, closing, err := p.parseItemsAfter(ast.Parenthesis, []ast.ExprItem{{Expr: first, Comma: comma}})
	if err != nil {
		return nil, err
	}
	return &ast.ExprTuple{Open: opening, Items: items, Close: closing}, nil
}

// parseItems parses a delimited, comma separated list of expressions with the same trailing comma rules as fields.
func (p *Parser) parseItems(d ast.Delimiter) (ast.Token, []ast.ExprItem, ast.Token, error) {
	opening, err := p.Expect(ast.Open(d))
	if err != nil {
		return ast.Token{}, nil, ast.Token{}, err
	}
	items, closing, err := p.parseItemsAfter(d, nil)
	if err != nil {
		return ast.Token{}, nil, ast.Token{}, err
	}
	return opening, items, closing, nil
}

func (p *Parser) parseItemsAfter(d ast.Delimiter, items []ast.ExprItem) ([]ast.ExprItem, ast.Token, error) {
	for {
		done, err := p.PeekKind(ast.Close(d))
		if err != nil {
			return nil, ast.Token{}, err
		}
		if done {
			break
		}

		expr, err := p.ParseExpr()
		if err != nil {
			return nil, ast.Token{}, err
		}
		comma, err := p.Eat(ast.CommaKind)
		if err != nil {
			return nil, ast.Token{}, err
		}
		items = append(items, ast.ExprItem{Expr: expr, Comma: comma})
		if comma == nil {
			break
		}
	}

	closing, err := p.Expect(ast.Close(d))
	if err != nil {
		return nil, ast.Token{}, err
	}
	return items, closing, nil
}

func (p *Parser) parseReturn() (ast.Expr, error) {
	kw, err := p.Expect(ast.ReturnKind)
	if err != nil {
		return nil, err
	}
	ret := &ast.ExprReturn{Return: kw}

	tok, err := p.Peek()
	if err != nil {
		return nil, err
	}
	if tok != nil && startsExpr(tok.Kind) {
		if ret.Expr, err = p.ParseExpr(); err != nil {
			return nil, err
		}
	}
	return ret, nil
}

// startsExpr is true for tokens that may begin an expression.
func startsExpr(kind ast.Kind) bool {
	switch kind {
	case ast.IdentKind, ast.LitIntKind, ast.LitStrKind, ast.TrueKind, ast.FalseKind,
		ast.OpenParenKind, ast.OpenBracketKind, ast.OpenBraceKind,
		ast.IfKind, ast.WhileKind, ast.LoopKind, ast.MatchKind, ast.BreakKind, ast.ReturnKind,
		ast.BangKind, ast.MinusKind:
		return true
	}
	return false
}

func (p *Parser) parseIf() (*ast.ExprIf, error) {
	kw, err := p.Expect(ast.IfKind)
	if err != nil {
		return nil, err
	}
	cond, err := p.ParseExpr()
	if err != nil {
		return nil, err
	}
	then, err := p.ParseExprBlock()
	if err != nil {
		return nil, err
	}
	expr := &ast.ExprIf{If: kw, Cond: cond, Then: then}

	elseTok, err := p.Eat(ast.ElseKind)
	if err != nil || elseTok == nil {
		return expr, err
	}
	var alt ast.Expr
	if isIf, err := p.PeekKind(ast.IfKind); err != nil {
		return nil, err
	} else if isIf {
		alt, err = p.parseIf()
		if err != nil {
			return nil, err
		}
	} else {
		alt, err = p.ParseExprBlock()
		if err != nil {
			return nil, err
		}
	}
	expr.Else = &ast.ExprElse{Else: *elseTok, Expr: alt}
	return expr, nil
}

func (p *Parser) parseWhile() (*ast.ExprWhile, error) {
	kw, err := p.Expect(ast.WhileKind)
	if err != nil {
		return nil, err
	}
	cond, err := p.ParseExpr()
	if err != nil {
		return nil, err
	}
	body, err := p.ParseExprBlock()
	if err != nil {
		return nil, err
	}
	return &ast.ExprWhile{While: kw, Cond: cond, Body: body}, nil
}

func (p *Parser) parseLoop() (*ast.ExprLoop, error) {
	kw, err := p.Expect(ast.LoopKind)
	if err != nil {
		return nil, err
	}
	body, err := p.ParseExprBlock()
	if err != nil {
		return nil, err
	}
	return &ast.ExprLoop{Loop: kw, Body: body}, nil
}

func (p *Parser) parseMatch() (*ast.ExprMatch, error) {
	kw, err := p.Expect(ast.MatchKind)
	if err != nil {
		return nil, err
	}
	scrutinee, err := p.ParseExpr()
	if err != nil {
		return nil, err
	}
	opening, err := p.Expect(ast.OpenBraceKind)
	if err != nil {
		return nil, err
	}

	var arms []ast.MatchArm
	for {
		done, err := p.PeekKind(ast.CloseBraceKind)
		if err != nil {
			return nil, err
		}
		if done {
			break
		}

		arm, err := p.parseMatchArm()
		if err != nil {
			return nil, err
		}
		arms = append(arms, arm)

		// Arms whose body ends in a brace may omit the separating comma.
		if arm.Comma == nil && !ast.IsBlockLike(arm.Body) {
			break
		}
	}

	closing, err := p.Expect(ast.CloseBraceKind)
	if err != nil {
		return nil, err
	}
	return &ast.ExprMatch{Match: kw, Expr: scrutinee, Open: opening, Arms: arms, Close: closing}, nil
}

func (p *Parser) parseMatchArm() (ast.MatchArm, error) {
	pat, err := p.ParsePat()
	if err != nil {
		return ast.MatchArm{}, err
	}
	arm := ast.MatchArm{Pat: pat}

	if ifTok, err := p.Eat(ast.IfKind); err != nil {
		return ast.MatchArm{}, err
	} else if ifTok != nil {
		cond, err := p.ParseExpr()
		if err != nil {
			return ast.MatchArm{}, err
		}
		arm.Guard = &ast.Guard{If: *ifTok, Expr: cond}
	}

	if arm.Arrow, err = p.Expect(ast.FatArrowKind); err != nil {
		return ast.MatchArm{}, err
	}
	if arm.Body, err = p.ParseExpr(); err != nil {
		return ast.MatchArm{}, err
	}
	if arm.Comma, err = p.Eat(ast.CommaKind); err != nil {
		return ast.MatchArm{}, err
	}
	return arm, nil
}
