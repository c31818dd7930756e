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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pulumi/rune/pkg/compiler/ast"
	"github.com/pulumi/rune/pkg/compiler/errors"
	"github.com/pulumi/rune/pkg/diag"
	"github.com/pulumi/rune/pkg/tokens"
)

func parseExpr(t *testing.T, src string) ast.Expr {
	p := New(src)
	expr, err := p.ParseExpr()
	require.NoError(t, err)
	eof, err := p.IsEOF()
	require.NoError(t, err)
	require.True(t, eof, "trailing input after %q", src)
	return expr
}

func TestExprShapes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		src      string
		expected ast.Expr
	}{
		{"()", &ast.LitUnit{}},
		{"(1)", &ast.ExprGroup{}},
		{"(1,)", &ast.ExprTuple{}},
		{"(1, 2)", &ast.ExprTuple{}},
		{"[1, 2, 3]", &ast.ExprVec{}},
		{"x", &ast.ExprPath{}},
		{"std::io::println(\"hi\")", &ast.ExprCall{}},
		{"x = 1", &ast.ExprAssign{}},
		{"v[0]", &ast.ExprIndexGet{}},
		{"v[0] = 1", &ast.ExprIndexSet{}},
		{"f().await", &ast.ExprAwait{}},
		{"!true", &ast.ExprUnary{}},
		{"1 + 2 * 3", &ast.ExprBinary{}},
		{"if a { 1 } else if b { 2 } else { 3 }", &ast.ExprIf{}},
		{"while x < 10 { x = x + 1; }", &ast.ExprWhile{}},
		{"loop { break; }", &ast.ExprLoop{}},
		{"return", &ast.ExprReturn{}},
		{"match n { 0 => 1, -1 => 2, x if x > 2 => 3, _ => { 4 } }", &ast.ExprMatch{}},
		{"{ let x = 1; x }", &ast.ExprBlock{}},
	}
	for _, test := range tests {
		test := test
		t.Run(test.src, func(t *testing.T) {
			t.Parallel()
			assert.IsType(t, test.expected, parseExpr(t, test.src))
		})
	}
}

func TestPrecedence(t *testing.T) {
	t.Parallel()

	// 1 + 2 * 3 == 7 || false  =>  ((1 + (2 * 3)) == 7) || false
	or := parseExpr(t, "1 + 2 * 3 == 7 || false").(*ast.ExprBinary)
	assert.Equal(t, ast.OpOr, or.Op)
	eq := or.Lhs.(*ast.ExprBinary)
	assert.Equal(t, ast.OpEq, eq.Op)
	add := eq.Lhs.(*ast.ExprBinary)
	assert.Equal(t, ast.OpAdd, add.Op)
	assert.Equal(t, ast.OpMul, add.Rhs.(*ast.ExprBinary).Op)

	// 1 - 2 - 3  =>  (1 - 2) - 3
	sub := parseExpr(t, "1 - 2 - 3").(*ast.ExprBinary)
	assert.IsType(t, &ast.ExprBinary{}, sub.Lhs)
	assert.IsType(t, &ast.LitInt{}, sub.Rhs)

	// a = b = 1  =>  a = (b = 1)
	assign := parseExpr(t, "a = b = 1").(*ast.ExprAssign)
	assert.IsType(t, &ast.ExprAssign{}, assign.Value)
}

func TestIndexSetParts(t *testing.T) {
	t.Parallel()

	set := parseExpr(t, "t[i] = v").(*ast.ExprIndexSet)
	assert.Equal(t, tokens.Item("t"), set.Target.(*ast.ExprPath).Item())
	assert.Equal(t, tokens.Item("i"), set.Index.(*ast.ExprPath).Item())
	assert.Equal(t, tokens.Item("v"), set.Value.(*ast.ExprPath).Item())
	assert.Equal(t, diag.NewSpan(0, 8), set.Span())
}

func TestLiterals(t *testing.T) {
	t.Parallel()

	assert.Equal(t, int64(255), parseExpr(t, "0xff").(*ast.LitInt).Value)
	assert.Equal(t, int64(1000000), parseExpr(t, "1_000_000").(*ast.LitInt).Value)
	assert.Equal(t, "a\tb", parseExpr(t, `"a\tb"`).(*ast.LitStr).Value)
	assert.False(t, parseExpr(t, "false").(*ast.LitBool).Value)

	neg := parseExpr(t, "-5").(*ast.ExprUnary)
	assert.Equal(t, ast.OpNeg, neg.Op)
}

func TestMatchArms(t *testing.T) {
	t.Parallel()

	m := parseExpr(t, "match n { 0 => a, -1 => b, x if x > 2 => c, true => d, _ => { e } }").(*ast.ExprMatch)
	require.Len(t, m.Arms, 5)
	assert.Equal(t, int64(0), m.Arms[0].Pat.(*ast.PatInt).Value)
	assert.Equal(t, int64(-1), m.Arms[1].Pat.(*ast.PatInt).Value)
	assert.Equal(t, tokens.Name("x"), m.Arms[2].Pat.(*ast.PatBinding).Ident.Name)
	assert.NotNil(t, m.Arms[2].Guard)
	assert.True(t, m.Arms[3].Pat.(*ast.PatBool).Value)
	assert.IsType(t, &ast.PatIgnore{}, m.Arms[4].Pat)
	assert.Nil(t, m.Arms[4].Comma)
}

func TestBlockStatements(t *testing.T) {
	t.Parallel()

	block := parseExpr(t, "{ let x = 1; if x { 2 } while false {} x = 3; x }").(*ast.ExprBlock)
	require.Len(t, block.Stmts, 5)
	assert.IsType(t, &ast.StmtLocal{}, block.Stmts[0])
	assert.Nil(t, block.Stmts[1].(*ast.StmtExpr).Semi)
	assert.Nil(t, block.Stmts[2].(*ast.StmtExpr).Semi)
	assert.NotNil(t, block.Stmts[3].(*ast.StmtExpr).Semi)
	assert.IsType(t, &ast.ExprPath{}, block.Tail())

	empty := parseExpr(t, "{ 1; }").(*ast.ExprBlock)
	assert.Nil(t, empty.Tail())
}

func TestExprErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		src  string
		diag *diag.Diag
	}{
		{"1 = 2", errors.ErrorIllegalAssignTarget},
		{"a::b = 2", errors.ErrorIllegalAssignTarget},
		{"f() = 2", errors.ErrorIllegalAssignTarget},
		{"1 +", errors.ErrorUnexpectedEOF},
		{"{ 1 2 }", errors.ErrorUnexpectedToken},
		{"99999999999999999999", errors.ErrorIntegerOutOfRange},
		{"x.foo", errors.ErrorUnexpectedToken},
		{"match x { + => 1 }", errors.ErrorExpectedPattern},
		{")", errors.ErrorExpectedExpr},
		{"{ let = 1; }", errors.ErrorExpectedIdent},
	}
	for _, test := range tests {
		test := test
		t.Run(test.src, func(t *testing.T) {
			t.Parallel()

			_, err := New(test.src).ParseExpr()
			require.Error(t, err)
			assert.True(t, errors.Is(err, test.diag), "unexpected error %v", err)
		})
	}
}
