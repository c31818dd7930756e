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

package codegen

import (
	"fmt"

	"github.com/golang/glog"

	"github.com/pulumi/rune/pkg/compiler/ast"
	"github.com/pulumi/rune/pkg/compiler/errors"
)

// compileExpr compiles an expression so that, on success, the stack holds exactly one more value if needs is
// NeedsValue and exactly as many values as before otherwise.
func (fc *fnCompiler) compileExpr(expr ast.Expr, needs Needs) error {
	if glog.V(9) {
		glog.V(9).Infof("Compiling %T at %v (needs=%v, depth=%d)", expr, expr.Span(), needs, fc.depth)
	}
	switch e := expr.(type) {
	case *ast.LitUnit:
		return fc.compileLitUnit(e, needs)
	case *ast.LitBool:
		return fc.compileLitBool(e, needs)
	case *ast.LitInt:
		return fc.compileLitInt(e, needs)
	case *ast.LitStr:
		return fc.compileLitStr(e, needs)
	case *ast.ExprPath:
		return fc.compileExprPath(e, needs)
	case *ast.ExprGroup:
		return fc.compileExpr(e.Expr, needs)
	case *ast.ExprTuple:
		return fc.compileExprTuple(e, needs)
	case *ast.ExprVec:
		return fc.compileExprVec(e, needs)
	case *ast.ExprUnary:
		return fc.compileExprUnary(e, needs)
	case *ast.ExprBinary:
		return fc.compileExprBinary(e, needs)
	case *ast.ExprAssign:
		return fc.compileExprAssign(e, needs)
	case *ast.ExprIndexGet:
		return fc.compileExprIndexGet(e, needs)
	case *ast.ExprIndexSet:
		return fc.compileExprIndexSet(e, needs)
	case *ast.ExprAwait:
		return fc.compileExprAwait(e, needs)
	case *ast.ExprCall:
		return fc.compileExprCall(e, needs)
	case *ast.ExprBlock:
		return fc.compileExprBlock(e, needs)
	case *ast.ExprIf:
		return fc.compileExprIf(e, needs)
	case *ast.ExprWhile:
		return fc.compileExprWhile(e, needs)
	case *ast.ExprLoop:
		return fc.compileExprLoop(e, needs)
	case *ast.ExprBreak:
		return fc.compileExprBreak(e, needs)
	case *ast.ExprReturn:
		return fc.compileExprReturn(e, needs)
	case *ast.ExprMatch:
		return fc.compileExprMatch(e, needs)
	default:
		return errors.New(errors.ErrorUnsupportedExpr, expr.Span(), fmt.Sprintf("%T", expr))
	}
}

// compileOperands compiles each expression under NeedsValue, left to right.
func (fc *fnCompiler) compileOperands(exprs ...ast.Expr) error {
	for _, expr := range exprs {
		if err := fc.compileExpr(expr, NeedsValue); err != nil {
			return err
		}
	}
	return nil
}

func itemExprs(items []ast.ExprItem) []ast.Expr {
	exprs := make([]ast.Expr, len(items))
	for i, item := range items {
		exprs[i] = item.Expr
	}
	return exprs
}
