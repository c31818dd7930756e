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
	"github.com/pulumi/rune/pkg/compiler/ast"
)

// compileExprIf compiles a conditional.  Both branches are compiled under the caller's needs; a missing else branch
// produces unit.
func (fc *fnCompiler) compileExprIf(expr *ast.ExprIf, needs Needs) error {
	otherwise := fc.asm.NewLabel("if_else")
	end := fc.asm.NewLabel("if_end")

	if err := fc.compileExpr(expr.Cond, NeedsValue); err != nil {
		return err
	}
	fc.jumpIfNot(otherwise, expr.Cond.Span())
	depth := fc.depth

	if err := fc.compileExpr(expr.Then, needs); err != nil {
		return err
	}
	fc.jump(end, expr.Then.Close.Span)

	if err := fc.label(otherwise); err != nil {
		return err
	}
	fc.depth = depth
	if expr.Else != nil {
		if err := fc.compileExpr(expr.Else.Expr, needs); err != nil {
			return err
		}
	} else {
		fc.produce(needs, expr.Span())
	}
	return fc.label(end)
}
