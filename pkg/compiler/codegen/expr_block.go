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
	"github.com/pulumi/rune/pkg/util/contract"
)

// compileExprBlock compiles the statements of a block in a scope of their own.  Every `let` leaves its value on the
// stack as a new local; they are all removed when the block is left, from beneath the block's value if it has one.
func (fc *fnCompiler) compileExprBlock(block *ast.ExprBlock, needs Needs) error {
	mark := fc.locals.mark()
	base := fc.depth
	tail := block.Tail()

	for i, stmt := range block.Stmts {
		switch s := stmt.(type) {
		case *ast.StmtLocal:
			if err := fc.compileExpr(s.Expr, NeedsValue); err != nil {
				return err
			}
			fc.locals.declare(s.Ident.Name, fc.depth-1)
		case *ast.StmtExpr:
			stmtNeeds := NeedsNone
			if tail != nil && i == len(block.Stmts)-1 {
				stmtNeeds = needs
			}
			if err := fc.compileExpr(s.Expr, stmtNeeds); err != nil {
				return err
			}
		default:
			contract.Failf("Unrecognized statement %T", stmt)
		}
	}
	if tail == nil {
		fc.produce(needs, block.Close.Span)
	}

	count := fc.locals.mark() - mark
	fc.clean(count, needs, block.Close.Span)
	fc.locals.truncate(mark)

	want := base
	if needs.Value() {
		want++
	}
	contract.Assertf(fc.depth == want, "block at %v: depth %d, expected %d", block.Span(), fc.depth, want)
	return nil
}
