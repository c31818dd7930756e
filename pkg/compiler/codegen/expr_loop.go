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
	"github.com/pulumi/rune/pkg/bytecode"
	"github.com/pulumi/rune/pkg/compiler/asm"
	"github.com/pulumi/rune/pkg/compiler/ast"
	"github.com/pulumi/rune/pkg/compiler/errors"
)

func (fc *fnCompiler) compileExprWhile(expr *ast.ExprWhile, needs Needs) error {
	start := fc.asm.NewLabel("while_start")
	end := fc.asm.NewLabel("while_end")

	if err := fc.label(start); err != nil {
		return err
	}
	if err := fc.compileExpr(expr.Cond, NeedsValue); err != nil {
		return err
	}
	fc.jumpIfNot(end, expr.Cond.Span())
	if err := fc.compileLoopBody(expr.Body, end); err != nil {
		return err
	}
	fc.jump(start, expr.Body.Close.Span)

	if err := fc.label(end); err != nil {
		return err
	}
	fc.produce(needs, expr.Span())
	return nil
}

func (fc *fnCompiler) compileExprLoop(expr *ast.ExprLoop, needs Needs) error {
	start := fc.asm.NewLabel("loop_start")
	end := fc.asm.NewLabel("loop_end")

	if err := fc.label(start); err != nil {
		return err
	}
	if err := fc.compileLoopBody(expr.Body, end); err != nil {
		return err
	}
	fc.jump(start, expr.Body.Close.Span)

	if err := fc.label(end); err != nil {
		return err
	}
	fc.produce(needs, expr.Span())
	return nil
}

func (fc *fnCompiler) compileLoopBody(body *ast.ExprBlock, end asm.Label) error {
	fc.loops = append(fc.loops, loop{End: end, Depth: fc.depth})
	err := fc.compileExpr(body, NeedsNone)
	fc.loops = fc.loops[:len(fc.loops)-1]
	return err
}

// compileExprBreak unwinds everything pushed since the innermost loop was entered and jumps past its end.  The code
// after a break is unreachable, but it is still compiled as if the break had produced what its caller needs.
func (fc *fnCompiler) compileExprBreak(expr *ast.ExprBreak, needs Needs) error {
	if len(fc.loops) == 0 {
		return errors.New(errors.ErrorBreakOutsideLoop, expr.Span())
	}
	l := fc.loops[len(fc.loops)-1]

	depth := fc.depth
	if n := depth - l.Depth; n > 0 {
		fc.push(bytecode.PopN{Count: n}, expr.Span())
	}
	fc.jump(l.End, expr.Span())
	fc.depth = depth
	fc.produce(needs, expr.Span())
	return nil
}
