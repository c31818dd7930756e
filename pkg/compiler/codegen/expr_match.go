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

	"github.com/pulumi/rune/pkg/bytecode"
	"github.com/pulumi/rune/pkg/compiler/asm"
	"github.com/pulumi/rune/pkg/compiler/ast"
	"github.com/pulumi/rune/pkg/compiler/errors"
)

// compileExprMatch keeps the scrutinee on the stack as an anonymous local while the arms are tried in order.  An arm
// that does not match jumps to the test of the next one; a body jumps to the shared end, where the scrutinee is
// removed from beneath the result.  Falling through every arm panics.
func (fc *fnCompiler) compileExprMatch(match *ast.ExprMatch, needs Needs) error {
	if err := fc.compileExpr(match.Expr, NeedsValue); err != nil {
		return err
	}
	scrutinee := fc.depth - 1
	base := fc.depth
	end := fc.asm.NewLabel("match_end")

	for i := range match.Arms {
		next := fc.asm.NewLabel("match_next")
		if err := fc.compileMatchArm(&match.Arms[i], scrutinee, next, end, needs); err != nil {
			return err
		}
		if err := fc.label(next); err != nil {
			return err
		}
		fc.depth = base
	}
	fc.push(bytecode.Panic{Reason: "no match arm matched"}, match.Span())

	fc.depth = base
	if needs.Value() {
		fc.depth++
	}
	if err := fc.label(end); err != nil {
		return err
	}
	if needs.Value() {
		fc.pushWithComment(bytecode.Clean{Count: 1}, match.Close.Span, "scrutinee")
	} else {
		fc.pushWithComment(bytecode.Pop{}, match.Close.Span, "scrutinee")
	}
	return nil
}

// compileMatchArm tests the pattern and guard of an arm, jumping to next when either fails with the stack as it was
// before the arm.  Bindings live beneath the body's value until the body is done.
func (fc *fnCompiler) compileMatchArm(arm *ast.MatchArm, scrutinee int, next, end asm.Label, needs Needs) error {
	mark := fc.locals.mark()
	bindings := 0

	span := arm.Pat.Span()
	switch pat := arm.Pat.(type) {
	case *ast.PatIgnore:
	case *ast.PatBinding:
		fc.pushWithComment(bytecode.Copy{Offset: scrutinee}, span, pat.Ident.Name.String())
		fc.locals.declare(pat.Ident.Name, fc.depth-1)
		bindings = 1
	case *ast.PatInt:
		body := fc.asm.NewLabel("match_arm")
		fc.push(bytecode.Copy{Offset: scrutinee}, span)
		fc.jumpIfBranch(pat.Value, body, span)
		fc.push(bytecode.Pop{}, span)
		fc.jump(next, span)
		if err := fc.label(body); err != nil {
			return err
		}
	case *ast.PatBool:
		fc.push(bytecode.Copy{Offset: scrutinee}, span)
		if pat.Value {
			fc.jumpIfNot(next, span)
		} else {
			fc.jumpIf(next, span)
		}
	default:
		return errors.New(errors.ErrorUnsupportedPattern, span, fmt.Sprintf("%T", arm.Pat))
	}

	if arm.Guard != nil {
		if err := fc.compileExpr(arm.Guard.Expr, NeedsValue); err != nil {
			return err
		}
		fc.popAndJumpIfNot(bindings, next, arm.Guard.Expr.Span())
	}

	if err := fc.compileExpr(arm.Body, needs); err != nil {
		return err
	}
	fc.clean(bindings, needs, arm.Body.Span())
	fc.locals.truncate(mark)
	fc.jump(end, arm.Span())
	return nil
}
