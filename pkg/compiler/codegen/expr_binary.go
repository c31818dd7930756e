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
	"github.com/pulumi/rune/pkg/compiler/ast"
	"github.com/pulumi/rune/pkg/util/contract"
)

var binaryOperators = map[ast.BinOp]bytecode.Operator{
	ast.OpAdd: bytecode.Add,
	ast.OpSub: bytecode.Sub,
	ast.OpMul: bytecode.Mul,
	ast.OpDiv: bytecode.Div,
	ast.OpRem: bytecode.Rem,
	ast.OpEq:  bytecode.Eq,
	ast.OpNeq: bytecode.Neq,
	ast.OpLt:  bytecode.Lt,
	ast.OpLte: bytecode.Lte,
	ast.OpGt:  bytecode.Gt,
	ast.OpGte: bytecode.Gte,
}

func (fc *fnCompiler) compileExprUnary(unary *ast.ExprUnary, needs Needs) error {
	if err := fc.compileExpr(unary.Expr, NeedsValue); err != nil {
		return err
	}
	switch unary.Op {
	case ast.OpNot:
		fc.push(bytecode.Not{}, unary.Span())
	case ast.OpNeg:
		fc.push(bytecode.Neg{}, unary.Span())
	default:
		contract.Failf("Unrecognized unary operator %v", unary.Op)
	}
	fc.discard(needs, unary.Span())
	return nil
}

func (fc *fnCompiler) compileExprBinary(binary *ast.ExprBinary, needs Needs) error {
	if binary.Op.IsShortCircuit() {
		return fc.compileShortCircuit(binary, needs)
	}
	op, has := binaryOperators[binary.Op]
	contract.Assertf(has, "Unrecognized binary operator %v", binary.Op)

	if err := fc.compileOperands(binary.Lhs, binary.Rhs); err != nil {
		return err
	}
	fc.push(bytecode.Op{Op: op}, binary.Span())
	fc.discard(needs, binary.Span())
	return nil
}

// compileShortCircuit compiles `a && b` and `a || b`, evaluating the right hand side only when the left does not
// already decide the result.
func (fc *fnCompiler) compileShortCircuit(binary *ast.ExprBinary, needs Needs) error {
	and := binary.Op == ast.OpAnd
	name := "or_short"
	if and {
		name = "and_short"
	}
	short := fc.asm.NewLabel(name)
	end := fc.asm.NewLabel(name + "_end")

	if err := fc.compileExpr(binary.Lhs, NeedsValue); err != nil {
		return err
	}
	if and {
		fc.jumpIfNot(short, binary.OpToken.Span)
	} else {
		fc.jumpIf(short, binary.OpToken.Span)
	}
	depth := fc.depth
	if err := fc.compileExpr(binary.Rhs, NeedsValue); err != nil {
		return err
	}
	fc.jump(end, binary.Span())

	if err := fc.label(short); err != nil {
		return err
	}
	fc.depth = depth
	fc.push(bytecode.Bool{Value: !and}, binary.OpToken.Span)
	if err := fc.label(end); err != nil {
		return err
	}
	fc.discard(needs, binary.Span())
	return nil
}
