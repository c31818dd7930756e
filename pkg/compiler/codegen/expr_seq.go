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
)

func (fc *fnCompiler) compileExprTuple(tuple *ast.ExprTuple, needs Needs) error {
	if err := fc.compileOperands(itemExprs(tuple.Items)...); err != nil {
		return err
	}
	fc.push(bytecode.Tuple{Count: len(tuple.Items)}, tuple.Span())
	fc.discard(needs, tuple.Span())
	return nil
}

func (fc *fnCompiler) compileExprVec(vec *ast.ExprVec, needs Needs) error {
	if err := fc.compileOperands(itemExprs(vec.Items)...); err != nil {
		return err
	}
	fc.push(bytecode.Vec{Count: len(vec.Items)}, vec.Span())
	fc.discard(needs, vec.Span())
	return nil
}
