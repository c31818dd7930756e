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

// compileExprAwait suspends on the operand; the resumed result replaces it on the stack.
func (fc *fnCompiler) compileExprAwait(await *ast.ExprAwait, needs Needs) error {
	if err := fc.compileExpr(await.Expr, NeedsValue); err != nil {
		return err
	}
	fc.push(bytecode.Await{}, await.Span())
	fc.discard(needs, await.Span())
	return nil
}
