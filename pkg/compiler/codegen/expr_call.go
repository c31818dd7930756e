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
	"github.com/pulumi/rune/pkg/tokens"
)

// compileExprCall calls a function by the hash of its path.  Whether the function exists is only checked when the
// unit is linked.
func (fc *fnCompiler) compileExprCall(call *ast.ExprCall, needs Needs) error {
	if err := fc.compileOperands(itemExprs(call.Args)...); err != nil {
		return err
	}
	item := call.Fn.Item()
	fc.pushWithComment(bytecode.Call{Hash: tokens.FunctionHash(item), Args: len(call.Args)}, call.Span(), item.String())
	fc.discard(needs, call.Span())
	return nil
}
