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

// compileExprIndexSet compiles `target[index] = value`.  The value is evaluated first, then the index, then the
// target, whatever the caller needs; the store itself leaves nothing behind, so a unit stands in when a value is
// needed.
func (fc *fnCompiler) compileExprIndexSet(set *ast.ExprIndexSet, needs Needs) error {
	if err := fc.compileOperands(set.Value, set.Index, set.Target); err != nil {
		return err
	}
	fc.push(bytecode.IndexSet{}, set.Span())
	fc.produce(needs, set.Span())
	return nil
}
