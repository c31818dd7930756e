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
	"github.com/pulumi/rune/pkg/compiler/errors"
)

// compileExprAssign stores a value into an existing local.  Assignment has no value of its own.
func (fc *fnCompiler) compileExprAssign(assign *ast.ExprAssign, needs Needs) error {
	name := assign.Target.First.Name
	slot, has := fc.locals.lookup(name)
	if !assign.Target.IsLocal() || !has {
		return errors.New(errors.ErrorMissingLocal, assign.Target.Span(), assign.Target.Item())
	}

	if err := fc.compileExpr(assign.Value, NeedsValue); err != nil {
		return err
	}
	fc.pushWithComment(bytecode.Replace{Offset: slot}, assign.Span(), name.String())
	fc.produce(needs, assign.Span())
	return nil
}
