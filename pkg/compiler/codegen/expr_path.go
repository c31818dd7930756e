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
	"github.com/pulumi/rune/pkg/tokens"
)

// compileExprPath reads a local variable.  A path naming an empty struct constructs it instead.
func (fc *fnCompiler) compileExprPath(path *ast.ExprPath, needs Needs) error {
	if path.IsLocal() {
		if slot, has := fc.locals.lookup(path.First.Name); has {
			if needs.Value() {
				fc.pushWithComment(bytecode.Copy{Offset: slot}, path.Span(), path.First.Name.String())
			}
			return nil
		}
	}

	item := path.Item()
	if st, has := fc.unit.structs[item]; has && st.Kind == bytecode.EmptyStruct {
		fc.pushWithComment(bytecode.Call{Hash: tokens.FunctionHash(item), Args: 0}, path.Span(), item.String())
		fc.discard(needs, path.Span())
		return nil
	}
	return errors.New(errors.ErrorMissingLocal, path.Span(), item)
}
