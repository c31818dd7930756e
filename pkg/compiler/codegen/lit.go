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

// Literals have no side effects, so nothing is emitted when their value is not needed.

func (fc *fnCompiler) compileLitUnit(lit *ast.LitUnit, needs Needs) error {
	fc.produce(needs, lit.Span())
	return nil
}

func (fc *fnCompiler) compileLitBool(lit *ast.LitBool, needs Needs) error {
	if needs.Value() {
		fc.push(bytecode.Bool{Value: lit.Value}, lit.Span())
	}
	return nil
}

func (fc *fnCompiler) compileLitInt(lit *ast.LitInt, needs Needs) error {
	if needs.Value() {
		fc.push(bytecode.Integer{Value: lit.Value}, lit.Span())
	}
	return nil
}

func (fc *fnCompiler) compileLitStr(lit *ast.LitStr, needs Needs) error {
	if needs.Value() {
		fc.push(bytecode.String{Value: lit.Value}, lit.Span())
	}
	return nil
}
