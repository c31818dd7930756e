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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pulumi/rune/pkg/bytecode"
	"github.com/pulumi/rune/pkg/compiler/ast"
	"github.com/pulumi/rune/pkg/compiler/errors"
	"github.com/pulumi/rune/pkg/compiler/parser"
	"github.com/pulumi/rune/pkg/diag"
	"github.com/pulumi/rune/pkg/tokens"
)

func parseFile(t *testing.T, src string) *ast.File {
	file, err := parser.New(src).ParseFile()
	require.NoError(t, err)
	return file
}

func TestCompileFile(t *testing.T) {
	t.Parallel()

	out, err := CompileFile(parseFile(t, `
fn main() {
    let p = Pair(1, 2);
    let u = Marker;
    add(p, u)
}

struct Marker;
struct Pair(first, second)
struct Named { x, y }

fn add(a, b) { a + b }
`))
	require.NoError(t, err)

	require.Len(t, out.Structs, 3)
	assert.Equal(t, bytecode.EmptyStruct, out.Structs[0].Kind)
	assert.Equal(t, bytecode.TupleStruct, out.Structs[1].Kind)
	assert.Equal(t, []tokens.Name{"first", "second"}, out.Structs[1].Fields)
	assert.Equal(t, bytecode.NamedStruct, out.Structs[2].Kind)

	var names []tokens.Item
	for _, fn := range out.Functions {
		names = append(names, fn.Name)
	}
	assert.Equal(t, []tokens.Item{"Marker", "Pair", "main", "add"}, names)

	pair, has := out.Function("Pair")
	require.True(t, has)
	assert.Equal(t, 2, pair.Args)
	assert.Equal(t, []string{"typed-tuple " + tokens.TypeHash("Pair").String() + ", 2", "return"}, instStrings(pair.Asm))

	add, has := out.Function("add")
	require.True(t, has)
	assert.Equal(t, []string{"copy 0", "copy 1", "op add", "return"}, instStrings(add.Asm))

	for _, fn := range out.Functions {
		info, err := analyze(fn.Asm, fn.Args)
		require.NoError(t, err, "fn %v", fn.Name)
		assert.Equal(t, -1, info.Exit, "fn %v", fn.Name)
	}
}

func TestEmptyStructAsValue(t *testing.T) {
	t.Parallel()

	out, err := CompileFile(parseFile(t, "struct Marker; fn f() { Marker; 1 }"))
	require.NoError(t, err)
	f, has := out.Function("f")
	require.True(t, has)
	assert.Equal(t, []string{
		"call " + tokens.FunctionHash("Marker").String() + ", 0",
		"pop",
		"integer 1",
		"return",
	}, instStrings(f.Asm))
}

func TestLabelsThreadAcrossFunctions(t *testing.T) {
	t.Parallel()

	c := New(10)
	out, err := c.CompileFile(parseFile(t, "fn a(x) { if x { 1 } else { 2 } } fn b(x) { while x { } }"))
	require.NoError(t, err)

	a, _ := out.Function("a")
	b, _ := out.Function("b")
	assert.Equal(t, 12, a.Asm.LabelCount())
	assert.Equal(t, 14, b.Asm.LabelCount())
	assert.Equal(t, 14, out.LabelCount)
	assert.Contains(t, instStrings(b.Asm), "jump-if-not while_end_13")
}

func TestCompileBody(t *testing.T) {
	t.Parallel()

	block, err := parser.New("{ let x = 40; x + 2 }").ParseExprBlock()
	require.NoError(t, err)

	c := New(0)
	fn, err := c.CompileBody("repl", block)
	require.NoError(t, err)
	assert.Equal(t, 0, fn.Args)
	assert.Equal(t, []string{"integer 40", "copy 0", "integer 2", "op add", "clean 1", "return"}, instStrings(fn.Asm))

	_, err = c.CompileBody("repl", block)
	assert.True(t, errors.Is(err, errors.ErrorDuplicateFunction))
}

func TestDeclarationErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		src  string
		diag *diag.Diag
		args []interface{}
		span diag.Span
	}{
		{"fn f() { 1 } fn f() { 2 }", errors.ErrorDuplicateFunction, []interface{}{tokens.Item("f")}, diag.NewSpan(13, 25)},
		{"struct A; struct A(x)", errors.ErrorDuplicateStruct, []interface{}{tokens.Item("A")}, diag.NewSpan(17, 18)},
		{"struct A(x, x)", errors.ErrorDuplicateField, []interface{}{tokens.Name("x"), tokens.Item("A")}, diag.NewSpan(12, 13)},
		{"fn f(a, a) { a }", errors.ErrorDuplicateArgument, []interface{}{tokens.Name("a"), tokens.Item("f")}, diag.NewSpan(8, 9)},
		{"struct A(x) fn A(x) { x }", errors.ErrorDuplicateFunction, []interface{}{tokens.Item("A")}, diag.NewSpan(12, 25)},
	}
	for _, test := range tests {
		test := test
		t.Run(test.src, func(t *testing.T) {
			t.Parallel()

			_, err := CompileFile(parseFile(t, test.src))
			require.Error(t, err)
			e, ok := errors.As(err)
			require.True(t, ok)
			assert.Equal(t, test.diag.ID, e.Diag.ID)
			assert.Equal(t, test.args, e.Args)
			assert.Equal(t, test.span, e.Span())
		})
	}
}
