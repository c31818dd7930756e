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

package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pulumi/rune/pkg/compiler/ast"
	"github.com/pulumi/rune/pkg/compiler/errors"
	"github.com/pulumi/rune/pkg/diag"
	"github.com/pulumi/rune/pkg/tokens"
)

func TestStructBodies(t *testing.T) {
	t.Parallel()

	tests := []struct {
		src    string
		body   ast.DeclStructBody
		fields []tokens.Name
		span   diag.Span
	}{
		{"struct Foo", &ast.EmptyBody{}, []tokens.Name{}, diag.NewSpan(0, 10)},
		{"struct Foo(a, b, c)", &ast.TupleBody{}, []tokens.Name{"a", "b", "c"}, diag.NewSpan(0, 19)},
		{"struct Foo{a, b, c}", &ast.StructBody{}, []tokens.Name{"a", "b", "c"}, diag.NewSpan(0, 19)},
		{"struct Foo(a, b,)", &ast.TupleBody{}, []tokens.Name{"a", "b"}, diag.NewSpan(0, 17)},
		{"struct Foo { a, }", &ast.StructBody{}, []tokens.Name{"a"}, diag.NewSpan(0, 17)},
		{"struct Foo()", &ast.TupleBody{}, []tokens.Name{}, diag.NewSpan(0, 12)},
	}
	for _, test := range tests {
		test := test
		t.Run(test.src, func(t *testing.T) {
			t.Parallel()

			p := New(test.src)
			decl, err := p.ParseDeclStruct()
			require.NoError(t, err)
			assert.IsType(t, test.body, decl.Body)
			assert.Equal(t, test.fields, ast.FieldNames(decl.Fields()))
			assert.Equal(t, test.span, decl.Span())
			assert.Equal(t, isEmpty(test.body), decl.NeedsTerminator())

			eof, err := p.IsEOF()
			require.NoError(t, err)
			assert.True(t, eof)
		})
	}
}

func isEmpty(body ast.DeclStructBody) bool {
	_, ok := body.(*ast.EmptyBody)
	return ok
}

func TestEmptyBodyConsumesNothing(t *testing.T) {
	t.Parallel()

	p := New("struct Foo;")
	decl, err := p.ParseDeclStruct()
	require.NoError(t, err)
	assert.IsType(t, &ast.EmptyBody{}, decl.Body)

	next, err := p.PeekKind(ast.SemiKind)
	require.NoError(t, err)
	assert.True(t, next)
}

func TestTrailingCommaFields(t *testing.T) {
	t.Parallel()

	decl, err := New("struct Foo(a, b,)").ParseDeclStruct()
	require.NoError(t, err)
	body := decl.Body.(*ast.TupleBody)
	require.Len(t, body.Fields, 2)
	assert.NotNil(t, body.Fields[0].Comma)
	assert.NotNil(t, body.Fields[1].Comma)
	assert.Equal(t, diag.NewSpan(10, 11), body.Open.Span)
	assert.Equal(t, diag.NewSpan(16, 17), body.Close.Span)

	decl, err = New("struct Foo(a, b)").ParseDeclStruct()
	require.NoError(t, err)
	body = decl.Body.(*ast.TupleBody)
	require.Len(t, body.Fields, 2)
	assert.Nil(t, body.Fields[1].Comma)
}

func TestStructBodyErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		src  string
		diag *diag.Diag
		msg  string
	}{
		// A missing comma ends the list, so the next identifier is where the close should be.
		{"struct Foo(a b)", errors.ErrorUnexpectedToken, "Unexpected token identifier; expected `)`"},
		{"struct Foo{a, b", errors.ErrorUnexpectedEOF, "Unexpected end of input; expected `}`"},
		{"struct Foo(a, 1)", errors.ErrorExpectedIdent, "Expected an identifier; got integer literal"},
		{"struct Foo{a ]", errors.ErrorUnexpectedToken, "Unexpected token `]`; expected `}`"},
		{"struct (a)", errors.ErrorExpectedIdent, "Expected an identifier; got `(`"},
	}
	for _, test := range tests {
		test := test
		t.Run(test.src, func(t *testing.T) {
			t.Parallel()

			_, err := New(test.src).ParseDeclStruct()
			require.Error(t, err)
			assert.True(t, errors.Is(err, test.diag), "unexpected error %v", err)
			assert.Equal(t, test.msg, err.Error())
		})
	}
}

func TestParseFile(t *testing.T) {
	t.Parallel()

	file, err := New(`
struct Unit;
struct Pair(a, b);
struct Point { x, y }
fn main() { let p = Pair(1, 2); p }
`).ParseFile()
	require.NoError(t, err)
	require.Len(t, file.Decls, 4)

	assert.NotNil(t, file.Decls[0].Semi)
	assert.NotNil(t, file.Decls[1].Semi)
	assert.Nil(t, file.Decls[2].Semi)
	fn := file.Decls[3].Decl.(*ast.DeclFn)
	assert.Equal(t, tokens.Name("main"), fn.Ident.Name)
	assert.Empty(t, fn.Args)
	assert.IsType(t, &ast.ExprPath{}, fn.Body.Tail())
}

func TestUnterminatedEmptyStruct(t *testing.T) {
	t.Parallel()

	_, err := New("struct Foo fn main() {}").ParseFile()
	assert.True(t, errors.Is(err, errors.ErrorUnexpectedToken))
	assert.Equal(t, "Unexpected token `fn`; expected `;`", err.Error())

	_, err = New("struct Foo").ParseFile()
	assert.True(t, errors.Is(err, errors.ErrorUnexpectedEOF))
}

func TestExpectedDecl(t *testing.T) {
	t.Parallel()

	_, err := New("let x = 1;").ParseFile()
	assert.True(t, errors.Is(err, errors.ErrorExpectedDecl))
}
