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

package ast

import (
	"github.com/pulumi/rune/pkg/diag"
)

// Decl is a top-level declaration.
type Decl interface {
	Node
	// NeedsTerminator is true if the declaration is not self-delimiting and must be followed by a `;`.
	NeedsTerminator() bool
	decl()
}

// DeclStruct is a struct declaration: `struct Foo`, `struct Foo(a, b)` or `struct Foo { a, b }`.
type DeclStruct struct {
	Struct Token
	Ident  Ident
	Body   DeclStructBody
}

var _ Decl = (*DeclStruct)(nil)

func (node *DeclStruct) decl() {}

func (node *DeclStruct) Span() diag.Span {
	switch body := node.Body.(type) {
	case *TupleBody:
		return node.Struct.Span.Join(body.Span())
	case *StructBody:
		return node.Struct.Span.Join(body.Span())
	}
	return node.Struct.Span.Join(node.Ident.Span())
}

func (node *DeclStruct) NeedsTerminator() bool {
	_, empty := node.Body.(*EmptyBody)
	return empty
}

// Fields returns the fields of the struct, in declaration order; an empty body has none.
func (node *DeclStruct) Fields() []Field {
	switch body := node.Body.(type) {
	case *TupleBody:
		return body.Fields
	case *StructBody:
		return body.Fields
	}
	return nil
}

// DeclStructBody is one of *EmptyBody, *TupleBody or *StructBody.
type DeclStructBody interface {
	structBody()
}

// EmptyBody is the body of a unit-like struct.  It consumes no tokens and so has no span of its own.
type EmptyBody struct{}

// TupleBody is a parenthesized list of positional fields.
type TupleBody struct {
	Open   Token
	Fields []Field
	Close  Token
}

func (body *TupleBody) Span() diag.Span { return body.Open.Span.Join(body.Close.Span) }

// StructBody is a brace-delimited list of named fields.
type StructBody struct {
	Open   Token
	Fields []Field
	Close  Token
}

func (body *StructBody) Span() diag.Span { return body.Open.Span.Join(body.Close.Span) }

func (*EmptyBody) structBody()  {}
func (*TupleBody) structBody()  {}
func (*StructBody) structBody() {}

// DeclFn is a function declaration: `fn name(args) { body }`.
type DeclFn struct {
	Fn    Token
	Ident Ident
	Open  Token
	Args  []Field
	Close Token
	Body  *ExprBlock
}

var _ Decl = (*DeclFn)(nil)

func (node *DeclFn) decl()                 {}
func (node *DeclFn) Span() diag.Span       { return node.Fn.Span.Join(node.Body.Span()) }
func (node *DeclFn) NeedsTerminator() bool { return false }

// FileDecl is a declaration along with the terminator that followed it, if any.
type FileDecl struct {
	Decl Decl
	Semi *Token
}

// File is a whole source file.
type File struct {
	Decls []FileDecl
}

var _ Node = (*File)(nil)

func (node *File) Span() diag.Span {
	if len(node.Decls) == 0 {
		return diag.EmptySpan
	}
	first := node.Decls[0].Decl.Span()
	last := node.Decls[len(node.Decls)-1]
	if last.Semi != nil {
		return first.Join(last.Semi.Span)
	}
	return first.Join(last.Decl.Span())
}
