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

// Package ast contains the syntax tree of the language.  Every node owns its children exclusively, so that the tree
// never shares or cycles, and every node keeps the tokens it was parsed from so that its span can be recomputed as the
// join of its first and last constituent.
//
// Each syntactic category (declarations, struct bodies, expressions, statements, patterns) is a closed set of
// concrete types behind an interface with an unexported marker method; consumers switch over the concrete types.
package ast

import (
	"github.com/pulumi/rune/pkg/diag"
	"github.com/pulumi/rune/pkg/tokens"
)

// Node is implemented by every syntax tree node.
type Node interface {
	// Span returns the source range covered by this node.
	Span() diag.Span
}

// Ident is an identifier along with its source token.
type Ident struct {
	Token Token
	Name  tokens.Name
}

var _ Node = (*Ident)(nil)

func (node *Ident) Span() diag.Span { return node.Token.Span }

// Field is an identifier in a comma separated list (struct fields, function arguments).  The comma is kept per field
// because its absence is what ends the list.
type Field struct {
	Ident Ident
	Comma *Token
}

func (node *Field) Span() diag.Span {
	if node.Comma != nil {
		return node.Ident.Span().Join(node.Comma.Span)
	}
	return node.Ident.Span()
}

// FieldNames returns the names of the given fields, in order.
func FieldNames(fields []Field) []tokens.Name {
	names := make([]tokens.Name, len(fields))
	for i, f := range fields {
		names[i] = f.Ident.Name
	}
	return names
}
