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

// Pat is a pattern in a match arm.
type Pat interface {
	Node
	pat()
}

// PatIgnore is the wildcard `_`, matching anything.
type PatIgnore struct {
	Token Token
}

// PatBinding matches anything and binds it to a new local.
type PatBinding struct {
	Ident Ident
}

// PatInt matches an integer, optionally negated: `3`, `-1`.
type PatInt struct {
	Minus *Token
	Token Token
	Value int64
}

// PatBool matches `true` or `false`.
type PatBool struct {
	Token Token
	Value bool
}

func (*PatIgnore) pat()  {}
func (*PatBinding) pat() {}
func (*PatInt) pat()     {}
func (*PatBool) pat()    {}

func (node *PatIgnore) Span() diag.Span  { return node.Token.Span }
func (node *PatBinding) Span() diag.Span { return node.Ident.Span() }
func (node *PatBool) Span() diag.Span    { return node.Token.Span }

func (node *PatInt) Span() diag.Span {
	if node.Minus != nil {
		return node.Minus.Span.Join(node.Token.Span)
	}
	return node.Token.Span
}
