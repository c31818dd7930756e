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
	"reflect"

	"github.com/golang/glog"

	"github.com/pulumi/rune/pkg/util/contract"
)

// Visitor is a pluggable interface invoked during walks of an AST.
type Visitor interface {
	// Visit visits the given AST node.  If it returns nil, the calling code will stop visiting immediately after the
	// call to Visit returns.  If it returns a non-nil Visitor, the calling code will continue visiting.
	Visit(node Node) Visitor

	// After is invoked after visitation of a given node.
	After(node Node)
}

// Walk visits an AST node and all of its children.  It walks the AST in depth-first order, visiting children in the
// order in which the compiler evaluates them.
func Walk(v Visitor, node Node) {
	contract.Requiref(node != nil, "node", "!= nil")

	if glog.V(9) {
		glog.V(9).Infof("AST visitor walk: pre-visit %v", reflect.TypeOf(node))
	}

	// First visit the node; only proceed if the visitor says to do so (and use its returned visitor below).
	if v = v.Visit(node); v == nil {
		return
	}

	switch n := node.(type) {
	// Nodes
	case *Ident, *LitUnit, *LitBool, *LitInt, *LitStr, *ExprBreak, *PatIgnore, *PatInt, *PatBool:
		// No children, nothing to do.
	case *Field:
		Walk(v, &n.Ident)
	case *File:
		for _, d := range n.Decls {
			Walk(v, d.Decl)
		}

	// Declarations
	case *DeclStruct:
		Walk(v, &n.Ident)
		fields := n.Fields()
		for i := range fields {
			Walk(v, &fields[i])
		}
	case *DeclFn:
		Walk(v, &n.Ident)
		for i := range n.Args {
			Walk(v, &n.Args[i])
		}
		Walk(v, n.Body)

	// Statements
	case *StmtLocal:
		Walk(v, n.Expr)
		Walk(v, &n.Ident)
	case *StmtExpr:
		Walk(v, n.Expr)

	// Expressions
	case *ExprPath:
		Walk(v, &n.First)
		for i := range n.Rest {
			Walk(v, &n.Rest[i].Ident)
		}
	case *ExprGroup:
		Walk(v, n.Expr)
	case *ExprTuple:
		walkItems(v, n.Items)
	case *ExprVec:
		walkItems(v, n.Items)
	case *ExprUnary:
		Walk(v, n.Expr)
	case *ExprBinary:
		Walk(v, n.Lhs)
		Walk(v, n.Rhs)
	case *ExprAssign:
		Walk(v, n.Value)
		Walk(v, n.Target)
	case *ExprIndexGet:
		Walk(v, n.Target)
		Walk(v, n.Index)
	case *ExprIndexSet:
		Walk(v, n.Value)
		Walk(v, n.Index)
		Walk(v, n.Target)
	case *ExprAwait:
		Walk(v, n.Expr)
	case *ExprCall:
		Walk(v, n.Fn)
		walkItems(v, n.Args)
	case *ExprBlock:
		for _, stmt := range n.Stmts {
			Walk(v, stmt)
		}
	case *ExprIf:
		Walk(v, n.Cond)
		Walk(v, n.Then)
		if n.Else != nil {
			Walk(v, n.Else)
		}
	case *ExprElse:
		Walk(v, n.Expr)
	case *ExprWhile:
		Walk(v, n.Cond)
		Walk(v, n.Body)
	case *ExprLoop:
		Walk(v, n.Body)
	case *ExprReturn:
		if n.Expr != nil {
			Walk(v, n.Expr)
		}
	case *ExprMatch:
		Walk(v, n.Expr)
		for i := range n.Arms {
			Walk(v, &n.Arms[i])
		}
	case *MatchArm:
		Walk(v, n.Pat)
		if n.Guard != nil {
			Walk(v, n.Guard.Expr)
		}
		Walk(v, n.Body)

	// Patterns
	case *PatBinding:
		Walk(v, &n.Ident)

	default:
		contract.Failf("Unrecognized AST node during walk: %v", reflect.TypeOf(n))
	}

	// Finally let the visitor know that we are done processing this node.
	v.After(node)
	if glog.V(9) {
		glog.V(9).Infof("AST visitor walk: post-after %v", reflect.TypeOf(node))
	}
}

func walkItems(v Visitor, items []ExprItem) {
	for _, item := range items {
		Walk(v, item.Expr)
	}
}

// Inspector is an anonymous visitation struct that implements the Visitor interface.
type Inspector struct {
	V Visitator
	A Afterator
}

func (v Inspector) Visit(node Node) Visitor {
	if v.V != nil {
		if !v.V(node) {
			return nil
		}
	}
	return v
}

func (v Inspector) After(node Node) {
	if v.A != nil {
		v.A(node)
	}
}

// Visitator is a very simple Visitor implementation; it simply returns true to continue visitation, or false to stop.
type Visitator func(Node) bool

func (v Visitator) Visit(node Node) Visitor {
	if v(node) {
		return v
	}
	return nil
}

func (v Visitator) After(node Node) {
	// nothing to do.
}

// Afterator is a very simple Visitor implementation; it simply runs after visitation has occurred on nodes.
type Afterator func(Node)

func (a Afterator) Visit(node Node) Visitor {
	// nothing to do.
	return a
}

func (a Afterator) After(node Node) {
	a(node)
}
