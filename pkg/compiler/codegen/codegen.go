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

// Package codegen compiles syntax trees into assemblies.  Every expression is compiled under a Needs directive that
// says whether its caller consumes a result; each node pads or trims its own result so that the stack is balanced
// exactly, node by node.
package codegen

import (
	"github.com/golang/glog"

	"github.com/pulumi/rune/pkg/bytecode"
	"github.com/pulumi/rune/pkg/compiler/asm"
	"github.com/pulumi/rune/pkg/compiler/ast"
	"github.com/pulumi/rune/pkg/compiler/errors"
	"github.com/pulumi/rune/pkg/diag"
	"github.com/pulumi/rune/pkg/tokens"
	"github.com/pulumi/rune/pkg/util/contract"
)

// Needs says whether the caller of a compilation consumes a value.
type Needs int

const (
	// NeedsNone leaves the stack as it was.
	NeedsNone Needs = iota
	// NeedsValue leaves exactly one additional value on the stack.
	NeedsValue
)

func (n Needs) String() string {
	if n == NeedsValue {
		return "value"
	}
	return "none"
}

// Value is true if a result must be left on the stack.
func (n Needs) Value() bool { return n == NeedsValue }

// Function is the assembly of one function body, ready to be resolved.
type Function struct {
	Name tokens.Item
	Hash tokens.Hash
	Args int
	Asm  *asm.Assembly
	Span diag.Span
}

// Output is everything compiled from one file.
type Output struct {
	Functions  []*Function        // in declaration order; constructors directly follow their struct.
	Structs    []*bytecode.Struct // in declaration order.
	LabelCount int                // the label counter after the last function, for threading into the next file.
}

// Function finds a compiled function by its item path.
func (out *Output) Function(name tokens.Item) (*Function, bool) {
	for _, fn := range out.Functions {
		if fn.Name == name {
			return fn, true
		}
	}
	return nil, false
}

// Compiler compiles the declarations of a file.  It is used for one file at a time.
type Compiler struct {
	labelCount int
	functions  map[tokens.Hash]*Function
	structs    map[tokens.Item]*bytecode.Struct
	out        *Output
}

// New creates a compiler whose labels are numbered starting at labelCount.
func New(labelCount int) *Compiler {
	return &Compiler{
		labelCount: labelCount,
		functions:  make(map[tokens.Hash]*Function),
		structs:    make(map[tokens.Item]*bytecode.Struct),
		out:        &Output{},
	}
}

// CompileFile compiles every declaration in the file.  Structs are registered first, so that functions may construct
// structs declared after them.
func CompileFile(file *ast.File) (*Output, error) {
	return New(0).CompileFile(file)
}

// CompileFile compiles every declaration in the file.
func (c *Compiler) CompileFile(file *ast.File) (*Output, error) {
	contract.Require(file != nil, "file")

	for _, fd := range file.Decls {
		if st, ok := fd.Decl.(*ast.DeclStruct); ok {
			if err := c.declareStruct(st); err != nil {
				return nil, err
			}
		}
	}
	for _, fd := range file.Decls {
		if fn, ok := fd.Decl.(*ast.DeclFn); ok {
			if err := c.compileFn(fn); err != nil {
				return nil, err
			}
		}
	}

	c.out.LabelCount = c.labelCount
	if glog.V(5) {
		glog.V(5).Infof("Compiled %d function(s) and %d struct(s); %d label(s) allocated",
			len(c.out.Functions), len(c.out.Structs), c.labelCount)
	}
	return c.out, nil
}

// CompileBody compiles a block as the body of a function with no arguments.  This is how a single snippet of code is
// compiled outside of any declaration.
func (c *Compiler) CompileBody(name tokens.Item, body *ast.ExprBlock) (*Function, error) {
	contract.Require(body != nil, "body")
	return c.compileBody(name, nil, body, body.Span())
}

// Output returns everything compiled so far.
func (c *Compiler) Output() *Output {
	c.out.LabelCount = c.labelCount
	return c.out
}

func (c *Compiler) compileFn(decl *ast.DeclFn) error {
	name := tokens.NewItem(decl.Ident.Name)
	seen := make(map[tokens.Name]bool)
	for _, arg := range decl.Args {
		if seen[arg.Ident.Name] {
			return errors.New(errors.ErrorDuplicateArgument, arg.Ident.Span(), arg.Ident.Name, name)
		}
		seen[arg.Ident.Name] = true
	}
	_, err := c.compileBody(name, decl.Args, decl.Body, decl.Span())
	return err
}

func (c *Compiler) compileBody(name tokens.Item, args []ast.Field, body *ast.ExprBlock, span diag.Span) (*Function, error) {
	hash := tokens.FunctionHash(name)
	if _, has := c.functions[hash]; has {
		return nil, errors.New(errors.ErrorDuplicateFunction, span, name)
	}

	// The arguments are already in the frame when the function is entered.
	fc := newFnCompiler(c, asm.New(c.labelCount), len(args))
	for i, arg := range args {
		fc.locals.declare(arg.Ident.Name, i)
	}

	if glog.V(7) {
		glog.V(7).Infof("Compiling fn %v (%d args)", name, len(args))
	}
	if err := fc.compileExpr(body, NeedsValue); err != nil {
		return nil, err
	}
	fc.push(bytecode.Return{}, body.Close.Span)
	contract.Assertf(fc.depth == len(args), "fn %v: compiled depth %d does not match its %d args", name, fc.depth, len(args))

	fn := &Function{Name: name, Hash: hash, Args: len(args), Asm: fc.asm, Span: span}
	c.addFunction(fn)
	c.labelCount = fc.asm.LabelCount()
	return fn, nil
}

func (c *Compiler) addFunction(fn *Function) {
	c.functions[fn.Hash] = fn
	c.out.Functions = append(c.out.Functions, fn)
}

// declareStruct registers a struct type.  Empty and tuple structs also get a constructor function named after the
// struct, which takes the fields as arguments in order.
func (c *Compiler) declareStruct(decl *ast.DeclStruct) error {
	name := tokens.NewItem(decl.Ident.Name)
	if _, has := c.structs[name]; has {
		return errors.New(errors.ErrorDuplicateStruct, decl.Ident.Span(), name)
	}

	fields := decl.Fields()
	seen := make(map[tokens.Name]bool)
	for _, f := range fields {
		if seen[f.Ident.Name] {
			return errors.New(errors.ErrorDuplicateField, f.Ident.Span(), f.Ident.Name, name)
		}
		seen[f.Ident.Name] = true
	}

	st := &bytecode.Struct{
		Hash:   tokens.TypeHash(name),
		Name:   name,
		Fields: ast.FieldNames(fields),
		Span:   decl.Span(),
	}
	switch decl.Body.(type) {
	case *ast.EmptyBody:
		st.Kind = bytecode.EmptyStruct
	case *ast.TupleBody:
		st.Kind = bytecode.TupleStruct
	case *ast.StructBody:
		st.Kind = bytecode.NamedStruct
	default:
		contract.Failf("Unrecognized struct body %T", decl.Body)
	}
	c.structs[name] = st
	c.out.Structs = append(c.out.Structs, st)

	if st.Kind == bytecode.NamedStruct {
		return nil
	}
	hash := tokens.FunctionHash(name)
	if _, has := c.functions[hash]; has {
		return errors.New(errors.ErrorDuplicateFunction, decl.Ident.Span(), name)
	}
	a := asm.New(c.labelCount)
	a.PushWithComment(bytecode.TypedTuple{Hash: st.Hash, Count: len(fields)}, decl.Span(), name.String())
	a.Push(bytecode.Return{}, decl.Span())
	c.addFunction(&Function{Name: name, Hash: hash, Args: len(fields), Asm: a, Span: decl.Span()})
	return nil
}
