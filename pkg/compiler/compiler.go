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

// Package compiler drives a source document through every phase: parsing, code generation, resolution and linking.
package compiler

import (
	"context"

	"github.com/golang/glog"
	"github.com/hashicorp/go-multierror"

	"github.com/pulumi/rune/pkg/bytecode"
	"github.com/pulumi/rune/pkg/compiler/ast"
	"github.com/pulumi/rune/pkg/compiler/codegen"
	"github.com/pulumi/rune/pkg/compiler/errors"
	"github.com/pulumi/rune/pkg/compiler/link"
	"github.com/pulumi/rune/pkg/compiler/parser"
	"github.com/pulumi/rune/pkg/diag"
	"github.com/pulumi/rune/pkg/tokens"
	"github.com/pulumi/rune/pkg/util/contract"
	"github.com/pulumi/rune/pkg/util/tracing"
)

// Compiler provides an interface into the many phases of the compilation process.
type Compiler interface {
	// Diag fetches the diagnostics sink used by this compiler.
	Diag() diag.Sink
	// Options returns the options the compiler was created with.
	Options() Options

	// Parse parses a document into a syntax tree.
	Parse(ctx context.Context, doc *diag.Document) (*ast.File, error)
	// Assemble parses and compiles a document, stopping short of resolving its assemblies.
	Assemble(ctx context.Context, doc *diag.Document) (*codegen.Output, error)
	// Compile compiles a document into a resolved and linked unit.
	Compile(ctx context.Context, doc *diag.Document) (*bytecode.CompilationUnit, error)
	// CompileFile reads a document from the configured filesystem and compiles it.
	CompileFile(ctx context.Context, path string) (*bytecode.CompilationUnit, error)
}

// compiler is the canonical implementation of the compiler.  Every failure is both reported to the sink, with the
// document attached, and returned.
type compiler struct {
	opts Options
}

// New creates a new instance of the compiler, with the given initialization settings.
func New(opts Options) Compiler {
	contract.Requiref(opts.Diag != nil, "opts.Diag", "must not be nil")
	contract.Requiref(opts.Fs != nil, "opts.Fs", "must not be nil")
	return &compiler{opts: opts}
}

func (c *compiler) Diag() diag.Sink  { return c.opts.Diag }
func (c *compiler) Options() Options { return c.opts }

func (c *compiler) CompileFile(ctx context.Context, path string) (*bytecode.CompilationUnit, error) {
	doc, err := diag.ReadDocument(c.opts.Fs, path)
	if err != nil {
		c.Diag().Errorf(errors.ErrorIO.WithDocument(diag.NewDocument(path, nil)), err)
		return nil, err
	}
	return c.Compile(ctx, doc)
}

func (c *compiler) Parse(ctx context.Context, doc *diag.Document) (*ast.File, error) {
	span, _ := tracing.StartPhase(ctx, c.opts.Tracer, "parse", doc.File)
	defer span.Finish()

	file, err := parser.New(string(doc.Body)).ParseFile()
	if err != nil {
		tracing.Fail(span, err)
		c.report(doc, err)
		return nil, err
	}
	if glog.V(5) {
		glog.V(5).Infof("Parsed %v: %d declaration(s)", doc.File, len(file.Decls))
	}
	return file, nil
}

func (c *compiler) Assemble(ctx context.Context, doc *diag.Document) (*codegen.Output, error) {
	file, err := c.Parse(ctx, doc)
	if err != nil {
		return nil, err
	}

	span, _ := tracing.StartPhase(ctx, c.opts.Tracer, "codegen", doc.File)
	defer span.Finish()

	out, err := codegen.CompileFile(file)
	if err != nil {
		tracing.Fail(span, err)
		c.report(doc, err)
		return nil, err
	}
	return out, nil
}

func (c *compiler) Compile(ctx context.Context, doc *diag.Document) (*bytecode.CompilationUnit, error) {
	glog.Infof("Compiling %v (bytes=%v)", doc.File, len(doc.Body))
	if glog.V(2) {
		defer func() {
			glog.V(2).Infof("Compiling %v completed w/ %v warnings and %v errors",
				doc.File, c.Diag().Warnings(), c.Diag().Errors())
		}()
	}

	externs, err := c.opts.ExternItems()
	if err != nil {
		c.report(doc, err)
		return nil, err
	}

	out, err := c.Assemble(ctx, doc)
	if err != nil {
		return nil, err
	}

	span, _ := tracing.StartPhase(ctx, c.opts.Tracer, "link", doc.File)
	defer span.Finish()

	unit, err := link.ResolveAll(out)
	if err == nil && !c.opts.SkipLink {
		required := link.Required(out.Functions)
		err = link.Link(unit, required, externs)
		c.warnUnusedExterns(doc, externs, required)
	}
	if err != nil {
		tracing.Fail(span, err)
		c.report(doc, err)
		return nil, err
	}

	if c.opts.StripComments {
		for _, fn := range unit.Functions {
			for i := range fn.Debug {
				fn.Debug[i].Comments = nil
			}
		}
	}
	return unit, nil
}

func (c *compiler) warnUnusedExterns(doc *diag.Document, externs []tokens.Item, required map[tokens.Hash][]diag.Span) {
	for _, extern := range externs {
		if _, used := required[tokens.FunctionHash(extern)]; !used {
			c.Diag().Warningf(errors.WarningUnusedExterns.WithDocument(doc), extern)
		}
	}
}

// report issues a diagnostic for every error, attached to the document it came from.
func (c *compiler) report(doc *diag.Document, err error) {
	if merr, ok := err.(*multierror.Error); ok {
		for _, e := range merr.Errors {
			c.report(doc, e)
		}
		return
	}
	if e, ok := errors.As(err); ok {
		if e.Diag.Doc == nil {
			e = e.WithDocument(doc)
		}
		e.Report(c.Diag())
		return
	}
	c.Diag().Errorf(diag.Message("%v").WithDocument(doc), err)
}
