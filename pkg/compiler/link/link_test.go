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

package link

import (
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pulumi/rune/pkg/bytecode"
	"github.com/pulumi/rune/pkg/compiler/asm"
	"github.com/pulumi/rune/pkg/compiler/codegen"
	"github.com/pulumi/rune/pkg/compiler/errors"
	"github.com/pulumi/rune/pkg/compiler/parser"
	"github.com/pulumi/rune/pkg/diag"
	"github.com/pulumi/rune/pkg/tokens"
)

func compile(t *testing.T, src string) *codegen.Output {
	file, err := parser.New(src).ParseFile()
	require.NoError(t, err)
	out, err := codegen.CompileFile(file)
	require.NoError(t, err)
	return out
}

func TestResolveOffsets(t *testing.T) {
	t.Parallel()

	out := compile(t, "fn f(x) { let n = 0; while n < x { n = n + 1; } n }")
	fn, err := Resolve(out.Functions[0])
	require.NoError(t, err)

	// Every jump lands inside the function or directly past its end.
	for pos, inst := range fn.Insts {
		var offset int
		switch j := inst.(type) {
		case bytecode.Jump:
			offset = j.Offset
		case bytecode.JumpIfNot:
			offset = j.Offset
		default:
			continue
		}
		target := pos + 1 + offset
		assert.True(t, target >= 0 && target <= len(fn.Insts), "jump at %d lands at %d", pos, target)
	}

	assert.Equal(t, []string{
		"integer 0",
		"copy 1",
		"copy 0",
		"op lt",
		"jump-if-not +5",
		"copy 1",
		"integer 1",
		"op add",
		"replace 1",
		"jump -9",
		"copy 1",
		"clean 1",
		"return",
	}, instStrings(fn.Insts))
	assert.Equal(t, []string{"while_start_0"}, fn.Debug[1].Labels)
	assert.Equal(t, []string{"while_end_1"}, fn.Debug[10].Labels)
	assert.Equal(t, []string{"n"}, fn.Debug[1].Comments)
	assert.Equal(t, 4, fn.Stack.Max)
}

func TestResolveMissingLabel(t *testing.T) {
	t.Parallel()

	a := asm.New(0)
	nowhere := a.NewLabel("nowhere")
	a.Jump(nowhere, diag.NewSpan(3, 4))
	a.Jump(nowhere, diag.NewSpan(5, 6))
	a.Push(bytecode.ReturnUnit{}, diag.EmptySpan)

	_, err := Resolve(&codegen.Function{Name: "f", Asm: a})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrorMissingLabel))
	e, _ := errors.As(err)
	assert.Equal(t, diag.NewSpan(3, 4), e.Span())
	assert.Equal(t, "Jump to label 'nowhere_0', which was never placed", err.Error())

	// Distinct missing labels are all reported.
	b := asm.New(0)
	b.Jump(b.NewLabel("a"), diag.EmptySpan)
	b.Jump(b.NewLabel("b"), diag.EmptySpan)
	_, err = Resolve(&codegen.Function{Name: "g", Asm: b})
	merr, ok := err.(*multierror.Error)
	require.True(t, ok)
	assert.Len(t, merr.Errors, 2)
}

func TestResolveStackImbalance(t *testing.T) {
	t.Parallel()

	a := asm.New(0)
	a.Push(bytecode.Pop{}, diag.NewSpan(1, 2))
	a.Push(bytecode.ReturnUnit{}, diag.EmptySpan)
	_, err := Resolve(&codegen.Function{Name: "f", Asm: a})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrorStackImbalance))
	e, _ := errors.As(err)
	assert.Equal(t, diag.NewSpan(1, 2), e.Span())

	// Falling off the end is not allowed either.
	b := asm.New(0)
	b.Push(bytecode.Unit{}, diag.EmptySpan)
	_, err = Resolve(&codegen.Function{Name: "g", Asm: b})
	assert.True(t, errors.Is(err, errors.ErrorStackImbalance))
}

func TestUnit(t *testing.T) {
	t.Parallel()

	out := compile(t, `
struct Pair(a, b)
fn main() { std::io::println(add(1, 2)); Pair(1, 2) }
fn add(a, b) { a + b }
`)
	unit, err := Unit(out, []tokens.Item{"std::io::println"})
	require.NoError(t, err)
	assert.Len(t, unit.Functions, 3)
	assert.Len(t, unit.Structs, 1)
	assert.Equal(t, bytecode.FormatVersion, unit.Version)

	main, has := unit.Lookup("main")
	require.True(t, has)
	assert.Equal(t, 0, main.Args)
}

func TestMissingFunctions(t *testing.T) {
	t.Parallel()

	out := compile(t, `
fn main() { helper(1); helpr(2); helpr(3); std::io::printn("x") }
fn helper(x) { x }
`)
	_, err := Unit(out, []tokens.Item{"std::io::println"})
	require.Error(t, err)

	merr, ok := err.(*multierror.Error)
	require.True(t, ok)
	require.Len(t, merr.Errors, 2)

	missing := make(map[string]*MissingFunctionError)
	for _, e := range merr.Errors {
		mf, ok := e.(*MissingFunctionError)
		require.True(t, ok)
		assert.True(t, errors.Is(mf, errors.ErrorMissingFunction))
		missing[mf.Name] = mf
	}

	helpr := missing["helpr"]
	require.NotNil(t, helpr)
	assert.Len(t, helpr.Spans, 2)
	assert.Equal(t, "Missing function 'helpr' (called from 2 site(s)); did you mean 'helper'?", helpr.Error())

	printn := missing["std::io::printn"]
	require.NotNil(t, printn)
	assert.Len(t, printn.Spans, 1)
	assert.Contains(t, printn.Error(), "did you mean 'std::io::println'?")
}

func TestArgumentCountMismatch(t *testing.T) {
	t.Parallel()

	out := compile(t, "fn main() { add(1) } fn add(a, b) { a + b }")
	_, err := Unit(out, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrorArgumentCountMismatch))
	assert.Equal(t, "Function 'add' expects 2 arguments; got 1 instead", err.Error())
}

func TestDuplicateExtern(t *testing.T) {
	t.Parallel()

	out := compile(t, "fn main() { 1 }")
	_, err := Unit(out, []tokens.Item{"main"})
	assert.True(t, errors.Is(err, errors.ErrorDuplicateExtern))
}

func TestRequiredMergesAcrossFunctions(t *testing.T) {
	t.Parallel()

	out := compile(t, "fn a() { f() } fn b() { f(); g() }")
	required := Required(out.Functions)
	assert.Len(t, required[tokens.FunctionHash("f")], 2)
	assert.Len(t, required[tokens.FunctionHash("g")], 1)
}

func instStrings(insts []bytecode.Inst) []string {
	out := make([]string, len(insts))
	for i, inst := range insts {
		out[i] = inst.String()
	}
	return out
}
