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
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/pulumi/rune/pkg/bytecode"
	"github.com/pulumi/rune/pkg/compiler/asm"
	"github.com/pulumi/rune/pkg/compiler/errors"
	"github.com/pulumi/rune/pkg/compiler/parser"
	"github.com/pulumi/rune/pkg/diag"
	"github.com/pulumi/rune/pkg/tokens"
)

// frame is the number of arguments every snippet is compiled with: `x` in slot 0 and `v` in slot 1.
const frame = 2

func compileSnippet(src string, needs Needs) (*fnCompiler, error) {
	expr, err := parser.New(src).ParseExpr()
	if err != nil {
		return nil, err
	}
	fc := newFnCompiler(New(0), asm.New(0), frame)
	fc.locals.declare("x", 0)
	fc.locals.declare("v", 1)
	return fc, fc.compileExpr(expr, needs)
}

// analyze resolves the labels of an assembly in place and simulates its stack.
func analyze(a *asm.Assembly, entry int) (bytecode.StackInfo, error) {
	insts := make([]bytecode.Inst, a.Len())
	for pos, inst := range a.Instructions() {
		if !inst.IsJump() {
			insts[pos] = inst.Raw
			continue
		}
		target, has := a.Offset(inst.Label)
		if !has {
			return bytecode.StackInfo{}, fmt.Errorf("label %v was never placed", inst.Label)
		}
		offset := target - (pos + 1)
		switch inst.Kind {
		case asm.Jump:
			insts[pos] = bytecode.Jump{Offset: offset}
		case asm.JumpIf:
			insts[pos] = bytecode.JumpIf{Offset: offset}
		case asm.JumpIfNot:
			insts[pos] = bytecode.JumpIfNot{Offset: offset}
		case asm.JumpIfBranch:
			insts[pos] = bytecode.JumpIfBranch{Branch: inst.Branch, Offset: offset}
		case asm.PopAndJumpIf:
			insts[pos] = bytecode.PopAndJumpIf{Count: inst.Count, Offset: offset}
		case asm.PopAndJumpIfNot:
			insts[pos] = bytecode.PopAndJumpIfNot{Count: inst.Count, Offset: offset}
		}
	}
	return bytecode.AnalyzeStack(insts, entry)
}

func instStrings(a *asm.Assembly) []string {
	var out []string
	for _, inst := range a.Instructions() {
		out = append(out, inst.String())
	}
	return out
}

// checkNeeds asserts that both the tracked and the simulated stack grow by exactly one value under NeedsValue and
// not at all under NeedsNone.
func checkNeeds(t assert.TestingT, src string) bool {
	ok := true
	for _, needs := range []Needs{NeedsNone, NeedsValue} {
		want := frame
		if needs.Value() {
			want++
		}
		fc, err := compileSnippet(src, needs)
		if !assert.NoError(t, err, "%s (needs=%v)", src, needs) {
			return false
		}
		ok = assert.Equal(t, want, fc.depth, "tracked depth of %s (needs=%v)", src, needs) && ok
		info, err := analyze(fc.asm, frame)
		if !assert.NoError(t, err, "%s (needs=%v)", src, needs) {
			return false
		}
		ok = assert.Equal(t, want, info.Exit, "exit depth of %s (needs=%v)", src, needs) && ok
	}
	return ok
}

func TestNeedsInvariant(t *testing.T) {
	t.Parallel()

	snippets := []string{
		"()",
		"true",
		"42",
		`"s"`,
		"x",
		"(x)",
		"(x, 1)",
		"[1, 2, x]",
		"-x",
		"!true",
		"x + 1",
		"x < 2 && v == 3",
		"x || false",
		"x = 5",
		"v[0]",
		"v[x] = 1",
		"v.await",
		"foo(x, 1)",
		"std::io::println(\"hi\")",
		"{}",
		"{ let y = 1; }",
		"{ let y = 1; let z = y; z + x }",
		"{ x; v; }",
		"if x { 1 }",
		"if x { 1 } else { 2 }",
		"if x { 1 } else if v { 2 } else { 3 }",
		"if x { return 1; } else { 2 }",
		"while x < 3 { x = x + 1; }",
		"loop { break; }",
		"loop { let y = 1; if y == 1 { break; } }",
		"while true { let a = 1; { let b = 2; foo(a, b, break); } }",
		"match x { 0 => 1, -1 => 2, y if y > 2 => y, _ => 4 }",
		"match true { true => 1, false => 2 }",
		"match x { y => { let z = y; z } }",
		"match v { _ if x == 1 => 1, y if y == x => { y } }",
	}
	for _, src := range snippets {
		src := src
		t.Run(src, func(t *testing.T) {
			t.Parallel()
			checkNeeds(t, src)
		})
	}
}

func TestDivergingExpressions(t *testing.T) {
	t.Parallel()

	// The code after a return is unreachable, but the tracked depth still honors the caller.
	for _, needs := range []Needs{NeedsNone, NeedsValue} {
		fc, err := compileSnippet("return x", needs)
		require.NoError(t, err)
		want := frame
		if needs.Value() {
			want++
		}
		assert.Equal(t, want, fc.depth)

		info, err := analyze(fc.asm, frame)
		require.NoError(t, err)
		assert.Equal(t, -1, info.Exit)
	}
}

func TestAwaitEmission(t *testing.T) {
	t.Parallel()

	fc, err := compileSnippet("v.await", NeedsValue)
	require.NoError(t, err)
	assert.Equal(t, []string{"copy 1", "await"}, instStrings(fc.asm))

	fc, err = compileSnippet("v.await", NeedsNone)
	require.NoError(t, err)
	assert.Equal(t, []string{"copy 1", "await", "pop"}, instStrings(fc.asm))
}

func TestIndexSetEmission(t *testing.T) {
	t.Parallel()

	fc, err := compileSnippet("v[x] = 1", NeedsValue)
	require.NoError(t, err)
	assert.Equal(t, []string{"integer 1", "copy 0", "copy 1", "index-set", "unit"}, instStrings(fc.asm))

	fc, err = compileSnippet("v[x] = 1", NeedsNone)
	require.NoError(t, err)
	assert.Equal(t, []string{"integer 1", "copy 0", "copy 1", "index-set"}, instStrings(fc.asm))
}

func TestIndexSetEvaluationOrder(t *testing.T) {
	t.Parallel()

	target := tokens.FunctionHash(tokens.NewItem("target"))
	index := tokens.FunctionHash(tokens.NewItem("index"))
	value := tokens.FunctionHash(tokens.NewItem("value"))

	for _, needs := range []Needs{NeedsNone, NeedsValue} {
		fc, err := compileSnippet("target()[index()] = value()", needs)
		require.NoError(t, err)

		var calls []tokens.Hash
		for _, inst := range fc.asm.Instructions() {
			if call, ok := inst.Raw.(bytecode.Call); ok {
				calls = append(calls, call.Hash)
			}
		}
		assert.Equal(t, []tokens.Hash{value, index, target}, calls, "needs=%v", needs)
	}
}

func TestLocalsAndComments(t *testing.T) {
	t.Parallel()

	fc, err := compileSnippet("{ let y = x; y = 2; y }", NeedsValue)
	require.NoError(t, err)
	assert.Equal(t, []string{"copy 0", "integer 2", "replace 2", "copy 2", "clean 1"}, instStrings(fc.asm))
	assert.Equal(t, []string{"x"}, fc.asm.CommentsAt(0))
	assert.Equal(t, []string{"y"}, fc.asm.CommentsAt(2))
	assert.Equal(t, []string{"y"}, fc.asm.CommentsAt(3))

	fc, err = compileSnippet("{ let y = 1; let z = 2; }", NeedsNone)
	require.NoError(t, err)
	assert.Equal(t, []string{"integer 1", "integer 2", "pop-n 2"}, instStrings(fc.asm))
}

func TestShadowing(t *testing.T) {
	t.Parallel()

	// The inner block's value is not needed, so its `x` is never read.
	fc, err := compileSnippet("{ let x = 1; { let x = 2; x }; x }", NeedsValue)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"integer 1",
		"integer 2",
		"pop-n 1",
		"copy 2",
		"clean 1",
	}, instStrings(fc.asm))
}

func TestCallsAreRequired(t *testing.T) {
	t.Parallel()

	fc, err := compileSnippet("{ foo(1); foo(2); bar() }", NeedsValue)
	require.NoError(t, err)
	required := fc.asm.RequiredFunctions()
	assert.Len(t, required[tokens.FunctionHash(tokens.NewItem("foo"))], 2)
	assert.Len(t, required[tokens.FunctionHash(tokens.NewItem("bar"))], 1)
}

func TestMatchEmission(t *testing.T) {
	t.Parallel()

	fc, err := compileSnippet("match x { 1 => 10, _ => 20 }", NeedsValue)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"copy 0",
		"copy 2",
		"jump-if-branch 1, match_arm_2",
		"pop",
		"jump match_next_1",
		"integer 10",
		"jump match_end_0",
		"integer 20",
		"jump match_end_0",
		"panic \"no match arm matched\"",
		"clean 1",
	}, instStrings(fc.asm))
}

func TestCompileErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		src      string
		expected error
	}{
		{"y", errors.New(errors.ErrorMissingLocal, diag.NewSpan(0, 1), tokens.Item("y"))},
		{"y = 1", errors.New(errors.ErrorMissingLocal, diag.NewSpan(0, 1), tokens.Item("y"))},
		{"a::b", errors.New(errors.ErrorMissingLocal, diag.NewSpan(0, 4), tokens.Item("a::b"))},
		{"break", errors.New(errors.ErrorBreakOutsideLoop, diag.NewSpan(0, 5))},
		{"1 + { y }", errors.New(errors.ErrorMissingLocal, diag.NewSpan(6, 7), tokens.Item("y"))},
		{"{ { let a = 1; }; a }", errors.New(errors.ErrorMissingLocal, diag.NewSpan(18, 19), tokens.Item("a"))},
	}
	for _, test := range tests {
		test := test
		t.Run(test.src, func(t *testing.T) {
			t.Parallel()
			_, err := compileSnippet(test.src, NeedsValue)
			require.Error(t, err)
			assert.Equal(t, test.expected, err)
		})
	}
}

func TestNeedsProperty(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(t *rapid.T) {
		src := genExpr(t, 3)
		if !checkNeeds(t, src) {
			t.Fatalf("stack is unbalanced for %s", src)
		}
	})
}

func genExpr(t *rapid.T, depth int) string {
	leaves := []string{"x", "v", "1", "true", "()", `"s"`}
	if depth == 0 {
		return rapid.SampledFrom(leaves).Draw(t, "leaf")
	}
	sub := func() string { return genExpr(t, depth-1) }
	switch rapid.IntRange(0, 11).Draw(t, "kind") {
	case 0:
		return rapid.SampledFrom(leaves).Draw(t, "leaf")
	case 1:
		return "(" + sub() + " + " + sub() + ")"
	case 2:
		return "{ let y = " + sub() + "; " + sub() + " }"
	case 3:
		return "if (" + sub() + ") { " + sub() + " } else { " + sub() + " }"
	case 4:
		return "(v[" + sub() + "] = " + sub() + ")"
	case 5:
		return "(" + sub() + ").await"
	case 6:
		return "foo(" + sub() + ", " + sub() + ")"
	case 7:
		return "match (" + sub() + ") { 0 => " + sub() + ", y if (" + sub() + ") => y, _ => " + sub() + " }"
	case 8:
		return "(" + sub() + " && " + sub() + ")"
	case 9:
		return "loop { if (" + sub() + ") { break; } }"
	case 10:
		return "(x = " + sub() + ")"
	default:
		return "{ " + sub() + "; " + sub() + "; }"
	}
}
