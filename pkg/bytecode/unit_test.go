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

package bytecode

import (
	"bytes"
	"testing"

	"github.com/blang/semver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pulumi/rune/pkg/tokens"
)

func TestAddFunction(t *testing.T) {
	t.Parallel()

	unit := NewCompilationUnit()
	name := tokens.NewItem("main")
	fn := &Function{Hash: tokens.FunctionHash(name), Name: name, Insts: []Inst{ReturnUnit{}}}
	assert.True(t, unit.AddFunction(fn))
	assert.False(t, unit.AddFunction(&Function{Hash: fn.Hash, Name: name}))
	assert.Equal(t, []tokens.Hash{fn.Hash}, unit.Order)

	found, has := unit.Lookup(name)
	assert.True(t, has)
	assert.Same(t, fn, found)

	_, has = unit.Lookup(tokens.NewItem("other"))
	assert.False(t, has)
}

func TestAddStruct(t *testing.T) {
	t.Parallel()

	unit := NewCompilationUnit()
	name := tokens.NewItem("Point")
	st := &Struct{Hash: tokens.TypeHash(name), Name: name, Kind: NamedStruct, Fields: []tokens.Name{"x", "y"}}
	assert.True(t, unit.AddStruct(st))
	assert.False(t, unit.AddStruct(st))
	assert.Equal(t, "named", st.Kind.String())
}

func TestCompatibility(t *testing.T) {
	t.Parallel()

	unit := NewCompilationUnit()
	assert.True(t, unit.IsCompatible(FormatVersion))
	assert.True(t, unit.IsCompatible(semver.MustParse("0.9.0")))
	assert.False(t, unit.IsCompatible(semver.MustParse("1.0.0")))
	assert.False(t, unit.IsCompatible(semver.MustParse("0.1.0")))
}

func TestDump(t *testing.T) {
	t.Parallel()

	unit := NewCompilationUnit()
	name := tokens.NewItem("main")
	unit.AddFunction(&Function{
		Hash:  tokens.FunctionHash(name),
		Name:  name,
		Insts: []Inst{Integer{1}, Return{}},
		Debug: []DebugInst{{Labels: []string{"start_0"}, Comments: []string{"one"}}, {}},
		Stack: StackInfo{Max: 1, Exit: -1},
	})

	var buf bytes.Buffer
	require.NoError(t, unit.Dump(&buf))
	out := buf.String()
	assert.Contains(t, out, "; unit v0.3.0\n")
	assert.Contains(t, out, "fn main (")
	assert.Contains(t, out, "start_0:\n")
	assert.Contains(t, out, "  0000 = integer 1")
	assert.Contains(t, out, "; one\n")
	assert.Contains(t, out, "  0001 = return\n")
}

func TestInstStrings(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "jump -3", Jump{-3}.String())
	assert.Equal(t, "jump-if-not +2", JumpIfNot{2}.String())
	assert.Equal(t, "pop-and-jump-if-not 1, +4", PopAndJumpIfNot{Count: 1, Offset: 4}.String())
	assert.Equal(t, "op add", Op{Add}.String())
	assert.Equal(t, `string "a\n"`, String{"a\n"}.String())
	assert.True(t, IsTerminator(Return{}))
	assert.False(t, IsTerminator(JumpIf{}))
}
