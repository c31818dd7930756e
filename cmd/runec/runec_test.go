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

package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/pulumi/rune/pkg/compiler"
	"github.com/pulumi/rune/pkg/compiler/parser"
	"github.com/pulumi/rune/pkg/diag"
	"github.com/pulumi/rune/pkg/util/testutil"
)

func TestRootCommands(t *testing.T) {
	t.Parallel()

	cmd := NewRuneCmd()
	var names []string
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}
	assert.Equal(t, []string{"asm", "ast", "build", "repl", "version"}, names)

	for _, flag := range []string{"verbose", "logtostderr", "color", "config"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(flag), flag)
	}
}

func TestVersion(t *testing.T) {
	t.Parallel()

	cmd := newVersionCmd()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{})
	require.NoError(t, cmd.Execute())
	assert.Equal(t, "runec version 0.1.0-dev (bytecode format v0.3.0)\n", buf.String())
}

func TestCompileFlagsApply(t *testing.T) {
	t.Parallel()

	flags := compileFlags{externs: []string{"std::io::println"}, stripComments: true}
	opts := flags.apply(compiler.Options{Externs: []string{"std::string::len"}, SkipLink: true})
	assert.Equal(t, []string{"std::string::len", "std::io::println"}, opts.Externs)
	assert.True(t, opts.SkipLink)
	assert.True(t, opts.StripComments)
}

func TestLoadDefaultConfig(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	opts, err := loadConfig(compiler.Options{Fs: fs}, "")
	require.NoError(t, err)
	assert.Empty(t, opts.Externs)

	require.NoError(t, afero.WriteFile(fs, defaultConfig, []byte("externs:\n  - \"std::io::println\"\n"), 0o644))
	opts, err = loadConfig(compiler.Options{Fs: fs}, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"std::io::println"}, opts.Externs)

	_, err = loadConfig(compiler.Options{Fs: fs}, "elsewhere.yaml")
	assert.Error(t, err)
}

func TestPrintTree(t *testing.T) {
	t.Parallel()

	src := "fn f(x) { x + 1 }"
	file, err := parser.New(src).ParseFile()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, printTree(&buf, diag.NewDocument("f.rn", []byte(src)), file))
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.True(t, len(lines) > 4)
	assert.True(t, strings.HasPrefix(lines[0], "File "))
	assert.Equal(t, "  DeclFn (1:1)", lines[1])
	assert.Equal(t, "    Ident (1:4) f", lines[2])
	assert.Equal(t, "    Field (1:6)", lines[3])
	assert.Equal(t, "      Ident (1:6) x", lines[4])
	assert.Contains(t, buf.String(), "LitInt (1:15) 1\n")
}

func TestUnitYAMLAndSummary(t *testing.T) {
	t.Parallel()

	sink := testutil.NewTestDiagSink("/")
	comp := compiler.New(compiler.Options{Diag: sink, Fs: afero.NewMemMapFs()})
	unit, err := comp.Compile(context.Background(),
		diag.NewDocument("main.rn", []byte("struct Pair(a, b);\nfn main() { Pair(1, 2) }")))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, printUnitYAML(&buf, unit))
	var doc unitDoc
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, "0.3.0", doc.Version)
	require.Len(t, doc.Structs, 1)
	assert.Equal(t, structDoc{Name: "Pair", Hash: doc.Structs[0].Hash, Kind: "tuple", Fields: []string{"a", "b"}},
		doc.Structs[0])

	require.Len(t, doc.Functions, 2)
	assert.Equal(t, "Pair", doc.Functions[0].Name)
	assert.Equal(t, 2, doc.Functions[0].Args)
	require.Len(t, doc.Functions[0].Insts, 2)
	assert.True(t, strings.HasSuffix(doc.Functions[0].Insts[0], " ; Pair"))
	assert.Equal(t, "return", doc.Functions[0].Insts[1])
	assert.Equal(t, "main", doc.Functions[1].Name)

	buf.Reset()
	require.NoError(t, printSummary(&buf, "main.rn", unit))
	assert.Contains(t, buf.String(), "Compiled main.rn: 2 functions, 1 struct, ")
}

func TestReplSession(t *testing.T) {
	t.Parallel()

	sink := testutil.NewTestDiagSink("/")
	s := newReplSession(sink)

	var buf bytes.Buffer
	require.NoError(t, s.eval("let x = 1; x + 2", &buf))
	assert.Contains(t, buf.String(), "fn repl_1 ")
	assert.Contains(t, buf.String(), "integer 1")
	assert.Contains(t, buf.String(), "return")

	// Locals do not survive from one input to the next.
	buf.Reset()
	require.Error(t, s.eval("x", &buf))
	require.Equal(t, 1, sink.Errors())
	assert.Contains(t, sink.ErrorMsgs()[0], "<repl>(1,2): error RUNE201: ")
	assert.Empty(t, buf.String())

	require.Error(t, s.eval("1 }{", &buf))
	assert.Equal(t, 2, sink.Errors())

	require.NoError(t, s.eval("if true { 1 } else { 2 }", &buf))
	assert.Contains(t, buf.String(), "fn repl_2 ")
}
