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
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/dustin/go-humanize/english"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/pulumi/rune/pkg/bytecode"
	"github.com/pulumi/rune/pkg/util/cmdutil"
)

func newBuildCmd(root *rootOptions) *cobra.Command {
	var flags compileFlags
	var out string
	cmd := &cobra.Command{
		Use:   "build <file>",
		Short: "Compile a source file into a linked unit",
		Long: "Compile a source file into a linked unit\n" +
			"\n" +
			"This command parses, compiles, resolves, and links a single source file.  Every call must\n" +
			"target a function of the file or a declared extern.  Diagnostics are printed as they are\n" +
			"found, and a summary of the unit is printed on success.  Pass --out to also write a\n" +
			"listing of the unit's instructions.",
		Args: cobra.ExactArgs(1),
		Run: cmdutil.RunFunc(func(cmd *cobra.Command, args []string) error {
			comp, err := newCompiler(root, &flags)
			if err != nil {
				return err
			}
			unit, err := comp.CompileFile(context.Background(), args[0])
			if err != nil {
				return failed(comp, args[0])
			}

			if out != "" {
				var listing bytes.Buffer
				if err := unit.Dump(&listing); err != nil {
					return err
				}
				if err := afero.WriteFile(comp.Options().Fs, out, listing.Bytes(), 0o644); err != nil {
					return errors.Wrapf(err, "writing listing to %v", out)
				}
			}
			return printSummary(cmd.OutOrStdout(), args[0], unit)
		}),
	}

	flags.register(cmd)
	cmd.PersistentFlags().StringVarP(
		&out, "out", "o", "",
		"Write a listing of the compiled unit to this file")

	return cmd
}

// printSummary writes a one line description of a compiled unit.
func printSummary(w io.Writer, path string, unit *bytecode.CompilationUnit) error {
	insts, maxStack := 0, 0
	for _, fn := range unit.Functions {
		insts += len(fn.Insts)
		if fn.Stack.Max > maxStack {
			maxStack = fn.Stack.Max
		}
	}
	_, err := fmt.Fprintf(w, "Compiled %v: %v, %v, %v instructions (max stack %v; format v%v)\n",
		path,
		english.Plural(len(unit.Functions), "function", ""),
		english.Plural(len(unit.Structs), "struct", ""),
		humanize.Comma(int64(insts)),
		maxStack,
		unit.Version)
	return err
}
