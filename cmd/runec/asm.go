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
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/pulumi/rune/pkg/bytecode"
	"github.com/pulumi/rune/pkg/compiler/codegen"
	"github.com/pulumi/rune/pkg/diag/colors"
	"github.com/pulumi/rune/pkg/util/cmdutil"
)

func newAsmCmd(root *rootOptions) *cobra.Command {
	var flags compileFlags
	var format string
	cmd := &cobra.Command{
		Use:   "asm <file>",
		Short: "Print the assembly of every function in a source file",
		Long: "Print the assembly of every function in a source file\n" +
			"\n" +
			"The text format prints each function before resolution, with its symbolic labels and\n" +
			"jumps.  The yaml format prints the resolved and linked unit, with relative jumps.",
		Args: cobra.ExactArgs(1),
		Run: cmdutil.RunFunc(func(cmd *cobra.Command, args []string) error {
			comp, err := newCompiler(root, &flags)
			if err != nil {
				return err
			}
			doc, err := readSource(comp, args[0])
			if err != nil {
				return err
			}

			switch format {
			case "text":
				out, err := comp.Assemble(context.Background(), doc)
				if err != nil {
					return failed(comp, args[0])
				}
				return printAssembly(cmd.OutOrStdout(), out, root.colorization())
			case "yaml":
				unit, err := comp.Compile(context.Background(), doc)
				if err != nil {
					return failed(comp, args[0])
				}
				return printUnitYAML(cmd.OutOrStdout(), unit)
			default:
				return errors.Errorf("unsupported format '%v'; expected text or yaml", format)
			}
		}),
	}

	flags.register(cmd)
	cmd.PersistentFlags().StringVarP(
		&format, "format", "f", "text",
		"The output format; one of text or yaml")

	return cmd
}

func printAssembly(w io.Writer, out *codegen.Output, color colors.Colorization) error {
	for i, fn := range out.Functions {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		header := fmt.Sprintf("fn %v (%v) args=%d:", fn.Name, fn.Hash, fn.Args)
		if _, err := fmt.Fprintln(w, color.Colorize(colors.SpecImportant, header)); err != nil {
			return err
		}
		if err := fn.Asm.Dump(w, color); err != nil {
			return err
		}
	}
	return nil
}

// unitDoc is the YAML rendering of a compiled unit.
type unitDoc struct {
	Version   string        `yaml:"version"`
	Structs   []structDoc   `yaml:"structs,omitempty"`
	Functions []functionDoc `yaml:"functions"`
}

type structDoc struct {
	Name   string   `yaml:"name"`
	Hash   string   `yaml:"hash"`
	Kind   string   `yaml:"kind"`
	Fields []string `yaml:"fields,omitempty"`
}

type functionDoc struct {
	Name     string   `yaml:"name"`
	Hash     string   `yaml:"hash"`
	Args     int      `yaml:"args"`
	MaxStack int      `yaml:"maxStack"`
	Insts    []string `yaml:"insts"`
}

func newUnitDoc(unit *bytecode.CompilationUnit) unitDoc {
	doc := unitDoc{Version: unit.Version.String()}
	for _, hash := range unit.Order {
		fn := unit.Functions[hash]
		fdoc := functionDoc{Name: string(fn.Name), Hash: fn.Hash.String(), Args: fn.Args, MaxStack: fn.Stack.Max}
		for i, inst := range fn.Insts {
			line := inst.String()
			if i < len(fn.Debug) && len(fn.Debug[i].Comments) > 0 {
				line += " ; " + strings.Join(fn.Debug[i].Comments, ", ")
			}
			fdoc.Insts = append(fdoc.Insts, line)
		}
		doc.Functions = append(doc.Functions, fdoc)
	}
	for _, st := range unit.Structs {
		sdoc := structDoc{Name: string(st.Name), Hash: st.Hash.String(), Kind: st.Kind.String()}
		for _, f := range st.Fields {
			sdoc.Fields = append(sdoc.Fields, string(f))
		}
		doc.Structs = append(doc.Structs, sdoc)
	}
	sort.Slice(doc.Structs, func(i, j int) bool { return doc.Structs[i].Name < doc.Structs[j].Name })
	return doc
}

func printUnitYAML(w io.Writer, unit *bytecode.CompilationUnit) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(newUnitDoc(unit)); err != nil {
		return errors.Wrap(err, "encoding unit")
	}
	return enc.Close()
}
