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
	"strings"

	"github.com/spf13/cobra"

	"github.com/pulumi/rune/pkg/compiler/ast"
	"github.com/pulumi/rune/pkg/diag"
	"github.com/pulumi/rune/pkg/util/cmdutil"
)

func newASTCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "ast <file>",
		Short: "Print the syntax tree of a source file",
		Long: "Print the syntax tree of a source file\n" +
			"\n" +
			"Each node is printed on its own line, indented under its parent, along with its\n" +
			"location.  Identifiers and literals also print their source text.",
		Args: cobra.ExactArgs(1),
		Run: cmdutil.RunFunc(func(cmd *cobra.Command, args []string) error {
			comp, err := newCompiler(root, nil)
			if err != nil {
				return err
			}
			doc, err := readSource(comp, args[0])
			if err != nil {
				return err
			}
			file, err := comp.Parse(context.Background(), doc)
			if err != nil {
				return failed(comp, args[0])
			}
			return printTree(cmd.OutOrStdout(), doc, file)
		}),
	}
}

// printTree writes one line per node, in the order the compiler evaluates them.
func printTree(w io.Writer, doc *diag.Document, node ast.Node) error {
	var err error
	depth := 0
	ast.Walk(ast.Inspector{
		V: func(n ast.Node) bool {
			if err != nil {
				return false
			}
			line := strings.Repeat("  ", depth) + strings.TrimPrefix(fmt.Sprintf("%T", n), "*ast.")
			if loc := doc.Location(n.Span()); loc != nil {
				line += fmt.Sprintf(" (%v)", loc.Start)
			}
			switch n.(type) {
			case *ast.Ident, *ast.LitBool, *ast.LitInt, *ast.LitStr:
				line += " " + doc.Text(n.Span())
			}
			_, err = fmt.Fprintln(w, line)
			depth++
			return true
		},
		A: func(ast.Node) {
			depth--
		},
	}, node)
	return err
}
