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
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/golang/glog"
	"github.com/peterh/liner"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/pulumi/rune/pkg/bytecode"
	"github.com/pulumi/rune/pkg/compiler/codegen"
	compilererrors "github.com/pulumi/rune/pkg/compiler/errors"
	"github.com/pulumi/rune/pkg/compiler/link"
	"github.com/pulumi/rune/pkg/compiler/parser"
	"github.com/pulumi/rune/pkg/diag"
	"github.com/pulumi/rune/pkg/tokens"
	"github.com/pulumi/rune/pkg/util/cmdutil"
	"github.com/pulumi/rune/pkg/util/contract"
)

const (
	replHistory = ".rune_history"
	replPrompt  = "rune> "
)

func newReplCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Interactively compile snippets and print their bytecode",
		Long: "Interactively compile snippets and print their bytecode\n" +
			"\n" +
			"Each line is compiled as the body of a function of its own and resolved, and its\n" +
			"instructions are printed.  Calls are not linked.  Type :quit or press Ctrl+D to exit.",
		Args: cobra.NoArgs,
		Run: cmdutil.RunFunc(func(cmd *cobra.Command, args []string) error {
			return runRepl(cmd.OutOrStdout(), newReplSession(cmdutil.Diag()))
		}),
	}
}

func runRepl(w io.Writer, session *replSession) error {
	ln := liner.NewLiner()
	defer contract.IgnoreClose(ln)
	ln.SetCtrlCAborts(true)

	var history string
	if home, err := os.UserHomeDir(); err == nil {
		history = filepath.Join(home, replHistory)
		if f, err := os.Open(history); err == nil {
			_, err = ln.ReadHistory(f)
			contract.IgnoreError(err)
			contract.IgnoreClose(f)
		}
	}

	for {
		input, err := ln.Prompt(replPrompt)
		if err == io.EOF {
			break
		} else if err == liner.ErrPromptAborted {
			continue
		} else if err != nil {
			return errors.Wrap(err, "reading input")
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		} else if input == ":quit" {
			break
		}
		ln.AppendHistory(input)

		// Failures have already been reported; keep reading.
		if err := session.eval(input, w); err != nil {
			glog.V(3).Infof("REPL input failed: %v", err)
		}
	}

	if history != "" {
		if f, err := os.Create(history); err == nil {
			_, err = ln.WriteHistory(f)
			contract.IgnoreError(err)
			contract.IgnoreClose(f)
		}
	}
	return nil
}

// replSession compiles each input as a fresh function.  The code generator is shared, so that labels stay unique
// across inputs.
type replSession struct {
	sink  diag.Sink
	gen   *codegen.Compiler
	count int
}

func newReplSession(sink diag.Sink) *replSession {
	return &replSession{sink: sink, gen: codegen.New(0)}
}

// eval compiles one input and prints the resolved function.  Errors are reported to the sink and returned.
func (s *replSession) eval(input string, w io.Writer) error {
	src := "{" + input + "\n}"
	doc := diag.NewDocument("<repl>", []byte(src))

	fn, err := s.compile(src)
	if err != nil {
		if e, ok := compilererrors.As(err); ok {
			e.WithDocument(doc).Report(s.sink)
		} else {
			s.sink.Errorf(diag.Message("%v").WithDocument(doc), err)
		}
		return err
	}
	return fn.Dump(w)
}

func (s *replSession) compile(src string) (*bytecode.Function, error) {
	p := parser.New(src)
	block, err := p.ParseExprBlock()
	if err != nil {
		return nil, err
	}
	if eof, err := p.IsEOF(); err != nil {
		return nil, err
	} else if !eof {
		tok, err := p.Peek()
		if err != nil {
			return nil, err
		}
		return nil, compilererrors.New(compilererrors.ErrorUnexpectedToken, tok.Span, tok.Kind, "end of input")
	}

	name := tokens.NewItem(tokens.Name(fmt.Sprintf("repl_%d", s.count+1)))
	fn, err := s.gen.CompileBody(name, block)
	if err != nil {
		return nil, err
	}
	resolved, err := link.Resolve(fn)
	if err != nil {
		return nil, err
	}
	s.count++
	return resolved, nil
}
