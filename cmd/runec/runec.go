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
	"os"

	"github.com/golang/glog"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/pulumi/rune/pkg/compiler"
	"github.com/pulumi/rune/pkg/diag"
	"github.com/pulumi/rune/pkg/diag/colors"
	"github.com/pulumi/rune/pkg/util/cmdutil"
	"github.com/pulumi/rune/pkg/util/logging"
)

// defaultConfig is the options file picked up from the working directory when --config is not given.
const defaultConfig = "rune.yaml"

// rootOptions holds the flags shared by every subcommand.
type rootOptions struct {
	config string
	color  string
}

func (o *rootOptions) colorization() colors.Colorization {
	return colors.Colorization(o.color)
}

// NewRuneCmd creates a new runec command instance.
func NewRuneCmd() *cobra.Command {
	var logToStderr bool
	var verbose int
	root := &rootOptions{}
	cmd := &cobra.Command{
		Use:   "runec",
		Short: "runec compiles Rune source files into stack machine bytecode",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			switch root.colorization() {
			case colors.Auto, colors.Always, colors.Never:
			default:
				return errors.Errorf("unsupported color option: '%v'; expected auto, always, or never", root.color)
			}
			logging.InitLogging(logToStderr, verbose)

			pwd, err := os.Getwd()
			if err != nil {
				return errors.Wrap(err, "getting the working directory")
			}
			cmdutil.InitDiag(diag.FormatOptions{Pwd: pwd, Color: root.colorization()})
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			glog.Flush()
		},
	}

	cmd.PersistentFlags().BoolVar(&logToStderr, "logtostderr", false, "Log to stderr instead of to files")
	cmd.PersistentFlags().IntVarP(
		&verbose, "verbose", "v", 0, "Enable verbose logging (e.g., v=3); anything >5 is very verbose")
	cmd.PersistentFlags().StringVar(
		&root.color, "color", string(colors.Auto), "Colorize output; one of auto, always, or never")
	cmd.PersistentFlags().StringVar(
		&root.config, "config", "",
		"Read compiler options from this YAML file (defaults to "+defaultConfig+" if present)")

	cmd.AddCommand(newBuildCmd(root))
	cmd.AddCommand(newAsmCmd(root))
	cmd.AddCommand(newASTCmd(root))
	cmd.AddCommand(newReplCmd(root))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// compileFlags are the per-command overrides of the options file.
type compileFlags struct {
	externs       []string
	skipLink      bool
	stripComments bool
}

func (f *compileFlags) register(cmd *cobra.Command) {
	cmd.PersistentFlags().StringSliceVarP(
		&f.externs, "extern", "e", nil,
		"Declare a function provided outside of the unit (e.g., std::io::println); may be repeated")
	cmd.PersistentFlags().BoolVar(
		&f.skipLink, "skip-link", false,
		"Resolve functions without checking that every called function exists")
	cmd.PersistentFlags().BoolVar(
		&f.stripComments, "strip-comments", false,
		"Drop instruction comments from the debug information")
}

func (f *compileFlags) apply(opts compiler.Options) compiler.Options {
	opts.Externs = append(opts.Externs, f.externs...)
	opts.SkipLink = opts.SkipLink || f.skipLink
	opts.StripComments = opts.StripComments || f.stripComments
	return opts
}

// newCompiler creates a compiler that reports to the shared sink and reads from the operating system's filesystem.
func newCompiler(root *rootOptions, flags *compileFlags) (compiler.Compiler, error) {
	pwd, err := os.Getwd()
	if err != nil {
		return nil, errors.Wrap(err, "getting the working directory")
	}
	opts := compiler.DefaultOpts(pwd)
	opts.Diag = cmdutil.Diag()

	if opts, err = loadConfig(opts, root.config); err != nil {
		return nil, err
	}
	if flags != nil {
		opts = flags.apply(opts)
	}
	if _, err := opts.ExternItems(); err != nil {
		return nil, err
	}
	return compiler.New(opts), nil
}

// loadConfig layers the options file at path, or the default one if it exists, over opts.
func loadConfig(opts compiler.Options, path string) (compiler.Options, error) {
	if path == "" {
		exists, err := afero.Exists(opts.Fs, defaultConfig)
		if err != nil || !exists {
			return opts, err
		}
		path = defaultConfig
	}
	glog.V(3).Infof("Loading compiler options from %v", path)
	return compiler.LoadOptions(opts.Fs, path, opts)
}

// readSource reads a document through the compiler's filesystem, reporting a failure to its sink.
func readSource(comp compiler.Compiler, path string) (*diag.Document, error) {
	doc, err := diag.ReadDocument(comp.Options().Fs, path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %v", path)
	}
	return doc, nil
}

// failed is returned once diagnostics have already been reported to the sink.
func failed(comp compiler.Compiler, path string) error {
	return errors.Errorf("%v failed to compile with %v error(s)", path, comp.Diag().Errors())
}
