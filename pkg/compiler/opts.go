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

package compiler

import (
	"github.com/opentracing/opentracing-go"
	pkgerrors "github.com/pkg/errors"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/pulumi/rune/pkg/compiler/errors"
	"github.com/pulumi/rune/pkg/diag"
	"github.com/pulumi/rune/pkg/tokens"
	"github.com/pulumi/rune/pkg/util/yamlutil"
)

// Options contains all of the settings a user can use to control the compiler's behavior.
type Options struct {
	Diag   diag.Sink          `yaml:"-"` // a sink to use for all diagnostics.
	Fs     afero.Fs           `yaml:"-"` // the filesystem source files are read from.
	Tracer opentracing.Tracer `yaml:"-"` // the tracer phase spans are started on; nil for the global tracer.

	Externs       []string `yaml:"externs,omitempty"`       // functions provided outside of the unit, e.g. `std::io::println`.
	SkipLink      bool     `yaml:"skipLink,omitempty"`      // true to leave calls to unknown functions unchecked.
	StripComments bool     `yaml:"stripComments,omitempty"` // true to drop instruction comments from debug info.
}

// DefaultOpts returns the options used when none are configured: diagnostics go to stderr and files come from the
// operating system.
func DefaultOpts(pwd string) Options {
	return Options{
		Diag: diag.DefaultSink(diag.FormatOptions{Pwd: pwd}),
		Fs:   afero.NewOsFs(),
	}
}

// LoadOptions reads the YAML settings at path into a copy of base.  Every extern must be a valid item path; an invalid
// one is reported where it appears in the file.
func LoadOptions(fs afero.Fs, path string, base Options) (Options, error) {
	b, err := afero.ReadFile(fs, path)
	if err != nil {
		return base, pkgerrors.Wrapf(err, "reading compiler options from %v", path)
	}
	doc := diag.NewDocument(path, b)

	var node yaml.Node
	if err := yaml.Unmarshal(b, &node); err != nil {
		return base, errors.New(errors.ErrorIllegalOptions, diag.EmptySpan, err).WithDocument(doc)
	}
	opts := base
	if len(node.Content) > 0 {
		if err := node.Decode(&opts); err != nil {
			return base, errors.New(errors.ErrorIllegalOptions, diag.EmptySpan, err).WithDocument(doc)
		}
	}

	for i, extern := range opts.Externs {
		if !tokens.IsItem(extern) {
			return base, errors.New(errors.ErrorInvalidExtern, externSpan(&node, i, b), extern).WithDocument(doc)
		}
	}
	return opts, nil
}

// externSpan finds the i'th extern in the parsed options, or returns an empty span if it cannot be found.
func externSpan(node *yaml.Node, i int, src []byte) diag.Span {
	externs, ok, err := yamlutil.Get(node, "externs")
	if err != nil || !ok {
		return diag.EmptySpan
	}
	extern, ok, err := yamlutil.Get(externs, i)
	if err != nil || !ok {
		return diag.EmptySpan
	}
	return yamlutil.Span(extern, src)
}

// ExternItems parses the configured externs.
func (opts Options) ExternItems() ([]tokens.Item, error) {
	items := make([]tokens.Item, 0, len(opts.Externs))
	for _, extern := range opts.Externs {
		if !tokens.IsItem(extern) {
			return nil, errors.New(errors.ErrorInvalidExtern, diag.EmptySpan, extern)
		}
		items = append(items, tokens.Item(extern))
	}
	return items, nil
}
