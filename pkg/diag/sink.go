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

package diag

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/golang/glog"

	"github.com/pulumi/rune/pkg/diag/colors"
	"github.com/pulumi/rune/pkg/util/contract"
)

// Sink facilitates pluggable diagnostics messages.
type Sink interface {
	// Count fetches the total number of diagnostics issued (errors plus warnings).
	Count() int
	// Errors fetches the number of errors issued.
	Errors() int
	// Warnings fetches the number of warnings issued.
	Warnings() int
	// Success returns true if this sink is currently error-free.
	Success() bool

	// Errorf issues a new error diagnostic.
	Errorf(diag *Diag, args ...interface{})
	// Warningf issues a new warning diagnostic.
	Warningf(diag *Diag, args ...interface{})

	// Stringify stringifies a diagnostic in the usual way (e.g., "main.rn(7,3): error RUNE101: error goes here\n").
	Stringify(diag *Diag, sev Severity, args ...interface{}) string
	// StringifyLocation stringifies a source document location.
	StringifyLocation(doc *Document, span *Span) string
}

// Severity dictates the kind of diagnostic.
type Severity string

const (
	Error   Severity = "error"
	Warning Severity = "warning"
)

// FormatOptions controls the output style and content.
type FormatOptions struct {
	Pwd   string              // the working directory.
	Color colors.Colorization // how output should be colorized.
}

// DefaultSink returns a default sink that simply logs output to stderr.
func DefaultSink(opts FormatOptions) Sink {
	return newDefaultSink(opts, map[Severity]io.Writer{
		Error:   os.Stderr,
		Warning: os.Stderr,
	})
}

// NewSink returns a default sink writing all diagnostics to w.
func NewSink(w io.Writer, opts FormatOptions) Sink {
	contract.Requiref(w != nil, "w", "must not be nil")
	return newDefaultSink(opts, map[Severity]io.Writer{
		Error:   w,
		Warning: w,
	})
}

func newDefaultSink(opts FormatOptions, writers map[Severity]io.Writer) *defaultSink {
	contract.Assertf(writers[Error] != nil, "Writer for %v must be set", Error)
	contract.Assertf(writers[Warning] != nil, "Writer for %v must be set", Warning)
	if opts.Color == "" {
		opts.Color = colors.Never
	}
	return &defaultSink{opts: opts, writers: writers, counts: make(map[Severity]int)}
}

const DefaultSinkIDPrefix = "RUNE"

// defaultSink is the default sink which logs output to stderr.
type defaultSink struct {
	opts    FormatOptions          // a set of options that control output style and content.
	writers map[Severity]io.Writer // the output streams to use for each severity.
	counts  map[Severity]int       // the number of messages issued per severity.
}

func (d *defaultSink) Count() int    { return d.Errors() + d.Warnings() }
func (d *defaultSink) Errors() int   { return d.counts[Error] }
func (d *defaultSink) Warnings() int { return d.counts[Warning] }
func (d *defaultSink) Success() bool { return d.Errors() == 0 }

func (d *defaultSink) Errorf(diag *Diag, args ...interface{}) {
	d.logf(Error, diag, args...)
}

func (d *defaultSink) Warningf(diag *Diag, args ...interface{}) {
	d.logf(Warning, diag, args...)
}

func (d *defaultSink) logf(sev Severity, diag *Diag, args ...interface{}) {
	msg := d.Stringify(diag, sev, args...)
	if glog.V(3) {
		glog.V(3).Infof("defaultSink::%v(%v)", sev, msg[:len(msg)-1])
	}
	fmt.Fprint(d.writers[sev], msg)
	d.counts[sev]++
}

func (d *defaultSink) Stringify(diag *Diag, sev Severity, args ...interface{}) string {
	var buffer bytes.Buffer

	// First print the location if there is one.
	if diag.Doc != nil || diag.Span != nil {
		buffer.WriteString(d.StringifyLocation(diag.Doc, diag.Span))
		buffer.WriteString(": ")
	}

	// Now print the message category's prefix (error/warning).
	prefix := string(sev)
	if diag.ID > 0 {
		prefix += " " + DefaultSinkIDPrefix + strconv.Itoa(int(diag.ID))
	}
	switch sev {
	case Error:
		buffer.WriteString(d.opts.Color.Colorize(colors.SpecError, prefix))
	case Warning:
		buffer.WriteString(d.opts.Color.Colorize(colors.SpecWarning, prefix))
	default:
		contract.Failf("Unrecognized diagnostic severity: %v", sev)
	}
	buffer.WriteString(": ")

	// Finally, actually print the message itself.
	buffer.WriteString(d.opts.Color.Colorize(colors.SpecNote, fmt.Sprintf(diag.Message, args...)))
	buffer.WriteRune('\n')

	return buffer.String()
}

func (d *defaultSink) StringifyLocation(doc *Document, span *Span) string {
	var buffer bytes.Buffer

	if doc != nil {
		file := doc.File
		if d.opts.Pwd != "" {
			// If a PWD is available, try to create a relative path.
			rel, err := filepath.Rel(d.opts.Pwd, file)
			if err == nil {
				file = rel
			}
		}
		buffer.WriteString(file)
	}

	if span != nil {
		if doc != nil && doc.Body != nil {
			loc := doc.Location(*span)
			buffer.WriteRune('(')
			buffer.WriteString(strconv.Itoa(loc.Start.Line))
			buffer.WriteRune(',')
			buffer.WriteString(strconv.Itoa(loc.Start.Column))
			buffer.WriteRune(')')
		} else {
			// Without the source text, the best we can do is the raw byte range.
			buffer.WriteRune('[')
			buffer.WriteString(span.String())
			buffer.WriteRune(']')
		}
	}

	return d.opts.Color.Colorize(colors.SpecLocation, buffer.String())
}
