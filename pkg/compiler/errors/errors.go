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

// Package errors contains the catalog of numbered diagnostics raised by every compiler phase, and the error type that
// carries one of them, along with its source span, back to the caller.
package errors

import (
	"fmt"

	pkgerrors "github.com/pkg/errors"

	"github.com/pulumi/rune/pkg/diag"
)

func newError(id diag.ID, message string) *diag.Diag {
	return &diag.Diag{ID: id, Message: message}
}

func newWarning(id diag.ID, message string) *diag.Diag {
	return &diag.Diag{ID: id, Message: message}
}

// Error is a diagnostic raised by a compiler phase.  The diagnostic is always attached to a span, and the arguments
// are kept unformatted so that sinks may render them however they see fit.
type Error struct {
	Diag *diag.Diag
	Args []interface{}
}

// New creates a new error for the given diagnostic at the given span.
func New(d *diag.Diag, span diag.Span, args ...interface{}) *Error {
	return &Error{Diag: d.At(span), Args: args}
}

func (e *Error) Error() string {
	return fmt.Sprintf(e.Diag.Message, e.Args...)
}

// Span returns the source range the error applies to.
func (e *Error) Span() diag.Span {
	if e.Diag.Span == nil {
		return diag.EmptySpan
	}
	return *e.Diag.Span
}

// WithDocument returns a copy of the error attached to the given document.
func (e *Error) WithDocument(doc *diag.Document) *Error {
	return &Error{Diag: e.Diag.WithDocument(doc), Args: e.Args}
}

// Report issues the error to the given sink.
func (e *Error) Report(sink diag.Sink) {
	sink.Errorf(e.Diag, e.Args...)
}

// As extracts the compiler error underneath err, unwrapping any causes added by github.com/pkg/errors.
func As(err error) (*Error, bool) {
	if err == nil {
		return nil, false
	}
	e, ok := pkgerrors.Cause(err).(*Error)
	return e, ok
}

// Is returns true if err carries the given diagnostic.
func Is(err error, d *diag.Diag) bool {
	e, ok := As(err)
	return ok && e.Diag.ID == d.ID
}
