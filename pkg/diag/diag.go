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

// ID is a unique diagnostics identifier.
type ID int

// Diag is an instance of an error or warning generated by the compiler.
type Diag struct {
	ID      ID        // a unique identifier for this diagnostic; zero for ad-hoc messages.
	Message string    // a human-friendly message for this diagnostic, possibly containing format directives.
	Doc     *Document // the document in which this diagnostic occurred, if any.
	Span    *Span     // the source range of this diagnostic, if any.
}

// Message returns an anonymous diagnostic with the given message.
func Message(msg string) *Diag {
	return &Diag{Message: msg}
}

// WithDocument returns a copy of this diagnostic attached to the given document.
func (diag *Diag) WithDocument(doc *Document) *Diag {
	return &Diag{
		ID:      diag.ID,
		Message: diag.Message,
		Doc:     doc,
		Span:    diag.Span,
	}
}

// At returns a copy of this diagnostic attached to the given source range.
func (diag *Diag) At(span Span) *Diag {
	return &Diag{
		ID:      diag.ID,
		Message: diag.Message,
		Doc:     diag.Doc,
		Span:    &span,
	}
}
