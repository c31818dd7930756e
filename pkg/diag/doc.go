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
	"path/filepath"
	"sort"

	"github.com/spf13/afero"
)

// Document is a file used during compilation, for which advanced diagnostics, such as line/column numbers, may be
// required.  It stores the contents of the entire file so that precise errors can be given; Forget discards them.
type Document struct {
	File  string
	Body  []byte
	lines []int // lazily computed offsets of the first byte of each line.
}

func NewDocument(file string, body []byte) *Document {
	return &Document{File: file, Body: body}
}

// ReadDocument reads a document from the given filesystem.
func ReadDocument(fs afero.Fs, file string) (*Document, error) {
	body, err := afero.ReadFile(fs, file)
	if err != nil {
		return nil, err
	}
	return &Document{File: file, Body: body}, nil
}

func (doc *Document) Ext() string {
	return filepath.Ext(doc.File)
}

func (doc *Document) Forget() {
	doc.Body = nil
	doc.lines = nil
}

// Text returns the source text covered by the given span, or the empty string if the body has been forgotten or the
// span falls outside of it.
func (doc *Document) Text(span Span) string {
	if span.Start < 0 || span.End > len(doc.Body) || span.Start > span.End {
		return ""
	}
	return string(doc.Body[span.Start:span.End])
}

// Position translates a byte offset into a 1-based line and column.
func (doc *Document) Position(offset int) Pos {
	if doc.lines == nil {
		doc.lines = []int{0}
		for i, b := range doc.Body {
			if b == '\n' {
				doc.lines = append(doc.lines, i+1)
			}
		}
	}
	line := sort.Search(len(doc.lines), func(i int) bool { return doc.lines[i] > offset }) - 1
	if line < 0 {
		line = 0
	}
	return Pos{Line: line + 1, Column: offset - doc.lines[line] + 1}
}

// Location translates a span into a line/column location.
func (doc *Document) Location(span Span) *Location {
	start := doc.Position(span.Start)
	if span.IsEmpty() {
		return &Location{Start: start}
	}
	end := doc.Position(span.End)
	return &Location{Start: start, End: &end}
}
