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
	"fmt"
)

// Pos represents a position in a file.
type Pos struct {
	Line   int // a 1-based line number
	Column int // a 1-based column number
}

// EmptyPos may be used when no position is needed.
var EmptyPos = Pos{0, 0}

// IsEmpty returns true if the Pos information is missing.
func (pos Pos) IsEmpty() bool {
	return pos.Line == 0 && pos.Column == 0
}

func (pos Pos) String() string {
	return fmt.Sprintf("%d:%d", pos.Line, pos.Column)
}

// Span is a half-open range of byte offsets [Start, End) into a source document.  Spans are plain values and are
// copied freely; every token, AST node and instruction carries one.
type Span struct {
	Start int // the offset of the first byte.
	End   int // the offset one past the last byte.
}

// NewSpan creates a new span covering [start, end).
func NewSpan(start, end int) Span {
	return Span{Start: start, End: end}
}

// EmptySpan may be used when no source range is available.
var EmptySpan = Span{0, 0}

// Join returns the smallest span that covers both this span and the other.
func (s Span) Join(other Span) Span {
	start, end := s.Start, s.End
	if other.Start < start {
		start = other.Start
	}
	if other.End > end {
		end = other.End
	}
	return Span{Start: start, End: end}
}

// Len returns the number of bytes covered by the span.
func (s Span) Len() int {
	return s.End - s.Start
}

// IsEmpty returns true if the span covers no bytes.
func (s Span) IsEmpty() bool {
	return s.Start == s.End
}

// Contains returns true if the other span lies entirely within this one.
func (s Span) Contains(other Span) bool {
	return s.Start <= other.Start && other.End <= s.End
}

func (s Span) String() string {
	return fmt.Sprintf("%d..%d", s.Start, s.End)
}

// Location represents a region spanning two positions in a file.
type Location struct {
	Start Pos  // a starting position.
	End   *Pos // an ending position; if nil, represents a point.
}

// EmptyLocation may be used when no position information is available.
var EmptyLocation = Location{EmptyPos, nil}

// IsEmpty returns true if the Location information is missing.
func (loc Location) IsEmpty() bool {
	return loc.Start.IsEmpty() && (loc.End == nil || loc.End.IsEmpty())
}
