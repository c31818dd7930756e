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

package asm

import (
	"fmt"
	"io"
	"strings"

	"github.com/pulumi/rune/pkg/diag/colors"
)

// Dump writes a disassembly of the buffer: every placed label on its own line before the instruction it precedes,
// and comments after the instruction they annotate.
func (a *Assembly) Dump(w io.Writer, color colors.Colorization) error {
	for i, inst := range a.instructions {
		if err := a.dumpLabels(w, i, color); err != nil {
			return err
		}
		line := fmt.Sprintf("  %04d = %v", i, inst)
		if comments := a.comments[i]; len(comments) > 0 {
			line = fmt.Sprintf("%-40s %s", line, color.Colorize(colors.SpecComment, "; "+strings.Join(comments, ", ")))
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	// Labels may also be placed past the last instruction.
	return a.dumpLabels(w, len(a.instructions), color)
}

func (a *Assembly) dumpLabels(w io.Writer, offset int, color colors.Colorization) error {
	for _, label := range a.labelsRev[offset] {
		if _, err := fmt.Fprintf(w, "%s:\n", color.Colorize(colors.SpecLabel, label.String())); err != nil {
			return err
		}
	}
	return nil
}
