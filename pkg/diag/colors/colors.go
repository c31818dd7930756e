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

package colors

import (
	"github.com/fatih/color"
)

// Colorization controls whether diagnostics are rendered with terminal colors.
type Colorization string

const (
	// Auto colorizes output only when the output is a terminal.
	Auto Colorization = "auto"
	// Always colorizes output.
	Always Colorization = "always"
	// Never colorizes output.
	Never Colorization = "never"
)

// Enabled returns true if text should be colorized under this setting.
func (c Colorization) Enabled() bool {
	switch c {
	case Always:
		return true
	case Never:
		return false
	default:
		return !color.NoColor
	}
}

func spec(attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	c.EnableColor()
	return c
}

// Special predefined colors for logical conditions.
var (
	SpecError     = spec(color.FgRed)      // for errors.
	SpecWarning   = spec(color.FgYellow)   // for warnings.
	SpecLocation  = spec(color.FgCyan)     // for source locations.
	SpecNote      = spec(color.FgWhite)    // for simple notes.
	SpecImportant = spec(color.FgHiYellow) // for particularly noteworthy messages.
	SpecLabel     = spec(color.FgHiBlue)   // for assembly labels.
	SpecComment   = spec(color.FgHiBlack)  // for assembly comments.
)

// Colorize renders s in the given color if the colorization setting enables it.
func (c Colorization) Colorize(spec *color.Color, s string) string {
	if !c.Enabled() {
		return s
	}
	return spec.Sprint(s)
}
