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

package testutil

import (
	"github.com/pulumi/rune/pkg/diag"
)

// TestDiagSink suppresses message output, but captures them, so that they can be compared to expected results.
type TestDiagSink struct {
	Pwd      string
	sink     diag.Sink
	errors   []string
	warnings []string
}

var _ diag.Sink = (*TestDiagSink)(nil)

func NewTestDiagSink(pwd string) *TestDiagSink {
	return &TestDiagSink{
		Pwd: pwd,
		sink: diag.DefaultSink(diag.FormatOptions{
			Pwd: pwd,
		}),
	}
}

func (d *TestDiagSink) Count() int {
	return d.Errors() + d.Warnings()
}

func (d *TestDiagSink) Errors() int {
	return len(d.errors)
}

func (d *TestDiagSink) ErrorMsgs() []string {
	return d.errors
}

func (d *TestDiagSink) Warnings() int {
	return len(d.warnings)
}

func (d *TestDiagSink) WarningMsgs() []string {
	return d.warnings
}

func (d *TestDiagSink) Success() bool {
	return d.Errors() == 0
}

func (d *TestDiagSink) Errorf(dia *diag.Diag, args ...interface{}) {
	d.errors = append(d.errors, d.Stringify(dia, diag.Error, args...))
}

func (d *TestDiagSink) Warningf(dia *diag.Diag, args ...interface{}) {
	d.warnings = append(d.warnings, d.Stringify(dia, diag.Warning, args...))
}

func (d *TestDiagSink) Stringify(dia *diag.Diag, sev diag.Severity, args ...interface{}) string {
	return d.sink.Stringify(dia, sev, args...)
}

func (d *TestDiagSink) StringifyLocation(doc *diag.Document, span *diag.Span) string {
	return d.sink.StringifyLocation(doc, span)
}
