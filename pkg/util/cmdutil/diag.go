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

package cmdutil

import (
	"github.com/pulumi/rune/pkg/diag"
	"github.com/pulumi/rune/pkg/diag/colors"
	"github.com/pulumi/rune/pkg/util/contract"
)

var snk diag.Sink

// Diag returns the diagnostics sink shared by the command line tools.
func Diag() diag.Sink {
	if snk == nil {
		snk = diag.DefaultSink(diag.FormatOptions{Color: colors.Auto})
	}
	return snk
}

// InitDiag initializes the shared diagnostics sink with the given options.
func InitDiag(opts diag.FormatOptions) {
	contract.Assertf(snk == nil, "Cannot initialize diagnostics sink more than once")
	snk = diag.DefaultSink(opts)
}
