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

// Package logging wires the glog flags that control verbosity and destinations for the whole toolchain.
package logging

import (
	"flag"
	"strconv"

	"github.com/golang/glog"

	"github.com/pulumi/rune/pkg/util/contract"
)

var (
	LogToStderr = false // true if logging is being redirected to stderr.
	Verbose     = 0     // >0 if verbose logging is enabled at a particular level.
)

// InitLogging ensures the glog library has been initialized with the given settings.
func InitLogging(logToStderr bool, verbose int) {
	// Remember the settings in case someone inquires.
	LogToStderr = logToStderr
	Verbose = verbose

	// glog can only be steered through its flags, so poke at them directly.
	if !flag.Parsed() {
		contract.IgnoreError(flag.CommandLine.Parse(nil))
	}
	setFlag("logtostderr", strconv.FormatBool(logToStderr))
	setFlag("v", strconv.Itoa(verbose))
}

func setFlag(name, value string) {
	f := flag.Lookup(name)
	contract.Assertf(f != nil, "glog flag %v is not registered", name)
	contract.IgnoreError(f.Value.Set(value))
}

// Flush writes any pending log records.
func Flush() {
	glog.Flush()
}

// V reports whether verbose logging at the given level is on.
func V(level glog.Level) bool {
	return bool(glog.V(level))
}
