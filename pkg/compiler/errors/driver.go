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

package errors

// Driver errors are in the [500-600) range.
var (
	ErrorIO              = newError(500, "An IO error occurred during the current operation: %v")
	ErrorIllegalOptions  = newError(501, "A syntax error was detected while reading compiler options: %v")
	ErrorInvalidExtern   = newError(502, "Extern '%v' is not a valid item path")
	WarningUnusedExterns = newWarning(503, "Extern '%v' is declared but never called")
)
