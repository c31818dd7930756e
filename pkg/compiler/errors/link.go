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

// Resolution and link errors are in the [400-500) range.
var (
	ErrorMissingLabel          = newError(400, "Jump to label '%v', which was never placed")
	ErrorMissingFunction       = newError(401, "Missing function '%v' (called from %v site(s))%v")
	ErrorStackImbalance        = newError(402, "Function '%v' has an unbalanced stack: %v")
	ErrorDuplicateExtern       = newError(403, "Extern '%v' collides with a function declared in this unit")
	ErrorArgumentCountMismatch = newError(404, "Function '%v' expects %v arguments; got %v instead")
)
