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

// Code generation errors are in the [200-300) range.
var (
	ErrorUnsupportedExpr    = newError(200, "Unsupported expression %v")
	ErrorMissingLocal       = newError(201, "No local variable named '%v'")
	ErrorBreakOutsideLoop   = newError(202, "`break` may only be used inside of a loop")
	ErrorDuplicateFunction  = newError(203, "A function named '%v' has already been declared")
	ErrorDuplicateStruct    = newError(204, "A struct named '%v' has already been declared")
	ErrorDuplicateField     = newError(205, "Field '%v' is declared more than once in struct '%v'")
	ErrorDuplicateArgument  = newError(206, "Argument '%v' is declared more than once in function '%v'")
	ErrorUnsupportedPattern = newError(207, "Unsupported pattern %v")
)
