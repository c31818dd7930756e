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

// Lexer and parser errors are in the [100-200) range.
var (
	ErrorUnexpectedChar      = newError(100, "Unexpected character %q")
	ErrorUnterminatedString  = newError(101, "Unterminated string literal")
	ErrorUnexpectedToken     = newError(102, "Unexpected token %v; expected %v")
	ErrorUnexpectedEOF       = newError(103, "Unexpected end of input; expected %v")
	ErrorExpectedIdent       = newError(104, "Expected an identifier; got %v")
	ErrorExpectedExpr        = newError(105, "Expected an expression; got %v")
	ErrorExpectedDecl        = newError(106, "Expected a declaration (`fn` or `struct`); got %v")
	ErrorIllegalAssignTarget = newError(107, "Cannot assign to this expression; only locals and index expressions may be assigned")
	ErrorIntegerOutOfRange   = newError(108, "Integer literal %v is out of range")
	ErrorExpectedPattern     = newError(109, "Expected a pattern; got %v")
	ErrorInvalidEscape       = newError(110, "Invalid escape sequence '\\%c' in string literal")
)
