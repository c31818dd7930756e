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

package ast

import (
	"fmt"

	"github.com/pulumi/rune/pkg/diag"
	"github.com/pulumi/rune/pkg/util/contract"
)

// Kind is a type discriminator for tokens.
type Kind int

const (
	IdentKind Kind = iota + 1
	LitIntKind
	LitStrKind

	// Keywords.
	FnKind
	StructKind
	LetKind
	IfKind
	ElseKind
	WhileKind
	LoopKind
	BreakKind
	ReturnKind
	MatchKind
	AwaitKind
	TrueKind
	FalseKind

	// Punctuation.
	CommaKind
	SemiKind
	DotKind
	ColonKind
	ColonColonKind
	EqKind
	EqEqKind
	BangEqKind
	LtKind
	LtEqKind
	GtKind
	GtEqKind
	PlusKind
	MinusKind
	StarKind
	SlashKind
	PercentKind
	BangKind
	AmpAmpKind
	PipePipeKind
	FatArrowKind
	UnderscoreKind

	// Delimiters.
	OpenParenKind
	CloseParenKind
	OpenBraceKind
	CloseBraceKind
	OpenBracketKind
	CloseBracketKind
)

var kindStrings = map[Kind]string{
	IdentKind:        "identifier",
	LitIntKind:       "integer literal",
	LitStrKind:       "string literal",
	FnKind:           "`fn`",
	StructKind:       "`struct`",
	LetKind:          "`let`",
	IfKind:           "`if`",
	ElseKind:         "`else`",
	WhileKind:        "`while`",
	LoopKind:         "`loop`",
	BreakKind:        "`break`",
	ReturnKind:       "`return`",
	MatchKind:        "`match`",
	AwaitKind:        "`await`",
	TrueKind:         "`true`",
	FalseKind:        "`false`",
	CommaKind:        "`,`",
	SemiKind:         "`;`",
	DotKind:          "`.`",
	ColonKind:        "`:`",
	ColonColonKind:   "`::`",
	EqKind:           "`=`",
	EqEqKind:         "`==`",
	BangEqKind:       "`!=`",
	LtKind:           "`<`",
	LtEqKind:         "`<=`",
	GtKind:           "`>`",
	GtEqKind:         "`>=`",
	PlusKind:         "`+`",
	MinusKind:        "`-`",
	StarKind:         "`*`",
	SlashKind:        "`/`",
	PercentKind:      "`%`",
	BangKind:         "`!`",
	AmpAmpKind:       "`&&`",
	PipePipeKind:     "`||`",
	FatArrowKind:     "`=>`",
	UnderscoreKind:   "`_`",
	OpenParenKind:    "`(`",
	CloseParenKind:   "`)`",
	OpenBraceKind:    "`{`",
	CloseBraceKind:   "`}`",
	OpenBracketKind:  "`[`",
	CloseBracketKind: "`]`",
}

func (k Kind) String() string {
	if s, has := kindStrings[k]; has {
		return s
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Keywords maps the reserved words of the language onto their token kinds.
var Keywords = map[string]Kind{
	"fn":     FnKind,
	"struct": StructKind,
	"let":    LetKind,
	"if":     IfKind,
	"else":   ElseKind,
	"while":  WhileKind,
	"loop":   LoopKind,
	"break":  BreakKind,
	"return": ReturnKind,
	"match":  MatchKind,
	"await":  AwaitKind,
	"true":   TrueKind,
	"false":  FalseKind,
	"_":      UnderscoreKind,
}

// Delimiter is one of the bracketing pairs.
type Delimiter int

const (
	Parenthesis Delimiter = iota
	Brace
	Bracket
)

// Open returns the kind of the opening token for the delimiter.
func Open(d Delimiter) Kind {
	switch d {
	case Parenthesis:
		return OpenParenKind
	case Brace:
		return OpenBraceKind
	case Bracket:
		return OpenBracketKind
	}
	contract.Failf("Unrecognized delimiter %v", int(d))
	return 0
}

// Close returns the kind of the closing token for the delimiter.
func Close(d Delimiter) Kind {
	switch d {
	case Parenthesis:
		return CloseParenKind
	case Brace:
		return CloseBraceKind
	case Bracket:
		return CloseBracketKind
	}
	contract.Failf("Unrecognized delimiter %v", int(d))
	return 0
}

// Token is a single lexical token along with the source range it was scanned from.
type Token struct {
	Kind Kind
	Span diag.Span
}

func (t Token) String() string {
	return fmt.Sprintf("%v@%v", t.Kind, t.Span)
}
