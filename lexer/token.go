/*
File    : gomix-lang/lexer/token.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package lexer

import "github.com/akashmaji946/gomix-lang/span"

// Kind classifies a Token. Unlike the teacher's go-mix lexer, which gives
// every fixed operator its own Kind (PLUS_OP, MINUS_OP, ...), this
// language supports user-declared operators built from a maximal run of
// operator characters, so all of them share a single Symbol kind — the
// parser and reassociator look at Token.Literal, not Token.Kind, to tell
// operators apart.
type Kind int

const (
	EOF Kind = iota
	Invalid

	Int
	Float
	String
	Identifier
	Symbol

	// Keywords
	KwLet
	KwIf
	KwElse
	KwWhile
	KwBreak
	KwContinue
	KwReturn
	KwFun
	KwStruct
	KwImpl
	KwInfixl
	KwInfixr
	KwTrue
	KwFalse

	// Punctuation
	LParen
	RParen
	LBrace
	RBrace
	LBracket
	RBracket
	Comma
	Semicolon
)

var kindNames = map[Kind]string{
	EOF: "EOF", Invalid: "Invalid",
	Int: "Int", Float: "Float", String: "String",
	Identifier: "Identifier", Symbol: "Symbol",
	KwLet: "let", KwIf: "if", KwElse: "else", KwWhile: "while",
	KwBreak: "break", KwContinue: "continue", KwReturn: "return",
	KwFun: "fun", KwStruct: "struct", KwImpl: "impl",
	KwInfixl: "infixl", KwInfixr: "infixr", KwTrue: "true", KwFalse: "false",
	LParen: "(", RParen: ")", LBrace: "{", RBrace: "}",
	LBracket: "[", RBracket: "]", Comma: ",", Semicolon: ";",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "?"
}

// keywords maps reserved words to their Kind, mirroring the teacher's
// KEYWORDS_MAP lookup used by readIdentifier to classify identifier-shaped
// lexemes.
var keywords = map[string]Kind{
	"let": KwLet, "if": KwIf, "else": KwElse, "while": KwWhile,
	"break": KwBreak, "continue": KwContinue, "return": KwReturn,
	"fun": KwFun, "struct": KwStruct, "impl": KwImpl,
	"infixl": KwInfixl, "infixr": KwInfixr, "true": KwTrue, "false": KwFalse,
}

// Token is a single lexical unit: its classification, the exact source
// text it was built from, and the span it occupies.
type Token struct {
	Kind    Kind
	Literal string
	Span    span.Span
}
