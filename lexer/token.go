/*
File    : loxmix/lexer/token.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package lexer

import (
	"fmt"

	"github.com/akashmaji946/loxmix/numfmt"
)

// Kind identifies the lexical category of a Token. It is a closed sum
// type: every variant the scanner can produce is listed below, so a
// switch over Kind that handles them all needs no default case.
type Kind int

const (
	// LeftParen .. Semicolon: single-character structural punctuation.
	LeftParen Kind = iota
	RightParen
	LeftBrace
	RightBrace
	Comma
	Dot
	Semicolon

	// Plus .. Slash: arithmetic operators.
	Plus
	Minus
	Star
	Slash

	// Bang .. GreaterEqual: comparison/equality operators, one- and
	// two-character forms produced by maximal munch.
	Bang
	BangEqual
	Equal
	EqualEqual
	Less
	LessEqual
	Greater
	GreaterEqual

	// Identifier, String, Number: literal-bearing tokens. The payload
	// lives in Token.Lexeme/Value/Number depending on Kind.
	Identifier
	String
	Number

	// And .. While: reserved words.
	And
	Class
	Else
	False
	For
	Fun
	If
	Nil
	Or
	Print
	Return
	Super
	This
	True
	Var
	While

	// Eof is emitted exactly once, as the last token of every scan.
	Eof
)

// keywords maps reserved-word lexemes to their Kind. Any identifier-shaped
// lexeme not in this table is a plain Identifier.
var keywords = map[string]Kind{
	"and":    And,
	"class":  Class,
	"else":   Else,
	"false":  False,
	"for":    For,
	"fun":    Fun,
	"if":     If,
	"nil":    Nil,
	"or":     Or,
	"print":  Print,
	"return": Return,
	"super":  Super,
	"this":   This,
	"true":   True,
	"var":    Var,
	"while":  While,
}

// names gives each Kind its uppercase print-format name, e.g. "LEFT_PAREN".
var names = map[Kind]string{
	LeftParen:    "LEFT_PAREN",
	RightParen:   "RIGHT_PAREN",
	LeftBrace:    "LEFT_BRACE",
	RightBrace:   "RIGHT_BRACE",
	Comma:        "COMMA",
	Dot:          "DOT",
	Semicolon:    "SEMICOLON",
	Plus:         "PLUS",
	Minus:        "MINUS",
	Star:         "STAR",
	Slash:        "SLASH",
	Bang:         "BANG",
	BangEqual:    "BANG_EQUAL",
	Equal:        "EQUAL",
	EqualEqual:   "EQUAL_EQUAL",
	Less:         "LESS",
	LessEqual:    "LESS_EQUAL",
	Greater:      "GREATER",
	GreaterEqual: "GREATER_EQUAL",
	Identifier:   "IDENTIFIER",
	String:       "STRING",
	Number:       "NUMBER",
	And:          "AND",
	Class:        "CLASS",
	Else:         "ELSE",
	False:        "FALSE",
	For:          "FOR",
	Fun:          "FUN",
	If:           "IF",
	Nil:          "NIL",
	Or:           "OR",
	Print:        "PRINT",
	Return:       "RETURN",
	Super:        "SUPER",
	This:         "THIS",
	True:         "TRUE",
	Var:          "VAR",
	While:        "WHILE",
	Eof:          "EOF",
}

// String returns the uppercase name used by the token print format.
func (k Kind) String() string {
	if name, ok := names[k]; ok {
		return name
	}
	return "UNKNOWN"
}

// Token is a lexeme-sized record: a Kind, the line it started on, and
// whatever literal payload that Kind carries. Line is always >= 1.
type Token struct {
	Kind   Kind
	Lexeme string // raw source text: punctuation symbol, keyword spelling, identifier name, or number's digits
	Value  string // String literal's body with the surrounding quotes stripped; zero value otherwise
	Number float64
	Line   int
}

// lookupIdentifier classifies an identifier-shaped lexeme: a keyword hit
// returns that keyword's Kind, anything else is a plain Identifier.
func lookupIdentifier(text string) Kind {
	if kind, ok := keywords[text]; ok {
		return kind
	}
	return Identifier
}

// PrintLine renders the token in the exact "<TYPE> <LEXEME> <LITERAL>" format.
func (t Token) PrintLine() string {
	switch t.Kind {
	case Eof:
		return "EOF  null"
	case String:
		return fmt.Sprintf("STRING \"%s\" %s", t.Value, t.Value)
	case Number:
		return fmt.Sprintf("NUMBER %s %s", t.Lexeme, numfmt.WithDecimalPoint(t.Number))
	default:
		return fmt.Sprintf("%s %s null", t.Kind, t.Lexeme)
	}
}
