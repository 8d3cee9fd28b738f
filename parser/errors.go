/*
File    : loxmix/parser/errors.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"fmt"

	"github.com/akashmaji946/loxmix/lexer"
)

// ErrorKind distinguishes the two ways parsing can fail.
type ErrorKind int

const (
	// UnexpectedEof: the token stream ran out mid-construct.
	UnexpectedEof ErrorKind = iota
	// UnexpectedToken: the next token cannot start or continue what's
	// being parsed.
	UnexpectedToken
)

// Error is a parse failure. Parsing aborts on the first one: there is no
// multi-error recovery the way scanning has.
type Error struct {
	Kind     ErrorKind
	Found    lexer.Kind
	Lexeme   string
	Expected string // human-readable description, empty if there's no single expected token
	Line     int
}

func (e *Error) Error() string {
	switch e.Kind {
	case UnexpectedEof:
		return fmt.Sprintf("[line %d] Error at end: Unexpected end of input.", e.Line)
	default:
		if e.Expected != "" {
			return fmt.Sprintf("[line %d] Error at '%s': Expected %s.", e.Line, e.Lexeme, e.Expected)
		}
		return fmt.Sprintf("[line %d] Error at '%s': Unexpected token.", e.Line, e.Lexeme)
	}
}
