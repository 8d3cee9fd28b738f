/*
File    : loxmix/parser/parser.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package parser implements a Pratt parser (top-down operator precedence
// parsing) over a pre-scanned token stream. It produces either a single
// expression tree or an ordered sequence of Print statements, chosen by
// whether the stream opens with the `print` keyword.
package parser

import (
	"github.com/akashmaji946/loxmix/lexer"
	"github.com/akashmaji946/loxmix/value"
)

// Binding powers. Left and right differ by one to make the operators
// left-associative: re-entering parseExpression with rbp = lbp+1 refuses
// to swallow another operator of the same precedence, so it gets picked
// up by the caller's loop instead and nests to the left. Comparison is
// the loosest binding, then additive, then multiplicative, so
// `1 + 2 < 3 * 4` parses as `(< (+ 1 2) (* 3 4))`.
const (
	lowestPriority = 0

	compareL   = 1
	compareR   = 2
	additiveL  = 3
	additiveR  = 4
	multL      = 5
	multR      = 6
	prefixBind = 1 << 30 // binds tighter than everything else
)

// Parser consumes an already-scanned, error-free token stream (a scan
// pass finds lexical errors separately, before a Parser is ever built).
type Parser struct {
	tokens []lexer.Token
	pos    int
}

// New builds a Parser over tokens, which must end with an Eof token.
func New(tokens []lexer.Token) *Parser {
	return &Parser{tokens: tokens}
}

func (p *Parser) current() lexer.Token {
	return p.tokens[p.pos]
}

func (p *Parser) advance() lexer.Token {
	tok := p.tokens[p.pos]
	if tok.Kind != lexer.Eof {
		p.pos++
	}
	return tok
}

// Parse runs the parser to completion: a `print`-first stream yields a
// ProgramTree, anything else is parsed as a single ExpressionTree and
// must consume every remaining token.
func (p *Parser) Parse() (*Tree, *Error) {
	if p.current().Kind == lexer.Print {
		stmts, err := p.parseStatements()
		if err != nil {
			return nil, err
		}
		return &Tree{Kind: ProgramTree, Statements: stmts}, nil
	}

	expr, err := p.parseExpression(lowestPriority)
	if err != nil {
		return nil, err
	}
	if tail := p.current(); tail.Kind != lexer.Eof {
		return nil, &Error{Kind: UnexpectedToken, Found: tail.Kind, Lexeme: tail.Lexeme, Line: tail.Line}
	}
	return &Tree{Kind: ExpressionTree, Expr: expr}, nil
}

func (p *Parser) parseStatements() ([]Stmt, *Error) {
	var stmts []Stmt
	for p.current().Kind != lexer.Eof {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	return stmts, nil
}

func (p *Parser) parseStatement() (Stmt, *Error) {
	keyword := p.advance() // consume 'print'
	if keyword.Kind != lexer.Print {
		return nil, &Error{Kind: UnexpectedToken, Found: keyword.Kind, Lexeme: keyword.Lexeme, Expected: "'print'", Line: keyword.Line}
	}
	expr, err := p.parseExpression(lowestPriority)
	if err != nil {
		return nil, err
	}
	semi := p.current()
	if semi.Kind == lexer.Eof {
		return nil, &Error{Kind: UnexpectedEof, Line: semi.Line}
	}
	if semi.Kind != lexer.Semicolon {
		return nil, &Error{Kind: UnexpectedToken, Found: semi.Kind, Lexeme: semi.Lexeme, Expected: "';'", Line: semi.Line}
	}
	p.advance()
	return &Print{LineNo: keyword.Line, Expr: expr}, nil
}

// parseExpression is the Pratt loop: parse a prefix form for lhs, then
// keep folding in infix operators whose left binding power is at least
// minBP.
func (p *Parser) parseExpression(minBP int) (Expr, *Error) {
	lhs, err := p.parsePrefix()
	if err != nil {
		return nil, err
	}

	for {
		tok := p.current()
		if tok.Kind == lexer.Eof || tok.Kind == lexer.RightParen || tok.Kind == lexer.Semicolon {
			break
		}

		if arithOp, lbp, rbp, ok := arithmeticOperator(tok.Kind); ok {
			if lbp < minBP {
				break
			}
			p.advance()
			rhs, err := p.parseExpression(rbp)
			if err != nil {
				return nil, err
			}
			lhs = &Arithmetic{LineNo: lhs.Line(), Op: arithOp, Left: lhs, Right: rhs}
			continue
		}

		if cmpOp, lbp, rbp, ok := comparisonOperator(tok.Kind); ok {
			if lbp < minBP {
				break
			}
			p.advance()
			rhs, err := p.parseExpression(rbp)
			if err != nil {
				return nil, err
			}
			lhs = &Comparison{LineNo: lhs.Line(), Op: cmpOp, Left: lhs, Right: rhs}
			continue
		}

		return nil, &Error{Kind: UnexpectedToken, Found: tok.Kind, Lexeme: tok.Lexeme, Line: tok.Line}
	}

	return lhs, nil
}

func (p *Parser) parsePrefix() (Expr, *Error) {
	tok := p.advance()

	switch tok.Kind {
	case lexer.True:
		return &Literal{LineNo: tok.Line, Value: value.Boolean{Value: true}}, nil
	case lexer.False:
		return &Literal{LineNo: tok.Line, Value: value.Boolean{Value: false}}, nil
	case lexer.Nil:
		return &Literal{LineNo: tok.Line, Value: value.Nil{}}, nil
	case lexer.Number:
		return &Literal{LineNo: tok.Line, Value: value.Number{Value: tok.Number}}, nil
	case lexer.String:
		return &Literal{LineNo: tok.Line, Value: value.String{Value: tok.Value}}, nil

	case lexer.LeftParen:
		inner, err := p.parseExpression(lowestPriority)
		if err != nil {
			return nil, err
		}
		closing := p.current()
		if closing.Kind != lexer.RightParen {
			return nil, &Error{Kind: UnexpectedToken, Found: closing.Kind, Lexeme: closing.Lexeme, Expected: "')'", Line: closing.Line}
		}
		p.advance()
		return &Group{LineNo: tok.Line, Inner: inner}, nil

	case lexer.Bang:
		right, err := p.parseExpression(prefixBind)
		if err != nil {
			return nil, err
		}
		return &Unary{LineNo: tok.Line, Op: Not, Right: right}, nil

	case lexer.Minus:
		right, err := p.parseExpression(prefixBind)
		if err != nil {
			return nil, err
		}
		return &Unary{LineNo: tok.Line, Op: Negate, Right: right}, nil

	case lexer.Eof:
		return nil, &Error{Kind: UnexpectedEof, Line: tok.Line}

	default:
		return nil, &Error{Kind: UnexpectedToken, Found: tok.Kind, Lexeme: tok.Lexeme, Line: tok.Line}
	}
}

func arithmeticOperator(kind lexer.Kind) (op ArithmeticOp, lbp, rbp int, ok bool) {
	switch kind {
	case lexer.Plus:
		return Add, additiveL, additiveR, true
	case lexer.Minus:
		return Sub, additiveL, additiveR, true
	case lexer.Star:
		return Mul, multL, multR, true
	case lexer.Slash:
		return Div, multL, multR, true
	default:
		return 0, 0, 0, false
	}
}

func comparisonOperator(kind lexer.Kind) (op ComparisonOp, lbp, rbp int, ok bool) {
	switch kind {
	case lexer.EqualEqual:
		return Eq, compareL, compareR, true
	case lexer.BangEqual:
		return Ne, compareL, compareR, true
	case lexer.Less:
		return Lt, compareL, compareR, true
	case lexer.LessEqual:
		return Le, compareL, compareR, true
	case lexer.Greater:
		return Gt, compareL, compareR, true
	case lexer.GreaterEqual:
		return Ge, compareL, compareR, true
	default:
		return 0, 0, 0, false
	}
}
