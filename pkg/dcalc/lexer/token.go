package lexer

import "fmt"

// TokenType represents different types of tokens
type TokenType int

const (
	// Special tokens
	ILLEGAL TokenType = iota
	EOF

	// Identifiers and literals
	IDENT  // sin, pow, pi, Ans
	NUMBER // 42, 3.14, .5

	// Operators
	PLUS     // +
	MINUS    // -
	ASTERISK // *
	SLASH    // /

	// Delimiters
	COMMA  // ,
	LPAREN // (
	RPAREN // )
)

// Token represents a single token of a normalized expression
type Token struct {
	Type    TokenType
	Literal string
	Column  int
}

// String returns a string representation of the token
func (t Token) String() string {
	return fmt.Sprintf("{Type: %s, Literal: %s, Column: %d}", t.Type, t.Literal, t.Column)
}

// String returns a string representation of the token type
func (tt TokenType) String() string {
	switch tt {
	case ILLEGAL:
		return "ILLEGAL"
	case EOF:
		return "EOF"
	case IDENT:
		return "IDENT"
	case NUMBER:
		return "NUMBER"
	case PLUS:
		return "+"
	case MINUS:
		return "-"
	case ASTERISK:
		return "*"
	case SLASH:
		return "/"
	case COMMA:
		return ","
	case LPAREN:
		return "("
	case RPAREN:
		return ")"
	default:
		return fmt.Sprintf("TokenType(%d)", int(tt))
	}
}
