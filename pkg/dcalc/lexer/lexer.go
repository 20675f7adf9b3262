// Package lexer turns calculator input into tokens.
//
// Raw input first goes through Normalize, which makes every implicit
// product, bare call and postfix operator explicit. Lexer then tokenizes
// that normalized text for the parser.
package lexer

// Lexer represents the lexical analyzer over normalized text
type Lexer struct {
	input        string
	position     int  // current position in input (points to current char)
	readPosition int  // current reading position in input (after current char)
	ch           byte // current char under examination
}

// New creates a new lexer instance
func New(input string) *Lexer {
	l := &Lexer{input: input}
	l.readChar()
	return l
}

// readChar reads the next character and advances position
func (l *Lexer) readChar() {
	if l.readPosition >= len(l.input) {
		l.ch = 0
		l.position = l.readPosition
		return
	}
	l.ch = l.input[l.readPosition]
	l.position = l.readPosition
	l.readPosition++
}

// NextToken scans the input and returns the next token
func (l *Lexer) NextToken() Token {
	l.skipWhitespace()
	column := l.position + 1

	var tok Token
	switch l.ch {
	case 0:
		return Token{Type: EOF, Column: column}
	case '+':
		tok = newToken(PLUS, l.ch, column)
	case '-':
		tok = newToken(MINUS, l.ch, column)
	case '*':
		tok = newToken(ASTERISK, l.ch, column)
	case '/':
		tok = newToken(SLASH, l.ch, column)
	case ',':
		tok = newToken(COMMA, l.ch, column)
	case '(':
		tok = newToken(LPAREN, l.ch, column)
	case ')':
		tok = newToken(RPAREN, l.ch, column)
	default:
		if isDigit(l.ch) || l.ch == '.' {
			return Token{Type: NUMBER, Literal: l.readNumber(), Column: column}
		}
		if isLetter(l.ch) {
			return Token{Type: IDENT, Literal: l.readIdentifier(), Column: column}
		}
		tok = newToken(ILLEGAL, l.ch, column)
	}

	l.readChar()
	return tok
}

// newToken creates a new token with the given parameters
func newToken(tokenType TokenType, ch byte, column int) Token {
	return Token{Type: tokenType, Literal: string(ch), Column: column}
}

// readIdentifier reads a run of letters
func (l *Lexer) readIdentifier() string {
	position := l.position
	for isLetter(l.ch) {
		l.readChar()
	}
	return l.input[position:l.position]
}

// readNumber reads digits and decimal points; validity is the parser's call
func (l *Lexer) readNumber() string {
	position := l.position
	for isDigit(l.ch) || l.ch == '.' {
		l.readChar()
	}
	return l.input[position:l.position]
}

func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r' {
		l.readChar()
	}
}

func isLetter(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}
