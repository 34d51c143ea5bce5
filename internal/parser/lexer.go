package parser

import (
	"fmt"
	"strconv"
)

type tokenType int

const (
	tokenEOF tokenType = iota
	tokenNumber
	tokenIdent
	tokenPlus
	tokenMinus
	tokenStar
	tokenSlash
	tokenCaret
	tokenLParen
	tokenRParen
)

type token struct {
	typ    tokenType
	text   string
	numVal float64
}

// lexer walks the canonical form byte by byte. Canonical form is pure ASCII;
// anything else is an unexpected token.
type lexer struct {
	input string
	pos   int
}

func newLexer(input string) *lexer {
	return &lexer{input: input}
}

func (l *lexer) peek() byte {
	if l.pos >= len(l.input) {
		return 0
	}
	return l.input[l.pos]
}

func isDigit(c byte) bool  { return c >= '0' && c <= '9' }
func isLetter(c byte) bool { return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' }

func (l *lexer) next() (token, error) {
	for l.peek() == ' ' || l.peek() == '\t' {
		l.pos++
	}

	c := l.peek()
	switch c {
	case 0:
		return token{typ: tokenEOF}, nil
	case '+':
		l.pos++
		return token{typ: tokenPlus, text: "+"}, nil
	case '-':
		l.pos++
		return token{typ: tokenMinus, text: "-"}, nil
	case '*':
		l.pos++
		return token{typ: tokenStar, text: "*"}, nil
	case '/':
		l.pos++
		return token{typ: tokenSlash, text: "/"}, nil
	case '^':
		l.pos++
		return token{typ: tokenCaret, text: "^"}, nil
	case '(':
		l.pos++
		return token{typ: tokenLParen, text: "("}, nil
	case ')':
		l.pos++
		return token{typ: tokenRParen, text: ")"}, nil
	}

	if isDigit(c) || c == '.' {
		return l.readNumber()
	}
	if isLetter(c) {
		start := l.pos
		for isLetter(l.peek()) || isDigit(l.peek()) {
			l.pos++
		}
		return token{typ: tokenIdent, text: l.input[start:l.pos]}, nil
	}

	return token{}, fmt.Errorf("unexpected character %q at position %d", c, l.pos)
}

// readNumber reads a decimal literal. A literal with more than one dot, or a
// bare ".", is malformed input.
func (l *lexer) readNumber() (token, error) {
	start := l.pos
	dots := 0
	for isDigit(l.peek()) || l.peek() == '.' {
		if l.peek() == '.' {
			dots++
		}
		l.pos++
	}
	text := l.input[start:l.pos]
	if dots > 1 || text == "." {
		return token{}, fmt.Errorf("malformed number %q at position %d", text, start)
	}
	val, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return token{}, fmt.Errorf("malformed number %q at position %d", text, start)
	}
	return token{typ: tokenNumber, text: text, numVal: val}, nil
}
