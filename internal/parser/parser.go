package parser

import "fmt"

// Parser is a recursive-descent parser over the canonical form
type Parser struct {
	lex     *lexer
	current token
}

// Parse parses a complete canonical expression. Trailing input after the
// expression is an error.
func Parse(input string) (Node, error) {
	p := &Parser{lex: newLexer(input)}
	if err := p.advance(); err != nil {
		return nil, err
	}
	node, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}
	if p.current.typ != tokenEOF {
		return nil, fmt.Errorf("unexpected token %q", p.current.text)
	}
	return node, nil
}

func (p *Parser) advance() error {
	tok, err := p.lex.next()
	if err != nil {
		return err
	}
	p.current = tok
	return nil
}

// parseAdditive handles + and - (lowest precedence)
func (p *Parser) parseAdditive() (Node, error) {
	left, err := p.parseMultiplicative()
	if err != nil {
		return nil, err
	}

	for p.current.typ == tokenPlus || p.current.typ == tokenMinus {
		op := '+'
		if p.current.typ == tokenMinus {
			op = '-'
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseMultiplicative()
		if err != nil {
			return nil, err
		}
		left = &Binary{Op: op, Left: left, Right: right}
	}

	return left, nil
}

// parseMultiplicative handles * and /
func (p *Parser) parseMultiplicative() (Node, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}

	for p.current.typ == tokenStar || p.current.typ == tokenSlash {
		op := '*'
		if p.current.typ == tokenSlash {
			op = '/'
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = &Binary{Op: op, Left: left, Right: right}
	}

	return left, nil
}

// parseUnary handles prefix - and +
func (p *Parser) parseUnary() (Node, error) {
	switch p.current.typ {
	case tokenMinus:
		if err := p.advance(); err != nil {
			return nil, err
		}
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &Unary{Op: '-', Operand: operand}, nil
	case tokenPlus:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return p.parseUnary()
	default:
		return p.parsePower()
	}
}

// parsePower handles ^, right-associative: 2^3^2 is 2^(3^2)
func (p *Parser) parsePower() (Node, error) {
	base, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}

	if p.current.typ == tokenCaret {
		if err := p.advance(); err != nil {
			return nil, err
		}
		exp, err := p.parseExponent()
		if err != nil {
			return nil, err
		}
		return &Binary{Op: '^', Left: base, Right: exp}, nil
	}

	return base, nil
}

// parseExponent allows a unary sign in the exponent, as in 2^-3
func (p *Parser) parseExponent() (Node, error) {
	if p.current.typ == tokenMinus {
		if err := p.advance(); err != nil {
			return nil, err
		}
		operand, err := p.parseExponent()
		if err != nil {
			return nil, err
		}
		return &Unary{Op: '-', Operand: operand}, nil
	}
	return p.parsePower()
}

// parsePrimary handles numbers, parenthesized expressions and function calls
func (p *Parser) parsePrimary() (Node, error) {
	switch p.current.typ {
	case tokenNumber:
		node := &Number{Value: p.current.numVal}
		if err := p.advance(); err != nil {
			return nil, err
		}
		return node, nil

	case tokenIdent:
		name := p.current.text
		if err := p.advance(); err != nil {
			return nil, err
		}
		if p.current.typ != tokenLParen {
			return nil, fmt.Errorf("expected '(' after %q", name)
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		arg, err := p.parseAdditive()
		if err != nil {
			return nil, err
		}
		if p.current.typ != tokenRParen {
			return nil, fmt.Errorf("expected ')' after argument of %q", name)
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &Call{Name: name, Arg: arg}, nil

	case tokenLParen:
		if err := p.advance(); err != nil {
			return nil, err
		}
		node, err := p.parseAdditive()
		if err != nil {
			return nil, err
		}
		if p.current.typ != tokenRParen {
			return nil, fmt.Errorf("expected ')'")
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		return node, nil

	default:
		if p.current.typ == tokenEOF {
			return nil, fmt.Errorf("unexpected end of expression")
		}
		return nil, fmt.Errorf("unexpected token %q", p.current.text)
	}
}
