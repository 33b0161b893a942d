// Package formula parses R-style table formulas of the form
// "cols ~ rows", where each side combines dataset columns with "+"
// (separate terms) and "*" (interactions), optionally annotated with a
// type cast ("age::Continuous"). The resulting AST nodes satisfy
// table.Noder, so the table compiler can anchor cells to them.
package formula

import "fmt"

// Parser is a recursive-descent parser over the formula token stream.
type Parser struct {
	lexer *Lexer
	cur   Token
	peek  Token
}

// Parse parses a complete table formula.
func Parse(input string) (*TableFormula, error) {
	p := &Parser{lexer: NewLexer(input)}
	p.nextToken()
	p.nextToken()
	return p.parseTableFormula()
}

// ParseExpr parses a bare axis expression (no "~").
func ParseExpr(input string) (Expr, error) {
	p := &Parser{lexer: NewLexer(input)}
	p.nextToken()
	p.nextToken()
	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if p.cur.Type != TOKEN_EOF {
		return nil, p.errorf("unexpected token %s after expression", p.cur.Type)
	}
	return expr, nil
}

func (p *Parser) nextToken() {
	p.cur = p.peek
	p.peek = p.lexer.NextToken()
}

func (p *Parser) errorf(format string, args ...any) error {
	return &ParseError{Pos: p.cur.Pos, Message: fmt.Sprintf(format, args...)}
}

func (p *Parser) parseTableFormula() (*TableFormula, error) {
	cols, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if p.cur.Type != TOKEN_TILDE {
		return nil, p.errorf("expected ~ between column and row expressions, got %s", p.cur.Type)
	}
	p.nextToken()
	rows, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if p.cur.Type != TOKEN_EOF {
		return nil, p.errorf("unexpected token %s after formula", p.cur.Type)
	}
	return &TableFormula{Cols: cols, Rows: rows}, nil
}

// parseExpr parses a "+" chain of terms.
func (p *Parser) parseExpr() (Expr, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for p.cur.Type == TOKEN_PLUS {
		pos := p.cur.Pos
		p.nextToken()
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		left = &BinaryExpr{Pos: pos, Op: TOKEN_PLUS, Left: left, Right: right}
	}
	return left, nil
}

// parseTerm parses a "*" chain of factors.
func (p *Parser) parseTerm() (Expr, error) {
	left, err := p.parseFactor()
	if err != nil {
		return nil, err
	}
	for p.cur.Type == TOKEN_STAR {
		pos := p.cur.Pos
		p.nextToken()
		right, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		left = &BinaryExpr{Pos: pos, Op: TOKEN_STAR, Left: left, Right: right}
	}
	return left, nil
}

// parseFactor parses a primary with an optional "::" type annotation.
func (p *Parser) parseFactor() (Expr, error) {
	switch p.cur.Type {
	case TOKEN_IDENT:
		v := &Variable{Pos: p.cur.Pos, Ident: p.cur.Literal}
		p.nextToken()
		if p.cur.Type == TOKEN_DCOLON {
			p.nextToken()
			if p.cur.Type != TOKEN_IDENT {
				return nil, p.errorf("expected type name after ::, got %s", p.cur.Type)
			}
			v.Type = p.cur.Literal
			p.nextToken()
		}
		return v, nil
	case TOKEN_NUMBER:
		n := &Number{Pos: p.cur.Pos, Literal: p.cur.Literal, Value: parseFloat(p.cur.Literal)}
		p.nextToken()
		return n, nil
	case TOKEN_LPAREN:
		p.nextToken()
		expr, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if p.cur.Type != TOKEN_RPAREN {
			return nil, p.errorf("expected ), got %s", p.cur.Type)
		}
		p.nextToken()
		return expr, nil
	default:
		return nil, p.errorf("unexpected token %s, expected a variable, number or (", p.cur.Type)
	}
}
