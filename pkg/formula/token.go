package formula

import "fmt"

// TokenType identifies the type of a lexical token.
type TokenType int

// Token types produced by the lexer.
const (
	TOKEN_ILLEGAL TokenType = iota
	TOKEN_EOF
	TOKEN_IDENT
	TOKEN_NUMBER
	TOKEN_PLUS
	TOKEN_STAR
	TOKEN_TILDE
	TOKEN_DCOLON
	TOKEN_LPAREN
	TOKEN_RPAREN
)

func (t TokenType) String() string {
	switch t {
	case TOKEN_ILLEGAL:
		return "ILLEGAL"
	case TOKEN_EOF:
		return "EOF"
	case TOKEN_IDENT:
		return "IDENT"
	case TOKEN_NUMBER:
		return "NUMBER"
	case TOKEN_PLUS:
		return "+"
	case TOKEN_STAR:
		return "*"
	case TOKEN_TILDE:
		return "~"
	case TOKEN_DCOLON:
		return "::"
	case TOKEN_LPAREN:
		return "("
	case TOKEN_RPAREN:
		return ")"
	default:
		return fmt.Sprintf("TokenType(%d)", int(t))
	}
}

// Position is a location in formula source, 1-based.
type Position struct {
	Column int
	Offset int
}

// Token is a lexical token with its source position.
type Token struct {
	Type    TokenType
	Literal string
	Pos     Position
}
