package lexer

import "fmt"

type TokenKind string

const (

	// Keywords
	TokenIf    TokenKind = "IF"
	TokenElse  TokenKind = "ELSE"
	TokenWhile TokenKind = "WHILE"
	TokenInt   TokenKind = "INT"
	TokenFloat TokenKind = "FLOAT"

	// Units
	TokenLParen TokenKind = "LPAREN"
	TokenRParen TokenKind = "RPAREN"
	TokenLBrace TokenKind = "LBRACE"
	TokenRBrace TokenKind = "RBRACE"
	TokenComma  TokenKind = "COMMA"
	TokenColon  TokenKind = "COLON"

	// Arithmetic Operators
	TokenPlus     TokenKind = "PLUS"
	TokenMinus    TokenKind = "MINUS"
	TokenMultiply TokenKind = "MULTIPLY"
	TokenDivide   TokenKind = "DIVIDE"

	// Comparison Operators
	TokenEq             TokenKind = "EQ"
	TokenNotEq          TokenKind = "NEQ"
	TokenLess           TokenKind = "LESS"
	TokenGreater        TokenKind = "GREATER"
	TokenLessOrEqual    TokenKind = "LTE"
	TokenGreaterOrEqual TokenKind = "GTE"

	// Bind Operators
	TokenEquals TokenKind = "EQUALS"

	// Var Naming
	TokenIdentifier TokenKind = "IDENTIFIER"

	// number literals
	TokenNumber  TokenKind = "NUMBER"
	TokenFNumber TokenKind = "FNUMBER"

	// EOF
	TokenEOF TokenKind = "EOF"
)

type LiteralToken struct {
	Text string
	Kind TokenKind
}

// Position locates a token in the source. Offset is a byte offset, Row and
// Col are 1-based.
type Position struct {
	Offset int
	Row    int
	Col    int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Row, p.Col)
}

type Token struct {
	LiteralToken
	// Int is set for NUMBER tokens, Float for FNUMBER tokens.
	Int   int64
	Float float64
	Pos   Position
}

func (t Token) String() string {
	switch t.Kind {
	case TokenEOF:
		return string(TokenEOF)
	case TokenIdentifier, TokenNumber, TokenFNumber:
		return fmt.Sprintf("%s(%s)", t.Kind, t.Text)
	default:
		return string(t.Kind)
	}
}

type Lexer struct {
	Content string
	Row     int
	Col     int
	Cur     int
}
