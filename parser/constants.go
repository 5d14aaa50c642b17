package parser

import "minilang/lexer"

var (
	// lowest binding binary operators
	additiveOperators = map[lexer.TokenKind]bool{
		lexer.TokenPlus:  true,
		lexer.TokenMinus: true,
	}

	multiplicativeOperators = map[lexer.TokenKind]bool{
		lexer.TokenMultiply: true,
		lexer.TokenDivide:   true,
	}

	typeKeywords = map[lexer.TokenKind]bool{
		lexer.TokenInt:   true,
		lexer.TokenFloat: true,
	}
)
