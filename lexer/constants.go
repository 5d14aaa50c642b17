package lexer

var (
	Keywords = map[string]TokenKind{
		"if":    TokenIf,
		"else":  TokenElse,
		"while": TokenWhile,
		"int":   TokenInt,
		"float": TokenFloat,
	}

	// single char tokens that never start a longer operator
	Units = map[byte]TokenKind{
		'+': TokenPlus,
		'-': TokenMinus,
		'*': TokenMultiply,
		'/': TokenDivide,
		'(': TokenLParen,
		')': TokenRParen,
		',': TokenComma,
		':': TokenColon,
		'{': TokenLBrace,
		'}': TokenRBrace,
	}

	ComparisonOperators = map[TokenKind]string{
		TokenEq:             "==",
		TokenNotEq:          "!=",
		TokenLess:           "<",
		TokenGreater:        ">",
		TokenLessOrEqual:    "<=",
		TokenGreaterOrEqual: ">=",
	}
)

func IsComparison(kind TokenKind) bool {
	_, ok := ComparisonOperators[kind]
	return ok
}
