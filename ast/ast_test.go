package ast

import (
	"testing"

	"minilang/lexer"
)

func tok(kind lexer.TokenKind, text string) lexer.Token {
	return lexer.Token{LiteralToken: lexer.LiteralToken{Kind: kind, Text: text}}
}

func intFactor(text string, v int64) *Factor {
	return &Factor{Token: tok(lexer.TokenNumber, text), Value: v, ValueType: IntType}
}

func TestString(t *testing.T) {
	mul := &BinaryOperation{
		Token:     tok(lexer.TokenMultiply, "*"),
		Left:      intFactor("4", 4),
		Operator:  lexer.TokenMultiply,
		Right:     intFactor("2", 2),
		ValueType: IntType,
	}
	sum := &BinaryOperation{
		Token:     tok(lexer.TokenPlus, "+"),
		Left:      intFactor("3", 3),
		Operator:  lexer.TokenPlus,
		Right:     mul,
		ValueType: IntType,
	}
	x := &Factor{Token: tok(lexer.TokenIdentifier, "x"), Value: "x", ValueType: IntType}

	program := &Block{
		Statements: []Statement{
			&Declaration{Token: tok(lexer.TokenInt, "int"), VarType: IntType, Name: "x", Value: sum},
			&WhileStatement{
				Token: tok(lexer.TokenWhile, "while"),
				Condition: &BooleanExpression{
					Left:     x,
					Operator: tok(lexer.TokenLess, "<"),
					Right:    intFactor("10", 10),
				},
				Body: &Block{Statements: []Statement{
					&Assignment{Token: tok(lexer.TokenIdentifier, "x"), Name: "x", Value: x, ValueType: IntType},
				}},
			},
			&IfStatement{
				Token:       tok(lexer.TokenIf, "if"),
				Condition:   x,
				Consequence: &Block{},
				Alternative: &Block{Statements: []Statement{
					&FunctionCall{Token: tok(lexer.TokenIdentifier, "print"), Name: "print", Arguments: []Expression{x, mul}},
				}},
			},
		},
	}

	expected := "int x = (3 + (4 * 2)); while (x < 10) { x = x }; if x {  } else { print(x, (4 * 2)) }"
	if actual := program.String(); actual != expected {
		t.Errorf("expected=%q, got=%q", expected, actual)
	}
}

func TestTypeOf(t *testing.T) {
	tests := []struct {
		expr     Expression
		expected ValueType
	}{
		{intFactor("1", 1), IntType},
		{&Factor{Token: tok(lexer.TokenFNumber, "1.5"), Value: 1.5, ValueType: FloatType}, FloatType},
		{&BinaryOperation{Token: tok(lexer.TokenPlus, "+"), Left: intFactor("1", 1), Right: intFactor("2", 2), ValueType: IntType}, IntType},
		{&FunctionCall{Name: "f"}, UnknownType},
		{&BooleanExpression{Left: intFactor("1", 1), Operator: tok(lexer.TokenEq, "=="), Right: intFactor("1", 1)}, UnknownType},
	}

	for _, tt := range tests {
		if actual := TypeOf(tt.expr); actual != tt.expected {
			t.Errorf("%s: expected=%q, got=%q", tt.expr, tt.expected, actual)
		}
	}
}

func TestFactorIsIdentifier(t *testing.T) {
	if intFactor("1", 1).IsIdentifier() {
		t.Error("literal reported as identifier")
	}
	ident := &Factor{Token: tok(lexer.TokenIdentifier, "y"), Value: "y"}
	if !ident.IsIdentifier() {
		t.Error("identifier not reported as identifier")
	}
}
