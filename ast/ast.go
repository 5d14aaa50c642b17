package ast

import (
	"bytes"
	"strings"

	"minilang/lexer"
)

type ValueType string

const (
	IntType   ValueType = "int"
	FloatType ValueType = "float"
	// UnknownType marks an expression whose type could not be resolved,
	// e.g. an undeclared identifier or a function call.
	UnknownType ValueType = ""
)

type Node interface {
	TokenLiteral() string
	String() string
	GetToken() lexer.Token
}

type Statement interface {
	Node
	statementNode()
}

type Expression interface {
	Node
	expressionNode()
}

type Block struct {
	Token      lexer.Token // first token of the block
	Statements []Statement
}

func (b *Block) TokenLiteral() string  { return b.Token.Text }
func (b *Block) GetToken() lexer.Token { return b.Token }
func (b *Block) String() string {
	stmts := make([]string, 0, len(b.Statements))
	for _, s := range b.Statements {
		stmts = append(stmts, s.String())
	}
	return strings.Join(stmts, "; ")
}

type Declaration struct {
	Token   lexer.Token // the int or float token
	VarType ValueType
	Name    string
	Value   Expression
}

func (d *Declaration) statementNode()        {}
func (d *Declaration) TokenLiteral() string  { return d.Token.Text }
func (d *Declaration) GetToken() lexer.Token { return d.Token }
func (d *Declaration) String() string {
	var out bytes.Buffer
	out.WriteString(string(d.VarType) + " ")
	out.WriteString(d.Name)
	out.WriteString(" = ")
	if d.Value != nil {
		out.WriteString(d.Value.String())
	}
	return out.String()
}

type Assignment struct {
	Token lexer.Token // the identifier token
	Name  string
	Value Expression
	// ValueType is the declared type of the target, UnknownType when the
	// target was never declared.
	ValueType ValueType
}

func (a *Assignment) statementNode()        {}
func (a *Assignment) TokenLiteral() string  { return a.Token.Text }
func (a *Assignment) GetToken() lexer.Token { return a.Token }
func (a *Assignment) String() string {
	var out bytes.Buffer
	out.WriteString(a.Name)
	out.WriteString(" = ")
	if a.Value != nil {
		out.WriteString(a.Value.String())
	}
	return out.String()
}

type IfStatement struct {
	Token       lexer.Token // the if token
	Condition   Expression
	Consequence *Block
	Alternative *Block // nil without an else branch
}

func (is *IfStatement) statementNode()        {}
func (is *IfStatement) TokenLiteral() string  { return is.Token.Text }
func (is *IfStatement) GetToken() lexer.Token { return is.Token }
func (is *IfStatement) String() string {
	var out bytes.Buffer
	out.WriteString("if ")
	out.WriteString(is.Condition.String())
	out.WriteString(" { ")
	out.WriteString(is.Consequence.String())
	out.WriteString(" }")
	if is.Alternative != nil {
		out.WriteString(" else { ")
		out.WriteString(is.Alternative.String())
		out.WriteString(" }")
	}
	return out.String()
}

type WhileStatement struct {
	Token     lexer.Token // the while token
	Condition Expression
	Body      *Block
}

func (ws *WhileStatement) statementNode()        {}
func (ws *WhileStatement) TokenLiteral() string  { return ws.Token.Text }
func (ws *WhileStatement) GetToken() lexer.Token { return ws.Token }
func (ws *WhileStatement) String() string {
	var out bytes.Buffer
	out.WriteString("while ")
	out.WriteString(ws.Condition.String())
	out.WriteString(" { ")
	out.WriteString(ws.Body.String())
	out.WriteString(" }")
	return out.String()
}

type BinaryOperation struct {
	Token     lexer.Token // the operator token
	Left      Expression
	Operator  lexer.TokenKind
	Right     Expression
	ValueType ValueType
}

func (bo *BinaryOperation) expressionNode()       {}
func (bo *BinaryOperation) TokenLiteral() string  { return bo.Token.Text }
func (bo *BinaryOperation) GetToken() lexer.Token { return bo.Token }
func (bo *BinaryOperation) String() string {
	var out bytes.Buffer
	out.WriteString("(")
	out.WriteString(bo.Left.String())
	out.WriteString(" " + bo.Token.Text + " ")
	out.WriteString(bo.Right.String())
	out.WriteString(")")
	return out.String()
}

// BooleanExpression is a single comparison. It only appears as the
// condition of an if or while and carries no value type.
type BooleanExpression struct {
	Left     Expression
	Operator lexer.Token
	Right    Expression
}

func (be *BooleanExpression) expressionNode()       {}
func (be *BooleanExpression) TokenLiteral() string  { return be.Operator.Text }
func (be *BooleanExpression) GetToken() lexer.Token { return be.Operator }
func (be *BooleanExpression) String() string {
	var out bytes.Buffer
	out.WriteString("(")
	out.WriteString(be.Left.String())
	out.WriteString(" " + be.Operator.Text + " ")
	out.WriteString(be.Right.String())
	out.WriteString(")")
	return out.String()
}

type Factor struct {
	Token lexer.Token
	// Value holds an int64 or float64 for literals and the name for
	// identifier references.
	Value     any
	ValueType ValueType
}

func (f *Factor) expressionNode()       {}
func (f *Factor) TokenLiteral() string  { return f.Token.Text }
func (f *Factor) GetToken() lexer.Token { return f.Token }
func (f *Factor) String() string        { return f.Token.Text }

func (f *Factor) IsIdentifier() bool {
	return f.Token.Kind == lexer.TokenIdentifier
}

type FunctionCall struct {
	Token     lexer.Token // the function name token
	Name      string
	Arguments []Expression
	ValueType ValueType
}

func (fc *FunctionCall) statementNode()        {}
func (fc *FunctionCall) expressionNode()       {}
func (fc *FunctionCall) TokenLiteral() string  { return fc.Token.Text }
func (fc *FunctionCall) GetToken() lexer.Token { return fc.Token }
func (fc *FunctionCall) String() string {
	var out bytes.Buffer
	args := make([]string, 0, len(fc.Arguments))
	for _, a := range fc.Arguments {
		args = append(args, a.String())
	}
	out.WriteString(fc.Name)
	out.WriteString("(")
	out.WriteString(strings.Join(args, ", "))
	out.WriteString(")")
	return out.String()
}

// TypeOf returns the value type carried by an expression node.
func TypeOf(expr Expression) ValueType {
	switch e := expr.(type) {
	case *BinaryOperation:
		return e.ValueType
	case *Factor:
		return e.ValueType
	case *FunctionCall:
		return e.ValueType
	case *BooleanExpression:
		return UnknownType
	default:
		return UnknownType
	}
}
