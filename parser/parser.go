package parser

import (
	"io"
	"log/slog"

	"github.com/google/uuid"

	"minilang/ast"
	"minilang/config"
	"minilang/internals"
	"minilang/lexer"
	"minilang/semantic"
)

// Parser builds the tree and runs the semantic checks in the same pass.
// A Parser owns its scopes and diagnostics and is meant for a single Parse.
type Parser struct {
	ID  string
	Pos int

	tokens    []lexer.Token
	curToken  lexer.Token
	analyzer  *semantic.Analyzer
	collector *internals.DiagnosticCollector
	logger    *slog.Logger
	cfg       config.Parser
	used      bool
}

func NewParser(tokens []lexer.Token, opts ...Option) *Parser {
	// the parser relies on a trailing EOF to stop
	if len(tokens) == 0 || tokens[len(tokens)-1].Kind != lexer.TokenEOF {
		eof := lexer.Token{LiteralToken: lexer.LiteralToken{Kind: lexer.TokenEOF}}
		if len(tokens) > 0 {
			eof.Pos = tokens[len(tokens)-1].Pos
		}
		tokens = append(tokens[:len(tokens):len(tokens)], eof)
	}

	p := &Parser{
		ID:        uuid.NewString(),
		tokens:    tokens,
		collector: internals.NewDiagnosticCollector(),
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		cfg:       config.Default().Parser,
	}

	for _, opt := range opts {
		opt(p)
	}

	policy := semantic.LeftOperand
	if p.cfg.ResultType == config.ResultWiden {
		policy = semantic.Widen
	}
	p.analyzer = semantic.NewAnalyzer(p.collector, policy)
	p.logger = p.logger.With("parse_id", p.ID)

	p.curToken = p.tokens[0]

	return p
}

func (p *Parser) nextToken() {
	if p.Pos < len(p.tokens)-1 {
		p.Pos++
	}
	p.curToken = p.tokens[p.Pos]
}

// one token lookahead
func (p *Parser) peekToken() lexer.Token {
	if p.Pos+1 < len(p.tokens) {
		return p.tokens[p.Pos+1]
	}
	return p.tokens[len(p.tokens)-1]
}

func (p *Parser) curTokenKindIs(kind lexer.TokenKind) bool {
	return p.curToken.Kind == kind
}

func (p *Parser) peekTokenKindIs(kind lexer.TokenKind) bool {
	return p.peekToken().Kind == kind
}

// expect consumes the current token if it has the given kind
func (p *Parser) expect(kind lexer.TokenKind) (lexer.Token, error) {
	tok := p.curToken
	if tok.Kind != kind {
		return tok, &SyntaxError{Expected: []lexer.TokenKind{kind}, Got: tok}
	}
	p.nextToken()
	return tok, nil
}

func (p *Parser) unexpected(context string) error {
	return &SyntaxError{Got: p.curToken, Context: context}
}

// Diagnostics returns the semantic problems found so far, in source order.
func (p *Parser) Diagnostics() []internals.Diagnostic {
	return p.collector.Diagnostics
}

// Symbols exposes the symbol table, after Parse only the global scope is left.
func (p *Parser) Symbols() *semantic.SymbolTable {
	return p.analyzer.Symbols()
}

// Parse consumes the whole token stream. Semantic problems do not stop it,
// they are available from Diagnostics. A returned error is a syntax error,
// or a config error when the parser was built with an invalid config.Parser,
// and no tree comes with it.
func (p *Parser) Parse() (*ast.Block, error) {
	if p.used {
		return nil, ErrAlreadyParsed
	}
	p.used = true

	if err := p.cfg.Validate(); err != nil {
		return nil, err
	}

	p.logger.Debug("parse started", "tokens", len(p.tokens))

	program := &ast.Block{
		Token:      p.curToken,
		Statements: []ast.Statement{},
	}

	for !p.curTokenKindIs(lexer.TokenEOF) {
		stmt, err := p.parseStatement()
		if err != nil {
			p.logger.Warn("parse aborted", "error", err, "diagnostics", p.collector.Len())
			return nil, err
		}
		program.Statements = append(program.Statements, stmt)
	}

	p.logger.Debug("parse finished",
		"statements", len(program.Statements),
		"diagnostics", p.collector.Len(),
	)

	return program, nil
}

func (p *Parser) parseStatement() (ast.Statement, error) {
	if typeKeywords[p.curToken.Kind] {
		return p.parseDeclaration()
	}

	switch p.curToken.Kind {
	case lexer.TokenIdentifier:
		switch {
		case p.peekTokenKindIs(lexer.TokenEquals):
			return p.parseAssignment()
		case p.peekTokenKindIs(lexer.TokenLParen):
			return p.parseFunctionCall()
		default:
			p.nextToken()
			return nil, p.unexpected("statement after identifier")
		}
	case lexer.TokenIf:
		return p.parseIfStatement()
	case lexer.TokenWhile:
		return p.parseWhileStatement()
	default:
		return nil, p.unexpected("statement")
	}
}

func (p *Parser) parseDeclaration() (*ast.Declaration, error) {
	stmt := &ast.Declaration{Token: p.curToken, VarType: ast.IntType}
	if p.curTokenKindIs(lexer.TokenFloat) {
		stmt.VarType = ast.FloatType
	}
	p.nextToken()

	name, err := p.expect(lexer.TokenIdentifier)
	if err != nil {
		return nil, err
	}
	stmt.Name = name.Text
	p.analyzer.CheckNotDeclared(stmt.Name, name.Pos)

	if _, err := p.expect(lexer.TokenEquals); err != nil {
		return nil, err
	}

	stmt.Value, err = p.parseExpression()
	if err != nil {
		return nil, err
	}
	p.analyzer.CheckTypeMatch(stmt.VarType, ast.TypeOf(stmt.Value), name.Pos)

	// declared after the initializer, so the initializer can't see the new name
	p.analyzer.Declare(stmt.Name, stmt.VarType)

	return stmt, nil
}

func (p *Parser) parseAssignment() (*ast.Assignment, error) {
	stmt := &ast.Assignment{Token: p.curToken, Name: p.curToken.Text}

	p.analyzer.CheckDeclared(stmt.Name, stmt.Token.Pos)
	stmt.ValueType, _ = p.analyzer.TypeOf(stmt.Name)
	p.nextToken()

	if _, err := p.expect(lexer.TokenEquals); err != nil {
		return nil, err
	}

	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	stmt.Value = value
	p.analyzer.CheckTypeMatch(stmt.ValueType, ast.TypeOf(value), stmt.Token.Pos)

	return stmt, nil
}

func (p *Parser) parseIfStatement() (*ast.IfStatement, error) {
	stmt := &ast.IfStatement{Token: p.curToken}
	p.nextToken()

	var err error
	stmt.Condition, err = p.parseBooleanExpression()
	if err != nil {
		return nil, err
	}

	stmt.Consequence, err = p.parseScopedBlock()
	if err != nil {
		return nil, err
	}

	if p.curTokenKindIs(lexer.TokenElse) {
		p.nextToken()
		stmt.Alternative, err = p.parseScopedBlock()
		if err != nil {
			return nil, err
		}
	}

	return stmt, nil
}

func (p *Parser) parseWhileStatement() (*ast.WhileStatement, error) {
	stmt := &ast.WhileStatement{Token: p.curToken}
	p.nextToken()

	var err error
	stmt.Condition, err = p.parseBooleanExpression()
	if err != nil {
		return nil, err
	}

	stmt.Body, err = p.parseScopedBlock()
	if err != nil {
		return nil, err
	}

	return stmt, nil
}

// parseScopedBlock parses '{' block '}' inside a fresh scope
func (p *Parser) parseScopedBlock() (*ast.Block, error) {
	if _, err := p.expect(lexer.TokenLBrace); err != nil {
		return nil, err
	}

	scope := p.analyzer.EnterScope()
	p.logger.Debug("enter scope", "scope", scope.Name, "depth", p.analyzer.Symbols().Depth())

	block, err := p.parseBlock()

	p.analyzer.ExitScope()
	p.logger.Debug("exit scope", "scope", scope.Name, "depth", p.analyzer.Symbols().Depth())

	if err != nil {
		return nil, err
	}

	if _, err := p.expect(lexer.TokenRBrace); err != nil {
		return nil, err
	}

	return block, nil
}

func (p *Parser) parseBlock() (*ast.Block, error) {
	block := &ast.Block{Token: p.curToken, Statements: []ast.Statement{}}

	for !p.curTokenKindIs(lexer.TokenEOF) && !p.curTokenKindIs(lexer.TokenRBrace) {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		block.Statements = append(block.Statements, stmt)
	}

	return block, nil
}

// parseBooleanExpression allows at most one comparison
func (p *Parser) parseBooleanExpression() (ast.Expression, error) {
	left, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	if !lexer.IsComparison(p.curToken.Kind) {
		return left, nil
	}

	op := p.curToken
	p.nextToken()

	right, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	p.analyzer.CheckTypeMatch(ast.TypeOf(left), ast.TypeOf(right), op.Pos)

	return &ast.BooleanExpression{Left: left, Operator: op, Right: right}, nil
}

func (p *Parser) parseExpression() (ast.Expression, error) {
	return p.parseBinary(additiveOperators, p.parseTerm)
}

func (p *Parser) parseTerm() (ast.Expression, error) {
	return p.parseBinary(multiplicativeOperators, p.parseFactor)
}

// parseBinary folds operand (op operand)* to the left
func (p *Parser) parseBinary(ops map[lexer.TokenKind]bool, operand func() (ast.Expression, error)) (ast.Expression, error) {
	left, err := operand()
	if err != nil {
		return nil, err
	}

	for ops[p.curToken.Kind] {
		op := p.curToken
		p.nextToken()

		right, err := operand()
		if err != nil {
			return nil, err
		}

		leftType, rightType := ast.TypeOf(left), ast.TypeOf(right)
		p.analyzer.CheckTypeMatch(leftType, rightType, op.Pos)

		left = &ast.BinaryOperation{
			Token:     op,
			Left:      left,
			Operator:  op.Kind,
			Right:     right,
			ValueType: p.analyzer.ResultType(leftType, rightType),
		}
	}

	return left, nil
}

func (p *Parser) parseFactor() (ast.Expression, error) {
	tok := p.curToken

	switch tok.Kind {
	case lexer.TokenNumber:
		p.nextToken()
		return &ast.Factor{Token: tok, Value: tok.Int, ValueType: ast.IntType}, nil
	case lexer.TokenFNumber:
		p.nextToken()
		return &ast.Factor{Token: tok, Value: tok.Float, ValueType: ast.FloatType}, nil
	case lexer.TokenIdentifier:
		if p.cfg.CallExpressions && p.peekTokenKindIs(lexer.TokenLParen) {
			return p.parseFunctionCall()
		}
		p.analyzer.CheckDeclared(tok.Text, tok.Pos)
		typ, _ := p.analyzer.TypeOf(tok.Text)
		p.nextToken()
		return &ast.Factor{Token: tok, Value: tok.Text, ValueType: typ}, nil
	case lexer.TokenLParen:
		p.nextToken()
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.TokenRParen); err != nil {
			return nil, err
		}
		return expr, nil
	default:
		return nil, p.unexpected("factor")
	}
}

// calls are not checked against any signature, the language has no
// function declarations
func (p *Parser) parseFunctionCall() (*ast.FunctionCall, error) {
	call := &ast.FunctionCall{Token: p.curToken, Name: p.curToken.Text, ValueType: ast.UnknownType}
	p.nextToken()

	if _, err := p.expect(lexer.TokenLParen); err != nil {
		return nil, err
	}

	args, err := p.parseCallArguments()
	if err != nil {
		return nil, err
	}
	call.Arguments = args

	if _, err := p.expect(lexer.TokenRParen); err != nil {
		return nil, err
	}

	return call, nil
}

func (p *Parser) parseCallArguments() ([]ast.Expression, error) {
	args := []ast.Expression{}

	if p.curTokenKindIs(lexer.TokenRParen) {
		return args, nil
	}

	arg, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	args = append(args, arg)

	for p.curTokenKindIs(lexer.TokenComma) {
		p.nextToken() // consume the comma
		arg, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
	}

	return args, nil
}
