package parser

import (
	"fmt"

	"minilang/ast"
	"minilang/internals"
	"minilang/lexer"
)

type Result struct {
	// ID identifies the parse in log output.
	ID          string
	Program     *ast.Block
	Diagnostics []internals.Diagnostic

	fileName string
	color    bool
}

// OK reports whether the program passed every semantic check.
func (r *Result) OK() bool {
	return len(r.Diagnostics) == 0
}

// Render formats the diagnostics with the file name and color settings the
// parse ran with.
func (r *Result) Render() string {
	return internals.RenderAll(r.Diagnostics, r.fileName, r.color)
}

// ParseSource lexes and parses source in one go. Lexical and syntax errors
// are returned as errors; semantic problems end up in Result.Diagnostics.
func ParseSource(source string, opts ...Option) (*Result, error) {
	tokens, err := lexer.Tokenize(source)
	if err != nil {
		return nil, fmt.Errorf("lexing failed: %w", err)
	}

	p := NewParser(tokens, opts...)
	program, err := p.Parse()
	if err != nil {
		return nil, fmt.Errorf("parsing failed: %w", err)
	}

	return &Result{
		ID:          p.ID,
		Program:     program,
		Diagnostics: p.Diagnostics(),
		fileName:    p.cfg.FileName,
		color:       p.cfg.Color,
	}, nil
}
