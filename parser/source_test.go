package parser_test

import (
	"errors"
	"strings"
	"testing"

	"minilang/config"
	"minilang/lexer"
	"minilang/parser"
)

func TestParseSource(t *testing.T) {
	res, err := parser.ParseSource("int x = 1\nfloat y = 2.5\nx = y\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.OK() {
		t.Error("expected a diagnostic for x = y")
	}
	if res.ID == "" {
		t.Error("expected a parse id")
	}
	if res.Program.String() != "int x = 1; float y = 2.5; x = y" {
		t.Errorf("unexpected program %q", res.Program)
	}

	expected := "<input>:3:1: ERROR: Type Mismatch between int and float\n"
	if actual := res.Render(); actual != expected {
		t.Errorf("expected=%q, got=%q", expected, actual)
	}
}

func TestParseSourceWithConfig(t *testing.T) {
	cfg, err := config.FromTOML([]byte("[parser]\nfile_name = \"prog.ml\"\n"))
	if err != nil {
		t.Fatalf("unexpected config error: %v", err)
	}

	res, err := parser.ParseSource("a = 1", parser.WithConfig(cfg.Parser))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(res.Render(), "prog.ml:1:1: ERROR: Variable a has not been declared") {
		t.Errorf("unexpected render %q", res.Render())
	}
}

func TestParseSourceFatalErrors(t *testing.T) {
	tests := []struct {
		input string
		err   error
	}{
		{"int x = 1 !", lexer.ErrIllegalChar},
		{"float f = 3.", lexer.ErrInvalidFloat},
		{"int x = @", lexer.ErrIllegalChar},
		{"int x = 1.0 2.0", parser.ErrUnexpectedToken},
		{"while 1 < 2 {", parser.ErrUnexpectedToken},
		{"int y = f(1)", parser.ErrUnexpectedToken},
	}

	for _, tt := range tests {
		res, err := parser.ParseSource(tt.input)
		if res != nil {
			t.Errorf("input %q: expected no result with a fatal error", tt.input)
		}
		if !errors.Is(err, tt.err) {
			t.Errorf("input %q: expected %v, got %v", tt.input, tt.err, err)
		}
	}
}

func TestParseSourceInvalidConfig(t *testing.T) {
	cfg := config.Default().Parser
	cfg.ResultType = "bogus"

	res, err := parser.ParseSource("int x = 1 + 2.0", parser.WithConfig(cfg))
	if res != nil {
		t.Error("expected no result with an invalid config")
	}
	if !errors.Is(err, config.ErrInvalidResultType) {
		t.Errorf("expected ErrInvalidResultType, got %v", err)
	}
}

func TestParseSourceLexErrorPosition(t *testing.T) {
	_, err := parser.ParseSource("int x = 1\nint y = $")

	var lexErr *lexer.Error
	if !errors.As(err, &lexErr) {
		t.Fatalf("expected *lexer.Error, got %T", err)
	}
	if lexErr.Pos.Offset != 18 || lexErr.Char != "$" {
		t.Errorf("unexpected error position %+v", lexErr)
	}
}
