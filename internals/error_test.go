package internals

import (
	"strings"
	"testing"

	"github.com/go-test/deep"

	"minilang/lexer"
)

func TestCollectorKeepsOrder(t *testing.T) {
	dc := NewDiagnosticCollector()
	dc.Addf(Undeclared, lexer.Position{Row: 1, Col: 1}, "Variable %s has not been declared", "a")
	dc.Addf(TypeMismatch, lexer.Position{Row: 2, Col: 5}, "Type Mismatch between %s and %s", "int", "float")
	dc.Addf(Undeclared, lexer.Position{Row: 3, Col: 1}, "Variable %s has not been declared", "b")

	expected := []string{
		"Variable a has not been declared",
		"Type Mismatch between int and float",
		"Variable b has not been declared",
	}
	if diff := deep.Equal(dc.Messages(), expected); diff != nil {
		t.Error(diff)
	}

	if dc.Len() != 3 {
		t.Errorf("expected 3 diagnostics, got %d", dc.Len())
	}
	if dc.Count(Undeclared) != 2 {
		t.Errorf("expected 2 undeclared diagnostics, got %d", dc.Count(Undeclared))
	}
	if dc.Count(Redeclared) != 0 {
		t.Errorf("expected no redeclared diagnostics, got %d", dc.Count(Redeclared))
	}
}

func TestRender(t *testing.T) {
	d := Diagnostic{
		Kind:    Redeclared,
		Message: "Variable x has already been declared in the current scope",
		Pos:     lexer.Position{Offset: 14, Row: 2, Col: 5},
	}

	expected := "main.ml:2:5: ERROR: Variable x has already been declared in the current scope"
	if actual := d.Render("main.ml", false); actual != expected {
		t.Errorf("expected=%q, got=%q", expected, actual)
	}

	colored := d.Render("main.ml", true)
	if !strings.Contains(colored, "main.ml:2:5:") || !strings.Contains(colored, d.Message) {
		t.Errorf("colored render lost content: %q", colored)
	}
	// styling must not depend on stdout being a terminal
	if colored == expected {
		t.Errorf("colored render is identical to the plain one: %q", colored)
	}
	if !strings.Contains(colored, "\x1b[") {
		t.Errorf("colored render has no ANSI escape: %q", colored)
	}
}

func TestRenderAllColor(t *testing.T) {
	diags := []Diagnostic{{Kind: Undeclared, Message: "first", Pos: lexer.Position{Row: 1, Col: 1}}}

	plain := RenderAll(diags, "src", false)
	colored := RenderAll(diags, "src", true)
	if plain == colored || !strings.Contains(colored, "\x1b[") {
		t.Errorf("expected styled output, plain=%q colored=%q", plain, colored)
	}
	if !strings.HasSuffix(colored, "first\n") {
		t.Errorf("message should stay unstyled, got %q", colored)
	}
}

func TestRenderAll(t *testing.T) {
	diags := []Diagnostic{
		{Kind: Undeclared, Message: "first", Pos: lexer.Position{Row: 1, Col: 1}},
		{Kind: TypeMismatch, Message: "second", Pos: lexer.Position{Row: 4, Col: 2}},
	}

	expected := "src:1:1: ERROR: first\nsrc:4:2: ERROR: second\n"
	if actual := RenderAll(diags, "src", false); actual != expected {
		t.Errorf("expected=%q, got=%q", expected, actual)
	}
}

func TestKindString(t *testing.T) {
	if TypeMismatch.String() != "type mismatch" {
		t.Errorf("unexpected kind string %q", TypeMismatch.String())
	}
}
