package internals

// This file handles the diagnostic collector obj

import (
	"fmt"

	"minilang/lexer"
)

type DiagnosticKind int

const (
	Redeclared DiagnosticKind = iota
	Undeclared
	TypeMismatch
)

func (k DiagnosticKind) String() string {
	switch k {
	case Redeclared:
		return "redeclared"
	case Undeclared:
		return "undeclared"
	case TypeMismatch:
		return "type mismatch"
	default:
		return fmt.Sprintf("DiagnosticKind(%d)", int(k))
	}
}

// Diagnostic is a recoverable semantic issue. Parsing continues after one
// is recorded.
type Diagnostic struct {
	Kind    DiagnosticKind
	Message string
	Pos     lexer.Position
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: %s", d.Pos, d.Message)
}

type DiagnosticCollector struct {
	Diagnostics []Diagnostic
}

func NewDiagnosticCollector() *DiagnosticCollector {
	return &DiagnosticCollector{
		Diagnostics: make([]Diagnostic, 0),
	}
}

func (dc *DiagnosticCollector) Add(d Diagnostic) {
	dc.Diagnostics = append(dc.Diagnostics, d)
}

func (dc *DiagnosticCollector) Addf(kind DiagnosticKind, pos lexer.Position, format string, args ...any) {
	dc.Add(Diagnostic{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
		Pos:     pos,
	})
}

func (dc *DiagnosticCollector) Len() int {
	return len(dc.Diagnostics)
}

// Messages returns the diagnostic messages in the order they were recorded.
func (dc *DiagnosticCollector) Messages() []string {
	return Messages(dc.Diagnostics)
}

// Messages extracts the messages of diags, keeping their order.
func Messages(diags []Diagnostic) []string {
	res := make([]string, 0, len(diags))
	for _, d := range diags {
		res = append(res, d.Message)
	}
	return res
}

func (dc *DiagnosticCollector) Count(kind DiagnosticKind) int {
	count := 0
	for _, d := range dc.Diagnostics {
		if d.Kind == kind {
			count++
		}
	}
	return count
}
