package semantic

import (
	"minilang/ast"
	"minilang/internals"
	"minilang/lexer"
)

// ResultPolicy decides the value type of a binary operation.
type ResultPolicy int

const (
	// LeftOperand gives an operation the type of its left operand.
	LeftOperand ResultPolicy = iota
	// Widen gives an operation the float type when either operand is float.
	Widen
)

// Analyzer runs the declaration, use and type checks against the symbol
// table. Every check is recoverable: problems are recorded in the collector
// and the caller keeps going.
type Analyzer struct {
	symtab    *SymbolTable
	collector *internals.DiagnosticCollector
	policy    ResultPolicy
}

func NewAnalyzer(collector *internals.DiagnosticCollector, policy ResultPolicy) *Analyzer {
	if collector == nil {
		collector = internals.NewDiagnosticCollector()
	}
	return &Analyzer{
		symtab:    NewSymTable(),
		collector: collector,
		policy:    policy,
	}
}

func (a *Analyzer) Symbols() *SymbolTable {
	return a.symtab
}

func (a *Analyzer) Collector() *internals.DiagnosticCollector {
	return a.collector
}

func (a *Analyzer) EnterScope() *Scope { return a.symtab.EnterScope() }
func (a *Analyzer) ExitScope()         { a.symtab.ExitScope() }

func (a *Analyzer) Declare(name string, typ ast.ValueType) {
	a.symtab.Declare(name, typ)
}

// CheckNotDeclared reports a redeclaration if name already lives in the
// current scope. Outer scopes are not consulted, shadowing is allowed.
func (a *Analyzer) CheckNotDeclared(name string, pos lexer.Position) bool {
	if _, ok := a.symtab.LookupCurrent(name); ok {
		a.collector.Addf(internals.Redeclared, pos,
			"Variable %s has already been declared in the current scope", name)
		return false
	}
	return true
}

// CheckDeclared reports a use of name that no enclosing scope declares.
func (a *Analyzer) CheckDeclared(name string, pos lexer.Position) bool {
	if _, ok := a.symtab.Resolve(name); !ok {
		a.collector.Addf(internals.Undeclared, pos,
			"Variable %s has not been declared in the current or any enclosing scopes", name)
		return false
	}
	return true
}

func (a *Analyzer) TypeOf(name string) (ast.ValueType, bool) {
	return a.symtab.Resolve(name)
}

// Mismatch reports whether one type is int and the other float. Every other
// pairing, including unknown types, is compatible.
func Mismatch(left, right ast.ValueType) bool {
	return (left == ast.IntType && right == ast.FloatType) ||
		(left == ast.FloatType && right == ast.IntType)
}

func (a *Analyzer) CheckTypeMatch(left, right ast.ValueType, pos lexer.Position) bool {
	if Mismatch(left, right) {
		a.collector.Addf(internals.TypeMismatch, pos, "Type Mismatch between %s and %s", left, right)
		return false
	}
	return true
}

// ResultType is the value type of an operation over left and right.
func (a *Analyzer) ResultType(left, right ast.ValueType) ast.ValueType {
	if a.policy == Widen && (left == ast.FloatType || right == ast.FloatType) {
		return ast.FloatType
	}
	return left
}
