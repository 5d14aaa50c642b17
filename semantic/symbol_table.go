package semantic

import (
	"fmt"

	"minilang/ast"
)

const GlobalScopeName = "global"

type Scope struct {
	Name    string
	Symbols map[string]ast.ValueType
}

func NewScope(name string) *Scope {
	return &Scope{
		Name:    name,
		Symbols: make(map[string]ast.ValueType),
	}
}

// SymbolTable is a stack of scopes. The bottom frame is the global scope,
// it is created with the table and never popped.
type SymbolTable struct {
	scopes  []*Scope
	counter int
}

func NewSymTable() *SymbolTable {
	return &SymbolTable{
		scopes: []*Scope{NewScope(GlobalScopeName)},
	}
}

// enter a new scope
func (st *SymbolTable) EnterScope() *Scope {
	st.counter++
	scope := NewScope(fmt.Sprintf("scope_%d", st.counter))
	st.scopes = append(st.scopes, scope)
	return scope
}

// exit the current scope to the parent scope, no-op on the global scope
func (st *SymbolTable) ExitScope() {
	if len(st.scopes) > 1 {
		st.scopes = st.scopes[:len(st.scopes)-1]
	}
}

func (st *SymbolTable) CurrentScope() *Scope {
	return st.scopes[len(st.scopes)-1]
}

func (st *SymbolTable) GlobalScope() *Scope {
	return st.scopes[0]
}

// Depth is the number of scopes on the stack, global included.
func (st *SymbolTable) Depth() int {
	return len(st.scopes)
}

// define a symbol in the current scope, overwriting any previous entry
func (st *SymbolTable) Declare(name string, typ ast.ValueType) {
	st.CurrentScope().Symbols[name] = typ
}

func (st *SymbolTable) LookupCurrent(name string) (ast.ValueType, bool) {
	typ, ok := st.CurrentScope().Symbols[name]
	return typ, ok
}

// search from the innermost scope out to the global one
func (st *SymbolTable) Resolve(name string) (ast.ValueType, bool) {
	for i := len(st.scopes) - 1; i >= 0; i-- {
		if typ, ok := st.scopes[i].Symbols[name]; ok {
			return typ, true
		}
	}
	return ast.UnknownType, false
}
