package parser

import (
	"errors"
	"fmt"
	"strings"

	"minilang/lexer"
)

var (
	ErrUnexpectedToken = errors.New("unexpected token")
	ErrAlreadyParsed   = errors.New("parser already used")
)

// SyntaxError aborts the parse. No partial tree is returned with it.
type SyntaxError struct {
	// Expected is empty when any token would have been wrong at this point,
	// e.g. a statement starting with an operator.
	Expected []lexer.TokenKind
	Got      lexer.Token
	// Context names the grammar rule that failed.
	Context string
}

func (e *SyntaxError) Error() string {
	if len(e.Expected) > 0 {
		kinds := make([]string, 0, len(e.Expected))
		for _, k := range e.Expected {
			kinds = append(kinds, string(k))
		}
		return fmt.Sprintf("%s: expected token %s, but got %s", e.Got.Pos, strings.Join(kinds, " or "), e.Got.Kind)
	}
	return fmt.Sprintf("%s: unexpected token %s in %s", e.Got.Pos, e.Got, e.Context)
}

func (e *SyntaxError) Unwrap() error {
	return ErrUnexpectedToken
}
