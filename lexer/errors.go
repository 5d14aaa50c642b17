package lexer

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidFloat  = errors.New("invalid float number")
	ErrInvalidNumber = errors.New("invalid integer number")
	ErrIllegalChar   = errors.New("illegal character")
)

// Error is a fatal lexing failure. It wraps one of the sentinel errors above.
type Error struct {
	Err  error
	Pos  Position
	Char string
}

func (e *Error) Error() string {
	if e.Char != "" {
		return fmt.Sprintf("%v at position %d: %s", e.Err, e.Pos.Offset, e.Char)
	}
	return fmt.Sprintf("%v at position %d", e.Err, e.Pos.Offset)
}

func (e *Error) Unwrap() error {
	return e.Err
}
