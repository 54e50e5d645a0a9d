package trace

import (
	"fmt"

	"github.com/leapstack-labs/borrowlint/pkg/token"
)

// ParseError represents a parsing error with position information.
type ParseError struct {
	Pos     token.Position
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at line %d, column %d: %s", e.Pos.Line, e.Pos.Column, e.Message)
}

// LexError represents a lexical analysis error.
type LexError struct {
	Pos     token.Position
	Message string
}

func (e *LexError) Error() string {
	return fmt.Sprintf("lexer error at line %d, column %d: %s", e.Pos.Line, e.Pos.Column, e.Message)
}

// Common error messages
const (
	ErrUnexpectedToken    = "unexpected token %s, expected %s"
	ErrUnterminatedString = "unterminated string literal"
	ErrExpectedName       = "expected a name, got %s"
	ErrExpectedKind       = "expected shared or exclusive, got %s"
	ErrExpectedBool       = "expected true or false, got %s"
	ErrTrailingInput      = "unexpected %s after end of statement"
)
