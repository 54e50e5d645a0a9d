// Package token defines the lexical tokens of the trace language and
// position types shared across the frontend.
package token

import (
	"fmt"
	"strings"
)

// TokenType represents the type of a lexical token.
type TokenType int

//nolint:revive // TOKEN_* names are intentionally ALL_CAPS for token conventions
const (
	// TOKEN_EOF represents end of input.
	TOKEN_EOF TokenType = iota
	// TOKEN_ILLEGAL represents an illegal/unrecognized token.
	TOKEN_ILLEGAL
	// TOKEN_NEWLINE terminates a statement (the trace language is line-oriented).
	TOKEN_NEWLINE

	// TOKEN_IDENT represents an identifier (a binding or reference name).
	TOKEN_IDENT
	// TOKEN_NUMBER represents a numeric literal value.
	TOKEN_NUMBER // 123, 45.67
	// TOKEN_STRING represents a string literal value.
	TOKEN_STRING // 'hello'

	TOKEN_EQ    // =
	TOKEN_ARROW // ->

	// Keywords (statement heads first, then attributes)
	TOKEN_DECL
	TOKEN_REF
	TOKEN_ASSIGN
	TOKEN_READ
	TOKEN_SCOPE_ENTER
	TOKEN_SCOPE_EXIT

	TOKEN_MUT
	TOKEN_KIND
	TOKEN_SHARED
	TOKEN_EXCLUSIVE
	TOKEN_TRUE
	TOKEN_FALSE
)

// Token represents a lexical token with position information.
type Token struct {
	Type    TokenType
	Literal string
	Pos     Position
}

// String returns a human-readable representation of the token type.
func (t TokenType) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return fmt.Sprintf("TOKEN(%d)", t)
}

// IsStatementHead returns true if the token type starts a trace statement.
func (t TokenType) IsStatementHead() bool {
	switch t {
	case TOKEN_DECL, TOKEN_REF, TOKEN_ASSIGN, TOKEN_READ,
		TOKEN_SCOPE_ENTER, TOKEN_SCOPE_EXIT:
		return true
	}
	return false
}

// tokenNames maps token types to their string representations.
var tokenNames = map[TokenType]string{
	TOKEN_EOF:     "EOF",
	TOKEN_ILLEGAL: "ILLEGAL",
	TOKEN_NEWLINE: "NEWLINE",

	TOKEN_IDENT:  "IDENT",
	TOKEN_NUMBER: "NUMBER",
	TOKEN_STRING: "STRING",

	TOKEN_EQ:    "=",
	TOKEN_ARROW: "->",

	TOKEN_DECL:        "DECL",
	TOKEN_REF:         "REF",
	TOKEN_ASSIGN:      "ASSIGN",
	TOKEN_READ:        "READ",
	TOKEN_SCOPE_ENTER: "SCOPE_ENTER",
	TOKEN_SCOPE_EXIT:  "SCOPE_EXIT",

	TOKEN_MUT:       "mut",
	TOKEN_KIND:      "kind",
	TOKEN_SHARED:    "shared",
	TOKEN_EXCLUSIVE: "exclusive",
	TOKEN_TRUE:      "true",
	TOKEN_FALSE:     "false",
}

// keywords maps lowercase keyword strings to their token types.
var keywords = map[string]TokenType{
	"decl":        TOKEN_DECL,
	"ref":         TOKEN_REF,
	"assign":      TOKEN_ASSIGN,
	"read":        TOKEN_READ,
	"scope_enter": TOKEN_SCOPE_ENTER,
	"scope_exit":  TOKEN_SCOPE_EXIT,

	"mut":       TOKEN_MUT,
	"kind":      TOKEN_KIND,
	"shared":    TOKEN_SHARED,
	"exclusive": TOKEN_EXCLUSIVE,
	"true":      TOKEN_TRUE,
	"false":     TOKEN_FALSE,
}

// LookupIdent returns the token type for the given identifier.
// Keywords are case-insensitive; anything else is TOKEN_IDENT.
func LookupIdent(ident string) TokenType {
	if tok, ok := keywords[strings.ToLower(ident)]; ok {
		return tok
	}
	return TOKEN_IDENT
}
