package trace

import (
	"strings"
	"unicode"

	"github.com/leapstack-labs/borrowlint/pkg/token"
)

// Lexer tokenizes trace input.
//
// The trace language is line-oriented, so newlines are significant and are
// emitted as TOKEN_NEWLINE rather than skipped.
type Lexer struct {
	input   string
	pos     int  // current position in input
	readPos int  // reading position (after current char)
	ch      byte // current char under examination
	line    int  // current line number (1-based)
	col     int  // current column number (1-based)
	errors  []error
}

// NewLexer creates a new Lexer for the given input.
func NewLexer(input string) *Lexer {
	l := &Lexer{
		input: input,
		line:  1,
		col:   0,
	}
	l.readChar()
	return l
}

// readChar advances to the next character.
func (l *Lexer) readChar() {
	if l.readPos >= len(l.input) {
		l.ch = 0 // ASCII NUL = EOF
	} else {
		l.ch = l.input[l.readPos]
	}
	l.pos = l.readPos
	l.readPos++

	if l.ch == '\n' {
		l.line++
		l.col = 0
	} else {
		l.col++
	}
}

// peekChar returns the next character without advancing.
func (l *Lexer) peekChar() byte {
	if l.readPos >= len(l.input) {
		return 0
	}
	return l.input[l.readPos]
}

// currentPos returns the current position.
func (l *Lexer) currentPos() token.Position {
	return token.Position{
		Line:   l.line,
		Column: l.col,
		Offset: l.pos,
	}
}

// NextToken returns the next token.
func (l *Lexer) NextToken() token.Token {
	l.skipSpaceAndComments()

	pos := l.currentPos()

	var tok token.Token
	tok.Pos = pos

	switch l.ch {
	case 0:
		tok.Type = token.TOKEN_EOF
		tok.Literal = ""
		return tok
	case '\n':
		tok = l.newToken(token.TOKEN_NEWLINE, "\n")
		// The position of a newline belongs to the line it terminates.
		tok.Pos.Line = pos.Line - 1
	case '=':
		tok = l.newToken(token.TOKEN_EQ, "=")
	case '-':
		if l.peekChar() == '>' {
			l.readChar()
			tok = token.Token{Type: token.TOKEN_ARROW, Literal: "->", Pos: pos}
		} else if isDigit(l.peekChar()) {
			tok.Type = token.TOKEN_NUMBER
			tok.Literal = l.readNumber()
			return tok
		} else {
			tok = l.newToken(token.TOKEN_ILLEGAL, string(l.ch))
		}
	case '\'':
		lit, terminated := l.readString()
		if !terminated {
			l.errors = append(l.errors, &LexError{Pos: pos, Message: ErrUnterminatedString})
			tok.Type = token.TOKEN_ILLEGAL
			tok.Literal = lit
			return tok
		}
		tok.Type = token.TOKEN_STRING
		tok.Literal = lit
		return tok
	default:
		if isLetter(l.ch) || l.ch == '_' {
			tok.Literal = l.readIdentifier()
			tok.Type = token.LookupIdent(tok.Literal)
			return tok
		} else if isDigit(l.ch) {
			tok.Type = token.TOKEN_NUMBER
			tok.Literal = l.readNumber()
			return tok
		}
		tok = l.newToken(token.TOKEN_ILLEGAL, string(l.ch))
	}

	l.readChar()
	return tok
}

// newToken creates a new token at the current position.
func (l *Lexer) newToken(tokenType token.TokenType, literal string) token.Token {
	return token.Token{Type: tokenType, Literal: literal, Pos: l.currentPos()}
}

// skipSpaceAndComments skips horizontal whitespace and comments.
// Newlines are not skipped; they terminate statements.
func (l *Lexer) skipSpaceAndComments() {
	for {
		for l.ch == ' ' || l.ch == '\t' || l.ch == '\r' {
			l.readChar()
		}

		// Skip line comment (-- ...)
		if l.ch == '-' && l.peekChar() == '-' {
			l.skipLineComment()
			continue
		}

		break
	}
}

// skipLineComment skips a line comment up to, but not including, the newline.
func (l *Lexer) skipLineComment() {
	for l.ch != '\n' && l.ch != 0 {
		l.readChar()
	}
}

// readString reads a single-quoted string literal. Handles doubled single
// quotes as escape: 'it''s' -> it's. The second result is false when the
// string runs into a newline or EOF without a closing quote; the literal
// never swallows the following line.
func (l *Lexer) readString() (string, bool) {
	l.readChar() // skip opening quote

	var result strings.Builder
	for {
		if l.ch == 0 || l.ch == '\n' {
			return result.String(), false
		}
		if l.ch == '\'' {
			if l.peekChar() == '\'' {
				// Doubled quote escape
				result.WriteByte('\'')
				l.readChar() // skip first quote
				l.readChar() // skip second quote
			} else {
				l.readChar() // skip closing quote
				return result.String(), true
			}
		} else {
			result.WriteByte(l.ch)
			l.readChar()
		}
	}
}

// readIdentifier reads an unquoted identifier.
func (l *Lexer) readIdentifier() string {
	start := l.pos
	for isLetter(l.ch) || isDigit(l.ch) || l.ch == '_' {
		l.readChar()
	}
	return l.input[start:l.pos]
}

// readNumber reads a numeric literal (integer or decimal, optionally signed).
func (l *Lexer) readNumber() string {
	start := l.pos

	if l.ch == '-' {
		l.readChar()
	}

	for isDigit(l.ch) {
		l.readChar()
	}

	if l.ch == '.' && isDigit(l.peekChar()) {
		l.readChar() // skip '.'
		for isDigit(l.ch) {
			l.readChar()
		}
	}

	return l.input[start:l.pos]
}

// isLetter returns true if ch is a letter.
func isLetter(ch byte) bool {
	return unicode.IsLetter(rune(ch))
}

// isDigit returns true if ch is a digit.
func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

// Errors returns the lexical errors encountered so far.
func (l *Lexer) Errors() []error {
	return l.errors
}

// Tokenize returns all tokens from the input.
func Tokenize(input string) []token.Token {
	l := NewLexer(input)
	var tokens []token.Token
	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)
		if tok.Type == token.TOKEN_EOF {
			break
		}
	}
	return tokens
}
