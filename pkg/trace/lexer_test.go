package trace

import (
	"testing"

	"github.com/leapstack-labs/borrowlint/pkg/token"
)

func TestLexer_BasicStatement(t *testing.T) {
	input := "DECL x mut=true 42"

	expected := []struct {
		typ     token.TokenType
		literal string
	}{
		{token.TOKEN_DECL, "DECL"},
		{token.TOKEN_IDENT, "x"},
		{token.TOKEN_MUT, "mut"},
		{token.TOKEN_EQ, "="},
		{token.TOKEN_TRUE, "true"},
		{token.TOKEN_NUMBER, "42"},
		{token.TOKEN_EOF, ""},
	}

	l := NewLexer(input)
	for i, exp := range expected {
		tok := l.NextToken()
		if tok.Type != exp.typ {
			t.Fatalf("token %d: expected type %s, got %s (%q)", i, exp.typ, tok.Type, tok.Literal)
		}
		if tok.Literal != exp.literal {
			t.Errorf("token %d: expected literal %q, got %q", i, exp.literal, tok.Literal)
		}
	}
}

func TestLexer_ArrowAndKind(t *testing.T) {
	input := "REF r1 -> x kind=exclusive"

	types := []token.TokenType{
		token.TOKEN_REF,
		token.TOKEN_IDENT,
		token.TOKEN_ARROW,
		token.TOKEN_IDENT,
		token.TOKEN_KIND,
		token.TOKEN_EQ,
		token.TOKEN_EXCLUSIVE,
		token.TOKEN_EOF,
	}

	l := NewLexer(input)
	for i, typ := range types {
		tok := l.NextToken()
		if tok.Type != typ {
			t.Fatalf("token %d: expected %s, got %s (%q)", i, typ, tok.Type, tok.Literal)
		}
	}
}

func TestLexer_NewlinesAreSignificant(t *testing.T) {
	input := "READ x\nREAD y"

	tokens := Tokenize(input)

	types := []token.TokenType{
		token.TOKEN_READ,
		token.TOKEN_IDENT,
		token.TOKEN_NEWLINE,
		token.TOKEN_READ,
		token.TOKEN_IDENT,
		token.TOKEN_EOF,
	}

	if len(tokens) != len(types) {
		t.Fatalf("expected %d tokens, got %d", len(types), len(tokens))
	}
	for i, typ := range types {
		if tokens[i].Type != typ {
			t.Errorf("token %d: expected %s, got %s", i, typ, tokens[i].Type)
		}
	}
}

func TestLexer_CommentsSkipped(t *testing.T) {
	input := "-- a trace\nREAD x -- trailing comment\n"

	tokens := Tokenize(input)

	types := []token.TokenType{
		token.TOKEN_NEWLINE, // terminates the comment line
		token.TOKEN_READ,
		token.TOKEN_IDENT,
		token.TOKEN_NEWLINE,
		token.TOKEN_EOF,
	}

	if len(tokens) != len(types) {
		t.Fatalf("expected %d tokens, got %d: %v", len(types), len(tokens), tokens)
	}
	for i, typ := range types {
		if tokens[i].Type != typ {
			t.Errorf("token %d: expected %s, got %s", i, typ, tokens[i].Type)
		}
	}
}

func TestLexer_StringLiteral(t *testing.T) {
	l := NewLexer("ASSIGN x 'it''s'")

	l.NextToken() // ASSIGN
	l.NextToken() // x
	tok := l.NextToken()

	if tok.Type != token.TOKEN_STRING {
		t.Fatalf("expected STRING, got %s", tok.Type)
	}
	if tok.Literal != "it's" {
		t.Errorf("expected %q, got %q", "it's", tok.Literal)
	}
}

func TestLexer_UnterminatedString(t *testing.T) {
	l := NewLexer("ASSIGN x 'oops\nREAD y")

	l.NextToken() // ASSIGN
	l.NextToken() // x
	tok := l.NextToken()

	if tok.Type != token.TOKEN_ILLEGAL {
		t.Fatalf("unterminated string should lex as ILLEGAL, got %s (%q)", tok.Type, tok.Literal)
	}

	errs := l.Errors()
	if len(errs) != 1 {
		t.Fatalf("expected one lexer error, got %d", len(errs))
	}
	lerr, ok := errs[0].(*LexError)
	if !ok {
		t.Fatalf("expected *LexError, got %T", errs[0])
	}
	if lerr.Pos.Line != 1 {
		t.Errorf("error should point at the opening quote on line 1, got line %d", lerr.Pos.Line)
	}

	// The unterminated string must not swallow the next line.
	var sawRead bool
	for {
		tok = l.NextToken()
		if tok.Type == token.TOKEN_READ {
			sawRead = true
		}
		if tok.Type == token.TOKEN_EOF {
			break
		}
	}
	if !sawRead {
		t.Error("unterminated string consumed the following statement")
	}
}

func TestLexer_NegativeNumber(t *testing.T) {
	l := NewLexer("ASSIGN x -3.5")

	l.NextToken() // ASSIGN
	l.NextToken() // x
	tok := l.NextToken()

	if tok.Type != token.TOKEN_NUMBER {
		t.Fatalf("expected NUMBER, got %s (%q)", tok.Type, tok.Literal)
	}
	if tok.Literal != "-3.5" {
		t.Errorf("expected -3.5, got %q", tok.Literal)
	}
}

func TestLexer_KeywordsCaseInsensitive(t *testing.T) {
	l := NewLexer("decl X Mut=TRUE")

	tok := l.NextToken()
	if tok.Type != token.TOKEN_DECL {
		t.Errorf("expected DECL for lowercase keyword, got %s", tok.Type)
	}

	tok = l.NextToken()
	if tok.Type != token.TOKEN_IDENT || tok.Literal != "X" {
		t.Errorf("expected IDENT X, got %s %q", tok.Type, tok.Literal)
	}
}

func TestLexer_IllegalCharacter(t *testing.T) {
	tokens := Tokenize("READ x @")

	var sawIllegal bool
	for _, tok := range tokens {
		if tok.Type == token.TOKEN_ILLEGAL {
			sawIllegal = true
		}
	}
	if !sawIllegal {
		t.Error("expected an ILLEGAL token for @")
	}
}

func TestLexer_Positions(t *testing.T) {
	l := NewLexer("READ x\nREAD y")

	l.NextToken() // READ (line 1)
	l.NextToken() // x
	l.NextToken() // newline
	tok := l.NextToken()

	if tok.Pos.Line != 2 {
		t.Errorf("expected second READ on line 2, got %d", tok.Pos.Line)
	}
	if tok.Pos.Column != 1 {
		t.Errorf("expected column 1, got %d", tok.Pos.Column)
	}
}
