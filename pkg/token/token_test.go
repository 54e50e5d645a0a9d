package token

import "testing"

func TestLookupIdent_Keywords(t *testing.T) {
	tests := []struct {
		ident string
		want  TokenType
	}{
		{"DECL", TOKEN_DECL},
		{"decl", TOKEN_DECL},
		{"Decl", TOKEN_DECL},
		{"SCOPE_ENTER", TOKEN_SCOPE_ENTER},
		{"scope_exit", TOKEN_SCOPE_EXIT},
		{"mut", TOKEN_MUT},
		{"KIND", TOKEN_KIND},
		{"shared", TOKEN_SHARED},
		{"Exclusive", TOKEN_EXCLUSIVE},
		{"true", TOKEN_TRUE},
		{"FALSE", TOKEN_FALSE},
	}

	for _, tt := range tests {
		if got := LookupIdent(tt.ident); got != tt.want {
			t.Errorf("LookupIdent(%q) = %s, want %s", tt.ident, got, tt.want)
		}
	}
}

func TestLookupIdent_NamesAreNotKeywords(t *testing.T) {
	for _, ident := range []string{"x", "r1", "_tmp", "declaration", "mutable"} {
		if got := LookupIdent(ident); got != TOKEN_IDENT {
			t.Errorf("LookupIdent(%q) = %s, want IDENT", ident, got)
		}
	}
}

func TestTokenTypeString(t *testing.T) {
	if got := TOKEN_SCOPE_ENTER.String(); got != "SCOPE_ENTER" {
		t.Errorf("TOKEN_SCOPE_ENTER.String() = %q", got)
	}
	if got := TOKEN_ARROW.String(); got != "->" {
		t.Errorf("TOKEN_ARROW.String() = %q", got)
	}
	if got := TokenType(999).String(); got != "TOKEN(999)" {
		t.Errorf("unknown type String() = %q", got)
	}
}

func TestIsStatementHead(t *testing.T) {
	heads := []TokenType{
		TOKEN_DECL, TOKEN_REF, TOKEN_ASSIGN, TOKEN_READ,
		TOKEN_SCOPE_ENTER, TOKEN_SCOPE_EXIT,
	}
	for _, typ := range heads {
		if !typ.IsStatementHead() {
			t.Errorf("%s should start a statement", typ)
		}
	}

	others := []TokenType{
		TOKEN_EOF, TOKEN_NEWLINE, TOKEN_IDENT, TOKEN_NUMBER,
		TOKEN_MUT, TOKEN_KIND, TOKEN_SHARED, TOKEN_EQ,
	}
	for _, typ := range others {
		if typ.IsStatementHead() {
			t.Errorf("%s should not start a statement", typ)
		}
	}
}

func TestPositionIsValid(t *testing.T) {
	if (Position{}).IsValid() {
		t.Error("zero position should be invalid")
	}
	if !(Position{Line: 1, Column: 1}).IsValid() {
		t.Error("line 1 should be valid")
	}
}

func TestSpan(t *testing.T) {
	s := Span{
		Start: Position{Line: 2, Column: 1, Offset: 10},
		End:   Position{Line: 2, Column: 8, Offset: 17},
	}

	if !s.IsValid() {
		t.Error("span with valid endpoints should be valid")
	}
	if !s.Contains(10) {
		t.Error("span should contain its start offset")
	}
	if !s.Contains(16) {
		t.Error("span should contain its last offset")
	}
	if s.Contains(17) {
		t.Error("span end is exclusive")
	}
	if s.Contains(9) {
		t.Error("span should not contain offsets before its start")
	}

	if (Span{End: Position{Line: 3}}).IsValid() {
		t.Error("span with an invalid start should be invalid")
	}
}
