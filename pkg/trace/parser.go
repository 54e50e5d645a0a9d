// Package trace provides lexing and parsing for the borrow-trace language.
//
// # Grammar Overview
//
// The language is line-oriented: one operation per line, with `--` line
// comments and blank lines ignored.
//
//	trace       → { statement NEWLINE }
//	statement   → decl | ref | assign | read | scope_enter | scope_exit
//	decl        → DECL name ["mut" "=" bool] [value]
//	ref         → REF name "->" name ["kind" "=" ("shared"|"exclusive")]
//	assign      → ASSIGN name [value]
//	read        → READ name
//	scope_enter → SCOPE_ENTER
//	scope_exit  → SCOPE_EXIT
//	value       → STRING | NUMBER
//
// # Usage
//
//	ops, err := trace.Parse("DECL x mut=true\nREF r -> x kind=shared")
//	if err != nil {
//	    // handle error
//	}
package trace

import (
	"fmt"

	"github.com/leapstack-labs/borrowlint/pkg/token"
)

// Parser parses trace input into a sequence of operations.
type Parser struct {
	lexer  *Lexer
	token  token.Token // current token
	peek   token.Token // lookahead token
	errors []error
}

// NewParser creates a new parser for the given trace input.
func NewParser(src string) *Parser {
	p := &Parser{
		lexer: NewLexer(src),
	}
	// Read two tokens to initialize current and peek
	p.nextToken()
	p.nextToken()
	return p
}

// Parse parses the trace and returns its operations in order. Lexical
// errors take priority over the parse errors they cascade into.
func Parse(src string) ([]Op, error) {
	p := NewParser(src)
	ops := p.parseTrace()
	if errs := p.lexer.Errors(); len(errs) > 0 {
		return nil, errs[0]
	}
	if len(p.errors) > 0 {
		return nil, p.errors[0]
	}
	return ops, nil
}

// parseTrace parses statements until EOF, assigning trace indexes in order.
func (p *Parser) parseTrace() []Op {
	var ops []Op
	for !p.check(token.TOKEN_EOF) {
		// Skip blank lines
		if p.match(token.TOKEN_NEWLINE) {
			continue
		}

		op := p.parseStatement()
		if op == nil {
			p.synchronize()
			continue
		}
		ops = append(ops, op)
		setEnd(op, p.token.Pos)

		// Statement must end at a line boundary
		if !p.check(token.TOKEN_NEWLINE) && !p.check(token.TOKEN_EOF) {
			p.addError(fmt.Sprintf(ErrTrailingInput, p.token.Type))
			p.synchronize()
		}
	}

	for i, op := range ops {
		setIndex(op, i)
	}
	return ops
}

// parseStatement parses a single operation. Returns nil on error.
func (p *Parser) parseStatement() Op {
	pos := p.token.Pos

	if !p.token.Type.IsStatementHead() {
		p.addError(fmt.Sprintf(ErrUnexpectedToken, p.token.Type, "a statement"))
		return nil
	}

	switch p.token.Type {
	case token.TOKEN_DECL:
		return p.parseDecl(pos)
	case token.TOKEN_REF:
		return p.parseRef(pos)
	case token.TOKEN_ASSIGN:
		return p.parseAssign(pos)
	case token.TOKEN_READ:
		return p.parseRead(pos)
	case token.TOKEN_SCOPE_ENTER:
		p.nextToken()
		return &ScopeEnter{OpInfo: OpInfo{Position: pos}}
	case token.TOKEN_SCOPE_EXIT:
		p.nextToken()
		return &ScopeExit{OpInfo: OpInfo{Position: pos}}
	default:
		return nil
	}
}

// parseDecl parses: DECL name [mut=bool] [value]
func (p *Parser) parseDecl(pos token.Position) Op {
	p.nextToken() // consume DECL

	name, ok := p.parseName()
	if !ok {
		return nil
	}

	d := &Decl{OpInfo: OpInfo{Position: pos}, Name: name}

	if p.match(token.TOKEN_MUT) {
		if !p.expect(token.TOKEN_EQ) {
			return nil
		}
		switch p.token.Type {
		case token.TOKEN_TRUE:
			d.Mutable = true
		case token.TOKEN_FALSE:
			d.Mutable = false
		default:
			p.addError(fmt.Sprintf(ErrExpectedBool, p.token.Type))
			return nil
		}
		p.nextToken()
	}

	d.Value = p.parseOptionalValue()
	return d
}

// parseRef parses: REF name -> target [kind=shared|exclusive]
func (p *Parser) parseRef(pos token.Position) Op {
	p.nextToken() // consume REF

	name, ok := p.parseName()
	if !ok {
		return nil
	}

	if !p.expect(token.TOKEN_ARROW) {
		return nil
	}

	target, ok := p.parseName()
	if !ok {
		return nil
	}

	r := &Ref{OpInfo: OpInfo{Position: pos}, Name: name, Target: target, Kind: RefShared}

	if p.match(token.TOKEN_KIND) {
		if !p.expect(token.TOKEN_EQ) {
			return nil
		}
		switch p.token.Type {
		case token.TOKEN_SHARED:
			r.Kind = RefShared
		case token.TOKEN_EXCLUSIVE:
			r.Kind = RefExclusive
		default:
			p.addError(fmt.Sprintf(ErrExpectedKind, p.token.Type))
			return nil
		}
		p.nextToken()
	}

	return r
}

// parseAssign parses: ASSIGN name [value]
func (p *Parser) parseAssign(pos token.Position) Op {
	p.nextToken() // consume ASSIGN

	name, ok := p.parseName()
	if !ok {
		return nil
	}

	return &Assign{
		OpInfo: OpInfo{Position: pos},
		Name:   name,
		Value:  p.parseOptionalValue(),
	}
}

// parseRead parses: READ name
func (p *Parser) parseRead(pos token.Position) Op {
	p.nextToken() // consume READ

	name, ok := p.parseName()
	if !ok {
		return nil
	}

	return &Read{OpInfo: OpInfo{Position: pos}, Name: name}
}

// parseName consumes an identifier and returns its text.
func (p *Parser) parseName() (string, bool) {
	if !p.check(token.TOKEN_IDENT) {
		p.addError(fmt.Sprintf(ErrExpectedName, p.token.Type))
		return "", false
	}
	name := p.token.Literal
	p.nextToken()
	return name, true
}

// parseOptionalValue consumes a trailing value literal if present.
func (p *Parser) parseOptionalValue() string {
	switch p.token.Type {
	case token.TOKEN_STRING, token.TOKEN_NUMBER:
		v := p.token.Literal
		p.nextToken()
		return v
	}
	return ""
}

// synchronize skips to the next line boundary after a parse error.
func (p *Parser) synchronize() {
	for !p.check(token.TOKEN_NEWLINE) && !p.check(token.TOKEN_EOF) {
		p.nextToken()
	}
	p.match(token.TOKEN_NEWLINE)
}

// setIndex records an operation's position in the trace.
func setIndex(op Op, i int) {
	switch o := op.(type) {
	case *Decl:
		o.TraceIndex = i
	case *Ref:
		o.TraceIndex = i
	case *Assign:
		o.TraceIndex = i
	case *Read:
		o.TraceIndex = i
	case *ScopeEnter:
		o.TraceIndex = i
	case *ScopeExit:
		o.TraceIndex = i
	}
}

// setEnd records the line boundary terminating an operation's statement.
func setEnd(op Op, end token.Position) {
	switch o := op.(type) {
	case *Decl:
		o.End = end
	case *Ref:
		o.End = end
	case *Assign:
		o.End = end
	case *Read:
		o.End = end
	case *ScopeEnter:
		o.End = end
	case *ScopeExit:
		o.End = end
	}
}

// ---------- Token Helpers ----------

// nextToken advances to the next token.
func (p *Parser) nextToken() {
	p.token = p.peek
	p.peek = p.lexer.NextToken()
}

// check returns true if the current token is of the given type.
func (p *Parser) check(t token.TokenType) bool {
	return p.token.Type == t
}

// match consumes the current token if it matches and returns true.
func (p *Parser) match(t token.TokenType) bool {
	if p.check(t) {
		p.nextToken()
		return true
	}
	return false
}

// expect consumes the current token if it matches, otherwise adds an error.
func (p *Parser) expect(t token.TokenType) bool {
	if p.check(t) {
		p.nextToken()
		return true
	}
	p.addError(fmt.Sprintf(ErrUnexpectedToken, p.token.Type, t))
	return false
}

// addError adds a parse error at the current token.
func (p *Parser) addError(msg string) {
	p.errors = append(p.errors, &ParseError{
		Pos:     p.token.Pos,
		Message: msg,
	})
}
