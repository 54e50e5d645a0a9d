package trace

import (
	"fmt"

	"github.com/leapstack-labs/borrowlint/pkg/token"
)

// RefKind distinguishes shared (read-only) from exclusive (read-write)
// references.
type RefKind int

const (
	// RefShared is a read-only reference; any number may be live at once.
	RefShared RefKind = iota
	// RefExclusive is a read-write reference; at most one may be live,
	// and it excludes all shared references to the same storage.
	RefExclusive
)

// String returns the string representation of the reference kind.
func (k RefKind) String() string {
	switch k {
	case RefShared:
		return "shared"
	case RefExclusive:
		return "exclusive"
	default:
		return "unknown"
	}
}

// Op is a single operation in a trace.
type Op interface {
	// Pos returns the source position of the operation.
	Pos() token.Position
	// Span returns the source extent of the operation's statement.
	Span() token.Span
	// Index returns the zero-based position of the operation in the trace.
	Index() int
	// String returns the canonical textual encoding of the operation.
	String() string

	opNode()
}

// OpInfo carries position and trace-index metadata common to all operations.
type OpInfo struct {
	Position   token.Position
	End        token.Position // line boundary terminating the statement
	TraceIndex int
}

// Pos returns the source position of the operation.
func (i OpInfo) Pos() token.Position { return i.Position }

// Span returns the source extent of the operation's statement.
func (i OpInfo) Span() token.Span {
	return token.Span{Start: i.Position, End: i.End}
}

// Index returns the zero-based position of the operation in the trace.
func (i OpInfo) Index() int { return i.TraceIndex }

// OpAt returns the operation whose statement covers the given byte offset.
func OpAt(ops []Op, offset int) (Op, bool) {
	for _, op := range ops {
		if op.Span().Contains(offset) {
			return op, true
		}
	}
	return nil, false
}

// Decl declares a new binding in the innermost open scope.
// Re-declaring a name shadows the earlier binding; it never mutates it.
type Decl struct {
	OpInfo
	Name    string
	Mutable bool
	Value   string // optional value literal, retained for diagnostics only
}

// Ref creates a reference binding targeting another binding's storage.
type Ref struct {
	OpInfo
	Name   string
	Target string
	Kind   RefKind
}

// Assign mutates a binding, either directly or through a reference.
type Assign struct {
	OpInfo
	Name  string
	Value string // optional value literal, retained for diagnostics only
}

// Read accesses a binding or reference without mutating it.
type Read struct {
	OpInfo
	Name string
}

// ScopeEnter opens a nested scope.
type ScopeEnter struct {
	OpInfo
}

// ScopeExit closes the innermost open scope, dropping its bindings and
// references in reverse creation order.
type ScopeExit struct {
	OpInfo
}

func (*Decl) opNode()       {}
func (*Ref) opNode()        {}
func (*Assign) opNode()     {}
func (*Read) opNode()       {}
func (*ScopeEnter) opNode() {}
func (*ScopeExit) opNode()  {}

func (d *Decl) String() string {
	s := fmt.Sprintf("DECL %s mut=%t", d.Name, d.Mutable)
	if d.Value != "" {
		s += " " + d.Value
	}
	return s
}

func (r *Ref) String() string {
	return fmt.Sprintf("REF %s -> %s kind=%s", r.Name, r.Target, r.Kind)
}

func (a *Assign) String() string {
	s := "ASSIGN " + a.Name
	if a.Value != "" {
		s += " " + a.Value
	}
	return s
}

func (r *Read) String() string { return "READ " + r.Name }

func (*ScopeEnter) String() string { return "SCOPE_ENTER" }

func (*ScopeExit) String() string { return "SCOPE_EXIT" }
