package borrow

import (
	"fmt"

	"github.com/leapstack-labs/borrowlint/pkg/token"
)

// TraceError reports a malformed trace: an operation that cannot be
// analyzed at all, as opposed to one that violates a borrow invariant.
type TraceError struct {
	Index   int
	Pos     token.Position
	Message string
}

func (e *TraceError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("trace error at op %d (line %d): %s", e.Index, e.Pos.Line, e.Message)
	}
	return fmt.Sprintf("trace error at op %d: %s", e.Index, e.Message)
}

// Common trace error messages
const (
	ErrUnknownName     = "unknown name %q"
	ErrUnbalancedScope = "SCOPE_EXIT with no open scope"
)
