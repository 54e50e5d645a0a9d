package borrow

import (
	"github.com/leapstack-labs/borrowlint/pkg/check"
)

// Verdict is the result of analyzing a trace.
type Verdict struct {
	// Valid is true when the trace respects all enforced invariants.
	Valid bool

	// Index is the trace index of the first violating operation, or -1
	// when the trace is valid.
	Index int

	// Kind identifies the violated invariant, or check.KindNone.
	Kind check.ViolationKind

	// Diagnostic carries the full report for the violation, nil when valid.
	Diagnostic *check.Diagnostic
}

// validVerdict is the verdict for a trace with no violations.
func validVerdict() *Verdict {
	return &Verdict{Valid: true, Index: -1, Kind: check.KindNone}
}
