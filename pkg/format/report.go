// Package format renders checker verdicts for human and machine consumers.
// The checker itself has no user-facing behavior; this package is the
// presentation toolkit for tools built on top of it.
package format

import (
	"github.com/google/uuid"

	"github.com/leapstack-labs/borrowlint/pkg/borrow"
	"github.com/leapstack-labs/borrowlint/pkg/check"
)

// Report wraps a verdict with identity and provenance for presentation.
type Report struct {
	// ID uniquely identifies this analysis run.
	ID string `json:"id"`

	// Source names the trace that was analyzed (a file path or label).
	Source string `json:"source,omitempty"`

	// Valid mirrors the verdict for machine consumers.
	Valid bool `json:"valid"`

	// ViolationIndex is the trace index of the first violation, or nil.
	ViolationIndex *int `json:"violation_index,omitempty"`

	// ViolationKind names the violated invariant, or "" when valid.
	ViolationKind string `json:"violation_kind,omitempty"`

	// Diagnostic carries the full finding, nil when valid.
	Diagnostic *check.Diagnostic `json:"diagnostic,omitempty"`
}

// NewReport builds a report for a verdict, assigning a fresh run ID.
func NewReport(source string, v *borrow.Verdict) *Report {
	r := &Report{
		ID:     uuid.New().String(),
		Source: source,
		Valid:  v.Valid,
	}
	if !v.Valid {
		idx := v.Index
		r.ViolationIndex = &idx
		r.ViolationKind = v.Kind.String()
		r.Diagnostic = v.Diagnostic
	}
	return r
}
