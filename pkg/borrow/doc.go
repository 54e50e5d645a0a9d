// Package borrow implements a static borrow and mutability checker over
// linear operation traces.
//
// The checker walks a trace once, front to back, maintaining an explicit
// scope stack and a live-borrow set per storage location. It enforces four
// invariants:
//
//  1. At most one exclusive reference to a storage location is live at any
//     point, and it excludes all shared references for its lifetime (BC01).
//  2. Any number of shared references may coexist, provided no exclusive
//     reference to the same storage is live (BC02).
//  3. An immutable binding cannot be mutated through any path: direct
//     assignment, assignment through a shared reference, or taking an
//     exclusive reference to it (BC03).
//  4. A reference's lifetime is bounded by the lifetime of the storage it
//     targets; uses past that point are dangling (BC04).
//
// Analysis is fail-fast: the first violation ends the run with a verdict
// identifying the violating operation and the broken invariant. The checker
// never executes the trace and keeps no state between runs.
//
//	verdict, err := borrow.CheckString(`
//	    DECL x mut=true
//	    REF r1 -> x kind=exclusive
//	    REF r2 -> x kind=shared
//	`)
//	// verdict.Valid == false, verdict.Index == 2,
//	// verdict.Kind == check.KindSharedExclusiveConflict
package borrow
