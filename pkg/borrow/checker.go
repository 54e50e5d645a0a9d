package borrow

import (
	"fmt"

	"github.com/leapstack-labs/borrowlint/pkg/check"
	"github.com/leapstack-labs/borrowlint/pkg/trace"
)

// Precedence controls which invariant is reported when a single operation
// violates both mutability and reference-validity.
type Precedence int

const (
	// PrecedenceMutabilityFirst reports mutability violations (BC03) before
	// reference-validity violations (BC04). This is the default.
	PrecedenceMutabilityFirst Precedence = iota
	// PrecedenceReferenceFirst reports reference-validity violations first.
	PrecedenceReferenceFirst
)

// Options configures a Checker.
type Options struct {
	// Precedence orders invariant checks when one operation violates several.
	Precedence Precedence

	// StrictOwnerWrites additionally rejects direct assignment to a binding
	// while any reference to its storage is live, reported as a
	// shared/exclusive conflict. Off by default.
	StrictOwnerWrites bool

	// Config controls check enablement and severity overrides. Nil means
	// all checks enforced at their default severity.
	Config *check.Config
}

// Checker statically analyzes operation traces. A Checker is stateless
// between runs; the zero value is usable and Check may be called from
// multiple goroutines.
type Checker struct {
	opts Options
}

// NewChecker creates a Checker with the given options.
func NewChecker(opts Options) *Checker {
	return &Checker{opts: opts}
}

// Check analyzes a trace with default options.
func Check(ops []trace.Op) (*Verdict, error) {
	return NewChecker(Options{}).Check(ops)
}

// CheckString parses and analyzes a textual trace with default options.
func CheckString(src string) (*Verdict, error) {
	return NewChecker(Options{}).CheckString(src)
}

// CheckString parses the textual trace and analyzes it.
func (c *Checker) CheckString(src string) (*Verdict, error) {
	ops, err := trace.Parse(src)
	if err != nil {
		return nil, err
	}
	return c.Check(ops)
}

// Check analyzes the trace in a single pass. It returns a Verdict for both
// valid traces and invariant violations; the error return is reserved for
// malformed traces (unknown names, unbalanced scopes) that cannot be
// analyzed at all.
func (c *Checker) Check(ops []trace.Op) (*Verdict, error) {
	e := newEnv()

	for _, op := range ops {
		v, err := c.checkOp(e, op)
		if err != nil {
			return nil, err
		}
		if v != nil {
			return v, nil
		}
	}

	return validVerdict(), nil
}

// violation is a candidate finding at a single operation. Candidates are
// collected in precedence order and the first enforced one wins.
type violation struct {
	kind    check.ViolationKind
	msg     string
	related []check.RelatedInfo
}

// checkOp analyzes one operation. A nil, nil return means the operation was
// admitted and analysis continues.
func (c *Checker) checkOp(e *env, op trace.Op) (*Verdict, error) {
	switch o := op.(type) {
	case *trace.Decl:
		// Declarations alone never violate an invariant. Shadowing creates
		// a fresh binding record; the old one keeps its storage and borrows.
		e.declare(&Binding{
			Name:    o.Name,
			Mutable: o.Mutable,
			Value:   o.Value,
			Index:   o.Index(),
			Pos:     o.Pos(),
		})
		return nil, nil

	case *trace.Ref:
		return c.checkRef(e, o)

	case *trace.Assign:
		return c.checkAssign(e, o)

	case *trace.Read:
		return c.checkRead(e, o)

	case *trace.ScopeEnter:
		e.enter()
		return nil, nil

	case *trace.ScopeExit:
		if !e.exit() {
			return nil, &TraceError{Index: o.Index(), Pos: o.Pos(), Message: ErrUnbalancedScope}
		}
		return nil, nil

	default:
		return nil, &TraceError{Index: op.Index(), Pos: op.Pos(), Message: fmt.Sprintf("unsupported operation %T", op)}
	}
}

// checkRef admits a new reference after checking invariants 1-3 against the
// target's live borrows.
func (c *Checker) checkRef(e *env, o *trace.Ref) (*Verdict, error) {
	target, ok := e.lookup(o.Target)
	if !ok {
		return nil, &TraceError{Index: o.Index(), Pos: o.Pos(), Message: fmt.Sprintf(ErrUnknownName, o.Target)}
	}

	var mutViol, refViol *violation

	if o.Kind == trace.RefExclusive && !target.Mutable {
		mutViol = &violation{
			kind: check.KindImmutableMutation,
			msg:  fmt.Sprintf("cannot take an exclusive reference to immutable binding %q", o.Target),
		}
	}

	if target.Dead {
		refViol = &violation{
			kind: check.KindDanglingReference,
			msg:  fmt.Sprintf("cannot reference %q: its scope has exited", o.Target),
			related: []check.RelatedInfo{{
				Pos:     target.Pos,
				Index:   target.Index,
				Message: fmt.Sprintf("%q declared here", o.Target),
			}},
		}
	}

	var cands []*violation
	cands = c.appendOrdered(cands, mutViol, refViol)

	// Invariants 1-2: conflicts with live borrows of the target storage.
	if excl := e.findExclusive(target.Storage); excl != nil {
		related := []check.RelatedInfo{{
			Pos:     excl.Pos,
			Index:   excl.Index,
			Message: fmt.Sprintf("exclusive reference %q created here", excl.Name),
		}}
		if o.Kind == trace.RefExclusive {
			cands = append(cands, &violation{
				kind:    check.KindDoubleExclusiveBorrow,
				msg:     fmt.Sprintf("cannot take a second exclusive reference to %q: exclusive reference %q is still live", o.Target, excl.Name),
				related: related,
			})
		} else {
			cands = append(cands, &violation{
				kind:    check.KindSharedExclusiveConflict,
				msg:     fmt.Sprintf("cannot take a shared reference to %q while exclusive reference %q is live", o.Target, excl.Name),
				related: related,
			})
		}
	} else if o.Kind == trace.RefExclusive {
		if sh := e.findShared(target.Storage); sh != nil {
			cands = append(cands, &violation{
				kind: check.KindSharedExclusiveConflict,
				msg:  fmt.Sprintf("cannot take an exclusive reference to %q while shared reference %q is live", o.Target, sh.Name),
				related: []check.RelatedInfo{{
					Pos:     sh.Pos,
					Index:   sh.Index,
					Message: fmt.Sprintf("shared reference %q created here", sh.Name),
				}},
			})
		}
	}

	if v := c.firstEnforced(cands); v != nil {
		return c.report(v, o), nil
	}

	ref := &Binding{
		Name:   o.Name,
		IsRef:  true,
		Target: target.Storage,
		Kind:   o.Kind,
		Index:  o.Index(),
		Pos:    o.Pos(),
	}
	e.declare(ref)
	e.addBorrow(ref)
	return nil, nil
}

// checkAssign enforces invariants 3-4 for a mutation, direct or through a
// reference.
func (c *Checker) checkAssign(e *env, o *trace.Assign) (*Verdict, error) {
	b, ok := e.lookup(o.Name)
	if !ok {
		return nil, &TraceError{Index: o.Index(), Pos: o.Pos(), Message: fmt.Sprintf(ErrUnknownName, o.Name)}
	}

	var mutViol, refViol *violation
	var cands []*violation

	if b.IsRef {
		// Mutation through a reference: the reference must be live, its
		// target must still exist, the target must be mutable, and the
		// path must be exclusive.
		target := e.owner(b.Target)

		if !target.Mutable {
			mutViol = &violation{
				kind: check.KindImmutableMutation,
				msg:  fmt.Sprintf("cannot assign to immutable binding %q through reference %q", target.Name, o.Name),
			}
		} else if b.Kind == trace.RefShared {
			mutViol = &violation{
				kind: check.KindImmutableMutation,
				msg:  fmt.Sprintf("cannot assign through shared reference %q: shared references are read-only", o.Name),
			}
		}

		if b.Dead || target.Dead {
			refViol = &violation{
				kind: check.KindDanglingReference,
				msg:  fmt.Sprintf("use of reference %q after the scope owning its target exited", o.Name),
				related: []check.RelatedInfo{{
					Pos:     target.Pos,
					Index:   target.Index,
					Message: fmt.Sprintf("target %q declared here", target.Name),
				}},
			}
		}

		cands = c.appendOrdered(cands, mutViol, refViol)
		if v := c.firstEnforced(cands); v != nil {
			return c.report(v, o), nil
		}

		target.Value = o.Value
		return nil, nil
	}

	// Direct assignment to a binding.
	if !b.Mutable {
		mutViol = &violation{
			kind: check.KindImmutableMutation,
			msg:  fmt.Sprintf("cannot assign to immutable binding %q", o.Name),
		}
	}

	if b.Dead {
		refViol = &violation{
			kind: check.KindDanglingReference,
			msg:  fmt.Sprintf("use of %q after its scope exited", o.Name),
		}
	}

	cands = c.appendOrdered(cands, mutViol, refViol)

	if c.opts.StrictOwnerWrites && !b.Dead {
		if live := e.liveBorrows(b.Storage); len(live) > 0 {
			ref := live[len(live)-1]
			cands = append(cands, &violation{
				kind: check.KindSharedExclusiveConflict,
				msg:  fmt.Sprintf("cannot assign to %q while reference %q is live", o.Name, ref.Name),
				related: []check.RelatedInfo{{
					Pos:     ref.Pos,
					Index:   ref.Index,
					Message: fmt.Sprintf("reference %q created here", ref.Name),
				}},
			})
		}
	}

	if v := c.firstEnforced(cands); v != nil {
		return c.report(v, o), nil
	}

	b.Value = o.Value
	return nil, nil
}

// checkRead enforces invariant 4 for a non-mutating access. Reading a live
// binding is always valid; only dangling uses are rejected.
func (c *Checker) checkRead(e *env, o *trace.Read) (*Verdict, error) {
	b, ok := e.lookup(o.Name)
	if !ok {
		return nil, &TraceError{Index: o.Index(), Pos: o.Pos(), Message: fmt.Sprintf(ErrUnknownName, o.Name)}
	}

	var refViol *violation

	if b.Dead {
		refViol = &violation{
			kind: check.KindDanglingReference,
			msg:  fmt.Sprintf("use of %q after its scope exited", o.Name),
		}
	} else if b.IsRef {
		if target := e.owner(b.Target); target.Dead {
			refViol = &violation{
				kind: check.KindDanglingReference,
				msg:  fmt.Sprintf("use of reference %q after the scope owning its target exited", o.Name),
				related: []check.RelatedInfo{{
					Pos:     target.Pos,
					Index:   target.Index,
					Message: fmt.Sprintf("target %q declared here", target.Name),
				}},
			}
		}
	}

	if v := c.firstEnforced([]*violation{refViol}); v != nil {
		return c.report(v, o), nil
	}
	return nil, nil
}

// appendOrdered appends the mutability and reference-validity candidates in
// the configured precedence order.
func (c *Checker) appendOrdered(cands []*violation, mutViol, refViol *violation) []*violation {
	if c.opts.Precedence == PrecedenceReferenceFirst {
		if refViol != nil {
			cands = append(cands, refViol)
		}
		if mutViol != nil {
			cands = append(cands, mutViol)
		}
		return cands
	}
	if mutViol != nil {
		cands = append(cands, mutViol)
	}
	if refViol != nil {
		cands = append(cands, refViol)
	}
	return cands
}

// firstEnforced returns the first candidate whose check is not disabled.
func (c *Checker) firstEnforced(cands []*violation) *violation {
	for _, v := range cands {
		if v == nil {
			continue
		}
		if c.opts.Config.IsDisabled(v.kind.ID()) {
			continue
		}
		return v
	}
	return nil
}

// report builds the failing verdict for a violation at an operation.
func (c *Checker) report(v *violation, op trace.Op) *Verdict {
	severity := check.SeverityError
	if def, ok := check.GetByKind(v.kind); ok {
		severity = c.opts.Config.GetSeverity(def.ID, def.Severity)
	}

	return &Verdict{
		Valid: false,
		Index: op.Index(),
		Kind:  v.kind,
		Diagnostic: &check.Diagnostic{
			CheckID:  v.kind.ID(),
			Kind:     v.kind,
			Severity: severity,
			Message:  v.msg,
			Pos:      op.Pos(),
			Index:    op.Index(),
			Related:  v.related,
		},
	}
}
