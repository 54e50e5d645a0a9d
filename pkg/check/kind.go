package check

// ViolationKind identifies which invariant a diagnostic violates.
type ViolationKind int

const (
	// KindNone means no violation (valid trace).
	KindNone ViolationKind = iota
	// KindDoubleExclusiveBorrow: a second exclusive reference was requested
	// while one is live.
	KindDoubleExclusiveBorrow
	// KindSharedExclusiveConflict: a shared reference was requested while an
	// exclusive one is live, or vice versa.
	KindSharedExclusiveConflict
	// KindImmutableMutation: a mutating operation targets a binding not
	// marked mutable, or travels a read-only path.
	KindImmutableMutation
	// KindDanglingReference: a reference was used after the scope owning its
	// target exited.
	KindDanglingReference
)

// String returns the canonical name of the violation kind.
func (k ViolationKind) String() string {
	switch k {
	case KindNone:
		return "None"
	case KindDoubleExclusiveBorrow:
		return "DoubleExclusiveBorrow"
	case KindSharedExclusiveConflict:
		return "SharedExclusiveConflict"
	case KindImmutableMutation:
		return "ImmutableMutation"
	case KindDanglingReference:
		return "DanglingReference"
	default:
		return "Unknown"
	}
}

// ID returns the stable check ID for the violation kind, or "" for KindNone.
func (k ViolationKind) ID() string {
	switch k {
	case KindDoubleExclusiveBorrow:
		return "BC01"
	case KindSharedExclusiveConflict:
		return "BC02"
	case KindImmutableMutation:
		return "BC03"
	case KindDanglingReference:
		return "BC04"
	default:
		return ""
	}
}
