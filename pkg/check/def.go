package check

// CheckDef is a data-driven check definition. Checks are stateless; the
// definition carries identity and documentation metadata only, while the
// enforcement logic lives in the borrow checker.
type CheckDef struct {
	ID          string        // Unique identifier, e.g., "BC01"
	Name        string        // Human-readable name, e.g., "borrow.double-exclusive"
	Group       string        // Category: "borrow", "mutability", "lifetime"
	Description string        // Human-readable description
	Kind        ViolationKind // The invariant this check enforces
	Severity    Severity      // Default severity

	// Documentation fields for richer check documentation
	Rationale   string // Why this check exists, what problems it prevents
	BadExample  string // Trace showing the violation
	GoodExample string // Trace showing the correct pattern
	Fix         string // How to fix violations (when not obvious)
}

func init() {
	Register(CheckDef{
		ID:          "BC01",
		Name:        "borrow.double-exclusive",
		Group:       "borrow",
		Description: "at most one exclusive reference to a storage location may be live at a time",
		Kind:        KindDoubleExclusiveBorrow,
		Severity:    SeverityError,
		Rationale: "Two live exclusive references to the same storage allow " +
			"conflicting writes with no defined ordering.",
		BadExample:  "DECL x mut=true\nREF r1 -> x kind=exclusive\nREF r2 -> x kind=exclusive",
		GoodExample: "DECL x mut=true\nSCOPE_ENTER\nREF r1 -> x kind=exclusive\nSCOPE_EXIT\nREF r2 -> x kind=exclusive",
		Fix:         "End the first exclusive borrow (exit its scope) before taking the second.",
	})

	Register(CheckDef{
		ID:          "BC02",
		Name:        "borrow.shared-exclusive-conflict",
		Group:       "borrow",
		Description: "shared and exclusive references to the same storage location may not coexist",
		Kind:        KindSharedExclusiveConflict,
		Severity:    SeverityError,
		Rationale: "A live exclusive reference may mutate the storage; shared " +
			"readers observing that storage would see it change underneath them.",
		BadExample:  "DECL x mut=true\nREF r1 -> x kind=exclusive\nREF r2 -> x kind=shared",
		GoodExample: "DECL x mut=true\nREF r1 -> x kind=shared\nREF r2 -> x kind=shared",
	})

	Register(CheckDef{
		ID:          "BC03",
		Name:        "mutability.immutable-mutation",
		Group:       "mutability",
		Description: "a binding not marked mutable cannot be mutated through any path",
		Kind:        KindImmutableMutation,
		Severity:    SeverityError,
		Rationale: "Immutability is a contract: holders of the binding and of " +
			"shared references to it rely on the value never changing.",
		BadExample:  "DECL x mut=false\nASSIGN x",
		GoodExample: "DECL x mut=true\nASSIGN x",
		Fix:         "Declare the binding with mut=true, or drop the mutation.",
	})

	Register(CheckDef{
		ID:          "BC04",
		Name:        "lifetime.dangling-reference",
		Group:       "lifetime",
		Description: "a reference may not be used after the scope owning its target has exited",
		Kind:        KindDanglingReference,
		Severity:    SeverityError,
		Rationale: "Once the owning scope exits, the storage a reference names " +
			"no longer exists; any use reads or writes freed storage.",
		BadExample:  "SCOPE_ENTER\nDECL x mut=false\nREF r -> x kind=shared\nSCOPE_EXIT\nREAD r",
		GoodExample: "DECL x mut=false\nSCOPE_ENTER\nREF r -> x kind=shared\nREAD r\nSCOPE_EXIT",
		Fix:         "Move the target's declaration to a scope that outlives every use of the reference.",
	})
}
