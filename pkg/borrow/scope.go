package borrow

import (
	"github.com/leapstack-labs/borrowlint/pkg/token"
	"github.com/leapstack-labs/borrowlint/pkg/trace"
)

// StorageID identifies a storage location. IDs are assigned in declaration
// order and never reused, so a shadowed binding's storage stays addressable
// by the references that borrowed it.
type StorageID int

// Binding represents a named storage slot created by DECL, or a reference
// binding created by REF. A reference is an explicit relation to another
// binding's storage, never a raw pointer.
type Binding struct {
	Storage StorageID
	Name    string
	Mutable bool
	Value   string // last assigned value literal, diagnostics only
	Depth   int    // scope depth at creation
	Index   int    // trace index of the creating operation
	Pos     token.Position
	Dead    bool // set when the owning scope exits

	// Reference bindings only
	IsRef  bool
	Target StorageID
	Kind   trace.RefKind
}

// frame is one record on the explicit scope stack. It remembers what was
// created in the scope so SCOPE_EXIT can drop it in reverse creation order.
type frame struct {
	depth   int
	created []*Binding
}

// env is the checker's working state for a single run.
type env struct {
	frames   []*frame
	names    map[string][]*Binding    // shadow stack per name; top is visible
	lastDead map[string]*Binding      // most recently dropped binding per name
	borrows  map[StorageID][]*Binding // live reference bindings per storage
	storage  map[StorageID]*Binding   // storage location -> owning binding
	next     StorageID
}

func newEnv() *env {
	e := &env{
		names:    make(map[string][]*Binding),
		lastDead: make(map[string]*Binding),
		borrows:  make(map[StorageID][]*Binding),
		storage:  make(map[StorageID]*Binding),
	}
	// Implicit root scope
	e.frames = append(e.frames, &frame{depth: 0})
	return e
}

// depth returns the current scope depth (root = 0).
func (e *env) depth() int {
	return len(e.frames) - 1
}

// enter opens a nested scope.
func (e *env) enter() {
	e.frames = append(e.frames, &frame{depth: len(e.frames)})
}

// exit closes the innermost scope, dropping its bindings and references
// last-created first. Returns false if only the root scope remains.
func (e *env) exit() bool {
	if len(e.frames) == 1 {
		return false
	}

	f := e.frames[len(e.frames)-1]
	e.frames = e.frames[:len(e.frames)-1]

	for i := len(f.created) - 1; i >= 0; i-- {
		b := f.created[i]
		b.Dead = true

		// End the borrow this reference held on its target.
		if b.IsRef {
			e.dropBorrow(b)
		}

		// Pop the shadow stack; keep a tombstone so later uses of the
		// name report dangling rather than unknown.
		stack := e.names[b.Name]
		if n := len(stack); n > 0 && stack[n-1] == b {
			e.names[b.Name] = stack[:n-1]
		}
		e.lastDead[b.Name] = b
	}
	return true
}

// declare creates a new binding in the innermost scope. A same-name binding
// is shadowed, not mutated; its storage and borrows are untouched.
func (e *env) declare(b *Binding) {
	b.Storage = e.next
	e.next++
	b.Depth = e.depth()
	e.storage[b.Storage] = b

	f := e.frames[len(e.frames)-1]
	f.created = append(f.created, b)
	e.names[b.Name] = append(e.names[b.Name], b)
}

// lookup resolves a name to its visible binding. The second result is false
// when the name has never been bound; a dead binding is returned (with its
// Dead flag set) when the name was bound but its scope has exited.
func (e *env) lookup(name string) (*Binding, bool) {
	if stack := e.names[name]; len(stack) > 0 {
		return stack[len(stack)-1], true
	}
	if b, ok := e.lastDead[name]; ok {
		return b, true
	}
	return nil, false
}

// owner returns the binding that owns a storage location.
func (e *env) owner(s StorageID) *Binding {
	return e.storage[s]
}

// liveBorrows returns the live reference bindings for a storage location.
func (e *env) liveBorrows(s StorageID) []*Binding {
	return e.borrows[s]
}

// addBorrow records a new live borrow of the reference's target storage.
func (e *env) addBorrow(ref *Binding) {
	e.borrows[ref.Target] = append(e.borrows[ref.Target], ref)
}

// dropBorrow removes a reference from its target's live-borrow set.
func (e *env) dropBorrow(ref *Binding) {
	live := e.borrows[ref.Target]
	for i, b := range live {
		if b == ref {
			e.borrows[ref.Target] = append(live[:i], live[i+1:]...)
			return
		}
	}
}

// findExclusive returns the live exclusive borrow of a storage, if any.
func (e *env) findExclusive(s StorageID) *Binding {
	for _, b := range e.borrows[s] {
		if b.Kind == trace.RefExclusive {
			return b
		}
	}
	return nil
}

// findShared returns a live shared borrow of a storage, if any.
func (e *env) findShared(s StorageID) *Binding {
	for _, b := range e.borrows[s] {
		if b.Kind == trace.RefShared {
			return b
		}
	}
	return nil
}
