package check

import "sync"

// globalRegistry is the single global registry for all check definitions.
var globalRegistry = &Registry{
	defs: make(map[string]CheckDef),
}

// Registry stores registered check definitions for discovery.
type Registry struct {
	mu   sync.RWMutex
	defs map[string]CheckDef // keyed by ID
}

// Register adds a check definition to the global registry.
func Register(def CheckDef) {
	globalRegistry.mu.Lock()
	defer globalRegistry.mu.Unlock()
	globalRegistry.defs[def.ID] = def
}

// GetAll returns all registered check definitions.
func GetAll() []CheckDef {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()

	defs := make([]CheckDef, 0, len(globalRegistry.defs))
	for _, def := range globalRegistry.defs {
		defs = append(defs, def)
	}
	return defs
}

// GetByID returns a check definition by its ID.
func GetByID(id string) (CheckDef, bool) {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()
	def, ok := globalRegistry.defs[id]
	return def, ok
}

// GetByKind returns the check definition enforcing the given violation kind.
func GetByKind(kind ViolationKind) (CheckDef, bool) {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()
	for _, def := range globalRegistry.defs {
		if def.Kind == kind {
			return def, true
		}
	}
	return CheckDef{}, false
}

// GetByGroup returns all check definitions in a specific group.
func GetByGroup(group string) []CheckDef {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()

	var defs []CheckDef
	for _, def := range globalRegistry.defs {
		if def.Group == group {
			defs = append(defs, def)
		}
	}
	return defs
}

// Count returns the number of registered check definitions.
func Count() int {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()
	return len(globalRegistry.defs)
}
