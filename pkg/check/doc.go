// Package check defines the diagnostic vocabulary of the borrow checker.
//
// # Architecture
//
// The package follows a data-driven layout:
//
//  1. Violation kinds (kind.go): the closed set of invariant violations
//  2. Check definitions (def.go): per-kind metadata for documentation and tooling
//  3. Registry (registry.go): discovery of registered checks by ID or group
//  4. Config (config.go): enablement and severity overrides
//
// Checks are registered via init() when the package is imported; the set is
// closed because the checker enforces a fixed rule system, but the registry
// keeps metadata queryable the same way a pluggable rule set would be.
//
// # Using the Registry
//
//	defs := check.GetAll()
//	def, ok := check.GetByID("BC01")
//	lifetime := check.GetByGroup("lifetime")
//
// # Configuration
//
//	config := check.NewConfig()
//	config.SetSeverity("BC02", check.SeverityWarning)
//	config.Disable("BC04")
package check
