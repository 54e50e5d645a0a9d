package check

import (
	"github.com/leapstack-labs/borrowlint/pkg/token"
)

// Severity indicates the importance of a diagnostic.
type Severity int

// Severity levels for diagnostics.
const (
	// SeverityError indicates a critical issue that should be fixed.
	SeverityError Severity = iota
	// SeverityWarning indicates a potential issue that should be reviewed.
	SeverityWarning
	// SeverityInfo indicates informational feedback.
	SeverityInfo
	// SeverityHint indicates a suggestion for improvement.
	SeverityHint
)

// String returns the string representation of the severity.
func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	case SeverityInfo:
		return "info"
	case SeverityHint:
		return "hint"
	default:
		return "unknown"
	}
}

// ParseSeverity maps a severity name to its value.
// Unknown names map to SeverityError.
func ParseSeverity(name string) Severity {
	switch name {
	case "warning":
		return SeverityWarning
	case "info":
		return SeverityInfo
	case "hint":
		return SeverityHint
	default:
		return SeverityError
	}
}

// Diagnostic represents a borrow-check finding.
type Diagnostic struct {
	CheckID  string        // e.g., "BC01"
	Kind     ViolationKind // violated invariant
	Severity Severity
	Message  string
	Pos      token.Position // position of the violating operation
	Index    int            // trace index of the violating operation
	Related  []RelatedInfo  // Optional: additional locations/context
}

// RelatedInfo provides additional context for a diagnostic, such as the
// position of the earlier borrow that conflicts with a new one.
type RelatedInfo struct {
	Pos     token.Position
	Index   int
	Message string
}
