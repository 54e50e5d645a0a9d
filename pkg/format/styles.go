package format

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/leapstack-labs/borrowlint/pkg/check"
)

// Styles holds the lipgloss styles used for rendered output.
type Styles struct {
	Error   lipgloss.Style
	Warning lipgloss.Style
	Info    lipgloss.Style
	Success lipgloss.Style
	Muted   lipgloss.Style
}

// NewStyles creates the output styles. With color disabled all styles are
// no-ops, which keeps rendered output stable for tests and pipes.
func NewStyles(color bool) *Styles {
	if !color {
		plain := lipgloss.NewStyle()
		return &Styles{
			Error:   plain,
			Warning: plain,
			Info:    plain,
			Success: plain,
			Muted:   plain,
		}
	}
	return &Styles{
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		Info:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		Muted:   lipgloss.NewStyle().Faint(true),
	}
}

// severityStyle returns the style for a severity level.
func (s *Styles) severityStyle(sev check.Severity) lipgloss.Style {
	switch sev {
	case check.SeverityError:
		return s.Error
	case check.SeverityWarning:
		return s.Warning
	case check.SeverityInfo:
		return s.Info
	default:
		return s.Muted
	}
}
