package check

// Config controls which checks are enforced and their severity.
type Config struct {
	// DisabledChecks contains check IDs to skip. A disabled check's
	// violations are not reported and analysis continues past them.
	DisabledChecks map[string]bool

	// SeverityOverrides changes the default severity of checks
	SeverityOverrides map[string]Severity
}

// NewConfig creates a default configuration with all checks enforced.
func NewConfig() *Config {
	return &Config{
		DisabledChecks:    make(map[string]bool),
		SeverityOverrides: make(map[string]Severity),
	}
}

// IsDisabled returns true if the check should be skipped.
func (c *Config) IsDisabled(checkID string) bool {
	if c == nil {
		return false
	}
	return c.DisabledChecks[checkID]
}

// GetSeverity returns the severity for a check, applying any override.
func (c *Config) GetSeverity(checkID string, defaultSeverity Severity) Severity {
	if c != nil {
		if sev, ok := c.SeverityOverrides[checkID]; ok {
			return sev
		}
	}
	return defaultSeverity
}

// Disable disables a check by ID.
func (c *Config) Disable(checkID string) *Config {
	c.DisabledChecks[checkID] = true
	return c
}

// SetSeverity overrides the severity for a check.
func (c *Config) SetSeverity(checkID string, severity Severity) *Config {
	c.SeverityOverrides[checkID] = severity
	return c
}
