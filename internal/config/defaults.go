package config

// Precedence values for checker.precedence.
const (
	PrecedenceMutabilityFirst = "mutability-first"
	PrecedenceReferenceFirst  = "reference-first"
)

// Default configuration values.
const (
	DefaultPrecedence = PrecedenceMutabilityFirst
	DefaultFormat     = "text"
	DefaultColor      = true
)

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Checker: CheckerConfig{
			Precedence: DefaultPrecedence,
		},
		Checks: ChecksConfig{
			Severity: map[string]string{},
		},
		Output: OutputConfig{
			Format: DefaultFormat,
			Color:  DefaultColor,
		},
	}
}
