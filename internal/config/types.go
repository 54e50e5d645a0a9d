// Package config loads borrowlint project configuration. It is decoupled
// from any particular caller so that tools embedding the checker can share
// one configuration surface.
package config

import (
	"fmt"

	"github.com/leapstack-labs/borrowlint/pkg/borrow"
	"github.com/leapstack-labs/borrowlint/pkg/check"
)

// Config is the root configuration for an analysis run.
type Config struct {
	Checker CheckerConfig `koanf:"checker"`
	Checks  ChecksConfig  `koanf:"checks"`
	Output  OutputConfig  `koanf:"output"`
}

// CheckerConfig controls checker semantics.
type CheckerConfig struct {
	// Precedence is "mutability-first" (default) or "reference-first".
	Precedence string `koanf:"precedence"`

	// StrictOwnerWrites rejects direct assignment to a binding while any
	// reference to its storage is live.
	StrictOwnerWrites bool `koanf:"strict_owner_writes"`
}

// ChecksConfig controls check enablement and severity.
type ChecksConfig struct {
	// Disabled lists check IDs whose violations are not enforced.
	Disabled []string `koanf:"disabled"`

	// Severity overrides the default severity per check ID,
	// e.g. {"BC02": "warning"}.
	Severity map[string]string `koanf:"severity"`
}

// OutputConfig controls report rendering.
type OutputConfig struct {
	Format string `koanf:"format"` // text, table, json, md
	Color  bool   `koanf:"color"`
}

// Validate checks the configuration for unknown values.
func (c *Config) Validate() error {
	switch c.Checker.Precedence {
	case PrecedenceMutabilityFirst, PrecedenceReferenceFirst:
	default:
		return fmt.Errorf("unknown checker.precedence %q", c.Checker.Precedence)
	}

	switch c.Output.Format {
	case "text", "table", "json", "md":
	default:
		return fmt.Errorf("unknown output.format %q", c.Output.Format)
	}

	for _, id := range c.Checks.Disabled {
		if _, ok := check.GetByID(id); !ok {
			return fmt.Errorf("unknown check ID %q in checks.disabled", id)
		}
	}
	for id, sev := range c.Checks.Severity {
		if _, ok := check.GetByID(id); !ok {
			return fmt.Errorf("unknown check ID %q in checks.severity", id)
		}
		switch sev {
		case "error", "warning", "info", "hint":
		default:
			return fmt.Errorf("unknown severity %q for check %q", sev, id)
		}
	}

	return nil
}

// CheckerOptions bridges the configuration to borrow.Options.
func (c *Config) CheckerOptions() borrow.Options {
	opts := borrow.Options{
		StrictOwnerWrites: c.Checker.StrictOwnerWrites,
		Config:            c.CheckConfig(),
	}
	if c.Checker.Precedence == PrecedenceReferenceFirst {
		opts.Precedence = borrow.PrecedenceReferenceFirst
	}
	return opts
}

// CheckConfig bridges the configuration to check.Config.
func (c *Config) CheckConfig() *check.Config {
	cfg := check.NewConfig()
	for _, id := range c.Checks.Disabled {
		cfg.Disable(id)
	}
	for id, sev := range c.Checks.Severity {
		cfg.SetSeverity(id, check.ParseSeverity(sev))
	}
	return cfg
}
