package commands

import (
	"errors"

	"ordertracking/internal/pkg/guard"
)

var (
	ErrAuditProjectionsCommandIsNotConstructed = errors.New(
		"AuditProjectionsCommand must be created via NewAuditProjectionsCommand constructor",
	)
)

// AuditProjectionsCommand represents a request to sweep every order and
// verify its projected latest status against the ledger. A correct write
// path never produces a mismatch, so every violation found is a bug signal;
// the audit repairs the projection but the violation itself must be logged,
// never swallowed.
type AuditProjectionsCommand struct {
	guard guard.ConstructorGuard
}

// NewAuditProjectionsCommand creates a command to audit all projections.
// This is a parameterless command.
func NewAuditProjectionsCommand() AuditProjectionsCommand {
	return AuditProjectionsCommand{guard: guard.NewConstructorGuard()}
}

// Validate ensures the command was created through the constructor.
// Returns ErrAuditProjectionsCommandIsNotConstructed if validation fails.
func (c AuditProjectionsCommand) Validate() error {
	return c.guard.Validate(ErrAuditProjectionsCommandIsNotConstructed)
}

// AuditProjectionsResult summarizes a completed audit sweep.
type AuditProjectionsResult struct {
	// Checked is the number of orders whose projection was verified.
	Checked int

	// Violations lists every projection mismatch found, already repaired.
	// Each entry unwraps to errs.ErrInvariantViolation.
	Violations []error
}
