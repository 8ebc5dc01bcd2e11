package bootstrap

// Check is the unit of validation. It is a flat value, not an
// interface hierarchy: every check exposes the same four operations
// regardless of which probes it closes over, in the spirit of the
// preflight package's CheckResult rather than a deep class tree.
//
// A Check is a pure function of the probes it was built from.
// Invoking Violated, Diagnostic, or AlwaysEnforced must not mutate
// any observable state, and the same inputs must always yield the
// same outputs.
type Check struct {
	id             string
	violated       func() bool
	diagnostic     func() string
	alwaysEnforced bool
}

// ID returns a stable identifier for diagnostics and test assertions.
func (c Check) ID() string { return c.id }

// Violated reports whether this check is currently failing.
func (c Check) Violated() bool { return c.violated() }

// Diagnostic returns a non-empty human-facing description of the
// failure. Only meaningful when Violated returns true.
func (c Check) Diagnostic() string { return c.diagnostic() }

// AlwaysEnforced reports whether this check fires regardless of
// EnforcementMode. Defaults to false for checks built without it.
func (c Check) AlwaysEnforced() bool { return c.alwaysEnforced }

// newCheck builds a Check from its parts. Internal helper shared by
// every constructor in the catalogue files.
func newCheck(id string, violated func() bool, diagnostic func() string, alwaysEnforced bool) Check {
	return Check{
		id:             id,
		violated:       violated,
		diagnostic:     diagnostic,
		alwaysEnforced: alwaysEnforced,
	}
}
