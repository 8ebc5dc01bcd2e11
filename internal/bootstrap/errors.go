package bootstrap

import (
	"strings"

	amanerrors "github.com/amanmcp/amanmcp/internal/errors"
)

// Diagnostic is a single per-check failure, preserved verbatim so
// programmatic consumers can enumerate violations individually.
type Diagnostic struct {
	CheckID string
	Message string
}

// ValidationError is the aggregated failure raised by Engine.Run when
// one or more checks violate. It generalizes internal/errors.AmanError
// (which carries a single Cause) into a genuinely multi-cause error,
// while keeping the same error-code vocabulary so existing callers
// that branch on amanmcp error codes keep working unmodified.
type ValidationError struct {
	Summary string
	Causes  []Diagnostic
}

// Error renders the composite message: one summary line followed by
// one line per diagnostic, in the order the checks were supplied.
func (e *ValidationError) Error() string {
	var b strings.Builder
	b.WriteString(e.Summary)
	for _, c := range e.Causes {
		b.WriteByte('\n')
		b.WriteString(c.Message)
	}
	return b.String()
}

// Unwrap exposes every cause to errors.Is/errors.As (Go 1.20+
// multi-error unwrap), not just the first.
func (e *ValidationError) Unwrap() []error {
	errs := make([]error, len(e.Causes))
	for i, c := range e.Causes {
		errs[i] = diagnosticError(c.Message)
	}
	return errs
}

// ErrCode reports the amanmcp error code this failure maps to, so CLI
// formatting (internal/errors.FormatForCLI) and config-error handling
// share one taxonomy.
func (e *ValidationError) ErrCode() string {
	return amanerrors.ErrCodeConfigInvalid
}

// diagnosticError lets a single Diagnostic satisfy the error
// interface for Unwrap() []error without allocating an AmanError per
// cause.
type diagnosticError string

func (d diagnosticError) Error() string { return string(d) }

// newValidationError builds the aggregated failure from ordered
// diagnostics. Returns nil if diagnostics is empty — callers should
// prefer checking length themselves, but this keeps the constructor
// safe to call unconditionally.
func newValidationError(diagnostics []Diagnostic) *ValidationError {
	if len(diagnostics) == 0 {
		return nil
	}
	return &ValidationError{
		Summary: "bootstrap checks failed",
		Causes:  diagnostics,
	}
}
