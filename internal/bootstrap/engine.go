package bootstrap

// Logger is the minimal sink the engine calls at most once per
// invocation. Satisfied in production by a thin adapter over
// *slog.Logger (see sloglogger.go); tests can supply a recording
// stub.
type Logger interface {
	Info(msg string)
}

// productionLogLine is the exact informational line the engine emits
// when a BoundTransport snapshot resolves to Production mode. The
// wording and the fact that it fires at most once are both part of
// the observable contract.
const productionLogLine = "bound or publishing to a non-loopback or non-link-local address, enforcing bootstrap checks"

// noopLogger discards Info calls; used when Engine is constructed
// without a logger, or by the direct Run entry point which never
// logs.
type noopLogger struct{}

func (noopLogger) Info(string) {}

// Engine runs an ordered list of checks under a resolved
// EnforcementMode and aggregates every violation into a single
// ValidationError. It is single-threaded and synchronous: no check
// may suspend, block on I/O, or spawn helpers, and Run always
// completes before returning.
type Engine struct {
	logger Logger
}

// NewEngine constructs an Engine that logs through the given Logger.
// A nil logger is replaced with a no-op so callers that only use the
// direct Run entry point (which never logs) need not supply one.
func NewEngine(logger Logger) *Engine {
	if logger == nil {
		logger = noopLogger{}
	}
	return &Engine{logger: logger}
}

// RunForTransport resolves the EnforcementMode from a BoundTransport
// snapshot, logs the fixed informational line iff the resolved mode
// is Production, then runs checks under that mode. label is used only
// in diagnostics, never in control flow.
func (e *Engine) RunForTransport(t BoundTransport, checks []Check, label string) error {
	mode := ResolveMode(t)
	if mode == ModeProduction {
		e.logger.Info(productionLogLine)
	}
	return e.Run(mode, checks, label)
}

// Run evaluates checks under an explicit mode, skipping the
// address-based logging RunForTransport performs. This is the entry
// point used by tests and embedding harnesses that already know the
// mode they want to exercise.
func (e *Engine) Run(mode EnforcementMode, checks []Check, label string) error {
	_ = label // diagnostics-only, carried for call-site identification

	var diagnostics []Diagnostic
	for _, c := range checks {
		active := mode == ModeProduction || c.AlwaysEnforced()
		if !active {
			continue
		}
		if c.Violated() {
			diagnostics = append(diagnostics, Diagnostic{
				CheckID: c.ID(),
				Message: c.Diagnostic(),
			})
		}
	}

	if len(diagnostics) == 0 {
		return nil
	}

	return newValidationError(diagnostics)
}
