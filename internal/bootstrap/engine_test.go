package bootstrap

import (
	"net/netip"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingLogger struct {
	lines []string
}

func (r *recordingLogger) Info(msg string) { r.lines = append(r.lines, msg) }

func alwaysPass(id string) Check {
	return newCheck(id, func() bool { return false }, func() string { return "" }, false)
}

func alwaysFail(id, diagnostic string, alwaysEnforced bool) Check {
	return newCheck(id, func() bool { return true }, func() string { return diagnostic }, alwaysEnforced)
}

func TestEngine_Run_NoViolations(t *testing.T) {
	logger := &recordingLogger{}
	e := NewEngine(logger)

	err := e.Run(ModeProduction, []Check{alwaysPass("a"), alwaysPass("b")}, "test")

	assert.NoError(t, err)
	assert.Empty(t, logger.lines)
}

func TestEngine_Run_AggregatesInOrder(t *testing.T) {
	e := NewEngine(nil)

	checks := []Check{
		alwaysFail("first", "first failure", false),
		alwaysPass("middle"),
		alwaysFail("second", "second failure", false),
	}

	err := e.Run(ModeProduction, checks, "test")
	require.Error(t, err)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.Len(t, verr.Causes, 2)
	assert.Equal(t, "first", verr.Causes[0].CheckID)
	assert.Equal(t, "second", verr.Causes[1].CheckID)
}

func TestEngine_Run_DevelopmentModeSkipsNonAlwaysEnforced(t *testing.T) {
	e := NewEngine(nil)

	checks := []Check{alwaysFail("not_enforced", "should not fire", false)}
	err := e.Run(ModeDevelopment, checks, "test")

	assert.NoError(t, err)
}

func TestEngine_Run_AlwaysEnforcedFiresInDevelopment(t *testing.T) {
	e := NewEngine(nil)

	checks := []Check{alwaysFail("fork_risk", "might fork", true)}
	err := e.Run(ModeDevelopment, checks, "test")

	require.Error(t, err)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "fork_risk", verr.Causes[0].CheckID)
}

func TestEngine_RunForTransport_LogsOnceWhenProduction(t *testing.T) {
	logger := &recordingLogger{}
	e := NewEngine(logger)

	nonLocal := netip.MustParseAddr("10.0.0.1")
	err := e.RunForTransport(BoundTransport{Bound: []netip.Addr{nonLocal}}, []Check{alwaysPass("a")}, "test")

	assert.NoError(t, err)
	require.Len(t, logger.lines, 1)
	assert.Equal(t, productionLogLine, logger.lines[0])
}

func TestEngine_RunForTransport_NoLogWhenDevelopment(t *testing.T) {
	logger := &recordingLogger{}
	e := NewEngine(logger)

	loopback := netip.MustParseAddr("127.0.0.1")
	err := e.RunForTransport(BoundTransport{Bound: []netip.Addr{loopback}}, []Check{alwaysPass("a")}, "test")

	assert.NoError(t, err)
	assert.Empty(t, logger.lines)
}

func TestNewEngine_NilLoggerDoesNotPanic(t *testing.T) {
	e := NewEngine(nil)
	nonLocal := netip.MustParseAddr("10.0.0.1")
	assert.NotPanics(t, func() {
		_ = e.RunForTransport(BoundTransport{Bound: []netip.Addr{nonLocal}}, nil, "test")
	})
}
