// Package bootstrap implements amanmcp's pre-start environment
// validation engine: a suite of independent checks against the host
// operating system, process resource limits, and the managed runtime
// that must pass before the MCP server opens a non-loopback listener.
//
// The engine never mutates OS state, never retries, and never blocks
// on I/O. It is invoked exactly once, synchronously, from
// cmd/amanmcp/cmd before the server starts serving.
package bootstrap

// UnknownInt is the sentinel a numeric probe returns when the host
// cannot report a value. Checks must treat it as non-violation.
const UnknownInt int64 = -1

// LongMin is the sentinel used specifically by probes that read
// rlimit-shaped values where -1 is itself a valid "unlimited" answer
// on some platforms; LongMin disambiguates "unknown" from "unlimited".
const LongMin int64 = -1 << 63

// IntProbe is a nullary accessor for a numeric OS/runtime quantity.
// Implementations must return UnknownInt (or, where noted, LongMin)
// rather than panicking when the value cannot be determined.
type IntProbe func() int64

// StringProbe is a nullary accessor for a string-valued OS/runtime
// quantity. An empty string means "not set" / "unknown".
type StringProbe func() string

// BoolProbe is a nullary accessor for a boolean OS/runtime quantity.
type BoolProbe func() bool

// HostDescriptor exposes platform facts that vary the catalogue's
// constants without requiring recompilation for tests: the OSX file
// descriptor floor and the host's "unlimited" rlimit sentinel differ
// by platform, so checks consult this instead of compile-time
// constants for them.
type HostDescriptor struct {
	// OS is the runtime.GOOS value ("linux", "darwin", "windows", ...).
	OS string
	// RlimInfinity is the host-native sentinel for "no limit" as
	// reported by getrlimit: 9223372036854775807 on macOS, -1 elsewhere.
	RlimInfinity int64
}

// RuntimeProbes groups the managed-runtime readings the JVM-derived
// checks in this catalogue consult (heap sizing, GC collector choice,
// vendor/version gating, fork-on-fatal-error directives). amanmcp runs
// on the Go runtime, not a JVM, so the concrete implementation lives
// in goruntime.go and reports values that make the Oracle/G1GC-era
// checks permanently non-violating without any special-casing in the
// checks themselves.
type RuntimeProbes struct {
	InitialHeapSize IntProbe
	MaxHeapSize     IntProbe

	VMName      StringProbe
	UseSerialGC StringProbe

	JVMVendor     StringProbe
	IsG1GCEnabled BoolProbe
	JVMVersion    StringProbe
	IsJava8       BoolProbe

	OnError            StringProbe
	OnOutOfMemoryError StringProbe
}

// ProcessProbes groups the process-level OS readings: file
// descriptors, thread limits, address space, memory lock, kernel
// tunables, and syscall-filter install status. The concrete
// implementation lives in procfs_linux.go / procfs_other.go and is
// supplied by the caller (cmd/amanmcp/cmd), not constructed here.
type ProcessProbes struct {
	MaxFDCount IntProbe

	IsMemoryLocked BoolProbe

	MaxThreads IntProbe

	MaxAddressSpace IntProbe

	MaxMapCount IntProbe

	IsSyscallFilterInstalled BoolProbe
}
