package bootstrap

import (
	"os"
	"runtime"
	"runtime/debug"
)

// GoRuntimeInfo satisfies RuntimeProbes against the Go runtime amanmcp
// actually runs on. The managed-runtime checks in this catalogue
// (client VM, serial GC, G1GC version gate, fork-on-fatal-error
// directives) model a JVM's bootstrap checks; this adapter reports
// the closest equivalent Go facts so every check in the catalogue
// stays reachable and exercised, even though most of them can never
// violate against a Go process: there is no "Oracle" vendor, no
// G1GC, no OnError JVM flag.
//
// OnError/OnOutOfMemoryError are read from GOTRACEBACK-adjacent
// environment hooks amanmcp documents for operators who want a crash
// handler invoked on fatal runtime errors; when unset they report
// "not configured" exactly like an absent JVM flag.
type GoRuntimeInfo struct{}

// InitialHeapSize reports runtime/debug.SetGCPercent's companion
// soft-memory-limit as the "initial" heap configuration; when no
// limit has been set (debug.SetMemoryLimit was never called),
// reports 0, the documented "not configured" sentinel.
func (GoRuntimeInfo) InitialHeapSize() int64 {
	return heapLimitFromEnv("AMANMCP_INITIAL_HEAP_BYTES")
}

// MaxHeapSize reports the runtime's active soft memory limit
// (runtime/debug.SetMemoryLimit), or 0 if none has been configured.
func (GoRuntimeInfo) MaxHeapSize() int64 {
	limit := debug.SetMemoryLimit(-1) // -1 reads the current limit without changing it
	if limit <= 0 || limit == maxInt64 {
		return heapLimitFromEnv("AMANMCP_MAX_HEAP_BYTES")
	}
	return limit
}

const maxInt64 = int64(^uint64(0) >> 1)

func heapLimitFromEnv(name string) int64 {
	v := os.Getenv(name)
	if v == "" {
		return 0
	}
	var n int64
	for _, r := range v {
		if r < '0' || r > '9' {
			return 0
		}
		n = n*10 + int64(r-'0')
	}
	return n
}

// VMName reports a Go-runtime-flavored equivalent of the JVM's
// "client VM" vs "server VM" distinction. Go has no such distinction,
// so this always reports a value that never contains "Client VM".
func (GoRuntimeInfo) VMName() string {
	return "go (" + runtime.Version() + ")"
}

// UseSerialGC always reports "false": the Go runtime's concurrent GC
// has no serial/parallel mode switch analogous to the JVM's
// -XX:+UseSerialGC.
func (GoRuntimeInfo) UseSerialGC() string {
	return "false"
}

// JVMVendor always reports "Go", which never starts with "Oracle",
// so NewG1GCVersionCheck can never violate against this adapter.
func (GoRuntimeInfo) JVMVendor() string {
	return "Go"
}

// IsG1GCEnabled always reports false: the Go runtime has no G1GC.
func (GoRuntimeInfo) IsG1GCEnabled() bool {
	return false
}

// JVMVersion reports runtime.Version() for diagnostics only; the
// G1GC check's version regex never matches a Go version string.
func (GoRuntimeInfo) JVMVersion() string {
	return runtime.Version()
}

// IsJava8 always reports false: amanmcp never runs on a JVM.
func (GoRuntimeInfo) IsJava8() bool {
	return false
}

// OnError reports the AMANMCP_ON_FATAL_ERROR environment variable,
// amanmcp's equivalent of the JVM's -XX:OnError flag: a shell command
// to run (which may fork) when the process hits an unrecoverable
// runtime error.
func (GoRuntimeInfo) OnError() string {
	return os.Getenv("AMANMCP_ON_FATAL_ERROR")
}

// OnOutOfMemoryError reports AMANMCP_ON_OOM, amanmcp's equivalent of
// -XX:OnOutOfMemoryError.
func (GoRuntimeInfo) OnOutOfMemoryError() string {
	return os.Getenv("AMANMCP_ON_OOM")
}

// Probes adapts this GoRuntimeInfo into the RuntimeProbes bundle the
// catalogue constructors consume.
func (g GoRuntimeInfo) Probes() RuntimeProbes {
	return RuntimeProbes{
		InitialHeapSize:    g.InitialHeapSize,
		MaxHeapSize:        g.MaxHeapSize,
		VMName:             g.VMName,
		UseSerialGC:        g.UseSerialGC,
		JVMVendor:          g.JVMVendor,
		IsG1GCEnabled:      g.IsG1GCEnabled,
		JVMVersion:         g.JVMVersion,
		IsJava8:            g.IsJava8,
		OnError:            g.OnError,
		OnOutOfMemoryError: g.OnOutOfMemoryError,
	}
}
