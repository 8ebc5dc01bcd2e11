//go:build !linux

package bootstrap

import (
	"runtime"
	"syscall"
)

// rlimInfinityForHost is the host-native "unlimited" rlimit sentinel:
// 9223372036854775807 on macOS, -1 on every other non-Linux target
// this builds for.
func rlimInfinityForHost() int64 {
	if runtime.GOOS == "darwin" {
		return 9223372036854775807
	}
	return -1
}

// HostDescriptorForHost reports the platform facts non-Linux checks
// consult.
func HostDescriptorForHost() HostDescriptor {
	return HostDescriptor{OS: runtime.GOOS, RlimInfinity: rlimInfinityForHost()}
}

// GenericProcessInfo satisfies ProcessProbes on non-Linux platforms
// (primarily macOS) via syscall.Getrlimit, matching
// internal/preflight/filelimit.go's approach. Tunables with no
// equivalent outside Linux (vm.max_map_count) and sandboxing
// primitives amanmcp does not implement on these platforms
// (syscall-filter install) report their documented "unknown"/"not
// installed" defaults.
type GenericProcessInfo struct{}

func (GenericProcessInfo) MaxFDCount() int64 {
	var lim syscall.Rlimit
	if err := syscall.Getrlimit(syscall.RLIMIT_NOFILE, &lim); err != nil {
		return UnknownInt
	}
	return clampRlimit(uint64(lim.Cur))
}

func (GenericProcessInfo) IsMemoryLocked() bool {
	return false
}

func (GenericProcessInfo) MaxThreads() int64 {
	return UnknownInt
}

func (GenericProcessInfo) MaxAddressSpace() int64 {
	var lim syscall.Rlimit
	if err := syscall.Getrlimit(syscall.RLIMIT_AS, &lim); err != nil {
		return LongMin
	}
	return clampRlimit(uint64(lim.Cur))
}

func (GenericProcessInfo) MaxMapCount() int64 {
	return UnknownInt
}

func (GenericProcessInfo) IsSyscallFilterInstalled() bool {
	return false
}

func clampRlimit(cur uint64) int64 {
	infinity := uint64(rlimInfinityForHost())
	if cur == infinity {
		return int64(infinity)
	}
	if cur > uint64(maxInt64) {
		return maxInt64
	}
	return int64(cur)
}

// currentHostAndProcess builds the non-Linux HostDescriptor and
// ProcessProbes pair for CurrentHostProcessInfo.
func currentHostAndProcess() (HostDescriptor, ProcessProbes) {
	return HostDescriptorForHost(), GenericProcessInfo{}.Probes()
}

// Probes adapts this GenericProcessInfo into the ProcessProbes bundle.
func (p GenericProcessInfo) Probes() ProcessProbes {
	return ProcessProbes{
		MaxFDCount:               p.MaxFDCount,
		IsMemoryLocked:           p.IsMemoryLocked,
		MaxThreads:               p.MaxThreads,
		MaxAddressSpace:          p.MaxAddressSpace,
		MaxMapCount:              p.MaxMapCount,
		IsSyscallFilterInstalled: p.IsSyscallFilterInstalled,
	}
}
