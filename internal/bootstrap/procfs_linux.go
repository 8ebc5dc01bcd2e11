//go:build linux

package bootstrap

import (
	"os"
	"strconv"
	"strings"
	"syscall"

	"golang.org/x/sys/unix"
)

// unlimitedRlimit is the raw kernel encoding of RLIM_INFINITY on
// Linux (syscall.Rlimit.Cur is a uint64 on this platform).
const unlimitedRlimit uint64 = ^uint64(0)

// rlimCurAsInt64 clamps an rlimit value into the IntProbe's int64
// range, treating the kernel's "unlimited" encoding as -1 rather than
// overflowing.
func rlimCurAsInt64(cur uint64) int64 {
	if cur == unlimitedRlimit {
		return -1
	}
	if cur > uint64(maxInt64) {
		return maxInt64
	}
	return int64(cur)
}

// HostDescriptorForLinux reports the platform facts Linux checks
// consult: RLIMIT_AS's "unlimited" sentinel is -1 on Linux, unlike
// macOS's 9223372036854775807.
func HostDescriptorForLinux() HostDescriptor {
	return HostDescriptor{OS: "linux", RlimInfinity: -1}
}

// LinuxProcessInfo satisfies ProcessProbes by reading rlimits via
// syscall.Getrlimit and the vm.max_map_count tunable from
// /proc/sys/vm/max_map_count.
type LinuxProcessInfo struct{}

// MaxFDCount reads RLIMIT_NOFILE. Returns UnknownInt if the kernel
// refuses the query.
func (LinuxProcessInfo) MaxFDCount() int64 {
	var lim syscall.Rlimit
	if err := syscall.Getrlimit(syscall.RLIMIT_NOFILE, &lim); err != nil {
		return UnknownInt
	}
	return rlimCurAsInt64(lim.Cur)
}

// IsMemoryLocked reports whether RLIMIT_MEMLOCK is unlimited, the
// closest observable proxy for "mlockall succeeded" without CAP_IPC_LOCK
// introspection.
func (LinuxProcessInfo) IsMemoryLocked() bool {
	var lim syscall.Rlimit
	if err := syscall.Getrlimit(unix.RLIMIT_MEMLOCK, &lim); err != nil {
		return false
	}
	return lim.Cur == unlimitedRlimit
}

// MaxThreads reads RLIMIT_NPROC as the user's thread-count ceiling.
func (LinuxProcessInfo) MaxThreads() int64 {
	var lim syscall.Rlimit
	if err := syscall.Getrlimit(unix.RLIMIT_NPROC, &lim); err != nil {
		return UnknownInt
	}
	return rlimCurAsInt64(lim.Cur)
}

// MaxAddressSpace reads RLIMIT_AS.
func (LinuxProcessInfo) MaxAddressSpace() int64 {
	var lim syscall.Rlimit
	if err := syscall.Getrlimit(syscall.RLIMIT_AS, &lim); err != nil {
		return LongMin
	}
	if lim.Cur == unlimitedRlimit {
		return -1
	}
	return rlimCurAsInt64(lim.Cur)
}

// MaxMapCount reads /proc/sys/vm/max_map_count. Returns UnknownInt if
// the tunable cannot be read (non-Linux kernels inside a container,
// restricted /proc mounts, etc).
func (LinuxProcessInfo) MaxMapCount() int64 {
	data, err := os.ReadFile("/proc/sys/vm/max_map_count")
	if err != nil {
		return UnknownInt
	}
	v, err := strconv.ParseInt(strings.TrimSpace(string(data)), 10, 64)
	if err != nil {
		return UnknownInt
	}
	return v
}

// IsSyscallFilterInstalled reports whether amanmcp's seccomp-bpf
// filter installed successfully. amanmcp does not implement its own
// syscall filter today, so this always reports false, matching the
// always-non-violating default for a feature that is not enabled.
func (LinuxProcessInfo) IsSyscallFilterInstalled() bool {
	return false
}

// currentHostAndProcess builds the Linux HostDescriptor and
// ProcessProbes pair for CurrentHostProcessInfo.
func currentHostAndProcess() (HostDescriptor, ProcessProbes) {
	return HostDescriptorForLinux(), LinuxProcessInfo{}.Probes()
}

// Probes adapts this LinuxProcessInfo into the ProcessProbes bundle.
func (p LinuxProcessInfo) Probes() ProcessProbes {
	return ProcessProbes{
		MaxFDCount:               p.MaxFDCount,
		IsMemoryLocked:           p.IsMemoryLocked,
		MaxThreads:               p.MaxThreads,
		MaxAddressSpace:          p.MaxAddressSpace,
		MaxMapCount:              p.MaxMapCount,
		IsSyscallFilterInstalled: p.IsSyscallFilterInstalled,
	}
}
