package bootstrap

import "fmt"

// StandardFileDescriptorLimit is the default minimum for the file
// descriptor floor check on non-macOS hosts.
const StandardFileDescriptorLimit = 65536

// OSXFileDescriptorLimit is the minimum for the file descriptor floor
// check when the host is macOS, where the default per-process limit
// is traditionally much lower.
const OSXFileDescriptorLimit = 10240

// FileDescriptorLimitFor selects the floor appropriate for host,
// following the host descriptor's OS field rather than a
// compile-time build constraint, so it is testable cross-platform.
func FileDescriptorLimitFor(host HostDescriptor) int {
	if host.OS == "darwin" {
		return OSXFileDescriptorLimit
	}
	return StandardFileDescriptorLimit
}

// NewFileDescriptorCheck validates a max-open-file-descriptor floor. limit must be
// positive; non-positive values are a configuration error raised
// synchronously, never aggregated with the checks it runs alongside.
func NewFileDescriptorCheck(maxFDCount IntProbe, limit int) (Check, error) {
	if limit <= 0 {
		return Check{}, fmt.Errorf("limit must be positive but was [%d]", limit)
	}
	violated := func() bool {
		v := maxFDCount()
		return v >= 0 && v < int64(limit)
	}
	diagnostic := func() string {
		return fmt.Sprintf(
			"max file descriptors [%d] for the amanmcp process is too low, increase to at least [%d]",
			maxFDCount(), limit)
	}
	return newCheck("max_file_descriptors", violated, diagnostic, false), nil
}

// NewMemoryLockCheck checks that memory locking succeeded when requested. if memory locking was
// requested, the process must actually have its memory locked.
func NewMemoryLockCheck(mlockallRequested bool, isMemoryLocked BoolProbe) Check {
	violated := func() bool {
		return mlockallRequested && !isMemoryLocked()
	}
	diagnostic := func() string {
		return "memory locking requested for the amanmcp process but memory is not locked"
	}
	return newCheck("memory_lock", violated, diagnostic, false)
}

// MinThreads is the stock floor enforced by the thread-limit check
// when the operator has not overridden it.
const MinThreads = 2048

// NewMaxThreadsCheck checks the max-user-processes floor. limit must be
// positive; non-positive values are a configuration error raised
// synchronously, never aggregated with the checks it runs alongside.
func NewMaxThreadsCheck(maxThreads IntProbe, limit int) (Check, error) {
	if limit <= 0 {
		return Check{}, fmt.Errorf("limit must be positive but was [%d]", limit)
	}
	violated := func() bool {
		v := maxThreads()
		return v >= 0 && v < int64(limit)
	}
	diagnostic := func() string {
		return fmt.Sprintf(
			"max number of threads [%d] for user is too low, increase to at least [%d]",
			maxThreads(), limit)
	}
	return newCheck("max_number_of_threads", violated, diagnostic, false), nil
}

// NewMaxAddressSpaceCheck checks the address-space ceiling: the process's
// virtual memory rlimit must be unlimited. host.RlimInfinity supplies
// the platform-native sentinel for "unlimited" (9223372036854775807
// on macOS, -1 elsewhere), and LongMin distinguishes "the host could
// not report this value at all" from either.
func NewMaxAddressSpaceCheck(maxAddressSpace IntProbe, host HostDescriptor) Check {
	violated := func() bool {
		v := maxAddressSpace()
		return v != LongMin && v != host.RlimInfinity
	}
	diagnostic := func() string {
		return fmt.Sprintf(
			"max size virtual memory [%d] for the amanmcp process is too low, increase to [unlimited]",
			maxAddressSpace())
	}
	return newCheck("max_size_virtual_memory", violated, diagnostic, false)
}

// MinMapCount is the stock floor enforced by the kernel map-count
// check (vm.max_map_count on Linux) when the operator has not
// overridden it.
const MinMapCount = 262144

// NewMaxMapCountCheck checks vm.max_map_count against the floor. limit
// must be positive; non-positive values are a configuration error
// raised synchronously, never aggregated with the checks it runs
// alongside.
func NewMaxMapCountCheck(maxMapCount IntProbe, limit int) (Check, error) {
	if limit <= 0 {
		return Check{}, fmt.Errorf("limit must be positive but was [%d]", limit)
	}
	violated := func() bool {
		v := maxMapCount()
		return v >= 0 && v < int64(limit)
	}
	diagnostic := func() string {
		return fmt.Sprintf(
			"max virtual memory areas vm.max_map_count [%d] is too low, increase to at least [%d]",
			maxMapCount(), limit)
	}
	return newCheck("max_map_count", violated, diagnostic, false), nil
}
