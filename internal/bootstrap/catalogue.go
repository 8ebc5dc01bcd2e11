package bootstrap

// Config carries the operator-supplied overrides the catalogue needs
// beyond what a probe can read: whether memory locking and syscall
// filtering were requested at all, and the numeric floors that vary
// by deployment rather than by host. Mirrors
// internal/config.Config.Bootstrap.
type Config struct {
	MlockallRequested      bool
	SyscallFilterRequested bool
	MinFileDescriptors     int
	MinThreads             int
	MinMapCount            int
}

// DefaultConfig returns the catalogue's stock floors, used when
// internal/config.Config.Bootstrap is left at its zero value.
// MinFileDescriptors is left at 0 so BuildCatalogue falls back to
// FileDescriptorLimitFor's host-aware floor instead of always using
// the non-macOS default.
func DefaultConfig() Config {
	return Config{
		MlockallRequested:      false,
		SyscallFilterRequested: false,
		MinFileDescriptors:     0,
		MinThreads:             MinThreads,
		MinMapCount:            MinMapCount,
	}
}

// HostProcessInfo is the union of probes the catalogue needs from the
// live process: the platform descriptor, the process-resource probes,
// and the managed-runtime probes. cmd/amanmcp/cmd assembles one
// concrete value (GoRuntimeInfo + LinuxProcessInfo/GenericProcessInfo)
// per process; tests assemble synthetic ones.
type HostProcessInfo struct {
	Host    HostDescriptor
	Process ProcessProbes
	Runtime RuntimeProbes
}

// CurrentHostProcessInfo builds a HostProcessInfo from the live
// process this binary is running in, selecting the Linux or generic
// rlimit/procfs adapter by build target.
func CurrentHostProcessInfo() HostProcessInfo {
	rt := GoRuntimeInfo{}
	host, proc := currentHostAndProcess()
	return HostProcessInfo{
		Host:    host,
		Process: proc,
		Runtime: rt.Probes(),
	}
}

// BuildCatalogue assembles the full check list in
// the order diagnostics should be reported, given a host's probes and
// the operator's Config overrides. Each numeric floor
// (MinFileDescriptors, MinThreads, MinMapCount) falls back to its
// package default when left at or below zero; building any of the
// three limit checks from a negative override is a configuration
// error, returned instead of a partial catalogue.
func BuildCatalogue(info HostProcessInfo, cfg Config) ([]Check, error) {
	fdLimit := cfg.MinFileDescriptors
	if fdLimit <= 0 {
		fdLimit = FileDescriptorLimitFor(info.Host)
	}
	fdCheck, err := NewFileDescriptorCheck(info.Process.MaxFDCount, fdLimit)
	if err != nil {
		return nil, err
	}

	threadsLimit := cfg.MinThreads
	if threadsLimit <= 0 {
		threadsLimit = MinThreads
	}
	threadsCheck, err := NewMaxThreadsCheck(info.Process.MaxThreads, threadsLimit)
	if err != nil {
		return nil, err
	}

	mapCountLimit := cfg.MinMapCount
	if mapCountLimit <= 0 {
		mapCountLimit = MinMapCount
	}
	mapCountCheck, err := NewMaxMapCountCheck(info.Process.MaxMapCount, mapCountLimit)
	if err != nil {
		return nil, err
	}

	checks := []Check{
		NewHeapSizeEqualityCheck(info.Runtime.InitialHeapSize, info.Runtime.MaxHeapSize),
		fdCheck,
		NewMemoryLockCheck(cfg.MlockallRequested, info.Process.IsMemoryLocked),
		threadsCheck,
		NewMaxAddressSpaceCheck(info.Process.MaxAddressSpace, info.Host),
		mapCountCheck,
		NewClientVMCheck(info.Runtime.VMName),
		NewSerialGCCheck(info.Runtime.UseSerialGC),
		NewSyscallFilterCheck(cfg.SyscallFilterRequested, info.Process.IsSyscallFilterInstalled),
		NewOnErrorMightForkCheck(info.Process.IsSyscallFilterInstalled, info.Runtime.OnError),
		NewOnOutOfMemoryErrorMightForkCheck(info.Process.IsSyscallFilterInstalled, info.Runtime.OnOutOfMemoryError),
		NewG1GCVersionCheck(info.Runtime.JVMVendor, info.Runtime.IsG1GCEnabled, info.Runtime.JVMVersion, info.Runtime.IsJava8),
	}
	return checks, nil
}
