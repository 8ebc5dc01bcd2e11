package bootstrap

import "strings"

// NewSyscallFilterCheck checks syscall-filter install status: if syscall filters
// were requested, they must have actually installed.
func NewSyscallFilterCheck(syscallFilterRequested bool, isSyscallFilterInstalled BoolProbe) Check {
	violated := func() bool {
		return syscallFilterRequested && !isSyscallFilterInstalled()
	}
	diagnostic := func() string {
		return "system call filters failed to install; check the logs and fix your configuration or disable system call filters at your own risk"
	}
	return newCheck("syscall_filter_installed", violated, diagnostic, false)
}

// forkDirectiveIsSet normalizes the "not configured" representation
// for OnError/OnOutOfMemoryError directives: both an absent value and
// an empty/whitespace-only string mean "not set" (see DESIGN.md).
func forkDirectiveIsSet(directive string) bool {
	return strings.TrimSpace(directive) != ""
}

// newMightForkCheck builds one variant of the fork-risk
// family: violates iff the sandbox has syscall filters installed
// (forbidding fork) yet the runtime is configured to fork on the
// named fatal-error directive. Both variants are always-enforced:
// the sandbox forbidding fork while the runtime is set up to fork
// anyway is unsafe even in development.
func newMightForkCheck(id, directiveName string, isSyscallFilterInstalled BoolProbe, directive StringProbe) Check {
	violated := func() bool {
		return isSyscallFilterInstalled() && forkDirectiveIsSet(directive())
	}
	diagnostic := func() string {
		return directiveName + " [" + directive() + "] requires forking but is prevented by system call filters " +
			"([bootstrap.seccomp=true]); upgrade to at least Java 8u92 and use ExitOnOutOfMemoryError"
	}
	return newCheck(id, violated, diagnostic, true)
}

// NewOnErrorMightForkCheck builds the OnError variant of the fork-risk check.
func NewOnErrorMightForkCheck(isSyscallFilterInstalled BoolProbe, onError StringProbe) Check {
	return newMightForkCheck("might_fork_on_error", "OnError", isSyscallFilterInstalled, onError)
}

// NewOnOutOfMemoryErrorMightForkCheck builds the OnOutOfMemoryError
// variant of the fork-risk check.
func NewOnOutOfMemoryErrorMightForkCheck(isSyscallFilterInstalled BoolProbe, onOOME StringProbe) Check {
	return newMightForkCheck("might_fork_on_oome", "OnOutOfMemoryError", isSyscallFilterInstalled, onOOME)
}
