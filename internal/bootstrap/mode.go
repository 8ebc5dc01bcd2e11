package bootstrap

import "net/netip"

// EnforcementMode selects which checks are active for a given
// invocation of the engine. It is always derived from a
// BoundTransport snapshot, never stored across calls.
type EnforcementMode int

const (
	// ModeDevelopment is the default mode: only AlwaysEnforced checks
	// run. A server reachable only via loopback/link-local addresses
	// is developer-local and exempt from the stricter checks.
	ModeDevelopment EnforcementMode = iota
	// ModeProduction activates every check in the supplied list. The
	// moment a server becomes reachable beyond the local host, the
	// operator has opted into production-grade expectations.
	ModeProduction
)

// String renders the mode for logging and test failure messages.
func (m EnforcementMode) String() string {
	switch m {
	case ModeProduction:
		return "production"
	default:
		return "development"
	}
}

// BoundTransport is a snapshot of the addresses a server is bound to
// and publishing as its externally-visible endpoint. The engine never
// discovers this itself; it is supplied by the transport layer
// (cmd/amanmcp/cmd) once per startup.
type BoundTransport struct {
	// Bound is the set of addresses the server has opened listeners
	// on. May be empty (e.g. stdio transport binds nothing).
	Bound []netip.Addr
	// Publish is the single address the server advertises as its
	// externally reachable endpoint. The zero value means "none".
	Publish netip.Addr
}

// isLocal reports whether addr is a loopback or link-local address.
// Any other address, including the unspecified/invalid zero value
// being absent from consideration entirely, is non-local.
func isLocal(addr netip.Addr) bool {
	if !addr.IsValid() {
		return true
	}
	return addr.IsLoopback() || addr.IsLinkLocalUnicast() || addr.IsLinkLocalMulticast()
}

// ResolveMode resolves the enforcement mode for a transport snapshot:
// Production iff any bound address is non-local, or the publish
// address is non-local; Development otherwise. An empty bound set
// contributes no violations of its own — only a non-local publish
// address can push an empty-bound snapshot into Production.
func ResolveMode(t BoundTransport) EnforcementMode {
	if EnforceLimits(t) {
		return ModeProduction
	}
	return ModeDevelopment
}

// EnforceLimits exposes the mode resolver as a standalone predicate,
// independent of constructing or running an Engine.
func EnforceLimits(t BoundTransport) bool {
	for _, addr := range t.Bound {
		if !isLocal(addr) {
			return true
		}
	}
	if t.Publish.IsValid() && !isLocal(t.Publish) {
		return true
	}
	return false
}
