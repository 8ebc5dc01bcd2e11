package cmd

import (
	"log/slog"
	"net/netip"

	"github.com/amanmcp/amanmcp/internal/bootstrap"
	"github.com/amanmcp/amanmcp/internal/config"
)

// bootstrapConfigFrom adapts internal/config.Config's Bootstrap
// section into internal/bootstrap.Config, falling back to the
// catalogue's stock defaults for anything left at zero value.
func bootstrapConfigFrom(cfg *config.Config) bootstrap.Config {
	bc := bootstrap.DefaultConfig()
	if cfg == nil {
		return bc
	}

	b := cfg.Bootstrap
	bc.MlockallRequested = b.MlockallRequested
	bc.SyscallFilterRequested = b.SyscallFilterRequested
	if b.MinFileDescriptors > 0 {
		bc.MinFileDescriptors = b.MinFileDescriptors
	}
	if b.MinThreads > 0 {
		bc.MinThreads = b.MinThreads
	}
	if b.MinMapCount > 0 {
		bc.MinMapCount = b.MinMapCount
	}
	return bc
}

// boundTransportFor builds the BoundTransport snapshot the engine
// resolves its EnforcementMode from. amanmcp's stdio transport binds
// no network address at all, so it is always Development unless the
// operator set an explicit publish address. The sse transport binds
// host:port; "" and "localhost" are treated as loopback, matching
// net.Listen's own default bind behavior.
func boundTransportFor(transport, host string, port int) bootstrap.BoundTransport {
	if transport != "sse" {
		return bootstrap.BoundTransport{}
	}

	addr := resolveBindAddr(host)
	var bound []netip.Addr
	if addr.IsValid() {
		bound = []netip.Addr{addr}
	}
	return bootstrap.BoundTransport{Bound: bound}
}

// resolveBindAddr maps the operator-supplied bind host into a
// netip.Addr for locality classification. Unparseable or empty hosts
// default to the loopback address, matching what an unqualified
// net.Listen("tcp", ":port") actually binds to on most hosts.
func resolveBindAddr(host string) netip.Addr {
	switch host {
	case "", "localhost":
		return netip.MustParseAddr("127.0.0.1")
	}
	if addr, err := netip.ParseAddr(host); err == nil {
		return addr
	}
	// Hostnames that aren't literal addresses (e.g. a LAN DNS name)
	// are conservatively treated as non-local: the whole point of the
	// production gate is to fail closed when we can't prove locality.
	return netip.MustParseAddr("0.0.0.0")
}

// runBootstrapChecks assembles the catalogue from the live host and
// runs it under the engine before the server opens its transport.
// Returns the aggregated *bootstrap.ValidationError on failure.
func runBootstrapChecks(cfg *config.Config, transport, host string, port int) error {
	info := bootstrap.CurrentHostProcessInfo()
	checks, err := bootstrap.BuildCatalogue(info, bootstrapConfigFrom(cfg))
	if err != nil {
		return err
	}

	engine := bootstrap.NewEngine(bootstrap.NewSlogLogger(slog.Default()))
	t := boundTransportFor(transport, host, port)
	return engine.RunForTransport(t, checks, "amanmcp serve")
}
