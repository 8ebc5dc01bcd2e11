package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/amanmcp/amanmcp/internal/config"
	"github.com/amanmcp/amanmcp/internal/embed"
	"github.com/amanmcp/amanmcp/internal/mcp"
	"github.com/amanmcp/amanmcp/internal/search"
	"github.com/amanmcp/amanmcp/internal/store"
	"github.com/amanmcp/amanmcp/internal/watcher"
)

// newServeCmd builds the "serve" command: starts the MCP server for
// the current project, running bootstrap checks immediately before
// the transport opens.
func newServeCmd() *cobra.Command {
	var (
		transport string
		port      int
		host      string
		session   string
		debug     bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the MCP server",
		Long: `Start the MCP server for the current project.

Before opening the transport, amanmcp runs a suite of bootstrap checks
against the host environment. Checks are only strictly enforced once
the server binds or publishes to a non-loopback address (--transport
sse on a non-local --host); the default stdio transport never triggers
them, since it never opens a network listener.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if debug {
				slog.SetLogLoggerLevel(slog.LevelDebug)
			}
			root, err := config.FindProjectRoot(".")
			if err != nil {
				root, _ = os.Getwd()
			}
			return serveProject(cmd.Context(), session, root, transport, host, port)
		},
	}

	cmd.Flags().StringVar(&transport, "transport", "stdio", "Transport type (stdio|sse)")
	cmd.Flags().IntVar(&port, "port", 8765, "Port for SSE transport")
	cmd.Flags().StringVar(&host, "host", "", "Bind host for SSE transport (default loopback)")
	cmd.Flags().StringVar(&session, "session", "", "Resume from a saved session by name")
	cmd.Flags().BoolVar(&debug, "debug", false, "Enable verbose logging for this invocation")

	return cmd
}

// verifyStdinForMCP reports an error if stdin is an interactive
// terminal rather than a pipe. The MCP stdio transport requires a
// JSON-RPC stream on stdin; a human typing into a terminal is almost
// certainly a usage mistake worth surfacing early.
func verifyStdinForMCP() error {
	if isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd()) {
		return fmt.Errorf("stdin is a terminal, not a pipe: the MCP stdio transport expects a JSON-RPC " +
			"stream from a client (e.g. Claude Code), not direct terminal input")
	}
	return nil
}

// runServe starts the MCP server for the project rooted at the
// current working directory.
func runServe(ctx context.Context, transport string, port int) error {
	root, err := config.FindProjectRoot(".")
	if err != nil {
		root, _ = os.Getwd()
	}
	return serveProject(ctx, "", root, transport, "", port)
}

// runServeWithSession starts the MCP server for a previously saved
// session's project path, tagging log output with the session name.
func runServeWithSession(ctx context.Context, sessionName, projectPath, transport string, port int) error {
	return serveProject(ctx, sessionName, projectPath, transport, "", port)
}

// serveProject wires up the search engine, runs bootstrap checks,
// and blocks serving the MCP transport until ctx is cancelled. host
// is the operator-supplied --host bind address, consulted only for
// the sse transport's bootstrap-check gate.
//
// BUG-034/BUG-035: stdout is reserved exclusively for the stdio
// transport's JSON-RPC stream. No status output may be written to it
// before the transport is serving; everything here logs through slog
// instead, matching runSmartDefault's discipline in root.go.
func serveProject(ctx context.Context, sessionName, root, transport, host string, port int) error {
	if transport == "stdio" {
		if err := verifyStdinForMCP(); err != nil {
			return err
		}
	}

	cfg, err := config.Load(root)
	if err != nil {
		cfg = config.NewConfig()
	}

	// Run bootstrap checks before opening any transport. For stdio
	// this always resolves to Development (no bound address); for
	// sse it resolves from the bind host, so a non-loopback --host
	// enforces the full catalogue.
	if err := runBootstrapChecks(cfg, transport, host, port); err != nil {
		slog.Error("bootstrap checks failed", slog.String("error", err.Error()))
		return err
	}

	dataDir := filepath.Join(root, ".amanmcp")
	metadataPath := filepath.Join(dataDir, "metadata.db")
	metadata, err := store.NewSQLiteStore(metadataPath)
	if err != nil {
		return fmt.Errorf("failed to open metadata: %w", err)
	}
	defer func() { _ = metadata.Close() }()

	bm25BasePath := filepath.Join(dataDir, "bm25")
	bm25, err := store.NewBM25IndexWithBackend(bm25BasePath, store.DefaultBM25Config(), cfg.Search.BM25Backend)
	if err != nil {
		return fmt.Errorf("failed to open BM25 index: %w", err)
	}
	defer func() { _ = bm25.Close() }()

	embedderName := os.Getenv("AMANMCP_EMBEDDER")
	var embedder embed.Embedder
	if embedderName == "static" {
		embedder = embed.NewStaticEmbedder768()
	} else {
		provider := embed.ParseProvider(cfg.Embeddings.Provider)
		embedder, err = embed.NewEmbedder(ctx, provider, cfg.Embeddings.Model)
		if err != nil {
			slog.Warn("embedder init failed, falling back to static", slog.String("error", err.Error()))
			embedder = embed.NewStaticEmbedder768()
		}
	}
	defer func() { _ = embedder.Close() }()

	vectorPath := filepath.Join(dataDir, "vectors.hnsw")
	vectorConfig := store.DefaultVectorStoreConfig(embedder.Dimensions())
	vector, err := store.NewHNSWStore(vectorConfig)
	if err != nil {
		return fmt.Errorf("failed to create vector store: %w", err)
	}
	defer func() { _ = vector.Close() }()
	if _, statErr := os.Stat(vectorPath); statErr == nil {
		if loadErr := vector.Load(vectorPath); loadErr != nil {
			slog.Debug("vector_load_failed", slog.String("error", loadErr.Error()))
		}
	}

	engineConfig := search.DefaultConfig()
	if cfg.Search.MaxResults > 0 {
		engineConfig.DefaultLimit = cfg.Search.MaxResults
	}
	engine := search.New(bm25, vector, embedder, metadata, engineConfig)

	mcpServer, err := mcp.NewServer(engine, metadata, embedder, cfg, root)
	if err != nil {
		return fmt.Errorf("failed to create MCP server: %w", err)
	}

	// Start the file watcher in the background; it must never block
	// transport startup (BUG-035). A slow filesystem should not delay
	// the MCP handshake.
	watcherCtx, cancelWatcher := context.WithCancel(ctx)
	defer cancelWatcher()
	go startBackgroundWatcher(watcherCtx, root, watcherStartupTimeout())

	if sessionName != "" {
		slog.Info("mcp_server_starting", slog.String("session", sessionName), slog.String("root", root))
	} else {
		slog.Info("mcp_server_starting", slog.String("root", root))
	}

	addr := fmt.Sprintf(":%d", port)
	return mcpServer.Serve(ctx, transport, addr)
}

// watcherStartupTimeout reads AMANMCP_WATCHER_STARTUP_TIMEOUT, falling
// back to a conservative default. Exposed as an env var so tests can
// simulate a slow filesystem without actually waiting for one.
func watcherStartupTimeout() time.Duration {
	if v := os.Getenv("AMANMCP_WATCHER_STARTUP_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return 2 * time.Second
}

// startBackgroundWatcher initializes the file watcher off the
// startup path. Errors are logged, never returned: a failed watcher
// degrades to "no live reindexing", not a server crash.
func startBackgroundWatcher(ctx context.Context, root string, startupTimeout time.Duration) {
	startCtx, cancel := context.WithTimeout(ctx, startupTimeout)
	defer cancel()

	w, err := watcher.NewHybridWatcher(watcher.Options{})
	if err != nil {
		slog.Warn("watcher_init_failed", slog.String("error", err.Error()))
		return
	}
	if err := w.Start(startCtx, root); err != nil {
		slog.Warn("watcher_start_failed", slog.String("error", err.Error()))
		return
	}

	<-ctx.Done()
	_ = w.Stop()
}
