// ProPresenter MCP Server - A Model Context Protocol server for ProPresenter
// Exposes ProPresenter's local HTTP API as tools for slide, playlist, and
// output control
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/trop3n/propresenter-mcp-server/internal/propresenter"
	"github.com/trop3n/propresenter-mcp-server/tools"
	"github.com/trop3n/propresenter-mcp-server/tracing"
)

const (
	ServerName    = "propresenter-mcp-server"
	ServerVersion = "1.0.0"
)

func main() {
	// Optional .env file; real environment variables win
	_ = godotenv.Load()

	// Configure logging to stderr (stdout is used for MCP protocol)
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel(),
	}))

	// Load configuration from environment
	config, err := propresenter.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	// Set up tracing (no-op unless OTEL_ENABLED or an OTLP endpoint is set)
	shutdownTracing, err := tracing.Setup(ctx, tracing.DefaultConfig())
	if err != nil {
		log.Fatalf("Failed to set up tracing: %v", err)
	}
	defer func() { _ = shutdownTracing(ctx) }()

	// Create ProPresenter client
	client := propresenter.NewClient(config, logger)

	// Create MCP server
	server := mcp.NewServer(&mcp.Implementation{
		Name:    ServerName,
		Version: ServerVersion,
	}, &mcp.ServerOptions{
		Logger:       logger,
		Instructions: buildInstructions(config),
	})

	// Register all tools
	registry := tools.NewHandlerRegistry(client, logger)
	registry.RegisterAll(server)

	// Optional Prometheus endpoint
	if config.MetricsAddr != "" {
		go serveMetrics(config.MetricsAddr, logger)
	}

	// Run server on stdio transport
	logger.Info("Starting ProPresenter MCP Server",
		"name", ServerName,
		"version", ServerVersion,
		"propresenter", config.Target(),
	)

	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// buildInstructions generates the server instructions from the tool catalog
// so the list never drifts from what is actually registered.
func buildInstructions(config *propresenter.Config) string {
	var sb strings.Builder
	sb.WriteString("ProPresenter MCP Server provides tools for controlling a ProPresenter instance at ")
	sb.WriteString(config.Target())
	sb.WriteString(".\n\nAvailable tools:\n")

	for _, spec := range tools.AllTools {
		fmt.Fprintf(&sb, "- %s: %s\n", spec.Name, spec.Title)
	}

	sb.WriteString(`
Configure via environment variables:
- PROPRESENTER_HOST: Machine running ProPresenter (default: localhost)
- PROPRESENTER_PORT: Port from ProPresenter's Network preferences (default: 50001)

ProPresenter must be running with 'Enable Network' turned on in Preferences > Network.`)

	return sb.String()
}

// serveMetrics exposes Prometheus metrics on a separate listener.
func serveMetrics(addr string, logger *slog.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	logger.Info("Serving Prometheus metrics", "addr", addr)
	if err := http.ListenAndServe(addr, mux); err != nil {
		logger.Error("Metrics listener failed", "error", err)
	}
}

// logLevel reads the log level from the environment, defaulting to info.
func logLevel() slog.Level {
	switch strings.ToLower(os.Getenv("PROPRESENTER_LOG_LEVEL")) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
