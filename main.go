// WordPress MCP Server - A Model Context Protocol server for WordPress sites
// Provides tools for reading site info, posts, pages, and categories via the
// public REST API
package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/gopalcnepal/mcp-wordpress/internal/wordpress"
	"github.com/gopalcnepal/mcp-wordpress/tools"
	"github.com/gopalcnepal/mcp-wordpress/tracing"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	ServerName    = "wordpress-mcp-server"
	ServerVersion = "1.0.0"
)

const serverInstructions = `WordPress MCP Server provides read-only tools for a WordPress site's public REST API.

Available tools:
- fetch_wordpress_info: Get site name, description, and URL
- fetch_posts: Fetch recent posts (page, per_page)
- fetch_posts_by_category: Fetch posts filtered by category id
- fetch_categories: List post categories
- fetch_post_by_id: Fetch a single post by id
- fetch_pages: Fetch static pages (page, per_page)
- fetch_page_by_id: Fetch a single page by id

Configure via environment variables:
- WORDPRESS_URL: Site root URL (e.g. https://example.com), required
- WORDPRESS_TIMEOUT: Request timeout (default 30s)
- WORDPRESS_USER_AGENT: Override the User-Agent header
- METRICS_ADDR: If set, serve Prometheus metrics on this address (e.g. :9090)`

func main() {
	// Configure logging to stderr (stdout is used for MCP protocol)
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	// Load configuration from environment
	config, err := wordpress.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	// Initialize tracing (no-op unless OTEL_ENABLED or an OTLP endpoint is set)
	shutdownTracing, err := tracing.Setup(ctx, tracing.DefaultConfig())
	if err != nil {
		log.Fatalf("Failed to initialize tracing: %v", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(shutdownCtx); err != nil {
			logger.Warn("Tracing shutdown failed", "error", err)
		}
	}()

	// Create WordPress client
	client := wordpress.NewClient(config, wordpress.WithLogger(logger))

	// Create MCP server
	server := mcp.NewServer(&mcp.Implementation{
		Name:    ServerName,
		Version: ServerVersion,
	}, &mcp.ServerOptions{
		Logger:       logger,
		Instructions: serverInstructions,
	})

	// Register all tools
	registry := tools.NewHandlerRegistry(client, logger)
	registry.RegisterAll(server)

	// Serve Prometheus metrics if configured
	if addr := os.Getenv("METRICS_ADDR"); addr != "" {
		go serveMetrics(addr, logger)
	}

	// Run server on stdio transport
	logger.Info("Starting WordPress MCP Server",
		"name", ServerName,
		"version", ServerVersion,
		"wordpress_url", config.BaseURL,
	)

	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// metricsMux builds the handler for the optional metrics listener:
// Prometheus metrics on /metrics plus a basic health check
func metricsMux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	return mux
}

func serveMetrics(addr string, logger *slog.Logger) {
	logger.Info("Serving metrics", "addr", addr)
	if err := http.ListenAndServe(addr, metricsMux()); err != nil {
		logger.Error("Metrics server failed", "error", err)
	}
}
