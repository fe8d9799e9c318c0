package tools

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"
	"time"

	"github.com/gopalcnepal/mcp-wordpress/internal/wordpress"
	"github.com/gopalcnepal/mcp-wordpress/metrics"
	"github.com/gopalcnepal/mcp-wordpress/tracing"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// HandlerRegistry provides type-safe tool registration by mapping
// tool names to their concrete handler implementations.
type HandlerRegistry struct {
	client *wordpress.Client
	logger *slog.Logger
}

// NewHandlerRegistry creates a new handler registry.
func NewHandlerRegistry(client *wordpress.Client, logger *slog.Logger) *HandlerRegistry {
	return &HandlerRegistry{
		client: client,
		logger: logger,
	}
}

// RegisterAll registers all tools with the MCP server.
func (h *HandlerRegistry) RegisterAll(server *mcp.Server) {
	for _, spec := range AllTools {
		h.registerByName(server, spec)
	}
	h.logger.Info("Registered all tools", "count", len(AllTools))
}

// registerByName dispatches to the correct typed registration function.
func (h *HandlerRegistry) registerByName(server *mcp.Server, spec ToolSpec) {
	tool := h.buildTool(spec)

	switch spec.Method {
	case "FetchSiteInfo":
		register(h, server, tool, spec, h.client.FetchSiteInfoMCP)
	case "FetchPosts":
		register(h, server, tool, spec, h.client.FetchPostsMCP)
	case "FetchPostsByCategory":
		register(h, server, tool, spec, h.client.FetchPostsByCategoryMCP)
	case "FetchCategories":
		register(h, server, tool, spec, h.client.FetchCategoriesMCP)
	case "FetchPostByID":
		register(h, server, tool, spec, h.client.FetchPostByIDMCP)
	case "FetchPages":
		register(h, server, tool, spec, h.client.FetchPagesMCP)
	case "FetchPageByID":
		register(h, server, tool, spec, h.client.FetchPageByIDMCP)
	default:
		h.logger.Error("Unknown method, tool not registered", "method", spec.Method, "tool", spec.Name)
	}
}

// buildTool creates an mcp.Tool from a ToolSpec.
func (h *HandlerRegistry) buildTool(spec ToolSpec) *mcp.Tool {
	annotations := &mcp.ToolAnnotations{
		Title:          spec.Title,
		ReadOnlyHint:   spec.ReadOnly,
		IdempotentHint: spec.Idempotent,
	}
	if spec.OpenWorld {
		annotations.OpenWorldHint = ptr(true)
	}

	return &mcp.Tool{
		Name:        spec.Name,
		Description: spec.Description,
		Annotations: annotations,
	}
}

// register is a generic helper that registers a tool with the MCP server.
// It wraps the client method with panic recovery, metrics, tracing, and logging.
func register[Args, Result any](
	h *HandlerRegistry,
	server *mcp.Server,
	tool *mcp.Tool,
	spec ToolSpec,
	method func(context.Context, Args) (Result, error),
) {
	mcp.AddTool(server, tool, func(ctx context.Context, req *mcp.CallToolRequest, args Args) (*mcp.CallToolResult, Result, error) {
		defer h.recoverPanic(spec.Name)

		ctx, span := tracing.StartSpan(ctx, "mcp.tool."+spec.Name)
		defer span.End()

		span.SetAttributes(
			attribute.String("mcp.tool.name", spec.Name),
			attribute.String("mcp.tool.category", spec.Category),
			attribute.Bool("mcp.tool.readonly", spec.ReadOnly),
		)

		metrics.RequestInFlight.WithLabelValues(spec.Name).Inc()
		defer metrics.RequestInFlight.WithLabelValues(spec.Name).Dec()

		start := time.Now()
		result, err := method(ctx, args)
		duration := time.Since(start).Seconds()

		span.SetAttributes(attribute.Float64("mcp.tool.duration_seconds", duration))

		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			metrics.RecordRequest(spec.Name, duration, false)
			metrics.RecordToolError(spec.Name, wordpress.ErrorKind(err))
			var zero Result
			return nil, zero, fmt.Errorf("%s failed: %w", spec.Name, err)
		}

		span.SetStatus(codes.Ok, "")
		metrics.RecordRequest(spec.Name, duration, true)
		h.logExecution(spec, args, result)
		return nil, result, nil
	})
}

// recoverPanic recovers from panics in tool handlers.
func (h *HandlerRegistry) recoverPanic(toolName string) {
	if rec := recover(); rec != nil {
		metrics.PanicsRecovered.WithLabelValues(toolName).Inc()
		h.logger.Error("Panic recovered",
			"tool", toolName,
			"panic", rec,
			"stack", string(debug.Stack()))
	}
}

// logExecution logs tool execution details.
func (h *HandlerRegistry) logExecution(spec ToolSpec, args, result any) {
	attrs := []any{"tool", spec.Name, "category", spec.Category}

	// Add extractable fields from args using type assertions
	switch a := args.(type) {
	case wordpress.ListPostsArgs:
		attrs = append(attrs, "page", a.Page, "per_page", a.PerPage)
	case wordpress.PostsByCategoryArgs:
		attrs = append(attrs, "categories", a.Categories, "page", a.Page)
	case wordpress.GetPostArgs:
		attrs = append(attrs, "post_id", a.PostID)
	case wordpress.ListPagesArgs:
		attrs = append(attrs, "page", a.Page, "per_page", a.PerPage)
	case wordpress.GetPageArgs:
		attrs = append(attrs, "page_id", a.PageID)
	}

	// Add extractable fields from result
	switch r := result.(type) {
	case wordpress.SiteInfo:
		attrs = append(attrs, "site_name", r.Name)
	case wordpress.PostListResult:
		attrs = append(attrs, "results_count", r.TotalResults)
	case wordpress.CategoryListResult:
		attrs = append(attrs, "results_count", r.TotalResults)
	case wordpress.PostSummary:
		attrs = append(attrs, "id", r.ID, "content_chars", len(r.Content))
	}

	h.logger.Info("Tool executed", attrs...)
}
