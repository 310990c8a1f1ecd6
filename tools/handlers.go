package tools

import (
	"context"
	"log/slog"
	"runtime/debug"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/trop3n/propresenter-mcp-server/internal/propresenter"
	"github.com/trop3n/propresenter-mcp-server/metrics"
	"github.com/trop3n/propresenter-mcp-server/tracing"
)

// HandlerRegistry provides type-safe tool registration by mapping
// tool names to their concrete client methods.
type HandlerRegistry struct {
	client *propresenter.Client
	logger *slog.Logger
}

// NewHandlerRegistry creates a new handler registry.
func NewHandlerRegistry(client *propresenter.Client, logger *slog.Logger) *HandlerRegistry {
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
	c := h.client

	switch spec.Method {
	// Presentation tools
	case "GetActivePresentation":
		register(h, server, tool, spec, c.GetActivePresentation)
	case "GetSlideIndex":
		register(h, server, tool, spec, c.GetSlideIndex)
	case "TriggerSlide":
		register(h, server, tool, spec, c.TriggerSlide)
	case "NextSlide":
		register(h, server, tool, spec, c.NextSlide)
	case "PreviousSlide":
		register(h, server, tool, spec, c.PreviousSlide)
	case "FocusActivePresentation":
		register(h, server, tool, spec, c.FocusActivePresentation)

	// Library tools
	case "GetLibraries":
		register(h, server, tool, spec, c.GetLibraries)
	case "GetLibraryItems":
		register(h, server, tool, spec, c.GetLibraryItems)

	// Playlist tools
	case "GetPlaylists":
		register(h, server, tool, spec, c.GetPlaylists)
	case "GetActivePlaylist":
		register(h, server, tool, spec, c.GetActivePlaylist)
	case "GetPlaylistItems":
		register(h, server, tool, spec, c.GetPlaylistItems)
	case "FocusPlaylistItem":
		register(h, server, tool, spec, c.FocusPlaylistItem)
	case "TriggerPlaylistItem":
		register(h, server, tool, spec, c.TriggerPlaylistItem)

	// Look tools
	case "GetLooks":
		register(h, server, tool, spec, c.GetLooks)
	case "GetCurrentLook":
		register(h, server, tool, spec, c.GetCurrentLook)
	case "TriggerLook":
		register(h, server, tool, spec, c.TriggerLook)

	// Macro tools
	case "GetMacros":
		register(h, server, tool, spec, c.GetMacros)
	case "TriggerMacro":
		register(h, server, tool, spec, c.TriggerMacro)
	case "TriggerMacroByName":
		register(h, server, tool, spec, c.TriggerMacroByName)

	// Message tools
	case "GetMessages":
		register(h, server, tool, spec, c.GetMessages)
	case "TriggerMessage":
		register(h, server, tool, spec, c.TriggerMessage)
	case "ClearMessage":
		register(h, server, tool, spec, c.ClearMessage)

	// Prop tools
	case "GetProps":
		register(h, server, tool, spec, c.GetProps)
	case "TriggerProp":
		register(h, server, tool, spec, c.TriggerProp)
	case "ClearProp":
		register(h, server, tool, spec, c.ClearProp)

	// Timer tools
	case "GetTimers":
		register(h, server, tool, spec, c.GetTimers)
	case "StartTimer":
		register(h, server, tool, spec, c.StartTimer)
	case "StopTimer":
		register(h, server, tool, spec, c.StopTimer)
	case "ResetTimer":
		register(h, server, tool, spec, c.ResetTimer)

	// Audio tools
	case "GetAudioPlaylists":
		register(h, server, tool, spec, c.GetAudioPlaylists)
	case "GetAudioPlaylistItems":
		register(h, server, tool, spec, c.GetAudioPlaylistItems)

	// Clear tools
	case "ClearAll":
		register(h, server, tool, spec, c.ClearAll)
	case "ClearLayer":
		register(h, server, tool, spec, c.ClearLayer)
	case "GetClearGroups":
		register(h, server, tool, spec, c.GetClearGroups)
	case "TriggerClearGroup":
		register(h, server, tool, spec, c.TriggerClearGroup)

	// Stage tools
	case "GetStageLayouts":
		register(h, server, tool, spec, c.GetStageLayouts)
	case "GetActiveStageLayout":
		register(h, server, tool, spec, c.GetActiveStageLayout)
	case "SetStageLayout":
		register(h, server, tool, spec, c.SetStageLayout)

	// Theme tools
	case "GetThemes":
		register(h, server, tool, spec, c.GetThemes)
	case "GetTheme":
		register(h, server, tool, spec, c.GetTheme)

	// Video input tools
	case "GetVideoInputs":
		register(h, server, tool, spec, c.GetVideoInputs)
	case "TriggerVideoInput":
		register(h, server, tool, spec, c.TriggerVideoInput)

	// Utility tools
	case "FindMyMouse":
		register(h, server, tool, spec, c.FindMyMouse)

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
		// Every tool reaches out to an external ProPresenter instance
		OpenWorldHint: ptr(true),
	}
	if spec.Destructive {
		annotations.DestructiveHint = ptr(true)
	}

	return &mcp.Tool{
		Name:        spec.Name,
		Description: spec.Description,
		Annotations: annotations,
	}
}

// register is a generic helper that registers a tool with the MCP server.
// It wraps the client method with panic recovery, metrics, tracing, and
// logging. Client methods never return a Go error: failures arrive as the
// uniform error result, which is passed through to the MCP caller verbatim.
func register[Args any](
	h *HandlerRegistry,
	server *mcp.Server,
	tool *mcp.Tool,
	spec ToolSpec,
	method func(context.Context, Args) propresenter.Result,
) {
	mcp.AddTool(server, tool, func(ctx context.Context, req *mcp.CallToolRequest, args Args) (*mcp.CallToolResult, propresenter.Result, error) {
		defer h.recoverPanic(spec.Name)

		// Start trace span
		ctx, span := tracing.StartSpan(ctx, "mcp.tool."+spec.Name)
		defer span.End()

		tracing.AddToolAttributes(span, spec.Name, spec.Category)
		span.SetAttributes(attribute.Bool("mcp.tool.readonly", spec.ReadOnly))

		// Track in-flight requests
		metrics.RequestInFlight.WithLabelValues(spec.Name).Inc()
		defer metrics.RequestInFlight.WithLabelValues(spec.Name).Dec()

		start := time.Now()
		result := method(ctx, args)
		duration := time.Since(start).Seconds()

		span.SetAttributes(attribute.Float64("mcp.tool.duration_seconds", duration))

		success := !propresenter.IsError(result)
		if success {
			span.SetStatus(codes.Ok, "")
		} else {
			message, _ := result["message"].(string)
			span.SetStatus(codes.Error, message)
		}
		metrics.RecordRequest(spec.Name, duration, success)
		h.logExecution(spec, args, result, success)
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
func (h *HandlerRegistry) logExecution(spec ToolSpec, args any, result propresenter.Result, success bool) {
	attrs := []any{"tool", spec.Name, "category", spec.Category, "success", success}

	// Add extractable fields from args using type assertions
	switch a := args.(type) {
	case propresenter.TriggerSlideArgs:
		attrs = append(attrs, "index", a.Index)
	case propresenter.GetLibraryItemsArgs:
		attrs = append(attrs, "library_id", a.LibraryID)
	case propresenter.GetPlaylistItemsArgs:
		attrs = append(attrs, "playlist_id", a.PlaylistID)
	case propresenter.FocusPlaylistItemArgs:
		attrs = append(attrs, "playlist_id", a.PlaylistID, "index", a.Index)
	case propresenter.TriggerPlaylistItemArgs:
		attrs = append(attrs, "playlist_id", a.PlaylistID, "index", a.Index)
	case propresenter.TriggerLookArgs:
		attrs = append(attrs, "look_id", a.LookID)
	case propresenter.TriggerMacroArgs:
		attrs = append(attrs, "macro_id", a.MacroID)
	case propresenter.TriggerMacroByNameArgs:
		attrs = append(attrs, "name", a.Name)
	case propresenter.TriggerMessageArgs:
		attrs = append(attrs, "message_id", a.MessageID)
	case propresenter.ClearMessageArgs:
		attrs = append(attrs, "message_id", a.MessageID)
	case propresenter.TriggerPropArgs:
		attrs = append(attrs, "prop_id", a.PropID)
	case propresenter.ClearPropArgs:
		attrs = append(attrs, "prop_id", a.PropID)
	case propresenter.StartTimerArgs:
		attrs = append(attrs, "timer_id", a.TimerID)
	case propresenter.StopTimerArgs:
		attrs = append(attrs, "timer_id", a.TimerID)
	case propresenter.ResetTimerArgs:
		attrs = append(attrs, "timer_id", a.TimerID)
	case propresenter.GetAudioPlaylistItemsArgs:
		attrs = append(attrs, "playlist_id", a.PlaylistID)
	case propresenter.ClearLayerArgs:
		attrs = append(attrs, "layer", a.Layer)
	case propresenter.TriggerClearGroupArgs:
		attrs = append(attrs, "group_id", a.GroupID)
	case propresenter.SetStageLayoutArgs:
		attrs = append(attrs, "layout_id", a.LayoutID)
	case propresenter.GetThemeArgs:
		attrs = append(attrs, "theme_id", a.ThemeID)
	case propresenter.TriggerVideoInputArgs:
		attrs = append(attrs, "index", a.Index)
	}

	if !success {
		if message, ok := result["message"].(string); ok {
			attrs = append(attrs, "error", message)
		}
	}

	h.logger.Info("Tool executed", attrs...)
}
