// Package tools provides a metadata-driven registry for MCP tool definitions.
// It reduces boilerplate in main.go by defining tools declaratively and
// using type-safe handlers to register them.
package tools

// ToolSpec defines a tool's metadata for declarative registration.
// Each spec maps to a propresenter client method with a matching Args type.
type ToolSpec struct {
	// Name is the MCP tool name (e.g., "propresenter_trigger_macro")
	Name string

	// Method is the client method name (e.g., "TriggerMacro")
	Method string

	// Description is the tool description shown to LLMs
	Description string

	// Title is the human-readable tool title for annotations
	Title string

	// Category groups tools logically (presentation, playlists, clear, etc.)
	Category string

	// ReadOnly indicates the tool doesn't change ProPresenter state
	ReadOnly bool

	// Destructive indicates the tool removes content from the output
	Destructive bool

	// Idempotent indicates repeated calls have the same effect
	Idempotent bool
}

// ptr is a helper to create a pointer to a value.
func ptr[T any](v T) *T {
	return &v
}
