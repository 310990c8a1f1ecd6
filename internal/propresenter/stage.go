package propresenter

import (
	"context"
	"net/http"
)

// GetStageLayoutsArgs has no parameters.
type GetStageLayoutsArgs struct{}

// GetStageLayouts lists all stage display layouts.
func (c *Client) GetStageLayouts(ctx context.Context, args GetStageLayoutsArgs) Result {
	return c.Call(ctx, http.MethodGet, "/v1/stage/layouts", nil)
}

// GetActiveStageLayoutArgs has no parameters.
type GetActiveStageLayoutArgs struct{}

// GetActiveStageLayout returns the current stage screen to layout mapping.
func (c *Client) GetActiveStageLayout(ctx context.Context, args GetActiveStageLayoutArgs) Result {
	return c.Call(ctx, http.MethodGet, "/v1/stage/layout_map", nil)
}

// SetStageLayoutArgs identifies a stage layout.
type SetStageLayoutArgs struct {
	LayoutID string `json:"layout_id" jsonschema:"required" jsonschema_description:"UUID of the stage layout, as returned by propresenter_get_stage_layouts"`
}

// SetStageLayout makes a stage layout active. This is the catalog's only
// write operation with a request body.
func (c *Client) SetStageLayout(ctx context.Context, args SetStageLayoutArgs) Result {
	if err := requireID("layout_id", args.LayoutID); err != nil {
		return invalidArg(err)
	}
	return c.Call(ctx, http.MethodPut, "/v1/stage/layout_map", map[string]string{"layout_id": args.LayoutID})
}
