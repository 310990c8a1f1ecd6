package propresenter

import (
	"context"
	"net/http"
)

// ClearAllArgs has no parameters.
type ClearAllArgs struct{}

// ClearAll clears every presentation layer at once.
func (c *Client) ClearAll(ctx context.Context, args ClearAllArgs) Result {
	return c.Call(ctx, http.MethodGet, "/v1/clear/all", nil)
}

// ClearLayerArgs names a presentation layer.
type ClearLayerArgs struct {
	Layer string `json:"layer" jsonschema:"required" jsonschema_description:"Layer to clear: audio, props, messages, announcements, slide, media, or video_input"`
}

// ClearLayer clears one presentation layer. The layer name is passed through
// as-is; ProPresenter rejects names it does not recognize.
func (c *Client) ClearLayer(ctx context.Context, args ClearLayerArgs) Result {
	if err := requireID("layer", args.Layer); err != nil {
		return invalidArg(err)
	}
	return c.Call(ctx, http.MethodGet, "/v1/clear/layer/"+pathParam(args.Layer), nil)
}

// GetClearGroupsArgs has no parameters.
type GetClearGroupsArgs struct{}

// GetClearGroups lists all clear groups.
func (c *Client) GetClearGroups(ctx context.Context, args GetClearGroupsArgs) Result {
	return c.Call(ctx, http.MethodGet, "/v1/clear/groups", nil)
}

// TriggerClearGroupArgs identifies a clear group.
type TriggerClearGroupArgs struct {
	GroupID string `json:"group_id" jsonschema:"required" jsonschema_description:"UUID of the clear group, as returned by propresenter_get_clear_groups"`
}

// TriggerClearGroup triggers a clear group.
func (c *Client) TriggerClearGroup(ctx context.Context, args TriggerClearGroupArgs) Result {
	if err := requireID("group_id", args.GroupID); err != nil {
		return invalidArg(err)
	}
	return c.Call(ctx, http.MethodGet, "/v1/clear/group/"+pathParam(args.GroupID)+"/trigger", nil)
}
