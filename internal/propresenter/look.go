package propresenter

import (
	"context"
	"net/http"
)

// GetLooksArgs has no parameters.
type GetLooksArgs struct{}

// GetLooks lists all saved looks.
func (c *Client) GetLooks(ctx context.Context, args GetLooksArgs) Result {
	return c.Call(ctx, http.MethodGet, "/v1/looks", nil)
}

// GetCurrentLookArgs has no parameters.
type GetCurrentLookArgs struct{}

// GetCurrentLook returns the look currently applied to the output.
func (c *Client) GetCurrentLook(ctx context.Context, args GetCurrentLookArgs) Result {
	return c.Call(ctx, http.MethodGet, "/v1/look/current", nil)
}

// TriggerLookArgs identifies a look.
type TriggerLookArgs struct {
	LookID string `json:"look_id" jsonschema:"required" jsonschema_description:"UUID of the look, as returned by propresenter_get_looks"`
}

// TriggerLook applies a saved look to the output.
func (c *Client) TriggerLook(ctx context.Context, args TriggerLookArgs) Result {
	if err := requireID("look_id", args.LookID); err != nil {
		return invalidArg(err)
	}
	return c.Call(ctx, http.MethodGet, "/v1/look/"+pathParam(args.LookID)+"/trigger", nil)
}
