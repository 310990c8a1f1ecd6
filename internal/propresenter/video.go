package propresenter

import (
	"context"
	"fmt"
	"net/http"
)

// GetVideoInputsArgs has no parameters.
type GetVideoInputsArgs struct{}

// GetVideoInputs lists all configured video inputs.
func (c *Client) GetVideoInputs(ctx context.Context, args GetVideoInputsArgs) Result {
	return c.Call(ctx, http.MethodGet, "/v1/video_inputs", nil)
}

// TriggerVideoInputArgs identifies a video input by position.
type TriggerVideoInputArgs struct {
	Index int `json:"index" jsonschema:"required" jsonschema_description:"Zero-based index of the video input, in the order returned by propresenter_get_video_inputs"`
}

// TriggerVideoInput shows a video input on the output.
func (c *Client) TriggerVideoInput(ctx context.Context, args TriggerVideoInputArgs) Result {
	if err := requireIndex("index", args.Index); err != nil {
		return invalidArg(err)
	}
	return c.Call(ctx, http.MethodGet, fmt.Sprintf("/v1/video_inputs/%d/trigger", args.Index), nil)
}

// FindMyMouseArgs has no parameters.
type FindMyMouseArgs struct{}

// FindMyMouse highlights the cursor on the machine running ProPresenter.
func (c *Client) FindMyMouse(ctx context.Context, args FindMyMouseArgs) Result {
	return c.Call(ctx, http.MethodGet, "/v1/find_my_mouse", nil)
}
