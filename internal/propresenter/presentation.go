package propresenter

import (
	"context"
	"fmt"
	"net/http"
)

// GetActivePresentationArgs has no parameters.
type GetActivePresentationArgs struct{}

// GetActivePresentation returns details of the currently active presentation.
func (c *Client) GetActivePresentation(ctx context.Context, args GetActivePresentationArgs) Result {
	return c.Call(ctx, http.MethodGet, "/v1/presentation/active", nil)
}

// GetSlideIndexArgs has no parameters.
type GetSlideIndexArgs struct{}

// GetSlideIndex returns the index of the slide currently being presented.
func (c *Client) GetSlideIndex(ctx context.Context, args GetSlideIndexArgs) Result {
	return c.Call(ctx, http.MethodGet, "/v1/presentation/slide_index", nil)
}

// TriggerSlideArgs identifies a slide in the active presentation.
type TriggerSlideArgs struct {
	Index int `json:"index" jsonschema:"required" jsonschema_description:"Zero-based index of the slide to trigger"`
}

// TriggerSlide triggers a specific slide of the active presentation.
func (c *Client) TriggerSlide(ctx context.Context, args TriggerSlideArgs) Result {
	if err := requireIndex("index", args.Index); err != nil {
		return invalidArg(err)
	}
	return c.Call(ctx, http.MethodGet, fmt.Sprintf("/v1/presentation/active/%d/trigger", args.Index), nil)
}

// NextSlideArgs has no parameters.
type NextSlideArgs struct{}

// NextSlide advances the active presentation to the next slide.
func (c *Client) NextSlide(ctx context.Context, args NextSlideArgs) Result {
	return c.Call(ctx, http.MethodGet, "/v1/presentation/active/next/trigger", nil)
}

// PreviousSlideArgs has no parameters.
type PreviousSlideArgs struct{}

// PreviousSlide moves the active presentation back one slide.
func (c *Client) PreviousSlide(ctx context.Context, args PreviousSlideArgs) Result {
	return c.Call(ctx, http.MethodGet, "/v1/presentation/active/previous/trigger", nil)
}

// FocusActivePresentationArgs has no parameters.
type FocusActivePresentationArgs struct{}

// FocusActivePresentation brings the active presentation into focus.
func (c *Client) FocusActivePresentation(ctx context.Context, args FocusActivePresentationArgs) Result {
	return c.Call(ctx, http.MethodGet, "/v1/presentation/active/focus", nil)
}
