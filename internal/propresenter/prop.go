package propresenter

import (
	"context"
	"net/http"
)

// GetPropsArgs has no parameters.
type GetPropsArgs struct{}

// GetProps lists all props.
func (c *Client) GetProps(ctx context.Context, args GetPropsArgs) Result {
	return c.Call(ctx, http.MethodGet, "/v1/props", nil)
}

// TriggerPropArgs identifies a prop.
type TriggerPropArgs struct {
	PropID string `json:"prop_id" jsonschema:"required" jsonschema_description:"UUID of the prop, as returned by propresenter_get_props"`
}

// TriggerProp shows a prop on the output.
func (c *Client) TriggerProp(ctx context.Context, args TriggerPropArgs) Result {
	if err := requireID("prop_id", args.PropID); err != nil {
		return invalidArg(err)
	}
	return c.Call(ctx, http.MethodGet, "/v1/prop/"+pathParam(args.PropID)+"/trigger", nil)
}

// ClearPropArgs identifies a prop.
type ClearPropArgs struct {
	PropID string `json:"prop_id" jsonschema:"required" jsonschema_description:"UUID of the prop to clear"`
}

// ClearProp removes a prop from the output.
func (c *Client) ClearProp(ctx context.Context, args ClearPropArgs) Result {
	if err := requireID("prop_id", args.PropID); err != nil {
		return invalidArg(err)
	}
	return c.Call(ctx, http.MethodGet, "/v1/prop/"+pathParam(args.PropID)+"/clear", nil)
}
