package propresenter

import (
	"context"
	"net/http"
)

// GetMessagesArgs has no parameters.
type GetMessagesArgs struct{}

// GetMessages lists all configured messages.
func (c *Client) GetMessages(ctx context.Context, args GetMessagesArgs) Result {
	return c.Call(ctx, http.MethodGet, "/v1/messages", nil)
}

// TriggerMessageArgs identifies a message.
type TriggerMessageArgs struct {
	MessageID string `json:"message_id" jsonschema:"required" jsonschema_description:"UUID of the message, as returned by propresenter_get_messages"`
}

// TriggerMessage shows a message on the output. The message trigger endpoint
// takes a JSON array of token values; messages without tokens use an empty
// array.
func (c *Client) TriggerMessage(ctx context.Context, args TriggerMessageArgs) Result {
	if err := requireID("message_id", args.MessageID); err != nil {
		return invalidArg(err)
	}
	return c.Call(ctx, http.MethodPost, "/v1/message/"+pathParam(args.MessageID)+"/trigger", []any{})
}

// ClearMessageArgs identifies a message.
type ClearMessageArgs struct {
	MessageID string `json:"message_id" jsonschema:"required" jsonschema_description:"UUID of the message to clear"`
}

// ClearMessage removes a message from the output.
func (c *Client) ClearMessage(ctx context.Context, args ClearMessageArgs) Result {
	if err := requireID("message_id", args.MessageID); err != nil {
		return invalidArg(err)
	}
	return c.Call(ctx, http.MethodGet, "/v1/message/"+pathParam(args.MessageID)+"/clear", nil)
}
