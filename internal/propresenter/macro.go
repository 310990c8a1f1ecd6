package propresenter

import (
	"context"
	"net/http"

	apierrors "github.com/trop3n/propresenter-mcp-server/internal/errors"
)

// GetMacrosArgs has no parameters.
type GetMacrosArgs struct{}

// GetMacros lists all macros.
func (c *Client) GetMacros(ctx context.Context, args GetMacrosArgs) Result {
	return c.Call(ctx, http.MethodGet, "/v1/macros", nil)
}

// TriggerMacroArgs identifies a macro by UUID.
type TriggerMacroArgs struct {
	MacroID string `json:"macro_id" jsonschema:"required" jsonschema_description:"UUID of the macro, as returned by propresenter_get_macros"`
}

// TriggerMacro runs a macro by identifier.
func (c *Client) TriggerMacro(ctx context.Context, args TriggerMacroArgs) Result {
	if err := requireID("macro_id", args.MacroID); err != nil {
		return invalidArg(err)
	}
	return c.Call(ctx, http.MethodGet, "/v1/macro/"+pathParam(args.MacroID)+"/trigger", nil)
}

// TriggerMacroByNameArgs identifies a macro by display name.
type TriggerMacroByNameArgs struct {
	Name string `json:"name" jsonschema:"required" jsonschema_description:"Exact display name of the macro (case-sensitive)"`
}

// TriggerMacroByName lists all macros, resolves an exact case-sensitive name
// match to its UUID, and triggers it. The listing is scanned in order and the
// first match wins; resolution is recomputed on every call, never cached. A
// miss yields a not-found error result without issuing any action request.
func (c *Client) TriggerMacroByName(ctx context.Context, args TriggerMacroByNameArgs) Result {
	if err := requireID("name", args.Name); err != nil {
		return invalidArg(err)
	}

	listing := c.Call(ctx, http.MethodGet, "/v1/macros", nil)
	if IsError(listing) {
		return listing
	}

	id, ok := resolveNameToID(listing, args.Name)
	if !ok {
		return errorResult(apierrors.NewNotFoundError("macro", args.Name).Error())
	}

	return c.Call(ctx, http.MethodGet, "/v1/macro/"+pathParam(id)+"/trigger", nil)
}

// resolveNameToID scans a listing result for an item whose display name
// matches exactly and returns its identifier. ProPresenter nests name and
// uuid under an "id" object; flat {"name": ..., "id": ...} items are also
// accepted.
func resolveNameToID(listing Result, name string) (string, bool) {
	for _, entry := range listedItems(listing) {
		item, ok := entry.(map[string]any)
		if !ok {
			continue
		}

		if idObj, ok := item["id"].(map[string]any); ok {
			if idObj["name"] == name {
				if uuid, ok := idObj["uuid"].(string); ok && uuid != "" {
					return uuid, true
				}
			}
			continue
		}

		if item["name"] == name {
			if id, ok := item["id"].(string); ok && id != "" {
				return id, true
			}
			if uuid, ok := item["uuid"].(string); ok && uuid != "" {
				return uuid, true
			}
		}
	}
	return "", false
}

// listedItems extracts the item array from a listing result. Array bodies
// arrive wrapped under "data"; some endpoints return an object with a single
// array field instead.
func listedItems(listing Result) []any {
	if items, ok := listing["data"].([]any); ok {
		return items
	}
	if len(listing) == 1 {
		for _, v := range listing {
			if items, ok := v.([]any); ok {
				return items
			}
		}
	}
	return nil
}
