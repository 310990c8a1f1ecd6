package propresenter

import (
	"context"
	"net/http"
)

// GetLibrariesArgs has no parameters.
type GetLibrariesArgs struct{}

// GetLibraries lists all configured presentation libraries.
func (c *Client) GetLibraries(ctx context.Context, args GetLibrariesArgs) Result {
	return c.Call(ctx, http.MethodGet, "/v1/libraries", nil)
}

// GetLibraryItemsArgs identifies a library.
type GetLibraryItemsArgs struct {
	LibraryID string `json:"library_id" jsonschema:"required" jsonschema_description:"UUID of the library, as returned by propresenter_get_libraries"`
}

// GetLibraryItems lists the presentations in a library.
func (c *Client) GetLibraryItems(ctx context.Context, args GetLibraryItemsArgs) Result {
	if err := requireID("library_id", args.LibraryID); err != nil {
		return invalidArg(err)
	}
	return c.Call(ctx, http.MethodGet, "/v1/library/"+pathParam(args.LibraryID), nil)
}
