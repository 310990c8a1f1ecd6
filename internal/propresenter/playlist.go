package propresenter

import (
	"context"
	"fmt"
	"net/http"
)

// GetPlaylistsArgs has no parameters.
type GetPlaylistsArgs struct{}

// GetPlaylists lists all playlists.
func (c *Client) GetPlaylists(ctx context.Context, args GetPlaylistsArgs) Result {
	return c.Call(ctx, http.MethodGet, "/v1/playlists", nil)
}

// GetActivePlaylistArgs has no parameters.
type GetActivePlaylistArgs struct{}

// GetActivePlaylist returns the currently active playlist.
func (c *Client) GetActivePlaylist(ctx context.Context, args GetActivePlaylistArgs) Result {
	return c.Call(ctx, http.MethodGet, "/v1/playlist/active", nil)
}

// GetPlaylistItemsArgs identifies a playlist.
type GetPlaylistItemsArgs struct {
	PlaylistID string `json:"playlist_id" jsonschema:"required" jsonschema_description:"UUID of the playlist, as returned by propresenter_get_playlists"`
}

// GetPlaylistItems lists the items of a playlist.
func (c *Client) GetPlaylistItems(ctx context.Context, args GetPlaylistItemsArgs) Result {
	if err := requireID("playlist_id", args.PlaylistID); err != nil {
		return invalidArg(err)
	}
	return c.Call(ctx, http.MethodGet, "/v1/playlist/"+pathParam(args.PlaylistID), nil)
}

// FocusPlaylistItemArgs identifies an item within a playlist.
type FocusPlaylistItemArgs struct {
	PlaylistID string `json:"playlist_id" jsonschema:"required" jsonschema_description:"UUID of the playlist"`
	Index      int    `json:"index" jsonschema:"required" jsonschema_description:"Zero-based index of the item within the playlist"`
}

// FocusPlaylistItem focuses a playlist item without presenting it.
func (c *Client) FocusPlaylistItem(ctx context.Context, args FocusPlaylistItemArgs) Result {
	if err := requireID("playlist_id", args.PlaylistID); err != nil {
		return invalidArg(err)
	}
	if err := requireIndex("index", args.Index); err != nil {
		return invalidArg(err)
	}
	return c.Call(ctx, http.MethodGet, fmt.Sprintf("/v1/playlist/%s/%d/focus", pathParam(args.PlaylistID), args.Index), nil)
}

// TriggerPlaylistItemArgs identifies an item within a playlist.
type TriggerPlaylistItemArgs struct {
	PlaylistID string `json:"playlist_id" jsonschema:"required" jsonschema_description:"UUID of the playlist"`
	Index      int    `json:"index" jsonschema:"required" jsonschema_description:"Zero-based index of the item within the playlist"`
}

// TriggerPlaylistItem presents a playlist item.
func (c *Client) TriggerPlaylistItem(ctx context.Context, args TriggerPlaylistItemArgs) Result {
	if err := requireID("playlist_id", args.PlaylistID); err != nil {
		return invalidArg(err)
	}
	if err := requireIndex("index", args.Index); err != nil {
		return invalidArg(err)
	}
	return c.Call(ctx, http.MethodGet, fmt.Sprintf("/v1/playlist/%s/%d/trigger", pathParam(args.PlaylistID), args.Index), nil)
}
