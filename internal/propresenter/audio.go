package propresenter

import (
	"context"
	"net/http"
)

// GetAudioPlaylistsArgs has no parameters.
type GetAudioPlaylistsArgs struct{}

// GetAudioPlaylists lists all audio playlists.
func (c *Client) GetAudioPlaylists(ctx context.Context, args GetAudioPlaylistsArgs) Result {
	return c.Call(ctx, http.MethodGet, "/v1/audio/playlists", nil)
}

// GetAudioPlaylistItemsArgs identifies an audio playlist.
type GetAudioPlaylistItemsArgs struct {
	PlaylistID string `json:"playlist_id" jsonschema:"required" jsonschema_description:"UUID of the audio playlist, as returned by propresenter_get_audio_playlists"`
}

// GetAudioPlaylistItems lists the tracks of an audio playlist.
func (c *Client) GetAudioPlaylistItems(ctx context.Context, args GetAudioPlaylistItemsArgs) Result {
	if err := requireID("playlist_id", args.PlaylistID); err != nil {
		return invalidArg(err)
	}
	return c.Call(ctx, http.MethodGet, "/v1/audio/playlist/"+pathParam(args.PlaylistID), nil)
}
