package propresenter

import (
	"context"
	"net/http"
)

// GetThemesArgs has no parameters.
type GetThemesArgs struct{}

// GetThemes lists all slide themes.
func (c *Client) GetThemes(ctx context.Context, args GetThemesArgs) Result {
	return c.Call(ctx, http.MethodGet, "/v1/themes", nil)
}

// GetThemeArgs identifies a theme.
type GetThemeArgs struct {
	ThemeID string `json:"theme_id" jsonschema:"required" jsonschema_description:"UUID of the theme, as returned by propresenter_get_themes"`
}

// GetTheme returns a theme and its slide templates.
func (c *Client) GetTheme(ctx context.Context, args GetThemeArgs) Result {
	if err := requireID("theme_id", args.ThemeID); err != nil {
		return invalidArg(err)
	}
	return c.Call(ctx, http.MethodGet, "/v1/theme/"+pathParam(args.ThemeID), nil)
}
