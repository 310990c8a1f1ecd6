package propresenter

import (
	"net/url"
	"strings"

	apierrors "github.com/trop3n/propresenter-mcp-server/internal/errors"
)

// invalidArg folds an argument validation failure into the uniform error
// shape so it surfaces to the caller the same way remote failures do.
func invalidArg(err error) Result {
	return errorResult(err.Error())
}

// requireID checks that a ProPresenter identifier argument is non-empty.
func requireID(field, id string) error {
	if strings.TrimSpace(id) == "" {
		return apierrors.NewValidationError(field, id, "identifier must not be empty")
	}
	return nil
}

// requireIndex checks that an index argument is zero-based.
func requireIndex(field string, index int) error {
	if index < 0 {
		return apierrors.NewValidationError(field, "", "index must be zero or greater")
	}
	return nil
}

// pathParam escapes an identifier for use in an endpoint path.
func pathParam(id string) string {
	return url.PathEscape(id)
}
