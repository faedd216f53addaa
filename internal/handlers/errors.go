package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/claimmate/claimmate/internal/claims"
)

// ErrorResponse is the JSON error body produced by echo.HTTPError.
type ErrorResponse struct {
	Message string `json:"message"`
}

// claimsError translates claims service errors into HTTP errors: not-found
// sentinels become 404, validation sentinels 400, anything else (storage
// failures included) a 500.
func claimsError(err error) error {
	switch {
	case errors.Is(err, claims.ErrUploadNotFound), errors.Is(err, claims.ErrClaimNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, claims.ErrInvalidStatus), errors.Is(err, claims.ErrInvalidRequest):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}
