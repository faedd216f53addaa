package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/claimmate/claimmate/internal/claims"
)

// ClaimsHandler opens claims against uploaded policies.
type ClaimsHandler struct {
	service *claims.Service
}

func NewClaimsHandler(service *claims.Service) *ClaimsHandler {
	return &ClaimsHandler{service: service}
}

func (h *ClaimsHandler) Register(e *echo.Echo) {
	e.POST("/claims/start", h.Start)
}

// Start godoc
// @Summary Start a claim
// @Description Opens a claim for a previously uploaded policy and assigns the initial status and step list
// @Tags claims
// @Accept json
// @Param claim body claims.StartClaimRequest true "Claim details"
// @Success 201 {object} claims.ClaimRecord
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /claims/start [post]
func (h *ClaimsHandler) Start(c echo.Context) error {
	var req claims.StartClaimRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	rec, err := h.service.StartClaim(c.Request().Context(), req)
	if err != nil {
		return claimsError(err)
	}
	return c.JSON(http.StatusCreated, rec)
}
