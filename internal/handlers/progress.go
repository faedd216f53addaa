package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/claimmate/claimmate/internal/auth"
	"github.com/claimmate/claimmate/internal/claims"
)

// ProgressHandler exposes claim progress. Reads are public; status updates
// require an admin token.
type ProgressHandler struct {
	service *claims.Service
}

func NewProgressHandler(service *claims.Service) *ProgressHandler {
	return &ProgressHandler{service: service}
}

func (h *ProgressHandler) Register(e *echo.Echo) {
	e.GET("/progress/:claim_id", h.Get)
	e.PATCH("/progress/:claim_id", h.Update)
}

// Get godoc
// @Summary Query claim progress
// @Tags claims
// @Param claim_id path string true "Claim id"
// @Success 200 {object} claims.Progress
// @Failure 404 {object} ErrorResponse
// @Router /progress/{claim_id} [get]
func (h *ProgressHandler) Get(c echo.Context) error {
	progress, err := h.service.GetProgress(c.Request().Context(), c.Param("claim_id"))
	if err != nil {
		return claimsError(err)
	}
	return c.JSON(http.StatusOK, progress)
}

// UpdateProgressRequest carries the new status value.
type UpdateProgressRequest struct {
	Status string `json:"status"`
}

// Update godoc
// @Summary Update claim status
// @Description Sets the claim status to any value of the status enum. Admin token required.
// @Tags claims
// @Accept json
// @Param claim_id path string true "Claim id"
// @Param body body UpdateProgressRequest true "New status"
// @Success 200 {object} claims.Progress
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /progress/{claim_id} [patch]
func (h *ProgressHandler) Update(c echo.Context) error {
	if _, err := auth.RequireAdmin(c); err != nil {
		return err
	}
	var req UpdateProgressRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	progress, err := h.service.UpdateProgress(c.Request().Context(), c.Param("claim_id"), req.Status)
	if err != nil {
		return claimsError(err)
	}
	return c.JSON(http.StatusOK, progress)
}
