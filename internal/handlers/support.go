package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/claimmate/claimmate/internal/config"
)

// SupportHandler serves the static customer support contact data.
type SupportHandler struct {
	cfg config.SupportConfig
}

func NewSupportHandler(cfg config.SupportConfig) *SupportHandler {
	return &SupportHandler{cfg: cfg}
}

func (h *SupportHandler) Register(e *echo.Echo) {
	e.GET("/support/info", h.Info)
}

// SupportInfo is the customer support contact block.
type SupportInfo struct {
	ServiceHours string `json:"service_hours"`
	Hotline      string `json:"hotline"`
	Email        string `json:"email"`
}

// Info godoc
// @Summary Customer support contact info
// @Tags support
// @Success 200 {object} SupportInfo
// @Router /support/info [get]
func (h *SupportHandler) Info(c echo.Context) error {
	return c.JSON(http.StatusOK, SupportInfo{
		ServiceHours: h.cfg.ServiceHours,
		Hotline:      h.cfg.Hotline,
		Email:        h.cfg.Email,
	})
}
