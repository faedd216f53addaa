package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/claimmate/claimmate/internal/version"
)

// PingHandler serves the uptime probe endpoint.
type PingHandler struct{}

func NewPingHandler() *PingHandler {
	return &PingHandler{}
}

func (h *PingHandler) Register(e *echo.Echo) {
	e.GET("/ping", h.Ping)
	e.HEAD("/ping", h.PingNoBody)
}

// Ping godoc
// @Summary Health check
// @Description Static ok status with service metadata
// @Tags health
// @Success 200 {object} map[string]any
// @Router /ping [get]
func (h *PingHandler) Ping(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"ok":      true,
		"service": "claimmate",
		"version": version.Version,
	})
}

// PingNoBody answers body-less probes.
func (h *PingHandler) PingNoBody(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}
