package line

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/line/line-bot-sdk-go/v7/linebot"

	"github.com/claimmate/claimmate/internal/channel"
)

// Dispatcher routes one inbound text message to a reply.
type Dispatcher interface {
	HandleIncoming(ctx context.Context, rawText, target string, sender channel.ReplySender)
}

// WebhookHandler receives LINE Messaging API webhook callbacks.
type WebhookHandler struct {
	logger     *slog.Logger
	adapter    *Adapter
	dispatcher Dispatcher
}

func NewWebhookHandler(log *slog.Logger, adapter *Adapter, dispatcher Dispatcher) *WebhookHandler {
	if log == nil {
		log = slog.Default()
	}
	return &WebhookHandler{
		logger:     log.With(slog.String("handler", "line_webhook")),
		adapter:    adapter,
		dispatcher: dispatcher,
	}
}

// Register registers webhook callback routes.
func (h *WebhookHandler) Register(e *echo.Echo) {
	e.GET("/webhook/line", h.HandleProbe)
	e.POST("/webhook/line", h.Handle)
}

// HandleProbe responds to health/probe requests on the webhook URL.
func (h *WebhookHandler) HandleProbe(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}

// Handle verifies the request signature, then dispatches each text message
// event. The response is a fixed acknowledgement; reply delivery outcomes
// are never surfaced to LINE.
func (h *WebhookHandler) Handle(c echo.Context) error {
	if h.adapter == nil || !h.adapter.Configured() {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "line channel not configured")
	}
	if h.dispatcher == nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "line webhook dispatcher not configured")
	}
	events, err := h.adapter.ParseRequest(c.Request())
	if err != nil {
		if errors.Is(err, linebot.ErrInvalidSignature) {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid signature")
		}
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("parse webhook: %v", err))
	}

	ctx := context.WithoutCancel(c.Request().Context())
	for _, event := range events {
		if event.Type != linebot.EventTypeMessage {
			continue
		}
		textMessage, ok := event.Message.(*linebot.TextMessage)
		if !ok || strings.TrimSpace(textMessage.Text) == "" {
			continue
		}
		h.dispatcher.HandleIncoming(ctx, textMessage.Text, event.ReplyToken, h.adapter)
	}
	return c.String(http.StatusOK, "OK")
}
