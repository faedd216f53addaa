package telegram

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/labstack/echo/v4"

	"github.com/claimmate/claimmate/internal/channel"
)

const secretTokenHeader = "X-Telegram-Bot-Api-Secret-Token"

// Dispatcher routes one inbound text message to a reply.
type Dispatcher interface {
	HandleIncoming(ctx context.Context, rawText, target string, sender channel.ReplySender)
}

// WebhookHandler receives Telegram Bot API webhook updates.
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
		logger:     log.With(slog.String("handler", "telegram_webhook")),
		adapter:    adapter,
		dispatcher: dispatcher,
	}
}

// Register registers webhook callback routes.
func (h *WebhookHandler) Register(e *echo.Echo) {
	e.POST("/webhook/telegram", h.Handle)
}

// Handle verifies the webhook secret token header, then dispatches the
// update's text message if any. Non-text updates are acknowledged and
// ignored.
func (h *WebhookHandler) Handle(c echo.Context) error {
	if h.adapter == nil || !h.adapter.Configured() {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "telegram channel not configured")
	}
	if h.dispatcher == nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "telegram webhook dispatcher not configured")
	}
	if secret := h.adapter.WebhookSecret(); secret != "" {
		if c.Request().Header.Get(secretTokenHeader) != secret {
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid webhook secret token")
		}
	}

	var update tgbotapi.Update
	if err := json.NewDecoder(c.Request().Body).Decode(&update); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("decode update: %v", err))
	}
	if update.Message == nil || update.Message.Chat == nil || strings.TrimSpace(update.Message.Text) == "" {
		return c.String(http.StatusOK, "OK")
	}

	target := strconv.FormatInt(update.Message.Chat.ID, 10)
	h.dispatcher.HandleIncoming(context.WithoutCancel(c.Request().Context()), update.Message.Text, target, h.adapter)
	return c.String(http.StatusOK, "OK")
}
