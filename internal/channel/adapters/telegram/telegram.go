package telegram

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/claimmate/claimmate/internal/channel"
	"github.com/claimmate/claimmate/internal/config"
)

// Type is the Telegram channel identifier.
const Type = channel.ChannelType("telegram")

// Adapter delivers replies through the Telegram Bot API. The reply target
// is the decimal chat id. The bot client is created lazily because
// construction performs a getMe call.
type Adapter struct {
	logger        *slog.Logger
	token         string
	webhookSecret string

	mu  sync.Mutex
	bot *tgbotapi.BotAPI
}

func NewAdapter(log *slog.Logger, cfg config.TelegramConfig) *Adapter {
	if log == nil {
		log = slog.Default()
	}
	adapter := &Adapter{
		logger:        log.With(slog.String("channel", "telegram")),
		token:         strings.TrimSpace(cfg.BotToken),
		webhookSecret: strings.TrimSpace(cfg.WebhookSecret),
	}
	if adapter.token == "" {
		adapter.logger.Warn("telegram bot token not configured")
	}
	return adapter
}

func (a *Adapter) Type() channel.ChannelType {
	return Type
}

// Configured reports whether a bot token is present.
func (a *Adapter) Configured() bool {
	return a.token != ""
}

// WebhookSecret is the expected X-Telegram-Bot-Api-Secret-Token value.
func (a *Adapter) WebhookSecret() string {
	return a.webhookSecret
}

func (a *Adapter) getOrCreateBot() (*tgbotapi.BotAPI, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.bot != nil {
		return a.bot, nil
	}
	if a.token == "" {
		return nil, fmt.Errorf("telegram channel not configured")
	}
	bot, err := tgbotapi.NewBotAPI(a.token)
	if err != nil {
		return nil, fmt.Errorf("init telegram bot: %w", err)
	}
	a.bot = bot
	return bot, nil
}

// Reply sends a text message to the chat, attaching a one-time reply
// keyboard when the message carries quick-reply actions. Telegram keyboard
// buttons echo their visible text, so the buttons show the action keyword.
func (a *Adapter) Reply(_ context.Context, target string, msg channel.Message) error {
	bot, err := a.getOrCreateBot()
	if err != nil {
		return err
	}
	chatID, err := strconv.ParseInt(strings.TrimSpace(target), 10, 64)
	if err != nil {
		return fmt.Errorf("invalid telegram chat id %q: %w", target, err)
	}
	if msg.IsEmpty() {
		return fmt.Errorf("message is required")
	}
	outgoing := tgbotapi.NewMessage(chatID, msg.Text)
	if len(msg.Actions) > 0 {
		buttons := make([]tgbotapi.KeyboardButton, 0, len(msg.Actions))
		for _, action := range msg.Actions {
			buttons = append(buttons, tgbotapi.NewKeyboardButton(action.Text))
		}
		outgoing.ReplyMarkup = tgbotapi.NewOneTimeReplyKeyboard(tgbotapi.NewKeyboardButtonRow(buttons...))
	}
	if _, err := bot.Send(outgoing); err != nil {
		return fmt.Errorf("telegram send: %w", err)
	}
	return nil
}
