package line

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/line/line-bot-sdk-go/v7/linebot"

	"github.com/claimmate/claimmate/internal/channel"
	"github.com/claimmate/claimmate/internal/config"
)

// Type is the LINE channel identifier.
const Type = channel.ChannelType("line")

// Adapter delivers replies through the LINE Messaging API. The reply target
// is the per-event reply token.
type Adapter struct {
	logger *slog.Logger
	client *linebot.Client
}

// NewAdapter builds the LINE adapter. Missing credentials yield an
// unconfigured adapter whose operations fail cleanly, so the server can run
// without a LINE channel.
func NewAdapter(log *slog.Logger, cfg config.LineConfig) (*Adapter, error) {
	if log == nil {
		log = slog.Default()
	}
	adapter := &Adapter{logger: log.With(slog.String("channel", "line"))}
	secret := strings.TrimSpace(cfg.ChannelSecret)
	token := strings.TrimSpace(cfg.ChannelAccessToken)
	if secret == "" || token == "" {
		adapter.logger.Warn("line channel credentials not configured")
		return adapter, nil
	}
	client, err := linebot.New(secret, token)
	if err != nil {
		return nil, fmt.Errorf("init line client: %w", err)
	}
	adapter.client = client
	return adapter, nil
}

func (a *Adapter) Type() channel.ChannelType {
	return Type
}

// Configured reports whether channel credentials are present.
func (a *Adapter) Configured() bool {
	return a.client != nil
}

// ParseRequest verifies the X-Line-Signature of a webhook request and
// decodes its events. linebot.ErrInvalidSignature is returned on a bad or
// missing signature.
func (a *Adapter) ParseRequest(req *http.Request) ([]*linebot.Event, error) {
	if a.client == nil {
		return nil, fmt.Errorf("line channel not configured")
	}
	return a.client.ParseRequest(req)
}

// Reply sends a text message, with quick-reply buttons when the message
// carries actions, using the event reply token as target.
func (a *Adapter) Reply(ctx context.Context, target string, msg channel.Message) error {
	if a.client == nil {
		return fmt.Errorf("line channel not configured")
	}
	replyToken := strings.TrimSpace(target)
	if replyToken == "" {
		return fmt.Errorf("reply token is required")
	}
	if msg.IsEmpty() {
		return fmt.Errorf("message is required")
	}
	text := linebot.NewTextMessage(msg.Text)
	var outgoing linebot.SendingMessage = text
	if len(msg.Actions) > 0 {
		buttons := make([]*linebot.QuickReplyButton, 0, len(msg.Actions))
		for _, action := range msg.Actions {
			buttons = append(buttons, linebot.NewQuickReplyButton("", linebot.NewMessageAction(action.Label, action.Text)))
		}
		outgoing = text.WithQuickReplies(linebot.NewQuickReplyItems(buttons...))
	}
	if _, err := a.client.ReplyMessage(replyToken, outgoing).WithContext(ctx).Do(); err != nil {
		return fmt.Errorf("line reply: %w", err)
	}
	return nil
}
