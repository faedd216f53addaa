package dialog

import (
	"context"
	"log/slog"

	"github.com/claimmate/claimmate/internal/channel"
)

// Service dispatches inbound chat messages: normalize, resolve the intent,
// pick the reply, attach the quick-reply menu, send.
type Service struct {
	logger *slog.Logger
}

// NewService validates the intent catalog and returns the dispatcher.
func NewService(log *slog.Logger) (*Service, error) {
	if log == nil {
		log = slog.Default()
	}
	if err := Validate(); err != nil {
		return nil, err
	}
	return &Service{
		logger: log.With(slog.String("service", "dialog")),
	}, nil
}

// HandleIncoming processes one inbound text message and replies through the
// sender. Delivery failures are logged and answered with a single
// best-effort busy notice; if that also fails the error is swallowed, since
// the webhook request has already been acknowledged. Replies are never
// queued or retried beyond that.
func (s *Service) HandleIncoming(ctx context.Context, rawText, target string, sender channel.ReplySender) {
	normalized := Normalize(rawText)
	intent, ok := Resolve(normalized)

	var msg channel.Message
	switch {
	case !ok:
		msg = BuildMenu(fallbackText)
	case intent == IntentMenu:
		msg = BuildMenu("")
	default:
		msg = BuildMenu(ReplyFor(intent))
	}

	s.logger.Debug("dispatching reply",
		slog.String("intent", string(intent)),
		slog.Bool("matched", ok),
	)

	if err := sender.Reply(ctx, target, msg); err != nil {
		s.logger.Error("reply delivery failed",
			slog.String("intent", string(intent)),
			slog.Any("error", err),
		)
		if err := sender.Reply(ctx, target, channel.Message{Text: busyText}); err != nil {
			s.logger.Error("busy notice delivery failed", slog.Any("error", err))
		}
	}
}
