package telegram

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/go-telegram/bot"
)

// Notifier delivers digest text to the single configured admin chat. It is
// the only path the delivery scheduler uses to reach Telegram.
type Notifier struct {
	bot    *bot.Bot
	chatID int64
	logger *slog.Logger
}

// NewNotifier creates a Notifier sending to the given chat.
func NewNotifier(b *bot.Bot, chatID int64, logger *slog.Logger) *Notifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &Notifier{
		bot:    b,
		chatID: chatID,
		logger: logger.With("component", "notifier"),
	}
}

// Send delivers the given text to the admin chat. Failures are returned to
// the caller; the delivery scheduler logs them and moves on.
func (n *Notifier) Send(ctx context.Context, text string) error {
	_, err := n.bot.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: n.chatID,
		Text:   text,
	})
	if err != nil {
		n.logger.ErrorContext(ctx, "Failed to send message to admin chat", "chat_id", n.chatID, "error", err)
		return fmt.Errorf("failed to send message to chat %d: %w", n.chatID, err)
	}

	n.logger.DebugContext(ctx, "Message sent to admin chat", "chat_id", n.chatID, "length", len(text))
	return nil
}
