package handlers

import (
	"context"
	"log/slog"
	"strings"

	"github.com/go-telegram/bot"
)

// reply sends a plain text message to the chat, logging send failures.
func reply(ctx context.Context, b *bot.Bot, log *slog.Logger, chatID int64, text string) {
	_, err := b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: chatID,
		Text:   text,
	})
	if err != nil {
		log.ErrorContext(ctx, "Failed to send reply", "error", err, "chat_id", chatID)
	}
}

// commandArgs strips the leading "/command" (with optional @botname suffix)
// from message text and returns the remaining whitespace-split arguments.
func commandArgs(text string) []string {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return nil
	}
	return fields[1:]
}
