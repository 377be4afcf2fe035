package handlers

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// NewAdminPanelHandler returns a handler for the /admin command, which
// prints the admin command reference.
func NewAdminPanelHandler(deps HandlerDeps) bot.HandlerFunc {
	return adminPanelHandler{deps}.Handle
}

type adminPanelHandler struct {
	deps HandlerDeps
}

func (h adminPanelHandler) Handle(ctx context.Context, b *bot.Bot, update *models.Update) {
	log := h.deps.Logger.With("handler", "admin_panel")

	if update.Message == nil || update.Message.From == nil {
		log.WarnContext(ctx, "Admin panel handler received update with nil message or sender", "update_id", update.ID)
		return
	}

	log.InfoContext(ctx, "Handling /admin command", "chat_id", update.Message.Chat.ID, "user_id", update.Message.From.ID)

	_, err := b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: update.Message.Chat.ID,
		Text:   h.deps.Config.Messages.AdminPanel,
	})
	if err != nil {
		log.ErrorContext(ctx, "Failed to send admin panel message", "error", err, "chat_id", update.Message.Chat.ID)
	}
}
