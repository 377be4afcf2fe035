package handlers

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// NewTestSendHandler returns a handler for the /test command, which sends
// today's digest immediately without affecting the automatic daily send.
func NewTestSendHandler(deps HandlerDeps) bot.HandlerFunc {
	return testSendHandler{deps}.Handle
}

type testSendHandler struct {
	deps HandlerDeps
}

func (h testSendHandler) Handle(ctx context.Context, b *bot.Bot, update *models.Update) {
	log := h.deps.Logger.With("handler", "test_send")

	if update.Message == nil || update.Message.From == nil {
		log.WarnContext(ctx, "Test send handler received update with nil message or sender", "update_id", update.ID)
		return
	}
	chatID := update.Message.Chat.ID

	log.InfoContext(ctx, "Admin requested test digest send", "chat_id", chatID, "user_id", update.Message.From.ID)

	if err := h.deps.Delivery.TriggerNow(ctx); err != nil {
		log.ErrorContext(ctx, "Test digest send failed", "error", err, "chat_id", chatID)
		reply(ctx, b, log, chatID, h.deps.Config.Messages.ErrorGeneralMsg)
		return
	}

	reply(ctx, b, log, chatID, "✅ Тестовая отправка выполнена")
}
