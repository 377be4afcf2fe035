package handlers

import (
	"context"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/edgard/dutybot/internal/digest"
)

// NewDigestPreviewHandler returns a handler for the today/tomorrow reply
// keyboard buttons. It renders the digest for the requested date and sends
// it back to the chat without involving the delivery scheduler.
func NewDigestPreviewHandler(deps HandlerDeps, tomorrow bool) bot.HandlerFunc {
	return digestPreviewHandler{deps: deps, tomorrow: tomorrow}.Handle
}

type digestPreviewHandler struct {
	deps     HandlerDeps
	tomorrow bool
}

func (h digestPreviewHandler) Handle(ctx context.Context, b *bot.Bot, update *models.Update) {
	log := h.deps.Logger.With("handler", "digest_preview")

	if update.Message == nil || update.Message.From == nil {
		return
	}
	chatID := update.Message.Chat.ID

	date := time.Now()
	if h.tomorrow {
		date = date.AddDate(0, 0, 1)
	}

	tasks, err := h.deps.Store.ListTasks(ctx)
	if err != nil {
		log.ErrorContext(ctx, "Failed to list tasks for digest preview", "error", err, "chat_id", chatID)
		reply(ctx, b, log, chatID, h.deps.Config.Messages.ErrorGeneralMsg)
		return
	}

	log.InfoContext(ctx, "Sending digest preview", "tomorrow", h.tomorrow, "chat_id", chatID)
	reply(ctx, b, log, chatID, digest.Render(tasks, date, h.tomorrow))
}
