package handlers

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// NewViewAllHandler returns a handler for the /view_all command, which
// lists every task with its id so tasks can be deleted by id.
func NewViewAllHandler(deps HandlerDeps) bot.HandlerFunc {
	return viewAllHandler{deps}.Handle
}

type viewAllHandler struct {
	deps HandlerDeps
}

func (h viewAllHandler) Handle(ctx context.Context, b *bot.Bot, update *models.Update) {
	log := h.deps.Logger.With("handler", "view_all")

	if update.Message == nil || update.Message.From == nil {
		log.WarnContext(ctx, "View all handler received update with nil message or sender", "update_id", update.ID)
		return
	}
	chatID := update.Message.Chat.ID

	tasks, err := h.deps.Store.ListTasks(ctx)
	if err != nil {
		log.ErrorContext(ctx, "Failed to list tasks", "error", err, "chat_id", chatID)
		reply(ctx, b, log, chatID, h.deps.Config.Messages.ErrorGeneralMsg)
		return
	}

	if len(tasks) == 0 {
		reply(ctx, b, log, chatID, "📋 Список задач пуст. Добавьте задачу: /add_daily ЧЧ:ММ описание")
		return
	}

	delivery, err := h.deps.Store.GetDeliveryTime(ctx)
	if err != nil {
		log.ErrorContext(ctx, "Failed to get delivery time", "error", err, "chat_id", chatID)
		reply(ctx, b, log, chatID, h.deps.Config.Messages.ErrorGeneralMsg)
		return
	}

	var sb strings.Builder
	sb.WriteString("📋 ВСЕ ЗАДАЧИ:\n\n")
	for _, t := range tasks {
		fmt.Fprintf(&sb, "%d. 🕐 %s - %s\n", t.ID, t.Time, t.Task)
	}
	fmt.Fprintf(&sb, "\n⏰ Время отправки: %s", delivery)

	log.InfoContext(ctx, "Listed tasks", "count", len(tasks), "chat_id", chatID)
	reply(ctx, b, log, chatID, sb.String())
}
