package handlers

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/edgard/dutybot/internal/database"
)

const deleteUsage = "⚠️ Укажите id задачи. Пример: /delete_daily 3"

// NewDeleteTaskHandler returns a handler for the /delete_daily command.
func NewDeleteTaskHandler(deps HandlerDeps) bot.HandlerFunc {
	return deleteTaskHandler{deps}.Handle
}

type deleteTaskHandler struct {
	deps HandlerDeps
}

func (h deleteTaskHandler) Handle(ctx context.Context, b *bot.Bot, update *models.Update) {
	log := h.deps.Logger.With("handler", "delete_task")

	if update.Message == nil || update.Message.From == nil {
		log.WarnContext(ctx, "Delete task handler received update with nil message or sender", "update_id", update.ID)
		return
	}
	chatID := update.Message.Chat.ID

	args := commandArgs(update.Message.Text)
	if len(args) != 1 {
		reply(ctx, b, log, chatID, deleteUsage)
		return
	}

	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		log.DebugContext(ctx, "Rejected malformed task id", "input", args[0])
		reply(ctx, b, log, chatID, "⚠️ id должен быть числом.\n"+deleteUsage)
		return
	}

	err = h.deps.Store.RemoveTask(ctx, id)
	switch {
	case errors.Is(err, database.ErrNotFound):
		log.DebugContext(ctx, "Task to delete not found", "task_id", id)
		reply(ctx, b, log, chatID, fmt.Sprintf("⚠️ Задача с id %d не найдена. /view_all покажет все задачи.", id))
		return
	case err != nil:
		log.ErrorContext(ctx, "Failed to remove task", "task_id", id, "error", err, "chat_id", chatID)
		reply(ctx, b, log, chatID, h.deps.Config.Messages.ErrorGeneralMsg)
		return
	}

	log.InfoContext(ctx, "Task removed", "task_id", id, "chat_id", chatID)
	reply(ctx, b, log, chatID, fmt.Sprintf("🗑 Задача %d удалена", id))
}
