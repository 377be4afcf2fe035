package handlers

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/edgard/dutybot/internal/database"
)

const addUsage = "⚠️ Неверный формат. Пример: /add_daily 07:30 Утренний доклад"

// NewAddTaskHandler returns a handler for the /add_daily command.
func NewAddTaskHandler(deps HandlerDeps) bot.HandlerFunc {
	return addTaskHandler{deps}.Handle
}

type addTaskHandler struct {
	deps HandlerDeps
}

func (h addTaskHandler) Handle(ctx context.Context, b *bot.Bot, update *models.Update) {
	log := h.deps.Logger.With("handler", "add_task")

	if update.Message == nil || update.Message.From == nil {
		log.WarnContext(ctx, "Add task handler received update with nil message or sender", "update_id", update.ID)
		return
	}
	chatID := update.Message.Chat.ID

	args := commandArgs(update.Message.Text)
	if len(args) < 2 {
		reply(ctx, b, log, chatID, addUsage)
		return
	}

	at, err := database.ParseTimeOfDay(args[0])
	if err != nil {
		log.DebugContext(ctx, "Rejected malformed task time", "input", args[0], "error", err)
		reply(ctx, b, log, chatID, "⚠️ Время указывается в формате ЧЧ:ММ, например 07:30.\n"+addUsage)
		return
	}

	// Accept the "/add_daily 07:30 - задача" form by dropping a lone dash.
	descArgs := args[1:]
	if descArgs[0] == "-" {
		descArgs = descArgs[1:]
	}
	description := strings.Join(descArgs, " ")

	id, err := h.deps.Store.AddTask(ctx, at, description)
	switch {
	case errors.Is(err, database.ErrValidation):
		log.DebugContext(ctx, "Rejected invalid task", "error", err)
		reply(ctx, b, log, chatID, "⚠️ Описание задачи не может быть пустым.\n"+addUsage)
		return
	case err != nil:
		log.ErrorContext(ctx, "Failed to add task", "error", err, "chat_id", chatID)
		reply(ctx, b, log, chatID, h.deps.Config.Messages.ErrorGeneralMsg)
		return
	}

	log.InfoContext(ctx, "Task added", "task_id", id, "time", at.String(), "chat_id", chatID)
	reply(ctx, b, log, chatID, fmt.Sprintf("✅ Задача добавлена (id %d): %s - %s", id, at, description))
}
