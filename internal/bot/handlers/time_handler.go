package handlers

import (
	"context"
	"fmt"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/edgard/dutybot/internal/database"
)

const timeUsage = "⚠️ Неверный формат времени. Пример: /time 17:45"

// NewDeliveryTimeHandler returns a handler for the /time command, which
// changes the daily digest delivery time. The change takes effect on the
// scheduler's next tick.
func NewDeliveryTimeHandler(deps HandlerDeps) bot.HandlerFunc {
	return deliveryTimeHandler{deps}.Handle
}

type deliveryTimeHandler struct {
	deps HandlerDeps
}

func (h deliveryTimeHandler) Handle(ctx context.Context, b *bot.Bot, update *models.Update) {
	log := h.deps.Logger.With("handler", "delivery_time")

	if update.Message == nil || update.Message.From == nil {
		log.WarnContext(ctx, "Delivery time handler received update with nil message or sender", "update_id", update.ID)
		return
	}
	chatID := update.Message.Chat.ID

	args := commandArgs(update.Message.Text)
	if len(args) != 1 {
		reply(ctx, b, log, chatID, timeUsage)
		return
	}

	at, err := database.ParseTimeOfDay(args[0])
	if err != nil {
		log.DebugContext(ctx, "Rejected malformed delivery time", "input", args[0], "error", err)
		reply(ctx, b, log, chatID, "⚠️ Время указывается в формате ЧЧ:ММ, например 17:45.\n"+timeUsage)
		return
	}

	if err := h.deps.Store.SetDeliveryTime(ctx, at); err != nil {
		log.ErrorContext(ctx, "Failed to set delivery time", "time", at.String(), "error", err, "chat_id", chatID)
		reply(ctx, b, log, chatID, h.deps.Config.Messages.ErrorGeneralMsg)
		return
	}

	log.InfoContext(ctx, "Delivery time changed", "time", at.String(), "chat_id", chatID)
	reply(ctx, b, log, chatID, fmt.Sprintf("⏰ Время отправки изменено на %s", at))
}
