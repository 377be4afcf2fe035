package handlers

import (
	"context"
	"log/slog"

	"github.com/edgard/dutybot/internal/config"
	"github.com/edgard/dutybot/internal/database"
)

// DigestSender triggers an immediate digest delivery, bypassing the
// once-per-day gate. Implemented by the delivery scheduler.
type DigestSender interface {
	TriggerNow(ctx context.Context) error
}

// HandlerDeps provides dependencies for Telegram command handlers.
type HandlerDeps struct {
	Logger   *slog.Logger
	Config   *config.Config
	Store    database.Store
	Delivery DigestSender
}
