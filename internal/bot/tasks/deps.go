package tasks

import (
	"log/slog"

	"github.com/edgard/dutybot/internal/config"
	"github.com/edgard/dutybot/internal/database"
)

// TaskDeps provides dependencies for background scheduled tasks.
type TaskDeps struct {
	Logger *slog.Logger
	Config *config.Config
	Store  database.Store
}
