package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
)

// settingSendTime is the settings key holding the daily delivery time.
const settingSendTime = "send_time"

// DefaultDeliveryTime is the delivery time seeded on first run.
var DefaultDeliveryTime = TimeOfDay{Hour: 17, Minute: 45}

// defaultTasks is the task set seeded into an empty database on first run.
var defaultTasks = []struct {
	Time TimeOfDay
	Task string
}{
	{TimeOfDay{7, 0}, "Уточнение задач оперативному составу штаба полка"},
	{TimeOfDay{7, 30}, "Получение задач от командира полка"},
	{TimeOfDay{9, 0}, "Отработка текущих задач"},
	{TimeOfDay{16, 0}, "Работа со входящей документацией"},
	{TimeOfDay{17, 50}, "Прием доклада от начальников служб, начальников отделений"},
	{TimeOfDay{18, 0}, "Видеоконференция НШ 18ОА"},
	{TimeOfDay{19, 20}, "Осуществление смены дежурных по КП, ГОП, проверка заданий стоящих на контроле"},
	{TimeOfDay{20, 0}, "Заслушивание командиров (НШ) подразделений о выполненных мероприятиях, готовность к ночным действиям"},
}

// Store defines the interface for task registry operations.
// Methods accept context.Context for cancellation and timeouts.
type Store interface {
	// Ping checks the database connection.
	Ping(ctx context.Context) error

	// EnsureDefaults seeds the default task list and delivery time if the
	// database is empty. Safe to call on every process start.
	EnsureDefaults(ctx context.Context) error

	// AddTask inserts a new task and returns its assigned id.
	// Returns an error wrapping ErrValidation if the description is empty.
	AddTask(ctx context.Context, at TimeOfDay, description string) (int64, error)

	// RemoveTask permanently deletes a task by id.
	// Returns an error wrapping ErrNotFound if no such task exists.
	RemoveTask(ctx context.Context, id int64) error

	// ListTasks returns all tasks ordered by time ascending, ties broken
	// by id ascending.
	ListTasks(ctx context.Context) ([]Task, error)

	// GetDeliveryTime returns the configured daily delivery time.
	GetDeliveryTime(ctx context.Context) (TimeOfDay, error)

	// SetDeliveryTime replaces the configured daily delivery time.
	SetDeliveryTime(ctx context.Context, at TimeOfDay) error

	// RunSQLMaintenance performs database maintenance tasks like VACUUM.
	RunSQLMaintenance(ctx context.Context) error
}

// sqlxStore provides an implementation of the Store interface using sqlx.
type sqlxStore struct {
	db     *sqlx.DB
	logger *slog.Logger
}

// NewStore creates a new Store implementation backed by sqlx.
// It requires a connected sqlx.DB instance and a logger.
func NewStore(db *sqlx.DB, logger *slog.Logger) Store {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &sqlxStore{
		db:     db,
		logger: logger.With("component", "store"),
	}
}

// Ping checks the database connection.
func (s *sqlxStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// EnsureDefaults seeds the default task list and delivery time if missing.
// The whole seed runs in one transaction so a crash mid-seed cannot leave
// a partial task list behind.
func (s *sqlxStore) EnsureDefaults(ctx context.Context) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to begin transaction for default seeding", "error", err)
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if tx != nil {
			if rollbackErr := tx.Rollback(); rollbackErr != nil {
				if !errors.Is(rollbackErr, sql.ErrTxDone) {
					s.logger.WarnContext(ctx, "Error rolling back transaction", "error", rollbackErr)
				}
			}
		}
	}()

	var count int
	if err := tx.GetContext(ctx, &count, `SELECT COUNT(*) FROM daily_tasks`); err != nil {
		s.logger.ErrorContext(ctx, "Failed to count tasks during default seeding", "error", err)
		return fmt.Errorf("failed to count tasks: %w", err)
	}

	seeded := 0
	if count == 0 {
		now := time.Now().UTC()
		for _, d := range defaultTasks {
			_, err := tx.ExecContext(ctx,
				`INSERT INTO daily_tasks (time, task, created_at, updated_at) VALUES (?, ?, ?, ?)`,
				d.Time, d.Task, now, now)
			if err != nil {
				s.logger.ErrorContext(ctx, "Failed to seed default task", "time", d.Time.String(), "error", err)
				return fmt.Errorf("failed to seed default task at %s: %w", d.Time, err)
			}
			seeded++
		}
	}

	// INSERT OR IGNORE keeps an admin-changed delivery time across restarts.
	_, err = tx.ExecContext(ctx,
		`INSERT OR IGNORE INTO settings (key, value, updated_at) VALUES (?, ?, ?)`,
		settingSendTime, DefaultDeliveryTime.String(), time.Now().UTC())
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to seed default delivery time", "error", err)
		return fmt.Errorf("failed to seed default delivery time: %w", err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.ErrorContext(ctx, "Failed to commit default seeding transaction", "error", err)
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	tx = nil

	if seeded > 0 {
		s.logger.InfoContext(ctx, "Seeded default task list", "count", seeded)
	} else {
		s.logger.DebugContext(ctx, "Task list already present, seeding skipped", "count", count)
	}
	return nil
}

// AddTask inserts a new task and returns its assigned id.
func (s *sqlxStore) AddTask(ctx context.Context, at TimeOfDay, description string) (int64, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return 0, fmt.Errorf("%w: task description must not be empty", ErrValidation)
	}

	now := time.Now().UTC()

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to begin transaction for adding task", "error", err)
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if tx != nil {
			if rollbackErr := tx.Rollback(); rollbackErr != nil {
				if !errors.Is(rollbackErr, sql.ErrTxDone) {
					s.logger.WarnContext(ctx, "Error rolling back transaction", "error", rollbackErr)
				}
			}
		}
	}()

	result, err := tx.ExecContext(ctx,
		`INSERT INTO daily_tasks (time, task, created_at, updated_at) VALUES (?, ?, ?, ?)`,
		at, description, now, now)
	if err != nil {
		s.logger.ErrorContext(ctx, "Error adding task", "time", at.String(), "error", err)
		return 0, fmt.Errorf("failed to add task at %s: %w", at, err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		s.logger.ErrorContext(ctx, "Could not retrieve last insert ID after adding task", "error", err)
		return 0, fmt.Errorf("failed to get id of added task: %w", err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.ErrorContext(ctx, "Failed to commit transaction", "error", err)
		return 0, fmt.Errorf("failed to commit transaction: %w", err)
	}
	tx = nil

	s.logger.DebugContext(ctx, "Task added successfully", "task_id", id, "time", at.String())
	return id, nil
}

// RemoveTask permanently deletes a task by id.
func (s *sqlxStore) RemoveTask(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM daily_tasks WHERE id = ?`, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "Error removing task", "task_id", id, "error", err)
		return fmt.Errorf("failed to remove task %d: %w", id, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		s.logger.ErrorContext(ctx, "Could not get affected row count when removing task", "task_id", id, "error", err)
		return fmt.Errorf("failed to confirm removal of task %d: %w", id, err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: no task with id %d", ErrNotFound, id)
	}

	s.logger.DebugContext(ctx, "Task removed successfully", "task_id", id)
	return nil
}

// ListTasks returns all tasks ordered by time, then id. The "HH:MM" text
// encoding makes the time ordering a plain lexicographic ORDER BY.
func (s *sqlxStore) ListTasks(ctx context.Context) ([]Task, error) {
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	var tasks []Task
	query := `
        SELECT id, time, task, created_at, updated_at
        FROM daily_tasks
        ORDER BY time ASC, id ASC;
    `

	err := s.db.SelectContext(ctx, &tasks, query)
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		s.logger.WarnContext(ctx, "Context timeout or cancellation while listing tasks", "error", err)
		return nil, err
	}
	if err != nil {
		s.logger.ErrorContext(ctx, "Error listing tasks", "error", err)
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	s.logger.DebugContext(ctx, "Listed tasks successfully", "count", len(tasks))
	return tasks, nil
}

// GetDeliveryTime returns the configured daily delivery time.
func (s *sqlxStore) GetDeliveryTime(ctx context.Context) (TimeOfDay, error) {
	var at TimeOfDay
	err := s.db.GetContext(ctx, &at, `SELECT value FROM settings WHERE key = ?`, settingSendTime)

	switch {
	case errors.Is(err, sql.ErrNoRows):
		// EnsureDefaults seeds this on startup, so a missing row means the
		// store was never initialized.
		return at, fmt.Errorf("%w: delivery time is not configured", ErrNotFound)
	case err != nil:
		s.logger.ErrorContext(ctx, "Error getting delivery time", "error", err)
		return at, fmt.Errorf("failed to get delivery time: %w", err)
	}

	return at, nil
}

// SetDeliveryTime replaces the configured daily delivery time.
func (s *sqlxStore) SetDeliveryTime(ctx context.Context, at TimeOfDay) error {
	query := `
        INSERT INTO settings (key, value, updated_at) VALUES (?, ?, ?)
        ON CONFLICT (key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at;
    `
	_, err := s.db.ExecContext(ctx, query, settingSendTime, at.String(), time.Now().UTC())
	if err != nil {
		s.logger.ErrorContext(ctx, "Error setting delivery time", "time", at.String(), "error", err)
		return fmt.Errorf("failed to set delivery time to %s: %w", at, err)
	}

	s.logger.InfoContext(ctx, "Delivery time updated", "time", at.String())
	return nil
}

// RunSQLMaintenance executes a VACUUM command on the SQLite database.
func (s *sqlxStore) RunSQLMaintenance(ctx context.Context) error {
	if ctx.Err() != nil {
		s.logger.WarnContext(ctx, "Context cancelled or timed out before starting VACUUM", "error", ctx.Err())
		return ctx.Err()
	}

	s.logger.InfoContext(ctx, "Starting database maintenance (VACUUM)...")

	// VACUUM must run outside a transaction in SQLite.
	_, err := s.db.ExecContext(ctx, "VACUUM;")

	switch {
	case errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled):
		s.logger.WarnContext(ctx, "VACUUM operation timed out or was cancelled", "error", err)
		return fmt.Errorf("database maintenance (VACUUM) timed out: %w", err)
	case err != nil:
		s.logger.ErrorContext(ctx, "Database maintenance (VACUUM) failed", "error", err)
		return fmt.Errorf("failed to execute VACUUM: %w", err)
	}

	s.logger.InfoContext(ctx, "Database maintenance (VACUUM) completed successfully")
	return nil
}
