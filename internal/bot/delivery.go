package bot

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/edgard/dutybot/internal/database"
	"github.com/edgard/dutybot/internal/digest"
)

// Notifier delivers rendered digest text to the admin chat.
type Notifier interface {
	Send(ctx context.Context, text string) error
}

// DeliveryLoop is the time-driven scheduler that sends the daily digest.
// It polls the wall clock at a coarse interval and fires at most once per
// calendar day, at the delivery time configured in the store. There is no
// catch-up after downtime: a missed window is skipped until the next day.
type DeliveryLoop struct {
	logger   *slog.Logger
	store    database.Store
	notifier Notifier
	interval time.Duration
	now      func() time.Time

	mu        sync.Mutex
	lastFired string // civil date (YYYY-MM-DD) of the last automatic delivery
}

// NewDeliveryLoop creates a delivery scheduler polling at the given interval.
func NewDeliveryLoop(logger *slog.Logger, store database.Store, notifier Notifier, interval time.Duration) *DeliveryLoop {
	if logger == nil {
		logger = slog.Default()
	}
	if interval <= 0 {
		interval = time.Minute
	}
	return &DeliveryLoop{
		logger:   logger.With("component", "delivery_loop"),
		store:    store,
		notifier: notifier,
		interval: interval,
		now:      time.Now,
	}
}

// shouldFire is the pure scheduling decision: fire when the wall clock
// matches the configured delivery time (hour and minute) and no automatic
// delivery has happened yet on the current calendar date. The date
// comparison doubles as the midnight reset back to idle.
func shouldFire(now time.Time, at database.TimeOfDay, lastFired string) bool {
	return at.Matches(now) && civilDate(now) != lastFired
}

func civilDate(t time.Time) string {
	return t.Format("2006-01-02")
}

// Run starts the polling loop and blocks until ctx is cancelled. A failed
// tick is logged and the loop continues to the next interval.
func (d *DeliveryLoop) Run(ctx context.Context) error {
	d.logger.Info("Delivery loop started", "check_interval", d.interval)

	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			d.logger.Info("Delivery loop stopped")
			return ctx.Err()
		case <-ticker.C:
			d.tick(ctx)
		}
	}
}

// tick performs one scheduling check against the current wall clock.
func (d *DeliveryLoop) tick(ctx context.Context) {
	now := d.now()

	at, err := d.store.GetDeliveryTime(ctx)
	if err != nil {
		d.logger.ErrorContext(ctx, "Failed to read delivery time, skipping tick", "error", err)
		return
	}

	d.mu.Lock()
	lastFired := d.lastFired
	d.mu.Unlock()

	if !shouldFire(now, at, lastFired) {
		return
	}

	d.logger.InfoContext(ctx, "Delivery time reached, sending daily digest", "time", at.String())

	if err := d.deliver(ctx, now); err != nil {
		// Send failures leave the latch untouched: nothing was delivered,
		// so the day stays idle and no phantom "sent" state is recorded.
		d.logger.ErrorContext(ctx, "Daily digest delivery failed", "error", err)
		return
	}

	d.mu.Lock()
	d.lastFired = civilDate(now)
	d.mu.Unlock()

	d.logger.InfoContext(ctx, "Daily digest delivered", "date", civilDate(now))
}

// TriggerNow renders and sends the digest immediately, bypassing the
// once-per-day gate. It never touches the automatic delivery latch, so a
// manual test send does not suppress (or cause) that day's automatic send.
func (d *DeliveryLoop) TriggerNow(ctx context.Context) error {
	d.logger.InfoContext(ctx, "Manual digest delivery triggered")
	return d.deliver(ctx, d.now())
}

// deliver renders the digest for the given date and hands it to the notifier.
func (d *DeliveryLoop) deliver(ctx context.Context, date time.Time) error {
	tasks, err := d.store.ListTasks(ctx)
	if err != nil {
		return fmt.Errorf("failed to load tasks for digest: %w", err)
	}

	text := digest.Render(tasks, date, false)

	if err := d.notifier.Send(ctx, text); err != nil {
		return fmt.Errorf("failed to send digest: %w", err)
	}
	return nil
}
