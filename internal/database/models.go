package database

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"time"
)

// Sentinel errors returned by the Store. Callers match them with errors.Is
// to turn storage failures into user-facing messages.
var (
	// ErrValidation indicates malformed input (bad time format, empty
	// description). No state is mutated when it is returned.
	ErrValidation = errors.New("validation error")

	// ErrNotFound indicates that the referenced task does not exist.
	ErrNotFound = errors.New("not found")
)

// TimeOfDay is a wall-clock time (hour and minute) without a date or
// timezone. It is stored as "HH:MM" text, which keeps lexicographic and
// chronological ordering identical.
type TimeOfDay struct {
	Hour   int
	Minute int
}

// ParseTimeOfDay parses an "HH:MM" 24-hour clock value. It returns an
// error wrapping ErrValidation on any malformed input.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	var t TimeOfDay

	parsed, err := time.Parse("15:04", s)
	if err != nil {
		return t, fmt.Errorf("%w: time must be in HH:MM format (e.g. 07:30), got %q", ErrValidation, s)
	}

	t.Hour = parsed.Hour()
	t.Minute = parsed.Minute()
	return t, nil
}

// String returns the canonical "HH:MM" representation.
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// Matches reports whether the given wall-clock instant falls in the same
// hour and minute as t.
func (t TimeOfDay) Matches(now time.Time) bool {
	return now.Hour() == t.Hour && now.Minute() == t.Minute
}

// Value implements driver.Valuer so TimeOfDay columns round-trip as text.
func (t TimeOfDay) Value() (driver.Value, error) {
	return t.String(), nil
}

// Scan implements sql.Scanner.
func (t *TimeOfDay) Scan(src any) error {
	var s string
	switch v := src.(type) {
	case string:
		s = v
	case []byte:
		s = string(v)
	default:
		return fmt.Errorf("cannot scan %T into TimeOfDay", src)
	}

	parsed, err := ParseTimeOfDay(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Task represents a single recurring daily duty task. Tasks are created by
// the admin (or seeded on first run) and never mutated in place; the id is
// assigned by the store and stays stable for the task's lifetime.
type Task struct {
	ID        int64     `db:"id"`
	Time      TimeOfDay `db:"time"`
	Task      string    `db:"task"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}
