package database_test

import (
	"context"
	"errors"
	"testing"

	"github.com/edgard/dutybot/internal/database"
)

// newTestStore opens a fresh in-memory SQLite database with migrations
// applied and the default data seeded.
func newTestStore(t *testing.T) database.Store {
	t.Helper()

	db, err := database.NewDB(":memory:")
	if err != nil {
		t.Fatalf("failed to open in-memory database: %v", err)
	}
	t.Cleanup(func() { database.CloseDB(db) })

	store := database.NewStore(db, nil)
	if err := store.EnsureDefaults(context.Background()); err != nil {
		t.Fatalf("failed to seed defaults: %v", err)
	}
	return store
}

func TestEnsureDefaultsSeedsOnce(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := newTestStore(t)

	tasks, err := store.ListTasks(ctx)
	if err != nil {
		t.Fatalf("ListTasks failed: %v", err)
	}
	if len(tasks) != 8 {
		t.Fatalf("expected 8 seeded tasks, got %d", len(tasks))
	}
	if got := tasks[0].Time.String(); got != "07:00" {
		t.Errorf("first task time = %s, want 07:00", got)
	}
	if got := tasks[len(tasks)-1].Time.String(); got != "20:00" {
		t.Errorf("last task time = %s, want 20:00", got)
	}

	// Seeding again must not duplicate anything.
	if err := store.EnsureDefaults(ctx); err != nil {
		t.Fatalf("second EnsureDefaults failed: %v", err)
	}
	tasks, err = store.ListTasks(ctx)
	if err != nil {
		t.Fatalf("ListTasks after reseed failed: %v", err)
	}
	if len(tasks) != 8 {
		t.Errorf("expected 8 tasks after repeated seeding, got %d", len(tasks))
	}

	at, err := store.GetDeliveryTime(ctx)
	if err != nil {
		t.Fatalf("GetDeliveryTime failed: %v", err)
	}
	if at.String() != "17:45" {
		t.Errorf("default delivery time = %s, want 17:45", at)
	}
}

func TestAddListRemoveRoundTrip(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := newTestStore(t)

	at, err := database.ParseTimeOfDay("12:00")
	if err != nil {
		t.Fatalf("ParseTimeOfDay failed: %v", err)
	}

	id, err := store.AddTask(ctx, at, "Обед")
	if err != nil {
		t.Fatalf("AddTask failed: %v", err)
	}
	if id <= 0 {
		t.Fatalf("AddTask returned non-positive id %d", id)
	}

	tasks, err := store.ListTasks(ctx)
	if err != nil {
		t.Fatalf("ListTasks failed: %v", err)
	}
	if len(tasks) != 9 {
		t.Fatalf("expected 9 tasks after add, got %d", len(tasks))
	}

	// The new 12:00 task slots between the 09:00 and 16:00 seeds.
	idx := -1
	for i, task := range tasks {
		if task.ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		t.Fatalf("added task %d not found in list", id)
	}
	if tasks[idx].Task != "Обед" || tasks[idx].Time.String() != "12:00" {
		t.Errorf("added task = %q at %s, want %q at 12:00", tasks[idx].Task, tasks[idx].Time, "Обед")
	}
	if idx == 0 || idx == len(tasks)-1 {
		t.Fatalf("added task unexpectedly at list edge (index %d)", idx)
	}
	if tasks[idx-1].Time.String() != "09:00" || tasks[idx+1].Time.String() != "16:00" {
		t.Errorf("added task neighbors = %s and %s, want 09:00 and 16:00",
			tasks[idx-1].Time, tasks[idx+1].Time)
	}

	if err := store.RemoveTask(ctx, id); err != nil {
		t.Fatalf("RemoveTask failed: %v", err)
	}
	tasks, err = store.ListTasks(ctx)
	if err != nil {
		t.Fatalf("ListTasks after remove failed: %v", err)
	}
	if len(tasks) != 8 {
		t.Errorf("expected 8 tasks after remove, got %d", len(tasks))
	}

	// Removing the same id twice reports not found.
	err = store.RemoveTask(ctx, id)
	if !errors.Is(err, database.ErrNotFound) {
		t.Errorf("second RemoveTask error = %v, want ErrNotFound", err)
	}
}

func TestAddTaskRejectsEmptyDescription(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := newTestStore(t)

	at := database.TimeOfDay{Hour: 10, Minute: 0}

	for _, desc := range []string{"", "   ", "\t\n"} {
		if _, err := store.AddTask(ctx, at, desc); !errors.Is(err, database.ErrValidation) {
			t.Errorf("AddTask(%q) error = %v, want ErrValidation", desc, err)
		}
	}

	tasks, err := store.ListTasks(ctx)
	if err != nil {
		t.Fatalf("ListTasks failed: %v", err)
	}
	if len(tasks) != 8 {
		t.Errorf("rejected adds must not mutate state: got %d tasks, want 8", len(tasks))
	}
}

func TestListTasksOrdering(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := newTestStore(t)

	// Insert out of chronological order, including a duplicate time.
	ids := make([]int64, 0, 3)
	for _, in := range []struct {
		at   string
		desc string
	}{
		{"06:00", "поздняя вставка, раннее время"},
		{"07:00", "дубль времени"},
		{"05:30", "самое раннее"},
	} {
		at, err := database.ParseTimeOfDay(in.at)
		if err != nil {
			t.Fatalf("ParseTimeOfDay(%q) failed: %v", in.at, err)
		}
		id, err := store.AddTask(ctx, at, in.desc)
		if err != nil {
			t.Fatalf("AddTask(%q) failed: %v", in.at, err)
		}
		ids = append(ids, id)
	}

	tasks, err := store.ListTasks(ctx)
	if err != nil {
		t.Fatalf("ListTasks failed: %v", err)
	}

	for i := 1; i < len(tasks); i++ {
		prev, cur := tasks[i-1], tasks[i]
		if prev.Time.String() > cur.Time.String() {
			t.Fatalf("tasks out of time order at index %d: %s after %s", i, cur.Time, prev.Time)
		}
		if prev.Time == cur.Time && prev.ID > cur.ID {
			t.Fatalf("tie at %s not broken by id: %d after %d", cur.Time, cur.ID, prev.ID)
		}
	}

	// The duplicate 07:00 task has a higher id than the seed, so it sorts
	// directly after it.
	seedIdx, dupIdx := -1, -1
	for i, task := range tasks {
		if task.Time.String() != "07:00" {
			continue
		}
		if task.ID == ids[1] {
			dupIdx = i
		} else {
			seedIdx = i
		}
	}
	if seedIdx == -1 || dupIdx == -1 {
		t.Fatalf("expected two tasks at 07:00, found seed=%d dup=%d", seedIdx, dupIdx)
	}
	if dupIdx != seedIdx+1 {
		t.Errorf("duplicate-time task at index %d, want %d (directly after seed)", dupIdx, seedIdx+1)
	}
}

func TestDeliveryTimeSetGet(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := newTestStore(t)

	at, err := database.ParseTimeOfDay("21:15")
	if err != nil {
		t.Fatalf("ParseTimeOfDay failed: %v", err)
	}
	if err := store.SetDeliveryTime(ctx, at); err != nil {
		t.Fatalf("SetDeliveryTime failed: %v", err)
	}

	got, err := store.GetDeliveryTime(ctx)
	if err != nil {
		t.Fatalf("GetDeliveryTime failed: %v", err)
	}
	if got != at {
		t.Errorf("GetDeliveryTime = %s, want %s", got, at)
	}
}
