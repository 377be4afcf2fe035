package digest_test

import (
	"strings"
	"testing"
	"time"

	"github.com/edgard/dutybot/internal/database"
	"github.com/edgard/dutybot/internal/digest"
)

func testTasks() []database.Task {
	return []database.Task{
		{ID: 1, Time: database.TimeOfDay{Hour: 7, Minute: 0}, Task: "Утренний доклад"},
		{ID: 2, Time: database.TimeOfDay{Hour: 16, Minute: 0}, Task: "Работа с документацией"},
	}
}

func TestRenderHeaderAndBody(t *testing.T) {
	t.Parallel()

	// 2025-09-01 is a Monday.
	date := time.Date(2025, 9, 1, 12, 0, 0, 0, time.UTC)
	got := digest.Render(testTasks(), date, false)

	want := "🎖️ ЗАДАЧИ НА 01.09.2025 (ПОНЕДЕЛЬНИК)\n\n" +
		"📅 ЕЖЕДНЕВНЫЕ:\n" +
		"🕐 07:00 - Утренний доклад\n" +
		"🕐 16:00 - Работа с документацией\n"

	if got != want {
		t.Errorf("Render output mismatch:\ngot:  %q\nwant: %q", got, want)
	}
}

func TestRenderTomorrowLabel(t *testing.T) {
	t.Parallel()

	date := time.Date(2025, 9, 2, 0, 0, 0, 0, time.UTC)
	today := digest.Render(testTasks(), date, false)
	tomorrow := digest.Render(testTasks(), date, true)

	if !strings.HasPrefix(tomorrow, "🎖️ ЗАДАЧИ НА ЗАВТРА 02.09.2025 (ВТОРНИК)") {
		t.Errorf("tomorrow header missing label: %q", tomorrow)
	}

	// Only the header label differs between the two renderings.
	todayBody := strings.SplitN(today, "\n", 2)[1]
	tomorrowBody := strings.SplitN(tomorrow, "\n", 2)[1]
	if todayBody != tomorrowBody {
		t.Errorf("bodies differ:\ntoday:    %q\ntomorrow: %q", todayBody, tomorrowBody)
	}
}

func TestRenderWeekdayNames(t *testing.T) {
	t.Parallel()

	// A full week starting on a Sunday.
	testCases := []struct {
		day  int
		want string
	}{
		{7, "ВОСКРЕСЕНЬЕ"},
		{8, "ПОНЕДЕЛЬНИК"},
		{9, "ВТОРНИК"},
		{10, "СРЕДА"},
		{11, "ЧЕТВЕРГ"},
		{12, "ПЯТНИЦА"},
		{13, "СУББОТА"},
	}

	for _, tc := range testCases {
		t.Run(tc.want, func(t *testing.T) {
			t.Parallel()

			date := time.Date(2025, 9, tc.day, 0, 0, 0, 0, time.UTC)
			got := digest.Render(nil, date, false)
			if !strings.Contains(got, "("+tc.want+")") {
				t.Errorf("Render for %s missing weekday %q: %q", date.Format("2006-01-02"), tc.want, got)
			}
		})
	}
}

func TestRenderEmptyTaskList(t *testing.T) {
	t.Parallel()

	date := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)
	got := digest.Render(nil, date, false)

	if got == "" {
		t.Fatal("empty task list must still render a header")
	}
	if !strings.Contains(got, "01.09.2025") {
		t.Errorf("header missing date: %q", got)
	}
	if !strings.HasSuffix(got, "📅 ЕЖЕДНЕВНЫЕ:\n") {
		t.Errorf("empty list should end with the section title: %q", got)
	}
}

func TestRenderDeterministic(t *testing.T) {
	t.Parallel()

	date := time.Date(2025, 9, 5, 23, 59, 0, 0, time.UTC)
	first := digest.Render(testTasks(), date, false)
	for range 10 {
		if got := digest.Render(testTasks(), date, false); got != first {
			t.Fatalf("Render is not deterministic:\nfirst: %q\ngot:   %q", first, got)
		}
	}
}
