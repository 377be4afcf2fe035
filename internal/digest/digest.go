// Package digest renders the daily task digest text. Rendering is a pure
// function of the task list and target date; it performs no I/O.
package digest

import (
	"fmt"
	"strings"
	"time"

	"github.com/edgard/dutybot/internal/database"
)

// weekdayNames maps time.Weekday (Sunday = 0) to localized weekday names.
var weekdayNames = [7]string{
	"воскресенье",
	"понедельник",
	"вторник",
	"среда",
	"четверг",
	"пятница",
	"суббота",
}

const (
	headerToday    = "🎖️ ЗАДАЧИ НА"
	headerTomorrow = "🎖️ ЗАДАЧИ НА ЗАВТРА"
	sectionDaily   = "📅 ЕЖЕДНЕВНЫЕ:"
)

// Render formats the digest for the given date. The tomorrow flag only
// changes the header label; callers pass the actual target date either
// way. Tasks are rendered in the order given, which ListTasks guarantees
// to be ascending by time with ties broken by id.
func Render(tasks []database.Task, date time.Time, tomorrow bool) string {
	var b strings.Builder

	header := headerToday
	if tomorrow {
		header = headerTomorrow
	}

	fmt.Fprintf(&b, "%s %s (%s)\n\n", header,
		date.Format("02.01.2006"),
		strings.ToUpper(weekdayNames[date.Weekday()]))

	b.WriteString(sectionDaily)
	b.WriteByte('\n')

	for _, t := range tasks {
		fmt.Fprintf(&b, "🕐 %s - %s\n", t.Time, t.Task)
	}

	return b.String()
}
