package database_test

import (
	"errors"
	"testing"
	"time"

	"github.com/edgard/dutybot/internal/database"
)

func TestParseTimeOfDay(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "morning", input: "07:30", want: "07:30"},
		{name: "midnight", input: "00:00", want: "00:00"},
		{name: "last minute of day", input: "23:59", want: "23:59"},
		{name: "hour out of range", input: "25:99", wantErr: true},
		{name: "minute out of range", input: "12:60", wantErr: true},
		{name: "not a time", input: "abc", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "missing minutes", input: "12", wantErr: true},
		{name: "trailing garbage", input: "12:00x", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := database.ParseTimeOfDay(tc.input)
			if (err != nil) != tc.wantErr {
				t.Fatalf("ParseTimeOfDay(%q) error = %v, wantErr %v", tc.input, err, tc.wantErr)
			}
			if tc.wantErr {
				if !errors.Is(err, database.ErrValidation) {
					t.Errorf("ParseTimeOfDay(%q) error = %v, want ErrValidation", tc.input, err)
				}
				return
			}
			if got.String() != tc.want {
				t.Errorf("ParseTimeOfDay(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestTimeOfDayMatches(t *testing.T) {
	t.Parallel()

	at := database.TimeOfDay{Hour: 17, Minute: 45}

	match := time.Date(2025, 9, 1, 17, 45, 33, 0, time.UTC)
	if !at.Matches(match) {
		t.Errorf("expected %s to match %v", at, match)
	}

	miss := time.Date(2025, 9, 1, 17, 46, 0, 0, time.UTC)
	if at.Matches(miss) {
		t.Errorf("expected %s not to match %v", at, miss)
	}
}

func TestTimeOfDayScanRoundTrip(t *testing.T) {
	t.Parallel()

	var at database.TimeOfDay
	if err := at.Scan("09:05"); err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	if at.Hour != 9 || at.Minute != 5 {
		t.Errorf("Scan produced %+v, want 09:05", at)
	}

	v, err := at.Value()
	if err != nil {
		t.Fatalf("Value failed: %v", err)
	}
	if v != "09:05" {
		t.Errorf("Value() = %v, want %q", v, "09:05")
	}
}
