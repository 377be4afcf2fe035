package handlers

import (
	"reflect"
	"testing"
)

func TestCommandArgs(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name  string
		input string
		want  []string
	}{
		{name: "no args", input: "/view_all", want: []string{}},
		{name: "single arg", input: "/delete_daily 3", want: []string{"3"}},
		{name: "time and description", input: "/add_daily 07:30 Утренний доклад", want: []string{"07:30", "Утренний", "доклад"}},
		{name: "dash separator", input: "/add_daily 07:30 - Утренний доклад", want: []string{"07:30", "-", "Утренний", "доклад"}},
		{name: "extra whitespace", input: "  /time   17:45  ", want: []string{"17:45"}},
		{name: "empty", input: "", want: nil},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := commandArgs(tc.input)
			if len(got) == 0 && len(tc.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("commandArgs(%q) = %v, want %v", tc.input, got, tc.want)
			}
		})
	}
}
