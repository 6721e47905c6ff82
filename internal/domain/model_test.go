package domain

import (
	"testing"
	"time"
)

func TestStatusForLane(t *testing.T) {
	tests := map[string]Status{
		LaneInProgress: StatusInProgress,
		LaneDone:       StatusCompleted,
		LaneToDo:       StatusNotStarted,
		"":             StatusNotStarted,
		"backlog":      StatusNotStarted,
	}
	for lane, want := range tests {
		if got := StatusForLane(lane); got != want {
			t.Fatalf("StatusForLane(%q) = %q, want %q", lane, got, want)
		}
	}
}

func TestParseDate(t *testing.T) {
	want := time.Date(2024, 1, 12, 0, 0, 0, 0, time.UTC)

	for _, in := range []string{"2024-01-12", "01/12/2024", " 2024-01-12 "} {
		got, ok := ParseDate(in, time.UTC)
		if !ok || !got.Equal(want) {
			t.Fatalf("ParseDate(%q) = %v, %v", in, got, ok)
		}
	}
	for _, in := range []string{"", "tomorrow", "2024-13-01"} {
		if _, ok := ParseDate(in, time.UTC); ok {
			t.Fatalf("ParseDate(%q) should fail", in)
		}
	}
}

func TestNormalizeDate(t *testing.T) {
	tests := map[string]string{
		"01/12/2024": "2024-01-12",
		"2024-01-12": "2024-01-12",
		"eventually": "eventually",
		"":           "",
	}
	for in, want := range tests {
		if got := NormalizeDate(in); got != want {
			t.Fatalf("NormalizeDate(%q) = %q, want %q", in, got, want)
		}
	}
}
