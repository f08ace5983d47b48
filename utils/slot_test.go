package utils

import (
	"testing"
	"time"
)

func TestBuildSlotRangesSingleDay(t *testing.T) {
	slots, err := BuildSlotRanges("2024-01-01", "2024-01-01", "09:00", "10:00", 30*time.Minute)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(slots) != 2 {
		t.Fatalf("expected 2 slots, got %d", len(slots))
	}

	want := []struct{ start, end string }{
		{"2024-01-01T09:00:00Z", "2024-01-01T09:30:00Z"},
		{"2024-01-01T09:30:00Z", "2024-01-01T10:00:00Z"},
	}
	for i, w := range want {
		if got := slots[i].Start.Format(time.RFC3339); got != w.start {
			t.Errorf("slot %d start = %s, want %s", i, got, w.start)
		}
		if got := slots[i].End.Format(time.RFC3339); got != w.end {
			t.Errorf("slot %d end = %s, want %s", i, got, w.end)
		}
	}
}

func TestBuildSlotRangesMultipleDays(t *testing.T) {
	slots, err := BuildSlotRanges("2024-01-01", "2024-01-03", "10:00", "12:00", 30*time.Minute)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// 4 slots per day across 3 days
	if len(slots) != 12 {
		t.Fatalf("expected 12 slots, got %d", len(slots))
	}
	if slots[4].Start.Day() != 2 {
		t.Errorf("expected fifth slot on day 2, got day %d", slots[4].Start.Day())
	}
}

func TestBuildSlotRangesInvertedWindow(t *testing.T) {
	slots, err := BuildSlotRanges("2024-01-01", "2024-01-01", "10:00", "09:00", 30*time.Minute)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(slots) != 0 {
		t.Fatalf("expected zero slots for inverted window, got %d", len(slots))
	}
}

func TestBuildSlotRangesPartialTrailingSlot(t *testing.T) {
	// 09:00-09:45 fits only one full 30-minute slot
	slots, err := BuildSlotRanges("2024-01-01", "2024-01-01", "09:00", "09:45", 30*time.Minute)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(slots) != 1 {
		t.Fatalf("expected 1 slot, got %d", len(slots))
	}
}

func TestBuildSlotRangesBadInput(t *testing.T) {
	cases := []struct {
		name                                   string
		startDate, endDate, startTime, endTime string
	}{
		{"bad start date", "01-01-2024", "2024-01-01", "09:00", "10:00"},
		{"bad end date", "2024-01-01", "notadate", "09:00", "10:00"},
		{"bad start time", "2024-01-01", "2024-01-01", "9am", "10:00"},
		{"bad end time", "2024-01-01", "2024-01-01", "09:00", "25:61"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := BuildSlotRanges(tc.startDate, tc.endDate, tc.startTime, tc.endTime, 30*time.Minute); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}
