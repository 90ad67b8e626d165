package schedule

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestMonthlyDueDatesMidMonth(t *testing.T) {
	got := MonthlyDueDates(date(2024, time.January, 15), 3)
	want := []time.Time{
		date(2024, time.January, 15),
		date(2024, time.February, 15),
		date(2024, time.March, 15),
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d dates got %d", len(want), len(got))
	}
	for i := range want {
		if !got[i].Equal(want[i]) {
			t.Fatalf("date %d: expected %v got %v", i, want[i], got[i])
		}
	}
}

func TestMonthlyDueDatesYearRollover(t *testing.T) {
	got := MonthlyDueDates(date(2024, time.November, 30), 3)
	want := []time.Time{
		date(2024, time.November, 30),
		date(2024, time.December, 30),
		date(2025, time.January, 30),
	}
	for i := range want {
		if !got[i].Equal(want[i]) {
			t.Fatalf("date %d: expected %v got %v", i, want[i], got[i])
		}
	}
}

func TestNextMonthDecember(t *testing.T) {
	got := NextMonth(date(2023, time.December, 5))
	if got.Year() != 2024 || got.Month() != time.January || got.Day() != 5 {
		t.Fatalf("expected 2024-01-05 got %v", got)
	}
}

func TestMonthlyDueDatesZeroCount(t *testing.T) {
	if got := MonthlyDueDates(date(2024, time.January, 1), 0); len(got) != 0 {
		t.Fatalf("expected empty slice got %v", got)
	}
}
