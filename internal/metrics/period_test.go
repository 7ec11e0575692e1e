package metrics

import (
	"testing"
	"time"
)

func day(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		t.Fatalf("parse date %q: %v", s, err)
	}
	return d
}

func TestPeriodBounds_TodayAfterStartDay(t *testing.T) {
	start, end := PeriodBounds(5, day(t, "2026-08-20"))
	if got := DateKey(start); got != "2026-08-05" {
		t.Errorf("start = %s, want 2026-08-05", got)
	}
	if got := DateKey(end); got != "2026-09-05" {
		t.Errorf("end = %s, want 2026-09-05", got)
	}
}

func TestPeriodBounds_TodayBeforeStartDay(t *testing.T) {
	start, end := PeriodBounds(15, day(t, "2026-08-03"))
	if got := DateKey(start); got != "2026-07-15" {
		t.Errorf("start = %s, want 2026-07-15", got)
	}
	if got := DateKey(end); got != "2026-08-15" {
		t.Errorf("end = %s, want 2026-08-15", got)
	}
}

func TestPeriodBounds_OutOfRangeDayClampsToOne(t *testing.T) {
	start, _ := PeriodBounds(31, day(t, "2026-08-20"))
	if got := DateKey(start); got != "2026-08-01" {
		t.Fatalf("start = %s, want 2026-08-01", got)
	}
}

func TestPreviousPeriod_AbutsCurrent(t *testing.T) {
	prevStart, prevEnd := PreviousPeriod(5, day(t, "2026-08-20"))
	curStart, _ := PeriodBounds(5, day(t, "2026-08-20"))

	if !prevEnd.Equal(curStart) {
		t.Fatalf("previous end %s != current start %s", DateKey(prevEnd), DateKey(curStart))
	}
	if got := DateKey(prevStart); got != "2026-07-05" {
		t.Fatalf("previous start = %s, want 2026-07-05", got)
	}
}

func TestMonthKey(t *testing.T) {
	if got := MonthKey(day(t, "2026-08-03")); got != "2026-08" {
		t.Fatalf("MonthKey = %s, want 2026-08", got)
	}
}
