package metrics

import "time"

// PeriodBounds returns the active budget period containing today, for a user
// whose period begins on monthStartDay (1-28). The end bound is exclusive.
func PeriodBounds(monthStartDay int, today time.Time) (start, end time.Time) {
	if monthStartDay < 1 || monthStartDay > 28 {
		monthStartDay = 1
	}

	y, m, d := today.Date()
	start = time.Date(y, m, monthStartDay, 0, 0, 0, 0, today.Location())
	if d < monthStartDay {
		start = start.AddDate(0, -1, 0)
	}
	end = start.AddDate(0, 1, 0)
	return start, end
}

// PreviousPeriod returns the period immediately before the one containing
// today.
func PreviousPeriod(monthStartDay int, today time.Time) (start, end time.Time) {
	start, end = PeriodBounds(monthStartDay, today)
	return start.AddDate(0, -1, 0), start
}

// MonthKey formats a time as the backend's month parameter ("2006-01").
func MonthKey(t time.Time) string {
	return t.Format("2006-01")
}

// DateKey formats a time as the backend's date parameter ("2006-01-02").
func DateKey(t time.Time) string {
	return t.Format("2006-01-02")
}
