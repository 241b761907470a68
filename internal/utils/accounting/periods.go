package accounting

import "time"

// DateOnly truncates t to midnight in its own location.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// InDateRange reports whether the calendar date of t lies in [from, to].
func InDateRange(t, from, to time.Time) bool {
	day := civil(t)
	return day >= civil(from) && day <= civil(to)
}

func civil(t time.Time) int {
	y, m, d := t.Date()
	return y*10000 + int(m)*100 + d
}

// DayRange returns the calendar day containing now.
func DayRange(now time.Time) (time.Time, time.Time) {
	day := DateOnly(now)
	return day, day
}

// MonthRange returns the first and last day of the calendar month containing now.
func MonthRange(now time.Time) (time.Time, time.Time) {
	y, m, _ := now.Date()
	first := time.Date(y, m, 1, 0, 0, 0, 0, now.Location())
	return first, first.AddDate(0, 1, -1)
}

// YearRange returns the first and last day of the calendar year containing now.
func YearRange(now time.Time) (time.Time, time.Time) {
	y := now.Year()
	return time.Date(y, time.January, 1, 0, 0, 0, 0, now.Location()),
		time.Date(y, time.December, 31, 0, 0, 0, 0, now.Location())
}
