// utils/dates.go
package utils

import "time"

// DateLayout is the wire and storage format for all calendar dates.
const DateLayout = "2006-01-02"

func BeginningOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

// ValidDate reports whether s is a well-formed YYYY-MM-DD date.
func ValidDate(s string) bool {
	_, err := time.Parse(DateLayout, s)
	return err == nil
}

// WeekWindow returns the Monday-aligned 7-day window containing ref, shifted
// by offsetWeeks: start = ref - weekday(Mon=0) + 7*offsetWeeks days, end =
// start + 6 days.
func WeekWindow(ref time.Time, offsetWeeks int) (start, end time.Time) {
	day := BeginningOfDay(ref)
	weekday := (int(day.Weekday()) + 6) % 7 // Monday = 0
	start = day.AddDate(0, 0, -weekday+offsetWeeks*7)
	end = start.AddDate(0, 0, 6)
	return start, end
}

// WeekDates lists the seven ISO dates of the week starting at start.
func WeekDates(start time.Time) []string {
	dates := make([]string, 7)
	for i := 0; i < 7; i++ {
		dates[i] = start.AddDate(0, 0, i).Format(DateLayout)
	}
	return dates
}
