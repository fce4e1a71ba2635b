package datemath

import (
	"fmt"
	"time"
)

// StartOfDay returns local midnight of t's calendar day, in t's location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// WeekDays returns the Monday-first week containing t, each day at midnight.
// Sunday counts as day 7, so it closes the week instead of opening it.
func WeekDays(t time.Time) [DaysPerWeek]time.Time {
	weekday := int(t.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	monday := StartOfDay(t).AddDate(0, 0, -(weekday - 1))

	var days [DaysPerWeek]time.Time
	for i := range days {
		// AddDate keeps wall-clock midnight across DST changes.
		days[i] = monday.AddDate(0, 0, i)
	}
	return days
}

// ShiftWeeks moves t by n whole weeks (negative n goes back).
func ShiftWeeks(t time.Time, n int) time.Time {
	return t.AddDate(0, 0, n*DaysPerWeek)
}

// DateKey renders t as YYYY-MM-DD from its own calendar fields.
// It never converts to UTC: a late-evening local time must keep its local day.
func DateKey(t time.Time) string {
	return fmt.Sprintf("%04d-%02d-%02d", t.Year(), int(t.Month()), t.Day())
}

// ParseDateKey is the inverse of DateKey, returning midnight in loc.
func ParseDateKey(key string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	t, err := time.ParseInLocation(DateKeyLayout, key, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", key)
	}
	return t, nil
}

// ParseClock parses an HH:MM 24-hour string into minutes since midnight.
func ParseClock(clock string) (int, error) {
	t, err := time.Parse(ClockLayout, clock)
	if err != nil || len(clock) != len(ClockLayout) {
		return 0, fmt.Errorf("invalid time %q: expected HH:MM", clock)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// Combine joins a date key and an HH:MM clock into a local instant at minute precision.
func Combine(dateKey, clock string, loc *time.Location) (time.Time, error) {
	day, err := ParseDateKey(dateKey, loc)
	if err != nil {
		return time.Time{}, err
	}
	minutes, err := ParseClock(clock)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(day.Year(), day.Month(), day.Day(), minutes/60, minutes%60, 0, 0, day.Location()), nil
}

// WeekLabel renders the range of a week, e.g. "Aug 16 - Aug 22, 2021".
// The year shown is the year of the last day.
func WeekLabel(days [DaysPerWeek]time.Time) string {
	first, last := days[0], days[DaysPerWeek-1]
	return fmt.Sprintf("%s - %s, %d", first.Format("Jan 2"), last.Format("Jan 2"), last.Year())
}
