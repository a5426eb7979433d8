package domain

import "time"

// DateLayout is the wire format for calendar dates ("YYYY-MM-DD").
const DateLayout = "2006-01-02"

// ResolveLocation loads an IANA timezone name, falling back to UTC when the
// name is absent or unknown. Statistics boundaries are always computed in the
// caller's timezone so that "this week" matches what the user sees on their
// calendar.
func ResolveLocation(name string) *time.Location {
	if name == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.UTC
	}
	return loc
}

// MonthStartIn returns the first calendar day of now's month as observed in
// loc, as a date string.
func MonthStartIn(now time.Time, loc *time.Location) string {
	local := now.In(loc)
	return time.Date(local.Year(), local.Month(), 1, 0, 0, 0, 0, loc).Format(DateLayout)
}

// WeekStartIn returns the most recent Sunday on or before now as observed in
// loc, as a date string. A Sunday maps to itself.
func WeekStartIn(now time.Time, loc *time.Location) string {
	local := now.In(loc)
	day := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
	return day.AddDate(0, 0, -int(day.Weekday())).Format(DateLayout)
}

// LastNDaysIn returns n consecutive calendar dates ending on "today" in loc,
// oldest first.
func LastNDaysIn(now time.Time, loc *time.Location, n int) []time.Time {
	local := now.In(loc)
	today := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)

	days := make([]time.Time, 0, n)
	for i := n - 1; i >= 0; i-- {
		days = append(days, today.AddDate(0, 0, -i))
	}
	return days
}
