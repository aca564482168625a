package domain

import "time"

func IsWeekend(d time.Time) bool {
	wd := d.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// AddWeekdays walks forward from start until durationDays weekdays have
// been counted, inclusive of the start day, and returns the last one.
// A Monday start with 5 duration days ends the same Friday; ranges that
// span a weekend skip Saturday and Sunday entirely.
func AddWeekdays(start time.Time, durationDays int) time.Time {
	end := start
	counted := 0
	for counted < durationDays {
		if !IsWeekend(end) {
			counted++
		}
		if counted < durationDays {
			end = end.AddDate(0, 0, 1)
		}
	}
	return end
}

// Overlaps reports whether [s1, e1] and [s2, e2] intersect, bounds
// inclusive on both ends.
func Overlaps(s1, e1, s2, e2 time.Time) bool {
	return !s1.After(e2) && !s2.After(e1)
}

// DateOnly truncates t to midnight UTC so calendar comparisons ignore
// the time of day.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
