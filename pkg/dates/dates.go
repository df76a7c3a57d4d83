package dates

import "time"

// DefaultTimezone is the civil timezone used for all "today" comparisons.
// Activity statuses flip on East-Africa calendar days, not UTC days.
const DefaultTimezone = "Africa/Nairobi"

// LoadLocation resolves the configured civil timezone, falling back to the
// East-Africa default when the name is empty.
func LoadLocation(name string) (*time.Location, error) {
	if name == "" {
		name = DefaultTimezone
	}
	return time.LoadLocation(name)
}

// CivilDate truncates t to its calendar date in loc.
func CivilDate(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

// Today returns the current calendar date in loc for the given instant.
func Today(now time.Time, loc *time.Location) time.Time {
	return CivilDate(now, loc)
}

// BeforeDay reports whether a falls on an earlier calendar day than b,
// both interpreted in loc. Same-day instants compare equal, not before.
func BeforeDay(a, b time.Time, loc *time.Location) bool {
	return CivilDate(a, loc).Before(CivilDate(b, loc))
}
