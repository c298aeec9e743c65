package timeutil

import "time"

// DateLayout is the calendar date format TMDB uses for air dates.
const DateLayout = "2006-01-02"

var nowFunc = time.Now

// Now returns the current time. It is wrapped so tests can pin "today".
func Now() time.Time {
	return nowFunc()
}

// SetNowFunc overrides the function used by Now. Passing nil resets it.
func SetNowFunc(fn func() time.Time) {
	if fn == nil {
		nowFunc = time.Now
		return
	}
	nowFunc = fn
}

// Today returns the current local calendar date formatted as YYYY-MM-DD.
func Today() string {
	return Now().Format(DateLayout)
}

// IsSameDay reports whether airDate (YYYY-MM-DD) falls on the calendar day of t
// in t's location. Empty or malformed dates never match.
func IsSameDay(airDate string, t time.Time) bool {
	if airDate == "" {
		return false
	}
	d, err := time.ParseInLocation(DateLayout, airDate, t.Location())
	if err != nil {
		return false
	}
	y1, m1, d1 := d.Date()
	y2, m2, d2 := t.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
