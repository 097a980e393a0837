// Package engine holds the account state-transition rules: login streaks,
// staff attendance, mixed-waste fines and fee selection. Every function is
// pure; callers load the account, pass "now" and persist the result.
//
// Calendar days are evaluated in the location carried by "now". Stored
// timestamps are converted into that location before comparison.
package engine

import "time"

// StartOfDay returns midnight of t's calendar day in loc.
func StartOfDay(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

// SameDay reports whether a and b fall on the same calendar day in loc.
func SameDay(a, b time.Time, loc *time.Location) bool {
	return StartOfDay(a, loc).Equal(StartOfDay(b, loc))
}
