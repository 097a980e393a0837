package engine

import "time"

// NextStreak returns the login streak after a qualifying event at now.
// A streak already counted today is returned unchanged. A previous increment
// on the day before extends the streak, anything else restarts it at 1.
func NextStreak(now time.Time, lastIncrement *time.Time, current int) (int, *time.Time) {
	loc := now.Location()
	today := StartOfDay(now, loc)
	if lastIncrement != nil && StartOfDay(*lastIncrement, loc).Equal(today) {
		return current, lastIncrement
	}
	incrementedAt := now
	yesterday := today.AddDate(0, 0, -1)
	if lastIncrement != nil && StartOfDay(*lastIncrement, loc).Equal(yesterday) {
		return current + 1, &incrementedAt
	}
	return 1, &incrementedAt
}
