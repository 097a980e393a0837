package engine

import (
	"time"

	"github.com/suryalaha/EcoTrack-app-manage/pkg/entity"
)

// Daily check-in window, both ends inclusive.
const (
	attendanceOpenHour, attendanceOpenMinute   = 10, 0
	attendanceCloseHour, attendanceCloseMinute = 10, 30
)

// ClassifyAttendance marks a staff check-in present when it happens inside the
// morning window of its own day, absent otherwise.
func ClassifyAttendance(now time.Time) entity.AttendanceStatus {
	y, m, d := now.Date()
	opens := time.Date(y, m, d, attendanceOpenHour, attendanceOpenMinute, 0, 0, now.Location())
	closes := time.Date(y, m, d, attendanceCloseHour, attendanceCloseMinute, 0, 0, now.Location())
	if now.Before(opens) || now.After(closes) {
		return entity.AttendanceAbsent
	}
	return entity.AttendancePresent
}
