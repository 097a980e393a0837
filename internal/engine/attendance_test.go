package engine_test

import (
	"testing"
	"time"

	"github.com/suryalaha/EcoTrack-app-manage/internal/engine"
	"github.com/suryalaha/EcoTrack-app-manage/pkg/entity"
	"github.com/stretchr/testify/assert"
)

func TestClassifyAttendance(t *testing.T) {
	day := func(h, m, s, ns int) time.Time {
		return time.Date(2024, 7, 20, h, m, s, ns, kolkata)
	}
	testCases := []struct {
		Desc     string
		Now      time.Time
		Expected entity.AttendanceStatus
	}{
		{"second before window", day(9, 59, 59, 0), entity.AttendanceAbsent},
		{"window opens", day(10, 0, 0, 0), entity.AttendancePresent},
		{"inside window", day(10, 17, 42, 0), entity.AttendancePresent},
		{"window closes", day(10, 30, 0, 0), entity.AttendancePresent},
		{"millisecond after close", day(10, 30, 0, int(time.Millisecond)), entity.AttendanceAbsent},
		{"second after close", day(10, 30, 1, 0), entity.AttendanceAbsent},
		{"evening", day(18, 0, 0, 0), entity.AttendanceAbsent},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			assert.Equal(t, tc.Expected, engine.ClassifyAttendance(tc.Now))
		})
	}
}
