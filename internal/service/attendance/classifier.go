package attendance

import (
	"time"

	"github.com/klipper-hq/klipper-backend-go/internal/domain/attendance"
	"github.com/klipper-hq/klipper-backend-go/internal/domain/department"
)

// ClassifyDay decides WorkingDay vs NonWorkingDay for a date under a
// department's calendar policy. Sundays are off for everyone, Monday through
// Friday always count as working days, and Saturdays follow the
// department's ordinal-Saturday table.
func ClassifyDay(date time.Time, dept department.Department) attendance.DayStatus {
	switch date.Weekday() {
	case time.Sunday:
		return attendance.NonWorkingDay
	case time.Saturday:
		if dept.WorksOnSaturday(saturdayOrdinal(date)) {
			return attendance.WorkingDay
		}
		return attendance.NonWorkingDay
	default:
		return attendance.WorkingDay
	}
}

// saturdayOrdinal returns which Saturday of the month the date is,
// 1-indexed. Day 1-7 is the 1st, 8-14 the 2nd, and so on.
func saturdayOrdinal(date time.Time) int {
	return (date.Day()-1)/7 + 1
}
