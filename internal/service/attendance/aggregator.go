package attendance

import (
	"time"

	"github.com/klipper-hq/klipper-backend-go/internal/domain/attendance"
	"github.com/klipper-hq/klipper-backend-go/internal/domain/department"
	"github.com/klipper-hq/klipper-backend-go/internal/domain/regularization"
	"github.com/klipper-hq/klipper-backend-go/internal/pkg/timeutil"
)

// BuildDayRecord folds the classifier, the paired Main-entrance segments,
// an optional regularization and the leave lookup into one per-day record.
//
// The Main category is authoritative for the day: time-in comes from its
// first segment, time-out from its last closed segment. A regularization for
// the date supersedes both. On a non-working day the whole worked span is
// overtime and late-by has no meaning; on a working day late-by and overtime
// are measured against the department's shift window, both floored at zero.
func BuildDayRecord(
	date time.Time,
	dept department.Department,
	segments []attendance.AccessPointSegment,
	reg *regularization.Regularization,
	onLeave bool,
) attendance.PerDayAttendanceRecord {
	record := attendance.PerDayAttendanceRecord{
		Date:      date,
		DayStatus: ClassifyDay(date, dept),
		OnLeave:   onLeave,
	}

	record.TimeIn, record.TimeOut = mainEntryTimes(segments)
	if reg != nil {
		record.TimeIn = reg.TimeIn
		record.TimeOut = reg.TimeOut
	}

	record.WorkingHours = record.TimeOut.Sub(record.TimeIn)

	if record.DayStatus == attendance.NonWorkingDay {
		record.OverTime = record.WorkingHours
		return record
	}

	if !record.TimeIn.IsZero() {
		record.LateBy = record.TimeIn.Sub(dept.ShiftStart)
	}
	record.OverTime = record.TimeOut.Sub(dept.ShiftEnd)
	return record
}

// mainEntryTimes picks the authoritative in/out pair from the Main-entrance
// segments: the earliest time-in and the latest closed time-out. A day whose
// only Main swipe never got a matching exit reports a zero time-out.
func mainEntryTimes(segments []attendance.AccessPointSegment) (timeIn, timeOut timeutil.Time) {
	first := true
	for _, s := range segments {
		if s.AccessPoint != attendance.CategoryMain {
			continue
		}
		if first {
			timeIn = s.TimeIn
			first = false
		}
		if !s.TimeOut.IsZero() {
			timeOut = s.TimeOut
		}
	}
	return timeIn, timeOut
}
