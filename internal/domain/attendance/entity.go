package attendance

import (
	"time"

	"github.com/klipper-hq/klipper-backend-go/internal/pkg/timeutil"
)

// AccessPointCategory classifies where a swipe happened.
type AccessPointCategory string

const (
	CategoryMain       AccessPointCategory = "Main"
	CategoryRecreation AccessPointCategory = "Recreation"
	CategoryGymnasium  AccessPointCategory = "Gymnasium"
)

// AccessEvent is a single raw swipe produced by the access-control system.
// Ordering within a day is not guaranteed by the source.
type AccessEvent struct {
	EmployeeID  string
	Timestamp   time.Time
	AccessPoint AccessPointCategory
}

// AccessPointSegment is one entry/exit pair derived from two consecutive
// swipes in the same category. TimeOut and TimeSpend stay zero when the
// second swipe never happened.
type AccessPointSegment struct {
	AccessPoint AccessPointCategory
	TimeIn      timeutil.Time
	TimeOut     timeutil.Time
	TimeSpend   timeutil.Time
}

type DayStatus string

const (
	WorkingDay    DayStatus = "WorkingDay"
	NonWorkingDay DayStatus = "NonWorkingDay"
)

type PerDayAttendanceRecord struct {
	Date         time.Time
	TimeIn       timeutil.Time
	TimeOut      timeutil.Time
	WorkingHours timeutil.Time
	OverTime     timeutil.Time
	LateBy       timeutil.Time
	DayStatus    DayStatus

	// OnLeave marks an approved leave covering this date. It does not alter
	// the numeric fields above; consumers decide how to present it.
	OnLeave bool
}

// Report is the ordered per-day attendance for one employee over an
// inclusive date range, one record per calendar day.
type Report struct {
	EmployeeID string
	From       time.Time
	To         time.Time
	Records    []PerDayAttendanceRecord
}
