package attendance

import (
	"context"
	"time"
)

// AttendanceService turns raw access events into per-day attendance reports.
type AttendanceService interface {
	// ReportForDateRange produces one record per calendar day in [from, to].
	ReportForDateRange(ctx context.Context, employeeID string, from, to time.Time) (Report, error)

	// ReportForLastNDays reports the most recent n calendar days ending today.
	ReportForLastNDays(ctx context.Context, employeeID string, days int) (Report, error)

	// AccessPointDetails returns the paired entry/exit segments for one day,
	// grouped by access point.
	AccessPointDetails(ctx context.Context, employeeID string, date time.Time) ([]AccessPointSegment, error)
}
