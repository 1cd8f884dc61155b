package attendance

import (
	"context"
	"time"
)

// AccessEventRepository reads raw swipe events recorded by the external
// access-control system. A day without events yields an empty slice, never
// an error.
type AccessEventRepository interface {
	GetForDateRange(ctx context.Context, employeeID string, from, to time.Time) ([]AccessEvent, error)
	GetForADay(ctx context.Context, employeeID string, date time.Time) ([]AccessEvent, error)
}
