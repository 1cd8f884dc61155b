package leave

import (
	"context"
	"time"
)

// LeaveService manages approved absence records. Approval workflow itself
// lives outside this system; records arrive already decided.
type LeaveService interface {
	Apply(ctx context.Context, employeeID string, req ApplyLeaveRequest) (LeaveResponse, error)
	Override(ctx context.Context, leaveID string, req OverrideLeaveRequest) (LeaveResponse, error)
	ListForEmployee(ctx context.Context, employeeID string) ([]LeaveResponse, error)
	Exists(ctx context.Context, employeeID string, date time.Time) (bool, error)
}
