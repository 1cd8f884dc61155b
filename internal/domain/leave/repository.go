package leave

import (
	"context"
	"time"
)

type LeaveRepository interface {
	// Transact runs fn atomically; repository calls made with the ctx fn
	// receives belong to the same transaction. Create additionally rejects a
	// second active leave for the same employee-date with
	// ErrLeaveAlreadyExists, so concurrent applications cannot both land.
	Transact(ctx context.Context, fn func(ctx context.Context) error) error
	Create(ctx context.Context, newLeave Leave) (Leave, error)
	GetByID(ctx context.Context, id string) (Leave, error)
	GetAllByEmployee(ctx context.Context, employeeID string) ([]Leave, error)
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*Leave, error)
	Update(ctx context.Context, updated Leave) error
}
