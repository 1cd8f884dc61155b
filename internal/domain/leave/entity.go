package leave

import "time"

type Status string

const (
	StatusApproved  Status = "approved"
	StatusCancelled Status = "cancelled"
	StatusRealised  Status = "realised"
)

type Leave struct {
	ID         string
	EmployeeID string
	Date       time.Time
	Status     Status
	Remark     *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Active reports whether the leave still counts against the date, i.e. it
// was not cancelled.
func (l Leave) Active() bool {
	return l.Status != StatusCancelled
}
