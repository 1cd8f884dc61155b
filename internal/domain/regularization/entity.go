package regularization

import (
	"time"

	"github.com/klipper-hq/klipper-backend-go/internal/pkg/timeutil"
)

// Regularization is a manually corrected time-in/time-out for one
// employee-date. When present it supersedes the times derived from access
// events; it never changes the day's working/non-working status.
type Regularization struct {
	ID         string
	EmployeeID string
	Date       time.Time
	TimeIn     timeutil.Time
	TimeOut    timeutil.Time
	Reason     *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
