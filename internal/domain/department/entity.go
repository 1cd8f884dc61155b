package department

import (
	"github.com/klipper-hq/klipper-backend-go/internal/pkg/timeutil"
)

type Name string

const (
	Software Name = "Software"
	Design   Name = "Design"
	Service  Name = "Service"
)

type Department struct {
	ID   string
	Name Name

	// WorkingSaturdays lists the 1-indexed ordinal Saturdays of a month on
	// which the department works. Empty means every Saturday is off.
	WorkingSaturdays []int

	// Expected shift window used to derive late-by and overtime on working
	// days. Departments without an explicit shift fall back to the
	// organization-wide default from configuration.
	ShiftStart timeutil.Time
	ShiftEnd   timeutil.Time
}

// WorksOnSaturday reports whether the given ordinal Saturday (1st, 2nd, ...)
// is a working day for this department.
func (d Department) WorksOnSaturday(ordinal int) bool {
	for _, o := range d.WorkingSaturdays {
		if o == ordinal {
			return true
		}
	}
	return false
}
