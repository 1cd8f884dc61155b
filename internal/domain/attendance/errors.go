package attendance

import "errors"

var (
	ErrInvalidDateRange = errors.New("from date is after to date")
	ErrInvalidDays      = errors.New("number of days must be positive")
)
