package regularization

import "errors"

var (
	ErrRegularizationNotFound = errors.New("regularization record not found")
	ErrInvalidCorrectedTimes  = errors.New("corrected time-out must not precede time-in")
	ErrInvalidDate            = errors.New("regularization date must be formatted YYYY-MM-DD")
	ErrInvalidTime            = errors.New("corrected times must be formatted HH:MM")
)
