package leave

import "errors"

var (
	ErrLeaveNotFound      = errors.New("leave record not found")
	ErrLeaveAlreadyExists = errors.New("a leave already exists for this date")
	ErrInvalidLeaveStatus = errors.New("leave status must be approved, cancelled or realised")
	ErrInvalidLeaveDate   = errors.New("leave date must be formatted YYYY-MM-DD")
)
