package response

import (
	"errors"
	"net/http"

	"github.com/klipper-hq/klipper-backend-go/internal/domain/attendance"
	"github.com/klipper-hq/klipper-backend-go/internal/domain/auth"
	"github.com/klipper-hq/klipper-backend-go/internal/domain/department"
	"github.com/klipper-hq/klipper-backend-go/internal/domain/employee"
	"github.com/klipper-hq/klipper-backend-go/internal/domain/leave"
	"github.com/klipper-hq/klipper-backend-go/internal/domain/regularization"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrInvalidDateRange):
		BadRequest(w, "From date must not be after to date", nil)
	case errors.Is(err, attendance.ErrInvalidDays):
		BadRequest(w, "Number of days must be positive", nil)

	// Reference-data errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, department.ErrDepartmentNotFound):
		NotFound(w, "Department not found")

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveNotFound):
		NotFound(w, "Leave record not found")
	case errors.Is(err, leave.ErrLeaveAlreadyExists):
		Conflict(w, "A leave already exists for this date")
	case errors.Is(err, leave.ErrInvalidLeaveStatus):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, leave.ErrInvalidLeaveDate):
		BadRequest(w, "Leave date must be a date (YYYY-MM-DD)", nil)

	// Regularization domain errors
	case errors.Is(err, regularization.ErrRegularizationNotFound):
		NotFound(w, "Regularization record not found")
	case errors.Is(err, regularization.ErrInvalidCorrectedTimes):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, regularization.ErrInvalidDate):
		BadRequest(w, "Regularization date must be a date (YYYY-MM-DD)", nil)
	case errors.Is(err, regularization.ErrInvalidTime):
		BadRequest(w, "Corrected times must be clock times (HH:MM)", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
