package employee

import "time"

type Employee struct {
	ID           string
	EmployeeCode string
	FullName     string
	Email        *string
	DepartmentID string
	HireDate     time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
