package user

import "time"

type User struct {
	ID           string
	EmployeeID   string
	EmployeeCode string
	PasswordHash string
	IsHR         bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
