package regularization

import "context"

type RegularizationRepository interface {
	GetByEmployee(ctx context.Context, employeeID string) ([]Regularization, error)
	// Upsert inserts the correction or replaces an earlier one for the same
	// employee-date.
	Upsert(ctx context.Context, record Regularization) (Regularization, error)
}
