package regularization

import "context"

// RegularizationService records HR corrections to derived attendance times.
type RegularizationService interface {
	Submit(ctx context.Context, req SubmitRequest) (RegularizationResponse, error)
	ListForEmployee(ctx context.Context, employeeID string) ([]RegularizationResponse, error)
}
