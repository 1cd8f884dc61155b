package regularization

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/klipper-hq/klipper-backend-go/internal/domain/regularization"
	"github.com/klipper-hq/klipper-backend-go/internal/pkg/timeutil"
)

type RegularizationServiceImpl struct {
	regularization.RegularizationRepository
}

func NewRegularizationService(records regularization.RegularizationRepository) *RegularizationServiceImpl {
	return &RegularizationServiceImpl{RegularizationRepository: records}
}

// Submit implements regularization.RegularizationService. A second
// submission for the same employee-date replaces the earlier correction.
func (s *RegularizationServiceImpl) Submit(ctx context.Context, req regularization.SubmitRequest) (regularization.RegularizationResponse, error) {
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return regularization.RegularizationResponse{}, fmt.Errorf("parse regularization date %q: %w", req.Date, regularization.ErrInvalidDate)
	}
	timeIn, err := timeutil.Parse(req.TimeIn)
	if err != nil {
		return regularization.RegularizationResponse{}, fmt.Errorf("parse corrected time-in %q: %w", req.TimeIn, regularization.ErrInvalidTime)
	}
	timeOut, err := timeutil.Parse(req.TimeOut)
	if err != nil {
		return regularization.RegularizationResponse{}, fmt.Errorf("parse corrected time-out %q: %w", req.TimeOut, regularization.ErrInvalidTime)
	}
	if !timeOut.IsZero() && timeOut.Before(timeIn) {
		return regularization.RegularizationResponse{}, regularization.ErrInvalidCorrectedTimes
	}

	record, err := s.RegularizationRepository.Upsert(ctx, regularization.Regularization{
		ID:         uuid.NewString(),
		EmployeeID: req.EmployeeID,
		Date:       date,
		TimeIn:     timeIn,
		TimeOut:    timeOut,
		Reason:     req.Reason,
	})
	if err != nil {
		return regularization.RegularizationResponse{}, fmt.Errorf("upsert regularization for employee %s on %s: %w",
			req.EmployeeID, req.Date, err)
	}
	return record.ToResponse(), nil
}

// ListForEmployee implements regularization.RegularizationService.
func (s *RegularizationServiceImpl) ListForEmployee(ctx context.Context, employeeID string) ([]regularization.RegularizationResponse, error) {
	records, err := s.RegularizationRepository.GetByEmployee(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("list regularizations for employee %s: %w", employeeID, err)
	}
	responses := make([]regularization.RegularizationResponse, 0, len(records))
	for _, record := range records {
		responses = append(responses, record.ToResponse())
	}
	return responses, nil
}
