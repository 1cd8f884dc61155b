package leave

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/klipper-hq/klipper-backend-go/internal/domain/leave"
)

type LeaveServiceImpl struct {
	leave.LeaveRepository
}

func NewLeaveService(leaves leave.LeaveRepository) *LeaveServiceImpl {
	return &LeaveServiceImpl{LeaveRepository: leaves}
}

// Apply implements leave.LeaveService. Leaves arrive already approved;
// the approval workflow is outside this system. The check and the create run
// in one repository transaction, and Create itself rejects a racing duplicate
// for the same employee-date.
func (s *LeaveServiceImpl) Apply(ctx context.Context, employeeID string, req leave.ApplyLeaveRequest) (leave.LeaveResponse, error) {
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return leave.LeaveResponse{}, fmt.Errorf("parse leave date %q: %w", req.Date, leave.ErrInvalidLeaveDate)
	}

	var created leave.Leave
	err = s.LeaveRepository.Transact(ctx, func(ctx context.Context) error {
		existing, err := s.LeaveRepository.GetByEmployeeAndDate(ctx, employeeID, date)
		if err != nil {
			return fmt.Errorf("check existing leave for employee %s: %w", employeeID, err)
		}
		if existing != nil && existing.Active() {
			return leave.ErrLeaveAlreadyExists
		}

		created, err = s.LeaveRepository.Create(ctx, leave.Leave{
			ID:         uuid.NewString(),
			EmployeeID: employeeID,
			Date:       date,
			Status:     leave.StatusApproved,
			Remark:     req.Remark,
		})
		if err != nil {
			return fmt.Errorf("create leave for employee %s: %w", employeeID, err)
		}
		return nil
	})
	if err != nil {
		return leave.LeaveResponse{}, err
	}
	return created.ToResponse(), nil
}

// Override implements leave.LeaveService. It replaces the status of an
// existing record, e.g. cancelling a leave or marking it realised.
func (s *LeaveServiceImpl) Override(ctx context.Context, leaveID string, req leave.OverrideLeaveRequest) (leave.LeaveResponse, error) {
	status := leave.Status(req.Status)
	switch status {
	case leave.StatusApproved, leave.StatusCancelled, leave.StatusRealised:
	default:
		return leave.LeaveResponse{}, leave.ErrInvalidLeaveStatus
	}

	record, err := s.LeaveRepository.GetByID(ctx, leaveID)
	if err != nil {
		return leave.LeaveResponse{}, fmt.Errorf("get leave %s: %w", leaveID, err)
	}

	record.Status = status
	if req.Remark != nil {
		record.Remark = req.Remark
	}
	if err := s.LeaveRepository.Update(ctx, record); err != nil {
		return leave.LeaveResponse{}, fmt.Errorf("override leave %s: %w", leaveID, err)
	}
	return record.ToResponse(), nil
}

// ListForEmployee implements leave.LeaveService.
func (s *LeaveServiceImpl) ListForEmployee(ctx context.Context, employeeID string) ([]leave.LeaveResponse, error) {
	records, err := s.LeaveRepository.GetAllByEmployee(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("list leaves for employee %s: %w", employeeID, err)
	}
	responses := make([]leave.LeaveResponse, 0, len(records))
	for _, record := range records {
		responses = append(responses, record.ToResponse())
	}
	return responses, nil
}

// Exists implements leave.LeaveService.
func (s *LeaveServiceImpl) Exists(ctx context.Context, employeeID string, date time.Time) (bool, error) {
	existing, err := s.LeaveRepository.GetByEmployeeAndDate(ctx, employeeID, date)
	if err != nil {
		return false, fmt.Errorf("check leave for employee %s: %w", employeeID, err)
	}
	return existing != nil && existing.Active(), nil
}
