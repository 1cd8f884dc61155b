package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/klipper-hq/klipper-backend-go/internal/domain/attendance"
	"github.com/klipper-hq/klipper-backend-go/internal/domain/department"
	"github.com/klipper-hq/klipper-backend-go/internal/domain/employee"
	"github.com/klipper-hq/klipper-backend-go/internal/domain/leave"
	"github.com/klipper-hq/klipper-backend-go/internal/domain/regularization"
	"golang.org/x/sync/errgroup"
)

type AttendanceServiceImpl struct {
	attendance.AccessEventRepository
	employee.EmployeeRepository
	department.DepartmentRepository
	leave.LeaveRepository
	regularization.RegularizationRepository
}

func NewAttendanceService(
	accessEvents attendance.AccessEventRepository,
	employees employee.EmployeeRepository,
	departments department.DepartmentRepository,
	leaves leave.LeaveRepository,
	regularizations regularization.RegularizationRepository,
) *AttendanceServiceImpl {
	return &AttendanceServiceImpl{
		AccessEventRepository:    accessEvents,
		EmployeeRepository:       employees,
		DepartmentRepository:     departments,
		LeaveRepository:          leaves,
		RegularizationRepository: regularizations,
	}
}

const dayKeyFormat = "2006-01-02"

// ReportForDateRange implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ReportForDateRange(ctx context.Context, employeeID string, from, to time.Time) (attendance.Report, error) {
	from = truncateToDay(from)
	to = truncateToDay(to)
	if from.After(to) {
		return attendance.Report{}, attendance.ErrInvalidDateRange
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, employeeID)
	if err != nil {
		return attendance.Report{}, fmt.Errorf("get employee %s: %w", employeeID, err)
	}

	dept, err := s.DepartmentRepository.GetByID(ctx, emp.DepartmentID)
	if err != nil {
		return attendance.Report{}, fmt.Errorf("get department %s for employee %s: %w", emp.DepartmentID, employeeID, err)
	}

	// The three lookups are independent; fetch them concurrently.
	var (
		events          []attendance.AccessEvent
		leaves          []leave.Leave
		regularizations []regularization.Regularization
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		events, err = s.AccessEventRepository.GetForDateRange(gctx, employeeID, from, to)
		if err != nil {
			return fmt.Errorf("get access events for employee %s between %s and %s: %w",
				employeeID, from.Format(dayKeyFormat), to.Format(dayKeyFormat), err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		leaves, err = s.LeaveRepository.GetAllByEmployee(gctx, employeeID)
		if err != nil {
			return fmt.Errorf("get leaves for employee %s: %w", employeeID, err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		regularizations, err = s.RegularizationRepository.GetByEmployee(gctx, employeeID)
		if err != nil {
			return fmt.Errorf("get regularizations for employee %s: %w", employeeID, err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return attendance.Report{}, err
	}

	eventsByDay := make(map[string][]attendance.AccessEvent)
	for _, ev := range events {
		key := ev.Timestamp.Format(dayKeyFormat)
		eventsByDay[key] = append(eventsByDay[key], ev)
	}
	regByDay := make(map[string]regularization.Regularization)
	for _, reg := range regularizations {
		regByDay[reg.Date.Format(dayKeyFormat)] = reg
	}
	leaveByDay := make(map[string]bool)
	for _, l := range leaves {
		if l.Status == leave.StatusApproved || l.Status == leave.StatusRealised {
			leaveByDay[l.Date.Format(dayKeyFormat)] = true
		}
	}

	report := attendance.Report{EmployeeID: employeeID, From: from, To: to}
	for date := from; !date.After(to); date = date.AddDate(0, 0, 1) {
		// A caller cancelling mid-range gets the days completed so far.
		select {
		case <-ctx.Done():
			return report, ctx.Err()
		default:
		}

		key := date.Format(dayKeyFormat)
		var reg *regularization.Regularization
		if r, ok := regByDay[key]; ok {
			reg = &r
		}
		record := BuildDayRecord(date, dept, PairAccessEvents(eventsByDay[key]), reg, leaveByDay[key])
		report.Records = append(report.Records, record)
	}
	return report, nil
}

// ReportForLastNDays implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ReportForLastNDays(ctx context.Context, employeeID string, days int) (attendance.Report, error) {
	if days <= 0 {
		return attendance.Report{}, attendance.ErrInvalidDays
	}
	today := truncateToDay(time.Now().UTC())
	return s.ReportForDateRange(ctx, employeeID, today.AddDate(0, 0, -(days-1)), today)
}

// AccessPointDetails implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) AccessPointDetails(ctx context.Context, employeeID string, date time.Time) ([]attendance.AccessPointSegment, error) {
	if _, err := s.EmployeeRepository.GetByID(ctx, employeeID); err != nil {
		return nil, fmt.Errorf("get employee %s: %w", employeeID, err)
	}
	events, err := s.AccessEventRepository.GetForADay(ctx, employeeID, truncateToDay(date))
	if err != nil {
		return nil, fmt.Errorf("get access events for employee %s on %s: %w",
			employeeID, date.Format(dayKeyFormat), err)
	}
	return PairAccessEvents(events), nil
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
