package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/klipper-hq/klipper-backend-go/internal/domain/leave"
)

type LeaveStore struct {
	mu     sync.RWMutex
	leaves map[string]leave.Leave
}

func NewLeaveStore() *LeaveStore {
	return &LeaveStore{leaves: make(map[string]leave.Leave)}
}

// Transact implements leave.LeaveRepository. The store has no transactions;
// atomicity of the duplicate check lives in Create, under the write lock.
func (s *LeaveStore) Transact(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (s *LeaveStore) Create(_ context.Context, newLeave leave.Leave) (leave.Leave, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// The check and the insert share the write lock, so two racing applies
	// for the same employee-date cannot both succeed.
	for _, record := range s.leaves {
		if record.EmployeeID == newLeave.EmployeeID && sameDay(record.Date, newLeave.Date) && record.Active() {
			return leave.Leave{}, leave.ErrLeaveAlreadyExists
		}
	}

	now := time.Now().UTC()
	newLeave.CreatedAt = now
	newLeave.UpdatedAt = now
	s.leaves[newLeave.ID] = newLeave
	return newLeave, nil
}

func (s *LeaveStore) GetByID(_ context.Context, id string) (leave.Leave, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.leaves[id]
	if !ok {
		return leave.Leave{}, leave.ErrLeaveNotFound
	}
	return record, nil
}

func (s *LeaveStore) GetAllByEmployee(_ context.Context, employeeID string) ([]leave.Leave, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var matched []leave.Leave
	for _, record := range s.leaves {
		if record.EmployeeID == employeeID {
			matched = append(matched, record)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].Date.Before(matched[j].Date)
	})
	return matched, nil
}

func (s *LeaveStore) GetByEmployeeAndDate(_ context.Context, employeeID string, date time.Time) (*leave.Leave, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, record := range s.leaves {
		if record.EmployeeID == employeeID && sameDay(record.Date, date) {
			found := record
			return &found, nil
		}
	}
	return nil, nil
}

func (s *LeaveStore) Update(_ context.Context, updated leave.Leave) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.leaves[updated.ID]
	if !ok {
		return leave.ErrLeaveNotFound
	}
	record.Status = updated.Status
	record.Remark = updated.Remark
	record.UpdatedAt = time.Now().UTC()
	s.leaves[updated.ID] = record
	return nil
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}
