// Package memory holds in-memory repository implementations used by tests
// and local development. They satisfy the same interfaces as the postgresql
// package.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/klipper-hq/klipper-backend-go/internal/domain/attendance"
)

type AccessEventStore struct {
	mu     sync.RWMutex
	events map[string][]attendance.AccessEvent
}

func NewAccessEventStore() *AccessEventStore {
	return &AccessEventStore{events: make(map[string][]attendance.AccessEvent)}
}

func (s *AccessEventStore) Add(events ...attendance.AccessEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, ev := range events {
		s.events[ev.EmployeeID] = append(s.events[ev.EmployeeID], ev)
	}
}

func (s *AccessEventStore) GetForDateRange(_ context.Context, employeeID string, from, to time.Time) ([]attendance.AccessEvent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	end := to.AddDate(0, 0, 1)
	var matched []attendance.AccessEvent
	for _, ev := range s.events[employeeID] {
		if !ev.Timestamp.Before(from) && ev.Timestamp.Before(end) {
			matched = append(matched, ev)
		}
	}
	return matched, nil
}

func (s *AccessEventStore) GetForADay(ctx context.Context, employeeID string, date time.Time) ([]attendance.AccessEvent, error) {
	return s.GetForDateRange(ctx, employeeID, date, date)
}
