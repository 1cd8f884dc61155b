package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/klipper-hq/klipper-backend-go/internal/domain/regularization"
)

type RegularizationStore struct {
	mu      sync.RWMutex
	records map[string]regularization.Regularization // keyed by employeeID + date
}

func NewRegularizationStore() *RegularizationStore {
	return &RegularizationStore{records: make(map[string]regularization.Regularization)}
}

func regKey(employeeID string, date time.Time) string {
	return employeeID + "/" + date.Format("2006-01-02")
}

func (s *RegularizationStore) GetByEmployee(_ context.Context, employeeID string) ([]regularization.Regularization, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var matched []regularization.Regularization
	for _, record := range s.records {
		if record.EmployeeID == employeeID {
			matched = append(matched, record)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].Date.Before(matched[j].Date)
	})
	return matched, nil
}

func (s *RegularizationStore) Upsert(_ context.Context, record regularization.Regularization) (regularization.Regularization, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := regKey(record.EmployeeID, record.Date)
	now := time.Now().UTC()
	if existing, ok := s.records[key]; ok {
		record.ID = existing.ID
		record.CreatedAt = existing.CreatedAt
	} else {
		record.CreatedAt = now
	}
	record.UpdatedAt = now
	s.records[key] = record
	return record, nil
}
