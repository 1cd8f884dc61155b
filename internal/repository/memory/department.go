package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/klipper-hq/klipper-backend-go/internal/domain/department"
)

type DepartmentStore struct {
	mu          sync.RWMutex
	departments map[string]department.Department
}

func NewDepartmentStore() *DepartmentStore {
	return &DepartmentStore{departments: make(map[string]department.Department)}
}

func (s *DepartmentStore) Add(departments ...department.Department) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, dept := range departments {
		s.departments[dept.ID] = dept
	}
}

func (s *DepartmentStore) GetByID(_ context.Context, id string) (department.Department, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	dept, ok := s.departments[id]
	if !ok {
		return department.Department{}, department.ErrDepartmentNotFound
	}
	return dept, nil
}

func (s *DepartmentStore) List(_ context.Context) ([]department.Department, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	departments := make([]department.Department, 0, len(s.departments))
	for _, dept := range s.departments {
		departments = append(departments, dept)
	}
	sort.Slice(departments, func(i, j int) bool {
		return departments[i].Name < departments[j].Name
	})
	return departments, nil
}
