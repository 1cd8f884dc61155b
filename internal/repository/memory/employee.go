package memory

import (
	"context"
	"sync"

	"github.com/klipper-hq/klipper-backend-go/internal/domain/employee"
)

type EmployeeStore struct {
	mu        sync.RWMutex
	employees map[string]employee.Employee
}

func NewEmployeeStore() *EmployeeStore {
	return &EmployeeStore{employees: make(map[string]employee.Employee)}
}

func (s *EmployeeStore) Add(employees ...employee.Employee) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, emp := range employees {
		s.employees[emp.ID] = emp
	}
}

func (s *EmployeeStore) GetByID(_ context.Context, id string) (employee.Employee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	emp, ok := s.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (s *EmployeeStore) GetByEmployeeCode(_ context.Context, employeeCode string) (employee.Employee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, emp := range s.employees {
		if emp.EmployeeCode == employeeCode {
			return emp, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}
