package memory

import (
	"context"
	"sync"

	"github.com/klipper-hq/klipper-backend-go/internal/domain/user"
)

type UserStore struct {
	mu    sync.RWMutex
	users map[string]user.User
}

func NewUserStore() *UserStore {
	return &UserStore{users: make(map[string]user.User)}
}

func (s *UserStore) Add(users ...user.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, account := range users {
		s.users[account.ID] = account
	}
}

func (s *UserStore) GetByEmployeeCode(_ context.Context, employeeCode string) (user.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, account := range s.users {
		if account.EmployeeCode == employeeCode {
			return account, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func (s *UserStore) GetByID(_ context.Context, id string) (user.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	account, ok := s.users[id]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return account, nil
}
