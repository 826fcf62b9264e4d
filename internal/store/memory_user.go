package store

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/GregMSThompson/userdata-api/internal/errs"
	"github.com/GregMSThompson/userdata-api/internal/models"
)

// memoryUserStore keeps users for the life of the process only. It backs
// STORE_DRIVER=memory demo runs and tests.
type memoryUserStore struct {
	mu    sync.RWMutex
	users []models.User
}

func NewMemoryUserStore() *memoryUserStore {
	return &memoryUserStore{}
}

func (s *memoryUserStore) ListUsers(_ context.Context) ([]*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	users := make([]*models.User, 0, len(s.users))
	for i := range s.users {
		u := s.users[i]
		users = append(users, &u)
	}
	return users, nil
}

func (s *memoryUserStore) GetUser(_ context.Context, id string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil, errs.NewNotFoundError("user not found")
	}
	u := s.users[i]
	return &u, nil
}

func (s *memoryUserStore) CreateUser(_ context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	user.ID = uuid.NewString()
	s.users = append(s.users, *user)
	return nil
}

func (s *memoryUserStore) UpdateUser(_ context.Context, id string, changes map[string]string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil, errs.NewNotFoundError("user not found")
	}
	applyChanges(&s.users[i], changes)
	u := s.users[i]
	return &u, nil
}

func (s *memoryUserStore) DeleteUser(_ context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return false, nil
	}
	s.users = append(s.users[:i], s.users[i+1:]...)
	return true, nil
}

func (s *memoryUserStore) indexOf(id string) int {
	for i := range s.users {
		if s.users[i].ID == id {
			return i
		}
	}
	return -1
}
