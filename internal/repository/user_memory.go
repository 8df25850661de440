package repository

import (
	"context"
	"sync"

	"github.com/snaptrack/attendance-api/internal/models"
)

// MemoryUserRepository is the seeded in-process identity store.
type MemoryUserRepository struct {
	mu    sync.RWMutex
	users []models.User
}

// NewMemoryUserRepository builds the store from seed data.
func NewMemoryUserRepository(users []models.User) *MemoryUserRepository {
	return &MemoryUserRepository{users: append([]models.User(nil), users...)}
}

// FindByEmail returns a user by exact email match.
func (r *MemoryUserRepository) FindByEmail(_ context.Context, email string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.users {
		if r.users[i].Email == email {
			user := r.users[i]
			return &user, nil
		}
	}
	return nil, ErrNotFound
}

// FindByID returns a user by identifier.
func (r *MemoryUserRepository) FindByID(_ context.Context, id string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.users {
		if r.users[i].ID == id {
			user := r.users[i]
			return &user, nil
		}
	}
	return nil, ErrNotFound
}
