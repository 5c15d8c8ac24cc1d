package repositories

import (
	"context"
	"sync"

	"github.com/yigit/studenthub/internal/app/models"
	"github.com/yigit/studenthub/internal/pkg/apperrors"
)

// memoryUserRepository keeps user accounts in process memory. Users are
// never updated or deleted, only looked up and created.
type memoryUserRepository struct {
	mu     sync.RWMutex
	users  []models.User
	nextID int64
}

// NewMemoryUserRepository creates an empty in-memory user store
func NewMemoryUserRepository() UserRepository {
	return &memoryUserRepository{
		nextID: 1,
	}
}

// GetByUsername returns the user with the given username
func (r *memoryUserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.users {
		if r.users[i].Username == username {
			u := r.users[i]
			return &u, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

// Create assigns the next id and appends the user
func (r *memoryUserRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.users {
		if r.users[i].Username == user.Username {
			return nil, apperrors.ErrUsernameAlreadyExists
		}
	}

	user.ID = r.nextID
	r.nextID++
	r.users = append(r.users, *user)

	created := *user
	return &created, nil
}
