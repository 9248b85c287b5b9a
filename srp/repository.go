package srp

import (
	"context"
	"strconv"
	"sync"
)

// UserRepository is the persistence responsibility, split out of the user.
type UserRepository interface {
	Save(ctx context.Context, u *User) error
	FindByID(ctx context.Context, id string) (*User, error)
}

// NotFoundError is returned by repositories when no user has the requested ID.
type NotFoundError struct{ ID string }

// Error implements the error interface.
func (e NotFoundError) Error() string {
	// Example: srp: user "42" not found
	return "srp: user " + strconv.Quote(e.ID) + " not found"
}

// MemoryRepository keeps users in a map. It is safe for concurrent use.
type MemoryRepository struct {
	mu    sync.RWMutex
	users map[string]User
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{users: make(map[string]User)}
}

// Save stores a copy of u, replacing any user with the same ID.
func (r *MemoryRepository) Save(_ context.Context, u *User) error {
	if u == nil {
		return ErrNilUser
	}
	r.mu.Lock()
	r.users[u.ID] = *u
	r.mu.Unlock()
	return nil
}

// FindByID returns a copy of the stored user.
func (r *MemoryRepository) FindByID(_ context.Context, id string) (*User, error) {
	r.mu.RLock()
	u, ok := r.users[id]
	r.mu.RUnlock()
	if !ok {
		return nil, NotFoundError{ID: id}
	}
	return &u, nil
}
