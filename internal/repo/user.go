package repo

import (
	"context"
	"fmt"
	"sync"

	"github.com/rcamargo/transporte-api/internal/domain"
)

// UserRepo defines the storage operations for Users.
type UserRepo interface {
	// Create assigns the next id and stores the user.
	// Returns domain.ErrConflict if the email is already registered;
	// on conflict the store is left unchanged.
	Create(ctx context.Context, user domain.User) (domain.User, error)

	// GetByEmail retrieves a user by exact, case-sensitive email match.
	// Returns domain.ErrNotFound if no user with that email exists.
	GetByEmail(ctx context.Context, email string) (domain.User, error)
}

// memUserRepo is the in-memory implementation of UserRepo.
// It is safe for concurrent use. Email lookup is an exact match — no case
// normalization is applied.
type memUserRepo struct {
	mu      sync.RWMutex
	byEmail map[string]domain.User
	nextID  int64
}

// NewUserRepo constructs an empty in-memory UserRepo.
func NewUserRepo() UserRepo {
	return &memUserRepo{byEmail: make(map[string]domain.User), nextID: 1}
}

// Create stores a new user, enforcing email uniqueness.
func (r *memUserRepo) Create(ctx context.Context, user domain.User) (domain.User, error) {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byEmail[user.Email]; ok {
		return domain.User{}, fmt.Errorf("repo.UserRepo.Create: %w: email já cadastrado", domain.ErrConflict)
	}

	user.ID = r.nextID
	r.nextID++
	r.byEmail[user.Email] = user
	return user, nil
}

// GetByEmail retrieves a user by its email key.
func (r *memUserRepo) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.byEmail[email]
	if !ok {
		return domain.User{}, fmt.Errorf("repo.UserRepo.GetByEmail: %w", domain.ErrNotFound)
	}
	return user, nil
}
