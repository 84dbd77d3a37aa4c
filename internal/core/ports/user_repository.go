package ports

import (
	"context"

	"github.com/mdtreza/booking-api/internal/core/domain"
)

// UserRepository defines persistence operations for user accounts.
type UserRepository interface {
	// Create inserts a new user and returns it with generated fields
	// populated. Returns domain.ErrUserExists on a duplicate email.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// FindByID loads a user without its password hash.
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	// List returns all users without password hashes.
	List(ctx context.Context) ([]*domain.User, error)
	// Delete removes a user. Returns domain.ErrUserNotFound when absent.
	Delete(ctx context.Context, id int64) error
}
