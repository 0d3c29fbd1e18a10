package repository

import (
	"context"
	"errors"

	"blog-server/internal/domain"
)

var (
	// ErrUserNotFound indicates no user matched the lookup.
	ErrUserNotFound = errors.New("user not found")
	// ErrDuplicateEmail indicates the email column's unique constraint fired.
	ErrDuplicateEmail = errors.New("email already exists")
	// ErrDuplicateUsername indicates the username column's unique constraint fired.
	ErrDuplicateUsername = errors.New("username already exists")
)

// UserRepository defines persistence operations for User entities.
// Lookups are case-sensitive exact matches.
type UserRepository interface {
	Init(ctx context.Context) error
	Create(ctx context.Context, user *domain.User) (int64, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	UsernameExists(ctx context.Context, username string) (bool, error)
}
