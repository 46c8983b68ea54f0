package repository

import (
	"context"

	user "github.com/johannesjahn/bun-chat/internal/pkg/user/application/domain"
)

// UserRepository defines persistence operations for the user directory.
// Password hashes live in their own table and never travel with User values.
type UserRepository interface {
	// CreateUser persists the user and its password hash atomically. A
	// username collision is reported as user.ErrUsernameTaken.
	CreateUser(ctx context.Context, u user.User, passwordHash string) (user.User, error)

	// GetByUsername returns the user or user.ErrUserNotFound.
	GetByUsername(ctx context.Context, username string) (*user.User, error)

	// GetByID returns the user or user.ErrUserNotFound.
	GetByID(ctx context.Context, id int64) (*user.User, error)

	// ListUsers returns all users.
	ListUsers(ctx context.Context) ([]user.User, error)

	// ResolveUsernames maps each existing username to its user id. Unknown
	// usernames are simply absent from the result; the caller decides whether
	// that is an error.
	ResolveUsernames(ctx context.Context, usernames []string) (map[string]int64, error)

	// GetPasswordHash returns the stored hash for the user or
	// user.ErrUserNotFound.
	GetPasswordHash(ctx context.Context, userID int64) (string, error)
}
