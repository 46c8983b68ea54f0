package user

import (
	"errors"
	"time"
)

// User is an account in the directory. The id is immutable and the username
// is unique across all users.
type User struct {
	ID        int64     `db:"id"`
	Username  string    `db:"username"`
	Name      string    `db:"name"`
	CreatedAt time.Time `db:"created_at"`
}

// Domain-level errors for the user directory.
var (
	// ErrValidation is the base error for malformed registration or login
	// input; specific messages wrap it.
	ErrValidation = errors.New("user: validation failed")

	// ErrUsernameTaken signals a registration with an already-used username.
	ErrUsernameTaken = errors.New("user: username already exists")

	// ErrUserNotFound signals a reference to a user that does not exist.
	ErrUserNotFound = errors.New("user: user not found")

	// ErrInvalidCredentials covers both an unknown username and a wrong
	// password; login never reveals which one it was.
	ErrInvalidCredentials = errors.New("user: invalid credentials")
)
