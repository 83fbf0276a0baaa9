package user

import (
	"context"
	"errors"
)

// ErrUserNotFound is returned when a user record is not found.
var ErrUserNotFound = errors.New("user not found")

// ErrDuplicateEmail is returned when another user already owns the email.
var ErrDuplicateEmail = errors.New("email already in use")

// Repository provides operations on the users table.
type Repository interface {
	Create(ctx context.Context, u *User) error
	GetByID(ctx context.Context, id int64) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	List(ctx context.Context) ([]User, error)
	Delete(ctx context.Context, id int64) error
	// UpdateProfile updates name and email, and the password hash only when
	// passwordHash is non-nil.
	UpdateProfile(ctx context.Context, id int64, name, email string, passwordHash *string) error
	Count(ctx context.Context) (int, error)
}
