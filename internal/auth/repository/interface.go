package repository

import (
	"context"
	"time"
)

// Admin accounts are distinguished by this level value.
const LevelAdmin = "Admin"

// User is a registered account.
type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	School       string
	Level        string
	Number       string
	Address      string
	Town         string
	DateJoined   time.Time
}

// IsAdmin reports whether the account has admin privileges.
func (u User) IsAdmin() bool { return u.Level == LevelAdmin }

// CreateUserParams carries the fields for a new account.
type CreateUserParams struct {
	Name         string
	Email        string
	PasswordHash string
	School       string
	Level        string
	Number       string
	Address      string
	Town         string
}

// UpdateProfileParams carries optional profile updates. Nil fields are left
// unchanged.
type UpdateProfileParams struct {
	ID      int64
	Name    *string
	School  *string
	Number  *string
	Address *string
	Town    *string
}

// Repository defines user persistence operations.
type Repository interface {
	CreateUser(ctx context.Context, params CreateUserParams) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByID(ctx context.Context, id int64) (User, error)
	UpdateProfile(ctx context.Context, params UpdateProfileParams) (User, error)
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
	ListAll(ctx context.Context) ([]User, error)
	Delete(ctx context.Context, id int64) error
}
