package repository

import (
	"context"
	"errors"

	"github.com/signsyncapp/signsync-api/internal/model"
)

var (
	// ErrNotFound is returned when no user matches the lookup.
	ErrNotFound = errors.New("user not found")

	// ErrDuplicateKey is returned when an insert or update collides
	// with the unique email or username index.
	ErrDuplicateKey = errors.New("duplicate key")
)

// UserRepository defines the interface for user-related database
// operations. Implementations translate driver errors into the
// package-level sentinel errors above.
type UserRepository interface {
	CreateUser(ctx context.Context, user *model.User) (*model.User, error)
	GetUser(ctx context.Context, id string) (*model.User, error)
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)
	UpdateUser(ctx context.Context, id string, params UpdateUserParams) (*model.User, error)

	// MarkVerified sets the verified flag and clears the pending
	// verification code in a single document update.
	MarkVerified(ctx context.Context, id string) (*model.User, error)

	UpdateLastLogin(ctx context.Context, id string) error
}

// UpdateUserParams defines the optional parameters for updating a user.
// Only the fields that are not nil will be updated.
type UpdateUserParams struct {
	Username       *string
	Email          *string
	FullName       *string
	Bio            *string
	ProfilePicture *string
}
