package repository

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/signsyncapp/signsync-api/internal/model"
)

// InMemUserRepository is a UserRepository backed by a map, used in
// tests and local development. It enforces the same email and username
// uniqueness as the Mongo unique indexes.
type InMemUserRepository struct {
	mu    sync.RWMutex
	users map[string]*model.User
}

// NewInMemUserRepository creates an empty in-memory repository.
func NewInMemUserRepository() *InMemUserRepository {
	return &InMemUserRepository{users: make(map[string]*model.User)}
}

func (r *InMemUserRepository) CreateUser(_ context.Context, user *model.User) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Email == user.Email || u.Username == user.Username {
			return nil, ErrDuplicateKey
		}
	}

	now := time.Now()
	user.ID = bson.NewObjectID()
	user.CreatedAt = now
	user.UpdatedAt = now

	r.users[user.ID.Hex()] = copyUser(user)

	return user, nil
}

func (r *InMemUserRepository) GetUser(_ context.Context, id string) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[id]
	if !ok {
		return nil, ErrNotFound
	}

	return copyUser(user), nil
}

func (r *InMemUserRepository) GetUserByEmail(_ context.Context, email string) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Email == email {
			return copyUser(u), nil
		}
	}

	return nil, ErrNotFound
}

func (r *InMemUserRepository) GetUserByUsername(_ context.Context, username string) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Username == username {
			return copyUser(u), nil
		}
	}

	return nil, ErrNotFound
}

func (r *InMemUserRepository) UpdateUser(
	_ context.Context,
	id string,
	params UpdateUserParams,
) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[id]
	if !ok {
		return nil, ErrNotFound
	}

	if params.Username == nil && params.Email == nil && params.FullName == nil &&
		params.Bio == nil && params.ProfilePicture == nil {
		return nil, errors.New("no user fields to update")
	}

	if params.Email != nil {
		for _, u := range r.users {
			if u.ID.Hex() != id && u.Email == *params.Email {
				return nil, ErrDuplicateKey
			}
		}
		user.Email = *params.Email
	}
	if params.Username != nil {
		for _, u := range r.users {
			if u.ID.Hex() != id && u.Username == *params.Username {
				return nil, ErrDuplicateKey
			}
		}
		user.Username = *params.Username
	}
	if params.FullName != nil {
		user.FullName = *params.FullName
	}
	if params.Bio != nil {
		user.Bio = *params.Bio
	}
	if params.ProfilePicture != nil {
		user.ProfilePicture = *params.ProfilePicture
	}

	user.UpdatedAt = time.Now()

	return copyUser(user), nil
}

func (r *InMemUserRepository) MarkVerified(_ context.Context, id string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[id]
	if !ok {
		return nil, ErrNotFound
	}

	user.Verified = true
	user.VerificationCode = ""
	user.VerificationCodeExpiresAt = time.Time{}
	user.UpdatedAt = time.Now()

	return copyUser(user), nil
}

func (r *InMemUserRepository) UpdateLastLogin(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[id]
	if !ok {
		return ErrNotFound
	}

	user.LastLoginAt = time.Now()

	return nil
}

func copyUser(u *model.User) *model.User {
	c := *u
	return &c
}
