package usecase

import (
	"context"
	"errors"

	"github.com/signsyncapp/signsync-api/internal/model"
	"github.com/signsyncapp/signsync-api/internal/repository"
)

// ProfileUsecase defines profile reads and updates for an already
// authenticated user.
type ProfileUsecase interface {
	GetProfile(ctx context.Context, userID string) (*model.User, error)
	UpdateProfile(ctx context.Context, userID string, params UpdateProfileParams) (*model.User, error)
	UpdateProfilePicture(ctx context.Context, userID, imageURL string) (*model.User, error)
}

// UpdateProfileParams defines the optional profile fields to update.
type UpdateProfileParams struct {
	FullName *string
	Username *string
	Email    *string
	Bio      *string
}

var (
	ErrEmailTaken = errors.New("email already in use")
)

type profileUsecase struct {
	userRepo repository.UserRepository
}

// NewProfileUsecase creates a new ProfileUsecase.
func NewProfileUsecase(userRepo repository.UserRepository) ProfileUsecase {
	return &profileUsecase{userRepo: userRepo}
}

func (u *profileUsecase) GetProfile(ctx context.Context, userID string) (*model.User, error) {
	user, err := u.userRepo.GetUser(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}

		return nil, err
	}

	return user, nil
}

func (u *profileUsecase) UpdateProfile(
	ctx context.Context,
	userID string,
	params UpdateProfileParams,
) (*model.User, error) {
	updateParams := repository.UpdateUserParams{
		FullName: params.FullName,
		Username: params.Username,
		Bio:      params.Bio,
	}

	if params.Email != nil {
		email := normalizeEmail(*params.Email)
		if err := u.checkEmailAvailable(ctx, userID, email); err != nil {
			return nil, err
		}
		updateParams.Email = &email
	}

	if params.Username != nil {
		if err := u.checkUsernameAvailable(ctx, userID, *params.Username); err != nil {
			return nil, err
		}
	}

	user, err := u.userRepo.UpdateUser(ctx, userID, updateParams)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return nil, ErrUserNotFound
		case errors.Is(err, repository.ErrDuplicateKey):
			// Lost the race between the availability check and the
			// update; the unique index is the arbiter.
			if params.Email != nil {
				return nil, ErrEmailTaken
			}
			return nil, ErrUsernameTaken
		}

		return nil, err
	}

	return user, nil
}

func (u *profileUsecase) UpdateProfilePicture(
	ctx context.Context,
	userID, imageURL string,
) (*model.User, error) {
	user, err := u.userRepo.UpdateUser(ctx, userID, repository.UpdateUserParams{
		ProfilePicture: &imageURL,
	})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}

		return nil, err
	}

	return user, nil
}

func (u *profileUsecase) checkEmailAvailable(ctx context.Context, userID, email string) error {
	existing, err := u.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil
		}

		return err
	}

	if existing.ID.Hex() != userID {
		return ErrEmailTaken
	}

	return nil
}

func (u *profileUsecase) checkUsernameAvailable(ctx context.Context, userID, username string) error {
	existing, err := u.userRepo.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil
		}

		return err
	}

	if existing.ID.Hex() != userID {
		return ErrUsernameTaken
	}

	return nil
}
