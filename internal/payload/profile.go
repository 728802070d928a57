package payload

import (
	"time"

	"github.com/signsyncapp/signsync-api/internal/model"
)

type UpdateProfileRequest struct {
	FullName *string `json:"fullName"`
	Username *string `json:"username" validate:"omitempty,min=1"`
	Email    *string `json:"email"    validate:"omitempty,email"`
	Bio      *string `json:"bio"`
}

type UpdateProfilePictureRequest struct {
	ImageURL string `json:"imageUrl" validate:"required"`
}

// UserResponse is a user stripped of the password hash and the pending
// verification code.
type UserResponse struct {
	ID             string    `json:"id"`
	Username       string    `json:"username"`
	Email          string    `json:"email"`
	FullName       string    `json:"fullName,omitempty"`
	Bio            string    `json:"bio,omitempty"`
	ProfilePicture string    `json:"profilePicture,omitempty"`
	Status         string    `json:"status"`
	Progress       int       `json:"progress"`
	Verified       bool      `json:"verified"`
	CreatedAt      time.Time `json:"createdAt"`
}

// NewUserResponse builds the sanitized view of a user.
func NewUserResponse(user *model.User) UserResponse {
	return UserResponse{
		ID:             user.ID.Hex(),
		Username:       user.Username,
		Email:          user.Email,
		FullName:       user.FullName,
		Bio:            user.Bio,
		ProfilePicture: user.ProfilePicture,
		Status:         user.Status,
		Progress:       user.Progress,
		Verified:       user.Verified,
		CreatedAt:      user.CreatedAt,
	}
}

type ProfileResponse struct {
	User UserResponse `json:"user"`
}

type UpdateProfileResponse struct {
	Message string       `json:"message"`
	User    UserResponse `json:"user"`
}

// DashboardUser is the subset of the user shown on the dashboard.
type DashboardUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Status   string `json:"status"`
	Progress int    `json:"progress"`
}

type DashboardResponse struct {
	Success bool          `json:"success"`
	User    DashboardUser `json:"user"`
}
