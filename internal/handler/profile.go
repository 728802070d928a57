package handler

import (
	"errors"
	"net/http"

	"github.com/signsyncapp/signsync-api/internal/payload"
	"github.com/signsyncapp/signsync-api/internal/usecase"
)

// Dashboard handles GET /dashboard.
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	claims, ok := sessionClaims(r)
	if !ok {
		respondAuthError(w, "Token required")
		return
	}

	user, err := h.profileUsecase.GetProfile(r.Context(), claims.UserID)
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			respondJSON(w, http.StatusNotFound, payload.AuthErrorResponse{
				Success: false,
				Message: "User not found",
			})
			return
		}

		h.logger.Error().Err(err).Msg("failed to load dashboard")
		respondMessage(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondJSON(w, http.StatusOK, payload.DashboardResponse{
		Success: true,
		User: payload.DashboardUser{
			ID:       user.ID.Hex(),
			Username: user.Username,
			Email:    user.Email,
			Status:   user.Status,
			Progress: user.Progress,
		},
	})
}

// GetProfile handles GET /profile.
func (h *Handler) GetProfile(w http.ResponseWriter, r *http.Request) {
	claims, ok := sessionClaims(r)
	if !ok {
		respondAuthError(w, "Token required")
		return
	}

	user, err := h.profileUsecase.GetProfile(r.Context(), claims.UserID)
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			respondMessage(w, http.StatusNotFound, "User not found")
			return
		}

		h.logger.Error().Err(err).Msg("failed to fetch profile")
		respondMessage(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondJSON(w, http.StatusOK, payload.ProfileResponse{User: payload.NewUserResponse(user)})
}

// UpdateProfile handles PUT /profile.
func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	claims, ok := sessionClaims(r)
	if !ok {
		respondAuthError(w, "Token required")
		return
	}

	var req payload.UpdateProfileRequest
	if err := decodeJSON(r, &req); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if msg := h.validator.Struct(req); msg != "" {
		respondMessage(w, http.StatusBadRequest, msg)
		return
	}

	if req.FullName == nil && req.Username == nil && req.Email == nil && req.Bio == nil {
		respondMessage(w, http.StatusBadRequest, "No profile fields to update")
		return
	}

	user, err := h.profileUsecase.UpdateProfile(r.Context(), claims.UserID, usecase.UpdateProfileParams{
		FullName: req.FullName,
		Username: req.Username,
		Email:    req.Email,
		Bio:      req.Bio,
	})
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrUserNotFound):
			respondMessage(w, http.StatusNotFound, "User not found")
		case errors.Is(err, usecase.ErrEmailTaken):
			respondMessage(w, http.StatusBadRequest, "Email already in use")
		case errors.Is(err, usecase.ErrUsernameTaken):
			respondMessage(w, http.StatusBadRequest, "Username already taken")
		default:
			h.logger.Error().Err(err).Msg("failed to update profile")
			respondMessage(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	respondJSON(w, http.StatusOK, payload.UpdateProfileResponse{
		Message: "Profile updated successfully",
		User:    payload.NewUserResponse(user),
	})
}

// UpdateProfilePicture handles PUT /profile/picture.
func (h *Handler) UpdateProfilePicture(w http.ResponseWriter, r *http.Request) {
	claims, ok := sessionClaims(r)
	if !ok {
		respondAuthError(w, "Token required")
		return
	}

	var req payload.UpdateProfilePictureRequest
	if err := decodeJSON(r, &req); err != nil {
		respondMessage(w, http.StatusBadRequest, "Image URL is required")
		return
	}

	if msg := h.validator.Struct(req); msg != "" {
		respondMessage(w, http.StatusBadRequest, msg)
		return
	}

	user, err := h.profileUsecase.UpdateProfilePicture(r.Context(), claims.UserID, req.ImageURL)
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			respondMessage(w, http.StatusNotFound, "User not found")
			return
		}

		h.logger.Error().Err(err).Msg("failed to update profile picture")
		respondMessage(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondJSON(w, http.StatusOK, payload.UpdateProfileResponse{
		Message: "Profile picture updated successfully",
		User:    payload.NewUserResponse(user),
	})
}
