package handler

import (
	"errors"
	"net/http"

	"github.com/signsyncapp/signsync-api/internal/payload"
	"github.com/signsyncapp/signsync-api/internal/usecase"
)

// SignUp handles POST /userSignup.
func (h *Handler) SignUp(w http.ResponseWriter, r *http.Request) {
	var req payload.SignUpRequest
	if err := decodeJSON(r, &req); err != nil {
		respondMessage(w, http.StatusBadRequest, "All fields are required")
		return
	}

	if msg := h.validator.Struct(req); msg != "" {
		respondMessage(w, http.StatusBadRequest, msg)
		return
	}

	err := h.accountUsecase.SignUp(r.Context(), usecase.SignUpParams{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrEmailAlreadyRegistered):
			respondMessage(w, http.StatusBadRequest, "Email already registered")
		case errors.Is(err, usecase.ErrUsernameTaken):
			respondMessage(w, http.StatusBadRequest, "Username already taken")
		default:
			h.logger.Error().Err(err).Msg("failed to sign up user")
			respondMessage(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	respondMessage(w, http.StatusCreated, "Verification code sent to your email")
}

// VerifyCode handles POST /verifyCode.
func (h *Handler) VerifyCode(w http.ResponseWriter, r *http.Request) {
	var req payload.VerifyCodeRequest
	if err := decodeJSON(r, &req); err != nil {
		respondMessage(w, http.StatusBadRequest, "Email and code are required")
		return
	}

	if msg := h.validator.Struct(req); msg != "" {
		respondMessage(w, http.StatusBadRequest, msg)
		return
	}

	alreadyVerified, err := h.accountUsecase.VerifyCode(r.Context(), req.Email, req.Code)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrUserNotFound):
			respondMessage(w, http.StatusNotFound, "User not found")
		case errors.Is(err, usecase.ErrInvalidVerificationCode):
			respondMessage(w, http.StatusBadRequest, "Invalid verification code")
		case errors.Is(err, usecase.ErrVerificationCodeExpired):
			respondMessage(w, http.StatusBadRequest, "Verification code expired")
		default:
			h.logger.Error().Err(err).Msg("failed to verify code")
			respondMessage(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	if alreadyVerified {
		respondMessage(w, http.StatusOK, "User already verified")
		return
	}

	respondMessage(w, http.StatusOK, "Email verified successfully")
}

// SignIn handles POST /userSignin.
func (h *Handler) SignIn(w http.ResponseWriter, r *http.Request) {
	var req payload.SignInRequest
	if err := decodeJSON(r, &req); err != nil {
		respondMessage(w, http.StatusBadRequest, "All fields are required")
		return
	}

	if msg := h.validator.Struct(req); msg != "" {
		respondMessage(w, http.StatusBadRequest, msg)
		return
	}

	token, err := h.accountUsecase.SignIn(r.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrUserNotFound):
			respondMessage(w, http.StatusNotFound, "User not found")
		case errors.Is(err, usecase.ErrEmailNotVerified):
			respondMessage(w, http.StatusForbidden, "Please verify your email first")
		case errors.Is(err, usecase.ErrInvalidPassword):
			respondMessage(w, http.StatusBadRequest, "Invalid password")
		default:
			h.logger.Error().Err(err).Msg("failed to sign in user")
			respondMessage(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	respondJSON(w, http.StatusOK, payload.SignInResponse{
		Message: "User logged in successfully",
		Token:   token,
		Status:  http.StatusOK,
	})
}
