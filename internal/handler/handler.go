package handler

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/signsyncapp/signsync-api/internal/config"
	"github.com/signsyncapp/signsync-api/internal/payload"
	"github.com/signsyncapp/signsync-api/internal/usecase"
	"github.com/signsyncapp/signsync-api/shared/auth"
	"github.com/signsyncapp/signsync-api/shared/validator"
)

// Handler serves the account REST API.
type Handler struct {
	accountUsecase usecase.AccountUsecase
	profileUsecase usecase.ProfileUsecase
	jwtAuth        auth.JWTAuthenticator
	validator      *validator.Validator
	cfg            *config.Config
	logger         *zerolog.Logger
}

// New creates a new Handler.
func New(
	cfg *config.Config,
	accountUsecase usecase.AccountUsecase,
	profileUsecase usecase.ProfileUsecase,
	jwtAuth auth.JWTAuthenticator,
	validator *validator.Validator,
	logger *zerolog.Logger,
) *Handler {
	return &Handler{
		accountUsecase: accountUsecase,
		profileUsecase: profileUsecase,
		jwtAuth:        jwtAuth,
		validator:      validator,
		cfg:            cfg,
		logger:         logger,
	}
}

func decodeJSON(r *http.Request, dst any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(dst)
}

func respondJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func respondMessage(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, payload.MessageResponse{Message: message})
}
