package usecase

import (
	"context"
	"crypto/rand"
	"errors"
	"math/big"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/signsyncapp/signsync-api/internal/config"
	"github.com/signsyncapp/signsync-api/internal/model"
	"github.com/signsyncapp/signsync-api/internal/repository"
	"github.com/signsyncapp/signsync-api/shared/auth"
	"github.com/signsyncapp/signsync-api/shared/security"
)

// AccountUsecase defines the account lifecycle: signup, email
// verification, and sign-in.
type AccountUsecase interface {
	SignUp(ctx context.Context, params SignUpParams) error

	// VerifyCode consumes the pending verification code. The returned
	// bool reports whether the account was already verified, in which
	// case the call is an idempotent no-op.
	VerifyCode(ctx context.Context, email, code string) (bool, error)

	SignIn(ctx context.Context, email, password string) (string, error)
}

// SignUpParams defines the parameters for user signup.
type SignUpParams struct {
	Username string
	Email    string
	Password string
}

// VerificationMailer delivers verification codes out of band.
type VerificationMailer interface {
	SendVerificationCode(ctx context.Context, to, username, code string, expiresIn time.Duration) error
}

var (
	ErrEmailAlreadyRegistered  = errors.New("email already registered")
	ErrUsernameTaken           = errors.New("username already taken")
	ErrUserNotFound            = errors.New("user not found")
	ErrInvalidVerificationCode = errors.New("invalid verification code")
	ErrVerificationCodeExpired = errors.New("verification code expired")
	ErrEmailNotVerified        = errors.New("email not verified")
	ErrInvalidPassword         = errors.New("invalid password")
)

type accountUsecase struct {
	userRepo repository.UserRepository
	mailer   VerificationMailer
	jwtAuth  auth.JWTAuthenticator
	cfg      *config.Config
}

// NewAccountUsecase creates a new AccountUsecase.
func NewAccountUsecase(
	userRepo repository.UserRepository,
	mailer VerificationMailer,
	jwtAuth auth.JWTAuthenticator,
	cfg *config.Config,
) AccountUsecase {
	return &accountUsecase{
		userRepo: userRepo,
		mailer:   mailer,
		jwtAuth:  jwtAuth,
		cfg:      cfg,
	}
}

func (u *accountUsecase) SignUp(ctx context.Context, params SignUpParams) error {
	email := normalizeEmail(params.Email)

	// Fast-path existence checks. The unique indexes are the
	// authoritative guard; a concurrent duplicate signup surfaces as
	// ErrDuplicateKey on the insert below.
	if _, err := u.userRepo.GetUserByEmail(ctx, email); err == nil {
		return ErrEmailAlreadyRegistered
	} else if !errors.Is(err, repository.ErrNotFound) {
		return err
	}

	if _, err := u.userRepo.GetUserByUsername(ctx, params.Username); err == nil {
		return ErrUsernameTaken
	} else if !errors.Is(err, repository.ErrNotFound) {
		return err
	}

	passwordHash, err := security.HashPassword(params.Password)
	if err != nil {
		return err
	}

	code, err := generateVerificationCode()
	if err != nil {
		return err
	}

	// Deliver the code before committing the account: a failed or
	// timed out delivery must not leave an account without a usable
	// code.
	mailCtx, cancel := context.WithTimeout(ctx, u.cfg.Verification.MailTimeout)
	defer cancel()

	if err := u.mailer.SendVerificationCode(mailCtx, email, params.Username, code, u.cfg.Verification.CodeTTL); err != nil {
		return err
	}

	if _, err := u.userRepo.CreateUser(ctx, &model.User{
		Username:                  params.Username,
		Email:                     email,
		PasswordHash:              passwordHash,
		Status:                    model.StatusInactive,
		VerificationCode:          code,
		VerificationCodeExpiresAt: time.Now().Add(u.cfg.Verification.CodeTTL),
	}); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return ErrEmailAlreadyRegistered
		}

		return err
	}

	return nil
}

func (u *accountUsecase) VerifyCode(ctx context.Context, email, code string) (bool, error) {
	user, err := u.userRepo.GetUserByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return false, ErrUserNotFound
		}

		return false, err
	}

	if user.Verified {
		return true, nil
	}

	if user.VerificationCode != code {
		return false, ErrInvalidVerificationCode
	}

	if time.Now().After(user.VerificationCodeExpiresAt) {
		return false, ErrVerificationCodeExpired
	}

	if _, err := u.userRepo.MarkVerified(ctx, user.ID.Hex()); err != nil {
		return false, err
	}

	return false, nil
}

func (u *accountUsecase) SignIn(ctx context.Context, email, password string) (string, error) {
	user, err := u.userRepo.GetUserByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", ErrUserNotFound
		}

		return "", err
	}

	// Checked before the password comparison, so a wrong password on
	// an unverified account still reads as "verify first".
	if !user.Verified {
		return "", ErrEmailNotVerified
	}

	if ok, err := security.VerifyPassword(password, user.PasswordHash); err != nil {
		return "", err
	} else if !ok {
		return "", ErrInvalidPassword
	}

	token, err := u.generateSessionToken(user)
	if err != nil {
		return "", err
	}

	if err := u.userRepo.UpdateLastLogin(ctx, user.ID.Hex()); err != nil {
		return "", err
	}

	return token, nil
}

func (u *accountUsecase) generateSessionToken(user *model.User) (string, error) {
	now := time.Now()
	claims := auth.SessionClaims{
		UserID: user.ID.Hex(),
		Email:  user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   user.ID.Hex(),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(u.cfg.Token.SessionTokenTTL)),
			Issuer:    u.cfg.Token.Issuer,
			Audience:  jwt.ClaimStrings{u.cfg.Token.Issuer},
		},
	}

	return u.jwtAuth.GenerateToken(claims, u.cfg.Token.Secret)
}

// generateVerificationCode returns a random four digit code in the
// range 1000-9999.
func generateVerificationCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(9000))
	if err != nil {
		return "", err
	}

	return strconv.FormatInt(n.Int64()+1000, 10), nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
