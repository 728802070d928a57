package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/signsyncapp/signsync-api/internal/config"
	"github.com/signsyncapp/signsync-api/internal/repository"
	"github.com/signsyncapp/signsync-api/shared/auth"
)

type sentEmail struct {
	to       string
	username string
	code     string
}

type fakeMailer struct {
	mu   sync.Mutex
	sent []sentEmail
	err  error
}

func (f *fakeMailer) SendVerificationCode(
	_ context.Context,
	to, username, code string,
	_ time.Duration,
) error {
	if f.err != nil {
		return f.err
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, sentEmail{to: to, username: username, code: code})

	return nil
}

func (f *fakeMailer) lastCode() string {
	f.mu.Lock()
	defer f.mu.Unlock()

	if len(f.sent) == 0 {
		return ""
	}

	return f.sent[len(f.sent)-1].code
}

func testConfig() *config.Config {
	return &config.Config{
		Token: config.TokenConfig{
			Secret:          "test-secret",
			Issuer:          "signsync-api",
			SessionTokenTTL: 24 * time.Hour,
		},
		Verification: config.VerificationConfig{
			CodeTTL:     10 * time.Minute,
			MailTimeout: time.Second,
		},
	}
}

type AccountUsecaseTestSuite struct {
	suite.Suite
	repo    *repository.InMemUserRepository
	mailer  *fakeMailer
	jwtAuth auth.JWTAuthenticator
	cfg     *config.Config
	uc      AccountUsecase
}

func (s *AccountUsecaseTestSuite) SetupTest() {
	s.repo = repository.NewInMemUserRepository()
	s.mailer = &fakeMailer{}
	s.cfg = testConfig()
	s.jwtAuth = auth.NewJWTAuthenticator(s.cfg.Token.Issuer, s.cfg.Token.Issuer)
	s.uc = NewAccountUsecase(s.repo, s.mailer, s.jwtAuth, s.cfg)
}

func (s *AccountUsecaseTestSuite) signUp(username, email, password string) {
	err := s.uc.SignUp(context.Background(), SignUpParams{
		Username: username,
		Email:    email,
		Password: password,
	})
	s.Require().NoError(err)
}

func (s *AccountUsecaseTestSuite) TestSignUp_CreatesUnverifiedUserWithPendingCode() {
	before := time.Now()
	s.signUp("alice", "Alice@X.com", "Secret123")

	user, err := s.repo.GetUserByEmail(context.Background(), "alice@x.com")
	s.Require().NoError(err)

	s.False(user.Verified)
	s.NotEqual("Secret123", user.PasswordHash)
	s.Len(user.VerificationCode, 4)
	s.WithinDuration(
		before.Add(s.cfg.Verification.CodeTTL),
		user.VerificationCodeExpiresAt,
		5*time.Second,
	)

	s.Require().Len(s.mailer.sent, 1)
	s.Equal("alice@x.com", s.mailer.sent[0].to)
	s.Equal(user.VerificationCode, s.mailer.sent[0].code)
}

func (s *AccountUsecaseTestSuite) TestSignUp_DuplicateEmail() {
	s.signUp("alice", "a@x.com", "Secret123")

	err := s.uc.SignUp(context.Background(), SignUpParams{
		Username: "alice2",
		Email:    "a@x.com",
		Password: "Secret123",
	})

	s.ErrorIs(err, ErrEmailAlreadyRegistered)
	s.Len(s.mailer.sent, 1)
}

func (s *AccountUsecaseTestSuite) TestSignUp_DuplicateUsername() {
	s.signUp("alice", "a@x.com", "Secret123")

	err := s.uc.SignUp(context.Background(), SignUpParams{
		Username: "alice",
		Email:    "b@x.com",
		Password: "Secret123",
	})

	s.ErrorIs(err, ErrUsernameTaken)
	s.Len(s.mailer.sent, 1)
}

func (s *AccountUsecaseTestSuite) TestSignUp_DeliveryFailurePersistsNothing() {
	s.mailer.err = errors.New("smtp unreachable")

	err := s.uc.SignUp(context.Background(), SignUpParams{
		Username: "alice",
		Email:    "a@x.com",
		Password: "Secret123",
	})
	s.Require().Error(err)

	_, err = s.repo.GetUserByEmail(context.Background(), "a@x.com")
	s.ErrorIs(err, repository.ErrNotFound)
}

func (s *AccountUsecaseTestSuite) TestVerifyCode_UnknownEmail() {
	_, err := s.uc.VerifyCode(context.Background(), "nobody@x.com", "1234")
	s.ErrorIs(err, ErrUserNotFound)
}

func (s *AccountUsecaseTestSuite) TestVerifyCode_WrongCodeLeavesStateUntouched() {
	s.signUp("alice", "a@x.com", "Secret123")
	code := s.mailer.lastCode()

	wrong := "0000"
	if wrong == code {
		wrong = "0001"
	}

	_, err := s.uc.VerifyCode(context.Background(), "a@x.com", wrong)
	s.ErrorIs(err, ErrInvalidVerificationCode)

	user, err := s.repo.GetUserByEmail(context.Background(), "a@x.com")
	s.Require().NoError(err)
	s.False(user.Verified)
	s.Equal(code, user.VerificationCode)
}

func (s *AccountUsecaseTestSuite) TestVerifyCode_Expired() {
	s.cfg.Verification.CodeTTL = -time.Minute
	s.signUp("alice", "a@x.com", "Secret123")

	_, err := s.uc.VerifyCode(context.Background(), "a@x.com", s.mailer.lastCode())
	s.ErrorIs(err, ErrVerificationCodeExpired)

	user, err := s.repo.GetUserByEmail(context.Background(), "a@x.com")
	s.Require().NoError(err)
	s.False(user.Verified)
}

func (s *AccountUsecaseTestSuite) TestVerifyCode_SuccessThenIdempotent() {
	s.signUp("alice", "a@x.com", "Secret123")
	code := s.mailer.lastCode()

	alreadyVerified, err := s.uc.VerifyCode(context.Background(), "a@x.com", code)
	s.Require().NoError(err)
	s.False(alreadyVerified)

	user, err := s.repo.GetUserByEmail(context.Background(), "a@x.com")
	s.Require().NoError(err)
	s.True(user.Verified)
	s.Empty(user.VerificationCode)
	s.True(user.VerificationCodeExpiresAt.IsZero())

	alreadyVerified, err = s.uc.VerifyCode(context.Background(), "a@x.com", code)
	s.Require().NoError(err)
	s.True(alreadyVerified)
}

func (s *AccountUsecaseTestSuite) TestSignIn_UnknownEmail() {
	_, err := s.uc.SignIn(context.Background(), "nobody@x.com", "Secret123")
	s.ErrorIs(err, ErrUserNotFound)
}

func (s *AccountUsecaseTestSuite) TestSignIn_UnverifiedFailsRegardlessOfPassword() {
	s.signUp("alice", "a@x.com", "Secret123")

	_, err := s.uc.SignIn(context.Background(), "a@x.com", "Secret123")
	s.ErrorIs(err, ErrEmailNotVerified)

	_, err = s.uc.SignIn(context.Background(), "a@x.com", "wrong-password")
	s.ErrorIs(err, ErrEmailNotVerified)
}

func (s *AccountUsecaseTestSuite) TestSignIn_WrongPassword() {
	s.signUpVerified("alice", "a@x.com", "Secret123")

	_, err := s.uc.SignIn(context.Background(), "a@x.com", "wrong-password")
	s.ErrorIs(err, ErrInvalidPassword)
}

func (s *AccountUsecaseTestSuite) TestSignIn_IssuesTokenAndUpdatesLastLogin() {
	s.signUpVerified("alice", "a@x.com", "Secret123")

	token, err := s.uc.SignIn(context.Background(), "a@x.com", "Secret123")
	s.Require().NoError(err)

	claims, err := s.jwtAuth.ValidateSessionToken(token, s.cfg.Token.Secret)
	s.Require().NoError(err)
	s.Equal("a@x.com", claims.Email)

	user, err := s.repo.GetUserByEmail(context.Background(), "a@x.com")
	s.Require().NoError(err)
	s.Equal(user.ID.Hex(), claims.UserID)
	s.False(user.LastLoginAt.IsZero())
}

func (s *AccountUsecaseTestSuite) signUpVerified(username, email, password string) {
	s.signUp(username, email, password)

	_, err := s.uc.VerifyCode(context.Background(), email, s.mailer.lastCode())
	s.Require().NoError(err)
}

func TestAccountUsecaseTestSuite(t *testing.T) {
	suite.Run(t, new(AccountUsecaseTestSuite))
}

func TestGenerateVerificationCode_Range(t *testing.T) {
	for i := 0; i < 100; i++ {
		code, err := generateVerificationCode()
		require.NoError(t, err)
		require.Len(t, code, 4)
		assert.GreaterOrEqual(t, code, "1000")
		assert.LessOrEqual(t, code, "9999")
	}
}
