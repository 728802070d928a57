package mailer

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"
	"gopkg.in/gomail.v2"
)

// Mailer represents an email sender.
type Mailer struct {
	config *mailerConfig
	dialer *gomail.Dialer
}

// Email represents an email message.
type Email struct {
	To       []string
	Subject  string
	Body     string
	HTMLBody string
}

// NewMailer creates a new Mailer instance configured from the
// environment.
func NewMailer(logger *zerolog.Logger) *Mailer {
	cfg := newMailerConfig(logger)

	if err := cfg.validate(); err != nil {
		logger.Fatal().Err(err).Msg("failed to validate Mailer configuration")
	}

	dialer := gomail.NewDialer(
		cfg.Host,
		cfg.Port,
		cfg.Username,
		cfg.Password,
	)

	return &Mailer{
		config: cfg,
		dialer: dialer,
	}
}

// Send sends a single email.
func (m *Mailer) Send(email Email) error {
	if len(email.To) == 0 {
		return fmt.Errorf("no recipients specified")
	}

	msg := gomail.NewMessage()
	m.setEmailMessage(msg, email)

	return m.dialer.DialAndSend(msg)
}

// SendContext sends a single email, giving up when ctx is cancelled.
// The SMTP dial and send run in their own goroutine because gomail has
// no context support of its own.
func (m *Mailer) SendContext(ctx context.Context, email Email) error {
	done := make(chan error, 1)

	go func() {
		done <- m.Send(email)
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// SendVerificationCode emails the signup verification code to the
// given address.
func (m *Mailer) SendVerificationCode(
	ctx context.Context,
	to string,
	username string,
	code string,
	expiresIn time.Duration,
) error {
	var body bytes.Buffer
	err := verificationTmpl.Execute(&body, verificationEmailParams{
		Username:         username,
		Code:             code,
		ExpiresInMinutes: int(expiresIn.Minutes()),
	})
	if err != nil {
		return err
	}

	return m.SendContext(ctx, Email{
		To:       []string{to},
		Subject:  "Verify your email",
		HTMLBody: body.String(),
	})
}

func (m *Mailer) setEmailMessage(msg *gomail.Message, email Email) {
	msg.SetHeader("From", m.config.From)
	msg.SetHeader("To", email.To...)
	msg.SetHeader("Subject", email.Subject)

	if email.HTMLBody != "" {
		msg.SetBody("text/html", email.HTMLBody)
		if email.Body != "" {
			msg.AddAlternative("text/plain", email.Body)
		}
	} else {
		msg.SetBody("text/plain", email.Body)
	}
}

// verificationEmailParams is the data passed to the verification email
// template.
type verificationEmailParams struct {
	Username         string
	Code             string
	ExpiresInMinutes int
}

var verificationTmpl = template.Must(template.New("verification").Parse(`
<div style="font-family: Arial, sans-serif; padding: 20px; background-color: #f9f9f9;">
  <div style="max-width: 600px; margin: auto; background-color: #ffffff; border-radius: 8px; padding: 30px;">
    <h2 style="color: #333333;">Email Verification Code</h2>
    <p style="color: #555555; font-size: 16px;">
      Hello {{.Username}},<br><br>
      Your verification code is: <strong style="font-size: 24px;">{{.Code}}</strong><br><br>
      This code will expire in {{.ExpiresInMinutes}} minutes.
    </p>
  </div>
</div>`))

// mailerConfig holds SMTP configuration for sending emails.
type mailerConfig struct {
	Host     string `env:"SMTP_HOST"`
	Port     int    `env:"SMTP_PORT"`
	Username string `env:"SMTP_USERNAME"`
	Password string `env:"SMTP_PASSWORD"`
	From     string `env:"SMTP_FROM"`
}

// newMailerConfig creates a mailerConfig instance from environment variables.
func newMailerConfig(logger *zerolog.Logger) *mailerConfig {
	cfg, err := env.ParseAs[mailerConfig]()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to parse environment variables")
	}

	return &cfg
}

// validate checks if the Mailer configuration is valid.
func (c *mailerConfig) validate() error {
	if c.Host == "" {
		return fmt.Errorf("missing SMTP_HOST environment variable")
	}
	if c.Port == 0 {
		return fmt.Errorf("missing SMTP_PORT environment variable")
	}
	if c.Username == "" {
		return fmt.Errorf("missing SMTP_USERNAME environment variable")
	}
	if c.Password == "" {
		return fmt.Errorf("missing SMTP_PASSWORD environment variable")
	}
	if c.From == "" {
		return fmt.Errorf("missing SMTP_FROM environment variable")
	}

	return nil
}
