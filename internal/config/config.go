package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"
)

// Config holds the process-wide configuration, loaded once at startup.
type Config struct {
	Server       ServerConfig
	Mongo        MongoConfig
	Token        TokenConfig
	Verification VerificationConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port            int           `env:"SERVER_PORT"             envDefault:"3000"`
	ReadTimeout     time.Duration `env:"SERVER_READ_TIMEOUT"     envDefault:"10s"`
	WriteTimeout    time.Duration `env:"SERVER_WRITE_TIMEOUT"    envDefault:"15s"`
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// MongoConfig holds document store settings.
type MongoConfig struct {
	URI      string `env:"MONGODB_URI"`
	Database string `env:"MONGODB_DATABASE" envDefault:"signsync"`
}

// TokenConfig holds session token settings. The secret is never logged
// and never leaves the process.
type TokenConfig struct {
	Secret          string        `env:"JWT_SECRET"`
	Issuer          string        `env:"TOKEN_ISSUER"      envDefault:"signsync-api"`
	SessionTokenTTL time.Duration `env:"SESSION_TOKEN_TTL" envDefault:"24h"`
}

// VerificationConfig holds email verification settings.
type VerificationConfig struct {
	CodeTTL     time.Duration `env:"VERIFICATION_CODE_TTL" envDefault:"10m"`
	MailTimeout time.Duration `env:"MAIL_SEND_TIMEOUT"     envDefault:"5s"`
}

// Load parses the configuration from environment variables and
// validates it. Any failure is fatal.
func Load(logger *zerolog.Logger) *Config {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to parse environment variables")
	}

	if err := cfg.validate(); err != nil {
		logger.Fatal().Err(err).Msg("failed to validate configuration")
	}

	return &cfg
}

// validate checks that required settings are present.
func (c *Config) validate() error {
	if c.Mongo.URI == "" {
		return fmt.Errorf("missing MONGODB_URI environment variable")
	}
	if c.Token.Secret == "" {
		return fmt.Errorf("missing JWT_SECRET environment variable")
	}

	return nil
}
