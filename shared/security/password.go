package security

import "github.com/matthewhartstonge/argon2"

// HashPassword hashes a plaintext password using argon2id with the
// library's default parameters. The returned string carries the salt
// and parameters alongside the digest.
func HashPassword(password string) (string, error) {
	cfg := argon2.DefaultConfig()

	encoded, err := cfg.HashEncoded([]byte(password))
	if err != nil {
		return "", err
	}

	return string(encoded), nil
}

// VerifyPassword reports whether the plaintext password matches the
// encoded argon2 hash.
func VerifyPassword(password, hash string) (bool, error) {
	return argon2.VerifyEncoded([]byte(password), []byte(hash))
}
