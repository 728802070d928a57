package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// StatusInactive is the initial learning status assigned at signup.
const StatusInactive = "inactive"

// User represents a registered user of the app. Email is stored
// lowercased and is unique, as is the username. The verification code
// fields are set between signup and a successful verification and are
// unset afterwards.
type User struct {
	ID                        bson.ObjectID `bson:"_id,omitempty"`
	Username                  string        `bson:"username"`
	Email                     string        `bson:"email"`
	PasswordHash              string        `bson:"password_hash"`
	FullName                  string        `bson:"full_name,omitempty"`
	Bio                       string        `bson:"bio,omitempty"`
	ProfilePicture            string        `bson:"profile_picture,omitempty"`
	Status                    string        `bson:"status"`
	Progress                  int           `bson:"progress"`
	Verified                  bool          `bson:"verified"`
	VerificationCode          string        `bson:"verification_code,omitempty"`
	VerificationCodeExpiresAt time.Time     `bson:"verification_code_expires_at,omitempty"`
	LastLoginAt               time.Time     `bson:"last_login_at,omitempty"`
	CreatedAt                 time.Time     `bson:"created_at"`
	UpdatedAt                 time.Time     `bson:"updated_at"`
}
