package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signUpForm struct {
	Username string `validate:"required"`
	Email    string `validate:"required,email"`
}

func TestStruct(t *testing.T) {
	v, err := New()
	require.NoError(t, err)

	assert.Empty(t, v.Struct(signUpForm{Username: "alice", Email: "a@x.com"}))

	msg := v.Struct(signUpForm{Email: "a@x.com"})
	assert.Contains(t, msg, "required")

	msg = v.Struct(signUpForm{Username: "alice", Email: "not-an-email"})
	assert.Contains(t, msg, "email")
}
