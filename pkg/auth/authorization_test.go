package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogin(t *testing.T) {
	service := NewService("ssj")

	token, err := service.Login("ssj")
	assert.Nil(t, err, "Should not have an error for the right passphrase")
	assert.NotEmpty(t, token, "Token should not be empty")
	assert.True(t, service.Verify(token), "Issued token should verify")
}

func TestLogin_WrongPassphrase(t *testing.T) {
	service := NewService("ssj")

	_, err := service.Login("guess")
	assert.ErrorIs(t, err, ErrWrongPassphrase)
}

func TestLogin_EmptyPassphraseNeverMatches(t *testing.T) {
	service := NewService("")

	_, err := service.Login("")
	assert.ErrorIs(t, err, ErrWrongPassphrase, "an unset passphrase must not grant access")
}

func TestVerify_UnknownToken(t *testing.T) {
	service := NewService("ssj")
	assert.False(t, service.Verify("not-a-token"))
}
