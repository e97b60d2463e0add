package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndValidateRoundTrip(t *testing.T) {
	manager := NewCookieManager("secret", 1)

	sessionID, cookieValue, err := manager.Issue()
	require.NoError(t, err)
	assert.NotEmpty(t, sessionID)
	assert.NotEmpty(t, cookieValue)

	got, err := manager.Validate(cookieValue)
	require.NoError(t, err)
	assert.Equal(t, sessionID, got)
}

func TestIssueMintsUniqueSessionIDs(t *testing.T) {
	manager := NewCookieManager("secret", 1)

	first, _, err := manager.Issue()
	require.NoError(t, err)
	second, _, err := manager.Issue()
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}

func TestValidateRejectsForgedCookie(t *testing.T) {
	manager := NewCookieManager("secret", 1)

	_, err := manager.Validate("not-a-jwt")
	assert.Error(t, err)
}

func TestValidateRejectsWrongSecret(t *testing.T) {
	issuer := NewCookieManager("secret-a", 1)
	verifier := NewCookieManager("secret-b", 1)

	_, cookieValue, err := issuer.Issue()
	require.NoError(t, err)

	_, err = verifier.Validate(cookieValue)
	assert.Error(t, err)
}
