package tokens

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_IssueAndParse(t *testing.T) {
	m := NewManager("test-secret", 30*time.Minute)

	token, err := m.Issue("user-1", "siti")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := m.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "siti", claims.Username)
	assert.Equal(t, "siti", claims.Subject)
}

func TestManager_Parse_WrongSecret(t *testing.T) {
	issuer := NewManager("secret-a", 30*time.Minute)
	verifier := NewManager("secret-b", 30*time.Minute)

	token, err := issuer.Issue("user-1", "siti")
	require.NoError(t, err)

	_, err = verifier.Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestManager_Parse_Expired(t *testing.T) {
	m := NewManager("test-secret", -1*time.Minute)

	token, err := m.Issue("user-1", "siti")
	require.NoError(t, err)

	_, err = m.Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestManager_Parse_Garbage(t *testing.T) {
	m := NewManager("test-secret", 30*time.Minute)

	_, err := m.Parse("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = m.Parse("")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestManager_TTL(t *testing.T) {
	m := NewManager("test-secret", 45*time.Minute)
	assert.Equal(t, 45*time.Minute, m.TTL())
}
