package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/order-desk/internal/domain/account"
)

var testAccount = account.Account{ID: 7, Email: "admin@sistema.com", Role: account.RoleAdmin}

func TestIssueAndParse(t *testing.T) {
	m := NewTokenManager("secret", "order-desk", 24*time.Hour)

	raw, exp, err := m.Issue(testAccount)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), exp, time.Minute)

	id, err := m.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, uint(7), id.UserID)
	assert.Equal(t, "admin@sistema.com", id.Email)
	assert.Equal(t, account.RoleAdmin, id.Role)
}

func TestParseExpired(t *testing.T) {
	issuedAt := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	m := NewTokenManager("secret", "order-desk", 24*time.Hour).
		WithClock(func() time.Time { return issuedAt })

	raw, _, err := m.Issue(testAccount)
	require.NoError(t, err)

	later := m.WithClock(func() time.Time { return issuedAt.Add(24*time.Hour + time.Second) })
	_, err = later.Parse(raw)
	assert.ErrorIs(t, err, ErrTokenExpired)

	almost := m.WithClock(func() time.Time { return issuedAt.Add(23 * time.Hour) })
	_, err = almost.Parse(raw)
	assert.NoError(t, err)
}

func TestParseRejectsTampering(t *testing.T) {
	m := NewTokenManager("secret", "order-desk", time.Hour)
	raw, _, err := m.Issue(testAccount)
	require.NoError(t, err)

	t.Run("other secret", func(t *testing.T) {
		_, err := NewTokenManager("other", "order-desk", time.Hour).Parse(raw)
		assert.ErrorIs(t, err, ErrTokenInvalid)
	})

	t.Run("other issuer", func(t *testing.T) {
		_, err := NewTokenManager("secret", "someone-else", time.Hour).Parse(raw)
		assert.ErrorIs(t, err, ErrTokenInvalid)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := m.Parse("not.a.token")
		assert.ErrorIs(t, err, ErrTokenInvalid)
	})

	t.Run("none algorithm", func(t *testing.T) {
		unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{
			RegisteredClaims: jwt.RegisteredClaims{
				Issuer:    "order-desk",
				Subject:   "7",
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		})
		s, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = m.Parse(s)
		assert.ErrorIs(t, err, ErrTokenInvalid)
	})

	t.Run("blank", func(t *testing.T) {
		_, err := m.Parse("  ")
		assert.ErrorIs(t, err, ErrTokenMissing)
	})
}

func TestBearerToken(t *testing.T) {
	tok, err := BearerToken("Bearer abc.def")
	require.NoError(t, err)
	assert.Equal(t, "abc.def", tok)

	tok, err = BearerToken("bearer   xyz ")
	require.NoError(t, err)
	assert.Equal(t, "xyz", tok)

	_, err = BearerToken("")
	assert.ErrorIs(t, err, ErrTokenMissing)

	_, err = BearerToken("Bearer ")
	assert.ErrorIs(t, err, ErrTokenMissing)

	_, err = BearerToken("Basic dXNlcjpwYXNz")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("admin123")
	require.NoError(t, err)
	assert.NotEqual(t, "admin123", hash)

	assert.True(t, CheckPassword(hash, "admin123"))
	assert.False(t, CheckPassword(hash, "admin124"))
	assert.False(t, CheckPassword("not-a-hash", "admin123"))
}
