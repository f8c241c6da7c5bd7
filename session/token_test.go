package session

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"expohub/models"
)

func TestTokens_IssueParse(t *testing.T) {
	tokens := NewTokens("secret", time.Hour)
	u := &models.User{
		ID:              "u1",
		Email:           "a@example.com",
		DisplayName:     "Ann",
		ProfileType:     models.Exhibitor,
		ImageURL:        "https://img/a.png",
		CompanyImageURL: "https://img/company.png",
	}

	signed, err := tokens.Issue(u)
	require.NoError(t, err)

	claims, err := tokens.Parse(signed)
	require.NoError(t, err)
	assert.Equal(t, models.MinimalProfile{
		ID:          "u1",
		DisplayName: "Ann",
		Email:       "a@example.com",
		PhotoURL:    "https://img/company.png",
	}, claims.Minimal())
}

func TestTokens_Parse(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	tokens := NewTokens("secret", time.Hour)
	tokens.now = func() time.Time { return now }

	valid, err := tokens.Issue(&models.User{ID: "u1"})
	require.NoError(t, err)

	other, err := NewTokens("other", time.Hour).Issue(&models.User{ID: "u1"})
	require.NoError(t, err)

	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{UserID: "u1"}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tt := []struct {
		name  string
		token string
		now   time.Time
		err   bool
	}{
		{name: "valid", token: valid, now: now},
		{name: "expired", token: valid, now: now.Add(2 * time.Hour), err: true},
		{name: "wrong secret", token: other, now: now, err: true},
		{name: "unsigned", token: none, now: now, err: true},
		{name: "garbage", token: "not-a-token", now: now, err: true},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			tokens.now = func() time.Time { return tc.now }
			_, err := tokens.Parse(tc.token)
			if tc.err {
				assert.True(t, errors.Is(err, ErrInvalidToken), err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestPassword(t *testing.T) {
	hashed, err := HashPassword("correct horse")
	require.NoError(t, err)

	assert.True(t, CheckPassword(hashed, "correct horse"))
	assert.False(t, CheckPassword(hashed, "battery staple"))
}
