package handlers

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/sisadmin/internal/models"
)

func TestGenerateAndValidateAccessToken(t *testing.T) {
	cfg := testJWTConfig()
	user := &models.StoredUser{ID: 42, Username: "ada", Fullname: "Ada Lovelace"}

	token, expiresIn, err := GenerateAccessToken(cfg, user)
	require.NoError(t, err)
	assert.Equal(t, int64(900), expiresIn)

	claims, err := ValidateAccessToken(cfg, token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "ada", claims.Username)
	assert.Equal(t, "Ada Lovelace", claims.Fullname)
	assert.Equal(t, cfg.Issuer, claims.Issuer)
}

func TestValidateAccessToken_Invalid(t *testing.T) {
	cfg := testJWTConfig()
	user := &models.StoredUser{ID: 1, Username: "ada"}

	expiredCfg := cfg
	expiredCfg.AccessTokenTTL = -time.Minute
	expired, _, err := GenerateAccessToken(expiredCfg, user)
	require.NoError(t, err)

	otherSecret := cfg
	otherSecret.Secret = []byte("other")
	foreign, _, err := GenerateAccessToken(otherSecret, user)
	require.NoError(t, err)

	otherIssuer := cfg
	otherIssuer.Issuer = "someone-else"
	wrongIssuer, _, err := GenerateAccessToken(otherIssuer, user)
	require.NoError(t, err)

	noUser, _, err := GenerateAccessToken(cfg, &models.StoredUser{Username: "ghost"})
	require.NoError(t, err)

	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"user_id": 1}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := map[string]string{
		"expired":      expired,
		"wrong secret": foreign,
		"wrong issuer": wrongIssuer,
		"no user id":   noUser,
		"alg none":     none,
		"garbage":      "not-a-jwt",
	}

	for name, token := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := ValidateAccessToken(cfg, token)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}
