package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/dinehub/config"
)

func TestGenerateAndValidateToken(t *testing.T) {
	tok, err := GenerateToken(Identity{
		ID:       "6a0f3c4e-0000-4000-8000-000000000001",
		Username: "alice",
		Roles:    []string{RoleUser},
	})
	require.NoError(t, err)

	claims, err := ValidateToken(tok)
	require.NoError(t, err)

	assert.Equal(t, "6a0f3c4e-0000-4000-8000-000000000001", claims.Subject)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, "alice", claims.Name, "display name falls back to username")
	assert.True(t, claims.HasRole(RoleUser))
	assert.False(t, claims.HasRole(RoleAdmin))
	assert.Equal(t, config.JWTIssuer(), claims.Issuer)
	assert.WithinDuration(t,
		time.Now().Add(time.Duration(config.JWTAccessTokenMinutes())*time.Minute),
		claims.ExpiresAt.Time, 5*time.Second)
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	t.Cleanup(config.Reset)

	config.Set("JWT_SECRET", "first-secret-first-secret-first-secret")
	tok, err := GenerateToken(Identity{ID: "x", Username: "bob"})
	require.NoError(t, err)

	config.Set("JWT_SECRET", "second-secret-second-secret-second-secret")
	_, err = ValidateToken(tok)
	assert.Error(t, err)
}

func TestValidateTokenRejectsExpired(t *testing.T) {
	t.Cleanup(config.Reset)
	config.Set("JWT_ACCESS_TOKEN_MINUTES", "-5")

	tok, err := GenerateToken(Identity{ID: "x", Username: "bob"})
	require.NoError(t, err)

	_, err = ValidateToken(tok)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestValidateTokenRejectsForeignAudience(t *testing.T) {
	t.Cleanup(config.Reset)

	config.Set("JWT_AUDIENCE", "someone-else")
	tok, err := GenerateToken(Identity{ID: "x", Username: "bob"})
	require.NoError(t, err)

	config.Set("JWT_AUDIENCE", "dinehub-clients")
	_, err = ValidateToken(tok)
	assert.ErrorIs(t, err, jwt.ErrTokenInvalidAudience)
}

func TestValidateTokenRequiresSubject(t *testing.T) {
	tok, err := GenerateToken(Identity{Username: "ghost"})
	require.NoError(t, err)

	_, err = ValidateToken(tok)
	assert.ErrorIs(t, err, ErrMissingSubject)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("s3cret")
	require.NoError(t, err)

	assert.NotEqual(t, "s3cret", hash)
	assert.True(t, CheckPassword(hash, "s3cret"))
	assert.False(t, CheckPassword(hash, "wrong"))
}
