package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Schmandi/HIRED-server/internal/config"
	"github.com/Schmandi/HIRED-server/internal/domain"
)

func testAuthConfig() config.AuthConfig {
	return config.AuthConfig{
		AccessTokenSecret:     "access-secret",
		RefreshTokenSecret:    "refresh-secret",
		AccessTokenTTLSeconds: 900,
		RefreshTokenTTLHours:  24,
	}
}

func testUser() *domain.User {
	return &domain.User{
		ID:       "u-1",
		Username: "alice",
		Roles:    []string{domain.RoleEmployee, domain.RoleManager},
		Active:   true,
	}
}

func TestIssuePair_AccessClaims(t *testing.T) {
	t.Parallel()

	tm := NewTokenManager(testAuthConfig())
	pair, err := tm.IssuePair(testUser())
	require.NoError(t, err)
	require.NotEmpty(t, pair.AccessToken)
	require.NotEmpty(t, pair.RefreshToken)

	claims, err := tm.ParseAccess(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, "alice", claims.Subject)
	assert.Equal(t, []string{domain.RoleEmployee, domain.RoleManager}, claims.Roles)
	assert.Equal(t, 900*time.Second, claims.ExpiresAt.Sub(claims.IssuedAt.Time))
}

func TestIssuePair_RefreshClaims(t *testing.T) {
	t.Parallel()

	tm := NewTokenManager(testAuthConfig())
	pair, err := tm.IssuePair(testUser())
	require.NoError(t, err)

	claims, err := tm.ParseRefresh(pair.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Subject)
	assert.Equal(t, 24*time.Hour, claims.ExpiresAt.Sub(claims.IssuedAt.Time))
}

func TestParse_KindsAreDisjoint(t *testing.T) {
	t.Parallel()

	tm := NewTokenManager(testAuthConfig())
	pair, err := tm.IssuePair(testUser())
	require.NoError(t, err)

	// A token of one kind must never verify as the other kind.
	_, err = tm.ParseRefresh(pair.AccessToken)
	assert.ErrorIs(t, err, ErrTokenInvalid)
	_, err = tm.ParseAccess(pair.RefreshToken)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestParseRefresh_WrongSecret(t *testing.T) {
	t.Parallel()

	tm := NewTokenManager(testAuthConfig())
	pair, err := tm.IssuePair(testUser())
	require.NoError(t, err)

	other := testAuthConfig()
	other.RefreshTokenSecret = "a-different-secret"
	_, err = NewTokenManager(other).ParseRefresh(pair.RefreshToken)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestParseRefresh_Expired(t *testing.T) {
	t.Parallel()

	cfg := testAuthConfig()
	cfg.RefreshTokenTTLHours = -1
	tm := NewTokenManager(cfg)

	token, err := tm.IssueRefresh(testUser())
	require.NoError(t, err)

	_, err = tm.ParseRefresh(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestParseAccess_Tampered(t *testing.T) {
	t.Parallel()

	tm := NewTokenManager(testAuthConfig())
	token, err := tm.IssueAccess(testUser())
	require.NoError(t, err)

	_, err = tm.ParseAccess(token + "x")
	assert.ErrorIs(t, err, ErrTokenInvalid)

	_, err = tm.ParseAccess("not.a.jwt")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestIssueAccess_UniquePerIssue(t *testing.T) {
	t.Parallel()

	tm := NewTokenManager(testAuthConfig())
	user := testUser()

	first, err := tm.IssueAccess(user)
	require.NoError(t, err)
	second, err := tm.IssueAccess(user)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}
