package auth_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johannesjahn/bun-chat/internal/infrastructure/auth"
)

func Test_TokenService_round_trips_the_principal(t *testing.T) {
	svc := auth.NewTokenService("test-secret", time.Hour)

	token, err := svc.Issue(42, "alice")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	p, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), p.UserID)
	assert.Equal(t, "alice", p.Username)
}

func Test_TokenService_rejects_wrong_secret(t *testing.T) {
	token, err := auth.NewTokenService("secret-a", time.Hour).Issue(1, "alice")
	require.NoError(t, err)

	_, err = auth.NewTokenService("secret-b", time.Hour).Verify(token)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func Test_TokenService_rejects_expired_token(t *testing.T) {
	svc := auth.NewTokenService("test-secret", -time.Minute)

	token, err := svc.Issue(1, "alice")
	require.NoError(t, err)

	_, err = svc.Verify(token)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func Test_TokenService_rejects_garbage(t *testing.T) {
	svc := auth.NewTokenService("test-secret", time.Hour)

	for _, token := range []string{"", "not-a-token", "a.b.c"} {
		_, err := svc.Verify(token)
		assert.ErrorIs(t, err, auth.ErrInvalidToken)
	}
}
