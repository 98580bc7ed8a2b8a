// file: internals/features/users/auth/service/token_service_test.go
package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"klinikku_backend/internals/configs"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	configs.JWTSecret = "unit-test-secret"

	userID := uuid.New()
	token, err := IssueAccessToken(userID, "cashier01", "staff")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID.String(), claims["sub"])
	assert.Equal(t, "cashier01", claims["username"])
	assert.Equal(t, "staff", claims["role"])
}

func TestParseAccessToken_RejectsTamperedToken(t *testing.T) {
	configs.JWTSecret = "unit-test-secret"

	token, err := IssueAccessToken(uuid.New(), "cashier01", "staff")
	require.NoError(t, err)

	_, err = ParseAccessToken(token + "x")
	assert.Error(t, err)
}

func TestParseAccessToken_RejectsForeignSecret(t *testing.T) {
	configs.JWTSecret = "unit-test-secret"
	token, err := IssueAccessToken(uuid.New(), "cashier01", "staff")
	require.NoError(t, err)

	configs.JWTSecret = "rotated-secret"
	_, err = ParseAccessToken(token)
	assert.Error(t, err)
}
