package server

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spark-portfolio/spark/internal/config"
)

func testJWTService(secret string) *JWTService {
	return NewJWTService(&config.JWTConfig{Secret: secret, ExpirationHours: 1})
}

func TestJWTService_RoundTrip(t *testing.T) {
	svc := testJWTService("test-secret-key")

	token, err := svc.GenerateToken("6588087")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "6588087", claims.StudentID)
	assert.Equal(t, "6588087", claims.GetStudentID())
}

func TestJWTService_RejectsWrongSecret(t *testing.T) {
	token, err := testJWTService("secret-one").GenerateToken("6588087")
	require.NoError(t, err)

	_, err = testJWTService("secret-two").ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_RejectsGarbage(t *testing.T) {
	_, err := testJWTService("test-secret-key").ValidateToken("not.a.token")
	assert.Error(t, err)
}
