package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Bhargav-sunil/TaskManagement/internal/model"
)

func TestJWTService_RoundTrip(t *testing.T) {
	svc := NewJWTService("test-secret", time.Hour)
	user := &model.User{ID: 42, Email: "jane@example.com", Role: model.RoleAdmin}

	token, err := svc.Generate(user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "jane@example.com", claims.Email)
	assert.Equal(t, model.RoleAdmin, claims.Role)
	assert.NotEmpty(t, claims.ID)
}

func TestJWTService_ForeignKey(t *testing.T) {
	issuer := NewJWTService("secret-a", time.Hour)
	verifier := NewJWTService("secret-b", time.Hour)

	token, err := issuer.Generate(&model.User{ID: 1, Email: "a@b.co"})
	require.NoError(t, err)

	_, err = verifier.Validate(token)
	assert.Error(t, err)
}

func TestJWTService_Expired(t *testing.T) {
	svc := NewJWTService("test-secret", -time.Minute)

	token, err := svc.Generate(&model.User{ID: 1, Email: "a@b.co"})
	require.NoError(t, err)

	_, err = svc.Validate(token)
	assert.Error(t, err)
}

func TestJWTService_Malformed(t *testing.T) {
	svc := NewJWTService("test-secret", time.Hour)

	_, err := svc.Validate("not.a.token")
	assert.Error(t, err)
}
