package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/aprilfamily/cookbook-backend/internal/models"
)

func seedUser(t *testing.T, svc *AuthService, username, password, name string) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	require.NoError(t, err)
	require.NoError(t, svc.db.Create(&models.User{
		Username:     username,
		PasswordHash: string(hash),
		Name:         name,
	}).Error)
}

func TestLoginSuccess(t *testing.T) {
	svc := NewAuthService(setupTestDB(t))
	seedUser(t, svc, "admin", "admin123", "Admin")

	user, err := svc.Login(context.Background(), "admin", "admin123")
	require.NoError(t, err)
	assert.Equal(t, "Admin", user.Name)
	assert.Equal(t, "admin", user.Username)
}

func TestLoginWrongPassword(t *testing.T) {
	svc := NewAuthService(setupTestDB(t))
	seedUser(t, svc, "admin", "admin123", "Admin")

	_, err := svc.Login(context.Background(), "admin", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUnknownUser(t *testing.T) {
	svc := NewAuthService(setupTestDB(t))
	seedUser(t, svc, "admin", "admin123", "Admin")

	_, err := svc.Login(context.Background(), "nobody", "admin123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginDoesNotLeakWhichFieldWasWrong(t *testing.T) {
	svc := NewAuthService(setupTestDB(t))
	seedUser(t, svc, "admin", "admin123", "Admin")

	_, errUser := svc.Login(context.Background(), "nobody", "admin123")
	_, errPass := svc.Login(context.Background(), "admin", "wrong")
	assert.Equal(t, errUser, errPass)
}
