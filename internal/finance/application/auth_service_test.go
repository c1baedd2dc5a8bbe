package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAuthService_Login(t *testing.T) {
	users := NewMockUserRepository()
	userService := NewUserService(users, MockHasher{})
	issuer := &MockTokenIssuer{}
	service := NewAuthService(users, MockHasher{}, issuer, 24*time.Hour)

	user, err := userService.Register(context.Background(), "anna@example.com", "Anna", "password123")
	assert.NoError(t, err)

	token, err := service.Login(context.Background(), "anna@example.com", "password123")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, user.ID.String(), issuer.lastUserID)
	assert.Equal(t, "anna@example.com", issuer.lastEmail)
}

// Unknown email, wrong password and a deactivated account must all
// fail with the same error so the endpoint cannot be used to probe for
// registered emails.
func TestAuthService_Login_Indistinguishable(t *testing.T) {
	users := NewMockUserRepository()
	userService := NewUserService(users, MockHasher{})
	service := NewAuthService(users, MockHasher{}, &MockTokenIssuer{}, 24*time.Hour)

	user, err := userService.Register(context.Background(), "anna@example.com", "Anna", "password123")
	assert.NoError(t, err)

	_, err = service.Login(context.Background(), "nobody@example.com", "password123")
	assert.True(t, errors.Is(err, ErrInvalidCredentials))

	_, err = service.Login(context.Background(), "anna@example.com", "wrong-password")
	assert.True(t, errors.Is(err, ErrInvalidCredentials))

	user.Deactivate()
	assert.NoError(t, users.Update(context.Background(), user))

	_, err = service.Login(context.Background(), "anna@example.com", "password123")
	assert.True(t, errors.Is(err, ErrInvalidCredentials))
}
