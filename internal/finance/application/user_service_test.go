package application

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	financeErrors "github.com/kamilczajka/FinanceTracker/internal/finance/errors"
)

func TestUserService_Register(t *testing.T) {
	repo := NewMockUserRepository()
	service := NewUserService(repo, MockHasher{})

	user, err := service.Register(context.Background(), "anna@example.com", "Anna", "correct horse battery")
	assert.NoError(t, err)
	assert.Equal(t, "anna@example.com", user.Email)
	assert.True(t, user.IsActive)
	assert.Equal(t, "hashed:correct horse battery", user.HashedPassword)
}

func TestUserService_Register_DuplicateEmail(t *testing.T) {
	repo := NewMockUserRepository()
	service := NewUserService(repo, MockHasher{})

	_, err := service.Register(context.Background(), "anna@example.com", "Anna", "password123")
	assert.NoError(t, err)

	_, err = service.Register(context.Background(), "anna@example.com", "Other Anna", "password456")
	assert.True(t, errors.Is(err, financeErrors.ErrEmailTaken))
}

func TestUserService_Register_Validation(t *testing.T) {
	service := NewUserService(NewMockUserRepository(), MockHasher{})

	tests := []struct {
		name     string
		email    string
		userName string
		password string
	}{
		{"bad email", "not-an-email", "Anna", "password123"},
		{"name too short", "anna@example.com", "A", "password123"},
		{"name too long", "anna@example.com", strings.Repeat("a", 101), "password123"},
		{"password too short", "anna@example.com", "Anna", "short"},
		{"password too long", "anna@example.com", "Anna", strings.Repeat("p", 101)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := service.Register(context.Background(), tc.email, tc.userName, tc.password)
			assert.True(t, financeErrors.IsValidationError(err))
		})
	}
}

func TestUserService_UpdateUser(t *testing.T) {
	repo := NewMockUserRepository()
	service := NewUserService(repo, MockHasher{})

	user, err := service.Register(context.Background(), "anna@example.com", "Anna", "password123")
	assert.NoError(t, err)

	updated, err := service.UpdateUser(context.Background(), user.ID, "Anna Nowak")
	assert.NoError(t, err)
	assert.Equal(t, "Anna Nowak", updated.Name)
	assert.NotNil(t, updated.UpdatedAt)

	// empty name keeps the current one
	updated, err = service.UpdateUser(context.Background(), user.ID, "")
	assert.NoError(t, err)
	assert.Equal(t, "Anna Nowak", updated.Name)

	_, err = service.UpdateUser(context.Background(), user.ID, "A")
	assert.True(t, financeErrors.IsValidationError(err))
}
