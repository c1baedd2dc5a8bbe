package interfaces

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/kamilczajka/FinanceTracker/internal/finance/application"
	"github.com/kamilczajka/FinanceTracker/internal/finance/domain"
	financeErrors "github.com/kamilczajka/FinanceTracker/internal/finance/errors"
)

type MockUserService struct {
	user       *domain.User
	emailTaken bool
	invalid    string
	shouldFail bool
}

func (m *MockUserService) Register(_ context.Context, email, name, _ string) (*domain.User, error) {
	if m.invalid != "" {
		return nil, financeErrors.NewValidationError(m.invalid)
	}
	if m.emailTaken {
		return nil, financeErrors.ErrEmailTaken
	}
	if m.shouldFail {
		return nil, errors.New("service error")
	}
	return domain.NewUser(email, name, "hashed"), nil
}

func (m *MockUserService) GetUser(_ context.Context, _ uuid.UUID) (*domain.User, error) {
	if m.shouldFail {
		return nil, errors.New("service error")
	}
	if m.user == nil {
		return nil, financeErrors.ErrNotFound
	}
	return m.user, nil
}

func (m *MockUserService) UpdateUser(_ context.Context, _ uuid.UUID, name string) (*domain.User, error) {
	if m.invalid != "" {
		return nil, financeErrors.NewValidationError(m.invalid)
	}
	if m.shouldFail {
		return nil, errors.New("service error")
	}
	if m.user == nil {
		return nil, financeErrors.ErrNotFound
	}
	user := *m.user
	if name != "" {
		user.UpdateName(name)
	}
	return &user, nil
}

type MockAuthService struct {
	token      string
	badLogin   bool
	shouldFail bool
}

func (m *MockAuthService) Login(_ context.Context, _, _ string) (string, error) {
	if m.badLogin {
		return "", application.ErrInvalidCredentials
	}
	if m.shouldFail {
		return "", errors.New("service error")
	}
	return m.token, nil
}
