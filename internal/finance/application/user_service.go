package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/badoux/checkmail"
	"github.com/google/uuid"

	"github.com/kamilczajka/FinanceTracker/internal/finance/domain"
	financeErrors "github.com/kamilczajka/FinanceTracker/internal/finance/errors"
)

const (
	minNameLength     = 2
	maxNameLength     = 100
	minPasswordLength = 8
	maxPasswordLength = 100
)

// PasswordHasher is the password collaborator contract. The core never
// inspects hashes.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) bool
}

type UserService struct {
	repo   domain.UserRepository
	hasher PasswordHasher
}

func NewUserService(repo domain.UserRepository, hasher PasswordHasher) *UserService {
	return &UserService{repo: repo, hasher: hasher}
}

// Register creates an account, failing with ErrEmailTaken when the
// email is already registered.
func (s *UserService) Register(ctx context.Context, email, name, password string) (*domain.User, error) {
	if err := checkmail.ValidateFormat(email); err != nil {
		return nil, financeErrors.NewValidationError("email address is not valid")
	}
	if len(name) < minNameLength || len(name) > maxNameLength {
		return nil, financeErrors.NewValidationError(fmt.Sprintf("name must be between %d and %d characters", minNameLength, maxNameLength))
	}
	if len(password) < minPasswordLength || len(password) > maxPasswordLength {
		return nil, financeErrors.NewValidationError(fmt.Sprintf("password must be between %d and %d characters", minPasswordLength, maxPasswordLength))
	}

	existing, err := s.repo.GetByEmail(ctx, email)
	if err != nil && !errors.Is(err, financeErrors.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, financeErrors.ErrEmailTaken
	}

	hashedPassword, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("could not hash password: %w", err)
	}

	user := domain.NewUser(email, name, hashedPassword)
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) GetUser(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	return s.repo.GetByID(ctx, userID)
}

// UpdateUser replaces the display name when a non-empty value is
// supplied.
func (s *UserService) UpdateUser(ctx context.Context, userID uuid.UUID, name string) (*domain.User, error) {
	if name != "" && (len(name) < minNameLength || len(name) > maxNameLength) {
		return nil, financeErrors.NewValidationError(fmt.Sprintf("name must be between %d and %d characters", minNameLength, maxNameLength))
	}

	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if name != "" {
		user.UpdateName(name)
	}
	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
