package application

import (
	"context"
	"errors"
	"time"

	"github.com/kamilczajka/FinanceTracker/internal/finance/domain"
	financeErrors "github.com/kamilczajka/FinanceTracker/internal/finance/errors"
)

// ErrInvalidCredentials covers unknown email, wrong password and
// deactivated accounts alike. Keeping the three indistinguishable
// prevents user enumeration through the login endpoint.
var ErrInvalidCredentials = errors.New("invalid credentials")

// TokenIssuer is the token collaborator contract; the core never
// inspects token internals.
type TokenIssuer interface {
	GenerateAccessJWT(userID, email string, duration time.Duration) (string, error)
}

type AuthService struct {
	users    domain.UserRepository
	hasher   PasswordHasher
	tokens   TokenIssuer
	tokenTTL time.Duration
}

func NewAuthService(users domain.UserRepository, hasher PasswordHasher, tokens TokenIssuer, tokenTTL time.Duration) *AuthService {
	return &AuthService{users: users, hasher: hasher, tokens: tokens, tokenTTL: tokenTTL}
}

// Login verifies credentials and issues a signed access token carrying
// the user id and email.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, financeErrors.ErrNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	if !s.hasher.Verify(password, user.HashedPassword) {
		return "", ErrInvalidCredentials
	}

	if !user.IsActive {
		return "", ErrInvalidCredentials
	}

	return s.tokens.GenerateAccessJWT(user.ID.String(), user.Email, s.tokenTTL)
}
