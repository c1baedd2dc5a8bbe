package domain

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/kamilczajka/FinanceTracker/internal/money"
)

type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id uuid.UUID) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	Update(ctx context.Context, user *User) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// User owns every other record. Email uniqueness is enforced by the
// persistence layer. The password hash is opaque to the domain; it is
// produced and verified by the auth collaborators.
type User struct {
	ID             uuid.UUID    `json:"id"`
	Email          string       `json:"email"`
	Name           string       `json:"name"`
	HashedPassword string       `json:"-"`
	IsActive       bool         `json:"is_active"`
	InitialBalance money.Amount `json:"-"`
	CreatedAt      time.Time    `json:"created_at"`
	UpdatedAt      *time.Time   `json:"updated_at"`
}

func NewUser(email, name, hashedPassword string) *User {
	return &User{
		ID:             uuid.New(),
		Email:          email,
		Name:           name,
		HashedPassword: hashedPassword,
		IsActive:       true,
		CreatedAt:      time.Now().UTC(),
	}
}

func (u *User) UpdateName(name string) {
	u.Name = name
	u.touch()
}

func (u *User) UpdateInitialBalance(balance money.Amount) {
	u.InitialBalance = balance
	u.touch()
}

func (u *User) Deactivate() {
	u.IsActive = false
	u.touch()
}

func (u *User) Activate() {
	u.IsActive = true
	u.touch()
}

func (u *User) touch() {
	now := time.Now().UTC()
	u.UpdatedAt = &now
}
