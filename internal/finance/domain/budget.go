package domain

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/kamilczajka/FinanceTracker/internal/finance/errors"
	"github.com/kamilczajka/FinanceTracker/internal/money"
)

type BudgetRepository interface {
	Create(ctx context.Context, budget *Budget) error
	GetByID(ctx context.Context, id uuid.UUID) (*Budget, error)
	GetByUserAndPeriod(ctx context.Context, userID uuid.UUID, month, year int) ([]Budget, error)
	GetByCategoryAndPeriod(ctx context.Context, userID, categoryID uuid.UUID, month, year int) (*Budget, error)
	Update(ctx context.Context, budget *Budget) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// Budget is a monthly spending limit for one category. At most one
// budget may exist per (user, category, month, year).
type Budget struct {
	ID         uuid.UUID    `json:"id"`
	UserID     uuid.UUID    `json:"user_id"`
	CategoryID uuid.UUID    `json:"category_id"`
	Amount     money.Amount `json:"amount"`
	Month      int          `json:"month"`
	Year       int          `json:"year"`
	CreatedAt  time.Time    `json:"created_at"`
	UpdatedAt  *time.Time   `json:"updated_at"`
}

func NewBudget(userID, categoryID uuid.UUID, amount money.Amount, month, year int) (*Budget, error) {
	b := &Budget{
		ID:         uuid.New(),
		UserID:     userID,
		CategoryID: categoryID,
		Amount:     amount,
		Month:      month,
		Year:       year,
		CreatedAt:  time.Now().UTC(),
	}
	if err := b.Validate(); err != nil {
		return nil, err
	}
	return b, nil
}

func (b *Budget) Validate() error {
	if b.Amount.IsNegative() {
		return errors.NewValidationError("budget amount cannot be negative")
	}
	if b.Month < 1 || b.Month > 12 {
		return errors.NewValidationError("month must be between 1 and 12")
	}
	if b.Year < 2000 {
		return errors.NewValidationError("year must be 2000 or later")
	}
	return nil
}

func (b *Budget) UpdateAmount(amount money.Amount) error {
	if amount.IsNegative() {
		return errors.NewValidationError("budget amount cannot be negative")
	}
	b.Amount = amount
	now := time.Now().UTC()
	b.UpdatedAt = &now
	return nil
}

// Remaining may go negative when spending exceeds the budget.
func (b *Budget) Remaining(spent money.Amount) money.Amount {
	return b.Amount.Sub(spent)
}

// PercentageUsed is presentation-only and therefore allowed to use
// floating point. A zero budget reports 0.0 rather than dividing by
// zero.
func (b *Budget) PercentageUsed(spent money.Amount) float64 {
	if b.Amount.IsZero() {
		return 0.0
	}
	return spent.Float64() / b.Amount.Float64() * 100
}

func (b *Budget) IsExceeded(spent money.Amount) bool {
	return spent > b.Amount
}
