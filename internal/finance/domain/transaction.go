package domain

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/kamilczajka/FinanceTracker/internal/finance/errors"
	"github.com/kamilczajka/FinanceTracker/internal/money"
)

type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

func IsValidTransactionType(t string) bool {
	return t == string(TransactionTypeIncome) || t == string(TransactionTypeExpense)
}

// TransactionFilter narrows a transaction listing. StartDate is
// inclusive and EndDate exclusive, so adjacent ranges never overlap.
type TransactionFilter struct {
	StartDate  *time.Time
	EndDate    *time.Time
	Type       *TransactionType
	CategoryID *uuid.UUID
	Limit      int
	Offset     int
}

type TransactionRepository interface {
	Create(ctx context.Context, transaction *Transaction) error
	GetByID(ctx context.Context, id uuid.UUID) (*Transaction, error)
	GetAllByUser(ctx context.Context, userID uuid.UUID, filter TransactionFilter) ([]Transaction, error)
	// GetTotalByType sums amounts of one type over an optional range;
	// both bounds are inclusive here, unlike the listing filter.
	GetTotalByType(ctx context.Context, userID uuid.UUID, transactionType TransactionType, startDate, endDate *time.Time) (money.Amount, error)
	// GetTotalByCategory sums expense amounts for one category over a
	// half-open [start, end) range.
	GetTotalByCategory(ctx context.Context, userID, categoryID uuid.UUID, startDate, endDate time.Time) (money.Amount, error)
	CountByUser(ctx context.Context, userID uuid.UUID, startDate, endDate *time.Time) (int, error)
	Update(ctx context.Context, transaction *Transaction) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type Transaction struct {
	ID          uuid.UUID       `json:"id"`
	UserID      uuid.UUID       `json:"user_id"`
	CategoryID  *uuid.UUID      `json:"category_id"`
	Description string          `json:"description"`
	Amount      money.Amount    `json:"amount"`
	Type        TransactionType `json:"type"`
	Date        time.Time       `json:"date"`
	Notes       *string         `json:"notes"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   *time.Time      `json:"updated_at"`
}

// NewTransaction builds a validated transaction. A zero date defaults
// to the current time.
func NewTransaction(userID uuid.UUID, categoryID *uuid.UUID, description string, amount money.Amount, transactionType TransactionType, date time.Time, notes *string) (*Transaction, error) {
	if date.IsZero() {
		date = time.Now().UTC()
	}
	t := &Transaction{
		ID:          uuid.New(),
		UserID:      userID,
		CategoryID:  categoryID,
		Description: description,
		Amount:      amount,
		Type:        transactionType,
		Date:        date,
		Notes:       notes,
		CreatedAt:   time.Now().UTC(),
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

func (t *Transaction) Validate() error {
	if t.Amount.IsNegative() {
		return errors.NewValidationError("transaction amount cannot be negative")
	}
	if !IsValidTransactionType(string(t.Type)) {
		return errors.NewValidationError("transaction type must be 'income' or 'expense'")
	}
	if len(t.Description) == 0 || len(t.Description) > 200 {
		return errors.NewValidationError("description must be between 1 and 200 characters")
	}
	if t.Notes != nil && len(*t.Notes) > 500 {
		return errors.NewValidationError("notes must be at most 500 characters")
	}
	return nil
}

// TransactionUpdate carries the fields of a partial update. Nil means
// "leave unchanged". An empty description or type is also ignored,
// whereas notes are applied whenever the pointer is set, so an explicit
// empty string clears them. Callers relying on clearing any other
// field will be silently ignored.
type TransactionUpdate struct {
	Description *string
	Amount      *money.Amount
	Type        *TransactionType
	CategoryID  *uuid.UUID
	Date        *time.Time
	Notes       *string
}

// Update applies a partial update, re-checking amount non-negativity.
// On a validation error the transaction is left unchanged.
func (t *Transaction) Update(u TransactionUpdate) error {
	if u.Amount != nil && u.Amount.IsNegative() {
		return errors.NewValidationError("transaction amount cannot be negative")
	}
	if u.Description != nil && len(*u.Description) > 200 {
		return errors.NewValidationError("description must be between 1 and 200 characters")
	}
	if u.Type != nil && *u.Type != "" && !IsValidTransactionType(string(*u.Type)) {
		return errors.NewValidationError("transaction type must be 'income' or 'expense'")
	}
	if u.Notes != nil && len(*u.Notes) > 500 {
		return errors.NewValidationError("notes must be at most 500 characters")
	}

	if u.Description != nil && *u.Description != "" {
		t.Description = *u.Description
	}
	if u.Amount != nil {
		t.Amount = *u.Amount
	}
	if u.Type != nil && *u.Type != "" {
		t.Type = *u.Type
	}
	if u.CategoryID != nil && *u.CategoryID != uuid.Nil {
		categoryID := *u.CategoryID
		t.CategoryID = &categoryID
	}
	if u.Date != nil && !u.Date.IsZero() {
		t.Date = *u.Date
	}
	if u.Notes != nil {
		notes := *u.Notes
		t.Notes = &notes
	}
	now := time.Now().UTC()
	t.UpdatedAt = &now
	return nil
}

func (t *Transaction) IsIncome() bool {
	return t.Type == TransactionTypeIncome
}

func (t *Transaction) IsExpense() bool {
	return t.Type == TransactionTypeExpense
}

// SignedAmount is the transaction's contribution to a balance:
// positive for income, negative for expense. It is derived, never
// stored.
func (t *Transaction) SignedAmount() money.Amount {
	if t.IsIncome() {
		return t.Amount
	}
	return -t.Amount
}
