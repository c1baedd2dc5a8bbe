package interfaces

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/kamilczajka/FinanceTracker/internal/finance/application"
	"github.com/kamilczajka/FinanceTracker/internal/finance/domain"
	financeErrors "github.com/kamilczajka/FinanceTracker/internal/finance/errors"
	"github.com/kamilczajka/FinanceTracker/internal/money"
)

type MockBudgetService struct {
	budgets    []application.BudgetWithSpend
	lastMonth  int
	lastYear   int
	duplicate  bool
	notFound   bool
	shouldFail bool
}

func (m *MockBudgetService) CreateBudget(_ context.Context, userID uuid.UUID, in application.CreateBudgetInput) (*domain.Budget, error) {
	if m.duplicate {
		return nil, financeErrors.ErrBudgetExists
	}
	if m.shouldFail {
		return nil, errors.New("service error")
	}
	return domain.NewBudget(userID, in.CategoryID, in.Amount, in.Month, in.Year)
}

func (m *MockBudgetService) ListBudgets(_ context.Context, _ uuid.UUID, month, year int) ([]application.BudgetWithSpend, error) {
	if m.shouldFail {
		return nil, errors.New("service error")
	}
	m.lastMonth = month
	m.lastYear = year
	return m.budgets, nil
}

func (m *MockBudgetService) UpdateBudget(_ context.Context, _, userID uuid.UUID, amount *money.Amount) (*domain.Budget, error) {
	if m.notFound {
		return nil, financeErrors.ErrNotFound
	}
	if m.shouldFail {
		return nil, errors.New("service error")
	}
	if len(m.budgets) == 0 {
		return nil, financeErrors.ErrNotFound
	}
	budget := m.budgets[0].Budget
	if amount != nil {
		if err := budget.UpdateAmount(*amount); err != nil {
			return nil, err
		}
	}
	return &budget, nil
}

func (m *MockBudgetService) DeleteBudget(_ context.Context, _, _ uuid.UUID) error {
	if m.notFound {
		return financeErrors.ErrNotFound
	}
	if m.shouldFail {
		return errors.New("service error")
	}
	return nil
}
