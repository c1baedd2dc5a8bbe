package application

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/kamilczajka/FinanceTracker/internal/finance/domain"
	financeErrors "github.com/kamilczajka/FinanceTracker/internal/finance/errors"
	"github.com/kamilczajka/FinanceTracker/internal/money"
)

type BudgetService struct {
	budgets      domain.BudgetRepository
	transactions domain.TransactionRepository
}

func NewBudgetService(budgets domain.BudgetRepository, transactions domain.TransactionRepository) *BudgetService {
	return &BudgetService{budgets: budgets, transactions: transactions}
}

type CreateBudgetInput struct {
	CategoryID uuid.UUID
	Amount     money.Amount
	Month      int
	Year       int
}

// CreateBudget enforces at most one budget per (user, category, month,
// year). The pre-check keeps the common path friendly; the database
// unique constraint closes the race between concurrent creations, and
// the repository maps that violation to ErrBudgetExists as well.
func (s *BudgetService) CreateBudget(ctx context.Context, userID uuid.UUID, in CreateBudgetInput) (*domain.Budget, error) {
	existing, err := s.budgets.GetByCategoryAndPeriod(ctx, userID, in.CategoryID, in.Month, in.Year)
	if err != nil && !errors.Is(err, financeErrors.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, financeErrors.ErrBudgetExists
	}

	budget, err := domain.NewBudget(userID, in.CategoryID, in.Amount, in.Month, in.Year)
	if err != nil {
		return nil, err
	}
	if err := s.budgets.Create(ctx, budget); err != nil {
		return nil, err
	}
	return budget, nil
}

// BudgetWithSpend decorates a budget with its derived figures for one
// period. None of the three derived fields are ever stored.
type BudgetWithSpend struct {
	domain.Budget
	Spent          money.Amount `json:"spent"`
	Remaining      money.Amount `json:"remaining"`
	PercentageUsed float64      `json:"percentage_used"`
}

// ListBudgets fetches a period's budgets and computes the expense
// total per category over the month's half-open date range.
func (s *BudgetService) ListBudgets(ctx context.Context, userID uuid.UUID, month, year int) ([]BudgetWithSpend, error) {
	budgets, err := s.budgets.GetByUserAndPeriod(ctx, userID, month, year)
	if err != nil {
		return nil, err
	}

	start, end := domain.MonthRange(year, month)

	results := make([]BudgetWithSpend, 0, len(budgets))
	for _, budget := range budgets {
		spent, err := s.transactions.GetTotalByCategory(ctx, userID, budget.CategoryID, start, end)
		if err != nil {
			return nil, err
		}
		results = append(results, BudgetWithSpend{
			Budget:         budget,
			Spent:          spent,
			Remaining:      budget.Remaining(spent),
			PercentageUsed: budget.PercentageUsed(spent),
		})
	}
	return results, nil
}

// UpdateBudget changes the amount only when one is supplied.
func (s *BudgetService) UpdateBudget(ctx context.Context, budgetID, userID uuid.UUID, amount *money.Amount) (*domain.Budget, error) {
	budget, err := s.ownedBudget(ctx, budgetID, userID)
	if err != nil {
		return nil, err
	}
	if amount != nil {
		if err := budget.UpdateAmount(*amount); err != nil {
			return nil, err
		}
	}
	if err := s.budgets.Update(ctx, budget); err != nil {
		return nil, err
	}
	return budget, nil
}

func (s *BudgetService) DeleteBudget(ctx context.Context, budgetID, userID uuid.UUID) error {
	if _, err := s.ownedBudget(ctx, budgetID, userID); err != nil {
		return err
	}
	return s.budgets.Delete(ctx, budgetID)
}

func (s *BudgetService) ownedBudget(ctx context.Context, budgetID, userID uuid.UUID) (*domain.Budget, error) {
	budget, err := s.budgets.GetByID(ctx, budgetID)
	if err != nil {
		return nil, err
	}
	if budget.UserID != userID {
		return nil, financeErrors.ErrNotFound
	}
	return budget, nil
}
