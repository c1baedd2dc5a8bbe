package application

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/kamilczajka/FinanceTracker/internal/finance/domain"
	financeErrors "github.com/kamilczajka/FinanceTracker/internal/finance/errors"
	"github.com/kamilczajka/FinanceTracker/internal/money"
)

const (
	DefaultTransactionLimit = 100
	MaxTransactionLimit     = 1000
)

type TransactionService struct {
	repo domain.TransactionRepository
}

func NewTransactionService(repo domain.TransactionRepository) *TransactionService {
	return &TransactionService{repo: repo}
}

type CreateTransactionInput struct {
	Description string
	Amount      money.Amount
	Type        domain.TransactionType
	CategoryID  *uuid.UUID
	Date        time.Time
	Notes       *string
}

func (s *TransactionService) CreateTransaction(ctx context.Context, userID uuid.UUID, in CreateTransactionInput) (*domain.Transaction, error) {
	transaction, err := domain.NewTransaction(userID, in.CategoryID, in.Description, in.Amount, in.Type, in.Date, in.Notes)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, transaction); err != nil {
		return nil, err
	}
	return transaction, nil
}

func (s *TransactionService) ListTransactions(ctx context.Context, userID uuid.UUID, filter domain.TransactionFilter) ([]domain.Transaction, error) {
	if filter.Limit <= 0 {
		filter.Limit = DefaultTransactionLimit
	}
	if filter.Limit > MaxTransactionLimit {
		filter.Limit = MaxTransactionLimit
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}

	transactions, err := s.repo.GetAllByUser(ctx, userID, filter)
	if err != nil {
		return nil, err
	}
	if transactions == nil {
		return []domain.Transaction{}, nil
	}
	return transactions, nil
}

func (s *TransactionService) UpdateTransaction(ctx context.Context, transactionID, userID uuid.UUID, update domain.TransactionUpdate) (*domain.Transaction, error) {
	transaction, err := s.ownedTransaction(ctx, transactionID, userID)
	if err != nil {
		return nil, err
	}
	if err := transaction.Update(update); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, transaction); err != nil {
		return nil, err
	}
	return transaction, nil
}

func (s *TransactionService) DeleteTransaction(ctx context.Context, transactionID, userID uuid.UUID) error {
	if _, err := s.ownedTransaction(ctx, transactionID, userID); err != nil {
		return err
	}
	return s.repo.Delete(ctx, transactionID)
}

type TransactionSummary struct {
	TotalIncome      money.Amount `json:"total_income"`
	TotalExpense     money.Amount `json:"total_expense"`
	Balance          money.Amount `json:"balance"`
	TransactionCount int          `json:"transaction_count"`
}

// GetTransactionSummary totals income and expense over an optional
// date range (both bounds inclusive) and derives the balance.
func (s *TransactionService) GetTransactionSummary(ctx context.Context, userID uuid.UUID, startDate, endDate *time.Time) (*TransactionSummary, error) {
	totalIncome, err := s.repo.GetTotalByType(ctx, userID, domain.TransactionTypeIncome, startDate, endDate)
	if err != nil {
		return nil, err
	}

	totalExpense, err := s.repo.GetTotalByType(ctx, userID, domain.TransactionTypeExpense, startDate, endDate)
	if err != nil {
		return nil, err
	}

	count, err := s.repo.CountByUser(ctx, userID, startDate, endDate)
	if err != nil {
		return nil, err
	}

	return &TransactionSummary{
		TotalIncome:      totalIncome,
		TotalExpense:     totalExpense,
		Balance:          totalIncome.Sub(totalExpense),
		TransactionCount: count,
	}, nil
}

type MonthlySummary struct {
	Month   string       `json:"month"`
	Income  money.Amount `json:"income"`
	Expense money.Amount `json:"expense"`
}

// GetMonthlySummary returns exactly twelve buckets, January through
// December, each totalling the transactions dated inside that calendar
// month.
func (s *TransactionService) GetMonthlySummary(ctx context.Context, userID uuid.UUID, year int) ([]MonthlySummary, error) {
	summaries := make([]MonthlySummary, 0, 12)

	for month := 1; month <= 12; month++ {
		start, _ := domain.MonthRange(year, month)
		end := domain.MonthEnd(year, month)

		income, err := s.repo.GetTotalByType(ctx, userID, domain.TransactionTypeIncome, &start, &end)
		if err != nil {
			return nil, err
		}
		expense, err := s.repo.GetTotalByType(ctx, userID, domain.TransactionTypeExpense, &start, &end)
		if err != nil {
			return nil, err
		}

		summaries = append(summaries, MonthlySummary{
			Month:   time.Month(month).String()[:3],
			Income:  income,
			Expense: expense,
		})
	}

	return summaries, nil
}

func (s *TransactionService) ownedTransaction(ctx context.Context, transactionID, userID uuid.UUID) (*domain.Transaction, error) {
	transaction, err := s.repo.GetByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	if transaction.UserID != userID {
		return nil, financeErrors.ErrNotFound
	}
	return transaction, nil
}
