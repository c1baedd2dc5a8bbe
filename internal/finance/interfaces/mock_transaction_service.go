package interfaces

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/kamilczajka/FinanceTracker/internal/finance/application"
	"github.com/kamilczajka/FinanceTracker/internal/finance/domain"
	financeErrors "github.com/kamilczajka/FinanceTracker/internal/finance/errors"
)

type MockTransactionService struct {
	transactions []domain.Transaction
	summary      *application.TransactionSummary
	monthly      []application.MonthlySummary
	lastFilter   domain.TransactionFilter
	shouldFail   bool
	notFound     bool
}

func (m *MockTransactionService) CreateTransaction(_ context.Context, userID uuid.UUID, in application.CreateTransactionInput) (*domain.Transaction, error) {
	if m.shouldFail {
		return nil, errors.New("service error")
	}
	return domain.NewTransaction(userID, in.CategoryID, in.Description, in.Amount, in.Type, in.Date, in.Notes)
}

func (m *MockTransactionService) ListTransactions(_ context.Context, _ uuid.UUID, filter domain.TransactionFilter) ([]domain.Transaction, error) {
	if m.shouldFail {
		return nil, errors.New("service error")
	}
	m.lastFilter = filter
	return m.transactions, nil
}

func (m *MockTransactionService) UpdateTransaction(_ context.Context, transactionID, userID uuid.UUID, update domain.TransactionUpdate) (*domain.Transaction, error) {
	if m.notFound {
		return nil, financeErrors.ErrNotFound
	}
	if m.shouldFail {
		return nil, errors.New("service error")
	}
	if len(m.transactions) == 0 {
		return nil, financeErrors.ErrNotFound
	}
	transaction := m.transactions[0]
	if err := transaction.Update(update); err != nil {
		return nil, err
	}
	return &transaction, nil
}

func (m *MockTransactionService) DeleteTransaction(_ context.Context, _, _ uuid.UUID) error {
	if m.notFound {
		return financeErrors.ErrNotFound
	}
	if m.shouldFail {
		return errors.New("service error")
	}
	return nil
}

func (m *MockTransactionService) GetTransactionSummary(_ context.Context, _ uuid.UUID, _, _ *time.Time) (*application.TransactionSummary, error) {
	if m.shouldFail {
		return nil, errors.New("service error")
	}
	return m.summary, nil
}

func (m *MockTransactionService) GetMonthlySummary(_ context.Context, _ uuid.UUID, _ int) ([]application.MonthlySummary, error) {
	if m.shouldFail {
		return nil, errors.New("service error")
	}
	return m.monthly, nil
}
