package application

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/kamilczajka/FinanceTracker/internal/finance/domain"
	financeErrors "github.com/kamilczajka/FinanceTracker/internal/finance/errors"
	"github.com/kamilczajka/FinanceTracker/internal/money"
)

// In-memory repositories backing the service tests. They mirror the
// SQL implementations' comparison semantics, including the inclusive
// and exclusive date bounds, so the services see the same behavior in
// tests as against Postgres.

type MockUserRepository struct {
	users map[uuid.UUID]*domain.User
}

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{users: make(map[uuid.UUID]*domain.User)}
}

func (m *MockUserRepository) Create(_ context.Context, user *domain.User) error {
	for _, u := range m.users {
		if u.Email == user.Email {
			return financeErrors.ErrEmailTaken
		}
	}
	copied := *user
	m.users[user.ID] = &copied
	return nil
}

func (m *MockUserRepository) GetByID(_ context.Context, id uuid.UUID) (*domain.User, error) {
	user, ok := m.users[id]
	if !ok {
		return nil, financeErrors.ErrNotFound
	}
	copied := *user
	return &copied, nil
}

func (m *MockUserRepository) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, financeErrors.ErrNotFound
}

func (m *MockUserRepository) Update(_ context.Context, user *domain.User) error {
	if _, ok := m.users[user.ID]; !ok {
		return financeErrors.ErrNotFound
	}
	copied := *user
	m.users[user.ID] = &copied
	return nil
}

func (m *MockUserRepository) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := m.users[id]; !ok {
		return financeErrors.ErrNotFound
	}
	delete(m.users, id)
	return nil
}

type MockCategoryRepository struct {
	categories map[uuid.UUID]*domain.Category
}

func NewMockCategoryRepository() *MockCategoryRepository {
	return &MockCategoryRepository{categories: make(map[uuid.UUID]*domain.Category)}
}

func (m *MockCategoryRepository) Create(_ context.Context, category *domain.Category) error {
	copied := *category
	m.categories[category.ID] = &copied
	return nil
}

func (m *MockCategoryRepository) GetByID(_ context.Context, id uuid.UUID) (*domain.Category, error) {
	category, ok := m.categories[id]
	if !ok {
		return nil, financeErrors.ErrNotFound
	}
	copied := *category
	return &copied, nil
}

func (m *MockCategoryRepository) GetAllByUser(_ context.Context, userID uuid.UUID) ([]domain.Category, error) {
	var result []domain.Category
	for _, c := range m.categories {
		if c.UserID == userID {
			result = append(result, *c)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

func (m *MockCategoryRepository) Update(_ context.Context, category *domain.Category) error {
	if _, ok := m.categories[category.ID]; !ok {
		return financeErrors.ErrNotFound
	}
	copied := *category
	m.categories[category.ID] = &copied
	return nil
}

func (m *MockCategoryRepository) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := m.categories[id]; !ok {
		return financeErrors.ErrNotFound
	}
	delete(m.categories, id)
	return nil
}

type MockTransactionRepository struct {
	transactions map[uuid.UUID]*domain.Transaction
}

func NewMockTransactionRepository() *MockTransactionRepository {
	return &MockTransactionRepository{transactions: make(map[uuid.UUID]*domain.Transaction)}
}

func (m *MockTransactionRepository) Create(_ context.Context, transaction *domain.Transaction) error {
	copied := *transaction
	m.transactions[transaction.ID] = &copied
	return nil
}

func (m *MockTransactionRepository) GetByID(_ context.Context, id uuid.UUID) (*domain.Transaction, error) {
	transaction, ok := m.transactions[id]
	if !ok {
		return nil, financeErrors.ErrNotFound
	}
	copied := *transaction
	return &copied, nil
}

func (m *MockTransactionRepository) GetAllByUser(_ context.Context, userID uuid.UUID, filter domain.TransactionFilter) ([]domain.Transaction, error) {
	var matched []domain.Transaction
	for _, t := range m.transactions {
		if t.UserID != userID {
			continue
		}
		if filter.StartDate != nil && t.Date.Before(*filter.StartDate) {
			continue
		}
		// end bound is exclusive for listings
		if filter.EndDate != nil && !t.Date.Before(*filter.EndDate) {
			continue
		}
		if filter.Type != nil && t.Type != *filter.Type {
			continue
		}
		if filter.CategoryID != nil && (t.CategoryID == nil || *t.CategoryID != *filter.CategoryID) {
			continue
		}
		matched = append(matched, *t)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].Date.After(matched[j].Date) })

	if filter.Offset >= len(matched) {
		return nil, nil
	}
	matched = matched[filter.Offset:]
	if filter.Limit > 0 && filter.Limit < len(matched) {
		matched = matched[:filter.Limit]
	}
	return matched, nil
}

func (m *MockTransactionRepository) GetTotalByType(_ context.Context, userID uuid.UUID, transactionType domain.TransactionType, startDate, endDate *time.Time) (money.Amount, error) {
	var total money.Amount
	for _, t := range m.transactions {
		if t.UserID != userID || t.Type != transactionType {
			continue
		}
		if startDate != nil && t.Date.Before(*startDate) {
			continue
		}
		// end bound is inclusive for type totals
		if endDate != nil && t.Date.After(*endDate) {
			continue
		}
		total = total.Add(t.Amount)
	}
	return total, nil
}

func (m *MockTransactionRepository) GetTotalByCategory(_ context.Context, userID, categoryID uuid.UUID, startDate, endDate time.Time) (money.Amount, error) {
	var total money.Amount
	for _, t := range m.transactions {
		if t.UserID != userID || t.Type != domain.TransactionTypeExpense {
			continue
		}
		if t.CategoryID == nil || *t.CategoryID != categoryID {
			continue
		}
		if t.Date.Before(startDate) || !t.Date.Before(endDate) {
			continue
		}
		total = total.Add(t.Amount)
	}
	return total, nil
}

func (m *MockTransactionRepository) CountByUser(_ context.Context, userID uuid.UUID, startDate, endDate *time.Time) (int, error) {
	count := 0
	for _, t := range m.transactions {
		if t.UserID != userID {
			continue
		}
		if startDate != nil && t.Date.Before(*startDate) {
			continue
		}
		if endDate != nil && !t.Date.Before(*endDate) {
			continue
		}
		count++
	}
	return count, nil
}

func (m *MockTransactionRepository) Update(_ context.Context, transaction *domain.Transaction) error {
	if _, ok := m.transactions[transaction.ID]; !ok {
		return financeErrors.ErrNotFound
	}
	copied := *transaction
	m.transactions[transaction.ID] = &copied
	return nil
}

func (m *MockTransactionRepository) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := m.transactions[id]; !ok {
		return financeErrors.ErrNotFound
	}
	delete(m.transactions, id)
	return nil
}

type budgetKey struct {
	userID     uuid.UUID
	categoryID uuid.UUID
	month      int
	year       int
}

type MockBudgetRepository struct {
	budgets map[uuid.UUID]*domain.Budget
}

func NewMockBudgetRepository() *MockBudgetRepository {
	return &MockBudgetRepository{budgets: make(map[uuid.UUID]*domain.Budget)}
}

func (m *MockBudgetRepository) Create(_ context.Context, budget *domain.Budget) error {
	key := budgetKey{budget.UserID, budget.CategoryID, budget.Month, budget.Year}
	for _, b := range m.budgets {
		if (budgetKey{b.UserID, b.CategoryID, b.Month, b.Year}) == key {
			return financeErrors.ErrBudgetExists
		}
	}
	copied := *budget
	m.budgets[budget.ID] = &copied
	return nil
}

func (m *MockBudgetRepository) GetByID(_ context.Context, id uuid.UUID) (*domain.Budget, error) {
	budget, ok := m.budgets[id]
	if !ok {
		return nil, financeErrors.ErrNotFound
	}
	copied := *budget
	return &copied, nil
}

func (m *MockBudgetRepository) GetByUserAndPeriod(_ context.Context, userID uuid.UUID, month, year int) ([]domain.Budget, error) {
	var result []domain.Budget
	for _, b := range m.budgets {
		if b.UserID == userID && b.Month == month && b.Year == year {
			result = append(result, *b)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].CreatedAt.Before(result[j].CreatedAt) })
	return result, nil
}

func (m *MockBudgetRepository) GetByCategoryAndPeriod(_ context.Context, userID, categoryID uuid.UUID, month, year int) (*domain.Budget, error) {
	for _, b := range m.budgets {
		if b.UserID == userID && b.CategoryID == categoryID && b.Month == month && b.Year == year {
			copied := *b
			return &copied, nil
		}
	}
	return nil, financeErrors.ErrNotFound
}

func (m *MockBudgetRepository) Update(_ context.Context, budget *domain.Budget) error {
	if _, ok := m.budgets[budget.ID]; !ok {
		return financeErrors.ErrNotFound
	}
	copied := *budget
	m.budgets[budget.ID] = &copied
	return nil
}

func (m *MockBudgetRepository) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := m.budgets[id]; !ok {
		return financeErrors.ErrNotFound
	}
	delete(m.budgets, id)
	return nil
}

// MockHasher keeps passwords recoverable so tests can assert on the
// Verify path without bcrypt cost.
type MockHasher struct{}

func (MockHasher) Hash(password string) (string, error) { return "hashed:" + password, nil }

func (MockHasher) Verify(password, hash string) bool { return "hashed:"+password == hash }

type MockTokenIssuer struct {
	lastUserID string
	lastEmail  string
}

func (m *MockTokenIssuer) GenerateAccessJWT(userID, email string, _ time.Duration) (string, error) {
	m.lastUserID = userID
	m.lastEmail = email
	return "token-for-" + userID, nil
}

func mustAmount(t interface{ Fatalf(string, ...interface{}) }, s string) money.Amount {
	amount, err := money.Parse(s)
	if err != nil {
		t.Fatalf("parse amount %q: %v", s, err)
	}
	return amount
}
