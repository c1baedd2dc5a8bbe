package interfaces

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/kamilczajka/FinanceTracker/internal/finance/domain"
	financeErrors "github.com/kamilczajka/FinanceTracker/internal/finance/errors"
)

type MockCategoryService struct {
	categories []domain.Category
	notFound   bool
	shouldFail bool
}

func (m *MockCategoryService) CreateCategory(_ context.Context, userID uuid.UUID, name, color, icon string) (*domain.Category, error) {
	if m.shouldFail {
		return nil, errors.New("service error")
	}
	return domain.NewCategory(userID, name, color, icon), nil
}

func (m *MockCategoryService) ListCategories(_ context.Context, _ uuid.UUID) ([]domain.Category, error) {
	if m.shouldFail {
		return nil, errors.New("service error")
	}
	return m.categories, nil
}

func (m *MockCategoryService) UpdateCategory(_ context.Context, _, _ uuid.UUID, name, color, icon string) (*domain.Category, error) {
	if m.notFound {
		return nil, financeErrors.ErrNotFound
	}
	if m.shouldFail {
		return nil, errors.New("service error")
	}
	if len(m.categories) == 0 {
		return nil, financeErrors.ErrNotFound
	}
	category := m.categories[0]
	category.Update(name, color, icon)
	return &category, nil
}

func (m *MockCategoryService) DeleteCategory(_ context.Context, _, _ uuid.UUID) error {
	if m.notFound {
		return financeErrors.ErrNotFound
	}
	if m.shouldFail {
		return errors.New("service error")
	}
	return nil
}
