package application

import (
	"context"

	"github.com/google/uuid"

	"github.com/kamilczajka/FinanceTracker/internal/finance/domain"
	financeErrors "github.com/kamilczajka/FinanceTracker/internal/finance/errors"
)

type CategoryService struct {
	repo domain.CategoryRepository
}

func NewCategoryService(repo domain.CategoryRepository) *CategoryService {
	return &CategoryService{repo: repo}
}

func (s *CategoryService) CreateCategory(ctx context.Context, userID uuid.UUID, name, color, icon string) (*domain.Category, error) {
	category := domain.NewCategory(userID, name, color, icon)
	if err := s.repo.Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *CategoryService) ListCategories(ctx context.Context, userID uuid.UUID) ([]domain.Category, error) {
	categories, err := s.repo.GetAllByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if categories == nil {
		return []domain.Category{}, nil
	}
	return categories, nil
}

func (s *CategoryService) UpdateCategory(ctx context.Context, categoryID, userID uuid.UUID, name, color, icon string) (*domain.Category, error) {
	category, err := s.ownedCategory(ctx, categoryID, userID)
	if err != nil {
		return nil, err
	}
	category.Update(name, color, icon)
	if err := s.repo.Update(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// DeleteCategory removes the category. The persistence layer clears
// the category reference on transactions and deletes dependent
// budgets.
func (s *CategoryService) DeleteCategory(ctx context.Context, categoryID, userID uuid.UUID) error {
	if _, err := s.ownedCategory(ctx, categoryID, userID); err != nil {
		return err
	}
	return s.repo.Delete(ctx, categoryID)
}

// ownedCategory treats another user's category exactly like a missing
// one.
func (s *CategoryService) ownedCategory(ctx context.Context, categoryID, userID uuid.UUID) (*domain.Category, error) {
	category, err := s.repo.GetByID(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	if category.UserID != userID {
		return nil, financeErrors.ErrNotFound
	}
	return category, nil
}
