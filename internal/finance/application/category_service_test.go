package application

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/kamilczajka/FinanceTracker/internal/finance/domain"
	financeErrors "github.com/kamilczajka/FinanceTracker/internal/finance/errors"
)

func TestCategoryService_CreateCategory_Defaults(t *testing.T) {
	service := NewCategoryService(NewMockCategoryRepository())

	category, err := service.CreateCategory(context.Background(), uuid.New(), "Groceries", "", "")
	assert.NoError(t, err)
	assert.Equal(t, domain.DefaultCategoryColor, category.Color)
	assert.Equal(t, domain.DefaultCategoryIcon, category.Icon)
}

func TestCategoryService_ListCategories_SortedByName(t *testing.T) {
	repo := NewMockCategoryRepository()
	service := NewCategoryService(repo)
	userID := uuid.New()

	for _, name := range []string{"Transport", "Groceries", "Rent"} {
		_, err := service.CreateCategory(context.Background(), userID, name, "", "")
		assert.NoError(t, err)
	}
	_, err := service.CreateCategory(context.Background(), uuid.New(), "Other user's", "", "")
	assert.NoError(t, err)

	categories, err := service.ListCategories(context.Background(), userID)
	assert.NoError(t, err)
	assert.Len(t, categories, 3)
	assert.Equal(t, "Groceries", categories[0].Name)
	assert.Equal(t, "Rent", categories[1].Name)
	assert.Equal(t, "Transport", categories[2].Name)
}

func TestCategoryService_ListCategories_EmptyIsNotNil(t *testing.T) {
	service := NewCategoryService(NewMockCategoryRepository())

	categories, err := service.ListCategories(context.Background(), uuid.New())
	assert.NoError(t, err)
	assert.NotNil(t, categories)
	assert.Len(t, categories, 0)
}

func TestCategoryService_UpdateCategory(t *testing.T) {
	repo := NewMockCategoryRepository()
	service := NewCategoryService(repo)
	userID := uuid.New()

	category, err := service.CreateCategory(context.Background(), userID, "Groceries", "#ff0000", "cart")
	assert.NoError(t, err)

	updated, err := service.UpdateCategory(context.Background(), category.ID, userID, "Food", "", "")
	assert.NoError(t, err)
	assert.Equal(t, "Food", updated.Name)
	assert.Equal(t, "#ff0000", updated.Color)
	assert.Equal(t, "cart", updated.Icon)
}

func TestCategoryService_OtherUserIsNotFound(t *testing.T) {
	repo := NewMockCategoryRepository()
	service := NewCategoryService(repo)
	owner := uuid.New()

	category, err := service.CreateCategory(context.Background(), owner, "Groceries", "", "")
	assert.NoError(t, err)

	_, err = service.UpdateCategory(context.Background(), category.ID, uuid.New(), "Stolen", "", "")
	assert.True(t, errors.Is(err, financeErrors.ErrNotFound))

	err = service.DeleteCategory(context.Background(), category.ID, uuid.New())
	assert.True(t, errors.Is(err, financeErrors.ErrNotFound))

	stored, err := repo.GetByID(context.Background(), category.ID)
	assert.NoError(t, err)
	assert.Equal(t, "Groceries", stored.Name)
}
