package infrastructure

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/kamilczajka/FinanceTracker/internal/finance/domain"
	financeErrors "github.com/kamilczajka/FinanceTracker/internal/finance/errors"
)

type PostgresCategoryRepository struct {
	db *sql.DB
}

func NewPostgresCategoryRepository(db *sql.DB) *PostgresCategoryRepository {
	return &PostgresCategoryRepository{db: db}
}

func (r *PostgresCategoryRepository) Create(ctx context.Context, category *domain.Category) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO categories (id, user_id, name, color, icon, created_at)
         VALUES ($1, $2, $3, $4, $5, $6)`,
		category.ID, category.UserID, category.Name, category.Color, category.Icon, category.CreatedAt,
	)
	return err
}

func (r *PostgresCategoryRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Category, error) {
	var category domain.Category
	err := r.db.QueryRowContext(ctx,
		`SELECT id, user_id, name, color, icon, created_at, updated_at
         FROM categories WHERE id = $1`, id,
	).Scan(&category.ID, &category.UserID, &category.Name, &category.Color,
		&category.Icon, &category.CreatedAt, &category.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, financeErrors.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *PostgresCategoryRepository) GetAllByUser(ctx context.Context, userID uuid.UUID) ([]domain.Category, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, user_id, name, color, icon, created_at, updated_at
         FROM categories WHERE user_id = $1 ORDER BY name ASC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []domain.Category
	for rows.Next() {
		var category domain.Category
		if err := rows.Scan(&category.ID, &category.UserID, &category.Name, &category.Color,
			&category.Icon, &category.CreatedAt, &category.UpdatedAt); err != nil {
			return nil, err
		}
		categories = append(categories, category)
	}
	return categories, rows.Err()
}

func (r *PostgresCategoryRepository) Update(ctx context.Context, category *domain.Category) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE categories SET name = $2, color = $3, icon = $4, updated_at = $5
         WHERE id = $1`,
		category.ID, category.Name, category.Color, category.Icon, category.UpdatedAt,
	)
	if err != nil {
		return err
	}
	return requireAffected(result)
}

// Delete removes the category; the schema clears the reference on
// transactions (SET NULL) and removes dependent budgets (CASCADE).
func (r *PostgresCategoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireAffected(result)
}
