package infrastructure

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/kamilczajka/FinanceTracker/internal/finance/domain"
	financeErrors "github.com/kamilczajka/FinanceTracker/internal/finance/errors"
)

type PostgresBudgetRepository struct {
	db *sql.DB
}

func NewPostgresBudgetRepository(db *sql.DB) *PostgresBudgetRepository {
	return &PostgresBudgetRepository{db: db}
}

// Create relies on the (user_id, category_id, month, year) unique
// constraint to reject duplicates, so two concurrent creations cannot
// both succeed.
func (r *PostgresBudgetRepository) Create(ctx context.Context, budget *domain.Budget) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO budgets (id, user_id, category_id, amount, month, year, created_at)
         VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		budget.ID, budget.UserID, budget.CategoryID, budget.Amount, budget.Month, budget.Year, budget.CreatedAt,
	)
	if isUniqueViolation(err) {
		return financeErrors.ErrBudgetExists
	}
	return err
}

func (r *PostgresBudgetRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Budget, error) {
	return r.scanBudget(r.db.QueryRowContext(ctx,
		`SELECT id, user_id, category_id, amount, month, year, created_at, updated_at
         FROM budgets WHERE id = $1`, id))
}

func (r *PostgresBudgetRepository) GetByUserAndPeriod(ctx context.Context, userID uuid.UUID, month, year int) ([]domain.Budget, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, user_id, category_id, amount, month, year, created_at, updated_at
         FROM budgets WHERE user_id = $1 AND month = $2 AND year = $3 ORDER BY created_at ASC`,
		userID, month, year)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var budgets []domain.Budget
	for rows.Next() {
		var budget domain.Budget
		if err := rows.Scan(&budget.ID, &budget.UserID, &budget.CategoryID, &budget.Amount,
			&budget.Month, &budget.Year, &budget.CreatedAt, &budget.UpdatedAt); err != nil {
			return nil, err
		}
		budgets = append(budgets, budget)
	}
	return budgets, rows.Err()
}

func (r *PostgresBudgetRepository) GetByCategoryAndPeriod(ctx context.Context, userID, categoryID uuid.UUID, month, year int) (*domain.Budget, error) {
	return r.scanBudget(r.db.QueryRowContext(ctx,
		`SELECT id, user_id, category_id, amount, month, year, created_at, updated_at
         FROM budgets WHERE user_id = $1 AND category_id = $2 AND month = $3 AND year = $4`,
		userID, categoryID, month, year))
}

func (r *PostgresBudgetRepository) Update(ctx context.Context, budget *domain.Budget) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE budgets SET amount = $2, updated_at = $3 WHERE id = $1`,
		budget.ID, budget.Amount, budget.UpdatedAt,
	)
	if err != nil {
		return err
	}
	return requireAffected(result)
}

func (r *PostgresBudgetRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM budgets WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireAffected(result)
}

func (r *PostgresBudgetRepository) scanBudget(row *sql.Row) (*domain.Budget, error) {
	var budget domain.Budget
	err := row.Scan(&budget.ID, &budget.UserID, &budget.CategoryID, &budget.Amount,
		&budget.Month, &budget.Year, &budget.CreatedAt, &budget.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, financeErrors.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &budget, nil
}
