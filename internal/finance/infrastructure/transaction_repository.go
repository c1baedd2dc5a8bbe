package infrastructure

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/kamilczajka/FinanceTracker/internal/finance/domain"
	financeErrors "github.com/kamilczajka/FinanceTracker/internal/finance/errors"
	"github.com/kamilczajka/FinanceTracker/internal/money"
)

type PostgresTransactionRepository struct {
	db *sql.DB
}

func NewPostgresTransactionRepository(db *sql.DB) *PostgresTransactionRepository {
	return &PostgresTransactionRepository{db: db}
}

func (r *PostgresTransactionRepository) Create(ctx context.Context, transaction *domain.Transaction) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO transactions (id, user_id, category_id, description, amount, type, date, notes, created_at)
         VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		transaction.ID, transaction.UserID, nullableUUID(transaction.CategoryID), transaction.Description,
		transaction.Amount, transaction.Type, transaction.Date, transaction.Notes, transaction.CreatedAt,
	)
	return err
}

func (r *PostgresTransactionRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Transaction, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, user_id, category_id, description, amount, type, date, notes, created_at, updated_at
         FROM transactions WHERE id = $1`, id)
	transaction, err := scanTransaction(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, financeErrors.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return transaction, nil
}

// GetAllByUser lists newest first. The end date bound is exclusive so
// callers can page through adjacent ranges without overlap.
func (r *PostgresTransactionRepository) GetAllByUser(ctx context.Context, userID uuid.UUID, filter domain.TransactionFilter) ([]domain.Transaction, error) {
	var sb strings.Builder
	sb.WriteString(`SELECT id, user_id, category_id, description, amount, type, date, notes, created_at, updated_at
         FROM transactions WHERE user_id = $1`)
	args := []interface{}{userID}

	if filter.StartDate != nil {
		args = append(args, *filter.StartDate)
		fmt.Fprintf(&sb, " AND date >= $%d", len(args))
	}
	if filter.EndDate != nil {
		args = append(args, *filter.EndDate)
		fmt.Fprintf(&sb, " AND date < $%d", len(args))
	}
	if filter.Type != nil {
		args = append(args, *filter.Type)
		fmt.Fprintf(&sb, " AND type = $%d", len(args))
	}
	if filter.CategoryID != nil {
		args = append(args, *filter.CategoryID)
		fmt.Fprintf(&sb, " AND category_id = $%d", len(args))
	}

	args = append(args, filter.Limit)
	fmt.Fprintf(&sb, " ORDER BY date DESC LIMIT $%d", len(args))
	args = append(args, filter.Offset)
	fmt.Fprintf(&sb, " OFFSET $%d", len(args))

	rows, err := r.db.QueryContext(ctx, sb.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var transactions []domain.Transaction
	for rows.Next() {
		transaction, err := scanTransaction(rows.Scan)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, *transaction)
	}
	return transactions, rows.Err()
}

// GetTotalByType sums one type's amounts. Unlike the listing filter,
// both date bounds are inclusive here.
func (r *PostgresTransactionRepository) GetTotalByType(ctx context.Context, userID uuid.UUID, transactionType domain.TransactionType, startDate, endDate *time.Time) (money.Amount, error) {
	var sb strings.Builder
	sb.WriteString(`SELECT COALESCE(SUM(amount), 0) FROM transactions WHERE user_id = $1 AND type = $2`)
	args := []interface{}{userID, transactionType}

	if startDate != nil {
		args = append(args, *startDate)
		fmt.Fprintf(&sb, " AND date >= $%d", len(args))
	}
	if endDate != nil {
		args = append(args, *endDate)
		fmt.Fprintf(&sb, " AND date <= $%d", len(args))
	}

	var total money.Amount
	err := r.db.QueryRowContext(ctx, sb.String(), args...).Scan(&total)
	return total, err
}

func (r *PostgresTransactionRepository) GetTotalByCategory(ctx context.Context, userID, categoryID uuid.UUID, startDate, endDate time.Time) (money.Amount, error) {
	var total money.Amount
	err := r.db.QueryRowContext(ctx,
		`SELECT COALESCE(SUM(amount), 0) FROM transactions
         WHERE user_id = $1 AND category_id = $2 AND type = 'expense' AND date >= $3 AND date < $4`,
		userID, categoryID, startDate, endDate,
	).Scan(&total)
	return total, err
}

func (r *PostgresTransactionRepository) CountByUser(ctx context.Context, userID uuid.UUID, startDate, endDate *time.Time) (int, error) {
	var sb strings.Builder
	sb.WriteString(`SELECT COUNT(*) FROM transactions WHERE user_id = $1`)
	args := []interface{}{userID}

	if startDate != nil {
		args = append(args, *startDate)
		fmt.Fprintf(&sb, " AND date >= $%d", len(args))
	}
	if endDate != nil {
		args = append(args, *endDate)
		fmt.Fprintf(&sb, " AND date < $%d", len(args))
	}

	var count int
	err := r.db.QueryRowContext(ctx, sb.String(), args...).Scan(&count)
	return count, err
}

func (r *PostgresTransactionRepository) Update(ctx context.Context, transaction *domain.Transaction) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE transactions SET category_id = $2, description = $3, amount = $4, type = $5, date = $6, notes = $7, updated_at = $8
         WHERE id = $1`,
		transaction.ID, nullableUUID(transaction.CategoryID), transaction.Description, transaction.Amount,
		transaction.Type, transaction.Date, transaction.Notes, transaction.UpdatedAt,
	)
	if err != nil {
		return err
	}
	return requireAffected(result)
}

func (r *PostgresTransactionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM transactions WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireAffected(result)
}

func scanTransaction(scan func(dest ...interface{}) error) (*domain.Transaction, error) {
	var transaction domain.Transaction
	var categoryID uuid.NullUUID
	err := scan(&transaction.ID, &transaction.UserID, &categoryID, &transaction.Description,
		&transaction.Amount, &transaction.Type, &transaction.Date, &transaction.Notes,
		&transaction.CreatedAt, &transaction.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if categoryID.Valid {
		transaction.CategoryID = &categoryID.UUID
	}
	return &transaction, nil
}

func nullableUUID(id *uuid.UUID) uuid.NullUUID {
	if id == nil {
		return uuid.NullUUID{}
	}
	return uuid.NullUUID{UUID: *id, Valid: true}
}
