package postgres

import (
	"context"
	"errors"
	"fmt"

	"arena-wallet/internal/model"
	"arena-wallet/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Ensure implementation satisfies interface at compile time
var _ repository.TransactionRepository = (*TransactionRepositoryImpl)(nil)

const transactionColumns = `id, user_id, type, amount, status, method, reference, tournament_id, title, created_at, updated_at`

// TransactionRepositoryImpl is the PostgreSQL implementation of TransactionRepository
type TransactionRepositoryImpl struct {
	*TransactionManager
}

func NewTransactionRepository(pool *pgxpool.Pool) repository.TransactionRepository {
	return &TransactionRepositoryImpl{
		TransactionManager: NewTransactionManager(pool),
	}
}

func scanTransaction(row scanner, trans *model.Transaction) error {
	return row.Scan(&trans.ID, &trans.UserID, &trans.Type, &trans.Amount, &trans.Status, &trans.Method,
		&trans.Reference, &trans.TournamentID, &trans.Title, &trans.CreatedAt, &trans.UpdatedAt)
}

// InsertTransaction creates a new transaction record
func (r *TransactionRepositoryImpl) InsertTransaction(ctx context.Context, trans *model.Transaction, tx pgx.Tx) error {
	query := `
        INSERT INTO transactions (id, user_id, type, amount, status, method, reference, tournament_id, title)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
        RETURNING created_at, updated_at`

	err := tx.QueryRow(ctx, query, trans.ID, trans.UserID, string(trans.Type), trans.Amount, string(trans.Status),
		trans.Method, trans.Reference, trans.TournamentID, trans.Title).
		Scan(&trans.CreatedAt, &trans.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert transaction: %w", err)
	}
	return nil
}

// GetTransaction retrieves one of the user's transactions
func (r *TransactionRepositoryImpl) GetTransaction(ctx context.Context, userID, transactionID string) (*model.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE id = $1 AND user_id = $2`

	trans := &model.Transaction{}
	if err := scanTransaction(r.pool.QueryRow(ctx, query, transactionID, userID), trans); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return trans, nil
}

// GetTransactionsByUser retrieves paginated transactions for a user
func (r *TransactionRepositoryImpl) GetTransactionsByUser(ctx context.Context, userID string, types []model.TransactionType, limit, offset int) ([]*model.Transaction, error) {
	query := `
        SELECT ` + transactionColumns + `
        FROM transactions
        WHERE user_id = $1 AND (cardinality($2::text[]) = 0 OR type = ANY($2::text[]))
        ORDER BY created_at DESC, id
        LIMIT $3 OFFSET $4`

	rows, err := r.pool.Query(ctx, query, userID, typeStrings(types), limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	transactions := []*model.Transaction{}
	for rows.Next() {
		trans := &model.Transaction{}
		if err := scanTransaction(rows, trans); err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		transactions = append(transactions, trans)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read transactions: %w", err)
	}
	return transactions, nil
}

// CountTransactionsByUser counts the transactions matched by the same filter
func (r *TransactionRepositoryImpl) CountTransactionsByUser(ctx context.Context, userID string, types []model.TransactionType) (int, error) {
	query := `
        SELECT COUNT(*)
        FROM transactions
        WHERE user_id = $1 AND (cardinality($2::text[]) = 0 OR type = ANY($2::text[]))`

	var total int
	if err := r.pool.QueryRow(ctx, query, userID, typeStrings(types)).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to count transactions: %w", err)
	}
	return total, nil
}

// DeleteSettledTransaction deletes a transaction unless it is still pending
func (r *TransactionRepositoryImpl) DeleteSettledTransaction(ctx context.Context, userID, transactionID string) (bool, error) {
	query := `DELETE FROM transactions WHERE id = $1 AND user_id = $2 AND status <> $3`

	result, err := r.pool.Exec(ctx, query, transactionID, userID, string(model.StatusPending))
	if err != nil {
		return false, fmt.Errorf("failed to delete transaction: %w", err)
	}
	return result.RowsAffected() == 1, nil
}
