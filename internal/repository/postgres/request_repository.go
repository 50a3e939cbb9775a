package postgres

import (
	"context"
	"fmt"

	"arena-wallet/internal/model"
	"arena-wallet/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var _ repository.RequestRepository = (*RequestRepositoryImpl)(nil)

// RequestRepositoryImpl writes the operator queues. Nothing here reads them back.
type RequestRepositoryImpl struct {
	*TransactionManager
}

func NewRequestRepository(pool *pgxpool.Pool) repository.RequestRepository {
	return &RequestRepositoryImpl{
		TransactionManager: NewTransactionManager(pool),
	}
}

func (r *RequestRepositoryImpl) InsertPaymentRequest(ctx context.Context, req *model.PaymentRequest, tx pgx.Tx) error {
	query := `
        INSERT INTO payment_requests (id, user_id, username, type, amount, reference, screenshot, payout_upi, payout_qr, status, transaction_id)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
        RETURNING created_at`

	err := tx.QueryRow(ctx, query, req.ID, req.UserID, req.Username, string(req.Type), req.Amount, req.Reference,
		req.Screenshot, req.PayoutUPI, req.PayoutQR, string(req.Status), req.TransactionID).
		Scan(&req.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert payment request: %w", err)
	}
	return nil
}

func (r *RequestRepositoryImpl) InsertBanAppeal(ctx context.Context, appeal *model.BanAppeal) error {
	query := `
        INSERT INTO ban_appeals (id, user_id, email, username, reason, status)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING created_at`

	err := r.pool.QueryRow(ctx, query, appeal.ID, appeal.UserID, appeal.Email, appeal.Username, appeal.Reason, appeal.Status).
		Scan(&appeal.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert ban appeal: %w", err)
	}
	return nil
}

func (r *RequestRepositoryImpl) InsertSupportTicket(ctx context.Context, ticket *model.SupportTicket) error {
	query := `
        INSERT INTO support_tickets (id, user_id, email, issue, status)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING created_at`

	err := r.pool.QueryRow(ctx, query, ticket.ID, ticket.UserID, ticket.Email, ticket.Issue, ticket.Status).
		Scan(&ticket.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert support ticket: %w", err)
	}
	return nil
}

func (r *RequestRepositoryImpl) InsertMatchResult(ctx context.Context, result *model.MatchResult) error {
	query := `
        INSERT INTO match_results (id, tournament_id, user_id, email, screenshot, status)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING created_at`

	err := r.pool.QueryRow(ctx, query, result.ID, result.TournamentID, result.UserID, result.Email, result.Screenshot, result.Status).
		Scan(&result.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert match result: %w", err)
	}
	return nil
}
