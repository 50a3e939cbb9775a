package postgres

import (
	"context"
	"fmt"
	"time"

	"arena-wallet/internal/model"
	"arena-wallet/internal/repository"

	"github.com/jackc/pgx/v5/pgxpool"
)

var _ repository.MailRepository = (*MailRepositoryImpl)(nil)

type MailRepositoryImpl struct {
	*TransactionManager
}

func NewMailRepository(pool *pgxpool.Pool) repository.MailRepository {
	return &MailRepositoryImpl{
		TransactionManager: NewTransactionManager(pool),
	}
}

// GetMailsByUser returns mails created after since, newest first
func (r *MailRepositoryImpl) GetMailsByUser(ctx context.Context, userID string, since time.Time) ([]*model.Mail, error) {
	query := `
        SELECT id, user_id, title, body, created_at
        FROM mails
        WHERE user_id = $1 AND created_at > $2
        ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, userID, since)
	if err != nil {
		return nil, fmt.Errorf("failed to query mails: %w", err)
	}
	defer rows.Close()

	mails := []*model.Mail{}
	for rows.Next() {
		m := &model.Mail{}
		if err := rows.Scan(&m.ID, &m.UserID, &m.Title, &m.Body, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan mail: %w", err)
		}
		mails = append(mails, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read mails: %w", err)
	}
	return mails, nil
}

// DeleteMailsOlderThan purges expired mails
func (r *MailRepositoryImpl) DeleteMailsOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	result, err := r.pool.Exec(ctx, `DELETE FROM mails WHERE created_at <= $1`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to purge mails: %w", err)
	}
	return result.RowsAffected(), nil
}
