package postgres

import (
	"context"
	"errors"
	"fmt"

	"arena-wallet/internal/model"
	"arena-wallet/internal/repository"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Ensure implementation satisfies interface at compile time
var _ repository.ProfileRepository = (*ProfileRepositoryImpl)(nil)

const profileColumns = `id, username, email, game_id, image, balance::text, deposit::text, winnings::text,
        is_sentinel_protected, banned, ban_reason, referral_code, referred_by,
        victories, matches, xp, version, created_at, updated_at`

const referralCodeIndex = "profiles_referral_code_idx"

// ProfileRepositoryImpl is the PostgreSQL implementation of ProfileRepository
type ProfileRepositoryImpl struct {
	*TransactionManager
}

func NewProfileRepository(pool *pgxpool.Pool) repository.ProfileRepository {
	return &ProfileRepositoryImpl{
		TransactionManager: NewTransactionManager(pool),
	}
}

// scanProfile never fails on a malformed amount; the profile is flagged instead
// so the fraud gate can act on it.
func scanProfile(row scanner) (*model.Profile, error) {
	p := &model.Profile{}
	var balance, deposit, winnings string
	err := row.Scan(&p.ID, &p.Username, &p.Email, &p.GameID, &p.Image, &balance, &deposit, &winnings,
		&p.SentinelProtected, &p.Banned, &p.BanReason, &p.ReferralCode, &p.ReferredBy,
		&p.Stats.Victories, &p.Stats.Matches, &p.Stats.XP, &p.Version, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}

	var okB, okD, okW bool
	p.Balance, okB = parseAmount(balance)
	p.Deposit, okD = parseAmount(deposit)
	p.Winnings, okW = parseAmount(winnings)
	p.BalanceCorrupt = !(okB && okD && okW)
	return p, nil
}

func (r *ProfileRepositoryImpl) getOne(ctx context.Context, q Querier, query string, args ...any) (*model.Profile, error) {
	p, err := scanProfile(q.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return p, nil
}

// CreateProfile inserts a new profile
func (r *ProfileRepositoryImpl) CreateProfile(ctx context.Context, p *model.Profile, tx pgx.Tx) error {
	query := `
        INSERT INTO profiles (id, username, email, game_id, image, balance, deposit, winnings,
                              is_sentinel_protected, referral_code, referred_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
        RETURNING version, created_at, updated_at`

	err := tx.QueryRow(ctx, query, p.ID, p.Username, p.Email, p.GameID, p.Image,
		p.Balance, p.Deposit, p.Winnings, p.SentinelProtected, p.ReferralCode, p.ReferredBy).
		Scan(&p.Version, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if code, constraint := pgErrorCode(err); code == pgerrcode.UniqueViolation {
			if constraint == referralCodeIndex {
				return model.ErrReferralCodeTaken
			}
			return model.ErrProfileExists
		}
		return fmt.Errorf("failed to insert profile: %w", err)
	}
	return nil
}

// GetProfile retrieves a profile (read-only)
func (r *ProfileRepositoryImpl) GetProfile(ctx context.Context, userID string, tx ...pgx.Tx) (*model.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE id = $1`
	return r.getOne(ctx, r.getExecutor(tx...), query, userID)
}

// GetProfileForUpdate retrieves a profile with row-level lock
func (r *ProfileRepositoryImpl) GetProfileForUpdate(ctx context.Context, userID string, tx pgx.Tx) (*model.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE id = $1 FOR UPDATE`
	return r.getOne(ctx, tx, query, userID)
}

// GetProfileByReferralCode locks the profile owning the code
func (r *ProfileRepositoryImpl) GetProfileByReferralCode(ctx context.Context, code string, tx pgx.Tx) (*model.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE referral_code = $1 FOR UPDATE`
	return r.getOne(ctx, tx, query, code)
}

// UpdateBalances writes the three amounts and bumps the version
func (r *ProfileRepositoryImpl) UpdateBalances(ctx context.Context, userID string, b model.Balances, tx pgx.Tx) error {
	query := `
        UPDATE profiles
        SET deposit = $1, winnings = $2, balance = $3, version = version + 1, updated_at = NOW()
        WHERE id = $4`

	commandTag, err := tx.Exec(ctx, query, b.Deposit, b.Winnings, b.Balance, userID)
	if err != nil {
		// deposit_non_negative and winnings_non_negative
		if code, _ := pgErrorCode(err); code == pgerrcode.CheckViolation {
			return model.ErrInsufficientBalance
		}
		return fmt.Errorf("failed to update balances: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return model.ErrProfileNotFound
	}
	return nil
}

// UpdateDetails changes the player-editable fields
func (r *ProfileRepositoryImpl) UpdateDetails(ctx context.Context, userID, username, gameID string) (*model.Profile, error) {
	query := `
        UPDATE profiles
        SET username = $1, game_id = $2, version = version + 1, updated_at = NOW()
        WHERE id = $3
        RETURNING ` + profileColumns

	return r.getOne(ctx, r.pool, query, username, gameID, userID)
}

// Ban marks the profile banned unless it already is
func (r *ProfileRepositoryImpl) Ban(ctx context.Context, userID, reason string, tx pgx.Tx) (bool, error) {
	query := `
        UPDATE profiles
        SET banned = TRUE, ban_reason = $1, version = version + 1, updated_at = NOW()
        WHERE id = $2 AND banned = FALSE`

	result, err := tx.Exec(ctx, query, reason, userID)
	if err != nil {
		return false, fmt.Errorf("failed to ban profile: %w", err)
	}
	return result.RowsAffected() == 1, nil
}
