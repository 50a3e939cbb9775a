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
var _ repository.TournamentRepository = (*TournamentRepositoryImpl)(nil)

const tournamentColumns = `t.id, t.title, t.map, t.weapon, t.type, t.prize_pool, t.entry_fee,
        t.total_slots, t.filled_slots, t.status, t.image, t.description, t.rules, t.start_time,
        t.room_id, t.room_pass, t.created_at, t.updated_at,
        ARRAY(SELECT p.user_id FROM tournament_participants p WHERE p.tournament_id = t.id)`

// TournamentRepositoryImpl is the PostgreSQL implementation of TournamentRepository
type TournamentRepositoryImpl struct {
	*TransactionManager
}

func NewTournamentRepository(pool *pgxpool.Pool) repository.TournamentRepository {
	return &TournamentRepositoryImpl{
		TransactionManager: NewTransactionManager(pool),
	}
}

func scanTournament(row scanner) (*model.Tournament, error) {
	t := &model.Tournament{}
	var participants []string
	err := row.Scan(&t.ID, &t.Title, &t.Map, &t.Weapon, &t.Type, &t.PrizePool, &t.EntryFee,
		&t.TotalSlots, &t.FilledSlots, &t.Status, &t.Image, &t.Description, &t.Rules, &t.StartTime,
		&t.RoomID, &t.RoomPass, &t.CreatedAt, &t.UpdatedAt, &participants)
	if err != nil {
		return nil, err
	}

	t.Participants = make(map[string]bool, len(participants))
	for _, id := range participants {
		t.Participants[id] = true
	}
	return t, nil
}

func (r *TournamentRepositoryImpl) list(ctx context.Context, query string, args ...any) ([]*model.Tournament, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query tournaments: %w", err)
	}
	defer rows.Close()

	var tournaments []*model.Tournament
	for rows.Next() {
		t, err := scanTournament(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan tournament: %w", err)
		}
		tournaments = append(tournaments, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read tournaments: %w", err)
	}
	return tournaments, nil
}

// ListTournaments returns tournaments in the given statuses, soonest first
func (r *TournamentRepositoryImpl) ListTournaments(ctx context.Context, statuses []model.TournamentStatus) ([]*model.Tournament, error) {
	query := `
        SELECT ` + tournamentColumns + `
        FROM tournaments t
        WHERE cardinality($1::text[]) = 0 OR t.status = ANY($1::text[])
        ORDER BY t.start_time NULLS LAST, t.created_at DESC`

	return r.list(ctx, query, statusStrings(statuses))
}

// GetTournament retrieves a tournament with its participants
func (r *TournamentRepositoryImpl) GetTournament(ctx context.Context, tournamentID string, tx ...pgx.Tx) (*model.Tournament, error) {
	query := `SELECT ` + tournamentColumns + ` FROM tournaments t WHERE t.id = $1`

	t, err := scanTournament(r.getExecutor(tx...).QueryRow(ctx, query, tournamentID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrTournamentNotFound
		}
		return nil, fmt.Errorf("failed to get tournament: %w", err)
	}
	return t, nil
}

// ListJoinedTournaments returns the tournaments the user participates in
func (r *TournamentRepositoryImpl) ListJoinedTournaments(ctx context.Context, userID string) ([]*model.Tournament, error) {
	query := `
        SELECT ` + tournamentColumns + `
        FROM tournaments t
        JOIN tournament_participants jp ON jp.tournament_id = t.id
        WHERE jp.user_id = $1
        ORDER BY t.start_time NULLS LAST, jp.joined_at DESC`

	return r.list(ctx, query, userID)
}

// ReserveSlot takes one slot only while the tournament is open and below capacity
func (r *TournamentRepositoryImpl) ReserveSlot(ctx context.Context, tournamentID string, tx pgx.Tx) (bool, error) {
	query := `
        UPDATE tournaments
        SET filled_slots = filled_slots + 1, updated_at = NOW()
        WHERE id = $1
          AND status = $2
          AND filled_slots < total_slots`

	result, err := tx.Exec(ctx, query, tournamentID, string(model.TournamentOpen))
	if err != nil {
		return false, fmt.Errorf("failed to reserve slot: %w", err)
	}
	return result.RowsAffected() == 1, nil
}

// AddParticipant records the user as a participant
func (r *TournamentRepositoryImpl) AddParticipant(ctx context.Context, tournamentID, userID string, tx pgx.Tx) error {
	query := `INSERT INTO tournament_participants (tournament_id, user_id) VALUES ($1, $2)`

	if _, err := tx.Exec(ctx, query, tournamentID, userID); err != nil {
		switch code, _ := pgErrorCode(err); code {
		case pgerrcode.UniqueViolation:
			return model.ErrAlreadyJoined
		case pgerrcode.ForeignKeyViolation:
			return model.ErrTournamentNotFound
		}
		return fmt.Errorf("failed to add participant: %w", err)
	}
	return nil
}
