package repository

import (
	"context"
	"time"

	"arena-wallet/internal/model"

	"github.com/jackc/pgx/v5"
)

// DBManager provides database transaction management
type DBManager interface {
	// WithTransaction executes a function within a database transaction
	WithTransaction(ctx context.Context, fn func(pgx.Tx) error) error
}

// ProfileRepository defines operations on user profiles and their balances
type ProfileRepository interface {
	// CreateProfile inserts a new profile
	CreateProfile(ctx context.Context, profile *model.Profile, tx pgx.Tx) error

	// GetProfile retrieves a profile (read-only)
	GetProfile(ctx context.Context, userID string, tx ...pgx.Tx) (*model.Profile, error)

	// GetProfileForUpdate retrieves a profile with row-level lock (must be in transaction)
	GetProfileForUpdate(ctx context.Context, userID string, tx pgx.Tx) (*model.Profile, error)

	// GetProfileByReferralCode locks the profile owning the code
	GetProfileByReferralCode(ctx context.Context, code string, tx pgx.Tx) (*model.Profile, error)

	// UpdateBalances writes deposit, winnings and balance together
	UpdateBalances(ctx context.Context, userID string, balances model.Balances, tx pgx.Tx) error

	// UpdateDetails changes the player-editable fields
	UpdateDetails(ctx context.Context, userID, username, gameID string) (*model.Profile, error)

	// Ban marks the profile banned unless it already is; reports whether a row changed
	Ban(ctx context.Context, userID, reason string, tx pgx.Tx) (bool, error)
}

// TournamentRepository defines operations on tournaments and their participants
type TournamentRepository interface {
	// ListTournaments returns tournaments in the given statuses, all when statuses is empty
	ListTournaments(ctx context.Context, statuses []model.TournamentStatus) ([]*model.Tournament, error)

	// GetTournament retrieves a tournament with its participants
	GetTournament(ctx context.Context, tournamentID string, tx ...pgx.Tx) (*model.Tournament, error)

	// ListJoinedTournaments returns the tournaments the user participates in
	ListJoinedTournaments(ctx context.Context, userID string) ([]*model.Tournament, error)

	// ReserveSlot increments filled slots if the tournament is open and not full
	ReserveSlot(ctx context.Context, tournamentID string, tx pgx.Tx) (bool, error)

	// AddParticipant records the user as a participant
	AddParticipant(ctx context.Context, tournamentID, userID string, tx pgx.Tx) error
}

// TransactionRepository defines operations for wallet history
type TransactionRepository interface {
	// InsertTransaction creates a new transaction record
	InsertTransaction(ctx context.Context, trans *model.Transaction, tx pgx.Tx) error

	// GetTransaction retrieves one of the user's transactions
	GetTransaction(ctx context.Context, userID, transactionID string) (*model.Transaction, error)

	// GetTransactionsByUser retrieves paginated transactions for a user, newest first
	GetTransactionsByUser(ctx context.Context, userID string, types []model.TransactionType, limit, offset int) ([]*model.Transaction, error)

	// CountTransactionsByUser counts the transactions matched by the same filter
	CountTransactionsByUser(ctx context.Context, userID string, types []model.TransactionType) (int, error)

	// DeleteSettledTransaction deletes a transaction unless it is still pending
	DeleteSettledTransaction(ctx context.Context, userID, transactionID string) (bool, error)
}

// RequestRepository stores records placed in operator queues
type RequestRepository interface {
	InsertPaymentRequest(ctx context.Context, req *model.PaymentRequest, tx pgx.Tx) error
	InsertBanAppeal(ctx context.Context, appeal *model.BanAppeal) error
	InsertSupportTicket(ctx context.Context, ticket *model.SupportTicket) error
	InsertMatchResult(ctx context.Context, result *model.MatchResult) error
}

// MailRepository defines operations on the user inbox
type MailRepository interface {
	// GetMailsByUser returns mails created after since, newest first
	GetMailsByUser(ctx context.Context, userID string, since time.Time) ([]*model.Mail, error)

	// DeleteMailsOlderThan purges expired mails
	DeleteMailsOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}
