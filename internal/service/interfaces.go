package service

import (
	"context"

	"arena-wallet/internal/model"
	"arena-wallet/internal/session"
)

// TournamentService covers the lobby, match entry and result submission
type TournamentService interface {
	ListTournaments(ctx context.Context, s session.Session, tab model.TournamentTab) (*model.TournamentListResponse, error)
	GetTournament(ctx context.Context, s session.Session, tournamentID string) (*model.TournamentView, error)
	ListMyMatches(ctx context.Context, s session.Session) (*model.TournamentListResponse, error)
	JoinTournament(ctx context.Context, s session.Session, tournamentID string) (*model.JoinResponse, error)
	SubmitMatchResult(ctx context.Context, s session.Session, tournamentID string, req *model.MatchResultRequest) (*model.SubmissionResponse, error)
}

// WalletService covers balances, history, deposits and withdrawals
type WalletService interface {
	GetWallet(ctx context.Context, s session.Session) (*model.WalletResponse, error)
	ListTransactions(ctx context.Context, s session.Session, filter model.TransactionFilter, limit, offset int) (*model.TransactionListResponse, error)
	DeleteTransaction(ctx context.Context, s session.Session, transactionID string) (*model.Notice, error)
	RequestDeposit(ctx context.Context, s session.Session, req *model.DepositRequest) (*model.PaymentResponse, error)
	RequestWithdrawal(ctx context.Context, s session.Session, req *model.WithdrawalRequest) (*model.PaymentResponse, error)
}

// AccountService manages the player's own profile
type AccountService interface {
	CreateProfile(ctx context.Context, s session.Session, req *model.CreateProfileRequest) (*model.ProfileResponse, error)
	GetProfile(ctx context.Context, s session.Session) (*model.Profile, error)
	UpdateProfile(ctx context.Context, s session.Session, req *model.UpdateProfileRequest) (*model.ProfileResponse, error)
}

// SentinelService bans accounts whose balances look tampered with
type SentinelService interface {
	// Inspect evaluates a profile snapshot and reports whether it banned the account
	Inspect(ctx context.Context, profile *model.Profile) (bool, error)
}

// SupportService covers tickets, ban appeals and the inbox
type SupportService interface {
	SubmitTicket(ctx context.Context, s session.Session, req *model.TicketRequest) (*model.SubmissionResponse, error)
	SubmitAppeal(ctx context.Context, s session.Session, req *model.AppealRequest) (*model.SubmissionResponse, error)
	ListMail(ctx context.Context, s session.Session) (*model.InboxResponse, error)
	PurgeExpiredMail(ctx context.Context) (int64, error)
}
