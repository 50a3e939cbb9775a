package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"arena-wallet/internal/config"
	"arena-wallet/internal/model"
	"arena-wallet/internal/proof"
	"arena-wallet/internal/repository"
	"arena-wallet/internal/session"
	"arena-wallet/internal/wallet"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

type TournamentServiceImpl struct {
	profileRepo     repository.ProfileRepository
	tournamentRepo  repository.TournamentRepository
	transactionRepo repository.TransactionRepository
	requestRepo     repository.RequestRepository
	dbManager       repository.DBManager
	cfg             config.WalletConfig
	logger          zerolog.Logger
	newID           func() string
}

func NewTournamentService(
	profileRepo repository.ProfileRepository,
	tournamentRepo repository.TournamentRepository,
	transactionRepo repository.TransactionRepository,
	requestRepo repository.RequestRepository,
	dbManager repository.DBManager,
	cfg config.WalletConfig,
	logger zerolog.Logger,
) TournamentService {
	return &TournamentServiceImpl{
		profileRepo:     profileRepo,
		tournamentRepo:  tournamentRepo,
		transactionRepo: transactionRepo,
		requestRepo:     requestRepo,
		dbManager:       dbManager,
		cfg:             cfg,
		logger:          logger,
		newID:           uuid.NewString,
	}
}

func (s *TournamentServiceImpl) ListTournaments(ctx context.Context, sess session.Session, tab model.TournamentTab) (*model.TournamentListResponse, error) {
	tournaments, err := s.tournamentRepo.ListTournaments(ctx, tab.Statuses())
	if err != nil {
		return nil, fmt.Errorf("list tournaments: %w", err)
	}
	return views(tournaments, sess.UserID), nil
}

func (s *TournamentServiceImpl) GetTournament(ctx context.Context, sess session.Session, tournamentID string) (*model.TournamentView, error) {
	tournament, err := s.tournamentRepo.GetTournament(ctx, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("get tournament: %w", err)
	}
	return tournament.ViewFor(sess.UserID), nil
}

// ListMyMatches returns joined tournaments, live ones first.
func (s *TournamentServiceImpl) ListMyMatches(ctx context.Context, sess session.Session) (*model.TournamentListResponse, error) {
	tournaments, err := s.tournamentRepo.ListJoinedTournaments(ctx, sess.UserID)
	if err != nil {
		return nil, fmt.Errorf("list joined tournaments: %w", err)
	}

	slices.SortStableFunc(tournaments, func(a, b *model.Tournament) int {
		return a.Status.MatchRank() - b.Status.MatchRank()
	})
	return views(tournaments, sess.UserID), nil
}

// JoinTournament runs the entry guards on a locked profile and a fresh tournament
// read, then reserves the slot, records the participant, charges the fee and
// appends the ledger entry in one database transaction.
func (s *TournamentServiceImpl) JoinTournament(ctx context.Context, sess session.Session, tournamentID string) (*model.JoinResponse, error) {
	var result *model.JoinResponse

	err := s.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
		profile, err := s.profileRepo.GetProfileForUpdate(ctx, sess.UserID, tx)
		if err != nil {
			return fmt.Errorf("get profile for update: %w", err)
		}

		tournament, err := s.tournamentRepo.GetTournament(ctx, tournamentID, tx)
		if err != nil {
			return fmt.Errorf("get tournament: %w", err)
		}

		if err := wallet.CheckEntry(profile, tournament); err != nil {
			return err
		}

		// The conditional increment is the slot ceiling; the check above only
		// produces the friendlier message.
		reserved, err := s.tournamentRepo.ReserveSlot(ctx, tournamentID, tx)
		if err != nil {
			return fmt.Errorf("reserve slot: %w", err)
		}
		if !reserved {
			return model.Reject(model.ErrTournamentFull, "Slots Full")
		}

		if err := s.tournamentRepo.AddParticipant(ctx, tournamentID, sess.UserID, tx); err != nil {
			if errors.Is(err, model.ErrAlreadyJoined) {
				return model.Reject(model.ErrAlreadyJoined, "You are already registered for this match.")
			}
			return fmt.Errorf("add participant: %w", err)
		}

		balances := profile.Balances()
		if tournament.EntryFee.IsPositive() {
			balances = wallet.ApplyEntryFee(balances, tournament.EntryFee)
			if err := s.profileRepo.UpdateBalances(ctx, sess.UserID, balances, tx); err != nil {
				if errors.Is(err, model.ErrInsufficientBalance) {
					return model.Reject(model.ErrInsufficientBalance, "Insufficient Balance! Please deposit funds.")
				}
				return fmt.Errorf("update balances: %w", err)
			}

			entry := &model.Transaction{
				ID:           s.newID(),
				UserID:       sess.UserID,
				Type:         model.TransactionEntryFee,
				Amount:       tournament.EntryFee,
				Status:       model.StatusSuccess,
				TournamentID: tournament.ID,
				Title:        tournament.Title,
			}
			if err := s.transactionRepo.InsertTransaction(ctx, entry, tx); err != nil {
				return fmt.Errorf("insert transaction: %w", err)
			}
		}

		s.logger.Info().Str("user_id", sess.UserID).Str("tournament_id", tournamentID).
			Str("entry_fee", tournament.EntryFee.String()).
			Str("new_balance", balances.Balance.StringFixed(2)).
			Msg("tournament joined")

		result = &model.JoinResponse{
			TournamentID: tournament.ID,
			FilledSlots:  tournament.FilledSlots + 1,
			Balance:      balances.Balance.StringFixed(2),
			Deposit:      balances.Deposit.StringFixed(2),
			Winnings:     balances.Winnings.StringFixed(2),
			Notice:       success("Joined Successfully!"),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (s *TournamentServiceImpl) SubmitMatchResult(ctx context.Context, sess session.Session, tournamentID string, req *model.MatchResultRequest) (*model.SubmissionResponse, error) {
	if strings.TrimSpace(req.Screenshot) == "" {
		return nil, model.Reject(model.ErrMissingFields, "Please upload a screenshot")
	}

	if _, err := activeProfile(ctx, s.profileRepo, sess.UserID); err != nil {
		return nil, err
	}

	tournament, err := s.tournamentRepo.GetTournament(ctx, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("get tournament: %w", err)
	}
	if !tournament.HasParticipant(sess.UserID) {
		return nil, model.Reject(model.ErrNotParticipant, "You are not registered for this match.")
	}

	if _, err := proof.Decode(req.Screenshot, proof.Limit{MaxBytes: s.cfg.MaxResultProof, Message: "Image too large (Max 2MB)"}); err != nil {
		return nil, err
	}

	result := &model.MatchResult{
		ID:           s.newID(),
		TournamentID: tournamentID,
		UserID:       sess.UserID,
		Email:        sess.Email,
		Screenshot:   req.Screenshot,
		Status:       model.QueueSubmitted,
	}
	if err := s.requestRepo.InsertMatchResult(ctx, result); err != nil {
		return nil, fmt.Errorf("insert match result: %w", err)
	}

	s.logger.Info().Str("user_id", sess.UserID).Str("tournament_id", tournamentID).Msg("match result submitted")

	return &model.SubmissionResponse{ID: result.ID, Notice: success("Result Uploaded Successfully!")}, nil
}

func views(tournaments []*model.Tournament, userID string) *model.TournamentListResponse {
	out := make([]*model.TournamentView, 0, len(tournaments))
	for _, t := range tournaments {
		out = append(out, t.ViewFor(userID))
	}
	return &model.TournamentListResponse{Tournaments: out, Total: len(out)}
}
