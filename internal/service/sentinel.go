package service

import (
	"context"
	"errors"
	"fmt"

	"arena-wallet/internal/model"
	"arena-wallet/internal/repository"
	"arena-wallet/internal/sentinel"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

type SentinelServiceImpl struct {
	profileRepo repository.ProfileRepository
	dbManager   repository.DBManager
	gate        *sentinel.Gate
	logger      zerolog.Logger
}

func NewSentinelService(
	profileRepo repository.ProfileRepository,
	dbManager repository.DBManager,
	gate *sentinel.Gate,
	logger zerolog.Logger,
) SentinelService {
	return &SentinelServiceImpl{
		profileRepo: profileRepo,
		dbManager:   dbManager,
		gate:        gate,
		logger:      logger,
	}
}

// Inspect bans the account when the snapshot looks tampered with. A snapshot can
// be stale by the time it is inspected, so the verdict is repeated on a locked
// fresh read and only that verdict is acted on.
func (s *SentinelServiceImpl) Inspect(ctx context.Context, profile *model.Profile) (bool, error) {
	if !s.gate.Evaluate(profile).Suspicious {
		return false, nil
	}

	var banned bool
	err := s.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
		fresh, err := s.profileRepo.GetProfileForUpdate(ctx, profile.ID, tx)
		if err != nil {
			if errors.Is(err, model.ErrProfileNotFound) {
				return nil
			}
			return fmt.Errorf("get profile for update: %w", err)
		}

		verdict := s.gate.Evaluate(fresh)
		if !verdict.Suspicious {
			s.logger.Debug().Str("user_id", profile.ID).Msg("suspicious snapshot cleared on fresh read")
			return nil
		}

		banned, err = s.profileRepo.Ban(ctx, profile.ID, sentinel.BanReason, tx)
		if err != nil {
			return fmt.Errorf("ban profile: %w", err)
		}

		if banned {
			s.logger.Warn().Str("user_id", profile.ID).Str("rule", string(verdict.Rule)).
				Str("balance", fresh.Balance.String()).
				Str("winnings", fresh.Winnings.String()).
				Bool("balance_corrupt", fresh.BalanceCorrupt).
				Msg("account banned by sentinel")
		}
		return nil
	})
	if err != nil {
		return false, err
	}

	return banned, nil
}
