package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"arena-wallet/internal/config"
	"arena-wallet/internal/model"
	"arena-wallet/internal/repository"
	"arena-wallet/internal/session"
	"arena-wallet/internal/wallet"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

const codeAttempts = 5

var errNoFreeCode = errors.New("no free referral code")

// CodeGenerator produces candidate referral codes for a username.
type CodeGenerator interface {
	New(name string) string
}

type AccountServiceImpl struct {
	profileRepo     repository.ProfileRepository
	transactionRepo repository.TransactionRepository
	dbManager       repository.DBManager
	codes           CodeGenerator
	cfg             config.WalletConfig
	logger          zerolog.Logger
	newID           func() string
}

func NewAccountService(
	profileRepo repository.ProfileRepository,
	transactionRepo repository.TransactionRepository,
	dbManager repository.DBManager,
	codes CodeGenerator,
	cfg config.WalletConfig,
	logger zerolog.Logger,
) AccountService {
	return &AccountServiceImpl{
		profileRepo:     profileRepo,
		transactionRepo: transactionRepo,
		dbManager:       dbManager,
		codes:           codes,
		cfg:             cfg,
		logger:          logger,
		newID:           uuid.NewString,
	}
}

// CreateProfile sets up the profile on first sign-in. Calling it again returns
// the existing profile. A valid referral code credits the bonus to both sides in
// the same transaction that creates the profile.
func (s *AccountServiceImpl) CreateProfile(ctx context.Context, sess session.Session, req *model.CreateProfileRequest) (*model.ProfileResponse, error) {
	existing, err := s.profileRepo.GetProfile(ctx, sess.UserID)
	if err == nil {
		return &model.ProfileResponse{Profile: existing}, nil
	}
	if !errors.Is(err, model.ErrProfileNotFound) {
		return nil, fmt.Errorf("get profile: %w", err)
	}

	username := strings.TrimSpace(req.Username)
	if username == "" {
		username, _, _ = strings.Cut(sess.Email, "@")
	}
	if username == "" {
		username = "Player"
	}

	profile := &model.Profile{
		ID:                sess.UserID,
		Username:          username,
		Email:             sess.Email,
		SentinelProtected: true,
	}
	var referrer *model.Profile

	err = s.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
		code, err := s.freeCode(ctx, username, tx)
		if err != nil {
			return err
		}
		profile.ReferralCode = code

		referrer, err = s.findReferrer(ctx, req.ReferralCode, sess.UserID, tx)
		if err != nil {
			return err
		}

		balances := model.Balances{}
		if referrer != nil {
			credited := wallet.ApplyBonus(referrer.Balances(), s.cfg.ReferralBonus)
			if err := s.profileRepo.UpdateBalances(ctx, referrer.ID, credited, tx); err != nil {
				return fmt.Errorf("credit referrer: %w", err)
			}
			if err := s.insertBonus(ctx, referrer.ID, model.MethodReferralBonus, "Referral Bonus", tx); err != nil {
				return err
			}

			balances = wallet.ApplyBonus(balances, s.cfg.ReferralBonus)
			profile.ReferredBy = referrer.ReferralCode
		}
		profile.Deposit, profile.Winnings, profile.Balance = balances.Deposit, balances.Winnings, balances.Balance

		if err := s.profileRepo.CreateProfile(ctx, profile, tx); err != nil {
			return fmt.Errorf("create profile: %w", err)
		}

		if referrer != nil {
			if err := s.insertBonus(ctx, profile.ID, model.MethodSignupBonus, "Signup Bonus", tx); err != nil {
				return err
			}
		}
		return nil
	})
	if errors.Is(err, model.ErrProfileExists) {
		// a concurrent sign-in created it first
		existing, getErr := s.profileRepo.GetProfile(ctx, sess.UserID)
		if getErr != nil {
			return nil, fmt.Errorf("get profile after conflict: %w", getErr)
		}
		return &model.ProfileResponse{Profile: existing}, nil
	}
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", profile.ID).Str("referral_code", profile.ReferralCode).
		Str("referred_by", profile.ReferredBy).
		Msg("profile created")

	resp := &model.ProfileResponse{Profile: profile, Notice: success("Account Created Successfully!")}
	if referrer != nil {
		resp.Notice = success("Referral Bonus Applied!")
	}
	return resp, nil
}

func (s *AccountServiceImpl) GetProfile(ctx context.Context, sess session.Session) (*model.Profile, error) {
	profile, err := s.profileRepo.GetProfile(ctx, sess.UserID)
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return profile, nil
}

func (s *AccountServiceImpl) UpdateProfile(ctx context.Context, sess session.Session, req *model.UpdateProfileRequest) (*model.ProfileResponse, error) {
	username := strings.TrimSpace(req.Username)
	if username == "" {
		return nil, model.Reject(model.ErrMissingFields, "Username cannot be empty")
	}

	if _, err := activeProfile(ctx, s.profileRepo, sess.UserID); err != nil {
		return nil, err
	}

	profile, err := s.profileRepo.UpdateDetails(ctx, sess.UserID, username, strings.TrimSpace(req.GameID))
	if err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}

	return &model.ProfileResponse{Profile: profile, Notice: success("Profile Updated Successfully")}, nil
}

func (s *AccountServiceImpl) freeCode(ctx context.Context, username string, tx pgx.Tx) (string, error) {
	for range codeAttempts {
		code := s.codes.New(username)
		_, err := s.profileRepo.GetProfileByReferralCode(ctx, code, tx)
		if errors.Is(err, model.ErrProfileNotFound) {
			return code, nil
		}
		if err != nil {
			return "", fmt.Errorf("check referral code: %w", err)
		}
	}
	return "", fmt.Errorf("%w after %d attempts for %q", errNoFreeCode, codeAttempts, username)
}

// findReferrer resolves an entered code. Unknown codes, self referrals and
// banned referrers are ignored rather than rejected.
func (s *AccountServiceImpl) findReferrer(ctx context.Context, code, userID string, tx pgx.Tx) (*model.Profile, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" || !s.cfg.ReferralBonus.IsPositive() {
		return nil, nil
	}

	referrer, err := s.profileRepo.GetProfileByReferralCode(ctx, code, tx)
	if errors.Is(err, model.ErrProfileNotFound) {
		s.logger.Debug().Str("user_id", userID).Str("code", code).Msg("unknown referral code ignored")
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get referrer: %w", err)
	}
	if referrer.ID == userID || referrer.Banned {
		return nil, nil
	}
	return referrer, nil
}

func (s *AccountServiceImpl) insertBonus(ctx context.Context, userID, method, title string, tx pgx.Tx) error {
	bonus := &model.Transaction{
		ID:     s.newID(),
		UserID: userID,
		Type:   model.TransactionDeposit,
		Amount: s.cfg.ReferralBonus,
		Status: model.StatusSuccess,
		Method: method,
		Title:  title,
	}
	if err := s.transactionRepo.InsertTransaction(ctx, bonus, tx); err != nil {
		return fmt.Errorf("insert %s transaction: %w", method, err)
	}
	return nil
}
