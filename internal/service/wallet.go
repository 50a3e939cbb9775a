package service

import (
	"context"
	"errors"
	"fmt"
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
	"github.com/shopspring/decimal"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

type WalletServiceImpl struct {
	profileRepo     repository.ProfileRepository
	transactionRepo repository.TransactionRepository
	requestRepo     repository.RequestRepository
	dbManager       repository.DBManager
	cfg             config.WalletConfig
	logger          zerolog.Logger
	newID           func() string
}

func NewWalletService(
	profileRepo repository.ProfileRepository,
	transactionRepo repository.TransactionRepository,
	requestRepo repository.RequestRepository,
	dbManager repository.DBManager,
	cfg config.WalletConfig,
	logger zerolog.Logger,
) WalletService {
	return &WalletServiceImpl{
		profileRepo:     profileRepo,
		transactionRepo: transactionRepo,
		requestRepo:     requestRepo,
		dbManager:       dbManager,
		cfg:             cfg,
		logger:          logger,
		newID:           uuid.NewString,
	}
}

func (s *WalletServiceImpl) GetWallet(ctx context.Context, sess session.Session) (*model.WalletResponse, error) {
	profile, err := s.profileRepo.GetProfile(ctx, sess.UserID)
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}

	return &model.WalletResponse{
		Balance:  profile.Balance.StringFixed(2),
		Deposit:  profile.Deposit.StringFixed(2),
		Winnings: profile.Winnings.StringFixed(2),
	}, nil
}

func (s *WalletServiceImpl) ListTransactions(ctx context.Context, sess session.Session, filter model.TransactionFilter, limit, offset int) (*model.TransactionListResponse, error) {
	if limit <= 0 {
		limit = defaultPageSize
	}
	limit = min(limit, maxPageSize)
	offset = max(offset, 0)

	types := filter.Types()
	transactions, err := s.transactionRepo.GetTransactionsByUser(ctx, sess.UserID, types, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("get user transactions: %w", err)
	}

	total, err := s.transactionRepo.CountTransactionsByUser(ctx, sess.UserID, types)
	if err != nil {
		return nil, fmt.Errorf("count user transactions: %w", err)
	}

	return &model.TransactionListResponse{
		Transactions: transactions,
		Total:        total,
		Limit:        limit,
		Offset:       offset,
	}, nil
}

// DeleteTransaction removes a settled entry from the user's history. Pending
// entries are still in an operator queue and stay.
func (s *WalletServiceImpl) DeleteTransaction(ctx context.Context, sess session.Session, transactionID string) (*model.Notice, error) {
	if _, err := activeProfile(ctx, s.profileRepo, sess.UserID); err != nil {
		return nil, err
	}

	trans, err := s.transactionRepo.GetTransaction(ctx, sess.UserID, transactionID)
	if err != nil {
		return nil, fmt.Errorf("get transaction: %w", err)
	}
	if trans.Status == model.StatusPending {
		return nil, model.Reject(model.ErrTransactionPending, "Pending transactions cannot be deleted")
	}

	deleted, err := s.transactionRepo.DeleteSettledTransaction(ctx, sess.UserID, transactionID)
	if err != nil {
		return nil, fmt.Errorf("delete transaction: %w", err)
	}
	if !deleted {
		return nil, model.ErrTransactionNotFound
	}

	s.logger.Info().Str("user_id", sess.UserID).Str("transaction_id", transactionID).Msg("transaction deleted")
	return success("History deleted"), nil
}

// RequestDeposit queues a deposit proof for operators. Balances are only
// credited once an operator approves it.
func (s *WalletServiceImpl) RequestDeposit(ctx context.Context, sess session.Session, req *model.DepositRequest) (*model.PaymentResponse, error) {
	if strings.TrimSpace(req.Amount) == "" || strings.TrimSpace(req.Reference) == "" {
		return nil, model.Reject(model.ErrMissingFields, "Please fill all fields")
	}
	if req.Screenshot == "" {
		return nil, model.Reject(model.ErrMissingFields, "Please upload payment screenshot")
	}

	amount, err := parseAmount(req.Amount)
	if err != nil {
		return nil, err
	}

	if _, err := proof.Decode(req.Screenshot, proof.Limit{MaxBytes: s.cfg.MaxDepositProof, Message: "Image size must be less than 1MB"}); err != nil {
		return nil, err
	}

	var result *model.PaymentResponse
	err = s.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
		profile, err := s.profileRepo.GetProfileForUpdate(ctx, sess.UserID, tx)
		if err != nil {
			return fmt.Errorf("get profile for update: %w", err)
		}
		if err := wallet.CheckActive(profile); err != nil {
			return err
		}

		trans := &model.Transaction{
			ID:        s.newID(),
			UserID:    sess.UserID,
			Type:      model.TransactionDeposit,
			Amount:    amount,
			Status:    model.StatusPending,
			Method:    model.MethodUPI,
			Reference: strings.TrimSpace(req.Reference),
		}
		if err := s.transactionRepo.InsertTransaction(ctx, trans, tx); err != nil {
			return fmt.Errorf("insert transaction: %w", err)
		}

		request := &model.PaymentRequest{
			ID:            s.newID(),
			UserID:        sess.UserID,
			Username:      profile.Username,
			Type:          model.TransactionDeposit,
			Amount:        amount,
			Reference:     trans.Reference,
			Screenshot:    req.Screenshot,
			Status:        model.StatusPending,
			TransactionID: trans.ID,
		}
		if err := s.requestRepo.InsertPaymentRequest(ctx, request, tx); err != nil {
			return fmt.Errorf("insert payment request: %w", err)
		}

		s.logger.Info().Str("user_id", sess.UserID).Str("transaction_id", trans.ID).
			Str("amount", amount.String()).
			Msg("deposit submitted")

		result = &model.PaymentResponse{
			TransactionID: trans.ID,
			Status:        trans.Status.String(),
			Balance:       profile.Balance.StringFixed(2),
			Winnings:      profile.Winnings.StringFixed(2),
			Notice:        success("Deposit Submitted for Verification"),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// RequestWithdrawal debits winnings immediately and queues the payout. The
// ledger entry, the payout request and the debit commit together.
func (s *WalletServiceImpl) RequestWithdrawal(ctx context.Context, sess session.Session, req *model.WithdrawalRequest) (*model.PaymentResponse, error) {
	amount, err := parseAmount(req.Amount)
	if err != nil {
		return nil, err
	}

	dest := wallet.Payout{UPI: strings.TrimSpace(req.PayoutUPI), QR: req.PayoutQR}
	if dest.QR != "" {
		if _, err := proof.Decode(dest.QR, proof.Limit{MaxBytes: s.cfg.MaxPayoutQR, Message: "Image size must be less than 1MB"}); err != nil {
			return nil, err
		}
	}

	var result *model.PaymentResponse
	err = s.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
		profile, err := s.profileRepo.GetProfileForUpdate(ctx, sess.UserID, tx)
		if err != nil {
			return fmt.Errorf("get profile for update: %w", err)
		}
		if err := wallet.CheckActive(profile); err != nil {
			return err
		}
		if err := wallet.CheckWithdrawal(profile.Balances(), amount, s.cfg.MinWithdrawal, dest); err != nil {
			return err
		}

		balances := wallet.ApplyWithdrawal(profile.Balances(), amount)
		if err := s.profileRepo.UpdateBalances(ctx, sess.UserID, balances, tx); err != nil {
			if errors.Is(err, model.ErrInsufficientBalance) {
				return model.Reject(model.ErrInsufficientWinnings, "Insufficient Winnings! You only have ₹"+profile.Winnings.String())
			}
			return fmt.Errorf("update balances: %w", err)
		}

		trans := &model.Transaction{
			ID:        s.newID(),
			UserID:    sess.UserID,
			Type:      model.TransactionWithdrawal,
			Amount:    amount,
			Status:    model.StatusPending,
			Method:    model.MethodUPI,
			Reference: dest.UPI,
		}
		if err := s.transactionRepo.InsertTransaction(ctx, trans, tx); err != nil {
			return fmt.Errorf("insert transaction: %w", err)
		}

		request := &model.PaymentRequest{
			ID:            s.newID(),
			UserID:        sess.UserID,
			Username:      profile.Username,
			Type:          model.TransactionWithdrawal,
			Amount:        amount,
			PayoutUPI:     dest.UPI,
			PayoutQR:      dest.QR,
			Status:        model.StatusPending,
			TransactionID: trans.ID,
		}
		if err := s.requestRepo.InsertPaymentRequest(ctx, request, tx); err != nil {
			return fmt.Errorf("insert payment request: %w", err)
		}

		s.logger.Info().Str("user_id", sess.UserID).Str("transaction_id", trans.ID).
			Str("amount", amount.String()).
			Str("new_winnings", balances.Winnings.StringFixed(2)).
			Msg("withdrawal requested")

		result = &model.PaymentResponse{
			TransactionID: trans.ID,
			Status:        trans.Status.String(),
			Balance:       balances.Balance.StringFixed(2),
			Winnings:      balances.Winnings.StringFixed(2),
			Notice:        success("Withdrawal Request Submitted."),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

func parseAmount(raw string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero, model.Reject(model.ErrInvalidAmount, "Enter a valid amount")
	}

	// amounts are stored with two decimal places; finer amounts are refused, not
	// rounded, so a guard never sees a value the user did not type
	if !amount.Equal(amount.Truncate(2)) || !amount.IsPositive() {
		return decimal.Zero, model.Reject(model.ErrInvalidAmount, "Enter a valid amount")
	}
	return amount, nil
}
