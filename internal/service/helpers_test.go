package service

import (
	"context"
	"encoding/base64"
	"errors"
	"testing"
	"time"

	"arena-wallet/internal/config"
	"arena-wallet/internal/model"
	"arena-wallet/internal/session"
	"arena-wallet/mocks/repository"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	testSession  = session.Session{UserID: "uid-1", Email: "danisharmy562@gmail.com"}
	otherSession = session.Session{UserID: "uid-2", Email: "rival@example.com"}
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func testWalletConfig() config.WalletConfig {
	return config.WalletConfig{
		MinWithdrawal:   dec("100"),
		MaxBalance:      dec("50000"),
		ReferralBonus:   dec("5"),
		MaxDepositProof: 1 << 20,
		MaxPayoutQR:     1 << 20,
		MaxResultProof:  2 << 20,
		MailTTL:         24 * time.Hour,
	}
}

func runInTx(m *mocks.DBManager, ctx context.Context) {
	m.On("WithTransaction", ctx, mock.Anything).Return(func(ctx context.Context, fn func(pgx.Tx) error) error { return fn(nil) })
}

// balancesOf matches balances by value and checks they are settled.
func balancesOf(deposit, winnings string) interface{} {
	return mock.MatchedBy(func(b model.Balances) bool {
		return b.Deposit.Equal(dec(deposit)) &&
			b.Winnings.Equal(dec(winnings)) &&
			b.Balance.Equal(dec(deposit).Add(dec(winnings)))
	})
}

func profile(deposit, winnings string) *model.Profile {
	d, w := dec(deposit), dec(winnings)
	return &model.Profile{
		ID:           testSession.UserID,
		Username:     "DANISHARMY562",
		Email:        testSession.Email,
		Deposit:      d,
		Winnings:     w,
		Balance:      d.Add(w),
		ReferralCode: "DAN4821",
	}
}

func pngDataURL(extra int) string {
	raw := append([]byte("\x89PNG\r\n\x1a\n"), make([]byte, extra)...)
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(raw)
}

func rejectionMessage(t *testing.T, err error) string {
	t.Helper()
	var r *model.Rejection
	require.True(t, errors.As(err, &r), "expected a rejection, got %v", err)
	return r.Message
}
