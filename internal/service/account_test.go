package service

import (
	"context"
	"testing"

	"arena-wallet/internal/model"
	"arena-wallet/mocks/repository"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type codeSeq struct {
	codes []string
	next  int
}

func (c *codeSeq) New(string) string {
	code := c.codes[c.next%len(c.codes)]
	c.next++
	return code
}

type accountMocks struct {
	profiles     *mocks.ProfileRepository
	transactions *mocks.TransactionRepository
	db           *mocks.DBManager
}

func newAccountService(t *testing.T, codes ...string) (AccountService, accountMocks) {
	m := accountMocks{
		profiles:     mocks.NewProfileRepository(t),
		transactions: mocks.NewTransactionRepository(t),
		db:           mocks.NewDBManager(t),
	}
	return NewAccountService(m.profiles, m.transactions, m.db, &codeSeq{codes: codes}, testWalletConfig(), zerolog.Nop()), m
}

func TestCreateProfile_Plain(t *testing.T) {
	ctx := context.Background()
	svc, m := newAccountService(t, "DAN1234")

	m.profiles.On("GetProfile", ctx, "uid-1").Return(nil, model.ErrProfileNotFound)
	runInTx(m.db, ctx)
	m.profiles.On("GetProfileByReferralCode", ctx, "DAN1234", mock.Anything).Return(nil, model.ErrProfileNotFound)
	m.profiles.On("CreateProfile", ctx, mock.MatchedBy(func(p *model.Profile) bool {
		return p.ID == "uid-1" &&
			p.Username == "danisharmy562" &&
			p.ReferralCode == "DAN1234" &&
			p.ReferredBy == "" &&
			p.SentinelProtected &&
			p.Balance.IsZero() && p.Deposit.IsZero() && p.Winnings.IsZero()
	}), mock.Anything).Return(nil)

	resp, err := svc.CreateProfile(ctx, testSession, &model.CreateProfileRequest{})

	require.NoError(t, err)
	assert.Equal(t, "DAN1234", resp.Profile.ReferralCode)
	assert.Equal(t, "Account Created Successfully!", resp.Notice.Message)
	m.transactions.AssertNotCalled(t, "InsertTransaction", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateProfile_ReferralCreditsBothSides(t *testing.T) {
	ctx := context.Background()
	svc, m := newAccountService(t, "RIV5555")

	referrer := profile("10", "0")

	m.profiles.On("GetProfile", ctx, "uid-2").Return(nil, model.ErrProfileNotFound)
	runInTx(m.db, ctx)
	m.profiles.On("GetProfileByReferralCode", ctx, "RIV5555", mock.Anything).Return(nil, model.ErrProfileNotFound)
	m.profiles.On("GetProfileByReferralCode", ctx, "DAN4821", mock.Anything).Return(referrer, nil)
	m.profiles.On("UpdateBalances", ctx, "uid-1", balancesOf("15", "0"), mock.Anything).Return(nil)
	m.transactions.On("InsertTransaction", ctx, mock.MatchedBy(func(trans *model.Transaction) bool {
		return trans.UserID == "uid-1" && trans.Method == model.MethodReferralBonus &&
			trans.Type == model.TransactionDeposit && trans.Status == model.StatusSuccess &&
			trans.Amount.Equal(dec("5"))
	}), mock.Anything).Return(nil)
	m.profiles.On("CreateProfile", ctx, mock.MatchedBy(func(p *model.Profile) bool {
		return p.ID == "uid-2" &&
			p.Username == "RIVAL" &&
			p.ReferredBy == "DAN4821" &&
			p.Deposit.Equal(dec("5")) && p.Balance.Equal(dec("5")) && p.Winnings.IsZero()
	}), mock.Anything).Return(nil)
	m.transactions.On("InsertTransaction", ctx, mock.MatchedBy(func(trans *model.Transaction) bool {
		return trans.UserID == "uid-2" && trans.Method == model.MethodSignupBonus &&
			trans.Type == model.TransactionDeposit && trans.Amount.Equal(dec("5"))
	}), mock.Anything).Return(nil)

	resp, err := svc.CreateProfile(ctx, otherSession, &model.CreateProfileRequest{Username: "RIVAL", ReferralCode: " dan4821 "})

	require.NoError(t, err)
	assert.Equal(t, "Referral Bonus Applied!", resp.Notice.Message)
	assert.Equal(t, "5.00", resp.Profile.Balance.StringFixed(2))
}

func TestCreateProfile_UnknownReferralIgnored(t *testing.T) {
	ctx := context.Background()
	svc, m := newAccountService(t, "RIV5555")

	m.profiles.On("GetProfile", ctx, "uid-2").Return(nil, model.ErrProfileNotFound)
	runInTx(m.db, ctx)
	m.profiles.On("GetProfileByReferralCode", ctx, "RIV5555", mock.Anything).Return(nil, model.ErrProfileNotFound)
	m.profiles.On("GetProfileByReferralCode", ctx, "NOPE0000", mock.Anything).Return(nil, model.ErrProfileNotFound)
	m.profiles.On("CreateProfile", ctx, mock.MatchedBy(func(p *model.Profile) bool {
		return p.ReferredBy == "" && p.Balance.IsZero()
	}), mock.Anything).Return(nil)

	_, err := svc.CreateProfile(ctx, otherSession, &model.CreateProfileRequest{ReferralCode: "NOPE0000"})

	require.NoError(t, err)
	m.profiles.AssertNotCalled(t, "UpdateBalances", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateProfile_RetriesTakenCode(t *testing.T) {
	ctx := context.Background()
	svc, m := newAccountService(t, "DAN1111", "DAN2222")

	m.profiles.On("GetProfile", ctx, "uid-1").Return(nil, model.ErrProfileNotFound)
	runInTx(m.db, ctx)
	m.profiles.On("GetProfileByReferralCode", ctx, "DAN1111", mock.Anything).Return(profile("0", "0"), nil)
	m.profiles.On("GetProfileByReferralCode", ctx, "DAN2222", mock.Anything).Return(nil, model.ErrProfileNotFound)
	m.profiles.On("CreateProfile", ctx, mock.MatchedBy(func(p *model.Profile) bool {
		return p.ReferralCode == "DAN2222"
	}), mock.Anything).Return(nil)

	resp, err := svc.CreateProfile(ctx, testSession, &model.CreateProfileRequest{Username: "Danish"})

	require.NoError(t, err)
	assert.Equal(t, "DAN2222", resp.Profile.ReferralCode)
}

func TestCreateProfile_ExistingProfileReturned(t *testing.T) {
	ctx := context.Background()
	svc, m := newAccountService(t, "DAN1234")

	m.profiles.On("GetProfile", ctx, "uid-1").Return(profile("20", "0"), nil)

	resp, err := svc.CreateProfile(ctx, testSession, &model.CreateProfileRequest{ReferralCode: "DAN4821"})

	require.NoError(t, err)
	assert.Nil(t, resp.Notice)
	assert.Equal(t, "DAN4821", resp.Profile.ReferralCode)
}

func TestCreateProfile_ConcurrentSignIn(t *testing.T) {
	ctx := context.Background()
	svc, m := newAccountService(t, "DAN1234")

	m.profiles.On("GetProfile", ctx, "uid-1").Return(nil, model.ErrProfileNotFound).Once()
	runInTx(m.db, ctx)
	m.profiles.On("GetProfileByReferralCode", ctx, "DAN1234", mock.Anything).Return(nil, model.ErrProfileNotFound)
	m.profiles.On("CreateProfile", ctx, mock.Anything, mock.Anything).Return(model.ErrProfileExists)
	m.profiles.On("GetProfile", ctx, "uid-1").Return(profile("0", "0"), nil).Once()

	resp, err := svc.CreateProfile(ctx, testSession, &model.CreateProfileRequest{})

	require.NoError(t, err)
	assert.Equal(t, "uid-1", resp.Profile.ID)
}

func TestUpdateProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("empty username", func(t *testing.T) {
		svc, _ := newAccountService(t)

		_, err := svc.UpdateProfile(ctx, testSession, &model.UpdateProfileRequest{Username: "   "})

		assert.ErrorIs(t, err, model.ErrMissingFields)
		assert.Equal(t, "Username cannot be empty", rejectionMessage(t, err))
	})

	t.Run("updated", func(t *testing.T) {
		svc, m := newAccountService(t)
		updated := profile("0", "0")
		updated.Username = "NEWNAME"
		updated.GameID = "5512309981"

		m.profiles.On("GetProfile", ctx, "uid-1").Return(profile("0", "0"), nil)
		m.profiles.On("UpdateDetails", ctx, "uid-1", "NEWNAME", "5512309981").Return(updated, nil)

		resp, err := svc.UpdateProfile(ctx, testSession, &model.UpdateProfileRequest{Username: " NEWNAME ", GameID: "5512309981"})

		require.NoError(t, err)
		assert.Equal(t, "NEWNAME", resp.Profile.Username)
		assert.Equal(t, "Profile Updated Successfully", resp.Notice.Message)
	})

	t.Run("banned", func(t *testing.T) {
		svc, m := newAccountService(t)
		banned := profile("0", "0")
		banned.Banned = true
		m.profiles.On("GetProfile", ctx, "uid-1").Return(banned, nil)

		_, err := svc.UpdateProfile(ctx, testSession, &model.UpdateProfileRequest{Username: "NEWNAME"})

		assert.ErrorIs(t, err, model.ErrAccountBanned)
	})
}
