package service

import (
	"context"
	"errors"
	"testing"

	"arena-wallet/internal/model"
	"arena-wallet/mocks/repository"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type tournamentMocks struct {
	profiles     *mocks.ProfileRepository
	tournaments  *mocks.TournamentRepository
	transactions *mocks.TransactionRepository
	requests     *mocks.RequestRepository
	db           *mocks.DBManager
}

func newTournamentService(t *testing.T) (TournamentService, tournamentMocks) {
	m := tournamentMocks{
		profiles:     mocks.NewProfileRepository(t),
		tournaments:  mocks.NewTournamentRepository(t),
		transactions: mocks.NewTransactionRepository(t),
		requests:     mocks.NewRequestRepository(t),
		db:           mocks.NewDBManager(t),
	}
	svc := NewTournamentService(m.profiles, m.tournaments, m.transactions, m.requests, m.db, testWalletConfig(), zerolog.Nop())
	return svc, m
}

func openTournament(fee string) *model.Tournament {
	return &model.Tournament{
		ID:           "t-1",
		Title:        "Erangel Solo Showdown",
		Status:       model.TournamentOpen,
		EntryFee:     dec(fee),
		TotalSlots:   48,
		FilledSlots:  12,
		RoomID:       "room-77",
		RoomPass:     "secret",
		Participants: map[string]bool{},
	}
}

func TestJoinTournament_HappyPath(t *testing.T) {
	ctx := context.Background()
	svc, m := newTournamentService(t)

	runInTx(m.db, ctx)
	m.profiles.On("GetProfileForUpdate", ctx, "uid-1", mock.Anything).Return(profile("10", "20"), nil)
	m.tournaments.On("GetTournament", ctx, "t-1", mock.Anything).Return(openTournament("20"), nil)
	m.tournaments.On("ReserveSlot", ctx, "t-1", mock.Anything).Return(true, nil)
	m.tournaments.On("AddParticipant", ctx, "t-1", "uid-1", mock.Anything).Return(nil)
	m.profiles.On("UpdateBalances", ctx, "uid-1", balancesOf("0", "10"), mock.Anything).Return(nil)
	m.transactions.On("InsertTransaction", ctx, mock.MatchedBy(func(trans *model.Transaction) bool {
		return trans.UserID == "uid-1" &&
			trans.Type == model.TransactionEntryFee &&
			trans.Status == model.StatusSuccess &&
			trans.Amount.Equal(dec("20")) &&
			trans.TournamentID == "t-1" &&
			trans.Title == "Erangel Solo Showdown" &&
			trans.ID != ""
	}), mock.Anything).Return(nil)

	resp, err := svc.JoinTournament(ctx, testSession, "t-1")

	require.NoError(t, err)
	assert.Equal(t, "t-1", resp.TournamentID)
	assert.Equal(t, 13, resp.FilledSlots)
	assert.Equal(t, "10.00", resp.Balance)
	assert.Equal(t, "0.00", resp.Deposit)
	assert.Equal(t, "10.00", resp.Winnings)
	assert.Equal(t, "Joined Successfully!", resp.Notice.Message)
}

func TestJoinTournament_FreeEntryWritesNoLedger(t *testing.T) {
	ctx := context.Background()
	svc, m := newTournamentService(t)

	runInTx(m.db, ctx)
	m.profiles.On("GetProfileForUpdate", ctx, "uid-1", mock.Anything).Return(profile("0", "0"), nil)
	m.tournaments.On("GetTournament", ctx, "t-1", mock.Anything).Return(openTournament("0"), nil)
	m.tournaments.On("ReserveSlot", ctx, "t-1", mock.Anything).Return(true, nil)
	m.tournaments.On("AddParticipant", ctx, "t-1", "uid-1", mock.Anything).Return(nil)

	resp, err := svc.JoinTournament(ctx, testSession, "t-1")

	require.NoError(t, err)
	assert.Equal(t, "0.00", resp.Balance)
	m.profiles.AssertNotCalled(t, "UpdateBalances", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	m.transactions.AssertNotCalled(t, "InsertTransaction", mock.Anything, mock.Anything, mock.Anything)
}

func TestJoinTournament_GuardRejections(t *testing.T) {
	banned := profile("100", "0")
	banned.Banned = true

	closed := openTournament("20")
	closed.Status = model.TournamentLive

	full := openTournament("20")
	full.FilledSlots = full.TotalSlots

	joined := openTournament("20")
	joined.Participants["uid-1"] = true

	tests := []struct {
		name       string
		profile    *model.Profile
		tournament *model.Tournament
		wantErr    error
		wantMsg    string
	}{
		{"insufficient balance", profile("5", "5"), openTournament("20"), model.ErrInsufficientBalance, "Insufficient Balance! Please deposit funds."},
		{"already joined", profile("100", "0"), joined, model.ErrAlreadyJoined, "You are already registered for this match."},
		{"registration closed", profile("100", "0"), closed, model.ErrRegistrationClosed, "Registration is closed for this match."},
		{"slots full", profile("100", "0"), full, model.ErrTournamentFull, "Slots Full"},
		{"banned", banned, openTournament("20"), model.ErrAccountBanned, "Your account is suspended."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			svc, m := newTournamentService(t)

			runInTx(m.db, ctx)
			m.profiles.On("GetProfileForUpdate", ctx, "uid-1", mock.Anything).Return(tt.profile, nil)
			m.tournaments.On("GetTournament", ctx, "t-1", mock.Anything).Return(tt.tournament, nil)

			resp, err := svc.JoinTournament(ctx, testSession, "t-1")

			assert.Nil(t, resp)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, tt.wantMsg, rejectionMessage(t, err))
			m.tournaments.AssertNotCalled(t, "ReserveSlot", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestJoinTournament_LostSlotRace(t *testing.T) {
	ctx := context.Background()
	svc, m := newTournamentService(t)

	runInTx(m.db, ctx)
	m.profiles.On("GetProfileForUpdate", ctx, "uid-1", mock.Anything).Return(profile("100", "0"), nil)
	m.tournaments.On("GetTournament", ctx, "t-1", mock.Anything).Return(openTournament("20"), nil)
	m.tournaments.On("ReserveSlot", ctx, "t-1", mock.Anything).Return(false, nil)

	_, err := svc.JoinTournament(ctx, testSession, "t-1")

	assert.ErrorIs(t, err, model.ErrTournamentFull)
	assert.Equal(t, "Slots Full", rejectionMessage(t, err))
	m.profiles.AssertNotCalled(t, "UpdateBalances", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestJoinTournament_ConcurrentDuplicateJoin(t *testing.T) {
	ctx := context.Background()
	svc, m := newTournamentService(t)

	runInTx(m.db, ctx)
	m.profiles.On("GetProfileForUpdate", ctx, "uid-1", mock.Anything).Return(profile("100", "0"), nil)
	m.tournaments.On("GetTournament", ctx, "t-1", mock.Anything).Return(openTournament("20"), nil)
	m.tournaments.On("ReserveSlot", ctx, "t-1", mock.Anything).Return(true, nil)
	m.tournaments.On("AddParticipant", ctx, "t-1", "uid-1", mock.Anything).Return(model.ErrAlreadyJoined)

	_, err := svc.JoinTournament(ctx, testSession, "t-1")

	assert.ErrorIs(t, err, model.ErrAlreadyJoined)
	assert.Equal(t, "You are already registered for this match.", rejectionMessage(t, err))
}

func TestJoinTournament_StoreFailure(t *testing.T) {
	ctx := context.Background()
	svc, m := newTournamentService(t)
	storeErr := errors.New("connection reset")

	runInTx(m.db, ctx)
	m.profiles.On("GetProfileForUpdate", ctx, "uid-1", mock.Anything).Return(nil, storeErr)

	_, err := svc.JoinTournament(ctx, testSession, "t-1")

	assert.ErrorIs(t, err, storeErr)
	var r *model.Rejection
	assert.False(t, errors.As(err, &r))
}

func TestGetTournament_RoomCredentialsOnlyForParticipants(t *testing.T) {
	ctx := context.Background()
	svc, m := newTournamentService(t)

	joined := openTournament("20")
	joined.Participants["uid-1"] = true
	m.tournaments.On("GetTournament", ctx, "t-1").Return(joined, nil)

	view, err := svc.GetTournament(ctx, testSession, "t-1")
	require.NoError(t, err)
	assert.True(t, view.Joined)
	assert.Equal(t, "room-77", view.RoomID)
	assert.Equal(t, "secret", view.RoomPass)

	view, err = svc.GetTournament(ctx, otherSession, "t-1")
	require.NoError(t, err)
	assert.False(t, view.Joined)
	assert.Empty(t, view.RoomID)
	assert.Empty(t, view.RoomPass)
}

func TestListTournaments_UpcomingTab(t *testing.T) {
	ctx := context.Background()
	svc, m := newTournamentService(t)

	m.tournaments.On("ListTournaments", ctx, []model.TournamentStatus{model.TournamentOpen, model.TournamentClosed}).
		Return([]*model.Tournament{openTournament("20")}, nil)

	resp, err := svc.ListTournaments(ctx, testSession, model.TabUpcoming)

	require.NoError(t, err)
	assert.Equal(t, 1, resp.Total)
	assert.Empty(t, resp.Tournaments[0].RoomID)
}

func TestListMyMatches_LiveFirst(t *testing.T) {
	ctx := context.Background()
	svc, m := newTournamentService(t)

	statuses := []model.TournamentStatus{model.TournamentCompleted, model.TournamentOpen, model.TournamentLive, model.TournamentClosed}
	var joined []*model.Tournament
	for _, s := range statuses {
		tr := openTournament("20")
		tr.ID = string(s)
		tr.Status = s
		tr.Participants["uid-1"] = true
		joined = append(joined, tr)
	}
	m.tournaments.On("ListJoinedTournaments", ctx, "uid-1").Return(joined, nil)

	resp, err := svc.ListMyMatches(ctx, testSession)

	require.NoError(t, err)
	var got []model.TournamentStatus
	for _, v := range resp.Tournaments {
		got = append(got, v.Status)
		assert.Equal(t, "room-77", v.RoomID)
	}
	assert.Equal(t, []model.TournamentStatus{model.TournamentLive, model.TournamentOpen, model.TournamentClosed, model.TournamentCompleted}, got)
}

func TestSubmitMatchResult(t *testing.T) {
	ctx := context.Background()

	t.Run("participant uploads", func(t *testing.T) {
		svc, m := newTournamentService(t)
		joined := openTournament("20")
		joined.Participants["uid-1"] = true

		m.profiles.On("GetProfile", ctx, "uid-1").Return(profile("0", "0"), nil)
		m.tournaments.On("GetTournament", ctx, "t-1").Return(joined, nil)
		m.requests.On("InsertMatchResult", ctx, mock.MatchedBy(func(r *model.MatchResult) bool {
			return r.TournamentID == "t-1" && r.UserID == "uid-1" && r.Status == model.QueueSubmitted
		})).Return(nil)

		resp, err := svc.SubmitMatchResult(ctx, testSession, "t-1", &model.MatchResultRequest{Screenshot: pngDataURL(64)})

		require.NoError(t, err)
		assert.Equal(t, "Result Uploaded Successfully!", resp.Notice.Message)
	})

	t.Run("not a participant", func(t *testing.T) {
		svc, m := newTournamentService(t)

		m.profiles.On("GetProfile", ctx, "uid-1").Return(profile("0", "0"), nil)
		m.tournaments.On("GetTournament", ctx, "t-1").Return(openTournament("20"), nil)

		_, err := svc.SubmitMatchResult(ctx, testSession, "t-1", &model.MatchResultRequest{Screenshot: pngDataURL(64)})

		assert.ErrorIs(t, err, model.ErrNotParticipant)
	})

	t.Run("image too large", func(t *testing.T) {
		svc, m := newTournamentService(t)
		joined := openTournament("20")
		joined.Participants["uid-1"] = true

		m.profiles.On("GetProfile", ctx, "uid-1").Return(profile("0", "0"), nil)
		m.tournaments.On("GetTournament", ctx, "t-1").Return(joined, nil)

		_, err := svc.SubmitMatchResult(ctx, testSession, "t-1", &model.MatchResultRequest{Screenshot: pngDataURL(2 << 20)})

		assert.ErrorIs(t, err, model.ErrImageTooLarge)
		assert.Equal(t, "Image too large (Max 2MB)", rejectionMessage(t, err))
	})
}
