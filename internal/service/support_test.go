package service

import (
	"context"
	"testing"
	"time"

	"arena-wallet/internal/model"
	"arena-wallet/mocks/repository"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2025, 3, 14, 18, 30, 0, 0, time.UTC)

type supportMocks struct {
	profiles *mocks.ProfileRepository
	requests *mocks.RequestRepository
	mails    *mocks.MailRepository
}

func newSupportService(t *testing.T) (SupportService, supportMocks) {
	m := supportMocks{
		profiles: mocks.NewProfileRepository(t),
		requests: mocks.NewRequestRepository(t),
		mails:    mocks.NewMailRepository(t),
	}
	svc := NewSupportService(m.profiles, m.requests, m.mails, testWalletConfig(), zerolog.Nop()).(*SupportServiceImpl)
	svc.now = func() time.Time { return fixedNow }
	return svc, m
}

func TestSubmitTicket(t *testing.T) {
	ctx := context.Background()

	t.Run("submitted", func(t *testing.T) {
		svc, m := newSupportService(t)
		m.profiles.On("GetProfile", ctx, "uid-1").Return(profile("0", "0"), nil)
		m.requests.On("InsertSupportTicket", ctx, mock.MatchedBy(func(ticket *model.SupportTicket) bool {
			return ticket.UserID == "uid-1" &&
				ticket.Email == "danisharmy562@gmail.com" &&
				ticket.Issue == "Entry fee charged twice" &&
				ticket.Status == model.QueueOpen
		})).Return(nil)

		resp, err := svc.SubmitTicket(ctx, testSession, &model.TicketRequest{Issue: "  Entry fee charged twice "})

		require.NoError(t, err)
		assert.NotEmpty(t, resp.ID)
		assert.Equal(t, "Ticket Submitted Successfully!", resp.Notice.Message)
	})

	t.Run("empty issue", func(t *testing.T) {
		svc, _ := newSupportService(t)

		_, err := svc.SubmitTicket(ctx, testSession, &model.TicketRequest{Issue: " "})

		assert.ErrorIs(t, err, model.ErrMissingFields)
	})

	t.Run("banned", func(t *testing.T) {
		svc, m := newSupportService(t)
		banned := profile("0", "0")
		banned.Banned = true
		m.profiles.On("GetProfile", ctx, "uid-1").Return(banned, nil)

		_, err := svc.SubmitTicket(ctx, testSession, &model.TicketRequest{Issue: "help"})

		assert.ErrorIs(t, err, model.ErrAccountBanned)
	})
}

func TestSubmitAppeal(t *testing.T) {
	ctx := context.Background()

	t.Run("banned account appeals", func(t *testing.T) {
		svc, m := newSupportService(t)
		banned := profile("0", "0")
		banned.Banned = true
		m.profiles.On("GetProfile", ctx, "uid-1").Return(banned, nil)
		m.requests.On("InsertBanAppeal", ctx, mock.MatchedBy(func(a *model.BanAppeal) bool {
			return a.UserID == "uid-1" && a.Username == "DANISHARMY562" && a.Reason == "It was a bug"
		})).Return(nil)

		resp, err := svc.SubmitAppeal(ctx, testSession, &model.AppealRequest{Reason: "It was a bug"})

		require.NoError(t, err)
		assert.Equal(t, "Appeal Sent to Admin", resp.Notice.Message)
	})

	t.Run("active account cannot appeal", func(t *testing.T) {
		svc, m := newSupportService(t)
		m.profiles.On("GetProfile", ctx, "uid-1").Return(profile("0", "0"), nil)

		_, err := svc.SubmitAppeal(ctx, testSession, &model.AppealRequest{Reason: "why not"})

		assert.ErrorIs(t, err, model.ErrAppealNotAllowed)
	})
}

func TestListMail(t *testing.T) {
	ctx := context.Background()
	svc, m := newSupportService(t)

	since := fixedNow.Add(-24 * time.Hour)
	m.mails.On("GetMailsByUser", ctx, "uid-1", since).Return([]*model.Mail{{ID: "m-1", Title: "Match starts soon"}}, nil).Once()
	m.mails.On("GetMailsByUser", ctx, "uid-2", since).Return([]*model.Mail{}, nil).Once()

	resp, err := svc.ListMail(ctx, testSession)
	require.NoError(t, err)
	assert.True(t, resp.HasUnread)
	assert.Len(t, resp.Mails, 1)

	resp, err = svc.ListMail(ctx, otherSession)
	require.NoError(t, err)
	assert.False(t, resp.HasUnread)
}

func TestPurgeExpiredMail(t *testing.T) {
	ctx := context.Background()
	svc, m := newSupportService(t)

	m.mails.On("DeleteMailsOlderThan", ctx, fixedNow.Add(-24*time.Hour)).Return(int64(3), nil)

	deleted, err := svc.PurgeExpiredMail(ctx)

	require.NoError(t, err)
	assert.Equal(t, int64(3), deleted)
}
