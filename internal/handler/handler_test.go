package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"arena-wallet/internal/live"
	"arena-wallet/internal/model"
	"arena-wallet/internal/session"
	repomocks "arena-wallet/mocks/repository"
	"arena-wallet/mocks/service"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

type fixture struct {
	router      *gin.Engine
	token       string
	tournaments *mocks.TournamentService
	wallet      *mocks.WalletService
	accounts    *mocks.AccountService
	support     *mocks.SupportService
	profiles    *repomocks.ProfileRepository
	shutdown    context.CancelFunc
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	f := &fixture{
		tournaments: mocks.NewTournamentService(t),
		wallet:      mocks.NewWalletService(t),
		accounts:    mocks.NewAccountService(t),
		support:     mocks.NewSupportService(t),
		profiles:    repomocks.NewProfileRepository(t),
	}

	verifier := session.NewVerifier(testSecret, "")
	token, err := verifier.Issue("uid-1", "danisharmy562@gmail.com", time.Hour)
	require.NoError(t, err)
	f.token = token

	feed := live.NewFeed(f.profiles, repomocks.NewTournamentRepository(t), zerolog.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	f.shutdown = cancel

	h := NewHandler(ctx, f.tournaments, f.wallet, f.accounts, f.support, verifier, feed, zerolog.Nop())
	f.router = h.SetupRoutes()
	return f
}

func (f *fixture) do(method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req, _ := http.NewRequest(method, path, &buf)
	req.Header.Set("Authorization", "Bearer "+f.token)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

var caller = mock.MatchedBy(func(s session.Session) bool {
	return s.UserID == "uid-1" && s.Email == "danisharmy562@gmail.com"
})

func decodeError(t *testing.T, w *httptest.ResponseRecorder) model.ErrorResponse {
	t.Helper()
	var resp model.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestHandler_Health(t *testing.T) {
	f := newFixture(t)
	req, _ := http.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()

	f.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestHandler_RequiresSession(t *testing.T) {
	f := newFixture(t)
	f.token = "garbage"

	w := f.do(http.MethodGet, "/api/v1/wallet", nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "UNAUTHENTICATED", decodeError(t, w).Code)
}

func TestHandler_JoinTournament_Success(t *testing.T) {
	f := newFixture(t)
	f.tournaments.On("JoinTournament", mock.Anything, caller, "t-1").Return(&model.JoinResponse{
		TournamentID: "t-1",
		FilledSlots:  13,
		Balance:      "20.00",
		Deposit:      "0.00",
		Winnings:     "20.00",
		Notice:       &model.Notice{Kind: model.NoticeSuccess, Message: "Joined Successfully!"},
	}, nil)

	w := f.do(http.MethodPost, "/api/v1/tournaments/t-1/join", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp model.JoinResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 13, resp.FilledSlots)
	assert.Equal(t, "20.00", resp.Balance)
	assert.Equal(t, "Joined Successfully!", resp.Notice.Message)
}

func TestHandler_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
		wantMsg    string
	}{
		{"full", model.Reject(model.ErrTournamentFull, "Slots Full"), http.StatusConflict, "TOURNAMENT_FULL", "Slots Full"},
		{"closed", model.Reject(model.ErrRegistrationClosed, "Registration is closed for this match."), http.StatusConflict, "REGISTRATION_CLOSED", "Registration is closed for this match."},
		{"funds", model.Reject(model.ErrInsufficientBalance, "Insufficient Balance! Please deposit funds."), http.StatusBadRequest, "INSUFFICIENT_BALANCE", "Insufficient Balance! Please deposit funds."},
		{"banned", model.Reject(model.ErrAccountBanned, "Your account is suspended."), http.StatusForbidden, "ACCOUNT_BANNED", "Your account is suspended."},
		{"missing", model.ErrTournamentNotFound, http.StatusNotFound, "TOURNAMENT_NOT_FOUND", ""},
		{"remote failure", errors.New("connection reset"), http.StatusInternalServerError, "INTERNAL_SERVER_ERROR", "Network Error. Try again."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.tournaments.On("JoinTournament", mock.Anything, caller, "t-1").Return(nil, tt.err)

			w := f.do(http.MethodPost, "/api/v1/tournaments/t-1/join", nil)

			assert.Equal(t, tt.wantStatus, w.Code)
			resp := decodeError(t, w)
			assert.Equal(t, tt.wantCode, resp.Code)
			assert.Equal(t, tt.wantMsg, resp.Message)
			assert.NotContains(t, resp.Error, "connection reset")
		})
	}
}

func TestHandler_ListTournaments_InvalidTab(t *testing.T) {
	f := newFixture(t)

	w := f.do(http.MethodGet, "/api/v1/tournaments?tab=SOON", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_TAB", decodeError(t, w).Code)
}

func TestHandler_ListTournaments(t *testing.T) {
	f := newFixture(t)
	f.tournaments.On("ListTournaments", mock.Anything, caller, model.TabLive).Return(&model.TournamentListResponse{Total: 0}, nil)

	w := f.do(http.MethodGet, "/api/v1/tournaments?tab=LIVE", nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_ListTransactions(t *testing.T) {
	f := newFixture(t)
	f.wallet.On("ListTransactions", mock.Anything, caller, model.FilterGame, 5, 10).Return(&model.TransactionListResponse{
		Transactions: []*model.Transaction{{ID: "tx-1", Type: model.TransactionEntryFee, Amount: decimal.NewFromInt(30)}},
		Total:        11,
		Limit:        5,
		Offset:       10,
	}, nil)

	w := f.do(http.MethodGet, "/api/v1/wallet/transactions?filter=GAME&limit=5&offset=10", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp model.TransactionListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 11, resp.Total)
	require.Len(t, resp.Transactions, 1)
	assert.Equal(t, "tx-1", resp.Transactions[0].ID)
}

func TestHandler_ListTransactions_InvalidFilter(t *testing.T) {
	f := newFixture(t)

	w := f.do(http.MethodGet, "/api/v1/wallet/transactions?filter=BONUS", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_FILTER", decodeError(t, w).Code)
}

func TestHandler_DeletePendingTransaction(t *testing.T) {
	f := newFixture(t)
	f.wallet.On("DeleteTransaction", mock.Anything, caller, "tx-9").
		Return(nil, model.Reject(model.ErrTransactionPending, "Pending transactions cannot be deleted"))

	w := f.do(http.MethodDelete, "/api/v1/wallet/transactions/tx-9", nil)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "Pending transactions cannot be deleted", decodeError(t, w).Message)
}

func TestHandler_RequestWithdrawal(t *testing.T) {
	f := newFixture(t)
	f.wallet.On("RequestWithdrawal", mock.Anything, caller, &model.WithdrawalRequest{Amount: "100", PayoutUPI: "player@upi"}).
		Return(&model.PaymentResponse{
			TransactionID: "tx-1",
			Status:        "PENDING",
			Balance:       "50.00",
			Winnings:      "50.00",
			Notice:        &model.Notice{Kind: model.NoticeSuccess, Message: "Withdrawal Request Submitted."},
		}, nil)

	w := f.do(http.MethodPost, "/api/v1/wallet/withdrawals", model.WithdrawalRequest{Amount: "100", PayoutUPI: "player@upi"})

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp model.PaymentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "50.00", resp.Winnings)
}

func TestHandler_RequestWithdrawal_BadBody(t *testing.T) {
	f := newFixture(t)
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/wallet/withdrawals", strings.NewReader("{amount:"))
	req.Header.Set("Authorization", "Bearer "+f.token)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	f.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_REQUEST", decodeError(t, w).Code)
}

func TestHandler_RequestDeposit_ImageTooLarge(t *testing.T) {
	f := newFixture(t)
	f.wallet.On("RequestDeposit", mock.Anything, caller, mock.AnythingOfType("*model.DepositRequest")).
		Return(nil, model.Reject(model.ErrImageTooLarge, "Image size must be less than 1MB"))

	w := f.do(http.MethodPost, "/api/v1/wallet/deposits", model.DepositRequest{Amount: "500", Reference: "412398765432", Screenshot: "data:image/png;base64,AAAA"})

	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	assert.Equal(t, "Image size must be less than 1MB", decodeError(t, w).Message)
}

func TestHandler_CreateProfile(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		f := newFixture(t)
		f.accounts.On("CreateProfile", mock.Anything, caller, &model.CreateProfileRequest{ReferralCode: "DAN4821"}).
			Return(&model.ProfileResponse{
				Profile: &model.Profile{ID: "uid-1"},
				Notice:  &model.Notice{Kind: model.NoticeSuccess, Message: "Referral Bonus Applied!"},
			}, nil)

		w := f.do(http.MethodPost, "/api/v1/profile", model.CreateProfileRequest{ReferralCode: "DAN4821"})

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("existing without body", func(t *testing.T) {
		f := newFixture(t)
		f.accounts.On("CreateProfile", mock.Anything, caller, &model.CreateProfileRequest{}).
			Return(&model.ProfileResponse{Profile: &model.Profile{ID: "uid-1"}}, nil)

		w := f.do(http.MethodPost, "/api/v1/profile", nil)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestHandler_SubmitAppeal_NotSuspended(t *testing.T) {
	f := newFixture(t)
	f.support.On("SubmitAppeal", mock.Anything, caller, &model.AppealRequest{Reason: "please"}).
		Return(nil, model.Reject(model.ErrAppealNotAllowed, "Your account is not suspended."))

	w := f.do(http.MethodPost, "/api/v1/support/appeals", model.AppealRequest{Reason: "please"})

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "Your account is not suspended.", decodeError(t, w).Message)
}

func TestHandler_ListMail(t *testing.T) {
	f := newFixture(t)
	f.support.On("ListMail", mock.Anything, caller).Return(&model.InboxResponse{
		Mails:     []*model.Mail{{ID: "m-1", Title: "Welcome"}},
		HasUnread: true,
	}, nil)

	w := f.do(http.MethodGet, "/api/v1/mail", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp model.InboxResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.HasUnread)
}

func TestTopicsFor(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/live?tournament=t-1,t-2&tournament=t-3&lobby=1", nil)

	topics := topicsFor("uid-1", c)

	assert.Equal(t, []live.Topic{
		live.ProfileTopic("uid-1"),
		{Kind: model.SnapshotTournament},
		live.TournamentTopic("t-1"),
		live.TournamentTopic("t-2"),
		live.TournamentTopic("t-3"),
	}, topics)
}

func TestHandler_Live_SendsInitialProfile(t *testing.T) {
	f := newFixture(t)
	f.profiles.On("GetProfile", mock.Anything, "uid-1").Return(&model.Profile{ID: "uid-1", Username: "DANISHARMY562"}, nil)

	srv := httptest.NewServer(f.router)
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/v1/live?token=" + f.token
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var msg struct {
		Type    string        `json:"type"`
		ID      string        `json:"id"`
		Payload model.Profile `json:"payload"`
	}
	require.NoError(t, conn.ReadJSON(&msg))
	assert.Equal(t, "profile", msg.Type)
	assert.Equal(t, "DANISHARMY562", msg.Payload.Username)
}

func TestHandler_Live_ClosesOnShutdown(t *testing.T) {
	f := newFixture(t)
	f.profiles.On("GetProfile", mock.Anything, "uid-1").Return(&model.Profile{ID: "uid-1"}, nil)

	srv := httptest.NewServer(f.router)
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/v1/live?token=" + f.token
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, _, err = conn.ReadMessage()
	require.NoError(t, err)

	f.shutdown()

	_, _, err = conn.ReadMessage()
	assert.True(t, websocket.IsCloseError(err, websocket.CloseGoingAway), "got %v", err)
}

func TestHandler_Live_UnknownProfile(t *testing.T) {
	f := newFixture(t)
	f.profiles.On("GetProfile", mock.Anything, "uid-1").Return(nil, model.ErrProfileNotFound)

	w := f.do(http.MethodGet, "/api/v1/live", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
