package handler

import (
	"context"
	"errors"
	"net/http"

	"arena-wallet/internal/live"
	"arena-wallet/internal/model"
	"arena-wallet/internal/service"
	"arena-wallet/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const networkErrorMessage = "Network Error. Try again."

type Handler struct {
	ctx               context.Context
	tournamentService service.TournamentService
	walletService     service.WalletService
	accountService    service.AccountService
	supportService    service.SupportService
	verifier          *session.Verifier
	feed              *live.Feed
	upgrader          websocket.Upgrader
	logger            zerolog.Logger
}

// NewHandler builds the HTTP handlers. Live connections are closed when ctx is done.
func NewHandler(
	ctx context.Context,
	tournamentService service.TournamentService,
	walletService service.WalletService,
	accountService service.AccountService,
	supportService service.SupportService,
	verifier *session.Verifier,
	feed *live.Feed,
	logger zerolog.Logger,
) *Handler {
	return &Handler{
		ctx:               ctx,
		tournamentService: tournamentService,
		walletService:     walletService,
		accountService:    accountService,
		supportService:    supportService,
		verifier:          verifier,
		feed:              feed,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
		logger: logger,
	}
}

func (h *Handler) SetupRoutes() *gin.Engine {
	router := gin.New()

	// Middlewares
	router.Use(
		RequestIDMiddleware(),
		LoggingMiddleware(),
		gin.Recovery(),
	)

	// Swagger and health checks
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API routes
	v1 := router.Group("/api/v1", AuthMiddleware(h.verifier))

	v1.GET("/live", h.Live)

	profile := v1.Group("/profile")
	profile.POST("", h.CreateProfile)
	profile.GET("", h.GetProfile)
	profile.PATCH("", h.UpdateProfile)

	tournaments := v1.Group("/tournaments")
	tournaments.GET("", h.ListTournaments)
	tournaments.GET("/:id", h.GetTournament)
	tournaments.POST("/:id/join", h.JoinTournament)
	tournaments.POST("/:id/results", h.SubmitMatchResult)
	v1.GET("/matches", h.ListMyMatches)

	wallet := v1.Group("/wallet")
	wallet.GET("", h.GetWallet)
	wallet.GET("/transactions", h.ListTransactions)
	wallet.DELETE("/transactions/:id", h.DeleteTransaction)
	wallet.POST("/deposits", h.RequestDeposit)
	wallet.POST("/withdrawals", h.RequestWithdrawal)

	support := v1.Group("/support")
	support.POST("/tickets", h.SubmitTicket)
	support.POST("/appeals", h.SubmitAppeal)
	v1.GET("/mail", h.ListMail)

	return router
}

func (h *Handler) handleError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	code := "INTERNAL_SERVER_ERROR"

	switch {
	case errors.Is(err, model.ErrInsufficientBalance):
		status, code = http.StatusBadRequest, "INSUFFICIENT_BALANCE"
	case errors.Is(err, model.ErrInsufficientWinnings):
		status, code = http.StatusBadRequest, "INSUFFICIENT_WINNINGS"
	case errors.Is(err, model.ErrBelowMinimumWithdrawal):
		status, code = http.StatusBadRequest, "BELOW_MINIMUM_WITHDRAWAL"
	case errors.Is(err, model.ErrPayoutDestinationRequired):
		status, code = http.StatusBadRequest, "PAYOUT_DESTINATION_REQUIRED"
	case errors.Is(err, model.ErrInvalidAmount):
		status, code = http.StatusBadRequest, "INVALID_AMOUNT"
	case errors.Is(err, model.ErrMissingFields):
		status, code = http.StatusBadRequest, "MISSING_FIELDS"
	case errors.Is(err, model.ErrInvalidImage):
		status, code = http.StatusBadRequest, "INVALID_IMAGE"
	case errors.Is(err, model.ErrInvalidFilter):
		status, code = http.StatusBadRequest, "INVALID_FILTER"
	case errors.Is(err, model.ErrInvalidTab):
		status, code = http.StatusBadRequest, "INVALID_TAB"
	case errors.Is(err, model.ErrImageTooLarge):
		status, code = http.StatusRequestEntityTooLarge, "IMAGE_TOO_LARGE"
	case errors.Is(err, model.ErrUnauthenticated):
		status, code = http.StatusUnauthorized, "UNAUTHENTICATED"
	case errors.Is(err, model.ErrAccountBanned):
		status, code = http.StatusForbidden, "ACCOUNT_BANNED"
	case errors.Is(err, model.ErrAppealNotAllowed):
		status, code = http.StatusForbidden, "APPEAL_NOT_ALLOWED"
	case errors.Is(err, model.ErrNotParticipant):
		status, code = http.StatusForbidden, "NOT_PARTICIPANT"
	case errors.Is(err, model.ErrProfileNotFound):
		status, code = http.StatusNotFound, "PROFILE_NOT_FOUND"
	case errors.Is(err, model.ErrTournamentNotFound):
		status, code = http.StatusNotFound, "TOURNAMENT_NOT_FOUND"
	case errors.Is(err, model.ErrTransactionNotFound):
		status, code = http.StatusNotFound, "TRANSACTION_NOT_FOUND"
	case errors.Is(err, model.ErrRegistrationClosed):
		status, code = http.StatusConflict, "REGISTRATION_CLOSED"
	case errors.Is(err, model.ErrTournamentFull):
		status, code = http.StatusConflict, "TOURNAMENT_FULL"
	case errors.Is(err, model.ErrAlreadyJoined):
		status, code = http.StatusConflict, "ALREADY_JOINED"
	case errors.Is(err, model.ErrTransactionPending):
		status, code = http.StatusConflict, "TRANSACTION_PENDING"
	case errors.Is(err, model.ErrProfileExists), errors.Is(err, model.ErrReferralCodeTaken):
		status, code = http.StatusConflict, "PROFILE_CONFLICT"
	}

	resp := model.ErrorResponse{Error: err.Error(), Code: code}

	var rej *model.Rejection
	if errors.As(err, &rej) {
		resp.Error = rej.Err.Error()
		resp.Message = rej.Message
	}

	if status == http.StatusInternalServerError {
		h.logger.Error().Err(err).Str("path", c.FullPath()).Msg("internal server error")
		resp.Error = "internal server error"
		resp.Message = networkErrorMessage
	}

	c.JSON(status, resp)
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, model.ErrorResponse{
		Error:   "Invalid request body",
		Code:    "INVALID_REQUEST",
		Message: msg,
	})
}
