package handler

import (
	"net/http"
	"strconv"

	"arena-wallet/internal/model"

	"github.com/gin-gonic/gin"
)

// GetWallet
// @Summary Get wallet balances
// @Tags wallet
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.WalletResponse
// @Failure 404 {object} model.ErrorResponse "Profile not found"
// @Router /wallet [get]
func (h *Handler) GetWallet(c *gin.Context) {
	resp, err := h.walletService.GetWallet(c.Request.Context(), currentSession(c))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListTransactions
// @Summary List wallet history
// @Description Newest first, paginated
// @Tags wallet
// @Produce json
// @Security BearerAuth
// @Param filter query string false "Filter" Enums(ALL, DEPOSIT, WITHDRAWAL, GAME)
// @Param limit query int false "Limit" default(10)
// @Param offset query int false "Offset" default(0)
// @Success 200 {object} model.TransactionListResponse
// @Failure 400 {object} model.ErrorResponse "Unknown filter"
// @Router /wallet/transactions [get]
func (h *Handler) ListTransactions(c *gin.Context) {
	filter, err := model.ParseTransactionFilter(c.Query("filter"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	resp, err := h.walletService.ListTransactions(c.Request.Context(), currentSession(c), filter, limit, offset)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// DeleteTransaction
// @Summary Delete a settled history entry
// @Tags wallet
// @Produce json
// @Security BearerAuth
// @Param id path string true "Transaction ID"
// @Success 200 {object} model.Notice
// @Failure 404 {object} model.ErrorResponse "Transaction not found"
// @Failure 409 {object} model.ErrorResponse "Transaction pending"
// @Router /wallet/transactions/{id} [delete]
func (h *Handler) DeleteTransaction(c *gin.Context) {
	notice, err := h.walletService.DeleteTransaction(c.Request.Context(), currentSession(c), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, notice)
}

// RequestDeposit
// @Summary Submit a deposit for verification
// @Description Records a pending deposit with its payment proof; balances change only after review
// @Tags wallet
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param deposit body model.DepositRequest true "Deposit details"
// @Success 201 {object} model.PaymentResponse
// @Failure 400 {object} model.ErrorResponse "Bad request"
// @Failure 413 {object} model.ErrorResponse "Image too large"
// @Router /wallet/deposits [post]
func (h *Handler) RequestDeposit(c *gin.Context) {
	var req model.DepositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Please fill all fields")
		return
	}

	resp, err := h.walletService.RequestDeposit(c.Request.Context(), currentSession(c), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// RequestWithdrawal
// @Summary Request a payout from winnings
// @Tags wallet
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param withdrawal body model.WithdrawalRequest true "Withdrawal details"
// @Success 201 {object} model.PaymentResponse
// @Failure 400 {object} model.ErrorResponse "Bad request"
// @Failure 403 {object} model.ErrorResponse "Account banned"
// @Router /wallet/withdrawals [post]
func (h *Handler) RequestWithdrawal(c *gin.Context) {
	var req model.WithdrawalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Enter a valid amount")
		return
	}

	resp, err := h.walletService.RequestWithdrawal(c.Request.Context(), currentSession(c), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}
