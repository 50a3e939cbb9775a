package handler

import (
	"net/http"

	"arena-wallet/internal/model"

	"github.com/gin-gonic/gin"
)

// SubmitTicket
// @Summary Open a support ticket
// @Tags support
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param ticket body model.TicketRequest true "Issue description"
// @Success 201 {object} model.SubmissionResponse
// @Failure 400 {object} model.ErrorResponse "Bad request"
// @Router /support/tickets [post]
func (h *Handler) SubmitTicket(c *gin.Context) {
	var req model.TicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Please describe your issue")
		return
	}

	resp, err := h.supportService.SubmitTicket(c.Request.Context(), currentSession(c), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// SubmitAppeal
// @Summary Appeal a ban
// @Description The only action available to a suspended account
// @Tags support
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param appeal body model.AppealRequest true "Appeal reason"
// @Success 201 {object} model.SubmissionResponse
// @Failure 403 {object} model.ErrorResponse "Account not suspended"
// @Router /support/appeals [post]
func (h *Handler) SubmitAppeal(c *gin.Context) {
	var req model.AppealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Please explain why your ban should be lifted")
		return
	}

	resp, err := h.supportService.SubmitAppeal(c.Request.Context(), currentSession(c), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// ListMail
// @Summary List inbox mail
// @Description Mails older than the configured time to live are not returned
// @Tags support
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.InboxResponse
// @Router /mail [get]
func (h *Handler) ListMail(c *gin.Context) {
	resp, err := h.supportService.ListMail(c.Request.Context(), currentSession(c))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
