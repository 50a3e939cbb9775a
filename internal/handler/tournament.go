package handler

import (
	"net/http"

	"arena-wallet/internal/model"

	"github.com/gin-gonic/gin"
)

// ListTournaments
// @Summary List tournaments
// @Description Lobby listing, filtered by tab
// @Tags tournaments
// @Produce json
// @Security BearerAuth
// @Param tab query string false "Tab" Enums(ALL, UPCOMING, LIVE, COMPLETED)
// @Success 200 {object} model.TournamentListResponse
// @Failure 400 {object} model.ErrorResponse "Unknown tab"
// @Router /tournaments [get]
func (h *Handler) ListTournaments(c *gin.Context) {
	tab, err := model.ParseTournamentTab(c.Query("tab"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp, err := h.tournamentService.ListTournaments(c.Request.Context(), currentSession(c), tab)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetTournament
// @Summary Get a tournament
// @Description Room credentials are only returned to participants
// @Tags tournaments
// @Produce json
// @Security BearerAuth
// @Param id path string true "Tournament ID"
// @Success 200 {object} model.TournamentView
// @Failure 404 {object} model.ErrorResponse "Tournament not found"
// @Router /tournaments/{id} [get]
func (h *Handler) GetTournament(c *gin.Context) {
	resp, err := h.tournamentService.GetTournament(c.Request.Context(), currentSession(c), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// JoinTournament
// @Summary Join a tournament
// @Description Debits the entry fee, deposit first, and reserves a slot
// @Tags tournaments
// @Produce json
// @Security BearerAuth
// @Param id path string true "Tournament ID"
// @Success 200 {object} model.JoinResponse
// @Failure 400 {object} model.ErrorResponse "Insufficient balance"
// @Failure 403 {object} model.ErrorResponse "Account banned"
// @Failure 409 {object} model.ErrorResponse "Closed, full or already joined"
// @Router /tournaments/{id}/join [post]
func (h *Handler) JoinTournament(c *gin.Context) {
	resp, err := h.tournamentService.JoinTournament(c.Request.Context(), currentSession(c), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// SubmitMatchResult
// @Summary Upload a match result
// @Tags tournaments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Tournament ID"
// @Param result body model.MatchResultRequest true "Result screenshot as a data URL"
// @Success 201 {object} model.SubmissionResponse
// @Failure 403 {object} model.ErrorResponse "Not a participant"
// @Failure 413 {object} model.ErrorResponse "Image too large"
// @Router /tournaments/{id}/results [post]
func (h *Handler) SubmitMatchResult(c *gin.Context) {
	var req model.MatchResultRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Please upload a screenshot")
		return
	}

	resp, err := h.tournamentService.SubmitMatchResult(c.Request.Context(), currentSession(c), c.Param("id"), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// ListMyMatches
// @Summary List joined tournaments
// @Description Live matches first, then open, closed and completed
// @Tags tournaments
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.TournamentListResponse
// @Router /matches [get]
func (h *Handler) ListMyMatches(c *gin.Context) {
	resp, err := h.tournamentService.ListMyMatches(c.Request.Context(), currentSession(c))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
