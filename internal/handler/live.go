package handler

import (
	"context"
	"strings"

	"arena-wallet/internal/live"
	"arena-wallet/internal/model"

	"github.com/gin-gonic/gin"
)

// topicsFor builds the subscription for a live connection: always the caller's
// own profile, plus the requested tournaments. "lobby" follows every tournament.
func topicsFor(userID string, c *gin.Context) []live.Topic {
	topics := []live.Topic{live.ProfileTopic(userID)}
	if c.Query("lobby") != "" {
		topics = append(topics, live.Topic{Kind: model.SnapshotTournament})
	}
	for _, raw := range c.QueryArray("tournament") {
		for _, id := range strings.Split(raw, ",") {
			if id = strings.TrimSpace(id); id != "" {
				topics = append(topics, live.TournamentTopic(id))
			}
		}
	}
	return topics
}

// Live
// @Summary Live snapshots over WebSocket
// @Description Streams the caller's profile and the selected tournaments whenever they change
// @Tags live
// @Security BearerAuth
// @Param token query string false "Bearer token, for clients that cannot set headers"
// @Param tournament query []string false "Tournament IDs" collectionFormat(multi)
// @Param lobby query bool false "Follow every tournament"
// @Success 101 "Switching Protocols"
// @Failure 404 {object} model.ErrorResponse "Unknown tournament"
// @Router /live [get]
func (h *Handler) Live(c *gin.Context) {
	s := currentSession(c)

	// the subscription outlives the request once the connection is hijacked,
	// but not the server
	ctx, cancel := context.WithCancel(h.ctx)
	sub, err := h.feed.Subscribe(ctx, topicsFor(s.UserID, c)...)
	if err != nil {
		cancel()
		h.handleError(c, err)
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		cancel()
		h.logger.Warn().Err(err).Str("user_id", s.UserID).Msg("WebSocket upgrade failed")
		return
	}

	go func() {
		defer cancel()
		live.NewClient(conn, sub, s.UserID, h.logger).Serve()
	}()
}
