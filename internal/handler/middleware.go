package handler

import (
	"net/http"
	"time"

	"arena-wallet/internal/model"
	"arena-wallet/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const sessionKey = "session"

func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set("requestID", requestID)
		c.Header("X-Request-ID", requestID)
		c.Next()
	}
}

func LoggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()
		rid, _ := c.Get("requestID")
		requestID, _ := rid.(string)

		event := log.Info()
		if status >= http.StatusInternalServerError {
			event = log.Warn()
		}
		event.
			Str("request_id", requestID).
			Int("status", status).
			Str("method", c.Request.Method).
			Str("path", path).
			Str("ip", c.ClientIP()).
			Dur("latency", latency).
			Msg("HTTP Request")
	}
}

// AuthMiddleware resolves the bearer token into a session. Browsers cannot set
// headers on a WebSocket handshake, so the token query parameter is accepted too.
func AuthMiddleware(verifier *session.Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader("Authorization")
		if token == "" {
			token = c.Query("token")
		}

		s, err := verifier.Verify(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, model.ErrorResponse{
				Error:   model.ErrUnauthenticated.Error(),
				Code:    "UNAUTHENTICATED",
				Message: "Please sign in again.",
			})
			return
		}

		c.Set(sessionKey, s)
		c.Next()
	}
}

func currentSession(c *gin.Context) session.Session {
	v, _ := c.Get(sessionKey)
	s, _ := v.(session.Session)
	return s
}
