package postgres

import (
	"context"
	"fmt"
	"time"

	"arena-wallet/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// Channels fed by the notify triggers in migrations/001_init.sql.
const (
	ProfileChannel    = "profile_changes"
	TournamentChannel = "tournament_changes"
)

var channelKinds = map[string]model.SnapshotKind{
	ProfileChannel:    model.SnapshotProfile,
	TournamentChannel: model.SnapshotTournament,
}

// Listener holds one pooled connection in LISTEN mode and turns notifications
// into change events.
type Listener struct {
	pool       *pgxpool.Pool
	retryDelay time.Duration
	logger     zerolog.Logger
}

func NewListener(pool *pgxpool.Pool, retryDelay time.Duration, logger zerolog.Logger) *Listener {
	return &Listener{pool: pool, retryDelay: retryDelay, logger: logger}
}

// Run blocks until ctx is cancelled, reconnecting after connection failures.
func (l *Listener) Run(ctx context.Context, publish func(context.Context, model.ChangeEvent)) {
	l.logger.Info().Msg("Change listener started")
	for {
		err := l.listen(ctx, publish)
		if ctx.Err() != nil {
			l.logger.Info().Msg("Change listener stopped")
			return
		}

		l.logger.Error().Err(err).Dur("retry_in", l.retryDelay).Msg("Change listener disconnected")
		select {
		case <-ctx.Done():
			return
		case <-time.After(l.retryDelay):
		}
	}
}

func (l *Listener) listen(ctx context.Context, publish func(context.Context, model.ChangeEvent)) error {
	conn, err := l.pool.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("failed to acquire listen connection: %w", err)
	}
	defer func() {
		cleanupCtx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_, _ = conn.Exec(cleanupCtx, "UNLISTEN *")
		conn.Release()
	}()

	for channel := range channelKinds {
		if _, err := conn.Exec(ctx, "LISTEN "+pgx.Identifier{channel}.Sanitize()); err != nil {
			return fmt.Errorf("failed to listen on %s: %w", channel, err)
		}
	}

	for {
		n, err := conn.Conn().WaitForNotification(ctx)
		if err != nil {
			return fmt.Errorf("failed to wait for notification: %w", err)
		}

		kind, ok := channelKinds[n.Channel]
		if !ok || n.Payload == "" {
			continue
		}
		publish(ctx, model.ChangeEvent{Kind: kind, ID: n.Payload})
	}
}
