package worker

import (
	"context"
	"fmt"
	"sync"

	"arena-wallet/internal/live"
	"arena-wallet/internal/model"
	"arena-wallet/internal/service"

	"github.com/rs/zerolog"
)

// SentinelWatcher runs the fraud gate on every profile snapshot the feed delivers.
type SentinelWatcher struct {
	feed     *live.Feed
	service  service.SentinelService
	logger   zerolog.Logger
	stopChan chan struct{}
	stopOnce sync.Once
	wg       *sync.WaitGroup
}

func NewSentinelWatcher(feed *live.Feed, svc service.SentinelService, logger zerolog.Logger) *SentinelWatcher {
	return &SentinelWatcher{
		feed:     feed,
		service:  svc,
		logger:   logger,
		stopChan: make(chan struct{}),
		wg:       &sync.WaitGroup{},
	}
}

func (w *SentinelWatcher) Start(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	sub, err := w.feed.Subscribe(ctx, live.Topic{Kind: model.SnapshotProfile})
	if err != nil {
		cancel()
		return fmt.Errorf("subscribe to profiles: %w", err)
	}

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		defer cancel()

		w.logger.Info().Msg("Sentinel watcher started")

		for {
			select {
			case snap, ok := <-sub.C():
				if !ok {
					w.logger.Info().Msg("Sentinel watcher stopping (feed closed)")
					return
				}
				if _, err := w.service.Inspect(ctx, snap.Profile); err != nil {
					w.logger.Error().Err(err).Str("user_id", snap.ID).Msg("Failed to inspect profile")
				}
			case <-w.stopChan:
				w.logger.Info().Msg("Sentinel watcher stopping")
				return
			}
		}
	}()
	return nil
}

func (w *SentinelWatcher) Stop() {
	w.stopOnce.Do(func() { close(w.stopChan) })
	w.wg.Wait()
}
