package worker

import (
	"context"
	"sync"
	"time"

	"arena-wallet/internal/service"

	"github.com/rs/zerolog"
)

// MailJanitor periodically deletes inbox mails past their time to live.
type MailJanitor struct {
	service  service.SupportService
	interval time.Duration
	logger   zerolog.Logger
	stopChan chan struct{}
	stopOnce sync.Once
	wg       *sync.WaitGroup
}

func NewMailJanitor(svc service.SupportService, interval time.Duration, logger zerolog.Logger) *MailJanitor {
	return &MailJanitor{
		service:  svc,
		interval: interval,
		logger:   logger,
		stopChan: make(chan struct{}),
		wg:       &sync.WaitGroup{},
	}
}

func (w *MailJanitor) Start(ctx context.Context) {
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()

		w.logger.Info().Dur("interval", w.interval).Msg("Mail janitor started")

		for {
			select {
			case <-ticker.C:
				deleted, err := w.service.PurgeExpiredMail(ctx)
				if err != nil {
					w.logger.Error().Err(err).Msg("Failed to purge expired mail")
					continue
				}
				if deleted > 0 {
					w.logger.Info().Int64("deleted", deleted).Msg("Expired mail purged")
				}
			case <-w.stopChan:
				w.logger.Info().Msg("Mail janitor stopping")
				return
			case <-ctx.Done():
				w.logger.Info().Msg("Mail janitor stopping (context done)")
				return
			}
		}
	}()
}

func (w *MailJanitor) Stop() {
	w.stopOnce.Do(func() { close(w.stopChan) })
	w.wg.Wait()
}
