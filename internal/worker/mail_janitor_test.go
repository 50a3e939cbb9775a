package worker

import (
	"context"
	"errors"
	"testing"
	"time"

	"arena-wallet/mocks/service"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestMailJanitor_PurgesOnEveryTick(t *testing.T) {
	svc := mocks.NewSupportService(t)
	calls := make(chan struct{}, 8)

	svc.On("PurgeExpiredMail", mock.Anything).Return(int64(3), nil).Run(func(mock.Arguments) {
		select {
		case calls <- struct{}{}:
		default:
		}
	})

	w := NewMailJanitor(svc, 10*time.Millisecond, zerolog.Nop())
	w.Start(context.Background())

	for i := 0; i < 2; i++ {
		select {
		case <-calls:
		case <-time.After(time.Second):
			t.Fatal("janitor did not run")
		}
	}
	w.Stop()
	w.Stop()
}

func TestMailJanitor_SurvivesErrors(t *testing.T) {
	svc := mocks.NewSupportService(t)
	calls := make(chan struct{}, 8)

	svc.On("PurgeExpiredMail", mock.Anything).Return(int64(0), errors.New("db down")).Run(func(mock.Arguments) {
		select {
		case calls <- struct{}{}:
		default:
		}
	})

	w := NewMailJanitor(svc, 10*time.Millisecond, zerolog.Nop())
	w.Start(context.Background())

	for i := 0; i < 2; i++ {
		select {
		case <-calls:
		case <-time.After(time.Second):
			t.Fatal("janitor stopped after an error")
		}
	}
	w.Stop()
}

func TestMailJanitor_StopsWithContext(t *testing.T) {
	svc := mocks.NewSupportService(t)
	ctx, cancel := context.WithCancel(context.Background())

	w := NewMailJanitor(svc, time.Hour, zerolog.Nop())
	w.Start(ctx)
	cancel()

	done := make(chan struct{})
	go func() {
		w.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("janitor did not stop")
	}
	assert.Empty(t, svc.Calls)
}
