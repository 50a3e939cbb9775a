// Package live fans store changes out to subscribers as read-only snapshots.
package live

import (
	"context"
	"errors"
	"sync"

	"arena-wallet/internal/model"
	"arena-wallet/internal/repository"

	"github.com/rs/zerolog"
)

// Topic selects snapshots of one kind. An empty ID matches every record of that kind.
type Topic struct {
	Kind model.SnapshotKind
	ID   string
}

func ProfileTopic(userID string) Topic {
	return Topic{Kind: model.SnapshotProfile, ID: userID}
}

func TournamentTopic(tournamentID string) Topic {
	return Topic{Kind: model.SnapshotTournament, ID: tournamentID}
}

func (t Topic) matches(kind model.SnapshotKind, id string) bool {
	return t.Kind == kind && (t.ID == "" || t.ID == id)
}

// Feed loads a fresh snapshot for every change event and hands it to the
// interested subscriptions without blocking on slow consumers.
type Feed struct {
	profiles    repository.ProfileRepository
	tournaments repository.TournamentRepository
	logger      zerolog.Logger

	mu   sync.RWMutex
	subs map[*Subscription]struct{}
}

func NewFeed(profiles repository.ProfileRepository, tournaments repository.TournamentRepository, logger zerolog.Logger) *Feed {
	return &Feed{
		profiles:    profiles,
		tournaments: tournaments,
		logger:      logger,
		subs:        make(map[*Subscription]struct{}),
	}
}

// Subscribe registers interest in the topics. Topics naming a specific record
// receive its current snapshot first. The subscription closes when ctx is done.
func (f *Feed) Subscribe(ctx context.Context, topics ...Topic) (*Subscription, error) {
	s := &Subscription{
		feed:    f,
		topics:  topics,
		out:     make(chan model.Snapshot),
		wake:    make(chan struct{}, 1),
		done:    make(chan struct{}),
		pending: make(map[record]model.Snapshot),
	}
	go s.pump()

	f.mu.Lock()
	f.subs[s] = struct{}{}
	f.mu.Unlock()

	for _, t := range topics {
		if t.ID == "" {
			continue
		}
		snap, err := f.load(ctx, t.Kind, t.ID)
		if err != nil {
			s.Close()
			return nil, err
		}
		s.deliver(snap)
	}

	stop := context.AfterFunc(ctx, s.Close)
	s.mu.Lock()
	s.stop = stop
	s.mu.Unlock()
	return s, nil
}

// Publish is the change sink for the store listener.
func (f *Feed) Publish(ctx context.Context, ev model.ChangeEvent) {
	targets := f.interested(ev.Kind, ev.ID)
	if len(targets) == 0 {
		return
	}

	snap, err := f.load(ctx, ev.Kind, ev.ID)
	if err != nil {
		if errors.Is(err, model.ErrProfileNotFound) || errors.Is(err, model.ErrTournamentNotFound) {
			return
		}
		f.logger.Error().Err(err).Str("kind", string(ev.Kind)).Str("id", ev.ID).Msg("Failed to load snapshot")
		return
	}

	for _, s := range targets {
		s.deliver(snap)
	}
}

// Subscribers reports the number of open subscriptions.
func (f *Feed) Subscribers() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return len(f.subs)
}

func (f *Feed) interested(kind model.SnapshotKind, id string) []*Subscription {
	f.mu.RLock()
	defer f.mu.RUnlock()

	var out []*Subscription
	for s := range f.subs {
		for _, t := range s.topics {
			if t.matches(kind, id) {
				out = append(out, s)
				break
			}
		}
	}
	return out
}

func (f *Feed) load(ctx context.Context, kind model.SnapshotKind, id string) (model.Snapshot, error) {
	snap := model.Snapshot{Kind: kind, ID: id}
	var err error
	switch kind {
	case model.SnapshotProfile:
		snap.Profile, err = f.profiles.GetProfile(ctx, id)
	case model.SnapshotTournament:
		snap.Tournament, err = f.tournaments.GetTournament(ctx, id)
	}
	return snap, err
}

func (f *Feed) remove(s *Subscription) {
	f.mu.Lock()
	delete(f.subs, s)
	f.mu.Unlock()
}

type record struct {
	kind model.SnapshotKind
	id   string
}

// Subscription queues at most one pending snapshot per record. A newer snapshot
// of a record replaces its older pending one; snapshots of different records are
// never dropped, and records are handed out in the order they first changed.
type Subscription struct {
	feed   *Feed
	topics []Topic
	out    chan model.Snapshot
	wake   chan struct{}
	done   chan struct{}
	stop   func() bool

	mu      sync.Mutex
	closed  bool
	pending map[record]model.Snapshot
	order   []record
}

// C yields snapshots until the subscription is closed.
func (s *Subscription) C() <-chan model.Snapshot {
	return s.out
}

func (s *Subscription) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	stop := s.stop
	s.pending, s.order = nil, nil
	s.mu.Unlock()

	if stop != nil {
		stop()
	}
	s.feed.remove(s)
	close(s.done)
}

func (s *Subscription) deliver(snap model.Snapshot) {
	key := record{kind: snap.Kind, id: snap.ID}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	if _, queued := s.pending[key]; !queued {
		s.order = append(s.order, key)
	}
	s.pending[key] = snap
	s.mu.Unlock()

	select {
	case s.wake <- struct{}{}:
	default:
	}
}

func (s *Subscription) next() (model.Snapshot, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.order) == 0 {
		return model.Snapshot{}, false
	}
	key := s.order[0]
	s.order = s.order[1:]
	snap := s.pending[key]
	delete(s.pending, key)
	return snap, true
}

// pump moves pending snapshots to the consumer one at a time.
func (s *Subscription) pump() {
	defer close(s.out)
	for {
		snap, ok := s.next()
		if !ok {
			select {
			case <-s.wake:
				continue
			case <-s.done:
				return
			}
		}

		select {
		case s.out <- snap:
		case <-s.done:
			return
		}
	}
}
