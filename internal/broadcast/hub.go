package broadcast

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/matchlive/commentary-service/internal/domain"
)

// DefaultBufferSize is the per-subscriber outbox capacity used when no
// explicit size is configured.
const DefaultBufferSize = 64

// Subscriber is a live listener on one match's commentary feed. Events
// arrive on a bounded channel; if the subscriber stops draining it, the
// hub detaches it rather than dropping individual events silently.
type Subscriber struct {
	id      string
	matchID string
	events  chan domain.Commentary
	done    chan struct{}
	once    sync.Once
}

// Events returns the channel new commentary is delivered on. The
// channel is never closed; watch Done to learn about detachment.
func (s *Subscriber) Events() <-chan domain.Commentary {
	return s.events
}

// Done is closed when the subscriber has been detached from the hub,
// either explicitly via Unsubscribe or because its outbox overflowed.
func (s *Subscriber) Done() <-chan struct{} {
	return s.done
}

// MatchID returns the match this subscriber listens to.
func (s *Subscriber) MatchID() string {
	return s.matchID
}

// Hub fans newly created commentary out to the live subscribers of its
// match. The registry is the only mutable shared state; publish
// iterates over a snapshot so subscribe/unsubscribe never tear a
// delivery pass.
type Hub struct {
	mu      sync.RWMutex
	matches map[string]map[*Subscriber]struct{}
	buffer  int
	logger  *slog.Logger
}

// NewHub creates a hub. buffer is the per-subscriber outbox capacity;
// values <= 0 fall back to DefaultBufferSize.
func NewHub(logger *slog.Logger, buffer int) *Hub {
	if buffer <= 0 {
		buffer = DefaultBufferSize
	}
	return &Hub{
		matches: make(map[string]map[*Subscriber]struct{}),
		buffer:  buffer,
		logger:  logger,
	}
}

// Subscribe registers a new listener for the given match and returns
// its handle. The subscriber receives only events published after this
// call; history is available through the commentary list endpoint.
func (h *Hub) Subscribe(matchID string) *Subscriber {
	sub := &Subscriber{
		id:      uuid.NewString(),
		matchID: matchID,
		events:  make(chan domain.Commentary, h.buffer),
		done:    make(chan struct{}),
	}

	h.mu.Lock()
	set, ok := h.matches[matchID]
	if !ok {
		set = make(map[*Subscriber]struct{})
		h.matches[matchID] = set
	}
	set[sub] = struct{}{}
	h.mu.Unlock()

	h.logger.Debug("subscriber registered", "match_id", matchID, "subscriber_id", sub.id)
	return sub
}

// Unsubscribe removes the subscriber from the registry and signals its
// Done channel. Safe to call more than once.
func (h *Hub) Unsubscribe(sub *Subscriber) {
	h.mu.Lock()
	if set, ok := h.matches[sub.matchID]; ok {
		delete(set, sub)
		if len(set) == 0 {
			delete(h.matches, sub.matchID)
		}
	}
	h.mu.Unlock()

	sub.once.Do(func() { close(sub.done) })
	h.logger.Debug("subscriber detached", "match_id", sub.matchID, "subscriber_id", sub.id)
}

// Publish delivers the event to every current subscriber of its match.
// Delivery is at-most-once and non-blocking: a subscriber whose outbox
// is full is detached so one slow consumer can never stall the others
// or the write path. Always returns nil; local fan-out cannot fail.
func (h *Hub) Publish(ctx context.Context, event domain.Commentary) error {
	h.mu.RLock()
	set := h.matches[event.MatchID]
	subs := make([]*Subscriber, 0, len(set))
	for sub := range set {
		subs = append(subs, sub)
	}
	h.mu.RUnlock()

	for _, sub := range subs {
		select {
		case <-sub.done:
		case sub.events <- event:
		default:
			h.logger.Warn("subscriber outbox full, detaching",
				"match_id", event.MatchID, "subscriber_id", sub.id)
			h.Unsubscribe(sub)
		}
	}
	return nil
}

// SubscriberCount returns the number of live subscribers for a match.
func (h *Hub) SubscriberCount(matchID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.matches[matchID])
}

// TotalSubscribers returns the number of live subscribers across all
// matches.
func (h *Hub) TotalSubscribers() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	total := 0
	for _, set := range h.matches {
		total += len(set)
	}
	return total
}
