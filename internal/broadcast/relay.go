package broadcast

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/matchlive/commentary-service/internal/domain"
)

const channelPrefix = "commentary:"

// Relay bridges the in-process hub over Redis pub/sub so that multiple
// server replicas share one live feed. Publish sends to Redis only; a
// single pattern subscription feeds every instance's local hub,
// including the publishing one, so each event reaches each local
// subscriber exactly once.
type Relay struct {
	client *redis.Client
	hub    *Hub
	logger *slog.Logger
}

// NewRelay creates a relay over an already-connected Redis client.
func NewRelay(client *redis.Client, hub *Hub, logger *slog.Logger) *Relay {
	return &Relay{client: client, hub: hub, logger: logger}
}

// Publish serializes the event and publishes it to the match's Redis
// channel. Local delivery happens via the Run loop.
func (r *Relay) Publish(ctx context.Context, event domain.Commentary) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshaling commentary event: %w", err)
	}
	if err := r.client.Publish(ctx, channelPrefix+event.MatchID, data).Err(); err != nil {
		return fmt.Errorf("publishing to redis: %w", err)
	}
	return nil
}

// Run subscribes to all commentary channels and forwards incoming
// events to the local hub until the context is cancelled. Should be
// called as a goroutine.
func (r *Relay) Run(ctx context.Context) {
	pubsub := r.client.PSubscribe(ctx, channelPrefix+"*")
	defer pubsub.Close()

	r.logger.Info("broadcast relay started")

	ch := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			r.logger.Info("broadcast relay stopping")
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			var event domain.Commentary
			if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
				r.logger.Error("failed to unmarshal relayed event", "error", err)
				continue
			}
			if event.MatchID == "" {
				event.MatchID = strings.TrimPrefix(msg.Channel, channelPrefix)
			}
			r.hub.Publish(ctx, event)
		}
	}
}
