package broadcast

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func setupRelay(t *testing.T) (*Relay, *Hub, context.CancelFunc) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	hub := NewHub(testLogger(), 0)
	relay := NewRelay(client, hub, testLogger())

	ctx, cancel := context.WithCancel(context.Background())
	go relay.Run(ctx)

	// Give the pattern subscription time to establish.
	time.Sleep(50 * time.Millisecond)

	return relay, hub, cancel
}

func TestRelay_PublishRoundTripsThroughRedis(t *testing.T) {
	relay, hub, cancel := setupRelay(t)
	defer cancel()

	sub := hub.Subscribe("match-1")
	defer hub.Unsubscribe(sub)

	ev := event("match-1", "evt-1", "goal for the home side")
	if err := relay.Publish(context.Background(), ev); err != nil {
		t.Fatalf("Publish() error = %v", err)
	}

	select {
	case got := <-sub.Events():
		if got.ID != "evt-1" {
			t.Errorf("received event %q, want evt-1", got.ID)
		}
		if got.Text != ev.Text {
			t.Errorf("received text %q, want %q", got.Text, ev.Text)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("event did not arrive through the relay")
	}
}

func TestRelay_ScopedToMatchChannel(t *testing.T) {
	relay, hub, cancel := setupRelay(t)
	defer cancel()

	sub := hub.Subscribe("match-2")
	defer hub.Unsubscribe(sub)

	if err := relay.Publish(context.Background(), event("match-1", "evt-1", "x")); err != nil {
		t.Fatalf("Publish() error = %v", err)
	}

	// Allow the relay loop to process the message.
	time.Sleep(100 * time.Millisecond)

	select {
	case got := <-sub.Events():
		t.Errorf("match-2 subscriber received event %q for match-1", got.ID)
	default:
	}
}
