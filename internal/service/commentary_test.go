package service

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/matchlive/commentary-service/internal/domain"
)

type recordingBroadcaster struct {
	published []domain.Commentary
	err       error
}

func (b *recordingBroadcaster) Publish(_ context.Context, event domain.Commentary) error {
	if b.err != nil {
		return b.err
	}
	b.published = append(b.published, event)
	return nil
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestCommentaryFeed_CreateBroadcastsAfterPersist(t *testing.T) {
	store := &fakeStore{}
	bc := &recordingBroadcaster{}
	feed := NewCommentaryFeed(store, bc, quietLogger())

	event, err := feed.Create(context.Background(), "match-1", domain.CreateCommentaryRequest{
		Type: domain.CommentaryTypeGoal,
		Text: "1-0!",
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if len(bc.published) != 1 {
		t.Fatalf("published %d events, want 1", len(bc.published))
	}
	// The broadcast event is the persisted record, store-assigned ID
	// included, not the raw request.
	if bc.published[0].ID != event.ID {
		t.Errorf("broadcast event ID = %q, want %q", bc.published[0].ID, event.ID)
	}
}

func TestCommentaryFeed_NoBroadcastWhenStoreFails(t *testing.T) {
	store := &fakeStore{
		insertCommentaryErr: &domain.StorageError{Op: "insert commentary", Err: errors.New("down")},
	}
	bc := &recordingBroadcaster{}
	feed := NewCommentaryFeed(store, bc, quietLogger())

	_, err := feed.Create(context.Background(), "match-1", domain.CreateCommentaryRequest{Text: "x"})
	if err == nil {
		t.Fatal("Create() succeeded despite store failure")
	}
	if len(bc.published) != 0 {
		t.Errorf("published %d events after failed persist, want 0", len(bc.published))
	}
}

func TestCommentaryFeed_BroadcastFailureDoesNotFailCreate(t *testing.T) {
	store := &fakeStore{}
	bc := &recordingBroadcaster{err: errors.New("relay unavailable")}
	feed := NewCommentaryFeed(store, bc, quietLogger())

	event, err := feed.Create(context.Background(), "match-1", domain.CreateCommentaryRequest{Text: "x"})
	if err != nil {
		t.Fatalf("Create() error = %v, broadcast failure must not propagate", err)
	}
	if event == nil || event.ID == "" {
		t.Error("Create() did not return the persisted event")
	}
}

func TestCommentaryFeed_CreateSurfacesNotFound(t *testing.T) {
	store := &fakeStore{insertCommentaryErr: domain.ErrNotFound}
	feed := NewCommentaryFeed(store, &recordingBroadcaster{}, quietLogger())

	_, err := feed.Create(context.Background(), "missing", domain.CreateCommentaryRequest{Text: "x"})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("Create() error = %v, want ErrNotFound", err)
	}
}

func TestCommentaryFeed_CreateRejectsInvalidPayload(t *testing.T) {
	store := &fakeStore{}
	feed := NewCommentaryFeed(store, &recordingBroadcaster{}, quietLogger())

	_, err := feed.Create(context.Background(), "match-1", domain.CreateCommentaryRequest{})
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("Create() error = %v, want *domain.ValidationError", err)
	}
	if store.insertedCommentary != nil {
		t.Error("invalid payload reached the store")
	}
}

func TestCommentaryFeed_NilBroadcasterDefaultsToNop(t *testing.T) {
	store := &fakeStore{}
	feed := NewCommentaryFeed(store, nil, quietLogger())

	if _, err := feed.Create(context.Background(), "match-1", domain.CreateCommentaryRequest{Text: "x"}); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
}

func TestCommentaryFeed_ListClampsAndReturnsEmpty(t *testing.T) {
	store := &fakeStore{commentary: []domain.Commentary{}}
	feed := NewCommentaryFeed(store, nil, quietLogger())

	events, err := feed.List(context.Background(), "match-without-commentary", domain.MaxListLimit+500)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if events == nil || len(events) != 0 {
		t.Errorf("List() = %v, want empty slice", events)
	}
	if store.listCommentaryLimit != domain.MaxListLimit {
		t.Errorf("store saw limit %d, want %d", store.listCommentaryLimit, domain.MaxListLimit)
	}
}

func TestCommentaryFeed_ListNewestFirstOrderPreserved(t *testing.T) {
	base := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	store := &fakeStore{commentary: []domain.Commentary{
		{ID: "evt-3", MatchID: "match-1", CreatedAt: base.Add(2 * time.Minute)},
		{ID: "evt-2", MatchID: "match-1", CreatedAt: base.Add(time.Minute)},
		{ID: "evt-1", MatchID: "match-1", CreatedAt: base},
	}}
	feed := NewCommentaryFeed(store, nil, quietLogger())

	events, err := feed.List(context.Background(), "match-1", 2)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	// The feed passes the store's ordering through untouched.
	if events[0].ID != "evt-3" || events[1].ID != "evt-2" {
		t.Errorf("order = [%s %s ...], want [evt-3 evt-2 ...]", events[0].ID, events[1].ID)
	}
}
