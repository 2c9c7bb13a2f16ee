package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"career-compass/internal/domain/profile"
)

type recordedEvent struct {
	userID  uuid.UUID
	event   string
	payload any
}

type mockNotifier struct {
	events []recordedEvent
}

func (m *mockNotifier) Publish(userID uuid.UUID, event string, payload any) {
	m.events = append(m.events, recordedEvent{userID: userID, event: event, payload: payload})
}

func TestSavedItemsToggleIsAnInvolution(t *testing.T) {
	store := newMockProfileStore()
	uc := NewSavedItemsUsecase(store, nil)
	userID := uuid.New()
	item := profile.SavedItem{ExternalID: "abc", Title: "Go course", Kind: "playlist"}

	saved, err := uc.Toggle(context.Background(), userID, item)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !saved {
		t.Fatalf("first toggle must save")
	}

	items, err := uc.List(context.Background(), userID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 1 || items[0].ExternalID != "abc" {
		t.Fatalf("unexpected ledger %+v", items)
	}
	if items[0].SavedAt.IsZero() {
		t.Fatalf("SavedAt must be stamped on save")
	}

	saved, err = uc.Toggle(context.Background(), userID, item)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if saved {
		t.Fatalf("second toggle must remove")
	}

	items, err = uc.List(context.Background(), userID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected empty ledger, got %+v", items)
	}
}

func TestSavedItemsListNewestFirst(t *testing.T) {
	store := newMockProfileStore()
	uc := NewSavedItemsUsecase(store, nil)
	userID := uuid.New()

	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	clock := base
	uc.now = func() time.Time { clock = clock.Add(time.Minute); return clock }

	for _, id := range []string{"first", "second", "third"} {
		if _, err := uc.Toggle(context.Background(), userID, profile.SavedItem{ExternalID: id}); err != nil {
			t.Fatalf("toggle %q: %v", id, err)
		}
	}

	items, err := uc.List(context.Background(), userID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"third", "second", "first"}
	for i, w := range want {
		if items[i].ExternalID != w {
			t.Fatalf("position %d: got %q, want %q", i, items[i].ExternalID, w)
		}
	}
}

func TestSavedItemsToggleEmptyID(t *testing.T) {
	uc := NewSavedItemsUsecase(newMockProfileStore(), nil)

	if _, err := uc.Toggle(context.Background(), uuid.New(), profile.SavedItem{ExternalID: "   "}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if err := uc.Remove(context.Background(), uuid.New(), ""); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestSavedItemsRemoveAbsentIsNoop(t *testing.T) {
	store := newMockProfileStore()
	uc := NewSavedItemsUsecase(store, nil)
	userID := uuid.New()

	if err := uc.Remove(context.Background(), userID, "ghost"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(store.merges) != 0 {
		t.Fatalf("removing an absent id must not write, got %d merges", len(store.merges))
	}
}

func TestSavedItemsMergeFailure(t *testing.T) {
	store := newMockProfileStore()
	store.mergeErr = errors.New("db down")
	uc := NewSavedItemsUsecase(store, nil)

	if _, err := uc.Toggle(context.Background(), uuid.New(), profile.SavedItem{ExternalID: "abc"}); !errors.Is(err, ErrInternal) {
		t.Fatalf("expected ErrInternal, got %v", err)
	}
}

func TestSavedItemsNotifierFiresOnCommit(t *testing.T) {
	store := newMockProfileStore()
	notifier := &mockNotifier{}
	uc := NewSavedItemsUsecase(store, notifier)
	userID := uuid.New()

	if _, err := uc.Toggle(context.Background(), userID, profile.SavedItem{ExternalID: "abc"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(notifier.events) != 1 {
		t.Fatalf("expected one event, got %d", len(notifier.events))
	}
	ev := notifier.events[0]
	if ev.userID != userID || ev.event != EventSavedUpdated {
		t.Fatalf("unexpected event %+v", ev)
	}
}
