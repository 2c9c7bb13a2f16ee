package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"career-compass/internal/domain/profile"
)

type SavedItemsUsecase interface {
	List(ctx context.Context, userID uuid.UUID) ([]profile.SavedItem, error)
	Toggle(ctx context.Context, userID uuid.UUID, item profile.SavedItem) (bool, error)
	Remove(ctx context.Context, userID uuid.UUID, externalID string) error
}

// SavedItems is the saved-courses ledger. Identity is the external id
// alone: toggling an id that is present removes it, toggling an absent id
// appends it. Every mutation rewrites the whole array in one merge write.
type SavedItems struct {
	store    profile.Store
	notifier Notifier
	now      func() time.Time
}

func NewSavedItemsUsecase(store profile.Store, notifier Notifier) *SavedItems {
	return &SavedItems{store: store, notifier: notifier, now: time.Now}
}

// List returns the saved items newest first.
func (u *SavedItems) List(ctx context.Context, userID uuid.UUID) ([]profile.SavedItem, error) {
	items, err := u.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].SavedAt.After(items[j].SavedAt)
	})
	return items, nil
}

// Toggle flips the saved state of the item's external id and reports the
// new state: true when the item is now saved.
func (u *SavedItems) Toggle(ctx context.Context, userID uuid.UUID, item profile.SavedItem) (bool, error) {
	item.ExternalID = strings.TrimSpace(item.ExternalID)
	if item.ExternalID == "" {
		return false, ErrInvalidInput
	}

	items, err := u.load(ctx, userID)
	if err != nil {
		return false, err
	}

	next := make([]profile.SavedItem, 0, len(items)+1)
	removed := false
	for _, it := range items {
		if it.ExternalID == item.ExternalID {
			removed = true
			continue
		}
		next = append(next, it)
	}

	saved := false
	if !removed {
		item.SavedAt = u.now().UTC()
		next = append(next, item)
		saved = true
	}

	if err := u.commit(ctx, userID, next); err != nil {
		return false, err
	}
	return saved, nil
}

// Remove drops the external id from the ledger. A missing id is a no-op.
func (u *SavedItems) Remove(ctx context.Context, userID uuid.UUID, externalID string) error {
	externalID = strings.TrimSpace(externalID)
	if externalID == "" {
		return ErrInvalidInput
	}

	items, err := u.load(ctx, userID)
	if err != nil {
		return err
	}

	next := make([]profile.SavedItem, 0, len(items))
	for _, it := range items {
		if it.ExternalID == externalID {
			continue
		}
		next = append(next, it)
	}
	if len(next) == len(items) {
		return nil
	}

	return u.commit(ctx, userID, next)
}

func (u *SavedItems) load(ctx context.Context, userID uuid.UUID) ([]profile.SavedItem, error) {
	p, err := u.store.Load(ctx, userID)
	if err != nil {
		if errors.Is(err, profile.ErrNotFound) {
			return nil, nil
		}
		return nil, ErrInternal
	}
	return profile.Normalize(p).SavedCourses, nil
}

func (u *SavedItems) commit(ctx context.Context, userID uuid.UUID, items []profile.SavedItem) error {
	fields := map[string]any{
		"savedCourses": items,
		"updatedAt":    u.now().UTC(),
	}
	if err := u.store.Merge(ctx, userID, fields); err != nil {
		return ErrInternal
	}

	if u.notifier != nil {
		u.notifier.Publish(userID, EventSavedUpdated, map[string]any{"count": len(items)})
	}
	return nil
}

var _ SavedItemsUsecase = (*SavedItems)(nil)
