package usecase

import (
	"context"

	"github.com/google/uuid"
)

// maxDraftBytes caps a stored resume draft at 256 KiB.
const maxDraftBytes = 256 << 10

// DraftStore is the durable blob backend for in-progress resume drafts.
// Unlike the recommendation cache, a degraded backend must surface as an
// error here; silently dropping someone's draft is worse than failing.
type DraftStore interface {
	GetBlob(ctx context.Context, key string) ([]byte, bool, error)
	SetBlob(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

type DraftUsecase interface {
	Save(ctx context.Context, userID uuid.UUID, data []byte) error
	Load(ctx context.Context, userID uuid.UUID) ([]byte, bool, error)
	Discard(ctx context.Context, userID uuid.UUID) error
}

type Draft struct {
	store DraftStore
}

func NewDraftUsecase(store DraftStore) *Draft {
	return &Draft{store: store}
}

func (u *Draft) Save(ctx context.Context, userID uuid.UUID, data []byte) error {
	if len(data) == 0 || len(data) > maxDraftBytes {
		return ErrInvalidInput
	}
	if err := u.store.SetBlob(ctx, draftKey(userID), data); err != nil {
		return ErrUnavailable
	}
	return nil
}

func (u *Draft) Load(ctx context.Context, userID uuid.UUID) ([]byte, bool, error) {
	data, found, err := u.store.GetBlob(ctx, draftKey(userID))
	if err != nil {
		return nil, false, ErrUnavailable
	}
	return data, found, nil
}

func (u *Draft) Discard(ctx context.Context, userID uuid.UUID) error {
	if err := u.store.Delete(ctx, draftKey(userID)); err != nil {
		return ErrUnavailable
	}
	return nil
}

func draftKey(userID uuid.UUID) string {
	return "draft:resume:" + userID.String()
}

var _ DraftUsecase = (*Draft)(nil)
