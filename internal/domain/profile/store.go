package profile

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var (
	// ErrNotFound means no document exists for the user yet. Callers treat
	// this as "use defaults", never as a fatal condition.
	ErrNotFound = errors.New("profile not found")

	// ErrUnavailable means the store could not be reached. Callers render
	// defaults for reads and surface a retry-eligible failure for writes.
	ErrUnavailable = errors.New("profile store unavailable")
)

// Store reads and merge-writes the per-user profile document.
type Store interface {
	Load(ctx context.Context, userID uuid.UUID) (Profile, error)

	// Merge writes the given fields into the stored document, preserving
	// every field not named in the write.
	Merge(ctx context.Context, userID uuid.UUID, fields map[string]any) error
}
