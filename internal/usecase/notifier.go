package usecase

import "github.com/google/uuid"

// Notifier pushes a dashboard event to the user's live connections. A nil
// Notifier is valid; callers fire and forget.
type Notifier interface {
	Publish(userID uuid.UUID, event string, payload any)
}

const (
	EventSkillsUpdated = "skills.updated"
	EventSavedUpdated  = "saved.updated"
)
