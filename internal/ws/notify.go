package ws

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type event struct {
	Type      string    `json:"type"`
	Payload   any       `json:"payload"`
	Timestamp time.Time `json:"timestamp"`
}

// Notifier adapts the hub to the usecase layer's fire-and-forget
// publisher.
type Notifier struct {
	hub *Hub
}

func NewNotifier(hub *Hub) *Notifier {
	return &Notifier{hub: hub}
}

func (n *Notifier) Publish(userID uuid.UUID, eventType string, payload any) {
	if n == nil || n.hub == nil {
		return
	}

	b, err := json.Marshal(event{
		Type:      eventType,
		Payload:   payload,
		Timestamp: time.Now().UTC(),
	})
	if err != nil {
		return
	}
	n.hub.Send(userID, b)
}
