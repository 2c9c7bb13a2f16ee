package mentorship

import (
	"time"

	"github.com/google/uuid"
)

const (
	RequestPending  = "pending"
	RequestAccepted = "accepted"
	RequestDeclined = "declined"
)

type Mentor struct {
	UserID    uuid.UUID
	Name      string
	Title     string
	Bio       string
	Expertise []string
	CreatedAt time.Time
}

type Request struct {
	ID        uuid.UUID
	MenteeID  uuid.UUID
	MentorID  uuid.UUID
	Status    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Goal struct {
	ID             uuid.UUID
	MenteeID       uuid.UUID
	Title          string
	TotalTasks     int
	CompletedTasks int
	DueDate        *time.Time
	CreatedAt      time.Time
}

// Progress returns the goal's completion percent, clamped to [0, 100].
func (g Goal) Progress() int {
	if g.TotalTasks <= 0 {
		return 0
	}
	pct := g.CompletedTasks * 100 / g.TotalTasks
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}
