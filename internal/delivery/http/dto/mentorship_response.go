package dto

import (
	"time"

	"github.com/google/uuid"

	"career-compass/internal/domain/mentorship"
	"career-compass/internal/usecase"
)

type MentorResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Title     string    `json:"title"`
	Bio       string    `json:"bio"`
	Expertise []string  `json:"expertise"`
}

type MentorshipRequestResponse struct {
	ID        uuid.UUID `json:"id"`
	MenteeID  uuid.UUID `json:"mentee_id"`
	MentorID  uuid.UUID `json:"mentor_id"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

type GoalResponse struct {
	ID             uuid.UUID `json:"id"`
	Title          string    `json:"title"`
	TotalTasks     int       `json:"total_tasks"`
	CompletedTasks int       `json:"completed_tasks"`
	Progress       int       `json:"progress"`
	DueDate        *string   `json:"due_date,omitempty"`
}

func NewMentorResponses(mentors []mentorship.Mentor) []MentorResponse {
	out := make([]MentorResponse, 0, len(mentors))
	for _, m := range mentors {
		expertise := m.Expertise
		if expertise == nil {
			expertise = []string{}
		}
		out = append(out, MentorResponse{
			ID:        m.UserID,
			Name:      m.Name,
			Title:     m.Title,
			Bio:       m.Bio,
			Expertise: expertise,
		})
	}
	return out
}

func NewMentorshipRequestResponse(r mentorship.Request) MentorshipRequestResponse {
	return MentorshipRequestResponse{
		ID:        r.ID,
		MenteeID:  r.MenteeID,
		MentorID:  r.MentorID,
		Status:    r.Status,
		CreatedAt: r.CreatedAt,
	}
}

func NewMentorshipRequestResponses(reqs []mentorship.Request) []MentorshipRequestResponse {
	out := make([]MentorshipRequestResponse, 0, len(reqs))
	for _, r := range reqs {
		out = append(out, NewMentorshipRequestResponse(r))
	}
	return out
}

func NewGoalResponse(v usecase.GoalView) GoalResponse {
	res := GoalResponse{
		ID:             v.Goal.ID,
		Title:          v.Goal.Title,
		TotalTasks:     v.Goal.TotalTasks,
		CompletedTasks: v.Goal.CompletedTasks,
		Progress:       v.Progress,
	}
	if v.Goal.DueDate != nil {
		due := v.Goal.DueDate.Format("2006-01-02")
		res.DueDate = &due
	}
	return res
}

func NewGoalResponses(views []usecase.GoalView) []GoalResponse {
	out := make([]GoalResponse, 0, len(views))
	for _, v := range views {
		out = append(out, NewGoalResponse(v))
	}
	return out
}
