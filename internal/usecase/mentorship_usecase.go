package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"career-compass/internal/domain/mentorship"
	"career-compass/internal/repository"
)

var (
	ErrAlreadyRequested = errors.New("mentorship already requested")
	ErrSelfMentorship   = errors.New("cannot request yourself as mentor")
)

type GoalInput struct {
	Title      string
	TotalTasks int
	DueDate    *string
}

type GoalView struct {
	Goal     mentorship.Goal
	Progress int
}

type MentorshipUsecase interface {
	ListMentors(ctx context.Context) ([]mentorship.Mentor, error)
	RequestMentorship(ctx context.Context, menteeID, mentorID uuid.UUID) (mentorship.Request, error)
	RespondToRequest(ctx context.Context, mentorID, requestID uuid.UUID, accept bool) error
	ListRequests(ctx context.Context, mentorID uuid.UUID) ([]mentorship.Request, error)
	ListGoals(ctx context.Context, menteeID uuid.UUID) ([]GoalView, error)
	CreateGoal(ctx context.Context, menteeID uuid.UUID, in GoalInput) (mentorship.Goal, error)
	UpdateGoalProgress(ctx context.Context, menteeID, goalID uuid.UUID, completedTasks int) error
}

type Mentorship struct {
	repo repository.MentorshipRepository
}

func NewMentorshipUsecase(repo repository.MentorshipRepository) *Mentorship {
	return &Mentorship{repo: repo}
}

func (u *Mentorship) ListMentors(ctx context.Context) ([]mentorship.Mentor, error) {
	mentors, err := u.repo.ListMentors(ctx)
	if err != nil {
		return nil, ErrInternal
	}
	return mentors, nil
}

// RequestMentorship creates a pending request. A request pair is unique;
// repeating one that is still pending or accepted is rejected.
func (u *Mentorship) RequestMentorship(ctx context.Context, menteeID, mentorID uuid.UUID) (mentorship.Request, error) {
	if menteeID == mentorID {
		return mentorship.Request{}, ErrSelfMentorship
	}

	if _, err := u.repo.GetMentor(ctx, mentorID); err != nil {
		if errors.Is(err, repository.ErrMentorNotFound) {
			return mentorship.Request{}, ErrNotFound
		}
		return mentorship.Request{}, ErrInternal
	}

	existing, err := u.repo.FindRequest(ctx, menteeID, mentorID)
	switch {
	case err == nil:
		if existing.Status == mentorship.RequestDeclined {
			// A declined pair may try again; reopen the row.
			if err := u.repo.UpdateRequestStatus(ctx, existing.ID, mentorship.RequestPending); err != nil {
				return mentorship.Request{}, ErrInternal
			}
			existing.Status = mentorship.RequestPending
			return existing, nil
		}
		return mentorship.Request{}, ErrAlreadyRequested
	case errors.Is(err, repository.ErrRequestNotFound):
		// fall through to create
	default:
		return mentorship.Request{}, ErrInternal
	}

	req := mentorship.Request{
		ID:       uuid.New(),
		MenteeID: menteeID,
		MentorID: mentorID,
		Status:   mentorship.RequestPending,
	}
	if err := u.repo.CreateRequest(ctx, req); err != nil {
		return mentorship.Request{}, ErrInternal
	}
	return req, nil
}

// RespondToRequest lets the addressed mentor accept or decline. Only
// pending requests can be answered.
func (u *Mentorship) RespondToRequest(ctx context.Context, mentorID, requestID uuid.UUID, accept bool) error {
	reqs, err := u.repo.ListRequestsForMentor(ctx, mentorID)
	if err != nil {
		return ErrInternal
	}

	var found *mentorship.Request
	for i := range reqs {
		if reqs[i].ID == requestID {
			found = &reqs[i]
			break
		}
	}
	if found == nil {
		return ErrNotFound
	}
	if found.Status != mentorship.RequestPending {
		return ErrInvalidInput
	}

	status := mentorship.RequestDeclined
	if accept {
		status = mentorship.RequestAccepted
	}
	if err := u.repo.UpdateRequestStatus(ctx, requestID, status); err != nil {
		return ErrInternal
	}
	return nil
}

func (u *Mentorship) ListRequests(ctx context.Context, mentorID uuid.UUID) ([]mentorship.Request, error) {
	reqs, err := u.repo.ListRequestsForMentor(ctx, mentorID)
	if err != nil {
		return nil, ErrInternal
	}
	return reqs, nil
}

func (u *Mentorship) ListGoals(ctx context.Context, menteeID uuid.UUID) ([]GoalView, error) {
	goals, err := u.repo.ListGoals(ctx, menteeID)
	if err != nil {
		return nil, ErrInternal
	}

	out := make([]GoalView, 0, len(goals))
	for _, g := range goals {
		out = append(out, GoalView{Goal: g, Progress: g.Progress()})
	}
	return out, nil
}

func (u *Mentorship) CreateGoal(ctx context.Context, menteeID uuid.UUID, in GoalInput) (mentorship.Goal, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" || in.TotalTasks <= 0 {
		return mentorship.Goal{}, ErrInvalidInput
	}

	g := mentorship.Goal{
		ID:         uuid.New(),
		MenteeID:   menteeID,
		Title:      title,
		TotalTasks: in.TotalTasks,
	}
	if in.DueDate != nil {
		due, err := parseDueDate(*in.DueDate)
		if err != nil {
			return mentorship.Goal{}, ErrInvalidInput
		}
		g.DueDate = &due
	}

	if err := u.repo.CreateGoal(ctx, g); err != nil {
		return mentorship.Goal{}, ErrInternal
	}
	return g, nil
}

func (u *Mentorship) UpdateGoalProgress(ctx context.Context, menteeID, goalID uuid.UUID, completedTasks int) error {
	if completedTasks < 0 {
		return ErrInvalidInput
	}

	err := u.repo.UpdateGoalProgress(ctx, goalID, menteeID, completedTasks)
	if err != nil {
		if errors.Is(err, repository.ErrGoalNotFound) {
			return ErrNotFound
		}
		return ErrInternal
	}
	return nil
}

func parseDueDate(s string) (time.Time, error) {
	return time.Parse("2006-01-02", strings.TrimSpace(s))
}

var _ MentorshipUsecase = (*Mentorship)(nil)
