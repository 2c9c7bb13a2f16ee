package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"career-compass/internal/domain/mentorship"
	"career-compass/internal/repository"
)

type mockMentorshipRepo struct {
	mentors  map[uuid.UUID]mentorship.Mentor
	requests []mentorship.Request
	goals    []mentorship.Goal
	failAll  bool
}

func newMockMentorshipRepo() *mockMentorshipRepo {
	return &mockMentorshipRepo{mentors: make(map[uuid.UUID]mentorship.Mentor)}
}

var errRepoDown = errors.New("db down")

func (m *mockMentorshipRepo) ListMentors(context.Context) ([]mentorship.Mentor, error) {
	if m.failAll {
		return nil, errRepoDown
	}
	out := make([]mentorship.Mentor, 0, len(m.mentors))
	for _, mentor := range m.mentors {
		out = append(out, mentor)
	}
	return out, nil
}

func (m *mockMentorshipRepo) GetMentor(_ context.Context, userID uuid.UUID) (mentorship.Mentor, error) {
	if m.failAll {
		return mentorship.Mentor{}, errRepoDown
	}
	mentor, ok := m.mentors[userID]
	if !ok {
		return mentorship.Mentor{}, repository.ErrMentorNotFound
	}
	return mentor, nil
}

func (m *mockMentorshipRepo) UpsertMentor(_ context.Context, mentor mentorship.Mentor) error {
	m.mentors[mentor.UserID] = mentor
	return nil
}

func (m *mockMentorshipRepo) CreateRequest(_ context.Context, req mentorship.Request) error {
	if m.failAll {
		return errRepoDown
	}
	m.requests = append(m.requests, req)
	return nil
}

func (m *mockMentorshipRepo) FindRequest(_ context.Context, menteeID, mentorID uuid.UUID) (mentorship.Request, error) {
	if m.failAll {
		return mentorship.Request{}, errRepoDown
	}
	for _, r := range m.requests {
		if r.MenteeID == menteeID && r.MentorID == mentorID {
			return r, nil
		}
	}
	return mentorship.Request{}, repository.ErrRequestNotFound
}

func (m *mockMentorshipRepo) ListRequestsForMentor(_ context.Context, mentorID uuid.UUID) ([]mentorship.Request, error) {
	if m.failAll {
		return nil, errRepoDown
	}
	var out []mentorship.Request
	for _, r := range m.requests {
		if r.MentorID == mentorID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *mockMentorshipRepo) UpdateRequestStatus(_ context.Context, id uuid.UUID, status string) error {
	if m.failAll {
		return errRepoDown
	}
	for i := range m.requests {
		if m.requests[i].ID == id {
			m.requests[i].Status = status
			return nil
		}
	}
	return repository.ErrRequestNotFound
}

func (m *mockMentorshipRepo) ListGoals(_ context.Context, menteeID uuid.UUID) ([]mentorship.Goal, error) {
	if m.failAll {
		return nil, errRepoDown
	}
	var out []mentorship.Goal
	for _, g := range m.goals {
		if g.MenteeID == menteeID {
			out = append(out, g)
		}
	}
	return out, nil
}

func (m *mockMentorshipRepo) CreateGoal(_ context.Context, g mentorship.Goal) error {
	if m.failAll {
		return errRepoDown
	}
	m.goals = append(m.goals, g)
	return nil
}

func (m *mockMentorshipRepo) UpdateGoalProgress(_ context.Context, id uuid.UUID, menteeID uuid.UUID, completedTasks int) error {
	if m.failAll {
		return errRepoDown
	}
	for i := range m.goals {
		if m.goals[i].ID == id && m.goals[i].MenteeID == menteeID {
			m.goals[i].CompletedTasks = completedTasks
			return nil
		}
	}
	return repository.ErrGoalNotFound
}

var _ repository.MentorshipRepository = (*mockMentorshipRepo)(nil)

func seedMentor(repo *mockMentorshipRepo) uuid.UUID {
	id := uuid.New()
	repo.mentors[id] = mentorship.Mentor{UserID: id, Name: "Ananya"}
	return id
}

func TestRequestMentorshipCreatesPending(t *testing.T) {
	repo := newMockMentorshipRepo()
	mentorID := seedMentor(repo)
	uc := NewMentorshipUsecase(repo)
	menteeID := uuid.New()

	req, err := uc.RequestMentorship(context.Background(), menteeID, mentorID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.Status != mentorship.RequestPending {
		t.Fatalf("expected pending, got %q", req.Status)
	}
	if req.MenteeID != menteeID || req.MentorID != mentorID {
		t.Fatalf("unexpected request %+v", req)
	}
}

func TestRequestMentorshipRejectsSelf(t *testing.T) {
	repo := newMockMentorshipRepo()
	uc := NewMentorshipUsecase(repo)
	id := uuid.New()

	if _, err := uc.RequestMentorship(context.Background(), id, id); !errors.Is(err, ErrSelfMentorship) {
		t.Fatalf("expected ErrSelfMentorship, got %v", err)
	}
}

func TestRequestMentorshipUnknownMentor(t *testing.T) {
	uc := NewMentorshipUsecase(newMockMentorshipRepo())

	if _, err := uc.RequestMentorship(context.Background(), uuid.New(), uuid.New()); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRequestMentorshipDuplicatePending(t *testing.T) {
	repo := newMockMentorshipRepo()
	mentorID := seedMentor(repo)
	uc := NewMentorshipUsecase(repo)
	menteeID := uuid.New()

	if _, err := uc.RequestMentorship(context.Background(), menteeID, mentorID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := uc.RequestMentorship(context.Background(), menteeID, mentorID); !errors.Is(err, ErrAlreadyRequested) {
		t.Fatalf("expected ErrAlreadyRequested, got %v", err)
	}
}

func TestRequestMentorshipReopensDeclined(t *testing.T) {
	repo := newMockMentorshipRepo()
	mentorID := seedMentor(repo)
	uc := NewMentorshipUsecase(repo)
	menteeID := uuid.New()

	first, err := uc.RequestMentorship(context.Background(), menteeID, mentorID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := uc.RespondToRequest(context.Background(), mentorID, first.ID, false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	reopened, err := uc.RequestMentorship(context.Background(), menteeID, mentorID)
	if err != nil {
		t.Fatalf("a declined pair may try again: %v", err)
	}
	if reopened.ID != first.ID {
		t.Fatalf("expected the existing row reopened, got new id %s", reopened.ID)
	}
	if reopened.Status != mentorship.RequestPending {
		t.Fatalf("expected pending, got %q", reopened.Status)
	}
	if len(repo.requests) != 1 {
		t.Fatalf("expected one stored request, got %d", len(repo.requests))
	}
}

func TestRespondToRequestAccept(t *testing.T) {
	repo := newMockMentorshipRepo()
	mentorID := seedMentor(repo)
	uc := NewMentorshipUsecase(repo)

	req, err := uc.RequestMentorship(context.Background(), uuid.New(), mentorID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := uc.RespondToRequest(context.Background(), mentorID, req.ID, true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.requests[0].Status != mentorship.RequestAccepted {
		t.Fatalf("expected accepted, got %q", repo.requests[0].Status)
	}
}

func TestRespondToRequestOnlyPendingAndOwned(t *testing.T) {
	repo := newMockMentorshipRepo()
	mentorID := seedMentor(repo)
	uc := NewMentorshipUsecase(repo)

	req, err := uc.RequestMentorship(context.Background(), uuid.New(), mentorID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Another mentor cannot answer this request.
	if err := uc.RespondToRequest(context.Background(), uuid.New(), req.ID, true); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if err := uc.RespondToRequest(context.Background(), mentorID, req.ID, true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Answering twice is rejected.
	if err := uc.RespondToRequest(context.Background(), mentorID, req.ID, false); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestCreateGoalValidation(t *testing.T) {
	uc := NewMentorshipUsecase(newMockMentorshipRepo())
	ctx := context.Background()
	menteeID := uuid.New()

	if _, err := uc.CreateGoal(ctx, menteeID, GoalInput{Title: "  ", TotalTasks: 3}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for blank title, got %v", err)
	}
	if _, err := uc.CreateGoal(ctx, menteeID, GoalInput{Title: "Learn SQL", TotalTasks: 0}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for zero tasks, got %v", err)
	}
	bad := "31-12-2026"
	if _, err := uc.CreateGoal(ctx, menteeID, GoalInput{Title: "Learn SQL", TotalTasks: 3, DueDate: &bad}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for bad date, got %v", err)
	}
}

func TestGoalProgressFlow(t *testing.T) {
	repo := newMockMentorshipRepo()
	uc := NewMentorshipUsecase(repo)
	ctx := context.Background()
	menteeID := uuid.New()

	due := "2026-12-31"
	g, err := uc.CreateGoal(ctx, menteeID, GoalInput{Title: "Learn SQL", TotalTasks: 4, DueDate: &due})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g.DueDate == nil || g.DueDate.Format("2006-01-02") != due {
		t.Fatalf("unexpected due date %v", g.DueDate)
	}

	if err := uc.UpdateGoalProgress(ctx, menteeID, g.ID, 3); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	views, err := uc.ListGoals(ctx, menteeID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(views) != 1 || views[0].Progress != 75 {
		t.Fatalf("unexpected goal views %+v", views)
	}

	// A mentee cannot touch another mentee's goal.
	if err := uc.UpdateGoalProgress(ctx, uuid.New(), g.ID, 1); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := uc.UpdateGoalProgress(ctx, menteeID, g.ID, -1); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestMentorshipRepositoryFailure(t *testing.T) {
	repo := newMockMentorshipRepo()
	repo.failAll = true
	uc := NewMentorshipUsecase(repo)

	if _, err := uc.ListMentors(context.Background()); !errors.Is(err, ErrInternal) {
		t.Fatalf("expected ErrInternal, got %v", err)
	}
}
