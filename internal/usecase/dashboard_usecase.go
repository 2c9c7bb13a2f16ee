package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"career-compass/internal/domain/profile"
)

// Dashboard progress goals: the meters fill at ten skills and five saved
// courses.
const (
	skillsGoal = 10
	savedGoal  = 5
)

type DashboardSummary struct {
	Greeting    string
	Completion  int
	SkillsCount int
	SkillsGoal  int
	SavedCount  int
	SavedGoal   int
}

type DashboardUsecase interface {
	Summary(ctx context.Context, userID uuid.UUID) (DashboardSummary, error)
}

type Dashboard struct {
	store profile.Store
}

func NewDashboardUsecase(store profile.Store) *Dashboard {
	return &Dashboard{store: store}
}

// Summary renders the dashboard header numbers. A missing or unreachable
// profile falls back to the zero summary; the dashboard always loads.
func (u *Dashboard) Summary(ctx context.Context, userID uuid.UUID) (DashboardSummary, error) {
	p, err := u.store.Load(ctx, userID)
	if err != nil && !errors.Is(err, profile.ErrNotFound) && !errors.Is(err, profile.ErrUnavailable) {
		return DashboardSummary{}, ErrInternal
	}
	p = profile.Normalize(p)

	name := strings.TrimSpace(p.Name)
	greeting := "Welcome back!"
	if name != "" {
		greeting = "Welcome back, " + name + "!"
	}

	return DashboardSummary{
		Greeting:    greeting,
		Completion:  profile.Completion(p),
		SkillsCount: len(p.Skills),
		SkillsGoal:  skillsGoal,
		SavedCount:  len(p.SavedCourses),
		SavedGoal:   savedGoal,
	}, nil
}

var _ DashboardUsecase = (*Dashboard)(nil)
