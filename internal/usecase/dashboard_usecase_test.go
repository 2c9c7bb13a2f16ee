package usecase

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"career-compass/internal/domain/profile"
)

func TestDashboardSummary(t *testing.T) {
	store := newMockProfileStore()
	userID := uuid.New()
	store.profiles[userID] = profile.Profile{
		Name:   "Asha",
		City:   "Pune",
		Email:  "asha@example.com",
		Skills: []string{"React", "SQL"},
		SavedCourses: []profile.SavedItem{
			{ExternalID: "a"},
			{ExternalID: "b"},
			{ExternalID: "c"},
		},
	}

	uc := NewDashboardUsecase(store)
	got, err := uc.Summary(context.Background(), userID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got.Greeting != "Welcome back, Asha!" {
		t.Fatalf("unexpected greeting %q", got.Greeting)
	}
	if got.Completion != 100 {
		t.Fatalf("expected completion 100, got %d", got.Completion)
	}
	if got.SkillsCount != 2 || got.SkillsGoal != 10 {
		t.Fatalf("unexpected skills meter %d/%d", got.SkillsCount, got.SkillsGoal)
	}
	if got.SavedCount != 3 || got.SavedGoal != 5 {
		t.Fatalf("unexpected saved meter %d/%d", got.SavedCount, got.SavedGoal)
	}
}

func TestDashboardSummaryMissingProfile(t *testing.T) {
	uc := NewDashboardUsecase(newMockProfileStore())

	got, err := uc.Summary(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Greeting != "Welcome back!" {
		t.Fatalf("unexpected greeting %q", got.Greeting)
	}
	if got.Completion != 0 || got.SkillsCount != 0 || got.SavedCount != 0 {
		t.Fatalf("expected zero summary, got %+v", got)
	}
}

func TestDashboardSummaryToleratesDegradedStore(t *testing.T) {
	store := newMockProfileStore()
	store.loadErr = profile.ErrUnavailable

	uc := NewDashboardUsecase(store)
	got, err := uc.Summary(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("dashboard must load through a degraded store: %v", err)
	}
	if got.SkillsGoal != 10 || got.SavedGoal != 5 {
		t.Fatalf("goals must still render, got %+v", got)
	}
}
