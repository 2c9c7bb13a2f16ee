package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"career-compass/internal/domain/profile"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func TestProfileGetMissingReadsEmpty(t *testing.T) {
	uc := NewProfileUsecase(newMockProfileStore())

	view, err := uc.Get(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if view.Completion != 0 {
		t.Fatalf("expected completion 0, got %d", view.Completion)
	}
	if view.Profile.Name != "" || len(view.Profile.Skills) != 0 {
		t.Fatalf("expected empty profile, got %+v", view.Profile)
	}
}

func TestProfileUpdateMergesOnlySetFields(t *testing.T) {
	store := newMockProfileStore()
	userID := uuid.New()
	store.profiles[userID] = profile.Profile{Name: "Asha", City: "Pune", Email: "asha@example.com"}

	uc := NewProfileUsecase(store)
	view, err := uc.Update(context.Background(), userID, UpdateProfileInput{City: strPtr("Mumbai")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if view.Profile.City != "Mumbai" {
		t.Fatalf("city not updated: %+v", view.Profile)
	}
	if view.Profile.Name != "Asha" || view.Profile.Email != "asha@example.com" {
		t.Fatalf("unset fields must survive, got %+v", view.Profile)
	}

	if len(store.merges) != 1 {
		t.Fatalf("expected one merge write, got %d", len(store.merges))
	}
	fields := store.merges[0]
	if _, ok := fields["name"]; ok {
		t.Fatalf("nil input fields must not appear in the write: %v", fields)
	}
	if _, ok := fields["updatedAt"]; !ok {
		t.Fatalf("updatedAt must be stamped on every write: %v", fields)
	}
}

func TestProfileUpdateValidation(t *testing.T) {
	uc := NewProfileUsecase(newMockProfileStore())
	ctx := context.Background()
	userID := uuid.New()

	cases := []struct {
		name string
		in   UpdateProfileInput
	}{
		{"empty input", UpdateProfileInput{}},
		{"blank name", UpdateProfileInput{Name: strPtr("   ")}},
		{"age too low", UpdateProfileInput{Age: intPtr(12)}},
		{"age too high", UpdateProfileInput{Age: intPtr(121)}},
		{"bad email", UpdateProfileInput{Email: strPtr("not-an-email")}},
	}
	for _, tc := range cases {
		if _, err := uc.Update(ctx, userID, tc.in); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("%s: expected ErrInvalidInput, got %v", tc.name, err)
		}
	}
}

func TestProfileUpdateNormalizesEmail(t *testing.T) {
	store := newMockProfileStore()
	uc := NewProfileUsecase(store)
	userID := uuid.New()

	view, err := uc.Update(context.Background(), userID, UpdateProfileInput{Email: strPtr("  Asha@Example.COM ")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if view.Profile.Email != "asha@example.com" {
		t.Fatalf("expected lowercased trimmed email, got %q", view.Profile.Email)
	}
}

func TestProfileCompletionReflectsWrites(t *testing.T) {
	store := newMockProfileStore()
	uc := NewProfileUsecase(store)
	userID := uuid.New()

	view, err := uc.Update(context.Background(), userID, UpdateProfileInput{
		Name:  strPtr("Asha"),
		City:  strPtr("Pune"),
		Email: strPtr("asha@example.com"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// name 25 + city 25 + email 10, skills still missing.
	if view.Completion != 60 {
		t.Fatalf("expected completion 60, got %d", view.Completion)
	}
}
