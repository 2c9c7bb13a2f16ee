package usecase

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/google/uuid"

	"career-compass/internal/domain/profile"
)

func TestSkillSetAddAndList(t *testing.T) {
	store := newMockProfileStore()
	uc := NewSkillSetUsecase(store, nil)
	userID := uuid.New()

	got, err := uc.Add(context.Background(), userID, "React")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(got, []string{"React"}) {
		t.Fatalf("unexpected skills %v", got)
	}

	if _, err := uc.Add(context.Background(), userID, "SQL"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err = uc.List(context.Background(), userID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(got, []string{"React", "SQL"}) {
		t.Fatalf("expected insertion order, got %v", got)
	}
}

func TestSkillSetAddDuplicateSkipsWrite(t *testing.T) {
	store := newMockProfileStore()
	uc := NewSkillSetUsecase(store, nil)
	userID := uuid.New()

	if _, err := uc.Add(context.Background(), userID, "React"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	writes := len(store.merges)

	got, err := uc.Add(context.Background(), userID, "React")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(store.merges) != writes {
		t.Fatalf("duplicate add must not write, got %d merges", len(store.merges))
	}
	if !reflect.DeepEqual(got, []string{"React"}) {
		t.Fatalf("unexpected skills %v", got)
	}
}

func TestSkillSetRemoveAbsentSkipsWrite(t *testing.T) {
	store := newMockProfileStore()
	uc := NewSkillSetUsecase(store, nil)
	userID := uuid.New()

	got, err := uc.Remove(context.Background(), userID, "ghost")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("unexpected skills %v", got)
	}
	if len(store.merges) != 0 {
		t.Fatalf("removing an absent skill must not write")
	}
}

func TestSkillSetMissingProfileListsEmpty(t *testing.T) {
	uc := NewSkillSetUsecase(newMockProfileStore(), nil)

	got, err := uc.List(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty list, got %v", got)
	}
}

func TestSkillSetCommitFailure(t *testing.T) {
	store := newMockProfileStore()
	store.mergeErr = errors.New("db down")
	uc := NewSkillSetUsecase(store, nil)

	if _, err := uc.Add(context.Background(), uuid.New(), "React"); !errors.Is(err, ErrInternal) {
		t.Fatalf("expected ErrInternal, got %v", err)
	}
}

func TestSkillSetPreservesOtherProfileFields(t *testing.T) {
	store := newMockProfileStore()
	userID := uuid.New()
	store.profiles[userID] = profile.Profile{Name: "Asha", City: "Pune"}

	uc := NewSkillSetUsecase(store, nil)
	if _, err := uc.Add(context.Background(), userID, "SQL"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	p := store.profiles[userID]
	if p.Name != "Asha" || p.City != "Pune" {
		t.Fatalf("merge write must not clobber other fields, got %+v", p)
	}
	if !reflect.DeepEqual(p.Skills, []string{"SQL"}) {
		t.Fatalf("unexpected skills %v", p.Skills)
	}
}

func TestSkillSetNotifierFiresOnCommit(t *testing.T) {
	store := newMockProfileStore()
	notifier := &mockNotifier{}
	uc := NewSkillSetUsecase(store, notifier)
	userID := uuid.New()

	if _, err := uc.Add(context.Background(), userID, "React"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(notifier.events) != 1 || notifier.events[0].event != EventSkillsUpdated {
		t.Fatalf("unexpected events %+v", notifier.events)
	}
}
