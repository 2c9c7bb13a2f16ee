package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"career-compass/internal/domain/profile"
	"career-compass/internal/domain/skillset"
)

type SkillSetUsecase interface {
	List(ctx context.Context, userID uuid.UUID) ([]string, error)
	Add(ctx context.Context, userID uuid.UUID, skill string) ([]string, error)
	Remove(ctx context.Context, userID uuid.UUID, skill string) ([]string, error)
}

// SkillSet edits the user's skill list. Every call loads the stored list,
// mutates a local snapshot and commits the whole array back in one merge
// write. A failed commit leaves the stored list untouched.
type SkillSet struct {
	store    profile.Store
	notifier Notifier
}

func NewSkillSetUsecase(store profile.Store, notifier Notifier) *SkillSet {
	return &SkillSet{store: store, notifier: notifier}
}

func (u *SkillSet) List(ctx context.Context, userID uuid.UUID) ([]string, error) {
	set, err := u.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	return set.List(), nil
}

func (u *SkillSet) Add(ctx context.Context, userID uuid.UUID, skill string) ([]string, error) {
	set, err := u.load(ctx, userID)
	if err != nil {
		return nil, err
	}

	before := set.Len()
	set.Add(skill)
	if set.Len() == before {
		// Empty or duplicate input; nothing changed, nothing to write.
		return set.List(), nil
	}

	return u.commit(ctx, userID, set)
}

func (u *SkillSet) Remove(ctx context.Context, userID uuid.UUID, skill string) ([]string, error) {
	set, err := u.load(ctx, userID)
	if err != nil {
		return nil, err
	}

	before := set.Len()
	set.Remove(skill)
	if set.Len() == before {
		return set.List(), nil
	}

	return u.commit(ctx, userID, set)
}

func (u *SkillSet) load(ctx context.Context, userID uuid.UUID) (*skillset.SkillSet, error) {
	p, err := u.store.Load(ctx, userID)
	if err != nil {
		if errors.Is(err, profile.ErrNotFound) {
			return skillset.New(nil), nil
		}
		return nil, ErrInternal
	}
	return skillset.New(p.Skills), nil
}

func (u *SkillSet) commit(ctx context.Context, userID uuid.UUID, set *skillset.SkillSet) ([]string, error) {
	skills := set.List()
	fields := map[string]any{
		"skills":    skills,
		"updatedAt": time.Now().UTC(),
	}
	if err := u.store.Merge(ctx, userID, fields); err != nil {
		return nil, ErrInternal
	}

	if u.notifier != nil {
		u.notifier.Publish(userID, EventSkillsUpdated, map[string]any{"skills": skills})
	}
	return skills, nil
}

var _ SkillSetUsecase = (*SkillSet)(nil)
