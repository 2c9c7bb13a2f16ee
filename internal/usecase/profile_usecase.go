package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"career-compass/internal/domain/profile"
)

// ProfileView is a profile read plus its derived completion percent.
type ProfileView struct {
	Profile    profile.Profile
	Completion int
}

// UpdateProfileInput carries only the fields the caller wants to change.
// Nil pointers are left out of the merge write entirely, so they keep the
// stored value.
type UpdateProfileInput struct {
	Name           *string
	Age            *int
	City           *string
	Email          *string
	Education      *string
	CareerInterest *string
}

type ProfileUsecase interface {
	Get(ctx context.Context, userID uuid.UUID) (ProfileView, error)
	Update(ctx context.Context, userID uuid.UUID, in UpdateProfileInput) (ProfileView, error)
}

type Profile struct {
	store profile.Store
}

func NewProfileUsecase(store profile.Store) *Profile {
	return &Profile{store: store}
}

// Get loads the user's profile. A missing document reads as an empty
// profile with completion 0, never as an error.
func (u *Profile) Get(ctx context.Context, userID uuid.UUID) (ProfileView, error) {
	p, err := u.store.Load(ctx, userID)
	if err != nil {
		if errors.Is(err, profile.ErrNotFound) {
			return ProfileView{Profile: profile.Profile{}, Completion: 0}, nil
		}
		return ProfileView{}, ErrInternal
	}
	p = profile.Normalize(p)
	return ProfileView{Profile: p, Completion: profile.Completion(p)}, nil
}

func (u *Profile) Update(ctx context.Context, userID uuid.UUID, in UpdateProfileInput) (ProfileView, error) {
	fields, err := buildProfileFields(in)
	if err != nil {
		return ProfileView{}, err
	}
	if len(fields) == 0 {
		return ProfileView{}, ErrInvalidInput
	}
	fields["updatedAt"] = time.Now().UTC()

	if err := u.store.Merge(ctx, userID, fields); err != nil {
		return ProfileView{}, ErrInternal
	}
	return u.Get(ctx, userID)
}

func buildProfileFields(in UpdateProfileInput) (map[string]any, error) {
	fields := make(map[string]any)

	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, ErrInvalidInput
		}
		fields["name"] = name
	}
	if in.Age != nil {
		if *in.Age < 13 || *in.Age > 120 {
			return nil, ErrInvalidInput
		}
		fields["age"] = *in.Age
	}
	if in.City != nil {
		fields["city"] = strings.TrimSpace(*in.City)
	}
	if in.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*in.Email))
		if email == "" || !strings.Contains(email, "@") {
			return nil, ErrInvalidInput
		}
		fields["email"] = email
	}
	if in.Education != nil {
		fields["education"] = strings.TrimSpace(*in.Education)
	}
	if in.CareerInterest != nil {
		fields["careerInterest"] = strings.TrimSpace(*in.CareerInterest)
	}

	return fields, nil
}

var _ ProfileUsecase = (*Profile)(nil)
