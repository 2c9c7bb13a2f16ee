package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"career-compass/internal/domain/profile"
)

// mockProfileStore applies merge writes the way the real JSONB store
// does: named fields replace, everything else survives.
type mockProfileStore struct {
	profiles map[uuid.UUID]profile.Profile
	loadErr  error
	mergeErr error
	merges   []map[string]any
}

func newMockProfileStore() *mockProfileStore {
	return &mockProfileStore{profiles: make(map[uuid.UUID]profile.Profile)}
}

func (m *mockProfileStore) Load(_ context.Context, userID uuid.UUID) (profile.Profile, error) {
	if m.loadErr != nil {
		return profile.Profile{}, m.loadErr
	}
	p, ok := m.profiles[userID]
	if !ok {
		return profile.Profile{}, profile.ErrNotFound
	}
	return p, nil
}

func (m *mockProfileStore) Merge(_ context.Context, userID uuid.UUID, fields map[string]any) error {
	if m.mergeErr != nil {
		return m.mergeErr
	}
	m.merges = append(m.merges, fields)

	p := m.profiles[userID]
	for k, v := range fields {
		switch k {
		case "name":
			p.Name, _ = v.(string)
		case "age":
			p.Age, _ = v.(int)
		case "city":
			p.City, _ = v.(string)
		case "email":
			p.Email, _ = v.(string)
		case "education":
			p.Education, _ = v.(string)
		case "careerInterest":
			p.CareerInterest, _ = v.(string)
		case "skills":
			p.Skills, _ = v.([]string)
		case "savedCourses":
			p.SavedCourses, _ = v.([]profile.SavedItem)
		case "updatedAt":
			p.UpdatedAt, _ = v.(time.Time)
		}
	}
	m.profiles[userID] = p
	return nil
}

var _ profile.Store = (*mockProfileStore)(nil)
