package skillset

import "strings"

// SkillSet is the session-owned, ordered list of unique skill names. All
// mutations are local; nothing is persisted until the owner commits the
// snapshot to the profile store.
type SkillSet struct {
	skills []string
}

func New(skills []string) *SkillSet {
	s := &SkillSet{}
	for _, sk := range skills {
		s.Add(sk)
	}
	return s
}

// Add trims the input and appends it. Empty and already-present entries
// (case-sensitive exact match) are silently ignored.
func (s *SkillSet) Add(skill string) {
	skill = strings.TrimSpace(skill)
	if skill == "" {
		return
	}
	for _, existing := range s.skills {
		if existing == skill {
			return
		}
	}
	s.skills = append(s.skills, skill)
}

// Remove drops every exact match of skill. Absent entries are a no-op.
func (s *SkillSet) Remove(skill string) {
	out := s.skills[:0]
	for _, existing := range s.skills {
		if existing != skill {
			out = append(out, existing)
		}
	}
	s.skills = out
}

// List returns a snapshot copy in insertion order.
func (s *SkillSet) List() []string {
	out := make([]string, len(s.skills))
	copy(out, s.skills)
	return out
}

func (s *SkillSet) Len() int {
	return len(s.skills)
}
