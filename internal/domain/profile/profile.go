package profile

import (
	"strings"
	"time"
)

// Profile is the per-user document kept in the profile store. Field names
// mirror the stored JSON document, which is always written as a merge:
// fields absent from a write keep their stored value.
type Profile struct {
	Name           string      `json:"name,omitempty"`
	Age            int         `json:"age,omitempty"`
	City           string      `json:"city,omitempty"`
	Email          string      `json:"email,omitempty"`
	Skills         []string    `json:"skills,omitempty"`
	Education      string      `json:"education,omitempty"`
	CareerInterest string      `json:"careerInterest,omitempty"`
	SavedCourses   []SavedItem `json:"savedCourses,omitempty"`
	UpdatedAt      time.Time   `json:"updatedAt,omitempty"`
}

// SavedItem is a recommendation promoted to the user's saved list. Identity
// is the external id alone, not the full record.
type SavedItem struct {
	ExternalID string    `json:"id"`
	Kind       string    `json:"kind"`
	Title      string    `json:"title"`
	Thumbnail  string    `json:"thumbnail"`
	URL        string    `json:"url"`
	SavedAt    time.Time `json:"savedAt"`
}

// Completion weights. The skills entry counts when the list is non-empty.
const (
	weightName   = 25
	weightEmail  = 10
	weightCity   = 25
	weightSkills = 40
)

// Completion returns the profile completion percent in [0, 100].
func Completion(p Profile) int {
	pct := 0
	if strings.TrimSpace(p.Name) != "" {
		pct += weightName
	}
	if strings.TrimSpace(p.Email) != "" {
		pct += weightEmail
	}
	if strings.TrimSpace(p.City) != "" {
		pct += weightCity
	}
	if len(p.Skills) > 0 {
		pct += weightSkills
	}
	return pct
}

// Normalize coerces a document read from the store into a well-formed
// profile: skills are trimmed, de-duplicated (case-sensitive) and cleared of
// empty entries; saved courses keep the first record per external id.
func Normalize(p Profile) Profile {
	if len(p.Skills) > 0 {
		seen := make(map[string]struct{}, len(p.Skills))
		skills := make([]string, 0, len(p.Skills))
		for _, s := range p.Skills {
			s = strings.TrimSpace(s)
			if s == "" {
				continue
			}
			if _, ok := seen[s]; ok {
				continue
			}
			seen[s] = struct{}{}
			skills = append(skills, s)
		}
		p.Skills = skills
	}

	if len(p.SavedCourses) > 0 {
		seen := make(map[string]struct{}, len(p.SavedCourses))
		items := make([]SavedItem, 0, len(p.SavedCourses))
		for _, it := range p.SavedCourses {
			if strings.TrimSpace(it.ExternalID) == "" {
				continue
			}
			if _, ok := seen[it.ExternalID]; ok {
				continue
			}
			seen[it.ExternalID] = struct{}{}
			items = append(items, it)
		}
		p.SavedCourses = items
	}

	return p
}
