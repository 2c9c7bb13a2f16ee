package usecase

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"
)

func normalizeCacheValue(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	s = strings.Join(strings.Fields(s), " ")
	return s
}

// RecommendationsCacheKey derives a stable key from the skill list. Skill
// order matters for result order, so it is part of the key, but casing and
// stray whitespace are not.
func RecommendationsCacheKey(skills []string) string {
	norm := make([]string, 0, len(skills))
	for _, s := range skills {
		s = normalizeCacheValue(s)
		if s == "" {
			continue
		}
		norm = append(norm, s)
	}

	b, _ := json.Marshal(norm)
	sum := sha256.Sum256(b)
	return "recommendations:" + hex.EncodeToString(sum[:])
}
