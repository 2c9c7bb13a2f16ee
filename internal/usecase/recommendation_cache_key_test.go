package usecase

import (
	"strings"
	"testing"
)

func TestRecommendationsCacheKeyStable(t *testing.T) {
	a := RecommendationsCacheKey([]string{"React", "SQL"})
	b := RecommendationsCacheKey([]string{"React", "SQL"})
	if a != b {
		t.Fatalf("same input must hash to the same key: %s vs %s", a, b)
	}
	if !strings.HasPrefix(a, "recommendations:") {
		t.Fatalf("unexpected key prefix: %s", a)
	}
}

func TestRecommendationsCacheKeyIgnoresCaseAndSpacing(t *testing.T) {
	a := RecommendationsCacheKey([]string{"React", "SQL"})
	b := RecommendationsCacheKey([]string{"  react ", "sql"})
	c := RecommendationsCacheKey([]string{"re act", "sql"})
	if a != b {
		t.Fatalf("casing and padding must not change the key")
	}
	if a == c {
		t.Fatalf("different skills must not collide")
	}
}

func TestRecommendationsCacheKeyOrderSensitive(t *testing.T) {
	a := RecommendationsCacheKey([]string{"React", "SQL"})
	b := RecommendationsCacheKey([]string{"SQL", "React"})
	if a == b {
		t.Fatalf("skill order is part of the key")
	}
}

func TestRecommendationsCacheKeyDropsEmptyEntries(t *testing.T) {
	a := RecommendationsCacheKey([]string{"React", "   ", ""})
	b := RecommendationsCacheKey([]string{"React"})
	if a != b {
		t.Fatalf("blank entries must not change the key")
	}
}

func TestRecommendationsCacheKeyCollapsesInnerWhitespace(t *testing.T) {
	a := RecommendationsCacheKey([]string{"machine  learning"})
	b := RecommendationsCacheKey([]string{"machine learning"})
	if a != b {
		t.Fatalf("runs of whitespace must collapse before hashing")
	}
}
