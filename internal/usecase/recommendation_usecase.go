package usecase

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"

	"career-compass/internal/domain/profile"
	"career-compass/internal/domain/recommendation"
)

// maxResultsPerQuery bounds each provider query. Two picks per skill keeps
// the dashboard focused on the best matches.
const maxResultsPerQuery = 2

const recommendationCacheTTL = 15 * time.Minute

// SearchProvider is the external course search. Implemented by the
// YouTube client; mocked in tests.
type SearchProvider interface {
	Search(ctx context.Context, query string, kind recommendation.Kind, maxResults int) ([]recommendation.Item, error)
}

// RecommendationCache is the optional result cache. Both methods must be
// safe to call on a degraded backend.
type RecommendationCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
}

type RecommendationUsecase interface {
	Recommend(ctx context.Context, userID uuid.UUID) (recommendation.Buckets, error)
	RecommendForSkills(ctx context.Context, skills []string) (recommendation.Buckets, error)
}

type Recommendation struct {
	profiles profile.Store
	provider SearchProvider
	cache    RecommendationCache
	logger   *log.Logger
}

func NewRecommendationUsecase(profiles profile.Store, provider SearchProvider, cache RecommendationCache, logger *log.Logger) *Recommendation {
	return &Recommendation{profiles: profiles, provider: provider, cache: cache, logger: logger}
}

// Recommend builds course buckets for the user's stored skills.
func (u *Recommendation) Recommend(ctx context.Context, userID uuid.UUID) (recommendation.Buckets, error) {
	p, err := u.profiles.Load(ctx, userID)
	if err != nil && !errors.Is(err, profile.ErrNotFound) {
		return recommendation.Buckets{}, ErrInternal
	}
	return u.RecommendForSkills(ctx, profile.Normalize(p).Skills)
}

// RecommendForSkills aggregates provider results per skill, in skill
// order. For each skill it asks for playlists first; only a skill with
// zero playlists falls back to a video search. A failed query is logged
// and skipped so one bad skill never empties the whole dashboard.
func (u *Recommendation) RecommendForSkills(ctx context.Context, skills []string) (recommendation.Buckets, error) {
	if len(skills) == 0 {
		return recommendation.Buckets{}, nil
	}

	cacheKey := ""
	if u.cache != nil {
		cacheKey = RecommendationsCacheKey(skills)
		var cached recommendation.Buckets
		hit, err := u.cache.GetJSON(ctx, cacheKey, &cached)
		if err == nil && hit {
			if u.logger != nil {
				u.logger.Printf("[Recommendations] Cache HIT: %s", cacheKey)
			}
			return cached, nil
		}
	}

	var out recommendation.Buckets
	for _, skill := range skills {
		playlists, err := u.provider.Search(ctx, skill+" playlist", recommendation.KindPlaylist, maxResultsPerQuery)
		if err != nil {
			if u.logger != nil {
				u.logger.Printf("[Recommendations] Playlist query failed skill=%q err=%v", skill, err)
			}
			continue
		}
		if len(playlists) > 0 {
			out.Playlists = append(out.Playlists, playlists...)
			continue
		}

		videos, err := u.provider.Search(ctx, skill+" tutorial", recommendation.KindVideo, maxResultsPerQuery)
		if err != nil {
			if u.logger != nil {
				u.logger.Printf("[Recommendations] Video query failed skill=%q err=%v", skill, err)
			}
			continue
		}
		out.Videos = append(out.Videos, videos...)
	}

	if u.cache != nil && cacheKey != "" && !out.Empty() {
		_ = u.cache.SetJSON(ctx, cacheKey, out, recommendationCacheTTL)
	}
	return out, nil
}

var _ RecommendationUsecase = (*Recommendation)(nil)
