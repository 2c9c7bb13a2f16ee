package dto

import "career-compass/internal/domain/recommendation"

type RecommendationItem struct {
	ID        string `json:"id"`
	Kind      string `json:"kind"`
	Title     string `json:"title"`
	Thumbnail string `json:"thumbnail"`
	URL       string `json:"url"`
}

// RecommendationSection is one named bucket with its show-more split
// already applied: Visible renders immediately, Revealable behind the
// toggle.
type RecommendationSection struct {
	Visible    []RecommendationItem `json:"visible"`
	Revealable []RecommendationItem `json:"revealable"`
	Total      int                  `json:"total"`
}

type RecommendationsResponse struct {
	Playlists RecommendationSection `json:"playlists"`
	Videos    RecommendationSection `json:"videos"`
	Empty     bool                  `json:"empty"`
}

func NewRecommendationsResponse(b recommendation.Buckets) RecommendationsResponse {
	return RecommendationsResponse{
		Playlists: newSection(b.Playlists),
		Videos:    newSection(b.Videos),
		Empty:     b.Empty(),
	}
}

func newSection(items []recommendation.Item) RecommendationSection {
	proj := recommendation.Project(items)
	return RecommendationSection{
		Visible:    newItems(proj.Visible),
		Revealable: newItems(proj.Revealable),
		Total:      len(items),
	}
}

func newItems(items []recommendation.Item) []RecommendationItem {
	out := make([]RecommendationItem, 0, len(items))
	for _, it := range items {
		out = append(out, RecommendationItem{
			ID:        it.ExternalID,
			Kind:      string(it.Kind),
			Title:     it.Title,
			Thumbnail: it.ThumbnailURL,
			URL:       it.CanonicalURL,
		})
	}
	return out
}
