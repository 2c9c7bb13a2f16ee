package dto

import (
	"time"

	"career-compass/internal/domain/profile"
)

type SavedCourseRequest struct {
	ID        string `json:"id"`
	Kind      string `json:"kind"`
	Title     string `json:"title"`
	Thumbnail string `json:"thumbnail"`
	URL       string `json:"url"`
}

type SavedCourseResponse struct {
	ID        string    `json:"id"`
	Kind      string    `json:"kind"`
	Title     string    `json:"title"`
	Thumbnail string    `json:"thumbnail"`
	URL       string    `json:"url"`
	SavedAt   time.Time `json:"saved_at"`
}

func (r SavedCourseRequest) ToSavedItem() profile.SavedItem {
	return profile.SavedItem{
		ExternalID: r.ID,
		Kind:       r.Kind,
		Title:      r.Title,
		Thumbnail:  r.Thumbnail,
		URL:        r.URL,
	}
}

func NewSavedCourseResponses(items []profile.SavedItem) []SavedCourseResponse {
	out := make([]SavedCourseResponse, 0, len(items))
	for _, it := range items {
		out = append(out, SavedCourseResponse{
			ID:        it.ExternalID,
			Kind:      it.Kind,
			Title:     it.Title,
			Thumbnail: it.Thumbnail,
			URL:       it.URL,
			SavedAt:   it.SavedAt,
		})
	}
	return out
}
