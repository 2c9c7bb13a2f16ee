package dto

import (
	"time"

	"github.com/google/uuid"

	"career-compass/internal/domain/job"
)

type JobListingResponse struct {
	ID             uuid.UUID `json:"id"`
	Title          string    `json:"title"`
	Company        string    `json:"company"`
	Logo           string    `json:"logo"`
	Location       string    `json:"location"`
	EmploymentType string    `json:"employment_type"`
	Experience     string    `json:"experience"`
	Salary         string    `json:"salary"`
	Description    string    `json:"description"`
	Skills         []string  `json:"skills"`
	PostedAt       time.Time `json:"posted_at"`
}

type JobBoardResponse struct {
	Listings []JobListingResponse `json:"listings"`
	Total    int                  `json:"total"`
	HasMore  bool                 `json:"has_more"`
}

func NewJobBoardResponse(listings []job.Listing, total int, hasMore bool) JobBoardResponse {
	out := make([]JobListingResponse, 0, len(listings))
	for _, l := range listings {
		skills := l.Skills
		if skills == nil {
			skills = []string{}
		}
		out = append(out, JobListingResponse{
			ID:             l.ID,
			Title:          l.Title,
			Company:        l.Company,
			Logo:           l.Logo,
			Location:       l.Location,
			EmploymentType: l.EmploymentType,
			Experience:     l.Experience,
			Salary:         l.Salary,
			Description:    l.Description,
			Skills:         skills,
			PostedAt:       l.PostedAt,
		})
	}
	return JobBoardResponse{Listings: out, Total: total, HasMore: hasMore}
}
