package dto

import "career-compass/internal/domain/profile"

type ProfileResponse struct {
	Name           string   `json:"name"`
	Age            int      `json:"age,omitempty"`
	City           string   `json:"city"`
	Email          string   `json:"email"`
	Skills         []string `json:"skills"`
	Education      string   `json:"education,omitempty"`
	CareerInterest string   `json:"career_interest,omitempty"`
	Completion     int      `json:"completion"`
}

func NewProfileResponse(p profile.Profile, completion int) ProfileResponse {
	skills := p.Skills
	if skills == nil {
		skills = []string{}
	}
	return ProfileResponse{
		Name:           p.Name,
		Age:            p.Age,
		City:           p.City,
		Email:          p.Email,
		Skills:         skills,
		Education:      p.Education,
		CareerInterest: p.CareerInterest,
		Completion:     completion,
	}
}
