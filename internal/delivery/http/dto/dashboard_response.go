package dto

import "career-compass/internal/usecase"

type DashboardSummaryResponse struct {
	Greeting    string `json:"greeting"`
	Completion  int    `json:"completion"`
	SkillsCount int    `json:"skills_count"`
	SkillsGoal  int    `json:"skills_goal"`
	SavedCount  int    `json:"saved_count"`
	SavedGoal   int    `json:"saved_goal"`
}

func NewDashboardSummaryResponse(s usecase.DashboardSummary) DashboardSummaryResponse {
	return DashboardSummaryResponse(s)
}
