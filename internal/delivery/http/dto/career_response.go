package dto

import (
	"career-compass/internal/domain/career"
	"career-compass/internal/usecase"
)

type PathRecommendationResponse struct {
	Key       string   `json:"key"`
	Name      string   `json:"name"`
	Score     float64  `json:"score"`
	Rationale string   `json:"rationale"`
	Outcomes  []string `json:"outcomes"`
}

type RoadmapWeekResponse struct {
	Week     int      `json:"week"`
	Goal     string   `json:"goal"`
	Skills   []string `json:"skills"`
	Outcomes []string `json:"outcomes"`
}

type RoadmapPhaseResponse struct {
	Name  string                `json:"name"`
	Weeks []RoadmapWeekResponse `json:"weeks"`
}

type RoadmapResponse struct {
	PathName       string                 `json:"path_name"`
	Duration       string                 `json:"duration"`
	TimeCommitment string                 `json:"time_commitment"`
	StartDate      string                 `json:"start_date"`
	EndDate        string                 `json:"end_date"`
	Phases         []RoadmapPhaseResponse `json:"phases"`
	CurrentWeek    struct {
		Week  int    `json:"week"`
		Phase string `json:"phase"`
		Focus string `json:"focus"`
	} `json:"current_week"`
}

type AssessmentResponse struct {
	Summary   string                     `json:"summary"`
	Primary   PathRecommendationResponse `json:"primary"`
	Secondary PathRecommendationResponse `json:"secondary"`
	Roadmap   RoadmapResponse            `json:"roadmap"`
}

func NewAssessmentResponse(r usecase.AssessmentResult) AssessmentResponse {
	return AssessmentResponse{
		Summary:   r.Summary,
		Primary:   newPathRecommendation(r.Primary),
		Secondary: newPathRecommendation(r.Secondary),
		Roadmap:   NewRoadmapResponse(r.Roadmap),
	}
}

func newPathRecommendation(p career.PathRecommendation) PathRecommendationResponse {
	outcomes := p.Outcomes
	if outcomes == nil {
		outcomes = []string{}
	}
	return PathRecommendationResponse{
		Key:       p.Key,
		Name:      p.Name,
		Score:     p.Score,
		Rationale: p.Rationale,
		Outcomes:  outcomes,
	}
}

func NewRoadmapResponse(plan career.Plan) RoadmapResponse {
	phases := make([]RoadmapPhaseResponse, 0, len(plan.Phases))
	for _, ph := range plan.Phases {
		weeks := make([]RoadmapWeekResponse, 0, len(ph.Weeks))
		for _, w := range ph.Weeks {
			weeks = append(weeks, RoadmapWeekResponse{
				Week:     w.Week,
				Goal:     w.Goal,
				Skills:   w.Skills,
				Outcomes: w.Outcomes,
			})
		}
		phases = append(phases, RoadmapPhaseResponse{Name: ph.Name, Weeks: weeks})
	}

	res := RoadmapResponse{
		PathName:       plan.PathName,
		Duration:       plan.Duration,
		TimeCommitment: plan.TimeCommitment,
		StartDate:      plan.StartDate,
		EndDate:        plan.EndDate,
		Phases:         phases,
	}
	res.CurrentWeek.Week = plan.CurrentWeek.Week
	res.CurrentWeek.Phase = plan.CurrentWeek.Phase
	res.CurrentWeek.Focus = plan.CurrentWeek.Focus
	return res
}
