package usecase

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"

	"career-compass/internal/domain/career"
	"career-compass/internal/domain/profile"
)

type AssessmentInput struct {
	Answers     []int
	Constraints career.Constraints
}

type AssessmentResult struct {
	Summary   string
	Primary   career.PathRecommendation
	Secondary career.PathRecommendation
	Roadmap   career.Plan
}

type CareerUsecase interface {
	Assess(ctx context.Context, userID uuid.UUID, in AssessmentInput) (AssessmentResult, error)
	RoadmapFor(ctx context.Context, pathKey string, timePerWeek int) (career.Plan, error)
}

// Career runs the questionnaire-based path assessment and records the
// primary pick as the user's career interest.
type Career struct {
	profiles profile.Store
	logger   *log.Logger
	now      func() time.Time
}

func NewCareerUsecase(profiles profile.Store, logger *log.Logger) *Career {
	return &Career{profiles: profiles, logger: logger, now: time.Now}
}

func (u *Career) Assess(ctx context.Context, userID uuid.UUID, in AssessmentInput) (AssessmentResult, error) {
	d, err := career.Diagnose(in.Answers, in.Constraints)
	if err != nil {
		if errors.Is(err, career.ErrBadQuestionnaire) {
			return AssessmentResult{}, ErrInvalidInput
		}
		return AssessmentResult{}, ErrInternal
	}

	primary, secondary := career.Recommend(d)

	plan, err := career.Roadmap(primary.Key, in.Constraints.TimePerWeek, u.now())
	if err != nil {
		return AssessmentResult{}, ErrInternal
	}

	// The assessment outcome becomes the stored career interest. A failed
	// write does not invalidate the result the user just earned.
	if u.profiles != nil && userID != uuid.Nil {
		fields := map[string]any{
			"careerInterest": primary.Name,
			"updatedAt":      u.now().UTC(),
		}
		if err := u.profiles.Merge(ctx, userID, fields); err != nil && u.logger != nil {
			u.logger.Printf("[Career] Interest write failed user=%s err=%v", userID, err)
		}
	}

	return AssessmentResult{
		Summary:   d.Summary,
		Primary:   primary,
		Secondary: secondary,
		Roadmap:   plan,
	}, nil
}

func (u *Career) RoadmapFor(ctx context.Context, pathKey string, timePerWeek int) (career.Plan, error) {
	if timePerWeek <= 0 {
		return career.Plan{}, ErrInvalidInput
	}
	plan, err := career.Roadmap(pathKey, timePerWeek, u.now())
	if err != nil {
		return career.Plan{}, ErrInvalidInput
	}
	return plan, nil
}

var _ CareerUsecase = (*Career)(nil)
