package usecase

import (
	"context"
	"strings"

	"career-compass/internal/domain/job"
	"career-compass/internal/repository"
)

// jobPageSize matches the board's show-more step: six cards per reveal.
const jobPageSize = 6

type JobBoardParams struct {
	Search         string
	Location       string
	EmploymentType string
	Experience     string
	Offset         int
}

type JobBoardPage struct {
	Listings []job.Listing
	Total    int
	HasMore  bool
}

type JobBoardUsecase interface {
	List(ctx context.Context, params JobBoardParams) (JobBoardPage, error)
}

type JobBoard struct {
	jobs repository.JobRepository
}

func NewJobBoardUsecase(jobs repository.JobRepository) *JobBoard {
	return &JobBoard{jobs: jobs}
}

func (u *JobBoard) List(ctx context.Context, params JobBoardParams) (JobBoardPage, error) {
	if params.Offset < 0 {
		return JobBoardPage{}, ErrInvalidInput
	}

	f := repository.JobListFilter{
		Search:         strings.TrimSpace(params.Search),
		Location:       strings.TrimSpace(params.Location),
		EmploymentType: strings.TrimSpace(params.EmploymentType),
		Experience:     strings.TrimSpace(params.Experience),
		Limit:          jobPageSize,
		Offset:         params.Offset,
	}

	listings, total, err := u.jobs.ListListings(ctx, f)
	if err != nil {
		return JobBoardPage{}, ErrInternal
	}

	return JobBoardPage{
		Listings: listings,
		Total:    total,
		HasMore:  params.Offset+len(listings) < total,
	}, nil
}

var _ JobBoardUsecase = (*JobBoard)(nil)
