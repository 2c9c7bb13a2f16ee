package repository

import (
	"context"

	"career-compass/internal/database"
	"career-compass/internal/domain/job"

	"github.com/google/uuid"
)

type JobListFilter struct {
	Search         string
	Location       string
	EmploymentType string
	Experience     string
	Limit          int
	Offset         int
}

type JobRepository interface {
	ListListings(ctx context.Context, f JobListFilter) ([]job.Listing, int, error)
	UpsertListings(ctx context.Context, listings []job.Listing) error
}

type PostgresJobRepository struct {
	db database.DB
}

func NewPostgresJobRepository(db database.DB) *PostgresJobRepository {
	return &PostgresJobRepository{db: db}
}

// ListListings returns one page of listings plus the total count of rows
// matching the filter, so callers can decide whether more can be revealed.
func (r *PostgresJobRepository) ListListings(ctx context.Context, f JobListFilter) ([]job.Listing, int, error) {
	where := `WHERE ($1 = ''
			OR title ILIKE '%' || $1 || '%'
			OR company ILIKE '%' || $1 || '%'
			OR EXISTS (SELECT 1 FROM unnest(skills) sk WHERE sk ILIKE '%' || $1 || '%'))
		AND ($2 = '' OR location = $2)
		AND ($3 = '' OR employment_type = $3)
		AND ($4 = '' OR experience = $4)`

	var total int
	row := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM jobs `+where,
		f.Search, f.Location, f.EmploymentType, f.Experience)
	if err := row.Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.db.Query(ctx,
		`SELECT id, title, company, logo, location, employment_type, experience,
			salary, description, skills, posted_at, created_at
		 FROM jobs `+where+`
		 ORDER BY posted_at DESC, id
		 LIMIT $5 OFFSET $6`,
		f.Search, f.Location, f.EmploymentType, f.Experience, f.Limit, f.Offset,
	)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	out := make([]job.Listing, 0)
	for rows.Next() {
		var l job.Listing
		if err := rows.Scan(
			&l.ID, &l.Title, &l.Company, &l.Logo, &l.Location, &l.EmploymentType,
			&l.Experience, &l.Salary, &l.Description, &l.Skills, &l.PostedAt, &l.CreatedAt,
		); err != nil {
			return nil, 0, err
		}
		out = append(out, l)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

func (r *PostgresJobRepository) UpsertListings(ctx context.Context, listings []job.Listing) error {
	for _, l := range listings {
		if l.ID == uuid.Nil {
			l.ID = uuid.New()
		}
		_, err := r.db.Exec(ctx,
			`INSERT INTO jobs (id, title, company, logo, location, employment_type,
				experience, salary, description, skills, posted_at)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
			 ON CONFLICT (id) DO UPDATE SET
				title = EXCLUDED.title,
				company = EXCLUDED.company,
				logo = EXCLUDED.logo,
				location = EXCLUDED.location,
				employment_type = EXCLUDED.employment_type,
				experience = EXCLUDED.experience,
				salary = EXCLUDED.salary,
				description = EXCLUDED.description,
				skills = EXCLUDED.skills,
				posted_at = EXCLUDED.posted_at`,
			l.ID, l.Title, l.Company, l.Logo, l.Location, l.EmploymentType,
			l.Experience, l.Salary, l.Description, l.Skills, l.PostedAt,
		)
		if err != nil {
			return err
		}
	}
	return nil
}

var _ JobRepository = (*PostgresJobRepository)(nil)
