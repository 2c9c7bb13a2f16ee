package repository

import (
	"context"
	"database/sql"
	"errors"

	"career-compass/internal/database"
	"career-compass/internal/domain/mentorship"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var (
	ErrMentorNotFound  = errors.New("mentor not found")
	ErrRequestNotFound = errors.New("mentorship request not found")
	ErrGoalNotFound    = errors.New("goal not found")
)

type MentorshipRepository interface {
	ListMentors(ctx context.Context) ([]mentorship.Mentor, error)
	GetMentor(ctx context.Context, userID uuid.UUID) (mentorship.Mentor, error)
	UpsertMentor(ctx context.Context, m mentorship.Mentor) error

	CreateRequest(ctx context.Context, req mentorship.Request) error
	FindRequest(ctx context.Context, menteeID, mentorID uuid.UUID) (mentorship.Request, error)
	ListRequestsForMentor(ctx context.Context, mentorID uuid.UUID) ([]mentorship.Request, error)
	UpdateRequestStatus(ctx context.Context, id uuid.UUID, status string) error

	ListGoals(ctx context.Context, menteeID uuid.UUID) ([]mentorship.Goal, error)
	CreateGoal(ctx context.Context, g mentorship.Goal) error
	UpdateGoalProgress(ctx context.Context, id uuid.UUID, menteeID uuid.UUID, completedTasks int) error
}

type PostgresMentorshipRepository struct {
	db database.DB
}

func NewPostgresMentorshipRepository(db database.DB) *PostgresMentorshipRepository {
	return &PostgresMentorshipRepository{db: db}
}

func (r *PostgresMentorshipRepository) ListMentors(ctx context.Context) ([]mentorship.Mentor, error) {
	rows, err := r.db.Query(ctx,
		`SELECT user_id, name, title, bio, expertise, created_at
		 FROM mentors ORDER BY name ASC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]mentorship.Mentor, 0)
	for rows.Next() {
		var m mentorship.Mentor
		if err := rows.Scan(&m.UserID, &m.Name, &m.Title, &m.Bio, &m.Expertise, &m.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (r *PostgresMentorshipRepository) GetMentor(ctx context.Context, userID uuid.UUID) (mentorship.Mentor, error) {
	row := r.db.QueryRow(ctx,
		`SELECT user_id, name, title, bio, expertise, created_at FROM mentors WHERE user_id = $1`,
		userID,
	)
	var m mentorship.Mentor
	if err := row.Scan(&m.UserID, &m.Name, &m.Title, &m.Bio, &m.Expertise, &m.CreatedAt); err != nil {
		if err == sql.ErrNoRows || errors.Is(err, pgx.ErrNoRows) {
			return mentorship.Mentor{}, ErrMentorNotFound
		}
		return mentorship.Mentor{}, err
	}
	return m, nil
}

func (r *PostgresMentorshipRepository) UpsertMentor(ctx context.Context, m mentorship.Mentor) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO mentors (user_id, name, title, bio, expertise)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (user_id) DO UPDATE SET
			name = EXCLUDED.name,
			title = EXCLUDED.title,
			bio = EXCLUDED.bio,
			expertise = EXCLUDED.expertise`,
		m.UserID, m.Name, m.Title, m.Bio, m.Expertise,
	)
	return err
}

func (r *PostgresMentorshipRepository) CreateRequest(ctx context.Context, req mentorship.Request) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO mentorship_requests (id, mentee_id, mentor_id, status)
		 VALUES ($1, $2, $3, $4)`,
		req.ID, req.MenteeID, req.MentorID, req.Status,
	)
	return err
}

func (r *PostgresMentorshipRepository) FindRequest(ctx context.Context, menteeID, mentorID uuid.UUID) (mentorship.Request, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, mentee_id, mentor_id, status, created_at, updated_at
		 FROM mentorship_requests WHERE mentee_id = $1 AND mentor_id = $2`,
		menteeID, mentorID,
	)
	return scanRequest(row)
}

func (r *PostgresMentorshipRepository) ListRequestsForMentor(ctx context.Context, mentorID uuid.UUID) ([]mentorship.Request, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, mentee_id, mentor_id, status, created_at, updated_at
		 FROM mentorship_requests WHERE mentor_id = $1 ORDER BY created_at DESC`,
		mentorID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]mentorship.Request, 0)
	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, req)
	}
	return out, rows.Err()
}

func (r *PostgresMentorshipRepository) UpdateRequestStatus(ctx context.Context, id uuid.UUID, status string) error {
	affected, err := r.db.Exec(ctx,
		`UPDATE mentorship_requests SET status = $1, updated_at = now() WHERE id = $2`,
		status, id,
	)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrRequestNotFound
	}
	return nil
}

func (r *PostgresMentorshipRepository) ListGoals(ctx context.Context, menteeID uuid.UUID) ([]mentorship.Goal, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, mentee_id, title, total_tasks, completed_tasks, due_date, created_at
		 FROM goals WHERE mentee_id = $1 ORDER BY created_at ASC`,
		menteeID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]mentorship.Goal, 0)
	for rows.Next() {
		var g mentorship.Goal
		if err := rows.Scan(&g.ID, &g.MenteeID, &g.Title, &g.TotalTasks, &g.CompletedTasks, &g.DueDate, &g.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	return out, rows.Err()
}

func (r *PostgresMentorshipRepository) CreateGoal(ctx context.Context, g mentorship.Goal) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO goals (id, mentee_id, title, total_tasks, completed_tasks, due_date)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		g.ID, g.MenteeID, g.Title, g.TotalTasks, g.CompletedTasks, g.DueDate,
	)
	return err
}

func (r *PostgresMentorshipRepository) UpdateGoalProgress(ctx context.Context, id uuid.UUID, menteeID uuid.UUID, completedTasks int) error {
	affected, err := r.db.Exec(ctx,
		`UPDATE goals SET completed_tasks = $1 WHERE id = $2 AND mentee_id = $3`,
		completedTasks, id, menteeID,
	)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrGoalNotFound
	}
	return nil
}

func scanRequest(row database.Row) (mentorship.Request, error) {
	var req mentorship.Request
	if err := row.Scan(&req.ID, &req.MenteeID, &req.MentorID, &req.Status, &req.CreatedAt, &req.UpdatedAt); err != nil {
		if err == sql.ErrNoRows || errors.Is(err, pgx.ErrNoRows) {
			return mentorship.Request{}, ErrRequestNotFound
		}
		return mentorship.Request{}, err
	}
	return req, nil
}

var _ MentorshipRepository = (*PostgresMentorshipRepository)(nil)
