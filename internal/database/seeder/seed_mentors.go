package seeder

import (
	"context"

	"career-compass/internal/database"
	"career-compass/internal/domain/mentorship"
	"career-compass/internal/repository"
)

// MentorsSeeder creates the starter mentor directory. Each mentor needs a
// user row; seeded accounts carry an unusable password hash so nobody can
// log in as them.
type MentorsSeeder struct{}

func (MentorsSeeder) Name() string { return "mentors" }

func (MentorsSeeder) Run(ctx context.Context, db database.DB) error {
	mentors := []struct {
		Email  string
		Mentor mentorship.Mentor
	}{
		{
			Email: "ananya.iyer@careercompass.example",
			Mentor: mentorship.Mentor{
				Name:      "Ananya Iyer",
				Title:     "Senior Frontend Engineer",
				Bio:       "Eight years building design systems and React applications. Happy to review portfolios and mock-interview freshers.",
				Expertise: []string{"React", "JavaScript", "CSS", "Career switching"},
			},
		},
		{
			Email: "rohan.mehta@careercompass.example",
			Mentor: mentorship.Mentor{
				Name:      "Rohan Mehta",
				Title:     "Backend Lead",
				Bio:       "Runs a platform team on Java and Go. Mentors on system design basics and first-job interview prep.",
				Expertise: []string{"Java", "Go", "System design", "DSA"},
			},
		},
		{
			Email: "priya.sharma@careercompass.example",
			Mentor: mentorship.Mentor{
				Name:      "Priya Sharma",
				Title:     "Data Analytics Manager",
				Bio:       "Moved from support to analytics without a CS degree. Mentors on SQL, dashboards and the non-traditional route in.",
				Expertise: []string{"SQL", "Python", "Tableau", "Analytics"},
			},
		},
	}

	repo := repository.NewPostgresMentorshipRepository(db)
	for _, m := range mentors {
		userID := seedID("mentor-user", m.Email)
		// The "!" hash can never match a bcrypt comparison.
		_, err := db.Exec(ctx,
			`INSERT INTO users (id, email, password_hash) VALUES ($1, $2, '!')
			 ON CONFLICT (email) DO NOTHING`,
			userID, m.Email,
		)
		if err != nil {
			return err
		}

		m.Mentor.UserID = userID
		if err := repo.UpsertMentor(ctx, m.Mentor); err != nil {
			return err
		}
	}
	return nil
}
