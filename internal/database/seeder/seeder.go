package seeder

import (
	"context"
	"fmt"
	"log"

	"career-compass/internal/database"
)

type Seeder interface {
	Name() string
	Run(ctx context.Context, db database.DB) error
}

// Runner executes seeders in order. Every seeder is idempotent, so the
// runner is safe to call on each boot.
type Runner struct {
	Seeders []Seeder
	Logger  *log.Logger
}

func (r Runner) Run(ctx context.Context, db database.DB) error {
	if db == nil {
		return fmt.Errorf("nil db")
	}
	for _, s := range r.Seeders {
		if s == nil {
			continue
		}
		if err := s.Run(ctx, db); err != nil {
			return fmt.Errorf("seed %s: %w", s.Name(), err)
		}
		if r.Logger != nil {
			r.Logger.Printf("[Seeder] applied name=%s", s.Name())
		}
	}
	return nil
}

func Defaults() []Seeder {
	return []Seeder{
		JobsSeeder{},
		MentorsSeeder{},
	}
}
