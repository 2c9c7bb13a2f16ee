package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"career-compass/internal/database"
	"career-compass/internal/domain/profile"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// PostgresProfileStore keeps each user's profile as one JSONB document,
// written exclusively through merges so concurrent fields never clobber
// each other.
type PostgresProfileStore struct {
	db database.DB
}

func NewPostgresProfileStore(db database.DB) *PostgresProfileStore {
	return &PostgresProfileStore{db: db}
}

func (s *PostgresProfileStore) Load(ctx context.Context, userID uuid.UUID) (profile.Profile, error) {
	row := s.db.QueryRow(ctx, `SELECT doc FROM profiles WHERE user_id = $1`, userID)

	var raw []byte
	if err := row.Scan(&raw); err != nil {
		if err == sql.ErrNoRows || errors.Is(err, pgx.ErrNoRows) {
			return profile.Profile{}, profile.ErrNotFound
		}
		return profile.Profile{}, fmt.Errorf("%w: %v", profile.ErrUnavailable, err)
	}

	var p profile.Profile
	if err := json.Unmarshal(raw, &p); err != nil {
		// A malformed document reads as empty rather than failing the page.
		return profile.Profile{}, nil
	}
	return profile.Normalize(p), nil
}

func (s *PostgresProfileStore) Merge(ctx context.Context, userID uuid.UUID, fields map[string]any) error {
	if len(fields) == 0 {
		return nil
	}

	doc, err := json.Marshal(fields)
	if err != nil {
		return err
	}

	_, err = s.db.Exec(ctx,
		`INSERT INTO profiles (user_id, doc, updated_at)
		 VALUES ($1, $2::jsonb, now())
		 ON CONFLICT (user_id)
		 DO UPDATE SET doc = profiles.doc || EXCLUDED.doc, updated_at = now()`,
		userID, doc,
	)
	if err != nil {
		return fmt.Errorf("%w: %v", profile.ErrUnavailable, err)
	}
	return nil
}

var _ profile.Store = (*PostgresProfileStore)(nil)
