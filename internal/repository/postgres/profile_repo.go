package postgres

import (
	"context"

	"go-jobtracker-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type profileRepo struct {
	db *pgxpool.Pool
}

// NewProfileRepository creates a new job profile repository
func NewProfileRepository(db *pgxpool.Pool) domain.ProfileRepository {
	return &profileRepo{db: db}
}

// Create inserts a profile owned by profile.UserID and fills the generated
// id and creation timestamp.
func (r *profileRepo) Create(ctx context.Context, profile *domain.JobProfile) error {
	query := `
		INSERT INTO job_profiles (user_id, name)
		VALUES ($1, $2)
		RETURNING id, created_at`

	return r.db.QueryRow(ctx, query, profile.UserID, profile.Name).
		Scan(&profile.ID, &profile.CreatedAt)
}

// ListByUser returns all profiles owned by userID, newest first.
func (r *profileRepo) ListByUser(ctx context.Context, userID string) ([]domain.JobProfile, error) {
	query := `
		SELECT id, user_id, name, created_at
		FROM job_profiles
		WHERE user_id = $1
		ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	profiles := []domain.JobProfile{}
	for rows.Next() {
		var p domain.JobProfile
		if err := rows.Scan(&p.ID, &p.UserID, &p.Name, &p.CreatedAt); err != nil {
			return nil, err
		}
		profiles = append(profiles, p)
	}
	return profiles, rows.Err()
}

// Rename updates the display name, scoped by owner and profile id in one
// statement. A zero-row match surfaces as domain.ErrNotFound regardless of
// whether the profile is missing or owned by someone else.
func (r *profileRepo) Rename(ctx context.Context, userID, profileID, name string) (*domain.JobProfile, error) {
	query := `
		UPDATE job_profiles
		SET name = $1
		WHERE id = $2 AND user_id = $3
		RETURNING id, user_id, name, created_at`

	var p domain.JobProfile
	err := r.db.QueryRow(ctx, query, name, profileID, userID).
		Scan(&p.ID, &p.UserID, &p.Name, &p.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

// Delete removes an owned profile. Applications referencing it are removed
// by the job_applications FK's ON DELETE CASCADE.
func (r *profileRepo) Delete(ctx context.Context, userID, profileID string) error {
	tag, err := r.db.Exec(ctx,
		`DELETE FROM job_profiles WHERE id = $1 AND user_id = $2`,
		profileID, userID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ExistsForUser reports whether profileID exists and is owned by userID.
func (r *profileRepo) ExistsForUser(ctx context.Context, userID, profileID string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM job_profiles WHERE id = $1 AND user_id = $2)`,
		profileID, userID,
	).Scan(&exists)
	return exists, err
}
