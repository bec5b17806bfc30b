package profiles

import (
	"context"
	"database/sql"
	"errors"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Upsert inserts the profile or refreshes email and name on conflict.
func (r *PGRepo) Upsert(ctx context.Context, profile Profile) error {
	const query = `
INSERT INTO profiles (id, user_id, email, full_name, created_at, updated_at)
VALUES ($1, $2, $3, $4, now(), now())
ON CONFLICT (user_id) DO UPDATE
SET email = EXCLUDED.email,
    full_name = CASE WHEN EXCLUDED.full_name <> '' THEN EXCLUDED.full_name ELSE profiles.full_name END`
	_, err := r.DB.ExecContext(ctx, query, profile.ID, profile.UserID, profile.Email, profile.FullName)
	return err
}

// GetByUserID returns the profile owned by userID.
func (r *PGRepo) GetByUserID(ctx context.Context, userID string) (Profile, error) {
	const query = `
SELECT id, user_id, email, full_name, created_at, updated_at
FROM profiles
WHERE user_id = $1
LIMIT 1`
	var p Profile
	err := r.DB.QueryRowContext(ctx, query, userID).Scan(
		&p.ID,
		&p.UserID,
		&p.Email,
		&p.FullName,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Profile{}, ErrNotFound
		}
		return Profile{}, err
	}
	return p, nil
}

// UpdateFullName sets the display name for the user's profile.
func (r *PGRepo) UpdateFullName(ctx context.Context, userID, fullName string) error {
	const query = `
UPDATE profiles
SET full_name = $1
WHERE user_id = $2`
	res, err := r.DB.ExecContext(ctx, query, fullName, userID)
	if err != nil {
		return err
	}
	affected, _ := res.RowsAffected()
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

var _ Repo = (*PGRepo)(nil)
