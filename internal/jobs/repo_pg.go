package jobs

import (
	"context"
	"database/sql"
	"errors"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new job description.
func (r *PGRepo) Create(ctx context.Context, job JobDescription) error {
	const query = `
INSERT INTO job_descriptions (
    id,
    user_id,
    title,
    company,
    description,
    requirements,
    created_at,
    updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $7)`

	_, err := r.DB.ExecContext(
		ctx,
		query,
		job.ID,
		job.UserID,
		job.Title,
		job.Company,
		job.Description,
		job.Requirements,
		job.CreatedAt,
	)
	return err
}

// GetByID fetches a job description owned by the user.
func (r *PGRepo) GetByID(ctx context.Context, userID, jobID string) (JobDescription, error) {
	const query = `
SELECT id, user_id, title, company, description, requirements, created_at, updated_at
FROM job_descriptions
WHERE user_id = $1 AND id = $2
LIMIT 1`
	var job JobDescription
	err := r.DB.QueryRowContext(ctx, query, userID, jobID).Scan(
		&job.ID,
		&job.UserID,
		&job.Title,
		&job.Company,
		&job.Description,
		&job.Requirements,
		&job.CreatedAt,
		&job.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return JobDescription{}, ErrNotFound
		}
		return JobDescription{}, err
	}
	return job, nil
}

// ListByUser lists job descriptions ordered newest-first.
func (r *PGRepo) ListByUser(ctx context.Context, userID string, limit, offset int) ([]JobDescription, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	const query = `
SELECT id, user_id, title, company, description, requirements, created_at, updated_at
FROM job_descriptions
WHERE user_id = $1
ORDER BY created_at DESC
LIMIT $2 OFFSET $3`

	rows, err := r.DB.QueryContext(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []JobDescription
	for rows.Next() {
		var job JobDescription
		if err := rows.Scan(
			&job.ID,
			&job.UserID,
			&job.Title,
			&job.Company,
			&job.Description,
			&job.Requirements,
			&job.CreatedAt,
			&job.UpdatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, job)
	}
	return out, rows.Err()
}

// Update rewrites the mutable fields of a job description owned by the user.
func (r *PGRepo) Update(ctx context.Context, job JobDescription) error {
	const query = `
UPDATE job_descriptions
SET title = $1, company = $2, description = $3, requirements = $4
WHERE user_id = $5 AND id = $6`
	res, err := r.DB.ExecContext(
		ctx,
		query,
		job.Title,
		job.Company,
		job.Description,
		job.Requirements,
		job.UserID,
		job.ID,
	)
	if err != nil {
		return err
	}
	affected, _ := res.RowsAffected()
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a job description owned by the user. Dependent analysis
// reports are removed by the ON DELETE CASCADE constraint.
func (r *PGRepo) Delete(ctx context.Context, userID, jobID string) error {
	const query = `
DELETE FROM job_descriptions
WHERE user_id = $1 AND id = $2`
	res, err := r.DB.ExecContext(ctx, query, userID, jobID)
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
