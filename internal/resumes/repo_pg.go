package resumes

import (
	"context"
	"database/sql"
	"errors"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new resume.
func (r *PGRepo) Create(ctx context.Context, resume Resume) error {
	const query = `
INSERT INTO resumes (
    id,
    user_id,
    title,
    file_name,
    file_path,
    file_size,
    extracted_text,
    created_at,
    updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8)`

	var extracted sql.NullString
	if resume.ExtractedText != nil {
		extracted = sql.NullString{String: *resume.ExtractedText, Valid: true}
	}

	_, err := r.DB.ExecContext(
		ctx,
		query,
		resume.ID,
		resume.UserID,
		resume.Title,
		resume.FileName,
		resume.FilePath,
		resume.FileSize,
		extracted,
		resume.CreatedAt,
	)
	return err
}

// GetByID fetches a resume owned by the user.
func (r *PGRepo) GetByID(ctx context.Context, userID, resumeID string) (Resume, error) {
	const query = `
SELECT id, user_id, title, file_name, file_path, file_size, extracted_text, created_at, updated_at
FROM resumes
WHERE user_id = $1 AND id = $2
LIMIT 1`
	var resume Resume
	var extracted sql.NullString
	err := r.DB.QueryRowContext(ctx, query, userID, resumeID).Scan(
		&resume.ID,
		&resume.UserID,
		&resume.Title,
		&resume.FileName,
		&resume.FilePath,
		&resume.FileSize,
		&extracted,
		&resume.CreatedAt,
		&resume.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Resume{}, ErrNotFound
		}
		return Resume{}, err
	}
	if extracted.Valid {
		resume.ExtractedText = &extracted.String
	}
	return resume, nil
}

// ListByUser lists resumes ordered newest-first.
func (r *PGRepo) ListByUser(ctx context.Context, userID string, limit, offset int) ([]Resume, error) {
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
SELECT id, user_id, title, file_name, file_path, file_size, extracted_text, created_at, updated_at
FROM resumes
WHERE user_id = $1
ORDER BY created_at DESC
LIMIT $2 OFFSET $3`

	rows, err := r.DB.QueryContext(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Resume
	for rows.Next() {
		var resume Resume
		var extracted sql.NullString
		if err := rows.Scan(
			&resume.ID,
			&resume.UserID,
			&resume.Title,
			&resume.FileName,
			&resume.FilePath,
			&resume.FileSize,
			&extracted,
			&resume.CreatedAt,
			&resume.UpdatedAt,
		); err != nil {
			return nil, err
		}
		if extracted.Valid {
			resume.ExtractedText = &extracted.String
		}
		out = append(out, resume)
	}
	return out, rows.Err()
}

// UpdateTitle renames a resume owned by the user.
func (r *PGRepo) UpdateTitle(ctx context.Context, userID, resumeID, title string) error {
	const query = `
UPDATE resumes
SET title = $1
WHERE user_id = $2 AND id = $3`
	res, err := r.DB.ExecContext(ctx, query, title, userID, resumeID)
	if err != nil {
		return err
	}
	affected, _ := res.RowsAffected()
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a resume owned by the user. Dependent analysis reports are
// removed by the ON DELETE CASCADE constraint.
func (r *PGRepo) Delete(ctx context.Context, userID, resumeID string) error {
	const query = `
DELETE FROM resumes
WHERE user_id = $1 AND id = $2`
	res, err := r.DB.ExecContext(ctx, query, userID, resumeID)
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
