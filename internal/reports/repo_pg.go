package reports

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
)

// PGRepo implements Repo using Postgres. String-list fields are stored as
// JSONB columns.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new analysis report.
func (r *PGRepo) Create(ctx context.Context, report AnalysisReport) error {
	const query = `
INSERT INTO analysis_reports (
    id,
    user_id,
    resume_id,
    job_description_id,
    match_score,
    missing_skills,
    strengths,
    weaknesses,
    improvement_suggestions,
    ai_summary,
    interview_questions,
    created_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	missing, err := marshalList(report.Analysis.MissingSkills)
	if err != nil {
		return err
	}
	strengths, err := marshalList(report.Analysis.Strengths)
	if err != nil {
		return err
	}
	weaknesses, err := marshalList(report.Analysis.Weaknesses)
	if err != nil {
		return err
	}
	suggestions, err := marshalList(report.Analysis.ImprovementSuggestions)
	if err != nil {
		return err
	}
	questions, err := marshalList(report.Analysis.InterviewQuestions)
	if err != nil {
		return err
	}

	_, err = r.DB.ExecContext(
		ctx,
		query,
		report.ID,
		report.UserID,
		report.ResumeID,
		report.JobDescriptionID,
		report.Analysis.RelevanceScore,
		missing,
		strengths,
		weaknesses,
		suggestions,
		report.Analysis.AISummary,
		questions,
		report.CreatedAt,
	)
	return err
}

// GetByID fetches a report owned by the user.
func (r *PGRepo) GetByID(ctx context.Context, userID, reportID string) (AnalysisReport, error) {
	const query = reportColumns + `
WHERE user_id = $1 AND id = $2
LIMIT 1`
	report, err := scanReport(r.DB.QueryRowContext(ctx, query, userID, reportID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return AnalysisReport{}, ErrNotFound
		}
		return AnalysisReport{}, err
	}
	return report, nil
}

// ListByUser lists reports ordered newest-first.
func (r *PGRepo) ListByUser(ctx context.Context, userID string, limit, offset int) ([]AnalysisReport, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	const query = reportColumns + `
WHERE user_id = $1
ORDER BY created_at DESC
LIMIT $2 OFFSET $3`

	rows, err := r.DB.QueryContext(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []AnalysisReport
	for rows.Next() {
		report, err := scanReport(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, report)
	}
	return out, rows.Err()
}

// Delete removes a report owned by the user.
func (r *PGRepo) Delete(ctx context.Context, userID, reportID string) error {
	const query = `
DELETE FROM analysis_reports
WHERE user_id = $1 AND id = $2`
	res, err := r.DB.ExecContext(ctx, query, userID, reportID)
	if err != nil {
		return err
	}
	affected, _ := res.RowsAffected()
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

const reportColumns = `
SELECT id, user_id, resume_id, job_description_id, match_score,
       missing_skills, strengths, weaknesses, improvement_suggestions,
       ai_summary, interview_questions, created_at
FROM analysis_reports`

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanReport(row rowScanner) (AnalysisReport, error) {
	var (
		report      AnalysisReport
		missing     []byte
		strengths   []byte
		weaknesses  []byte
		suggestions []byte
		questions   []byte
	)
	if err := row.Scan(
		&report.ID,
		&report.UserID,
		&report.ResumeID,
		&report.JobDescriptionID,
		&report.Analysis.RelevanceScore,
		&missing,
		&strengths,
		&weaknesses,
		&suggestions,
		&report.Analysis.AISummary,
		&questions,
		&report.CreatedAt,
	); err != nil {
		return AnalysisReport{}, err
	}

	var err error
	if report.Analysis.MissingSkills, err = unmarshalList(missing); err != nil {
		return AnalysisReport{}, err
	}
	if report.Analysis.Strengths, err = unmarshalList(strengths); err != nil {
		return AnalysisReport{}, err
	}
	if report.Analysis.Weaknesses, err = unmarshalList(weaknesses); err != nil {
		return AnalysisReport{}, err
	}
	if report.Analysis.ImprovementSuggestions, err = unmarshalList(suggestions); err != nil {
		return AnalysisReport{}, err
	}
	if report.Analysis.InterviewQuestions, err = unmarshalList(questions); err != nil {
		return AnalysisReport{}, err
	}
	return report, nil
}

func marshalList(values []string) ([]byte, error) {
	if values == nil {
		values = []string{}
	}
	return json.Marshal(values)
}

func unmarshalList(raw []byte) ([]string, error) {
	if len(raw) == 0 {
		return []string{}, nil
	}
	var out []string
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []string{}
	}
	return out, nil
}

var _ Repo = (*PGRepo)(nil)
