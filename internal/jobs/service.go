package jobs

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ReportsPurger removes analysis reports that depend on a deleted job
// description. The Postgres repos rely on ON DELETE CASCADE instead; the
// memory repos need this hook to mirror that behavior.
type ReportsPurger interface {
	PurgeByJob(ctx context.Context, userID, jobID string) error
}

// Service contains business logic for job descriptions.
type Service struct {
	Repo   Repo
	Purger ReportsPurger
}

// Input carries the mutable fields of a job description.
type Input struct {
	Title        string
	Company      string
	Description  string
	Requirements string
}

func (in *Input) normalize() error {
	in.Title = strings.TrimSpace(in.Title)
	in.Company = strings.TrimSpace(in.Company)
	in.Description = strings.TrimSpace(in.Description)
	in.Requirements = strings.TrimSpace(in.Requirements)
	if in.Title == "" {
		return errors.New("title is required")
	}
	if in.Description == "" {
		return errors.New("description is required")
	}
	return nil
}

// Create saves a new job description for the user.
func (s *Service) Create(ctx context.Context, userID string, in Input) (JobDescription, error) {
	if strings.TrimSpace(userID) == "" {
		return JobDescription{}, ErrInvalidInput
	}
	if err := in.normalize(); err != nil {
		return JobDescription{}, err
	}

	job := JobDescription{
		ID:           uuid.NewString(),
		UserID:       userID,
		Title:        in.Title,
		Company:      in.Company,
		Description:  in.Description,
		Requirements: in.Requirements,
		CreatedAt:    time.Now().UTC(),
	}
	job.UpdatedAt = job.CreatedAt

	if err := s.Repo.Create(ctx, job); err != nil {
		return JobDescription{}, err
	}
	return job, nil
}

// Get returns a job description owned by the user.
func (s *Service) Get(ctx context.Context, userID, jobID string) (JobDescription, error) {
	if userID == "" || jobID == "" {
		return JobDescription{}, ErrInvalidInput
	}
	return s.Repo.GetByID(ctx, userID, jobID)
}

// List returns the user's job descriptions ordered newest-first.
func (s *Service) List(ctx context.Context, userID string, limit, offset int) ([]JobDescription, error) {
	if userID == "" {
		return nil, ErrInvalidInput
	}
	return s.Repo.ListByUser(ctx, userID, limit, offset)
}

// Update rewrites a job description owned by the user.
func (s *Service) Update(ctx context.Context, userID, jobID string, in Input) (JobDescription, error) {
	if userID == "" || jobID == "" {
		return JobDescription{}, ErrInvalidInput
	}
	if err := in.normalize(); err != nil {
		return JobDescription{}, err
	}

	job := JobDescription{
		ID:           jobID,
		UserID:       userID,
		Title:        in.Title,
		Company:      in.Company,
		Description:  in.Description,
		Requirements: in.Requirements,
	}
	if err := s.Repo.Update(ctx, job); err != nil {
		return JobDescription{}, err
	}
	return s.Repo.GetByID(ctx, userID, jobID)
}

// Delete removes a job description owned by the user, cascading dependent
// reports.
func (s *Service) Delete(ctx context.Context, userID, jobID string) error {
	if userID == "" || jobID == "" {
		return ErrInvalidInput
	}
	if err := s.Repo.Delete(ctx, userID, jobID); err != nil {
		return err
	}
	if s.Purger != nil {
		return s.Purger.PurgeByJob(ctx, userID, jobID)
	}
	return nil
}
