package resumes

import (
	"context"
	"errors"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	"resume-optimizer/internal/shared/storage/object"
	"resume-optimizer/internal/shared/telemetry"
)

// MaxUploadBytes caps resume uploads at 5MB.
const MaxUploadBytes = 5 << 20

// AllowedContentTypes lists the two accepted resume MIME types.
var AllowedContentTypes = map[string]struct{}{
	"application/pdf": {},
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": {},
}

// ReportsPurger removes analysis reports that depend on a deleted parent row.
// The Postgres repos rely on ON DELETE CASCADE instead; the memory repos need
// this hook to mirror that behavior.
type ReportsPurger interface {
	PurgeByResume(ctx context.Context, userID, resumeID string) error
}

// Service contains business logic for resumes.
type Service struct {
	Store  object.ObjectStore
	Repo   Repo
	Purger ReportsPurger
}

// Upload validates the file, stores the blob under the caller's prefix and
// records the metadata row. Type and size are rejected before any storage or
// database call. A storage write followed by a failed insert leaves an
// orphaned blob; no reconciliation is attempted.
func (s *Service) Upload(ctx context.Context, userID, title, fileName, contentType string, size int64, r io.Reader) (Resume, error) {
	if strings.TrimSpace(userID) == "" || strings.TrimSpace(fileName) == "" {
		return Resume{}, ErrInvalidInput
	}
	if _, ok := AllowedContentTypes[strings.TrimSpace(contentType)]; !ok {
		return Resume{}, ErrUnsupportedType
	}
	if size <= 0 || size > MaxUploadBytes {
		return Resume{}, ErrFileTooLarge
	}

	if strings.TrimSpace(title) == "" {
		title = fileName
	}

	storageKey, written, err := s.Store.Save(ctx, userID, fileName, io.LimitReader(r, MaxUploadBytes+1))
	if err != nil {
		return Resume{}, err
	}
	if written > MaxUploadBytes {
		// Declared size lied; remove the blob and reject.
		_ = s.Store.Delete(ctx, userID, storageKey)
		return Resume{}, ErrFileTooLarge
	}

	resume := Resume{
		ID:        uuid.NewString(),
		UserID:    userID,
		Title:     title,
		FileName:  fileName,
		FilePath:  storageKey,
		FileSize:  written,
		CreatedAt: time.Now().UTC(),
	}
	resume.UpdatedAt = resume.CreatedAt

	if err := s.Repo.Create(ctx, resume); err != nil {
		return Resume{}, err
	}
	return resume, nil
}

// Get returns a resume owned by the user.
func (s *Service) Get(ctx context.Context, userID, resumeID string) (Resume, error) {
	if userID == "" || resumeID == "" {
		return Resume{}, ErrInvalidInput
	}
	return s.Repo.GetByID(ctx, userID, resumeID)
}

// List returns the user's resumes ordered newest-first.
func (s *Service) List(ctx context.Context, userID string, limit, offset int) ([]Resume, error) {
	if userID == "" {
		return nil, ErrInvalidInput
	}
	return s.Repo.ListByUser(ctx, userID, limit, offset)
}

// Rename updates the resume title.
func (s *Service) Rename(ctx context.Context, userID, resumeID, title string) (Resume, error) {
	if userID == "" || resumeID == "" {
		return Resume{}, ErrInvalidInput
	}
	title = strings.TrimSpace(title)
	if title == "" {
		return Resume{}, errors.New("title is required")
	}
	if err := s.Repo.UpdateTitle(ctx, userID, resumeID, title); err != nil {
		return Resume{}, err
	}
	return s.Repo.GetByID(ctx, userID, resumeID)
}

// Delete removes the metadata row (cascading dependent reports) and then
// removes the blob best-effort.
func (s *Service) Delete(ctx context.Context, userID, resumeID string) error {
	if userID == "" || resumeID == "" {
		return ErrInvalidInput
	}

	resume, err := s.Repo.GetByID(ctx, userID, resumeID)
	if err != nil {
		return err
	}

	if err := s.Repo.Delete(ctx, userID, resumeID); err != nil {
		return err
	}
	if s.Purger != nil {
		if err := s.Purger.PurgeByResume(ctx, userID, resumeID); err != nil {
			return err
		}
	}

	if resume.FilePath != "" {
		if err := s.Store.Delete(ctx, userID, resume.FilePath); err != nil {
			telemetry.Warn("resumes.blob_delete_failed", telemetry.Fields{
				"user_id":   userID,
				"resume_id": resumeID,
				"path":      resume.FilePath,
				"err":       err.Error(),
			})
		}
	}
	return nil
}
