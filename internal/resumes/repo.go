package resumes

import "context"

// Repo defines persistence operations for resumes. Every operation is scoped
// to the owning user.
type Repo interface {
	Create(ctx context.Context, resume Resume) error
	GetByID(ctx context.Context, userID, resumeID string) (Resume, error)
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]Resume, error)
	UpdateTitle(ctx context.Context, userID, resumeID, title string) error
	Delete(ctx context.Context, userID, resumeID string) error
}
