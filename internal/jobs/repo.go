package jobs

import "context"

// Repo defines persistence operations for job descriptions. Every operation
// is scoped to the owning user.
type Repo interface {
	Create(ctx context.Context, job JobDescription) error
	GetByID(ctx context.Context, userID, jobID string) (JobDescription, error)
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]JobDescription, error)
	Update(ctx context.Context, job JobDescription) error
	Delete(ctx context.Context, userID, jobID string) error
}
