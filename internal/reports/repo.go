package reports

import "context"

// Repo defines persistence operations for analysis reports. Every operation
// is scoped to the owning user.
type Repo interface {
	Create(ctx context.Context, report AnalysisReport) error
	GetByID(ctx context.Context, userID, reportID string) (AnalysisReport, error)
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]AnalysisReport, error)
	Delete(ctx context.Context, userID, reportID string) error
}
