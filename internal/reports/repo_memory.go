package reports

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo is an in-memory Repo used when no database is configured. It
// also mirrors the FK cascade behavior via the purge methods.
type MemoryRepo struct {
	mu   sync.RWMutex
	byID map[string]AnalysisReport
}

// NewMemoryRepo constructs an empty MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{byID: make(map[string]AnalysisReport)}
}

func (r *MemoryRepo) Create(ctx context.Context, report AnalysisReport) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byID[report.ID] = report
	return nil
}

func (r *MemoryRepo) GetByID(ctx context.Context, userID, reportID string) (AnalysisReport, error) {
	if err := ctx.Err(); err != nil {
		return AnalysisReport{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	report, ok := r.byID[reportID]
	if !ok || report.UserID != userID {
		return AnalysisReport{}, ErrNotFound
	}
	return report, nil
}

func (r *MemoryRepo) ListByUser(ctx context.Context, userID string, limit, offset int) ([]AnalysisReport, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []AnalysisReport
	for _, report := range r.byID {
		if report.UserID == userID {
			out = append(out, report)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})

	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *MemoryRepo) Delete(ctx context.Context, userID, reportID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	report, ok := r.byID[reportID]
	if !ok || report.UserID != userID {
		return ErrNotFound
	}
	delete(r.byID, reportID)
	return nil
}

// PurgeByResume removes all reports that reference the resume. Mirrors the
// ON DELETE CASCADE constraint of the Postgres schema.
func (r *MemoryRepo) PurgeByResume(ctx context.Context, userID, resumeID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, report := range r.byID {
		if report.UserID == userID && report.ResumeID == resumeID {
			delete(r.byID, id)
		}
	}
	return nil
}

// PurgeByJob removes all reports that reference the job description.
func (r *MemoryRepo) PurgeByJob(ctx context.Context, userID, jobID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, report := range r.byID {
		if report.UserID == userID && report.JobDescriptionID == jobID {
			delete(r.byID, id)
		}
	}
	return nil
}

var _ Repo = (*MemoryRepo)(nil)
