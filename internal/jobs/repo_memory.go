package jobs

import (
	"context"
	"sort"
	"sync"
	"time"
)

// MemoryRepo is an in-memory Repo used when no database is configured.
type MemoryRepo struct {
	mu   sync.RWMutex
	byID map[string]JobDescription
}

// NewMemoryRepo constructs an empty MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{byID: make(map[string]JobDescription)}
}

func (r *MemoryRepo) Create(ctx context.Context, job JobDescription) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if job.UpdatedAt.IsZero() {
		job.UpdatedAt = job.CreatedAt
	}
	r.byID[job.ID] = job
	return nil
}

func (r *MemoryRepo) GetByID(ctx context.Context, userID, jobID string) (JobDescription, error) {
	if err := ctx.Err(); err != nil {
		return JobDescription{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	job, ok := r.byID[jobID]
	if !ok || job.UserID != userID {
		return JobDescription{}, ErrNotFound
	}
	return job, nil
}

func (r *MemoryRepo) ListByUser(ctx context.Context, userID string, limit, offset int) ([]JobDescription, error) {
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

	var out []JobDescription
	for _, job := range r.byID {
		if job.UserID == userID {
			out = append(out, job)
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

func (r *MemoryRepo) Update(ctx context.Context, job JobDescription) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.byID[job.ID]
	if !ok || existing.UserID != job.UserID {
		return ErrNotFound
	}
	existing.Title = job.Title
	existing.Company = job.Company
	existing.Description = job.Description
	existing.Requirements = job.Requirements
	existing.UpdatedAt = time.Now().UTC()
	r.byID[job.ID] = existing
	return nil
}

func (r *MemoryRepo) Delete(ctx context.Context, userID, jobID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	job, ok := r.byID[jobID]
	if !ok || job.UserID != userID {
		return ErrNotFound
	}
	delete(r.byID, jobID)
	return nil
}

var _ Repo = (*MemoryRepo)(nil)
