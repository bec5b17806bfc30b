package profiles

import (
	"context"
	"sync"
	"time"
)

// MemoryRepo is an in-memory Repo used when no database is configured.
type MemoryRepo struct {
	mu       sync.RWMutex
	byUserID map[string]Profile
}

// NewMemoryRepo constructs an empty MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{byUserID: make(map[string]Profile)}
}

func (r *MemoryRepo) Upsert(ctx context.Context, profile Profile) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.byUserID[profile.UserID]; ok {
		existing.Email = profile.Email
		if profile.FullName != "" {
			existing.FullName = profile.FullName
		}
		existing.UpdatedAt = time.Now().UTC()
		r.byUserID[profile.UserID] = existing
		return nil
	}

	now := time.Now().UTC()
	profile.CreatedAt = now
	profile.UpdatedAt = now
	r.byUserID[profile.UserID] = profile
	return nil
}

func (r *MemoryRepo) GetByUserID(ctx context.Context, userID string) (Profile, error) {
	if err := ctx.Err(); err != nil {
		return Profile{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	profile, ok := r.byUserID[userID]
	if !ok {
		return Profile{}, ErrNotFound
	}
	return profile, nil
}

func (r *MemoryRepo) UpdateFullName(ctx context.Context, userID, fullName string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	profile, ok := r.byUserID[userID]
	if !ok {
		return ErrNotFound
	}
	profile.FullName = fullName
	profile.UpdatedAt = time.Now().UTC()
	r.byUserID[userID] = profile
	return nil
}

var _ Repo = (*MemoryRepo)(nil)
