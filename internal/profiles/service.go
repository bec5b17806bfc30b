package profiles

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
)

type Service struct {
	Repo Repo
}

func NewService(repo Repo) *Service {
	return &Service{Repo: repo}
}

// UpsertFromAuth persists the user identity from OAuth so ownership of
// resumes, jobs and reports stays stable across sign-ins.
func (s *Service) UpsertFromAuth(ctx context.Context, userID, email, fullName string) error {
	if s == nil || s.Repo == nil {
		return errors.New("profiles service not configured")
	}
	if strings.TrimSpace(userID) == "" || strings.TrimSpace(email) == "" {
		return errors.New("user id and email are required")
	}
	return s.Repo.Upsert(ctx, Profile{
		ID:       uuid.NewString(),
		UserID:   userID,
		Email:    email,
		FullName: strings.TrimSpace(fullName),
	})
}

func (s *Service) GetByUserID(ctx context.Context, userID string) (Profile, error) {
	if s == nil || s.Repo == nil {
		return Profile{}, errors.New("profiles service not configured")
	}
	if strings.TrimSpace(userID) == "" {
		return Profile{}, errors.New("user id is required")
	}
	return s.Repo.GetByUserID(ctx, userID)
}

func (s *Service) UpdateFullName(ctx context.Context, userID, fullName string) error {
	if s == nil || s.Repo == nil {
		return errors.New("profiles service not configured")
	}
	if strings.TrimSpace(userID) == "" {
		return errors.New("user id is required")
	}
	fullName = strings.TrimSpace(fullName)
	if fullName == "" {
		return errors.New("full name is required")
	}
	return s.Repo.UpdateFullName(ctx, userID, fullName)
}
