package profiles

import (
	"context"
	"errors"
	"testing"
)

func TestUpsertKeepsIdentityStable(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	ctx := context.Background()

	if err := svc.UpsertFromAuth(ctx, "google:123", "user@example.com", "User One"); err != nil {
		t.Fatalf("UpsertFromAuth: %v", err)
	}
	first, err := svc.GetByUserID(ctx, "google:123")
	if err != nil {
		t.Fatalf("GetByUserID: %v", err)
	}

	// Second sign-in must not replace the profile row.
	if err := svc.UpsertFromAuth(ctx, "google:123", "new@example.com", ""); err != nil {
		t.Fatalf("second UpsertFromAuth: %v", err)
	}
	second, err := svc.GetByUserID(ctx, "google:123")
	if err != nil {
		t.Fatalf("GetByUserID: %v", err)
	}

	if second.ID != first.ID {
		t.Fatalf("profile row id changed across sign-ins: %q vs %q", second.ID, first.ID)
	}
	if second.Email != "new@example.com" {
		t.Fatalf("email not refreshed: %q", second.Email)
	}
	if second.FullName != "User One" {
		t.Fatalf("empty name should not clobber existing: %q", second.FullName)
	}
}

func TestUpsertRequiresIdentity(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	ctx := context.Background()

	if err := svc.UpsertFromAuth(ctx, "", "user@example.com", ""); err == nil {
		t.Fatal("expected error for missing user id")
	}
	if err := svc.UpsertFromAuth(ctx, "google:123", "", ""); err == nil {
		t.Fatal("expected error for missing email")
	}
}

func TestUpdateFullName(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	ctx := context.Background()

	if err := svc.UpdateFullName(ctx, "google:123", "Anyone"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for missing profile, got %v", err)
	}

	if err := svc.UpsertFromAuth(ctx, "google:123", "user@example.com", "User One"); err != nil {
		t.Fatalf("UpsertFromAuth: %v", err)
	}
	if err := svc.UpdateFullName(ctx, "google:123", "  "); err == nil {
		t.Fatal("expected error for blank name")
	}
	if err := svc.UpdateFullName(ctx, "google:123", "Renamed"); err != nil {
		t.Fatalf("UpdateFullName: %v", err)
	}

	profile, err := svc.GetByUserID(ctx, "google:123")
	if err != nil {
		t.Fatalf("GetByUserID: %v", err)
	}
	if profile.FullName != "Renamed" {
		t.Fatalf("name not updated: %q", profile.FullName)
	}
}
