package jobs

import (
	"context"
	"errors"
	"testing"
)

type purgeRecorder struct {
	calls []string
}

func (p *purgeRecorder) PurgeByJob(ctx context.Context, userID, jobID string) error {
	p.calls = append(p.calls, userID+"/"+jobID)
	return nil
}

func newTestService() (*Service, *purgeRecorder) {
	purger := &purgeRecorder{}
	return &Service{Repo: NewMemoryRepo(), Purger: purger}, purger
}

func TestCreateRequiresTitleAndDescription(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	if _, err := svc.Create(ctx, "u1", Input{Description: "desc"}); err == nil {
		t.Fatal("expected error for missing title")
	}
	if _, err := svc.Create(ctx, "u1", Input{Title: "Backend Engineer"}); err == nil {
		t.Fatal("expected error for missing description")
	}

	job, err := svc.Create(ctx, "u1", Input{Title: "  Backend Engineer  ", Description: "Build services"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if job.Title != "Backend Engineer" {
		t.Fatalf("title not trimmed: %q", job.Title)
	}
	if job.UserID != "u1" {
		t.Fatalf("job not owned by caller: %q", job.UserID)
	}
}

func TestUpdateForeignJob(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	job, err := svc.Create(ctx, "u1", Input{Title: "Backend Engineer", Description: "Build services"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	_, err = svc.Update(ctx, "u2", job.ID, Input{Title: "Hijacked", Description: "x"})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("foreign update should fail with ErrNotFound, got %v", err)
	}
}

func TestDeletePurgesDependentReports(t *testing.T) {
	svc, purger := newTestService()
	ctx := context.Background()

	job, err := svc.Create(ctx, "u1", Input{Title: "Backend Engineer", Description: "Build services"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := svc.Delete(ctx, "u1", job.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if len(purger.calls) != 1 || purger.calls[0] != "u1/"+job.ID {
		t.Fatalf("dependent reports not purged: %v", purger.calls)
	}
	if _, err := svc.Get(ctx, "u1", job.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("job should be gone, got %v", err)
	}
}

func TestListNewestFirst(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	for _, title := range []string{"First", "Second", "Third"} {
		if _, err := svc.Create(ctx, "u1", Input{Title: title, Description: "d"}); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	items, err := svc.List(ctx, "u1", 2, 0)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected limit applied, got %d items", len(items))
	}
}
