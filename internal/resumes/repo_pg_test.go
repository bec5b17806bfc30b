package resumes

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestPGRepoGetByIDScopesToUser(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	repo := &PGRepo{DB: db}
	now := time.Now().UTC()

	rows := sqlmock.NewRows([]string{
		"id", "user_id", "title", "file_name", "file_path", "file_size",
		"extracted_text", "created_at", "updated_at",
	}).AddRow("r1", "u1", "Backend Resume", "resume.pdf", "u1/123.pdf", int64(1024), nil, now, now)

	mock.ExpectQuery("FROM resumes").
		WithArgs("u1", "r1").
		WillReturnRows(rows)

	resume, err := repo.GetByID(context.Background(), "u1", "r1")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if resume.ExtractedText != nil {
		t.Fatalf("expected nil extracted text, got %q", *resume.ExtractedText)
	}
	if resume.FilePath != "u1/123.pdf" {
		t.Fatalf("file path mismatch: %q", resume.FilePath)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestPGRepoGetByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	repo := &PGRepo{DB: db}

	mock.ExpectQuery("FROM resumes").
		WithArgs("u2", "r1").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	if _, err := repo.GetByID(context.Background(), "u2", "r1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestPGRepoDeleteNotOwned(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	repo := &PGRepo{DB: db}

	mock.ExpectExec("DELETE FROM resumes").
		WithArgs("u2", "r1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.Delete(context.Background(), "u2", "r1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for zero rows, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}
