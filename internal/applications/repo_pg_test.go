package applications

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestPGRepoSave(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	created := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	mock.ExpectExec("INSERT INTO applications").
		WithArgs("app-1", "resume.pdf", "https://bucket/app-1_resume.pdf", created).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := NewPGRepo(db)
	err = repo.Save(context.Background(), Application{
		ID:           "app-1",
		OriginalName: "resume.pdf",
		ResumeURL:    "https://bucket/app-1_resume.pdf",
		CreatedAt:    created,
	})
	if err != nil {
		t.Fatal(err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestPGRepoSaveError(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	mock.ExpectExec("INSERT INTO applications").
		WillReturnError(errors.New("connection reset"))

	repo := NewPGRepo(db)
	if err := repo.Save(context.Background(), Application{ID: "app-1"}); err == nil {
		t.Fatal("expected save error to propagate")
	}
}

func TestPGRepoGet(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	created := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"id", "original_name", "resume_url", "created_at"}).
		AddRow("app-1", "resume.pdf", "https://bucket/app-1_resume.pdf", created)
	mock.ExpectQuery("SELECT id, original_name, resume_url, created_at").
		WithArgs("app-1").
		WillReturnRows(rows)

	repo := NewPGRepo(db)
	app, err := repo.Get(context.Background(), "app-1")
	if err != nil {
		t.Fatal(err)
	}
	if app.OriginalName != "resume.pdf" || !app.CreatedAt.Equal(created) {
		t.Fatalf("unexpected record: %+v", app)
	}
}

func TestPGRepoGetNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT id, original_name, resume_url, created_at").
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"id", "original_name", "resume_url", "created_at"}))

	repo := NewPGRepo(db)
	if _, err := repo.Get(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPGRepoList(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "original_name", "resume_url", "created_at"}).
		AddRow("app-2", "b.pdf", "u2", time.Now()).
		AddRow("app-1", "a.pdf", "u1", time.Now().Add(-time.Hour))
	mock.ExpectQuery("SELECT id, original_name, resume_url, created_at").
		WithArgs(10).
		WillReturnRows(rows)

	repo := NewPGRepo(db)
	apps, err := repo.List(context.Background(), 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(apps) != 2 || apps[0].ID != "app-2" {
		t.Fatalf("unexpected listing: %+v", apps)
	}
}
