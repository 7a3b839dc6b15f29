package resumes

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"resume-builder/resume/model"
)

func testResume(t *testing.T) Resume {
	t.Helper()
	doc := model.New()
	doc.ID = "r1"
	doc.Title = "Backend Role"
	doc.TemplateID = "ats-tech"
	doc.Skills = []string{"Go", "SQL"}
	now := time.Now().UTC()
	return Resume{
		Document:  doc,
		UserID:    "u1",
		ATSScore:  42,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestPGRepoCreateMirrorsColumns(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	resume := testResume(t)

	mock.ExpectExec("INSERT INTO resumes").
		WithArgs(
			resume.ID,
			resume.UserID,
			resume.Title,
			resume.TemplateID,
			resume.ATSScore,
			sqlmock.AnyArg(), // document json
			resume.CreatedAt,
			resume.UpdatedAt,
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Create(context.Background(), resume); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoGetByIDRestoresDocument(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	resume := testResume(t)
	payload, err := json.Marshal(resume.Document)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	rows := sqlmock.NewRows([]string{"id", "user_id", "ats_score", "document", "created_at", "updated_at"}).
		AddRow(resume.ID, resume.UserID, resume.ATSScore, payload, resume.CreatedAt, resume.UpdatedAt)
	mock.ExpectQuery("SELECT id, user_id, ats_score, document").
		WithArgs("r1", "u1").
		WillReturnRows(rows)

	got, err := repo.GetByID(context.Background(), "u1", "r1")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.ID != "r1" || got.Title != "Backend Role" {
		t.Fatalf("unexpected resume %q %q", got.ID, got.Title)
	}
	if len(got.Document.Skills) != 2 {
		t.Fatalf("document not restored: %v", got.Document.Skills)
	}
	if got.Document.WorkExperience == nil {
		t.Fatal("expected normalized document with non-nil collections")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoGetByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}

	rows := sqlmock.NewRows([]string{"id", "user_id", "ats_score", "document", "created_at", "updated_at"})
	mock.ExpectQuery("SELECT id, user_id, ats_score, document").
		WithArgs("missing", "u1").
		WillReturnRows(rows)

	_, err = repo.GetByID(context.Background(), "u1", "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPGRepoUpdateNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	resume := testResume(t)

	mock.ExpectExec("UPDATE resumes").
		WithArgs(
			resume.ID,
			resume.UserID,
			resume.Title,
			resume.TemplateID,
			resume.ATSScore,
			sqlmock.AnyArg(),
			resume.UpdatedAt,
		).
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.Update(context.Background(), resume); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPGRepoDeleteScopedToOwner(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}

	mock.ExpectExec("DELETE FROM resumes").
		WithArgs("r1", "u2").
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.Delete(context.Background(), "u2", "r1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPGRepoListByUser(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	resume := testResume(t)
	payload, err := json.Marshal(resume.Document)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	rows := sqlmock.NewRows([]string{"id", "user_id", "ats_score", "document", "created_at", "updated_at"}).
		AddRow("r1", "u1", 42, payload, resume.CreatedAt, resume.UpdatedAt).
		AddRow("r2", "u1", 10, payload, resume.CreatedAt, resume.UpdatedAt)
	mock.ExpectQuery("SELECT id, user_id, ats_score, document").
		WithArgs("u1").
		WillReturnRows(rows)

	out, err := repo.ListByUser(context.Background(), "u1")
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("expected 2 resumes, got %d", len(out))
	}
	if out[1].ID != "r2" {
		t.Fatalf("row identity not applied, got %q", out[1].ID)
	}
}
