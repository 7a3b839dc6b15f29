package resumes

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"resume-builder/resume/model"
)

// PGRepo implements Repo using Postgres. The document tree is stored as one
// JSONB column; title, template and score are mirrored into columns for
// list queries.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new resume.
func (r *PGRepo) Create(ctx context.Context, resume Resume) error {
	const query = `
INSERT INTO resumes (id, user_id, title, template_id, ats_score, document, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	payload, err := json.Marshal(resume.Document)
	if err != nil {
		return fmt.Errorf("marshal document: %w", err)
	}

	_, err = r.DB.ExecContext(
		ctx,
		query,
		resume.ID,
		resume.UserID,
		resume.Title,
		resume.TemplateID,
		resume.ATSScore,
		payload,
		resume.CreatedAt,
		resume.UpdatedAt,
	)
	return err
}

// GetByID returns a resume by id for a user.
func (r *PGRepo) GetByID(ctx context.Context, userID, resumeID string) (Resume, error) {
	const query = `
SELECT id, user_id, ats_score, document, created_at, updated_at
FROM resumes
WHERE id = $1 AND user_id = $2`

	row := r.DB.QueryRowContext(ctx, query, resumeID, userID)
	resume, err := scanResume(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Resume{}, ErrNotFound
	}
	return resume, err
}

// ListByUser returns a user's resumes, newest first.
func (r *PGRepo) ListByUser(ctx context.Context, userID string) ([]Resume, error) {
	const query = `
SELECT id, user_id, ats_score, document, created_at, updated_at
FROM resumes
WHERE user_id = $1
ORDER BY updated_at DESC`

	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Resume{}
	for rows.Next() {
		resume, err := scanResume(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, resume)
	}
	return out, rows.Err()
}

// Update replaces the stored document and mirrored columns.
func (r *PGRepo) Update(ctx context.Context, resume Resume) error {
	const query = `
UPDATE resumes
SET title = $3, template_id = $4, ats_score = $5, document = $6, updated_at = $7
WHERE id = $1 AND user_id = $2`

	payload, err := json.Marshal(resume.Document)
	if err != nil {
		return fmt.Errorf("marshal document: %w", err)
	}

	result, err := r.DB.ExecContext(
		ctx,
		query,
		resume.ID,
		resume.UserID,
		resume.Title,
		resume.TemplateID,
		resume.ATSScore,
		payload,
		resume.UpdatedAt,
	)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a resume permanently.
func (r *PGRepo) Delete(ctx context.Context, userID, resumeID string) error {
	const query = `DELETE FROM resumes WHERE id = $1 AND user_id = $2`

	result, err := r.DB.ExecContext(ctx, query, resumeID, userID)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanResume(row rowScanner) (Resume, error) {
	var (
		id     string
		resume Resume
		raw    []byte
	)
	if err := row.Scan(&id, &resume.UserID, &resume.ATSScore, &raw, &resume.CreatedAt, &resume.UpdatedAt); err != nil {
		return Resume{}, err
	}

	var doc model.Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return Resume{}, fmt.Errorf("unmarshal document: %w", err)
	}
	doc.ID = id
	resume.Document = doc.Normalize()
	return resume, nil
}
