package resumes

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"resume-builder/internal/ats"
	"resume-builder/internal/shared/metrics"
	"resume-builder/internal/templates"
	"resume-builder/resume/model"
)

// Service contains business logic for resumes. It recomputes the screening
// score on every save so the stored score always reflects stored content.
type Service struct {
	Repo Repo
}

// Create persists a new draft. The incoming document must not carry an id.
func (s *Service) Create(ctx context.Context, userID string, doc model.Document) (Resume, error) {
	if strings.TrimSpace(userID) == "" {
		return Resume{}, fmt.Errorf("%w: user id required", ErrInvalidInput)
	}
	if doc.ID != "" {
		return Resume{}, fmt.Errorf("%w: create must not carry a document id", ErrInvalidInput)
	}

	prepared, err := prepare(doc)
	if err != nil {
		return Resume{}, err
	}
	prepared.ID = uuid.NewString()

	now := time.Now().UTC()
	resume := Resume{
		Document:  prepared,
		UserID:    userID,
		ATSScore:  ats.Score(prepared).Score,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.Repo.Create(ctx, resume); err != nil {
		return Resume{}, err
	}
	metrics.IncResumeCreated()
	return resume, nil
}

// Get returns one resume for a user.
func (s *Service) Get(ctx context.Context, userID, resumeID string) (Resume, error) {
	resume, err := s.Repo.GetByID(ctx, userID, resumeID)
	if err != nil {
		return Resume{}, err
	}
	resume.Document = resume.Document.Normalize()
	return resume, nil
}

// List returns list-view summaries of a user's resumes, newest first.
func (s *Service) List(ctx context.Context, userID string) ([]Summary, error) {
	stored, err := s.Repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]Summary, 0, len(stored))
	for _, resume := range stored {
		out = append(out, resume.summary())
	}
	return out, nil
}

// Update replaces the document content of a persisted resume. The target id
// comes from the route, never from the payload.
func (s *Service) Update(ctx context.Context, userID, resumeID string, doc model.Document) (Resume, error) {
	existing, err := s.Repo.GetByID(ctx, userID, resumeID)
	if err != nil {
		return Resume{}, err
	}

	prepared, err := prepare(doc)
	if err != nil {
		return Resume{}, err
	}
	prepared.ID = existing.ID

	existing.Document = prepared
	existing.ATSScore = ats.Score(prepared).Score
	existing.UpdatedAt = time.Now().UTC()
	if err := s.Repo.Update(ctx, existing); err != nil {
		return Resume{}, err
	}
	metrics.IncResumeUpdated()
	return existing, nil
}

// Delete removes a resume permanently.
func (s *Service) Delete(ctx context.Context, userID, resumeID string) error {
	return s.Repo.Delete(ctx, userID, resumeID)
}

// Duplicate persists a copy of an existing resume under a new id.
func (s *Service) Duplicate(ctx context.Context, userID, resumeID string) (Resume, error) {
	original, err := s.Repo.GetByID(ctx, userID, resumeID)
	if err != nil {
		return Resume{}, err
	}

	copied := original
	copied.Document = original.Document.Clone()
	copied.ID = uuid.NewString()
	copied.Title = original.Title + " (Copy)"
	now := time.Now().UTC()
	copied.CreatedAt = now
	copied.UpdatedAt = now

	if err := s.Repo.Create(ctx, copied); err != nil {
		return Resume{}, err
	}
	return copied, nil
}

// Feedback computes the current screening feedback for a persisted resume.
func (s *Service) Feedback(ctx context.Context, userID, resumeID string) (model.FeedbackResult, error) {
	resume, err := s.Get(ctx, userID, resumeID)
	if err != nil {
		return model.FeedbackResult{}, err
	}
	return ats.Score(resume.Document), nil
}

// prepare normalizes an incoming document for persistence: structurally
// complete tree, default title and template, catalog-validated template id,
// and an id on every collection item.
func prepare(doc model.Document) (model.Document, error) {
	out := doc.Clone()
	if strings.TrimSpace(out.Title) == "" {
		out.Title = "My Resume"
	}
	if strings.TrimSpace(out.TemplateID) == "" {
		out.TemplateID = templates.DefaultTemplateID
	}
	if !templates.Known(out.TemplateID) {
		return model.Document{}, fmt.Errorf("%w: %s", ErrUnknownTemplate, out.TemplateID)
	}
	ensureItemIDs(&out)
	return out, nil
}

// ensureItemIDs mints ids for items created outside the editor (raw API
// payloads). Existing ids are never touched.
func ensureItemIDs(doc *model.Document) {
	for i := range doc.WorkExperience {
		if doc.WorkExperience[i].ID == "" {
			doc.WorkExperience[i].ID = uuid.NewString()
		}
	}
	for i := range doc.Education {
		if doc.Education[i].ID == "" {
			doc.Education[i].ID = uuid.NewString()
		}
	}
	for i := range doc.Projects {
		if doc.Projects[i].ID == "" {
			doc.Projects[i].ID = uuid.NewString()
		}
	}
	for i := range doc.Certifications {
		if doc.Certifications[i].ID == "" {
			doc.Certifications[i].ID = uuid.NewString()
		}
	}
}
