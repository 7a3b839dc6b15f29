// Package builder binds an editing session to the resumes service, which
// plays the persistence and feedback collaborator roles for server-side
// session use (tests, demos, tooling).
package builder

import (
	"context"

	"resume-builder/internal/resumes"
	"resume-builder/resume/model"
	"resume-builder/resume/session"
)

// Saver adapts the resumes service to the session's persistence contract,
// scoped to one user.
type Saver struct {
	Svc    *resumes.Service
	UserID string
}

// Create persists a new draft and returns the stored document.
func (s Saver) Create(ctx context.Context, doc model.Document) (model.Document, error) {
	resume, err := s.Svc.Create(ctx, s.UserID, doc)
	if err != nil {
		return model.Document{}, err
	}
	return resume.Document, nil
}

// Update replaces a persisted document and returns the stored result.
func (s Saver) Update(ctx context.Context, id string, doc model.Document) (model.Document, error) {
	resume, err := s.Svc.Update(ctx, s.UserID, id, doc)
	if err != nil {
		return model.Document{}, err
	}
	return resume.Document, nil
}

// Fetcher adapts the resumes service to the session's feedback contract.
type Fetcher struct {
	Svc    *resumes.Service
	UserID string
}

// Fetch returns the current screening feedback for a persisted resume.
func (f Fetcher) Fetch(ctx context.Context, id string) (model.FeedbackResult, error) {
	return f.Svc.Feedback(ctx, f.UserID, id)
}

// NewSession starts an editing session over an empty draft for a user.
func NewSession(svc *resumes.Service, userID string) *session.Session {
	return session.New(Saver{Svc: svc, UserID: userID}, Fetcher{Svc: svc, UserID: userID})
}

// OpenSession starts an editing session over an existing resume.
func OpenSession(ctx context.Context, svc *resumes.Service, userID, resumeID string) (*session.Session, error) {
	resume, err := svc.Get(ctx, userID, resumeID)
	if err != nil {
		return nil, err
	}
	return session.Hydrate(resume.Document, Saver{Svc: svc, UserID: userID}, Fetcher{Svc: svc, UserID: userID})
}
