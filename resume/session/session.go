// Package session orchestrates one resume editing session: the current
// document, its persisted-vs-draft status, save dispatch, and the last
// fetched feedback result.
package session

import (
	"context"
	"errors"
	"strings"
	"sync"

	"resume-builder/resume/model"
)

// State is the lifecycle position of a session.
type State string

const (
	// StateNewDraft means the document has never been successfully persisted.
	StateNewDraft State = "new_draft"
	// StateSaving means a save is in flight. Local editing continues.
	StateSaving State = "saving"
	// StatePersisted means the current document equals the last-saved snapshot.
	StatePersisted State = "persisted"
	// StateDirty means the current document differs from the last-saved snapshot.
	StateDirty State = "dirty"
	// StateClosed means the session has been torn down. Late responses for
	// operations dispatched before Close are discarded.
	StateClosed State = "closed"
)

// DefaultTitle is applied when a document is saved with a blank title.
const DefaultTitle = "My Resume"

var (
	// ErrSaveInFlight rejects a save while another save is outstanding.
	// Interleaved saves could let an older response overwrite a newer edit.
	ErrSaveInFlight = errors.New("save already in flight")
	// ErrSessionClosed rejects operations on a torn-down session.
	ErrSessionClosed = errors.New("session closed")
	// ErrNotPersisted rejects feedback loading for an unsaved draft.
	ErrNotPersisted = errors.New("document not persisted")
	// ErrNoDocumentID rejects hydration from a record without an id.
	ErrNoDocumentID = errors.New("document id required")
)

// Saver persists documents. A document without an id goes to Create, a
// document with an id goes to Update, never the other way around.
type Saver interface {
	Create(ctx context.Context, doc model.Document) (model.Document, error)
	Update(ctx context.Context, id string, doc model.Document) (model.Document, error)
}

// FeedbackFetcher retrieves screening feedback for a persisted document.
type FeedbackFetcher interface {
	Fetch(ctx context.Context, id string) (model.FeedbackResult, error)
}

// Session holds one editing session. All mutations are serialized; save and
// feedback calls run their network leg outside the session lock so editing
// never blocks on the wire.
type Session struct {
	saver   Saver
	fetcher FeedbackFetcher

	doc       model.Document
	lastSaved *model.Document
	feedback  *model.FeedbackResult

	saving   bool
	closed   bool
	fetchSeq uint64

	mu sync.Mutex
}

// New starts a session over an empty draft.
func New(saver Saver, fetcher FeedbackFetcher) *Session {
	return &Session{saver: saver, fetcher: fetcher, doc: model.New()}
}

// Hydrate starts a session over a fetched, already-persisted document.
func Hydrate(doc model.Document, saver Saver, fetcher FeedbackFetcher) (*Session, error) {
	if strings.TrimSpace(doc.ID) == "" {
		return nil, ErrNoDocumentID
	}
	normalized := doc.Clone()
	snapshot := normalized.Clone()
	return &Session{
		saver:     saver,
		fetcher:   fetcher,
		doc:       normalized,
		lastSaved: &snapshot,
	}, nil
}

// Document returns a copy of the current document.
func (s *Session) Document() model.Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc.Clone()
}

// State derives the current lifecycle state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stateLocked()
}

func (s *Session) stateLocked() State {
	switch {
	case s.closed:
		return StateClosed
	case s.saving:
		return StateSaving
	case s.lastSaved == nil:
		return StateNewDraft
	case s.doc.Equal(*s.lastSaved):
		return StatePersisted
	default:
		return StateDirty
	}
}

// Dirty reports whether the current document differs from the last-saved
// snapshot. A never-saved draft is not dirty; it is new.
func (s *Session) Dirty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSaved != nil && !s.doc.Equal(*s.lastSaved)
}

// Edit applies one mutation to the current document. The mutation receives a
// copy and returns the replacement; on error the document is unchanged.
// Edits are permitted while a save is in flight: they are preserved locally
// and become part of the next save, never merged into the in-flight request.
func (s *Session) Edit(apply func(model.Document) (model.Document, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrSessionClosed
	}
	next, err := apply(s.doc.Clone())
	if err != nil {
		return err
	}
	if next.ID != s.doc.ID {
		// Identity is assigned by the persistence layer, never by an edit.
		next.ID = s.doc.ID
	}
	s.doc = next.Normalize()
	return nil
}

// Save persists the current document: create for a new draft, update once an
// id has been assigned. On success the returned document becomes the new
// last-saved snapshot and a feedback refresh is attempted (its failure does
// not fail the save). On failure the session keeps its pre-save state and
// the local document is untouched.
func (s *Session) Save(ctx context.Context) (model.Document, error) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return model.Document{}, ErrSessionClosed
	}
	if s.saving {
		s.mu.Unlock()
		return model.Document{}, ErrSaveInFlight
	}
	dispatched := s.doc.Clone()
	payload := s.doc.Clone()
	if strings.TrimSpace(payload.Title) == "" {
		// The default goes on the wire only. The local document adopts it
		// from the server response, so a failed save leaves no trace.
		payload.Title = DefaultTitle
	}
	isCreate := payload.ID == ""
	s.saving = true
	s.mu.Unlock()

	var saved model.Document
	var err error
	if isCreate {
		saved, err = s.saver.Create(ctx, payload)
	} else {
		saved, err = s.saver.Update(ctx, payload.ID, payload)
	}

	s.mu.Lock()
	s.saving = false
	if s.closed {
		s.mu.Unlock()
		return model.Document{}, ErrSessionClosed
	}
	if err != nil {
		s.mu.Unlock()
		return model.Document{}, err
	}

	saved = saved.Clone()
	snapshot := saved.Clone()
	s.lastSaved = &snapshot
	if s.doc.Equal(dispatched) {
		// No edits arrived while the save was on the wire. Adopt the
		// server's document wholesale so defaults it filled in (title,
		// template) land in the session and the state settles on persisted.
		s.doc = saved.Clone()
	} else if isCreate {
		// Edits are in flight; adopt only the assigned id and let the next
		// save reconcile with the server.
		s.doc.ID = saved.ID
	}
	s.mu.Unlock()

	if s.fetcher != nil {
		// Refresh feedback so it reflects the post-save document. The prior
		// result is retained if the fetch fails.
		_, _ = s.LoadFeedback(ctx)
	}
	return saved, nil
}

// LoadFeedback fetches feedback for the persisted document and stores it.
// The stored result is replaced atomically: either the whole triple is
// replaced or, on failure, the prior result is retained. Responses that
// arrive after the session closed, or after a newer fetch started, are
// discarded.
func (s *Session) LoadFeedback(ctx context.Context) (model.FeedbackResult, error) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return model.FeedbackResult{}, ErrSessionClosed
	}
	id := s.doc.ID
	if strings.TrimSpace(id) == "" {
		s.mu.Unlock()
		return model.FeedbackResult{}, ErrNotPersisted
	}
	s.fetchSeq++
	seq := s.fetchSeq
	s.mu.Unlock()

	result, err := s.fetcher.Fetch(ctx, id)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return model.FeedbackResult{}, ErrSessionClosed
	}
	if err != nil {
		return model.FeedbackResult{}, err
	}
	if seq == s.fetchSeq {
		stored := result
		s.feedback = &stored
	}
	return result, nil
}

// Feedback returns the last stored feedback result, if any.
func (s *Session) Feedback() (model.FeedbackResult, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.feedback == nil {
		return model.FeedbackResult{}, false
	}
	return *s.feedback, true
}

// Close tears the session down. Persisted state remains the source of truth;
// in-flight saves and fetches complete on the wire but their results are
// discarded.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
}
