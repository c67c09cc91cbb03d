package service

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/novakb/novakb/backend/go-services/internal/document"
	"github.com/novakb/novakb/backend/go-services/internal/document/repository"
	"github.com/novakb/novakb/backend/go-services/pkg/logger"
)

const (
	defaultTitle   = "Untitled Document"
	defaultContent = "<p></p>"
)

// welcomeContent seeds the very first collection so a fresh install opens on
// something instead of an empty list.
const welcomeContent = `<h1>Welcome to Nova Knowledge Base</h1>
<p>This is a distraction-free editor with AI-powered writing assistance.</p>
<h2>Features</h2>
<ul>
<li>Rich text editing</li>
<li>AI-powered writing assistance</li>
<li>Durable persistence</li>
<li>GitHub-backed backup and sync</li>
</ul>
<p>Try selecting this text and clicking the "AI Assist" button in the toolbar!</p>`

// Archiver receives a copy of blobs worth preserving (corrupt payloads).
// Optional; a nil Archiver disables archiving.
type Archiver interface {
	SaveSnapshot(ctx context.Context, name string, payload []byte) error
}

// Service implements the document store: durable CRUD over the collection
// with get-all as the only read primitive. Every mutation is a full
// read-modify-write of the single backing blob, serialized by s.mu (the web
// client relied on a single-threaded event loop for this; an HTTP service
// cannot).
type Service struct {
	mu      sync.Mutex
	repo    repository.Repository
	archive Archiver
}

func NewService(repo repository.Repository) *Service {
	return &Service{repo: repo}
}

// SetArchiver wires an optional snapshot archive for quarantined blobs.
func (s *Service) SetArchiver(a Archiver) { s.archive = a }

// GetAll returns the persisted collection. On first-ever call it seeds and
// persists a single welcome document. A blob that fails to parse is
// quarantined and reported as an empty collection: the caller sees data
// loss, not an error, while the raw payload stays recoverable.
func (s *Service) GetAll(ctx context.Context) ([]document.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.getAllLocked(ctx)
}

func (s *Service) getAllLocked(ctx context.Context) ([]document.Document, error) {
	raw, ok, err := s.repo.Load(ctx)
	if err != nil {
		return nil, err
	}
	if !ok {
		welcome, err := s.seedWelcomeLocked(ctx)
		if err != nil {
			return nil, err
		}
		return []document.Document{welcome}, nil
	}

	var docs []document.Document
	if err := json.Unmarshal(raw, &docs); err != nil {
		logger.Errorf("document blob failed to parse, quarantining %d bytes: %v", len(raw), err)
		if qerr := s.repo.Quarantine(ctx, raw); qerr != nil {
			logger.Errorf("quarantine failed: %v", qerr)
		}
		if s.archive != nil {
			if aerr := s.archive.SaveSnapshot(ctx, "corrupt-blob", raw); aerr != nil {
				logger.Warnf("archive of corrupt blob failed: %v", aerr)
			}
		}
		return []document.Document{}, nil
	}
	return docs, nil
}

func (s *Service) seedWelcomeLocked(ctx context.Context) (document.Document, error) {
	id, err := document.NewID()
	if err != nil {
		return document.Document{}, err
	}
	welcome := document.Document{
		ID:        id,
		Title:     "Welcome to Nova",
		Content:   welcomeContent,
		UpdatedAt: document.Now(),
	}
	if err := s.saveAllLocked(ctx, []document.Document{welcome}); err != nil {
		return document.Document{}, err
	}
	return welcome, nil
}

// Create allocates a new document and prepends it to the collection, so the
// newest-created record is always first. Empty title/content fall back to
// the defaults; a template picker passes both.
func (s *Service) Create(ctx context.Context, title, content string) (document.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if title == "" {
		title = defaultTitle
	}
	if content == "" {
		content = defaultContent
	}
	id, err := document.NewID()
	if err != nil {
		return document.Document{}, err
	}
	doc := document.Document{ID: id, Title: title, Content: content, UpdatedAt: document.Now()}

	docs, err := s.getAllLocked(ctx)
	if err != nil {
		return document.Document{}, err
	}
	docs = append([]document.Document{doc}, docs...)
	if err := s.saveAllLocked(ctx, docs); err != nil {
		return document.Document{}, err
	}
	return doc, nil
}

// Update merges the provided fields into the record with the given id and
// stamps UpdatedAt. An unknown id is silently accepted as a no-op; either
// way the full (possibly unchanged) collection is returned.
func (s *Service) Update(ctx context.Context, id string, fields document.Fields) ([]document.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	docs, err := s.getAllLocked(ctx)
	if err != nil {
		return nil, err
	}
	for i := range docs {
		if docs[i].ID != id {
			continue
		}
		if fields.Title != nil {
			docs[i].Title = *fields.Title
		}
		if fields.Content != nil {
			docs[i].Content = *fields.Content
		}
		docs[i].UpdatedAt = document.Now()
		if err := s.saveAllLocked(ctx, docs); err != nil {
			return nil, err
		}
		return docs, nil
	}
	return docs, nil
}

// Delete removes the record with the given id, if present, and returns the
// resulting collection. Deleting an unknown id is a no-op.
func (s *Service) Delete(ctx context.Context, id string) ([]document.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	docs, err := s.getAllLocked(ctx)
	if err != nil {
		return nil, err
	}
	out := docs[:0:0]
	for _, d := range docs {
		if d.ID != id {
			out = append(out, d)
		}
	}
	if len(out) == len(docs) {
		return docs, nil
	}
	if err := s.saveAllLocked(ctx, out); err != nil {
		return nil, err
	}
	return out, nil
}

// SaveAll overwrites the entire persisted collection verbatim. Used by the
// sync merge path, which has already decided the final ordering.
func (s *Service) SaveAll(ctx context.Context, docs []document.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saveAllLocked(ctx, docs)
}

func (s *Service) saveAllLocked(ctx context.Context, docs []document.Document) error {
	if docs == nil {
		docs = []document.Document{}
	}
	raw, err := json.Marshal(docs)
	if err != nil {
		return err
	}
	return s.repo.Store(ctx, raw)
}
