package store

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/spark-portfolio/spark/internal/types"
)

// MemoryStore is the in-memory DocumentStore. Documents live for the process
// lifetime only.
type MemoryStore struct {
	mu   sync.Mutex
	docs []types.PortfolioDocument
}

// NewMemoryStore creates an empty in-memory document store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// newDocumentID derives a unique id from the generation timestamp, with a uuid
// suffix to disambiguate documents generated in the same millisecond.
func newDocumentID(now time.Time) string {
	suffix := strings.Split(uuid.NewString(), "-")[0]
	return fmt.Sprintf("doc_%d_%s", now.UnixMilli(), suffix)
}

// Create stores a new document.
func (s *MemoryStore) Create(_ context.Context, title, content string) (types.PortfolioDocument, error) {
	now := time.Now().UTC()
	doc := types.PortfolioDocument{
		ID:        newDocumentID(now),
		Title:     title,
		CreatedAt: now,
		Content:   content,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	// Newest first, matching list order.
	s.docs = append([]types.PortfolioDocument{doc}, s.docs...)
	return doc, nil
}

// List returns all documents, newest first, without content.
func (s *MemoryStore) List(_ context.Context) ([]types.PortfolioDocument, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]types.PortfolioDocument, 0, len(s.docs))
	for _, doc := range s.docs {
		out = append(out, doc.Lite())
	}
	return out, nil
}

// Get returns the full document record.
func (s *MemoryStore) Get(_ context.Context, id string) (types.PortfolioDocument, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, doc := range s.docs {
		if doc.ID == id {
			return doc, nil
		}
	}
	return types.PortfolioDocument{}, &ErrDocumentNotFound{ID: id}
}

// Rename updates a document's title in place.
func (s *MemoryStore) Rename(_ context.Context, id, title string) (types.PortfolioDocument, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.docs {
		if s.docs[i].ID == id {
			s.docs[i].Title = title
			return s.docs[i].Lite(), nil
		}
	}
	return types.PortfolioDocument{}, &ErrDocumentNotFound{ID: id}
}

// Delete removes a document.
func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.docs {
		if s.docs[i].ID == id {
			s.docs = append(s.docs[:i], s.docs[i+1:]...)
			return nil
		}
	}
	return &ErrDocumentNotFound{ID: id}
}
