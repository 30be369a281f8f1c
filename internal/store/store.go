// Package store provides the portfolio document store abstraction and the
// in-memory fixture data the dashboard serves.
package store

import (
	"context"
	"fmt"

	"github.com/spark-portfolio/spark/internal/types"
)

// DocumentStore is an opaque key-value store of portfolio documents keyed by
// id. The core never assumes a particular persistence backend; tests may
// substitute any implementation.
type DocumentStore interface {
	// Create stores a new document and returns it with its generated id and
	// creation timestamp.
	Create(ctx context.Context, title, content string) (types.PortfolioDocument, error)
	// List returns all documents, newest first, without content.
	List(ctx context.Context) ([]types.PortfolioDocument, error)
	// Get returns the full document record including content.
	Get(ctx context.Context, id string) (types.PortfolioDocument, error)
	// Rename updates a document's title in place. Rename is the only partial
	// update a document supports.
	Rename(ctx context.Context, id, title string) (types.PortfolioDocument, error)
	// Delete removes a document.
	Delete(ctx context.Context, id string) error
}

// ErrDocumentNotFound indicates no document exists with the given id.
type ErrDocumentNotFound struct {
	ID string
}

func (e *ErrDocumentNotFound) Error() string {
	return fmt.Sprintf("document not found: %s", e.ID)
}
