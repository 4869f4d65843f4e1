package store

import "context"

// Backend is the storage interface for session documents. Documents are
// addressed by file name.
type Backend interface {
	// Save stores doc under name, replacing any previous document
	Save(ctx context.Context, name string, doc *Document) error
	// Load retrieves the document stored under name
	Load(ctx context.Context, name string) (*Document, error)
}
