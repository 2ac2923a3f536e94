package appwrite

import (
	"context"
	"fmt"
	"net/http"
)

// DatabasesAPI is the document-store surface the store depends on. All
// operations address the fixed fishlog database.
type DatabasesAPI interface {
	GetDocument(ctx context.Context, collection, documentID string, out any) error
	CreateDocument(ctx context.Context, collection, documentID string, data any) error
	UpdateDocument(ctx context.Context, collection, documentID string, data any) error
	DeleteDocument(ctx context.Context, collection, documentID string) error
}

// Databases implements DatabasesAPI against the remote service.
type Databases struct {
	c *Client
}

var _ DatabasesAPI = (*Databases)(nil)

func documentPath(collection, documentID string) string {
	return fmt.Sprintf("/databases/%s/collections/%s/documents/%s", DatabaseID, collection, documentID)
}

// GetDocument fetches a document and decodes its fields into out. Fails
// with ErrNotFound when the document is absent.
func (d *Databases) GetDocument(ctx context.Context, collection, documentID string, out any) error {
	return d.c.call(ctx, http.MethodGet, documentPath(collection, documentID), nil, out)
}

// CreateDocument creates a document under the given id. Fails with
// ErrConflict when the id is already taken.
func (d *Databases) CreateDocument(ctx context.Context, collection, documentID string, data any) error {
	body := map[string]any{"documentId": documentID, "data": data}
	path := fmt.Sprintf("/databases/%s/collections/%s/documents", DatabaseID, collection)
	return d.c.call(ctx, http.MethodPost, path, body, nil)
}

// UpdateDocument applies a partial update to an existing document.
func (d *Databases) UpdateDocument(ctx context.Context, collection, documentID string, data any) error {
	body := map[string]any{"data": data}
	return d.c.call(ctx, http.MethodPatch, documentPath(collection, documentID), body, nil)
}

// DeleteDocument removes a document. Fails with ErrNotFound when absent.
func (d *Databases) DeleteDocument(ctx context.Context, collection, documentID string) error {
	return d.c.call(ctx, http.MethodDelete, documentPath(collection, documentID), nil, nil)
}
