// Package storage provides the durable container for the document collection.
package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hoshizora/oboeru/internal/models"
)

// Collection persists the ordered document sequence. The whole collection is
// rewritten on every mutation; there is no append-only log or partial format.
type Collection interface {
	Load() ([]*models.Document, error)
	Save(docs []*models.Document) error
}

// collectionFile is the on-disk shape of the document collection.
type collectionFile struct {
	Documents []*models.Document `json:"documents"`
}

// JSONCollection stores the collection as a single JSON file.
type JSONCollection struct {
	path string
}

// NewJSONCollection returns a collection backed by the JSON file at path.
// Parent directories are created on the first Save.
func NewJSONCollection(path string) *JSONCollection {
	return &JSONCollection{path: path}
}

// Load reads the collection from disk. A missing file loads as an empty
// collection; so does an unreadable or corrupt one, since the collection is
// fully rewritten on the next mutation anyway.
func (c *JSONCollection) Load() ([]*models.Document, error) {
	data, err := os.ReadFile(c.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read collection: %w", err)
	}
	var file collectionFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, nil
	}
	return file.Documents, nil
}

// Save rewrites the whole collection file.
func (c *JSONCollection) Save(docs []*models.Document) error {
	if dir := filepath.Dir(c.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create collection directory: %w", err)
		}
	}
	data, err := json.MarshalIndent(collectionFile{Documents: docs}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal collection: %w", err)
	}
	if err := os.WriteFile(c.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write collection: %w", err)
	}
	return nil
}
