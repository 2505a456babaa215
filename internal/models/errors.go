package models

import "errors"

// Validation errors surfaced to callers during ingestion.
var (
	// ErrEmptyText indicates a document's text is empty or whitespace-only.
	ErrEmptyText = errors.New("document text cannot be empty")
)
