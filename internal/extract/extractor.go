// Package extract provides text extraction from uploaded document files.
package extract

import (
	"path/filepath"
	"strings"
)

// Extractor extracts plain text from document bytes.
type Extractor struct{}

// NewExtractor returns a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract returns the text content of the file, using the filename extension
// to pick the format. Recognized binary formats (.pdf, .docx, .xlsx) that
// fail structured extraction yield empty text rather than an error; anything
// else is decoded as best-effort plain text.
func (e *Extractor) Extract(content []byte, filename string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		text, err := extractPDF(content)
		if err != nil {
			return ""
		}
		return text
	case ".docx":
		text, err := extractDOCX(content)
		if err != nil {
			return ""
		}
		return text
	case ".xlsx":
		text, err := extractExcel(content)
		if err != nil {
			return ""
		}
		return text
	default:
		return extractPlain(content)
	}
}
