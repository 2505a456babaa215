// Package utils provides shared utilities for text and logging.
package utils

import (
	"path/filepath"
	"regexp"
	"strings"
)

// Truncate returns s shortened to at most maxChars characters (runes), with
// "..." appended when anything was cut. Truncation never splits a multi-byte
// character. If maxChars is 0 or negative, s is returned unchanged.
func Truncate(s string, maxChars int) string {
	if maxChars <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= maxChars {
		return s
	}
	cut := maxChars - 3
	if cut < 0 {
		cut = 0
	}
	return strings.TrimRight(string(runes[:cut]), " \t\n") + "..."
}

var nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify lowercases s and collapses every run of non-alphanumeric
// characters into a single hyphen, trimming hyphens at both ends.
func Slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = nonSlugChars.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// SanitizeFilename returns a safe filename built from the slug of the name
// part plus the original (lowercased) extension. An unusable name yields
// "document" and a missing extension yields ".txt".
func SanitizeFilename(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	name := Slugify(strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename)))
	if name == "" {
		name = "document"
	}
	if ext == "" {
		ext = ".txt"
	}
	return name + ext
}
