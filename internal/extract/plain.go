package extract

import (
	"strings"
	"unicode/utf8"
)

// extractPlain decodes content as best-effort UTF-8 text, replacing invalid
// sequences with the replacement character.
func extractPlain(content []byte) string {
	if !utf8.Valid(content) {
		return strings.ToValidUTF8(string(content), "�")
	}
	return string(content)
}
