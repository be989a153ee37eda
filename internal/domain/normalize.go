package domain

import (
	"strings"
	"unicode"
)

// NormalizeSpace prepares free text for storage and search:
//   - trims leading/trailing whitespace
//   - collapses any run of whitespace (tabs, newlines) into one space
//
// Case is preserved; search matching is case-insensitive in SQL.
func NormalizeSpace(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(text))
	prevSpace := false
	for _, r := range text {
		if unicode.IsSpace(r) {
			if prevSpace {
				continue
			}
			prevSpace = true
			b.WriteByte(' ')
			continue
		}
		prevSpace = false
		b.WriteRune(r)
	}
	return b.String()
}

// EscapeLike escapes LIKE metacharacters so user input matches literally.
func EscapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
