package utils

import "github.com/microcosm-cc/bluemonday"

// Captions are plain text, so the strict policy strips every tag.
var sanitizer = bluemonday.StrictPolicy()

// Sanitize cleans user-supplied text to prevent stored XSS.
func Sanitize(input string) string {
	return sanitizer.Sanitize(input)
}
