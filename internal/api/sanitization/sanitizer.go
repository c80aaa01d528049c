package sanitization

import (
	"html/template"
	"regexp"
	"strings"
)

var (
	unsafeFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9.-]`)
	headerBreaks        = strings.NewReplacer("\r", " ", "\n", " ")
)

// EscapeHTML escapes user text for interpolation into an HTML email body
func EscapeHTML(input string) string {
	return template.HTMLEscapeString(input)
}

// SanitizeFilename keeps alphanumerics, dots and hyphens, replacing
// everything else with an underscore. Falls back when nothing usable is left.
func SanitizeFilename(input, fallback string) string {
	name := strings.TrimSpace(input)
	if name == "" {
		return fallback
	}
	name = unsafeFilenameChars.ReplaceAllString(name, "_")
	if strings.Trim(name, "._") == "" {
		return fallback
	}
	return name
}

// SanitizeHeader strips line breaks so a value cannot start a new mail header
func SanitizeHeader(input string) string {
	return strings.TrimSpace(headerBreaks.Replace(input))
}
