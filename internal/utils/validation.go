package utils

import (
	"strings"
)

// NormalizeOrigin trims whitespace and trailing slashes so
// "https://example.com/" and "https://example.com" compare equal
func NormalizeOrigin(origin string) string {
	return strings.TrimRight(strings.TrimSpace(origin), "/")
}

// OriginAllowed reports whether origin matches one of the allowed origins
// after normalization. An empty origin (same-origin or non-browser client)
// is always allowed.
func OriginAllowed(origin string, allowed []string) bool {
	if origin == "" {
		return true
	}
	origin = NormalizeOrigin(origin)
	for _, candidate := range allowed {
		if NormalizeOrigin(candidate) == origin {
			return true
		}
	}
	return false
}
