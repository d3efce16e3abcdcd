package util

import "strings"

// NormalizeKey lowercases and trims a string for use as a consistent lookup key.
func NormalizeKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Ptr returns a pointer to v.
func Ptr[T any](v T) *T {
	return &v
}
