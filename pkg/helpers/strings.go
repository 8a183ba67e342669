package helpers

import "strings"

// IsEmpty reports whether a string is empty or contains only whitespace.
//
// Example:
//
//	helpers.IsEmpty("")      // true
//	helpers.IsEmpty("  ")    // true
//	helpers.IsEmpty("SGB")   // false
func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

// DefaultString returns the first non-empty option, or "" when every
// option is empty or whitespace.
//
// Example:
//
//	title := helpers.DefaultString(doc.Name, doc.Headline)
func DefaultString(options ...string) string {
	for _, option := range options {
		if !IsEmpty(option) {
			return option
		}
	}
	return ""
}
