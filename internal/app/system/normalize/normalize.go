// Package normalize holds the canonical forms for user-entered identity
// fields. Every code path that stores or matches an email must go through
// Email so that lookups stay case-insensitive.
package normalize

import "strings"

// Email lowercases and trims an email address.
func Email(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Name trims surrounding whitespace but preserves case.
func Name(s string) string {
	return strings.TrimSpace(s)
}
