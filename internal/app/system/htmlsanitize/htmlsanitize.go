// Package htmlsanitize strips markup from user-supplied text before it is
// stored. Titles, names, and descriptions are plain text in this API, so
// the strict policy is applied: any HTML a client smuggles in is removed
// rather than escaped.
package htmlsanitize

import "github.com/microcosm-cc/bluemonday"

var strict = bluemonday.StrictPolicy()

// Strip removes all HTML elements and attributes, returning the text content.
func Strip(s string) string {
	return strict.Sanitize(s)
}
