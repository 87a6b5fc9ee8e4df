// Package sanitize strips markup from learner-supplied free text before it is
// stored or echoed back.
package sanitize

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var strict = bluemonday.StrictPolicy()

// Text removes every HTML element and attribute, unescapes the entities the
// policy introduced, and trims surrounding whitespace.
func Text(s string) string {
	if strings.TrimSpace(s) == "" {
		return ""
	}
	return strings.TrimSpace(html.UnescapeString(strict.Sanitize(s)))
}
