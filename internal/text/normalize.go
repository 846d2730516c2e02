// Package text normalizes work item rich-text descriptions and extracts
// embedded design links.
package text

import (
	"html"
	"regexp"
	"strings"
)

var (
	// tagPattern matches markup tags, shortest span from "<" to the next ">".
	tagPattern = regexp.MustCompile(`<[^>]+>`)

	// whitespacePattern matches any run of whitespace, newlines and
	// Unicode spaces included (a decoded &nbsp; is U+00A0, outside \s).
	whitespacePattern = regexp.MustCompile(`[\s\p{Z}\x{85}]+`)

	// figmaPattern matches a Figma file/design/proto link. The trailing path
	// stops at whitespace and at quote/bracket/brace characters so a link
	// inside an href attribute is captured without its closing delimiter.
	figmaPattern = regexp.MustCompile(
		`https?://(?:www\.)?figma\.com/(?:file|design|proto)/[a-zA-Z0-9\-_]+(?:/[^\s"'<>)\}\]]*)?`)
)

// Normalize renders raw markup as plain text: tags are replaced with spaces,
// HTML entities are decoded, and whitespace runs are collapsed to a single
// space. Empty input yields an empty string.
func Normalize(raw string) string {
	if raw == "" {
		return ""
	}

	clean := tagPattern.ReplaceAllString(raw, " ")
	clean = html.UnescapeString(clean)
	clean = whitespacePattern.ReplaceAllString(clean, " ")
	return strings.TrimSpace(clean)
}

// FirstFigmaURL returns the first Figma link found in raw markup, verbatim
// as it appears, or an empty string when there is none. The input must be
// the raw description, before normalization; only the first occurrence is
// considered.
func FirstFigmaURL(raw string) string {
	return figmaPattern.FindString(raw)
}
