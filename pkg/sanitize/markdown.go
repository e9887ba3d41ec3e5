// Package sanitize normalizes LLM output before it reaches a chat client.
package sanitize

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	boldPattern      = regexp.MustCompile(`\*\*(.*?)\*\*`)
	italicPattern    = regexp.MustCompile(`\*(.*?)\*`)
	blankRunsPattern = regexp.MustCompile(`\n{3,}`)
)

// Markdown strips bold and italic markers and leading "*" bullets, collapses
// runs of three or more newlines into one blank line and trims the result.
// Empty input is returned unchanged.
//
// Bold runs are removed before italics so "**x**" is never read as "*" + "*x*" + "*".
// Bullet whitespace is consumed within its own line only; lines are never joined.
func Markdown(text string) string {
	if text == "" {
		return text
	}

	text = boldPattern.ReplaceAllString(text, "$1")
	text = italicPattern.ReplaceAllString(text, "$1")
	text = stripBullets(text)
	text = blankRunsPattern.ReplaceAllString(text, "\n\n")

	return strings.TrimSpace(text)
}

// stripBullets drops a leading "*" marker and its surrounding blanks on each
// line. It never joins lines: a multiline `^\s*\*\s*` regex would consume the
// preceding blank lines too and Markdown would stop being idempotent.
func stripBullets(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		rest := strings.TrimLeftFunc(line, unicode.IsSpace)
		if strings.HasPrefix(rest, "*") {
			lines[i] = strings.TrimLeftFunc(rest[1:], unicode.IsSpace)
		}
	}
	return strings.Join(lines, "\n")
}
