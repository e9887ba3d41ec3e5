// Package prompt builds the completion prompt for a classified question.
package prompt

import (
	"strings"

	"rental-support-chatbot/internal/router"
)

// Compose joins the policy prompt, the detected intent, the raw user message
// and the response cue, one per line.
func Compose(intent router.Intent, message string) string {
	var b strings.Builder
	b.Grow(len(SystemPrompt) + len(message) + 64)

	b.WriteString(SystemPrompt)
	b.WriteString("\n")
	b.WriteString(intentLinePrefix)
	b.WriteString(string(intent))
	b.WriteString("\n")
	b.WriteString(userLinePrefix)
	b.WriteString(message)
	b.WriteString("\n")
	b.WriteString(ResponseCue)

	return b.String()
}
