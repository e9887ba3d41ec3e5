package completion

import "rental-support-chatbot/pkg/gemini"

// Log prefixes
const (
	LogPrefixComplete = "internal.completion.Complete"
)

// FallbackModels are tried in order after the optional override.
var FallbackModels = []string{
	gemini.DefaultModel,
	"gemini-2.0-flash",
	"gemini-1.5-flash",
}

// FallbackAnswer is returned when every candidate model failed.
const FallbackAnswer = "I'm having trouble reaching the AI model right now. Please try again in a moment."

// Attempt outcomes used in logs and metrics.
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

const tracerName = "rental-support-chatbot/internal/completion"
