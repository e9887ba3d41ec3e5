package chat

import "rental-support-chatbot/internal/router"

// Outcome is the terminal state of one chat request.
type Outcome string

const (
	OutcomeEmptyInput Outcome = "empty_input"
	OutcomeAnswered   Outcome = "answered"
	// OutcomeUpstreamFallback means every candidate model failed.
	OutcomeUpstreamFallback Outcome = "upstream_fallback"
	// OutcomeUnexpectedFallback means the pipeline itself failed.
	OutcomeUnexpectedFallback Outcome = "unexpected_fallback"
)

// User-facing fixed answers.
const (
	EmptyInputAnswer = "Please ask me a question about vehicle rentals!"
	ApologyAnswer    = "I apologize, but I'm having trouble processing your request right now. Please try asking about our payment methods, pricing, or rental policies."
)

// --- UseCase Inputs ---

type AnswerInput struct {
	Message string
}

// --- UseCase Outputs ---

type AnswerOutput struct {
	Answer  string
	Outcome Outcome
	// Intent is empty for the empty-input short circuit.
	Intent router.Intent
	Model  string
}
