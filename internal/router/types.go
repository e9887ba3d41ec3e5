package router

// Intent is the topic label of a customer question.
type Intent string

const (
	IntentPayment   Intent = "payment"
	IntentDocuments Intent = "documents"
	IntentCancel    Intent = "cancel"
	IntentPricing   Intent = "pricing"
	IntentGeneral   Intent = "general"
)

// Rule maps an intent to the literal substrings that select it.
type Rule struct {
	Intent   Intent
	Keywords []string
}
