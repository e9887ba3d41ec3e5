package router

// Router is the interface for intent classification.
type Router interface {
	Classify(message string) Intent
}

// KeywordRouter classifies messages by case-insensitive substring matching.
type KeywordRouter struct {
	rules []Rule
}

// Ensure KeywordRouter implements Router interface
var _ Router = (*KeywordRouter)(nil)

// New creates a KeywordRouter over the built-in rule table.
func New() *KeywordRouter {
	return &KeywordRouter{rules: Rules()}
}

// Rules returns a copy of the built-in rule table in evaluation order.
func Rules() []Rule {
	out := make([]Rule, len(rules))
	for i, r := range rules {
		out[i] = Rule{Intent: r.Intent, Keywords: append([]string(nil), r.Keywords...)}
	}
	return out
}

// Intents lists every label Classify can return.
func Intents() []Intent {
	out := make([]Intent, 0, len(rules)+1)
	for _, r := range rules {
		out = append(out, r.Intent)
	}
	return append(out, RouterFallbackIntent)
}
