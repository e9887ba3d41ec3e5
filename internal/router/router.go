package router

import "strings"

// Classify returns the intent of the first rule with a keyword contained in
// the lower-cased message, or IntentGeneral. It never fails.
func (r *KeywordRouter) Classify(message string) Intent {
	text := strings.ToLower(message)

	for _, rule := range r.rules {
		for _, kw := range rule.Keywords {
			if strings.Contains(text, kw) {
				return rule.Intent
			}
		}
	}

	return RouterFallbackIntent
}

// Classify runs the built-in rule table against message.
func Classify(message string) Intent {
	return defaultRouter.Classify(message)
}

var defaultRouter = New()
