package router

// Log prefixes
const (
	LogPrefixClassify = "internal.router.Classify"
)

// RouterFallbackIntent is returned when no rule matches.
const RouterFallbackIntent = IntentGeneral

// rules is evaluated top to bottom and the first match wins, so a message
// mentioning both a card and a cancellation is a payment question.
var rules = []Rule{
	{Intent: IntentPayment, Keywords: []string{"pay", "cash", "upi", "wallet", "card", "payment", "online"}},
	{Intent: IntentDocuments, Keywords: []string{"document", "licence", "license", "aadhar", "id proof", "dl", "bring", "pickup"}},
	{Intent: IntentCancel, Keywords: []string{"cancel", "refund", "charge", "cancellation", "fee"}},
	{Intent: IntentPricing, Keywords: []string{"price", "cost", "rent", "rate", "charges", "how much"}},
}
