package prompt_test

import (
	"strings"
	"testing"

	"rental-support-chatbot/internal/prompt"
	"rental-support-chatbot/internal/router"
)

func TestCompose(t *testing.T) {
	got := prompt.Compose(router.IntentPricing, "How much is a bike?")

	want := prompt.SystemPrompt + "\nUser intent: pricing\nUser: How much is a bike?\nAssistant:"
	if got != want {
		t.Errorf("unexpected prompt:\n%s", got)
	}
}

func TestComposeKeepsMessageVerbatim(t *testing.T) {
	msg := "  Can I pay by **CARD**?  "
	got := prompt.Compose(router.IntentPayment, msg)

	if !strings.Contains(got, "\nUser: "+msg+"\n") {
		t.Errorf("prompt missing raw user message")
	}
	if !strings.HasSuffix(got, prompt.ResponseCue) {
		t.Errorf("prompt must end with the response cue")
	}
}

func TestSystemPromptPolicies(t *testing.T) {
	for _, s := range []string{
		"Vehicle Rental Service Support Chatbot",
		"Cash allowed only at selected pickup points.",
		"Valid Driving Licence is mandatory.",
		"Free cancellation up to 30 minutes before pickup.",
		"within 3-5 business days.",
	} {
		if !strings.Contains(prompt.SystemPrompt, s) {
			t.Errorf("system prompt missing %q", s)
		}
	}
}

func TestComposeDeterministic(t *testing.T) {
	a := prompt.Compose(router.IntentGeneral, "hi")
	b := prompt.Compose(router.IntentGeneral, "hi")
	if a != b {
		t.Error("Compose is not deterministic")
	}
}
