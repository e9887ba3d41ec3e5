package gemini

import "context"

// IGemini defines the interface for the Gemini completion API.
// Implementations are safe for concurrent use.
type IGemini interface {
	// GenerateText sends prompt to model and returns the generated text.
	GenerateText(ctx context.Context, model, prompt string) (string, error)
}

// New creates a new Gemini client with the given configuration
func New(ctx context.Context, cfg Config) (IGemini, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newGeminiImpl(ctx, cfg)
}
