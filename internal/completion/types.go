package completion

import "time"

// Config is the immutable gateway configuration.
type Config struct {
	// ModelOverride, when set, is tried before FallbackModels.
	ModelOverride string

	// AttemptTimeout bounds a single model call. Zero means no per-attempt bound.
	AttemptTimeout time.Duration

	// MaxTotalTimeout bounds the whole candidate chain. Zero means no bound.
	MaxTotalTimeout time.Duration
}

// Attempt records the outcome of one model call.
type Attempt struct {
	Model    string
	Err      error
	Duration time.Duration
}

// Output is the result of Complete. Answer is always set.
type Output struct {
	Answer string
	// Model is the model that answered; empty when Fallback is true.
	Model    string
	Attempts []Attempt
	Fallback bool
}

// attemptResult is the tagged result of one call: text on success, err otherwise.
type attemptResult struct {
	text string
	err  error
}
