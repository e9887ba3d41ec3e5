package gemini

import "errors"

var (
	// ErrMissingAPIKey is returned by New when no API key is configured.
	ErrMissingAPIKey = errors.New("gemini: api key is required")

	// ErrEmptyResponse means the model answered without any text.
	ErrEmptyResponse = errors.New("gemini: empty response")
)
