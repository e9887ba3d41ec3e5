package gemini

import "net/http"

// Config configures the Gemini client.
type Config struct {
	APIKey string

	// BaseURL overrides the Generative Language API endpoint. Empty keeps the SDK default.
	BaseURL string

	// HTTPClient is optional; nil uses the SDK default client.
	HTTPClient *http.Client
}

// Validate checks the configuration.
func (c Config) Validate() error {
	if c.APIKey == "" {
		return ErrMissingAPIKey
	}
	return nil
}
