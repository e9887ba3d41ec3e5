package gemini

// DefaultModel is the preferred Gemini model when no override is configured.
const DefaultModel = "gemini-2.5-flash"
