package ollama

import "time"

const (
	// DefaultHost is the default Ollama API endpoint
	DefaultHost = "http://localhost:11434"

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 120 * time.Second

	// FormatJSON requests structured JSON output from the model
	FormatJSON = "json"
)
