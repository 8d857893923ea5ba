package ollama

import "net/http"

// Config holds Ollama client configuration
type Config struct {
	Host       string
	HTTPClient *http.Client
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Host == "" {
		c.Host = DefaultHost
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: DefaultTimeout}
	}
	return nil
}

// ollamaImpl is the internal implementation of IOllama
type ollamaImpl struct {
	host       string
	httpClient *http.Client
}

// Message is a single chat message
type Message struct {
	Role    string `json:"role"` // "system", "user", "assistant"
	Content string `json:"content"`
}

// Options holds model sampling options
type Options struct {
	Temperature float64 `json:"temperature"`
	NumPredict  int     `json:"num_predict,omitempty"`
	TopK        int     `json:"top_k,omitempty"`
	TopP        float64 `json:"top_p,omitempty"`
}

// ChatRequest is a chat completion request
type ChatRequest struct {
	Model    string    `json:"model"`
	Messages []Message `json:"messages"`
	Format   string    `json:"format,omitempty"` // "json" forces structured output
	Options  *Options  `json:"options,omitempty"`
	Stream   bool      `json:"stream"`
}

// ChatResponse is a chat completion response
type ChatResponse struct {
	Model     string  `json:"model"`
	Message   Message `json:"message"`
	Done      bool    `json:"done"`
	TotalDur  int64   `json:"total_duration,omitempty"`
	EvalCount int     `json:"eval_count,omitempty"`
}
