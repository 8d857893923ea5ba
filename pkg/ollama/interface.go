package ollama

import "context"

// IOllama defines the interface for the Ollama chat API client.
// Implementations are safe for concurrent use.
type IOllama interface {
	// Chat sends a chat completion request to the Ollama API
	Chat(ctx context.Context, req *ChatRequest) (*ChatResponse, error)
}

// New creates a new Ollama client with the given configuration
func New(cfg Config) (IOllama, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newOllamaImpl(cfg), nil
}
