package usecase

import (
	"context"

	"intent-router/internal/registry"
	"intent-router/internal/router"
	"intent-router/pkg/ollama"
)

// mockLogger discards all log output.
type mockLogger struct{}

func (mockLogger) Debug(ctx context.Context, args ...any) {}
func (mockLogger) Debugf(ctx context.Context, format string, args ...any) {}
func (mockLogger) Info(ctx context.Context, args ...any) {}
func (mockLogger) Infof(ctx context.Context, format string, args ...any) {}
func (mockLogger) Warn(ctx context.Context, args ...any) {}
func (mockLogger) Warnf(ctx context.Context, format string, args ...any) {}
func (mockLogger) Error(ctx context.Context, args ...any) {}
func (mockLogger) Errorf(ctx context.Context, format string, args ...any) {}
func (mockLogger) Fatal(ctx context.Context, args ...any) {}
func (mockLogger) Fatalf(ctx context.Context, format string, args ...any) {}

// mockLLM returns a canned response, error, or panics.
type mockLLM struct {
	content string
	err     error
	panics  bool
	calls   int
}

func (m *mockLLM) Chat(ctx context.Context, req *ollama.ChatRequest) (*ollama.ChatResponse, error) {
	m.calls++
	if m.panics {
		panic("mock llm exploded")
	}
	if m.err != nil {
		return nil, m.err
	}
	return &ollama.ChatResponse{
		Model:   req.Model,
		Message: ollama.Message{Role: "assistant", Content: m.content},
		Done:    true,
	}, nil
}

func testRegistry() *registry.Registry {
	return registry.New([]string{
		"gemma3:1b",
		"gemma3:4b",
		"qwen2.5-coder:3b",
		"qwen2.5-coder:7b",
		"qwen2.5:14b",
		"phi4:14b",
		"llama3.2-vision:11b",
		"minicpm-v:8b",
		"deepseek-coder-v2:16b",
	}, "phi4:14b")
}

func newTestUseCase(llm ollama.IOllama) *implUseCase {
	return New(llm, testRegistry(), Config{}, mockLogger{})
}

func hasEntityValue(entities []router.Entity, entityType, value string) bool {
	for _, e := range entities {
		if e.Type == entityType && e.Value == value {
			return true
		}
	}
	return false
}
