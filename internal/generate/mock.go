package generate

import (
	"context"

	"github.com/netranshi-tripathi/sentiment-analyser/internal/perplexity"
)

// MockChatCompleter is a deterministic ChatCompleter for testing.
type MockChatCompleter struct {
	// Response is returned by ChatCompletion when Error is nil.
	Response *perplexity.ChatResponse

	// Error, if set, is returned instead of a response.
	Error error

	// LastRequest stores the most recent request.
	LastRequest perplexity.ChatRequest
}

// NewMockChatCompleter creates a mock returning a single-choice response with
// the given text.
func NewMockChatCompleter(text string) *MockChatCompleter {
	return &MockChatCompleter{Response: &perplexity.ChatResponse{
		Choices: []perplexity.Choice{
			{Message: perplexity.Message{Role: "assistant", Content: text}},
		},
	}}
}

// ChatCompletion records the request and returns the configured response.
func (m *MockChatCompleter) ChatCompletion(ctx context.Context, req perplexity.ChatRequest) (*perplexity.ChatResponse, error) {
	m.LastRequest = req
	if m.Error != nil {
		return nil, m.Error
	}
	return m.Response, nil
}
