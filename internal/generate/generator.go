package generate

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/netranshi-tripathi/sentiment-analyser/internal/perplexity"
	"github.com/netranshi-tripathi/sentiment-analyser/internal/sentiment"
)

var (
	ErrTopicTooShort    = errors.New("input prompt is too short or empty")
	ErrGenerationFailed = errors.New("text generation failed")
)

const (
	defaultModel = "sonar-pro"

	// Topics shorter than this (trimmed) are rejected before any API call.
	minTopicLength = 5
)

// ChatCompleter is the chat-completion capability the generator depends on.
type ChatCompleter interface {
	ChatCompletion(ctx context.Context, req perplexity.ChatRequest) (*perplexity.ChatResponse, error)
}

// Request describes one generation call.
type Request struct {
	// Sentiment is the tone the passage must carry, either detected by the
	// analyzer or manually overridden by the caller.
	Sentiment sentiment.Label

	// Topic is the user's subject prompt.
	Topic string

	// Length selects the word-range tier (short/medium/long).
	Length Length

	// Temperature controls creativity, 0.0-1.0.
	Temperature float64
}

// Passage is a generated piece of prose with its provenance.
type Passage struct {
	Text        string          `json:"generated_text"`
	Sentiment   sentiment.Label `json:"sentiment"`
	Length      Length          `json:"length"`
	Model       string          `json:"model"`
	Citations   []string        `json:"citations,omitempty"`
	WordCount   int             `json:"word_count"`
	GeneratedAt time.Time       `json:"generated_at"`
}

// Generator turns a sentiment + topic into a passage via a chat-completion API.
type Generator struct {
	client ChatCompleter
	model  string
}

// NewGenerator builds a generator on top of a chat-completion client.
func NewGenerator(client ChatCompleter) *Generator {
	return &Generator{client: client, model: defaultModel}
}

// Generate composes the sentiment-conditioned prompt and requests a
// completion. API failures carry the user-facing messages produced by the
// perplexity client.
func (g *Generator) Generate(ctx context.Context, req Request) (*Passage, error) {
	if len(strings.TrimSpace(req.Topic)) < minTopicLength {
		return nil, ErrTopicTooShort
	}

	prompt := ComposePrompt(req.Sentiment, req.Topic, req.Length)
	maxTokens := req.Length.MaxTokens()

	log.Printf("[generate] model=%s sentiment=%s length=%s max_tokens=%d", g.model, req.Sentiment, req.Length, maxTokens)

	resp, err := g.client.ChatCompletion(ctx, perplexity.ChatRequest{
		Model:       g.model,
		Messages:    []perplexity.Message{{Role: "user", Content: prompt}},
		Temperature: req.Temperature,
		MaxTokens:   maxTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrGenerationFailed, err)
	}

	text := resp.Content()
	return &Passage{
		Text:        text,
		Sentiment:   req.Sentiment,
		Length:      req.Length,
		Model:       g.model,
		Citations:   resp.Citations,
		WordCount:   len(strings.Fields(text)),
		GeneratedAt: time.Now(),
	}, nil
}
