package sentiment

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/shared"
)

const (
	// Perplexity exposes an OpenAI-compatible chat-completions API.
	perplexityBaseURL = "https://api.perplexity.ai"

	remoteModel = "sonar"

	// The generation call elsewhere uses 30s; classification replies are a
	// single word, so a tighter bound keeps degraded-mode latency low.
	remoteTimeout = 15 * time.Second

	remoteConfidence   = 0.85
	degradedConfidence = 0.5
)

const classifySystemPrompt = "You are a sentiment analyzer. Classify the sentiment of the given text " +
	"as exactly one of: positive, negative, or neutral. Respond with ONLY the sentiment word."

// PerplexityClassifier implements RemoteClassifier against the Perplexity
// chat-completions API. All failures are absorbed into a degraded neutral
// result; Classify never reports an error.
type PerplexityClassifier struct {
	client openai.Client
	model  string
}

// NewPerplexityClassifier builds a remote classifier. Extra request options
// (e.g. an alternate base URL) are applied after the defaults.
func NewPerplexityClassifier(apiKey string, opts ...option.RequestOption) *PerplexityClassifier {
	options := append([]option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithBaseURL(perplexityBaseURL),
		option.WithRequestTimeout(remoteTimeout),
		// A single failed attempt degrades straight to the neutral default.
		option.WithMaxRetries(0),
	}, opts...)

	return &PerplexityClassifier{
		client: openai.NewClient(options...),
		model:  remoteModel,
	}
}

// Classify asks the remote model for a one-word sentiment label and parses
// the reply permissively.
func (p *PerplexityClassifier) Classify(ctx context.Context, text string) Result {
	completion, err := p.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: shared.ChatModel(p.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(classifySystemPrompt),
			openai.UserMessage("Classify sentiment: " + text),
		},
		Temperature: openai.Float(0.2),
		MaxTokens:   openai.Int(10),
	})
	if err != nil {
		log.Printf("[sentiment] remote classification error: %v", err)
		return degradedResult()
	}
	if len(completion.Choices) == 0 {
		log.Printf("[sentiment] remote classification returned no choices")
		return degradedResult()
	}

	return parseRemoteReply(completion.Choices[0].Message.Content)
}

// parseRemoteReply extracts a label from a model reply. The literal substring
// "positive" wins over "negative" if both appear; neither means neutral.
func parseRemoteReply(reply string) Result {
	lower := strings.ToLower(reply)

	label := Neutral
	switch {
	case strings.Contains(lower, "positive"):
		label = Positive
	case strings.Contains(lower, "negative"):
		label = Negative
	}

	return Result{
		Label:      label,
		Confidence: remoteConfidence,
		Method:     MethodRemote,
		Source:     SourceRemote,
	}
}

func degradedResult() Result {
	return Result{
		Label:      Neutral,
		Confidence: degradedConfidence,
		Method:     MethodDefault,
		Source:     SourceDegraded,
	}
}
