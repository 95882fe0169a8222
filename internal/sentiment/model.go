// Package sentiment classifies short texts as positive, negative, or neutral.
// It layers three signals: a local binary statistical classifier, a keyword
// heuristic that forces neutral for factual/technical prompts, and a remote
// LLM-backed classifier used as a fallback. The analyzer never fails; every
// input yields a well-formed result tagged with the policy path that produced it.
package sentiment

import "context"

// Label is the three-way sentiment assigned to a piece of text.
type Label string

const (
	Positive Label = "positive"
	Negative Label = "negative"
	Neutral  Label = "neutral"
)

// Source identifies which policy path produced a Result. It lets callers and
// tests distinguish a successful classification from a degraded one without
// inspecting confidence values.
type Source int

const (
	// SourceEmpty marks the short-circuit result for empty/whitespace input.
	SourceEmpty Source = iota

	// SourceLocal marks a result produced by the local statistical classifier,
	// including its low-confidence neutral override.
	SourceLocal

	// SourceKeyword marks a result forced to neutral by the keyword signal.
	SourceKeyword

	// SourceRemote marks a successful remote classification.
	SourceRemote

	// SourceDegraded marks the neutral default emitted when the remote call failed.
	SourceDegraded
)

// Degraded reports whether the result came from an error-absorbing fallback
// rather than an actual classification.
func (s Source) Degraded() bool { return s == SourceDegraded }

// Result is the outcome of a single classification. Immutable once produced.
type Result struct {
	Label      Label   `json:"sentiment"`
	Confidence float64 `json:"confidence"`
	Method     string  `json:"method"`
	Source     Source  `json:"-"`
}

// Method tags reported in results. Fixed strings so callers can key on them.
const (
	MethodEmpty   = "Empty input"
	MethodLocal   = "Hugging Face DistilBERT"
	MethodKeyword = "Keyword-Based Neutral Detection + HF"
	MethodRemote  = "Perplexity API"
	MethodDefault = "Default (Error)"
)

// Binary labels emitted by the local statistical classifier.
const (
	BinaryPositive = "POSITIVE"
	BinaryNegative = "NEGATIVE"
)

// Prediction is the raw output of the local statistical classifier: a binary
// polarity label and a confidence score in [0,1].
type Prediction struct {
	Label string
	Score float64
}

// BinaryClassifier is the local statistical sentiment capability. It is opaque
// to the analyzer: text in, binary polarity and score out. Implementations
// must be stateless and safe for concurrent use.
type BinaryClassifier interface {
	Classify(ctx context.Context, text string) (Prediction, error)
}

// RemoteClassifier is the network-backed classification capability. It absorbs
// its own failures: any transport or parse error is converted into a degraded
// neutral Result, never returned as an error.
type RemoteClassifier interface {
	Classify(ctx context.Context, text string) Result
}
