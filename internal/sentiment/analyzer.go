package sentiment

import (
	"context"
	"log"
	"strings"
)

// Mode selects which classification capability the analyzer uses. It is
// resolved once at construction and never changes for the analyzer's lifetime.
type Mode int

const (
	// ModeLocal runs the local statistical classifier first, with the keyword
	// override layered on top and the remote classifier as a failure fallback.
	ModeLocal Mode = iota

	// ModeRemoteOnly sends every classification to the remote capability.
	ModeRemoteOnly
)

// maxInputRunes is the prefix length texts are truncated to before
// classification. Raw character-count truncation, no word-boundary awareness.
const maxInputRunes = 512

// Confidence values emitted by the override and fallback layers.
const (
	lowConfidenceThreshold = 0.70
	neutralOverrideConf    = 0.75
	keywordOverrideConf    = 0.80
)

// Analyzer produces a best-effort sentiment Result for arbitrary text.
// It is stateless per call and safe for concurrent use.
type Analyzer struct {
	local  BinaryClassifier
	remote RemoteClassifier
	mode   Mode
}

// NewAnalyzer builds an analyzer. A nil local classifier puts the analyzer in
// ModeRemoteOnly for its lifetime; the choice is not revisited per call.
func NewAnalyzer(local BinaryClassifier, remote RemoteClassifier) *Analyzer {
	mode := ModeLocal
	if local == nil {
		mode = ModeRemoteOnly
		log.Printf("[sentiment] local classifier unavailable, using remote classification only")
	}
	return &Analyzer{local: local, remote: remote, mode: mode}
}

// Mode returns the capability mode selected at construction.
func (a *Analyzer) Mode() Mode { return a.mode }

// Analyze classifies text and always returns a well-formed Result. Internal
// failures degrade to the remote classifier, which in turn degrades to a
// neutral default; no error ever reaches the caller.
//
// The decision sequence is ordered: empty-input short-circuit, prefix
// truncation, keyword signal, primary classification, keyword override.
// The keyword override applies only on the local path; a remote result is
// final as produced.
func (a *Analyzer) Analyze(ctx context.Context, text string) Result {
	if strings.TrimSpace(text) == "" {
		return Result{Label: Neutral, Confidence: 0.0, Method: MethodEmpty, Source: SourceEmpty}
	}

	truncated := truncate(text, maxInputRunes)
	hasNeutralKeywords := NeutralKeywordSignal(truncated)

	if a.mode == ModeRemoteOnly {
		return a.remote.Classify(ctx, truncated)
	}

	pred, err := a.local.Classify(ctx, truncated)
	if err != nil {
		log.Printf("[sentiment] local classification failed, falling back to remote: %v", err)
		return a.remote.Classify(ctx, truncated)
	}

	if hasNeutralKeywords {
		return Result{
			Label:      Neutral,
			Confidence: keywordOverrideConf,
			Method:     MethodKeyword,
			Source:     SourceKeyword,
		}
	}

	return resolveLocal(pred)
}

// resolveLocal maps the binary prediction to a three-way result, discarding
// low-confidence binary labels in favor of neutral.
func resolveLocal(pred Prediction) Result {
	if pred.Score < lowConfidenceThreshold {
		return Result{
			Label:      Neutral,
			Confidence: neutralOverrideConf,
			Method:     MethodLocal,
			Source:     SourceLocal,
		}
	}

	label := Negative
	if pred.Label == BinaryPositive {
		label = Positive
	}
	return Result{
		Label:      label,
		Confidence: pred.Score,
		Method:     MethodLocal,
		Source:     SourceLocal,
	}
}

func truncate(text string, n int) string {
	runes := []rune(text)
	if len(runes) <= n {
		return text
	}
	return string(runes[:n])
}
