package sentiment

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestAnalyze_EmptyInput(t *testing.T) {
	local := NewMockBinaryClassifier(BinaryPositive, 0.99)
	remote := NewMockRemoteClassifier(Result{Label: Positive, Confidence: 0.85, Method: MethodRemote, Source: SourceRemote})
	analyzer := NewAnalyzer(local, remote)

	for _, text := range []string{"", "   ", "\n\t  "} {
		got := analyzer.Analyze(context.Background(), text)

		if got.Label != Neutral {
			t.Errorf("Analyze(%q) label = %s, want neutral", text, got.Label)
		}
		if got.Confidence != 0.0 {
			t.Errorf("Analyze(%q) confidence = %v, want 0.0", text, got.Confidence)
		}
		if got.Method != MethodEmpty {
			t.Errorf("Analyze(%q) method = %q, want %q", text, got.Method, MethodEmpty)
		}
		if got.Source != SourceEmpty {
			t.Errorf("Analyze(%q) source = %v, want SourceEmpty", text, got.Source)
		}
	}

	if local.Calls != 0 {
		t.Errorf("local classifier called %d times for empty input, want 0", local.Calls)
	}
	if remote.Calls != 0 {
		t.Errorf("remote classifier called %d times for empty input, want 0", remote.Calls)
	}
}

func TestAnalyze_HighConfidencePositive(t *testing.T) {
	local := NewMockBinaryClassifier(BinaryPositive, 0.95)
	analyzer := NewAnalyzer(local, NewMockRemoteClassifier(degradedResult()))

	got := analyzer.Analyze(context.Background(), "This is absolutely wonderful and amazing!")

	if got.Label != Positive {
		t.Errorf("label = %s, want positive", got.Label)
	}
	if got.Confidence != 0.95 {
		t.Errorf("confidence = %v, want model score 0.95", got.Confidence)
	}
	if got.Method != MethodLocal {
		t.Errorf("method = %q, want %q", got.Method, MethodLocal)
	}
	if got.Source != SourceLocal {
		t.Errorf("source = %v, want SourceLocal", got.Source)
	}
}

func TestAnalyze_HighConfidenceNegative(t *testing.T) {
	local := NewMockBinaryClassifier(BinaryNegative, 0.88)
	analyzer := NewAnalyzer(local, NewMockRemoteClassifier(degradedResult()))

	got := analyzer.Analyze(context.Background(), "This is terrible and disappointing.")

	if got.Label != Negative {
		t.Errorf("label = %s, want negative", got.Label)
	}
	if got.Confidence != 0.88 {
		t.Errorf("confidence = %v, want model score 0.88", got.Confidence)
	}
}

func TestAnalyze_LowConfidenceForcesNeutral(t *testing.T) {
	// "Climate change poses serious threats." with 0.60 confidence: below the
	// 0.70 threshold the binary label is discarded entirely.
	local := NewMockBinaryClassifier(BinaryNegative, 0.60)
	analyzer := NewAnalyzer(local, NewMockRemoteClassifier(degradedResult()))

	got := analyzer.Analyze(context.Background(), "Climate change poses serious threats.")

	if got.Label != Neutral {
		t.Errorf("label = %s, want neutral", got.Label)
	}
	if got.Confidence != 0.75 {
		t.Errorf("confidence = %v, want fixed 0.75", got.Confidence)
	}
	if got.Method != MethodLocal {
		t.Errorf("method = %q, want %q", got.Method, MethodLocal)
	}
	if got.Source != SourceLocal {
		t.Errorf("source = %v, want SourceLocal", got.Source)
	}
}

func TestAnalyze_ThresholdBoundary(t *testing.T) {
	// Exactly 0.70 is not below the threshold; the binary label survives.
	local := NewMockBinaryClassifier(BinaryPositive, 0.70)
	analyzer := NewAnalyzer(local, NewMockRemoteClassifier(degradedResult()))

	got := analyzer.Analyze(context.Background(), "Fine enough.")

	if got.Label != Positive {
		t.Errorf("label = %s, want positive at the 0.70 boundary", got.Label)
	}
	if got.Confidence != 0.70 {
		t.Errorf("confidence = %v, want 0.70", got.Confidence)
	}
}

func TestAnalyze_StrongKeywordOverridesLocal(t *testing.T) {
	// A confident POSITIVE from the model is still overridden by "How".
	local := NewMockBinaryClassifier(BinaryPositive, 0.99)
	analyzer := NewAnalyzer(local, NewMockRemoteClassifier(degradedResult()))

	got := analyzer.Analyze(context.Background(), "How does artificial intelligence work?")

	if got.Label != Neutral {
		t.Errorf("label = %s, want neutral", got.Label)
	}
	if got.Confidence != 0.80 {
		t.Errorf("confidence = %v, want fixed 0.80", got.Confidence)
	}
	if got.Method != MethodKeyword {
		t.Errorf("method = %q, want %q", got.Method, MethodKeyword)
	}
	if got.Source != SourceKeyword {
		t.Errorf("source = %v, want SourceKeyword", got.Source)
	}
	if local.Calls != 1 {
		t.Errorf("local classifier called %d times, want 1 (override applies after classification)", local.Calls)
	}
}

func TestAnalyze_WeakKeywordQuorumOverridesLocal(t *testing.T) {
	local := NewMockBinaryClassifier(BinaryNegative, 0.91)
	analyzer := NewAnalyzer(local, NewMockRemoteClassifier(degradedResult()))

	got := analyzer.Analyze(context.Background(), "The algorithm consists of several steps using data and information.")

	if got.Label != Neutral {
		t.Errorf("label = %s, want neutral", got.Label)
	}
	if got.Confidence != 0.80 {
		t.Errorf("confidence = %v, want 0.80", got.Confidence)
	}
	if got.Method != MethodKeyword {
		t.Errorf("method = %q, want %q", got.Method, MethodKeyword)
	}
}

func TestAnalyze_NoKeywordOverrideOnRemotePath(t *testing.T) {
	// Remote-only mode: the remote result is final even for keyword-heavy text.
	remoteResult := Result{Label: Positive, Confidence: 0.85, Method: MethodRemote, Source: SourceRemote}
	remote := NewMockRemoteClassifier(remoteResult)
	analyzer := NewAnalyzer(nil, remote)

	got := analyzer.Analyze(context.Background(), "How does the algorithm process data?")

	if got != remoteResult {
		t.Errorf("remote-only result = %+v, want unmodified %+v", got, remoteResult)
	}
	if remote.Calls != 1 {
		t.Errorf("remote classifier called %d times, want 1", remote.Calls)
	}
}

func TestAnalyze_RemoteOnlyMode(t *testing.T) {
	remote := NewMockRemoteClassifier(Result{Label: Negative, Confidence: 0.85, Method: MethodRemote, Source: SourceRemote})
	analyzer := NewAnalyzer(nil, remote)

	if analyzer.Mode() != ModeRemoteOnly {
		t.Fatalf("mode = %v, want ModeRemoteOnly", analyzer.Mode())
	}

	got := analyzer.Analyze(context.Background(), "The service keeps crashing.")

	if got.Label != Negative {
		t.Errorf("label = %s, want negative", got.Label)
	}
	if got.Source != SourceRemote {
		t.Errorf("source = %v, want SourceRemote", got.Source)
	}
}

func TestAnalyze_LocalFailureFallsBackToRemote(t *testing.T) {
	local := &MockBinaryClassifier{Error: errors.New("inference endpoint unreachable")}
	remote := NewMockRemoteClassifier(Result{Label: Positive, Confidence: 0.85, Method: MethodRemote, Source: SourceRemote})
	analyzer := NewAnalyzer(local, remote)

	if analyzer.Mode() != ModeLocal {
		t.Fatalf("mode = %v, want ModeLocal", analyzer.Mode())
	}

	got := analyzer.Analyze(context.Background(), "Renewable energy is great for the environment!")

	if got.Source != SourceRemote {
		t.Errorf("source = %v, want SourceRemote after local failure", got.Source)
	}
	if got.Method != MethodRemote {
		t.Errorf("method = %q, want %q", got.Method, MethodRemote)
	}
	if remote.Calls != 1 {
		t.Errorf("remote classifier called %d times, want 1", remote.Calls)
	}
}

func TestAnalyze_TruncatesBeforeClassification(t *testing.T) {
	local := NewMockBinaryClassifier(BinaryPositive, 0.95)
	analyzer := NewAnalyzer(local, NewMockRemoteClassifier(degradedResult()))

	long := strings.Repeat("a", 600) + " how"
	analyzer.Analyze(context.Background(), long)

	if got := len([]rune(local.LastText)); got != maxInputRunes {
		t.Errorf("classifier received %d runes, want %d", got, maxInputRunes)
	}
	// The strong marker sits past the cutoff, so no override fires.
	got := analyzer.Analyze(context.Background(), long)
	if got.Label != Positive {
		t.Errorf("label = %s, want positive (marker truncated away)", got.Label)
	}
}

func TestAnalyze_Idempotent(t *testing.T) {
	local := NewMockBinaryClassifier(BinaryPositive, 0.83)
	analyzer := NewAnalyzer(local, NewMockRemoteClassifier(degradedResult()))

	text := "Renewable energy is great for the environment!"
	first := analyzer.Analyze(context.Background(), text)
	second := analyzer.Analyze(context.Background(), text)

	if first != second {
		t.Errorf("repeated analysis diverged: %+v then %+v", first, second)
	}
}

func TestResolveLocal(t *testing.T) {
	tests := []struct {
		name     string
		pred     Prediction
		wantLbl  Label
		wantConf float64
	}{
		{"confident positive", Prediction{BinaryPositive, 0.95}, Positive, 0.95},
		{"confident negative", Prediction{BinaryNegative, 0.85}, Negative, 0.85},
		{"below threshold positive", Prediction{BinaryPositive, 0.69}, Neutral, 0.75},
		{"below threshold negative", Prediction{BinaryNegative, 0.10}, Neutral, 0.75},
		{"at threshold", Prediction{BinaryNegative, 0.70}, Negative, 0.70},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := resolveLocal(tt.pred)
			if got.Label != tt.wantLbl {
				t.Errorf("label = %s, want %s", got.Label, tt.wantLbl)
			}
			if got.Confidence != tt.wantConf {
				t.Errorf("confidence = %v, want %v", got.Confidence, tt.wantConf)
			}
			if got.Source != SourceLocal {
				t.Errorf("source = %v, want SourceLocal", got.Source)
			}
		})
	}
}
