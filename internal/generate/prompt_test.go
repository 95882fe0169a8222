package generate

import (
	"strings"
	"testing"

	"github.com/netranshi-tripathi/sentiment-analyser/internal/sentiment"
)

func TestComposePrompt_PositiveMedium(t *testing.T) {
	prompt := ComposePrompt(sentiment.Positive, "  artificial intelligence in healthcare  ", LengthMedium)

	if !strings.Contains(prompt, "optimistic, uplifting, and encouraging tone") {
		t.Error("missing positive tone instruction")
	}
	if !strings.Contains(prompt, "well-structured positive paragraph or essay of approximately 300-500 words") {
		t.Errorf("missing length sentence, got:\n%s", prompt)
	}
	if !strings.Contains(prompt, "artificial intelligence in healthcare") {
		t.Error("missing topic")
	}
	if strings.Contains(prompt, "  artificial") {
		t.Error("topic was not trimmed")
	}
	if !strings.Contains(prompt, "maintains the positive sentiment throughout") {
		t.Error("missing closing instruction")
	}
}

func TestComposePrompt_ToneInstructions(t *testing.T) {
	tests := []struct {
		label sentiment.Label
		want  string
	}{
		{sentiment.Positive, "Highlight positive aspects, benefits, and hopeful perspectives."},
		{sentiment.Negative, "Focus on challenges, drawbacks, and concerning aspects."},
		{sentiment.Neutral, "Present facts without emotional bias."},
		{sentiment.Label("bogus"), "Present facts without emotional bias."},
	}

	for _, tt := range tests {
		prompt := ComposePrompt(tt.label, "renewable energy", LengthShort)
		if !strings.Contains(prompt, tt.want) {
			t.Errorf("ComposePrompt(%s) missing %q", tt.label, tt.want)
		}
	}
}

func TestLength_Tiers(t *testing.T) {
	tests := []struct {
		length     Length
		wantRange  string
		wantTokens int
	}{
		{LengthShort, "100-200 words", 300},
		{LengthMedium, "300-500 words", 600},
		{LengthLong, "500-800 words", 1000},
		{Length("unknown"), "300-500 words", 600},
		{Length(""), "300-500 words", 600},
	}

	for _, tt := range tests {
		if got := tt.length.WordRange(); got != tt.wantRange {
			t.Errorf("%q.WordRange() = %q, want %q", tt.length, got, tt.wantRange)
		}
		if got := tt.length.MaxTokens(); got != tt.wantTokens {
			t.Errorf("%q.MaxTokens() = %d, want %d", tt.length, got, tt.wantTokens)
		}
	}
}
